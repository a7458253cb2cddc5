package notifier

import (
	"sync"

	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/sirupsen/logrus"
)

// Queue is an EventNotifier that hands every event to target on a single
// dedicated goroutine, in the order the events were received. Enqueueing
// never blocks.
type Queue struct {
	target interfaces.EventNotifier

	mu      sync.Mutex
	cond    *sync.Cond
	pending []Event
	closed  bool
	done    chan struct{}
}

var _ interfaces.EventNotifier = (*Queue)(nil)

// NewQueue starts a queue delivering to target.
func NewQueue(target interfaces.EventNotifier) *Queue {
	q := &Queue{
		target: target,
		done:   make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Close stops accepting events, waits until every queued event has been
// delivered, and stops the delivery goroutine.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) enqueue(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		logrus.WithFields(logrus.Fields{
			"function": "Queue.enqueue",
			"kind":     ev.Kind.String(),
		}).Warn("Dropping event on closed queue")
		return
	}
	q.pending = append(q.pending, ev)
	q.cond.Signal()
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.pending) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		for _, ev := range batch {
			Deliver(q.target, ev)
		}
	}
}

// OnMessage implements interfaces.EventNotifier.
func (q *Queue) OnMessage(providerName string, data map[string]string) {
	q.enqueue(Event{Kind: EventMessage, ProviderName: providerName, Data: data})
}

// OnDeletedMessages implements interfaces.EventNotifier.
func (q *Queue) OnDeletedMessages(providerName string, count int) {
	q.enqueue(Event{Kind: EventDeletedMessages, ProviderName: providerName, Count: count})
}

// OnRegistered implements interfaces.EventNotifier.
func (q *Queue) OnRegistered(providerName, registrationID string) {
	q.enqueue(Event{Kind: EventRegistered, ProviderName: providerName, RegistrationID: registrationID})
}

// OnUnregistered implements interfaces.EventNotifier.
func (q *Queue) OnUnregistered(providerName, oldRegistrationID string) {
	q.enqueue(Event{Kind: EventUnregistered, ProviderName: providerName, RegistrationID: oldRegistrationID})
}

// OnNoAvailableProvider implements interfaces.EventNotifier.
func (q *Queue) OnNoAvailableProvider(errs map[string]*pusherr.Error) {
	q.enqueue(Event{Kind: EventNoAvailableProvider, Errors: errs})
}
