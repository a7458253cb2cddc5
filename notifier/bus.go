package notifier

import (
	"context"
	"fmt"

	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/sirupsen/logrus"
)

// EventKind tags an Event.
type EventKind uint8

const (
	EventMessage EventKind = iota + 1
	EventDeletedMessages
	EventRegistered
	EventUnregistered
	EventNoAvailableProvider
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMessage:
		return "message"
	case EventDeletedMessages:
		return "deleted_messages"
	case EventRegistered:
		return "registered"
	case EventUnregistered:
		return "unregistered"
	case EventNoAvailableProvider:
		return "no_available_provider"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// Event is one outward coordinator event. Only the fields relevant to Kind
// are set.
type Event struct {
	Kind           EventKind
	ProviderName   string
	RegistrationID string
	Data           map[string]string
	Count          int
	Errors         map[string]*pusherr.Error
}

// Bus is an EventNotifier that publishes events on a channel. Publishing
// blocks when the buffer is full, so a consumer must keep draining Events.
type Bus struct {
	events chan Event
}

var _ interfaces.EventNotifier = (*Bus)(nil)

// NewBus creates a bus with the given buffer size.
func NewBus(buffer int) *Bus {
	return &Bus{events: make(chan Event, buffer)}
}

// Events returns the channel events are published on.
func (b *Bus) Events() <-chan Event {
	return b.events
}

// Close closes the event channel. No event may be published afterwards.
func (b *Bus) Close() {
	close(b.events)
}

// OnMessage implements interfaces.EventNotifier.
func (b *Bus) OnMessage(providerName string, data map[string]string) {
	b.events <- Event{Kind: EventMessage, ProviderName: providerName, Data: data}
}

// OnDeletedMessages implements interfaces.EventNotifier.
func (b *Bus) OnDeletedMessages(providerName string, count int) {
	b.events <- Event{Kind: EventDeletedMessages, ProviderName: providerName, Count: count}
}

// OnRegistered implements interfaces.EventNotifier.
func (b *Bus) OnRegistered(providerName, registrationID string) {
	b.events <- Event{Kind: EventRegistered, ProviderName: providerName, RegistrationID: registrationID}
}

// OnUnregistered implements interfaces.EventNotifier.
func (b *Bus) OnUnregistered(providerName, oldRegistrationID string) {
	b.events <- Event{Kind: EventUnregistered, ProviderName: providerName, RegistrationID: oldRegistrationID}
}

// OnNoAvailableProvider implements interfaces.EventNotifier.
func (b *Bus) OnNoAvailableProvider(errs map[string]*pusherr.Error) {
	b.events <- Event{Kind: EventNoAvailableProvider, Errors: errs}
}

// Deliver calls the target method matching the event kind.
func Deliver(target interfaces.EventNotifier, ev Event) {
	switch ev.Kind {
	case EventMessage:
		target.OnMessage(ev.ProviderName, ev.Data)
	case EventDeletedMessages:
		target.OnDeletedMessages(ev.ProviderName, ev.Count)
	case EventRegistered:
		target.OnRegistered(ev.ProviderName, ev.RegistrationID)
	case EventUnregistered:
		target.OnUnregistered(ev.ProviderName, ev.RegistrationID)
	case EventNoAvailableProvider:
		target.OnNoAvailableProvider(ev.Errors)
	default:
		logrus.WithFields(logrus.Fields{
			"function": "Deliver",
			"kind":     ev.Kind.String(),
		}).Warn("Dropping event of unknown kind")
	}
}

// Dispatch delivers events from the bus to target on the calling goroutine
// until ctx is done or the bus is closed.
func Dispatch(ctx context.Context, bus *Bus, target interfaces.EventNotifier) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-bus.Events():
			if !ok {
				return nil
			}
			Deliver(target, ev)
		}
	}
}
