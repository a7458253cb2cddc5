package retry

import (
	"fmt"
	"sync"
	"time"

	"github.com/opd-ai/openpush/backoff"
	"github.com/sirupsen/logrus"
)

// Operation is the kind of provider operation being retried.
type Operation uint8

const (
	OperationRegister Operation = iota + 1
	OperationUnregister
)

// String returns the lower-case operation name.
func (o Operation) String() string {
	switch o {
	case OperationRegister:
		return "register"
	case OperationUnregister:
		return "unregister"
	default:
		return fmt.Sprintf("operation(%d)", uint8(o))
	}
}

type key struct {
	provider string
	op       Operation
}

type pending struct {
	timer Timer
	seq   uint64
}

// Manager tracks retry attempts per provider and operation and schedules
// delayed retries. It is safe for concurrent use. Actions run without the
// manager's lock held, so they may call back into the Manager.
type Manager struct {
	mu        sync.Mutex
	policy    backoff.Policy
	scheduler Scheduler
	tries     map[key]int
	timers    map[key]pending
	seq       uint64
	logger    *logrus.Entry
}

// NewManager creates a retry manager. A nil policy selects backoff.Default and
// a nil scheduler selects RealScheduler.
func NewManager(policy backoff.Policy, scheduler Scheduler) *Manager {
	if policy == nil {
		policy = backoff.Default()
	}
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	return &Manager{
		policy:    policy,
		scheduler: scheduler,
		tries:     make(map[key]int),
		timers:    make(map[key]pending),
		logger:    logrus.WithField("component", "RetryManager"),
	}
}

// Policy returns the backoff policy in use.
func (m *Manager) Policy() backoff.Policy {
	return m.policy
}

// HasTries reports whether another retry of op for the provider is allowed.
func (m *Manager) HasTries(provider string, op Operation) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tries[key{provider, op}] < m.policy.TryCount()
}

// Tries returns the number of retries scheduled since the last reset.
func (m *Manager) Tries(provider string, op Operation) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tries[key{provider, op}]
}

// PostRetryRegister schedules a register retry for the provider.
func (m *Manager) PostRetryRegister(provider string, action func()) time.Duration {
	return m.post(key{provider, OperationRegister}, action)
}

// PostRetryUnregister schedules an unregister retry for the provider.
func (m *Manager) PostRetryUnregister(provider string, action func()) time.Duration {
	return m.post(key{provider, OperationUnregister}, action)
}

// post increments the attempt counter, replaces any scheduled task for k and
// schedules action after policy.Delay(attempt). It returns the delay used.
func (m *Manager) post(k key, action func()) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.timers[k]; ok {
		old.timer.Stop()
		delete(m.timers, k)
	}

	m.tries[k]++
	attempt := m.tries[k]
	delay := m.policy.Delay(attempt)

	m.seq++
	seq := m.seq
	timer := m.scheduler.AfterFunc(delay, func() { m.fire(k, seq, action) })
	m.timers[k] = pending{timer: timer, seq: seq}

	m.logger.WithFields(logrus.Fields{
		"function":  "Manager.post",
		"provider":  k.provider,
		"operation": k.op.String(),
		"attempt":   attempt,
		"delay":     delay,
	}).Info("Scheduled retry")

	return delay
}

// fire runs action if the task identified by seq is still the scheduled one.
func (m *Manager) fire(k key, seq uint64, action func()) {
	m.mu.Lock()
	p, ok := m.timers[k]
	if !ok || p.seq != seq {
		m.mu.Unlock()
		return
	}
	delete(m.timers, k)
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"function":  "Manager.fire",
		"provider":  k.provider,
		"operation": k.op.String(),
	}).Debug("Running scheduled retry")
	action()
}

// CancelRetryRegister cancels a scheduled register retry. It reports whether
// a retry was pending. The attempt counter is left untouched.
func (m *Manager) CancelRetryRegister(provider string) bool {
	return m.cancel(key{provider, OperationRegister})
}

// CancelRetryUnregister cancels a scheduled unregister retry. It reports
// whether a retry was pending. The attempt counter is left untouched.
func (m *Manager) CancelRetryUnregister(provider string) bool {
	return m.cancel(key{provider, OperationUnregister})
}

// CancelRetryAllOperations cancels scheduled retries in both directions.
func (m *Manager) CancelRetryAllOperations(provider string) {
	m.cancel(key{provider, OperationRegister})
	m.cancel(key{provider, OperationUnregister})
}

func (m *Manager) cancel(k key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.timers[k]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(m.timers, k)
	return true
}

// IsPending reports whether a retry of op is scheduled for the provider.
func (m *Manager) IsPending(provider string, op Operation) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.timers[key{provider, op}]
	return ok
}

// Reset zeroes the attempt counter of op for the provider.
func (m *Manager) Reset(provider string, op Operation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tries, key{provider, op})
}

// ResetAll zeroes every counter and cancels every scheduled retry.
func (m *Manager) ResetAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, p := range m.timers {
		p.timer.Stop()
		delete(m.timers, k)
	}
	m.tries = make(map[key]int)
}
