package retry

import (
	"sync"
	"testing"
	"time"

	"github.com/opd-ai/openpush/backoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimer records scheduled tasks without running them.
type fakeTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// fire runs the i-th scheduled task as its timer would, even if it was stopped.
func (s *fakeScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	t.fired = true
	s.mu.Unlock()
	t.f()
}

func TestHasTriesExhaustsAfterTryCount(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewManager(backoff.Default(), sched)

	for i := 0; i < backoff.DefaultTryCount; i++ {
		require.True(t, m.HasTries("gcm", OperationRegister))
		m.PostRetryRegister("gcm", func() {})
	}
	assert.False(t, m.HasTries("gcm", OperationRegister))
	assert.True(t, m.HasTries("gcm", OperationUnregister))
	assert.True(t, m.HasTries("adm", OperationRegister))
}

func TestPostUsesBackoffDelays(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewManager(backoff.Default(), sched)

	assert.Equal(t, 2*time.Second, m.PostRetryRegister("gcm", func() {}))
	assert.Equal(t, 4*time.Second, m.PostRetryRegister("gcm", func() {}))
	assert.Equal(t, 2*time.Second, m.PostRetryUnregister("gcm", func() {}))

	require.Len(t, sched.timers, 3)
	assert.True(t, sched.timers[0].stopped, "second post replaces the first task")
	assert.Equal(t, 2, m.Tries("gcm", OperationRegister))
}

func TestFireRunsActionOnce(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewManager(backoff.Default(), sched)

	runs := 0
	m.PostRetryRegister("gcm", func() { runs++ })
	assert.True(t, m.IsPending("gcm", OperationRegister))

	sched.fire(0)
	sched.fire(0)
	assert.Equal(t, 1, runs)
	assert.False(t, m.IsPending("gcm", OperationRegister))
}

func TestCancelledTaskNeverRuns(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewManager(backoff.Default(), sched)

	runs := 0
	m.PostRetryUnregister("gcm", func() { runs++ })
	assert.True(t, m.CancelRetryUnregister("gcm"))
	assert.False(t, m.CancelRetryUnregister("gcm"), "second cancel is a no-op")

	sched.fire(0)
	assert.Equal(t, 0, runs)
	assert.Equal(t, 1, m.Tries("gcm", OperationUnregister), "cancel leaves the counter")
}

func TestReplacedTaskNeverRuns(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewManager(backoff.Default(), sched)

	var ran []int
	m.PostRetryRegister("gcm", func() { ran = append(ran, 1) })
	m.PostRetryRegister("gcm", func() { ran = append(ran, 2) })

	sched.fire(0)
	sched.fire(1)
	assert.Equal(t, []int{2}, ran)
}

func TestCancelRetryAllOperations(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewManager(backoff.Default(), sched)

	m.PostRetryRegister("gcm", func() { t.Fatal("register retry ran") })
	m.PostRetryUnregister("gcm", func() { t.Fatal("unregister retry ran") })
	m.CancelRetryAllOperations("gcm")

	sched.fire(0)
	sched.fire(1)
	assert.False(t, m.IsPending("gcm", OperationRegister))
	assert.False(t, m.IsPending("gcm", OperationUnregister))
}

func TestActionMayReenterManager(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewManager(backoff.Default(), sched)

	m.PostRetryRegister("gcm", func() {
		if m.HasTries("gcm", OperationRegister) {
			m.PostRetryRegister("gcm", func() {})
		}
	})
	sched.fire(0)

	assert.Equal(t, 2, m.Tries("gcm", OperationRegister))
	assert.True(t, m.IsPending("gcm", OperationRegister))
}

func TestResetAndResetAll(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewManager(backoff.Default(), sched)

	m.PostRetryRegister("gcm", func() {})
	m.PostRetryRegister("adm", func() {})
	m.Reset("gcm", OperationRegister)
	assert.Equal(t, 0, m.Tries("gcm", OperationRegister))
	assert.True(t, m.IsPending("gcm", OperationRegister), "reset keeps the scheduled task")

	m.ResetAll()
	assert.Equal(t, 0, m.Tries("adm", OperationRegister))
	assert.False(t, m.IsPending("adm", OperationRegister))
}

func TestNilPolicyAndSchedulerDefaults(t *testing.T) {
	m := NewManager(nil, nil)

	assert.Equal(t, backoff.DefaultTryCount, m.Policy().TryCount())
	assert.IsType(t, RealScheduler{}, m.scheduler)
}

func TestRealSchedulerRuns(t *testing.T) {
	done := make(chan struct{})
	RealScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "register", OperationRegister.String())
	assert.Equal(t, "unregister", OperationUnregister.String())
	assert.Equal(t, "operation(9)", Operation(9).String())
}
