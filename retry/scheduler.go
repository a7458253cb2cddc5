package retry

import "time"

// Timer is a scheduled one-shot task.
type Timer interface {
	// Stop prevents the task from running. It reports whether the call
	// stopped the task; stopping a fired or stopped task is a no-op.
	Stop() bool
}

// Scheduler runs delayed one-shot tasks. Tasks run on a goroutine owned by the
// scheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler implements Scheduler using time.AfterFunc.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
