// Package retry schedules delayed retries of provider operations.
//
// The Manager keeps, per provider and operation, a counter of retries
// scheduled so far and at most one pending one-shot task:
//
//	m := retry.NewManager(backoff.Default(), nil)
//	if m.HasTries("gcm", retry.OperationRegister) {
//	    m.PostRetryRegister("gcm", func() { helper.retryRegister("gcm") })
//	}
//
// Running out of tries is not an error; callers use HasTries to decide when to
// stop retrying and move on. Cancelling is idempotent, and a task that was
// cancelled or replaced never runs, even if its timer already fired.
//
// Time is abstracted by Scheduler so tests can fire tasks by hand.
package retry
