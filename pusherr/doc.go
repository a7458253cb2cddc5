// Package pusherr defines the error taxonomy shared by push providers and the
// registration coordinator.
//
// Provider failures are values of type *Error and travel as data through the
// coordinator's received-event handlers. Each carries a Kind:
//
//   - Recoverable kinds (KindServiceNotAvailable, KindRegisteringPerforming,
//     KindUnregisteringPerforming) are retried with backoff.
//   - Every other kind is fatal for that provider in the current sweep and
//     makes the coordinator fall back to the next candidate.
//
// Contract violations such as calling Register before Init are reported
// synchronously using the sentinel errors in this package:
//
//	if err := helper.Register(); errors.Is(err, pusherr.ErrNotInitialized) {
//	    log.Fatal("call Init first")
//	}
package pusherr
