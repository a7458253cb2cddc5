// Package limits provides centralized bounds and validation functions for
// values that cross the coordinator's boundaries.
//
// # Bounds
//
//   - MaxProviderNameLength (128 bytes): provider names become part of
//     persisted keys (registering:<name>), so they are short and may not
//     contain ':' or whitespace.
//
//   - MaxRegistrationIDLength (4096 bytes): registration ids come from
//     partially-trusted provider callbacks and are persisted and forwarded
//     to the application.
//
//   - DefaultRegisteringTimeout (5 minutes) and MaxRegisteringTimeout
//     (24 hours): the window a registration may stay in flight before the
//     coordinator gives up on the provider.
//
// # Validation Functions
//
// Each validation function wraps one of the sentinel errors with context:
//
//	if err := limits.ValidateProviderName(name); err != nil {
//	    if errors.Is(err, limits.ErrTooLong) {
//	        // ...
//	    }
//	}
package limits
