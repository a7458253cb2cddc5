// Package interfaces defines the contracts between the registration
// coordinator and the outside world.
//
// [Provider] is the push transport abstraction. The coordinator treats it as
// an opaque dependency: it asks for availability and registration status,
// starts Register/Unregister, and waits for the outcome to come back through
// a [Receiver]:
//
//	type loopback struct {
//	    recv interfaces.Receiver
//	    id   string
//	}
//
//	func (l *loopback) Name() string           { return "loopback" }
//	func (l *loopback) HostAppPackage() string { return "" }
//	func (l *loopback) Register() {
//	    go func() {
//	        l.id = "token-1"
//	        l.recv.OnRegistered(l.Name(), l.id)
//	    }()
//	}
//	// ...
//
// [EventNotifier] is the outbound side: the application learns about
// registrations, unregistrations, messages and sweep exhaustion through it.
// The notifier package provides ready-made adapters.
//
// # Availability
//
// [Availability] distinguishes a provider that is simply absent from one that
// is absent for a specific reason. Only the latter is reported to the
// application in the exhaustion error map:
//
//	if !playServicesInstalled() {
//	    return interfaces.UnavailableWithCode(servicesMissing)
//	}
//	return interfaces.Available()
//
// # Thread Safety
//
// Implementations of all interfaces must be safe for concurrent use.
package interfaces
