package interfaces

import "github.com/opd-ai/openpush/pusherr"

// Provider is a push transport the coordinator can register with.
//
// Register and Unregister start asynchronous work and return immediately;
// their outcome is reported later through a Receiver keyed by Name. The
// getters must be cheap and safe to call from any goroutine.
type Provider interface {
	// Name returns the unique, stable provider name.
	Name() string

	// HostAppPackage returns the package of the application hosting the
	// provider on the device, or "" if it has none.
	HostAppPackage() string

	// Register starts a registration.
	Register()

	// Unregister starts an unregistration.
	Unregister()

	// IsAvailable reports whether the provider can be used on this device.
	IsAvailable() Availability

	// IsRegistered reports whether the provider holds a registration.
	IsRegistered() bool

	// RegistrationID returns the current registration id, or "".
	RegistrationID() string

	// OnRegistrationInvalid tells the provider its registration id is stale.
	OnRegistrationInvalid()

	// OnUnavailable tells the provider it became unavailable.
	OnUnavailable()
}

// Availability is the result of Provider.IsAvailable.
type Availability struct {
	Available bool
	// ErrorCode is the provider-defined reason for unavailability, meaningful
	// only when HasErrorCode is set.
	ErrorCode    int
	HasErrorCode bool
}

// Available is the Availability of a usable provider.
func Available() Availability {
	return Availability{Available: true}
}

// Unavailable is the Availability of a provider with no specific reason.
func Unavailable() Availability {
	return Availability{}
}

// UnavailableWithCode is the Availability of a provider that reported a
// specific reason. The coordinator records it as an availability error.
func UnavailableWithCode(code int) Availability {
	return Availability{ErrorCode: code, HasErrorCode: true}
}

// Receiver accepts the asynchronous results of provider operations. The
// coordinator implements it; providers and transport glue call it from any
// goroutine. Every method returns an error only when providerName is not
// part of the current configuration or the receiver is not initialized.
type Receiver interface {
	OnRegistered(providerName, registrationID string) error
	OnUnregistered(providerName, oldRegistrationID string) error
	OnRegistrationError(providerName string, err *pusherr.Error) error
	OnUnregistrationError(providerName string, err *pusherr.Error) error
	// OnError reports a failure whose operation is not known to the caller.
	OnError(providerName string, err *pusherr.Error) error
	OnMessage(providerName string, data map[string]string) error
	OnDeletedMessages(providerName string, count int) error
}

// SystemPreferredFunc reports whether a provider belongs to the device's
// system vendor and should be tried before the others.
type SystemPreferredFunc func(p Provider) bool

// HostPackageIn returns a SystemPreferredFunc matching providers whose host
// application package is one of packages.
func HostPackageIn(packages ...string) SystemPreferredFunc {
	set := make(map[string]struct{}, len(packages))
	for _, pkg := range packages {
		set[pkg] = struct{}{}
	}
	return func(p Provider) bool {
		pkg := p.HostAppPackage()
		if pkg == "" {
			return false
		}
		_, ok := set[pkg]
		return ok
	}
}
