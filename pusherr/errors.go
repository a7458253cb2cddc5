package pusherr

import (
	"errors"
	"fmt"
)

// Kind classifies a provider failure.
type Kind uint8

const (
	// KindServiceNotAvailable indicates the provider backend could not be reached.
	KindServiceNotAvailable Kind = iota + 1
	// KindInvalidParameters indicates the provider rejected the request parameters.
	KindInvalidParameters
	// KindInvalidSender indicates the sender id is not accepted by the provider.
	KindInvalidSender
	// KindAuthenticationFailed indicates the device account could not authenticate.
	KindAuthenticationFailed
	// KindProviderSpecific is a vendor error with no portable meaning.
	KindProviderSpecific
	// KindAvailability indicates the provider is not available on this device.
	KindAvailability
	// KindRegisteringPerforming indicates a registration is already in flight.
	KindRegisteringPerforming
	// KindUnregisteringPerforming indicates an unregistration is already in flight.
	KindUnregisteringPerforming
	// KindRegisteringTimeout indicates no registration result arrived in time.
	KindRegisteringTimeout
)

var kindNames = map[Kind]string{
	KindServiceNotAvailable:     "SERVICE_NOT_AVAILABLE",
	KindInvalidParameters:       "INVALID_PARAMETERS",
	KindInvalidSender:           "INVALID_SENDER",
	KindAuthenticationFailed:    "AUTHENTICATION_FAILED",
	KindProviderSpecific:        "PROVIDER_SPECIFIC_ERROR",
	KindAvailability:            "AVAILABILITY_ERROR",
	KindRegisteringPerforming:   "REGISTERING_PERFORMING",
	KindUnregisteringPerforming: "UNREGISTERING_PERFORMING",
	KindRegisteringTimeout:      "REGISTERING_TIMEOUT",
}

// String returns the canonical upper-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_ERROR(%d)", uint8(k))
}

// Recoverable reports whether retrying the same provider can plausibly succeed.
func (k Kind) Recoverable() bool {
	switch k {
	case KindServiceNotAvailable, KindRegisteringPerforming, KindUnregisteringPerforming:
		return true
	default:
		return false
	}
}

// ParseKind maps a canonical kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Error is a provider failure delivered to the coordinator as data.
type Error struct {
	Kind         Kind
	ProviderName string
	// Code is a provider-defined numeric code, meaningful only with HasCode.
	Code    int
	HasCode bool
	Message string
}

// New creates an error of the given kind for a provider.
func New(kind Kind, providerName, message string) *Error {
	return &Error{Kind: kind, ProviderName: providerName, Message: message}
}

// NewWithCode creates an error carrying a provider-defined code.
func NewWithCode(kind Kind, providerName string, code int, message string) *Error {
	return &Error{Kind: kind, ProviderName: providerName, Code: code, HasCode: true, Message: message}
}

// Availability creates the unrecoverable error recorded for a provider that
// reported itself unavailable with a specific code.
func Availability(providerName string, code int) *Error {
	return NewWithCode(KindAvailability, providerName, code, "provider is not available")
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.ProviderName != "" {
		msg = e.ProviderName + ": " + msg
	}
	if e.HasCode {
		msg = fmt.Sprintf("%s (code %d)", msg, e.Code)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Recoverable reports whether the failure is eligible for backoff retry.
func (e *Error) Recoverable() bool {
	return e != nil && e.Kind.Recoverable()
}

// Is matches another *Error by kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.ProviderName == "" || t.ProviderName == e.ProviderName)
}

// Contract violations. These are caller bugs and are returned synchronously.
var (
	// ErrNotInitialized is returned when an operation runs before Init.
	ErrNotInitialized = errors.New("push helper is not initialized")

	// ErrAlreadyInitialized is returned when Init is called a second time.
	ErrAlreadyInitialized = errors.New("push helper is already initialized")

	// ErrUnknownProvider is returned for a provider name outside the configuration.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrNoProviders is returned when a configuration has no providers.
	ErrNoProviders = errors.New("configuration needs at least one provider")

	// ErrNoNotifier is returned when a configuration has no event notifier.
	ErrNoNotifier = errors.New("configuration needs an event notifier")

	// ErrDuplicateProvider is returned when two providers share a name.
	ErrDuplicateProvider = errors.New("duplicate provider name")

	// ErrNilProvider is returned when a nil provider is added to a configuration.
	ErrNilProvider = errors.New("provider is nil")

	// ErrNegativeTimeout is returned for a negative registering timeout.
	ErrNegativeTimeout = errors.New("timeout must not be negative")
)
