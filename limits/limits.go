// Package limits provides centralized bounds for names, ids and timeouts.
// This ensures consistent validation across configuration and callbacks.
package limits

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// MaxProviderNameLength bounds provider names, which are used as
	// persisted keys.
	MaxProviderNameLength = 128

	// MaxRegistrationIDLength bounds registration ids accepted from providers.
	// Vendor tokens are well below this (GCM ids are around 160 bytes).
	MaxRegistrationIDLength = 4096

	// DefaultRegisteringTimeout is how long a registration may stay in flight.
	DefaultRegisteringTimeout = 5 * time.Minute

	// MaxRegisteringTimeout is the largest accepted registering timeout.
	MaxRegisteringTimeout = 24 * time.Hour
)

var (
	// ErrEmpty indicates an empty value was provided
	ErrEmpty = errors.New("empty value")

	// ErrTooLong indicates a value exceeds its maximum length
	ErrTooLong = errors.New("value too long")

	// ErrInvalidCharacter indicates a value contains a forbidden character
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrOutOfRange indicates a duration outside its accepted bounds
	ErrOutOfRange = errors.New("value out of range")
)

// ValidateProviderName checks a provider name. Names may not be empty, may not
// exceed MaxProviderNameLength, and may not contain ':' or whitespace, since
// they are embedded in persisted keys.
func ValidateProviderName(name string) error {
	if name == "" {
		return fmt.Errorf("provider name: %w", ErrEmpty)
	}
	if len(name) > MaxProviderNameLength {
		return fmt.Errorf("%w: provider name size %d exceeds limit %d", ErrTooLong, len(name), MaxProviderNameLength)
	}
	if i := strings.IndexFunc(name, func(r rune) bool {
		return r == ':' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}); i >= 0 {
		return fmt.Errorf("%w: provider name %q at offset %d", ErrInvalidCharacter, name, i)
	}
	return nil
}

// ValidateRegistrationID checks a registration id delivered by a provider.
func ValidateRegistrationID(id string) error {
	if id == "" {
		return fmt.Errorf("registration id: %w", ErrEmpty)
	}
	if len(id) > MaxRegistrationIDLength {
		return fmt.Errorf("%w: registration id size %d exceeds limit %d", ErrTooLong, len(id), MaxRegistrationIDLength)
	}
	return nil
}

// ValidateRegisteringTimeout checks a registering timeout. Zero is accepted and
// means DefaultRegisteringTimeout.
func ValidateRegisteringTimeout(d time.Duration) error {
	if d < 0 || d > MaxRegisteringTimeout {
		return fmt.Errorf("%w: registering timeout %s not in [0, %s]", ErrOutOfRange, d, MaxRegisteringTimeout)
	}
	return nil
}
