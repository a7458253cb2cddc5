package settings

import "fmt"

// State is the coordinator's global registration state. It is persisted as
// an integer.
type State int

const (
	StateUnregistered State = iota
	StateRegistering
	StateRegistered
)

// String returns the upper-case state name.
func (s State) String() string {
	switch s {
	case StateUnregistered:
		return "UNREGISTERED"
	case StateRegistering:
		return "REGISTERING"
	case StateRegistered:
		return "REGISTERED"
	default:
		return fmt.Sprintf("STATE(%d)", int(s))
	}
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= StateUnregistered && s <= StateRegistered
}
