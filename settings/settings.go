package settings

import (
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	keyState                 = "state"
	keyLastProviderName      = "last_provider_name"
	keyPendingRegistration   = "pending_registration_provider"
	keyPendingUnregistration = "pending_unregistration_provider"
	keyLastDeviceIdentity    = "last_device_identity"
	keyRegisteringPrefix     = "registering:"
	keyUnregisteringPrefix   = "unregistering:"
	flagTrue                 = "true"
)

// Settings is the coordinator's durable state. Every mutation is written
// through to the Store before the call returns. Reads and writes are
// serialized by a single lock, so no reader observes a partial Clear.
//
// A failing Store does not fail the call: the error is logged and the new
// value is kept in memory for the rest of the process lifetime.
type Settings struct {
	mu     sync.RWMutex
	store  Store
	values map[string]string
	logger *logrus.Entry
}

// New loads the snapshot held by store. A store that cannot be read yields
// empty settings.
func New(store Store) *Settings {
	s := &Settings{
		store:  store,
		logger: logrus.WithField("component", "Settings"),
	}

	values, err := store.Load()
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"function": "New",
			"error":    err.Error(),
		}).Error("Failed to load persisted settings, starting empty")
		values = make(map[string]string)
	}
	s.values = values
	return s
}

// State returns the persisted global state.
func (s *Settings) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[keyState]
	if !ok {
		return StateUnregistered
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !State(n).Valid() {
		s.logger.WithFields(logrus.Fields{
			"function": "State",
			"value":    raw,
		}).Warn("Ignoring invalid persisted state")
		return StateUnregistered
	}
	return State(n)
}

// SaveState persists the global state.
func (s *Settings) SaveState(state State) {
	s.set(keyState, strconv.Itoa(int(state)))
}

// LastProviderName returns the provider of the last successful registration.
func (s *Settings) LastProviderName() string {
	return s.get(keyLastProviderName)
}

// SaveLastProviderName persists the last provider; "" removes it.
func (s *Settings) SaveLastProviderName(name string) {
	s.set(keyLastProviderName, name)
}

// IsRegistering reports whether a registration is in flight for the provider.
func (s *Settings) IsRegistering(provider string) bool {
	return s.get(keyRegisteringPrefix+provider) == flagTrue
}

// SaveRegistering records or clears an in-flight registration.
func (s *Settings) SaveRegistering(provider string, registering bool) {
	s.setFlag(keyRegisteringPrefix+provider, registering)
}

// IsUnregistering reports whether an unregistration is in flight for the provider.
func (s *Settings) IsUnregistering(provider string) bool {
	return s.get(keyUnregisteringPrefix+provider) == flagTrue
}

// SaveUnregistering records or clears an in-flight unregistration.
func (s *Settings) SaveUnregistering(provider string, unregistering bool) {
	s.setFlag(keyUnregisteringPrefix+provider, unregistering)
}

// RegisteringProviders returns every provider with an in-flight registration.
func (s *Settings) RegisteringProviders() []string {
	return s.withPrefix(keyRegisteringPrefix)
}

// UnregisteringProviders returns every provider with an in-flight unregistration.
func (s *Settings) UnregisteringProviders() []string {
	return s.withPrefix(keyUnregisteringPrefix)
}

// PendingRegistrationProvider returns the provider whose registration waits
// for its unregistration to finish, or "".
func (s *Settings) PendingRegistrationProvider() string {
	return s.get(keyPendingRegistration)
}

// SavePendingRegistrationProvider records a deferred registration; "" clears it.
func (s *Settings) SavePendingRegistrationProvider(name string) {
	s.set(keyPendingRegistration, name)
}

// PendingUnregistrationProvider returns the provider whose unregistration
// waits for its registration to finish, or "".
func (s *Settings) PendingUnregistrationProvider() string {
	return s.get(keyPendingUnregistration)
}

// SavePendingUnregistrationProvider records a deferred unregistration; "" clears it.
func (s *Settings) SavePendingUnregistrationProvider(name string) {
	s.set(keyPendingUnregistration, name)
}

// LastDeviceIdentity returns the device identity recorded at the last
// successful registration.
func (s *Settings) LastDeviceIdentity() string {
	return s.get(keyLastDeviceIdentity)
}

// SaveLastDeviceIdentity persists the device identity.
func (s *Settings) SaveLastDeviceIdentity(identity string) {
	s.set(keyLastDeviceIdentity, identity)
}

// Clear removes every value.
func (s *Settings) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	s.persist("Clear")
}

// Snapshot returns a copy of every persisted value.
func (s *Settings) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyValues(s.values)
}

func (s *Settings) get(k string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[k]
}

func (s *Settings) set(k, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.values[k]; ok && cur == v {
		return
	}
	if v == "" {
		if _, ok := s.values[k]; !ok {
			return
		}
		delete(s.values, k)
	} else {
		s.values[k] = v
	}
	s.persist(k)
}

func (s *Settings) setFlag(k string, on bool) {
	if on {
		s.set(k, flagTrue)
		return
	}
	s.set(k, "")
}

func (s *Settings) withPrefix(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for k, v := range s.values {
		if v == flagTrue && strings.HasPrefix(k, prefix) {
			names = append(names, strings.TrimPrefix(k, prefix))
		}
	}
	return names
}

// persist writes the snapshot; callers hold s.mu.
func (s *Settings) persist(key string) {
	if err := s.store.Save(s.values); err != nil {
		s.logger.WithFields(logrus.Fields{
			"function": "persist",
			"key":      key,
			"error":    err.Error(),
		}).Error("Failed to persist settings")
	}
}
