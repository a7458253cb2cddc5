package openpush

import (
	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/opd-ai/openpush/retry"
	"github.com/opd-ai/openpush/settings"
)

// register starts a new sweep when nothing is registered or in flight.
func (h *Helper) register(rt *runtime) {
	logger := newLogger("register")
	if state := h.settings.State(); state != settings.StateUnregistered {
		logger.WithField("state", state.String()).Debug("Registration already in place or in flight")
		return
	}

	// A new sweep supersedes retries left over from the previous one.
	for _, p := range rt.candidates {
		name := p.Name()
		if rt.retry.CancelRetryRegister(name) || h.settings.IsRegistering(name) {
			h.settings.SaveRegistering(name, false)
		}
		rt.retry.Reset(name, retry.OperationRegister)
	}
	h.sweep++
	h.registrationErrors = make(map[string]*pusherr.Error)
	h.metrics.SweepStarted()

	logger.WithField("candidates", len(rt.candidates)).Info("Starting provider sweep")
	h.registerNextAvailableProvider(rt, "")
}

// registerNextAvailableProvider tries the candidates after prev in circular
// order, each at most once, skipping providers that already failed in this
// sweep. With prev empty the sweep starts at the first candidate.
func (h *Helper) registerNextAvailableProvider(rt *runtime, prev string) {
	logger := newLogger("registerNextAvailableProvider").WithField("previous", prev)

	start := 0
	if prev != "" {
		for i, p := range rt.candidates {
			if p.Name() == prev {
				start = i + 1
				break
			}
		}
	}

	n := len(rt.candidates)
	for i := 0; i < n; i++ {
		p := rt.candidates[(start+i)%n]
		name := p.Name()
		if _, failed := h.registrationErrors[name]; failed {
			continue
		}
		availability := p.IsAvailable()
		if !availability.Available {
			if availability.HasErrorCode {
				h.registrationErrors[name] = pusherr.Availability(name, availability.ErrorCode)
			}
			logger.WithProvider(name).Debug("Skipping unavailable provider")
			continue
		}
		rt.retry.CancelRetryRegister(name)
		h.registerProvider(rt, p)
		return
	}

	errs := make(map[string]*pusherr.Error, len(h.registrationErrors))
	for name, err := range h.registrationErrors {
		errs[name] = err
	}
	h.saveState(settings.StateUnregistered)
	h.current = nil
	h.metrics.SweepExhausted()
	logger.WithField("failures", len(errs)).Warn("No push provider could be registered")

	notifier := rt.notifier()
	h.after(func() { notifier.OnNoAvailableProvider(errs) })
}

// registerProvider registers p, or defers it behind an unregistration of
// the same provider that is still in flight.
func (h *Helper) registerProvider(rt *runtime, p interfaces.Provider) {
	name := p.Name()
	logger := newLogger("registerProvider").WithProvider(name)

	if h.settings.IsUnregistering(name) {
		rt.retry.CancelRetryUnregister(name)
		h.settings.SavePendingRegistrationProvider(name)
		h.saveState(settings.StateRegistering)
		h.current = p
		logger.Info("Provider is unregistering, registration deferred")
		h.after(p.Unregister)
		return
	}

	if id := p.RegistrationID(); p.IsRegistered() && id != "" && h.settings.State() != settings.StateRegistering {
		logger.Debug("Provider already holds a registration")
		h.handleRegistered(rt, p, id)
		return
	}

	if p.IsAvailable().Available {
		h.saveState(settings.StateRegistering)
		h.settings.SaveRegistering(name, true)
		h.current = p
		h.armRegisteringTimeout(rt, name)
		h.metrics.RegistrationAttempt(name)
		logger.Info("Registering with provider")
		h.after(p.Register)
		return
	}

	logger.Warn("Provider became unavailable before registration")
	h.cleanupUnavailable(rt, p)
	h.registerNextAvailableProvider(rt, name)
}

// unregisterProvider removes the registration held by p.
func (h *Helper) unregisterProvider(rt *runtime, p interfaces.Provider) {
	name := p.Name()
	oldID := p.RegistrationID()
	logger := newLogger("unregisterProvider").WithProvider(name)

	if h.settings.IsRegistering(name) {
		// Resolve the registration first; a waiting retry is started now.
		if rt.retry.CancelRetryRegister(name) {
			h.saveState(settings.StateRegistering)
			h.armRegisteringTimeout(rt, name)
			h.after(p.Register)
		}
		h.settings.SavePendingUnregistrationProvider(name)
		logger.Info("Provider is registering, unregistration deferred")
		return
	}

	if h.settings.PendingRegistrationProvider() == name {
		h.settings.SavePendingRegistrationProvider("")
		logger.Info("Deferred registration withdrawn")
		h.finishUnregister(rt, p, oldID)
		return
	}

	if !p.IsRegistered() {
		logger.Debug("Provider holds no registration")
		h.finishUnregister(rt, p, oldID)
		h.handleUnregistered(rt, p)
		return
	}

	if p.IsAvailable().Available {
		h.settings.SaveUnregistering(name, true)
		h.finishUnregister(rt, p, oldID)
		logger.Info("Unregistering from provider")
		h.after(p.Unregister)
		return
	}

	logger.Warn("Provider became unavailable before unregistration")
	h.finishUnregister(rt, p, oldID)
	h.cleanupUnavailable(rt, p)
}

// finishUnregister records the unregistered state and emits the event. It
// runs exactly once per unregistration request.
func (h *Helper) finishUnregister(rt *runtime, p interfaces.Provider, oldID string) {
	name := p.Name()
	h.saveState(settings.StateUnregistered)
	h.settings.SaveLastProviderName("")
	h.current = nil
	notifier := rt.notifier()
	h.after(func() { notifier.OnUnregistered(name, oldID) })
}

// cleanupUnavailable drops every in-flight marker of p and tells it that it
// is unavailable.
func (h *Helper) cleanupUnavailable(rt *runtime, p interfaces.Provider) {
	name := p.Name()
	rt.retry.CancelRetryAllOperations(name)
	rt.retry.Reset(name, retry.OperationRegister)
	rt.retry.Reset(name, retry.OperationUnregister)
	h.settings.SaveRegistering(name, false)
	h.settings.SaveUnregistering(name, false)
	h.cancelRegisteringTimeout(name)
	if h.settings.PendingRegistrationProvider() == name {
		h.settings.SavePendingRegistrationProvider("")
	}
	if h.settings.PendingUnregistrationProvider() == name {
		h.settings.SavePendingUnregistrationProvider("")
	}
	h.after(p.OnUnavailable)
}
