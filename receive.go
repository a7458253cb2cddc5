package openpush

import (
	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/limits"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/opd-ai/openpush/retry"
	"github.com/opd-ai/openpush/settings"
)

// OnRegistered handles a successful registration reported by a provider.
func (h *Helper) OnRegistered(providerName, registrationID string) error {
	rt, p, err := h.lookup(providerName)
	if err != nil {
		return err
	}
	if err := limits.ValidateRegistrationID(registrationID); err != nil {
		newLogger("OnRegistered").WithProvider(providerName).WithError(err).Warn("Provider reported an invalid registration id")
		return h.OnRegistrationError(providerName, pusherr.New(pusherr.KindProviderSpecific, providerName, err.Error()))
	}

	h.lock()
	defer h.unlock()
	if h.isStale(providerName) {
		newLogger("OnRegistered").WithProvider(providerName).Warn("Ignoring registration from a provider that is not being registered")
		return nil
	}
	h.handleRegistered(rt, p, registrationID)
	return nil
}

// OnUnregistered handles a completed unregistration reported by a provider.
func (h *Helper) OnUnregistered(providerName, oldRegistrationID string) error {
	rt, p, err := h.lookup(providerName)
	if err != nil {
		return err
	}
	h.lock()
	defer h.unlock()
	newLogger("OnUnregistered").WithProvider(providerName).Debug("Provider unregistered")
	h.handleUnregistered(rt, p)
	return nil
}

// OnRegistrationError handles a failed registration reported by a provider.
func (h *Helper) OnRegistrationError(providerName string, e *pusherr.Error) error {
	rt, p, err := h.lookup(providerName)
	if err != nil {
		return err
	}
	e = normalize(providerName, e)
	h.lock()
	defer h.unlock()
	h.handleRegistrationError(rt, p, e)
	return nil
}

// OnUnregistrationError handles a failed unregistration reported by a provider.
func (h *Helper) OnUnregistrationError(providerName string, e *pusherr.Error) error {
	rt, p, err := h.lookup(providerName)
	if err != nil {
		return err
	}
	e = normalize(providerName, e)
	h.lock()
	defer h.unlock()
	h.handleUnregistrationError(rt, p, e)
	return nil
}

// OnError handles a failure of unknown origin. It is treated as a
// registration error while registering or when the provider holds no
// registration, and as an unregistration error otherwise.
func (h *Helper) OnError(providerName string, e *pusherr.Error) error {
	rt, p, err := h.lookup(providerName)
	if err != nil {
		return err
	}
	e = normalize(providerName, e)
	h.lock()
	defer h.unlock()
	if h.settings.State() == settings.StateRegistering || !p.IsRegistered() {
		h.handleRegistrationError(rt, p, e)
		return nil
	}
	h.handleUnregistrationError(rt, p, e)
	return nil
}

// OnMessage forwards a message from the current provider to the notifier.
// Messages from any other provider are dropped.
func (h *Helper) OnMessage(providerName string, data map[string]string) error {
	rt, _, err := h.lookup(providerName)
	if err != nil {
		return err
	}
	h.lock()
	defer h.unlock()
	if !h.acceptMessage("OnMessage", providerName) {
		return nil
	}
	notifier := rt.notifier()
	h.after(func() { notifier.OnMessage(providerName, data) })
	return nil
}

// OnDeletedMessages forwards a deleted-messages notice from the current
// provider to the notifier.
func (h *Helper) OnDeletedMessages(providerName string, count int) error {
	rt, _, err := h.lookup(providerName)
	if err != nil {
		return err
	}
	h.lock()
	defer h.unlock()
	if !h.acceptMessage("OnDeletedMessages", providerName) {
		return nil
	}
	notifier := rt.notifier()
	h.after(func() { notifier.OnDeletedMessages(providerName, count) })
	return nil
}

func (h *Helper) lookup(providerName string) (*runtime, interfaces.Provider, error) {
	rt, err := h.runtime()
	if err != nil {
		return nil, nil, err
	}
	p, err := rt.provider(providerName)
	if err != nil {
		newLogger("lookup").WithProvider(providerName).Warn("Event from unknown provider")
		return nil, nil, err
	}
	return rt, p, nil
}

func normalize(providerName string, e *pusherr.Error) *pusherr.Error {
	if e == nil {
		return pusherr.New(pusherr.KindProviderSpecific, providerName, "unspecified provider error")
	}
	if e.ProviderName == "" {
		c := *e
		c.ProviderName = providerName
		return &c
	}
	return e
}

// isStale reports whether a registration outcome comes from a provider the
// coordinator has moved away from.
func (h *Helper) isStale(providerName string) bool {
	return h.current != nil && h.current.Name() != providerName && !h.settings.IsRegistering(providerName)
}

// isStaleError reports whether a registration error concerns a provider
// that is neither registering nor waiting for a register retry.
func (h *Helper) isStaleError(rt *runtime, providerName string) bool {
	return !h.settings.IsRegistering(providerName) && !rt.retry.IsPending(providerName, retry.OperationRegister)
}

// acceptMessage reports whether providerName is the current provider. A
// message is proof of a working registration, so the state is raised to
// registered.
func (h *Helper) acceptMessage(function, providerName string) bool {
	if h.current == nil || h.current.Name() != providerName {
		newLogger(function).WithProvider(providerName).Warn("Dropping message from a provider that is not current")
		return false
	}
	if h.settings.State() != settings.StateRegistered {
		newLogger(function).WithProvider(providerName).Info("Message received, marking provider registered")
		h.saveState(settings.StateRegistered)
	}
	return true
}

func (h *Helper) handleRegistered(rt *runtime, p interfaces.Provider, registrationID string) {
	name := p.Name()
	logger := newLogger("handleRegistered").WithProvider(name)

	rt.retry.CancelRetryAllOperations(name)
	rt.retry.Reset(name, retry.OperationRegister)
	h.settings.SaveRegistering(name, false)
	h.cancelRegisteringTimeout(name)

	if h.settings.State() == settings.StateRegistered {
		logger.Debug("Already registered, ignoring duplicate registration")
		return
	}

	h.saveState(settings.StateRegistered)
	h.saveDeviceIdentity()
	h.current = p
	h.settings.SaveLastProviderName(name)
	h.registrationErrors = make(map[string]*pusherr.Error)
	h.metrics.Registered(name)
	logger.Info("Provider registered")

	notifier := rt.notifier()
	h.after(func() { notifier.OnRegistered(name, registrationID) })

	if h.settings.PendingUnregistrationProvider() == name {
		h.settings.SavePendingUnregistrationProvider("")
		logger.Info("Running deferred unregistration")
		h.unregisterProvider(rt, p)
	}
}

func (h *Helper) handleUnregistered(rt *runtime, p interfaces.Provider) {
	name := p.Name()
	if h.settings.IsUnregistering(name) {
		h.metrics.Unregistered(name)
	}
	h.settings.SaveUnregistering(name, false)
	rt.retry.CancelRetryUnregister(name)
	rt.retry.Reset(name, retry.OperationUnregister)

	if h.settings.PendingRegistrationProvider() == name {
		h.settings.SavePendingRegistrationProvider("")
		newLogger("handleUnregistered").WithProvider(name).Info("Running deferred registration")
		h.registerProvider(rt, p)
	}
}

func (h *Helper) handleRegistrationError(rt *runtime, p interfaces.Provider, e *pusherr.Error) {
	name := p.Name()
	logger := newLogger("handleRegistrationError").WithProvider(name).WithField("kind", e.Kind.String())

	if h.settings.State() == settings.StateRegistered {
		logger.Debug("Already registered, ignoring registration error")
		return
	}
	if h.isStaleError(rt, name) {
		logger.Warn("Ignoring registration error from a provider that is not being registered")
		return
	}

	h.cancelRegisteringTimeout(name)
	h.saveState(settings.StateUnregistered)
	h.metrics.Failure(name, retry.OperationRegister.String(), e.Kind.String())

	if e.Recoverable() && rt.retry.HasTries(name, retry.OperationRegister) {
		sweep := h.sweep
		delay := rt.retry.PostRetryRegister(name, func() { h.retryRegister(name, sweep) })
		h.metrics.RetryScheduled(name, retry.OperationRegister.String())
		logger.WithField("delay", delay.String()).Info("Registration failed, retry scheduled")
		return
	}

	logger.WithError(e).Warn("Registration failed, abandoning provider")
	h.registrationErrors[name] = e
	rt.retry.Reset(name, retry.OperationRegister)
	h.settings.SaveRegistering(name, false)

	if h.settings.PendingUnregistrationProvider() == name {
		// The application asked to unregister meanwhile; honour it instead
		// of moving on to another provider.
		h.settings.SavePendingUnregistrationProvider("")
		h.unregisterProvider(rt, p)
		return
	}
	h.registerNextAvailableProvider(rt, name)
}

func (h *Helper) handleUnregistrationError(rt *runtime, p interfaces.Provider, e *pusherr.Error) {
	name := p.Name()
	logger := newLogger("handleUnregistrationError").WithProvider(name).WithField("kind", e.Kind.String())

	if !p.IsRegistered() {
		logger.Debug("Provider holds no registration, treating unregistration as complete")
		h.handleUnregistered(rt, p)
		return
	}

	h.metrics.Failure(name, retry.OperationUnregister.String(), e.Kind.String())
	if e.Recoverable() && rt.retry.HasTries(name, retry.OperationUnregister) {
		delay := rt.retry.PostRetryUnregister(name, func() { h.retryUnregister(name) })
		h.metrics.RetryScheduled(name, retry.OperationUnregister.String())
		logger.WithField("delay", delay.String()).Info("Unregistration failed, retry scheduled")
		return
	}

	logger.WithError(e).Warn("Unregistration failed, giving up")
	h.settings.SaveUnregistering(name, false)
	rt.retry.Reset(name, retry.OperationUnregister)
	if h.settings.PendingRegistrationProvider() == name {
		h.settings.SavePendingRegistrationProvider("")
		h.registerProvider(rt, p)
	}
}

// retryRegister runs a register retry posted during sweep. A retry that
// outlived its sweep is dropped; the newer sweep owns the provider.
func (h *Helper) retryRegister(name string, sweep uint64) {
	rt := h.rt.Load()
	p, err := rt.provider(name)
	if err != nil {
		return
	}
	h.lock()
	defer h.unlock()
	if sweep != h.sweep {
		newLogger("retryRegister").WithProvider(name).Debug("Dropping retry from a superseded sweep")
		return
	}
	if h.settings.State() == settings.StateRegistered || !h.settings.IsRegistering(name) {
		return
	}
	newLogger("retryRegister").WithProvider(name).
		WithField("attempt", rt.retry.Tries(name, retry.OperationRegister)).
		Info("Retrying registration")
	h.registerProvider(rt, p)
}

func (h *Helper) retryUnregister(name string) {
	rt := h.rt.Load()
	p, err := rt.provider(name)
	if err != nil {
		return
	}
	h.lock()
	defer h.unlock()
	if !h.settings.IsUnregistering(name) {
		return
	}
	if p.IsAvailable().Available {
		newLogger("retryUnregister").WithProvider(name).Info("Retrying unregistration")
		h.after(p.Unregister)
		return
	}
	pending := h.settings.PendingRegistrationProvider() == name
	h.cleanupUnavailable(rt, p)
	if pending {
		h.registerNextAvailableProvider(rt, name)
	}
}
