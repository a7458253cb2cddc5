package openpush

import (
	"github.com/opd-ai/openpush/identity"
	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/opd-ai/openpush/settings"
)

// restore adopts the provider registered in a previous run if it still
// holds its registration. Otherwise the persisted state is discarded and,
// with recover-provider enabled, a new sweep starts.
func (h *Helper) restore(rt *runtime) {
	h.lock()
	defer h.unlock()

	logger := newLogger("restore")
	name := h.settings.LastProviderName()
	var last interfaces.Provider
	if name != "" {
		last, _ = rt.provider(name)
	}

	if last != nil && last.IsAvailable().Available && last.IsRegistered() {
		h.current = last
		h.saveState(settings.StateRegistered)
		logger.WithProvider(name).Info("Restored registration from previous run")
		return
	}

	h.settings.Clear()
	h.metrics.SetState(int(settings.StateUnregistered))
	if name == "" {
		logger.Debug("No previous registration to restore")
		return
	}

	logger.WithProvider(name).Warn("Previous provider lost its registration")
	if last != nil {
		h.cleanupUnavailable(rt, last)
	}
	if rt.config.recoverProvider {
		logger.Info("Recovering with another provider")
		h.register(rt)
	}
}

// checkDeviceIdentity forces a new registration when the device identity
// differs from the one seen at the last successful registration.
func (h *Helper) checkDeviceIdentity() {
	fingerprint, ok := h.deviceFingerprint()
	if !ok {
		return
	}
	last := h.settings.LastDeviceIdentity()
	if last == "" || last == fingerprint {
		return
	}
	newLogger("checkDeviceIdentity").Info("Device identity changed, registering again")
	if err := h.OnNeedRetryRegister(); err != nil {
		newLogger("checkDeviceIdentity").WithError(err).Error("Failed to restart registration")
	}
}

func (h *Helper) deviceFingerprint() (string, bool) {
	if h.probe == nil {
		return "", false
	}
	id, err := h.probe.DeviceIdentity()
	if err != nil {
		newLogger("deviceFingerprint").WithError(err).Warn("Device identity unavailable")
		return "", false
	}
	return identity.Fingerprint(id), true
}

func (h *Helper) saveDeviceIdentity() {
	if fingerprint, ok := h.deviceFingerprint(); ok {
		h.settings.SaveLastDeviceIdentity(fingerprint)
	}
}

// OnNeedRetryRegister discards all persisted state, invalidates the current
// registration, and starts a new sweep.
func (h *Helper) OnNeedRetryRegister() error {
	rt, err := h.runtime()
	if err != nil {
		return err
	}

	h.lock()
	h.settings.Clear()
	h.metrics.SetState(int(settings.StateUnregistered))
	h.registrationErrors = make(map[string]*pusherr.Error)
	rt.retry.ResetAll()
	h.cancelRegisteringTimeout("")
	previous := h.current
	h.current = nil
	h.unlock()

	newLogger("OnNeedRetryRegister").Info("Registration invalidated, registering again")
	if previous != nil {
		previous.OnRegistrationInvalid()
	}

	h.lock()
	defer h.unlock()
	h.register(rt)
	return nil
}

// OnProviderUnavailable handles a provider that disappeared from the device,
// for example because its host application was removed. If it was the
// current provider the sweep continues with the next one.
func (h *Helper) OnProviderUnavailable(providerName string) error {
	rt, p, err := h.lookup(providerName)
	if err != nil {
		return err
	}
	h.lock()
	defer h.unlock()

	logger := newLogger("OnProviderUnavailable").WithProvider(providerName)
	h.cleanupUnavailable(rt, p)
	if h.current == nil || h.current.Name() != providerName {
		logger.Debug("Provider was not current")
		return nil
	}

	logger.Warn("Current provider became unavailable, falling back")
	h.current = nil
	h.settings.SaveLastProviderName("")
	h.saveState(settings.StateUnregistered)
	h.registerNextAvailableProvider(rt, providerName)
	return nil
}
