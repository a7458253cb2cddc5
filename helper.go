package openpush

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/opd-ai/openpush/identity"
	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/metrics"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/opd-ai/openpush/retry"
	"github.com/opd-ai/openpush/settings"
	"github.com/sirupsen/logrus"
)

// PushHelper is the application-facing surface of the registration
// coordinator. Helper implements it; NewNoop returns an inert one.
type PushHelper interface {
	interfaces.Receiver

	Init(cfg *Configuration) error
	IsInitialized() bool
	Register() error
	Unregister() error
	OnNeedRetryRegister() error
	OnProviderUnavailable(providerName string) error

	State() settings.State
	IsRegistered() bool
	CurrentProvider() interfaces.Provider
	RegistrationID() string
}

// runtime is everything derived from a Configuration at Init. It is
// published once and never modified.
type runtime struct {
	config     *Configuration
	candidates []interfaces.Provider
	byName     map[string]interfaces.Provider
	retry      *retry.Manager
}

func (r *runtime) provider(name string) (interfaces.Provider, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pusherr.ErrUnknownProvider, name)
	}
	return p, nil
}

func (r *runtime) notifier() interfaces.EventNotifier {
	return r.config.notifier
}

// Helper selects one push provider, keeps it registered, and falls back to
// the next provider when it fails.
//
// All state transitions happen under a single registration lock. Provider
// calls and notifier events are queued while the lock is held and run in
// order once it is released, so providers and notifiers may call back into
// the Helper synchronously. One goroutine at a time drains the queue, so
// effects run in the order their transitions happened even when callers
// race.
type Helper struct {
	initMu sync.Mutex
	rt     atomic.Pointer[runtime]

	settings  *settings.Settings
	scheduler retry.Scheduler
	metrics   *metrics.Metrics
	probe     identity.Probe

	mu                 sync.Mutex
	effects            []func()
	draining           bool
	sweep              uint64
	current            interfaces.Provider
	registrationErrors map[string]*pusherr.Error
	timeout            retry.Timer
	timeoutProvider    string
	timeoutSeq         uint64

	logger *logrus.Entry
}

var _ PushHelper = (*Helper)(nil)

// New creates a Helper. Nil options use NewOptions. The Helper is unusable
// until Init is called.
func New(options *Options) *Helper {
	if options == nil {
		options = NewOptions()
	}
	store := options.Store
	if store == nil {
		store = settings.NewMemoryStore()
	}
	scheduler := options.Scheduler
	if scheduler == nil {
		scheduler = retry.RealScheduler{}
	}
	return &Helper{
		settings:           settings.New(store),
		scheduler:          scheduler,
		metrics:            options.Metrics,
		probe:              options.IdentityProbe,
		registrationErrors: make(map[string]*pusherr.Error),
		logger:             logrus.WithField("component", "push_helper"),
	}
}

// Init binds the configuration, restores the registration persisted by a
// previous run, and checks whether the device identity changed. It may be
// called once.
func (h *Helper) Init(cfg *Configuration) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}

	h.initMu.Lock()
	defer h.initMu.Unlock()

	if h.rt.Load() != nil {
		return pusherr.ErrAlreadyInitialized
	}

	candidates := cfg.candidates()
	rt := &runtime{
		config:     cfg,
		candidates: candidates,
		byName:     make(map[string]interfaces.Provider, len(candidates)),
		retry:      retry.NewManager(cfg.backoff, h.scheduler),
	}
	for _, p := range candidates {
		rt.byName[p.Name()] = p
	}
	h.rt.Store(rt)

	h.logger.WithFields(logrus.Fields{
		"providers":        len(candidates),
		"recover_provider": cfg.recoverProvider,
		"timeout":          cfg.registeringTimeout,
	}).Info("Push helper initialized")

	h.restore(rt)
	h.checkDeviceIdentity()
	return nil
}

// IsInitialized reports whether Init succeeded.
func (h *Helper) IsInitialized() bool {
	return h.rt.Load() != nil
}

func (h *Helper) runtime() (*runtime, error) {
	rt := h.rt.Load()
	if rt == nil {
		return nil, pusherr.ErrNotInitialized
	}
	return rt, nil
}

// Register starts a sweep over the providers unless a registration is
// already in place or in flight.
func (h *Helper) Register() error {
	rt, err := h.runtime()
	if err != nil {
		return err
	}
	h.lock()
	defer h.unlock()
	h.register(rt)
	return nil
}

// Unregister removes the registration of the current provider. An
// unregistration requested while the registration is still in flight is
// carried out once that registration resolves.
func (h *Helper) Unregister() error {
	rt, err := h.runtime()
	if err != nil {
		return err
	}
	h.lock()
	defer h.unlock()

	p := h.current
	if p == nil {
		newLogger("Unregister").Debug("No current provider, nothing to unregister")
		return nil
	}
	state := h.settings.State()
	if state == settings.StateUnregistered && !p.IsRegistered() && !h.settings.IsRegistering(p.Name()) {
		newLogger("Unregister").WithProvider(p.Name()).Warn("Provider is already unregistered")
		return nil
	}
	rt.retry.CancelRetryUnregister(p.Name())
	h.unregisterProvider(rt, p)
	return nil
}

// State returns the persisted registration state.
func (h *Helper) State() settings.State {
	return h.settings.State()
}

// IsRegistered reports whether a provider holds the active registration.
func (h *Helper) IsRegistered() bool {
	return h.settings.State() == settings.StateRegistered
}

// CurrentProvider returns the provider being registered or holding the
// registration, or nil.
func (h *Helper) CurrentProvider() interfaces.Provider {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RegistrationID returns the registration id of the current provider when
// registered, or "".
func (h *Helper) RegistrationID() string {
	p := h.CurrentProvider()
	if p == nil || !h.IsRegistered() {
		return ""
	}
	return p.RegistrationID()
}

// ProviderByName returns the configured provider with the given name.
func (h *Helper) ProviderByName(name string) (interfaces.Provider, error) {
	rt, err := h.runtime()
	if err != nil {
		return nil, err
	}
	return rt.provider(name)
}

// ProvidersForHostPackage returns the names of the providers hosted by the
// given application package, sorted.
func (h *Helper) ProvidersForHostPackage(pkg string) []string {
	rt := h.rt.Load()
	if rt == nil || pkg == "" {
		return nil
	}
	var names []string
	for _, p := range rt.candidates {
		if p.HostAppPackage() == pkg {
			names = append(names, p.Name())
		}
	}
	sort.Strings(names)
	return names
}

// lock takes the registration lock.
func (h *Helper) lock() {
	h.mu.Lock()
}

// unlock releases the registration lock and then runs the queued effects in
// FIFO order. If another goroutine is already draining, it picks up the
// effects queued here and unlock returns at once.
func (h *Helper) unlock() {
	if h.draining {
		h.mu.Unlock()
		return
	}
	h.draining = true
	for len(h.effects) > 0 {
		fn := h.effects[0]
		h.effects[0] = nil
		h.effects = h.effects[1:]
		h.mu.Unlock()
		fn()
		h.mu.Lock()
	}
	h.effects = nil
	h.draining = false
	h.mu.Unlock()
}

// after queues fn to run once the registration lock is released.
func (h *Helper) after(fn func()) {
	h.effects = append(h.effects, fn)
}

func (h *Helper) saveState(state settings.State) {
	h.settings.SaveState(state)
	h.metrics.SetState(int(state))
}

// armRegisteringTimeout abandons the registration with name if no result
// arrives within the configured timeout.
func (h *Helper) armRegisteringTimeout(rt *runtime, name string) {
	h.cancelRegisteringTimeout("")
	h.timeoutSeq++
	seq := h.timeoutSeq
	h.timeoutProvider = name
	h.timeout = h.scheduler.AfterFunc(rt.config.registeringTimeout, func() {
		h.registeringTimedOut(name, seq)
	})
}

// cancelRegisteringTimeout stops the timeout for name, or any timeout when
// name is empty.
func (h *Helper) cancelRegisteringTimeout(name string) {
	if h.timeout == nil || (name != "" && h.timeoutProvider != name) {
		return
	}
	h.timeout.Stop()
	h.timeout = nil
	h.timeoutProvider = ""
}

func (h *Helper) registeringTimedOut(name string, seq uint64) {
	rt := h.rt.Load()
	h.lock()
	defer h.unlock()

	if seq != h.timeoutSeq || h.timeoutProvider != name {
		return
	}
	h.timeout = nil
	h.timeoutProvider = ""

	if h.settings.State() != settings.StateRegistering || !h.settings.IsRegistering(name) {
		return
	}
	p, err := rt.provider(name)
	if err != nil {
		return
	}
	newLogger("registeringTimedOut").
		WithProvider(name).
		WithField("timeout", rt.config.registeringTimeout.String()).
		Warn("Registration timed out, abandoning provider")
	h.handleRegistrationError(rt, p, pusherr.New(pusherr.KindRegisteringTimeout, name,
		fmt.Sprintf("no registration result within %s", rt.config.registeringTimeout)))
}
