package openpush

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/opd-ai/openpush/backoff"
	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/limits"
	"github.com/opd-ai/openpush/pusherr"
)

// Configuration is the immutable set of providers and policies a Helper is
// initialized with. Create one with NewConfigurationBuilder.
type Configuration struct {
	providers             []interfaces.Provider
	notifier              interfaces.EventNotifier
	backoff               backoff.Policy
	recoverProvider       bool
	selectSystemPreferred bool
	systemPreferred       interfaces.SystemPreferredFunc
	registeringTimeout    time.Duration
}

// Providers returns the providers in configuration order.
func (c *Configuration) Providers() []interfaces.Provider {
	return append([]interfaces.Provider(nil), c.providers...)
}

// EventNotifier returns the notifier receiving outward events.
func (c *Configuration) EventNotifier() interfaces.EventNotifier {
	return c.notifier
}

// Backoff returns the retry policy.
func (c *Configuration) Backoff() backoff.Policy {
	return c.backoff
}

// RecoverProvider reports whether the helper falls back past an unavailable
// previously used provider on its own.
func (c *Configuration) RecoverProvider() bool {
	return c.recoverProvider
}

// SelectSystemPreferred reports whether system-preferred providers are tried first.
func (c *Configuration) SelectSystemPreferred() bool {
	return c.selectSystemPreferred
}

// RegisteringTimeout returns how long a registration may stay in flight.
func (c *Configuration) RegisteringTimeout() time.Duration {
	return c.registeringTimeout
}

// candidates returns the providers in selection order: configuration order,
// with system-preferred providers moved first when enabled. The sort is
// stable, so relative order is otherwise kept.
func (c *Configuration) candidates() []interfaces.Provider {
	ordered := c.Providers()
	if !c.selectSystemPreferred || c.systemPreferred == nil {
		return ordered
	}
	preferred := make(map[string]bool, len(ordered))
	for _, p := range ordered {
		preferred[p.Name()] = c.systemPreferred(p)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return preferred[ordered[i].Name()] && !preferred[ordered[j].Name()]
	})
	return ordered
}

// ConfigurationBuilder assembles a Configuration. Setters record problems
// and Build reports all of them.
type ConfigurationBuilder struct {
	cfg  Configuration
	errs []error
}

// NewConfigurationBuilder creates a builder with the default backoff policy
// and registering timeout.
func NewConfigurationBuilder() *ConfigurationBuilder {
	return &ConfigurationBuilder{
		cfg: Configuration{
			backoff:            backoff.Default(),
			registeringTimeout: limits.DefaultRegisteringTimeout,
		},
	}
}

// AddProviders appends providers in priority order.
func (b *ConfigurationBuilder) AddProviders(providers ...interfaces.Provider) *ConfigurationBuilder {
	for _, p := range providers {
		if p == nil {
			b.errs = append(b.errs, pusherr.ErrNilProvider)
			continue
		}
		b.cfg.providers = append(b.cfg.providers, p)
	}
	return b
}

// SetEventNotifier sets the notifier receiving outward events.
func (b *ConfigurationBuilder) SetEventNotifier(n interfaces.EventNotifier) *ConfigurationBuilder {
	b.cfg.notifier = n
	return b
}

// SetBackoff sets the retry policy. Nil restores the default.
func (b *ConfigurationBuilder) SetBackoff(p backoff.Policy) *ConfigurationBuilder {
	if p == nil {
		p = backoff.Default()
	}
	b.cfg.backoff = p
	return b
}

// SetRecoverProvider allows falling back past an unavailable provider that
// was registered in a previous run.
func (b *ConfigurationBuilder) SetRecoverProvider(enabled bool) *ConfigurationBuilder {
	b.cfg.recoverProvider = enabled
	return b
}

// SetSelectSystemPreferred moves providers matched by the system-preferred
// function to the front of the selection order.
func (b *ConfigurationBuilder) SetSelectSystemPreferred(selectPreferred bool) *ConfigurationBuilder {
	b.cfg.selectSystemPreferred = selectPreferred
	return b
}

// SetSystemPreferredFunc sets how system-preferred providers are recognized.
func (b *ConfigurationBuilder) SetSystemPreferredFunc(f interfaces.SystemPreferredFunc) *ConfigurationBuilder {
	b.cfg.systemPreferred = f
	return b
}

// SetRegisteringTimeout sets how long a registration may stay in flight
// before the provider is abandoned. Zero restores the default.
func (b *ConfigurationBuilder) SetRegisteringTimeout(d time.Duration) *ConfigurationBuilder {
	if d < 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: registering timeout %s", pusherr.ErrNegativeTimeout, d))
		return b
	}
	if err := limits.ValidateRegisteringTimeout(d); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if d == 0 {
		d = limits.DefaultRegisteringTimeout
	}
	b.cfg.registeringTimeout = d
	return b
}

// Build validates the collected settings and returns the Configuration.
func (b *ConfigurationBuilder) Build() (*Configuration, error) {
	errs := append([]error(nil), b.errs...)

	if len(b.cfg.providers) == 0 {
		errs = append(errs, pusherr.ErrNoProviders)
	}
	if b.cfg.notifier == nil {
		errs = append(errs, pusherr.ErrNoNotifier)
	}

	seen := make(map[string]struct{}, len(b.cfg.providers))
	for _, p := range b.cfg.providers {
		name := p.Name()
		if err := limits.ValidateProviderName(name); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", pusherr.ErrDuplicateProvider, name))
			continue
		}
		seen[name] = struct{}{}
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		newLogger("ConfigurationBuilder.Build").WithError(err).Error("Invalid push configuration")
		return nil, err
	}

	cfg := b.cfg
	cfg.providers = append([]interfaces.Provider(nil), b.cfg.providers...)
	return &cfg, nil
}
