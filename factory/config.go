package factory

import (
	"errors"
	"fmt"
	"time"

	"github.com/opd-ai/openpush"
	"github.com/opd-ai/openpush/backoff"
	"github.com/opd-ai/openpush/identity"
	"github.com/opd-ai/openpush/limits"
	"github.com/opd-ai/openpush/metrics"
	"github.com/opd-ai/openpush/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OPENPUSH"

// Validation constants for configuration bounds checking.
const (
	// MinRetryTries is the minimum allowed retries per provider.
	MinRetryTries = 0
	// MaxRetryTries is the maximum allowed retries per provider.
	MaxRetryTries = 32
	// MinBackoffBase is the minimum allowed backoff base.
	MinBackoffBase = 10 * time.Millisecond
	// MaxBackoffBase is the maximum allowed backoff base.
	MaxBackoffBase = 10 * time.Minute
	// MaxBackoffMax is the maximum allowed single retry delay.
	MaxBackoffMax = 24 * time.Hour
)

// Config is the file and environment configuration.
type Config struct {
	SettingsPath          string        `mapstructure:"settings_path"`
	RetryTries            int           `mapstructure:"retry_tries"`
	BackoffBase           time.Duration `mapstructure:"backoff_base"`
	BackoffMax            time.Duration `mapstructure:"backoff_max"`
	RegisteringTimeout    time.Duration `mapstructure:"registering_timeout"`
	RecoverProvider       bool          `mapstructure:"recover_provider"`
	SelectSystemPreferred bool          `mapstructure:"select_system_preferred"`
	IdentityPath          string        `mapstructure:"identity_path"`
	MetricsEnabled        bool          `mapstructure:"metrics_enabled"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		RetryTries:         backoff.DefaultTryCount,
		BackoffBase:        backoff.DefaultBase,
		RegisteringTimeout: limits.DefaultRegisteringTimeout,
	}
}

// Load reads configuration from path, which may be empty, and applies
// OPENPUSH_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logConfigurationInfo(path, &cfg)
	return &cfg, nil
}

// setDefaults registers every key so environment overrides apply to it.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("settings_path", d.SettingsPath)
	v.SetDefault("retry_tries", d.RetryTries)
	v.SetDefault("backoff_base", d.BackoffBase)
	v.SetDefault("backoff_max", d.BackoffMax)
	v.SetDefault("registering_timeout", d.RegisteringTimeout)
	v.SetDefault("recover_provider", d.RecoverProvider)
	v.SetDefault("select_system_preferred", d.SelectSystemPreferred)
	v.SetDefault("identity_path", d.IdentityPath)
	v.SetDefault("metrics_enabled", d.MetricsEnabled)
}

// Validate checks every value against its bounds.
func (c *Config) Validate() error {
	var errs []error
	if c.RetryTries < MinRetryTries || c.RetryTries > MaxRetryTries {
		errs = append(errs, fmt.Errorf("invalid retry_tries: %d (must be %d-%d)", c.RetryTries, MinRetryTries, MaxRetryTries))
	}
	if c.BackoffBase < MinBackoffBase || c.BackoffBase > MaxBackoffBase {
		errs = append(errs, fmt.Errorf("invalid backoff_base: %s (must be %s-%s)", c.BackoffBase, MinBackoffBase, MaxBackoffBase))
	}
	if c.BackoffMax < 0 || c.BackoffMax > MaxBackoffMax {
		errs = append(errs, fmt.Errorf("invalid backoff_max: %s (must be 0-%s)", c.BackoffMax, MaxBackoffMax))
	}
	if c.BackoffMax > 0 && c.BackoffMax < c.BackoffBase {
		errs = append(errs, fmt.Errorf("invalid backoff_max: %s is below backoff_base %s", c.BackoffMax, c.BackoffBase))
	}
	if err := limits.ValidateRegisteringTimeout(c.RegisteringTimeout); err != nil {
		errs = append(errs, fmt.Errorf("invalid registering_timeout: %w", err))
	}
	return errors.Join(errs...)
}

// Backoff returns the exponential retry policy described by the config.
func (c *Config) Backoff() backoff.Policy {
	policy := backoff.Exponential(c.BackoffBase, c.RetryTries)
	if c.BackoffMax > 0 {
		policy = backoff.WithCap(c.BackoffMax, policy)
	}
	return policy
}

// Options creates the coordinator's runtime environment. Metrics are
// registered on reg when enabled; a nil reg uses prometheus.DefaultRegisterer.
func (c *Config) Options(reg prometheus.Registerer) (*openpush.Options, error) {
	options := openpush.NewOptions()

	if c.SettingsPath != "" {
		store, err := settings.NewFileStore(c.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open settings store: %w", err)
		}
		options.Store = store
	}

	if c.IdentityPath != "" {
		options.IdentityProbe = identity.NewFileProbe(c.IdentityPath)
	}

	if c.MetricsEnabled {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		m, err := metrics.New(reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		options.Metrics = m
	}

	return options, nil
}

// Apply copies the policy settings onto a configuration builder.
func (c *Config) Apply(b *openpush.ConfigurationBuilder) *openpush.ConfigurationBuilder {
	return b.
		SetBackoff(c.Backoff()).
		SetRegisteringTimeout(c.RegisteringTimeout).
		SetRecoverProvider(c.RecoverProvider).
		SetSelectSystemPreferred(c.SelectSystemPreferred)
}

// logConfigurationInfo logs the final configuration settings.
func logConfigurationInfo(path string, c *Config) {
	logrus.WithFields(logrus.Fields{
		"function":                "Load",
		"config_file":             path,
		"settings_path":           c.SettingsPath,
		"retry_tries":             c.RetryTries,
		"backoff_base":            c.BackoffBase,
		"backoff_max":             c.BackoffMax,
		"registering_timeout":     c.RegisteringTimeout,
		"recover_provider":        c.RecoverProvider,
		"select_system_preferred": c.SelectSystemPreferred,
		"metrics_enabled":         c.MetricsEnabled,
	}).Info("Loaded push configuration")
}
