// Package factory builds the push coordinator's runtime environment from a
// configuration file and environment variables.
//
// Settings are read with viper from an optional YAML, JSON or TOML file and
// may be overridden by OPENPUSH_* environment variables:
//   - OPENPUSH_SETTINGS_PATH: file backing the persisted settings (in-memory when empty)
//   - OPENPUSH_RETRY_TRIES: retries per provider before falling back
//   - OPENPUSH_BACKOFF_BASE: delay of the first retry is twice this value
//   - OPENPUSH_BACKOFF_MAX: upper bound of a single retry delay (0 for none)
//   - OPENPUSH_REGISTERING_TIMEOUT: time a registration may stay in flight
//   - OPENPUSH_RECOVER_PROVIDER: fall back when the previous provider is gone
//   - OPENPUSH_SELECT_SYSTEM_PREFERRED: try system-preferred providers first
//   - OPENPUSH_IDENTITY_PATH: file holding the installation identity
//   - OPENPUSH_METRICS_ENABLED: register Prometheus collectors
//
// Durations accept Go duration syntax such as "500ms" or "5m". Values
// outside the bounds declared in this package are rejected by Validate.
//
// # Example
//
//	cfg, err := factory.Load("/etc/openpush.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	options, err := cfg.Options(prometheus.DefaultRegisterer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	builder := cfg.Apply(openpush.NewConfigurationBuilder()).
//	    AddProviders(providers...).
//	    SetEventNotifier(n)
package factory
