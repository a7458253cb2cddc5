package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "openpush"

// Metrics holds the coordinator's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	sweeps          prometheus.Counter
	sweepsExhausted prometheus.Counter
	attempts        *prometheus.CounterVec
	registrations   *prometheus.CounterVec
	unregistrations *prometheus.CounterVec
	failures        *prometheus.CounterVec
	retries         *prometheus.CounterVec
	state           prometheus.Gauge
}

// New creates the collectors and registers them with reg. Collectors that
// are already registered on reg are reused.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Provider selection sweeps started.",
		}),
		sweepsExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_exhausted_total",
			Help:      "Sweeps that ended without an available provider.",
		}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registration_attempts_total",
			Help:      "Registrations started, by provider.",
		}, []string{"provider"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Successful registrations, by provider.",
		}, []string{"provider"}),
		unregistrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unregistrations_total",
			Help:      "Completed unregistrations, by provider.",
		}, []string{"provider"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Provider failures, by provider, operation and error kind.",
		}, []string{"provider", "operation", "kind"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retries_scheduled_total",
			Help:      "Retries scheduled, by provider and operation.",
		}, []string{"provider", "operation"}),
		state: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "state",
			Help:      "Current registration state (0 unregistered, 1 registering, 2 registered).",
		}),
	}

	if reg == nil {
		return m, nil
	}

	var err error
	m.sweeps = register(reg, m.sweeps, &err)
	m.sweepsExhausted = register(reg, m.sweepsExhausted, &err)
	m.attempts = register(reg, m.attempts, &err)
	m.registrations = register(reg, m.registrations, &err)
	m.unregistrations = register(reg, m.unregistrations, &err)
	m.failures = register(reg, m.failures, &err)
	m.retries = register(reg, m.retries, &err)
	m.state = register(reg, m.state, &err)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C, errp *error) C {
	if *errp != nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		*errp = err
	}
	return c
}

// SweepStarted records the start of a selection sweep.
func (m *Metrics) SweepStarted() {
	if m == nil {
		return
	}
	m.sweeps.Inc()
}

// SweepExhausted records a sweep that found no provider.
func (m *Metrics) SweepExhausted() {
	if m == nil {
		return
	}
	m.sweepsExhausted.Inc()
}

// RegistrationAttempt records a registration started with a provider.
func (m *Metrics) RegistrationAttempt(provider string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(provider).Inc()
}

// Registered records a successful registration.
func (m *Metrics) Registered(provider string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(provider).Inc()
}

// Unregistered records a completed unregistration.
func (m *Metrics) Unregistered(provider string) {
	if m == nil {
		return
	}
	m.unregistrations.WithLabelValues(provider).Inc()
}

// Failure records a provider failure.
func (m *Metrics) Failure(provider, operation, kind string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(provider, operation, kind).Inc()
}

// RetryScheduled records a scheduled retry.
func (m *Metrics) RetryScheduled(provider, operation string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(provider, operation).Inc()
}

// SetState records the current registration state.
func (m *Metrics) SetState(state int) {
	if m == nil {
		return
	}
	m.state.Set(float64(state))
}
