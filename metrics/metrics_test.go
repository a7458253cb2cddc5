package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAndGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.SweepStarted()
	m.SweepStarted()
	m.SweepExhausted()
	m.RegistrationAttempt("gcm")
	m.Registered("gcm")
	m.Unregistered("gcm")
	m.Failure("adm", "register", "AUTHENTICATION_FAILED")
	m.RetryScheduled("gcm", "register")
	m.SetState(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sweeps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepsExhausted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.attempts.WithLabelValues("gcm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues("gcm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unregistrations.WithLabelValues("gcm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("adm", "register", "AUTHENTICATION_FAILED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.retries.WithLabelValues("gcm", "register")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.state))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 8, count)
}

func TestNewReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(reg)
	require.NoError(t, err)
	second, err := New(reg)
	require.NoError(t, err)

	first.SweepStarted()
	second.SweepStarted()
	assert.Equal(t, 2.0, testutil.ToFloat64(first.sweeps))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SweepStarted()
		m.SweepExhausted()
		m.RegistrationAttempt("gcm")
		m.Registered("gcm")
		m.Unregistered("gcm")
		m.Failure("gcm", "register", "INVALID_SENDER")
		m.RetryScheduled("gcm", "register")
		m.SetState(1)
	})
}

func TestNewWithoutRegisterer(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	m.SweepStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweeps))
}
