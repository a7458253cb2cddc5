package openpush

import (
	"strings"
	"testing"

	"github.com/opd-ai/openpush/metrics"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/opd-ai/openpush/sim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelperRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	f := newFixture(t, "gcm", "adm")
	f.p("gcm").ScriptRegister(sim.Fail(pusherr.KindAuthenticationFailed))
	options := NewOptions()
	options.Store = f.store
	options.Scheduler = f.scheduler
	options.Metrics = m
	h := f.startWith(options)

	require.NoError(t, h.Register())
	require.NoError(t, h.Unregister())

	expected := `
# HELP openpush_failures_total Provider failures, by provider, operation and error kind.
# TYPE openpush_failures_total counter
openpush_failures_total{kind="AUTHENTICATION_FAILED",operation="register",provider="gcm"} 1
# HELP openpush_registrations_total Successful registrations, by provider.
# TYPE openpush_registrations_total counter
openpush_registrations_total{provider="adm"} 1
# HELP openpush_unregistrations_total Completed unregistrations, by provider.
# TYPE openpush_unregistrations_total counter
openpush_unregistrations_total{provider="adm"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"openpush_failures_total", "openpush_registrations_total", "openpush_unregistrations_total"))

	count, err := testutil.GatherAndCount(reg, "openpush_registration_attempts_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
