// Package metrics exposes Prometheus collectors for the registration
// coordinator: sweeps started and exhausted, registration attempts, outcomes
// per provider, failures per error kind, scheduled retries, and the current
// state.
//
//	m, err := metrics.New(prometheus.DefaultRegisterer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := openpush.NewOptions()
//	opts.Metrics = m
//
// Every method is safe on a nil *Metrics, which is what the coordinator uses
// when metrics are not configured.
package metrics
