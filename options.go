package openpush

import (
	"github.com/opd-ai/openpush/identity"
	"github.com/opd-ai/openpush/metrics"
	"github.com/opd-ai/openpush/retry"
	"github.com/opd-ai/openpush/settings"
)

// Options describes the runtime environment of a Helper: where state is
// persisted, how time passes, and which optional collaborators are present.
type Options struct {
	// Store backs the persisted settings.
	Store settings.Store
	// Scheduler runs retries and the registering timeout.
	Scheduler retry.Scheduler
	// Metrics receives coordinator metrics; nil disables them.
	Metrics *metrics.Metrics
	// IdentityProbe detects device identity changes; nil disables the check.
	IdentityProbe identity.Probe
}

// NewOptions creates Options with an in-memory store and the real clock.
func NewOptions() *Options {
	return &Options{
		Store:     settings.NewMemoryStore(),
		Scheduler: retry.RealScheduler{},
	}
}
