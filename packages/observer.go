package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Kind identifies a package change.
type Kind uint8

const (
	// PackageRemoved reports an uninstalled application.
	PackageRemoved Kind = iota + 1
	// PackageReplaced reports an application replaced by another build.
	PackageReplaced
	// SelfUpdated reports that the embedding application was updated.
	SelfUpdated
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case PackageRemoved:
		return "package_removed"
	case PackageReplaced:
		return "package_replaced"
	case SelfUpdated:
		return "self_updated"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is one package change. Package is ignored for SelfUpdated.
type Event struct {
	Kind    Kind
	Package string
}

// Target is the part of the coordinator the observer drives.
type Target interface {
	ProvidersForHostPackage(pkg string) []string
	OnProviderUnavailable(providerName string) error
	OnNeedRetryRegister() error
}

// ErrUnknownKind is returned for an Event with an undefined Kind.
var ErrUnknownKind = errors.New("unknown package event kind")

// Observer applies package events to a Target.
type Observer struct {
	target Target
	logger *logrus.Entry
}

// NewObserver creates an Observer for target.
func NewObserver(target Target) *Observer {
	return &Observer{
		target: target,
		logger: logrus.WithField("component", "package_observer"),
	}
}

// Handle applies one event.
func (o *Observer) Handle(ev Event) error {
	logger := o.logger.WithFields(logrus.Fields{
		"function": "Observer.Handle",
		"kind":     ev.Kind.String(),
		"package":  ev.Package,
	})

	switch ev.Kind {
	case PackageRemoved, PackageReplaced:
		providers := o.target.ProvidersForHostPackage(ev.Package)
		if len(providers) == 0 {
			logger.Debug("No provider hosted by package")
			return nil
		}
		var errs []error
		for _, name := range providers {
			logger.WithField("provider", name).Info("Host application changed, provider unavailable")
			if err := o.target.OnProviderUnavailable(name); err != nil {
				errs = append(errs, fmt.Errorf("provider %s: %w", name, err))
			}
		}
		return errors.Join(errs...)
	case SelfUpdated:
		logger.Info("Application updated, registering again")
		return o.target.OnNeedRetryRegister()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(ev.Kind))
	}
}

// Run applies events until ctx is done or events is closed. Failures are
// logged and do not stop the loop.
func (o *Observer) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := o.Handle(ev); err != nil {
				o.logger.WithFields(logrus.Fields{
					"function": "Observer.Run",
					"error":    err.Error(),
				}).Warn("Failed to apply package event")
			}
		}
	}
}
