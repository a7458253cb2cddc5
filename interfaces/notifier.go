package interfaces

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks -source=notifier.go
//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks -source=provider.go

import "github.com/opd-ai/openpush/pusherr"

// EventNotifier delivers the coordinator's outward events to the embedding
// application. Calls are made outside the coordinator's lock, in the order the
// causing events were processed, so implementations may call back into the
// coordinator.
type EventNotifier interface {
	OnMessage(providerName string, data map[string]string)
	OnDeletedMessages(providerName string, count int)
	OnRegistered(providerName, registrationID string)
	OnUnregistered(providerName, oldRegistrationID string)
	// OnNoAvailableProvider reports a sweep that ended without a
	// registration. errs maps each failed provider to its unrecoverable error.
	OnNoAvailableProvider(errs map[string]*pusherr.Error)
}
