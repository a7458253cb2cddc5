package notifier

import (
	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/pusherr"
)

// Funcs implements interfaces.EventNotifier with optional callbacks. Nil
// fields drop the corresponding event.
type Funcs struct {
	Message             func(providerName string, data map[string]string)
	DeletedMessages     func(providerName string, count int)
	Registered          func(providerName, registrationID string)
	Unregistered        func(providerName, oldRegistrationID string)
	NoAvailableProvider func(errs map[string]*pusherr.Error)
}

var _ interfaces.EventNotifier = Funcs{}

// OnMessage implements interfaces.EventNotifier.
func (f Funcs) OnMessage(providerName string, data map[string]string) {
	if f.Message != nil {
		f.Message(providerName, data)
	}
}

// OnDeletedMessages implements interfaces.EventNotifier.
func (f Funcs) OnDeletedMessages(providerName string, count int) {
	if f.DeletedMessages != nil {
		f.DeletedMessages(providerName, count)
	}
}

// OnRegistered implements interfaces.EventNotifier.
func (f Funcs) OnRegistered(providerName, registrationID string) {
	if f.Registered != nil {
		f.Registered(providerName, registrationID)
	}
}

// OnUnregistered implements interfaces.EventNotifier.
func (f Funcs) OnUnregistered(providerName, oldRegistrationID string) {
	if f.Unregistered != nil {
		f.Unregistered(providerName, oldRegistrationID)
	}
}

// OnNoAvailableProvider implements interfaces.EventNotifier.
func (f Funcs) OnNoAvailableProvider(errs map[string]*pusherr.Error) {
	if f.NoAvailableProvider != nil {
		f.NoAvailableProvider(errs)
	}
}
