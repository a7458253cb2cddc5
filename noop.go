package openpush

import (
	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/opd-ai/openpush/settings"
)

// noopHelper is a PushHelper for builds without push support.
type noopHelper struct{}

// NewNoop returns a PushHelper that accepts every call and never registers.
func NewNoop() PushHelper {
	return noopHelper{}
}

func (noopHelper) Init(*Configuration) error                          { return nil }
func (noopHelper) IsInitialized() bool                                { return true }
func (noopHelper) Register() error                                    { return nil }
func (noopHelper) Unregister() error                                  { return nil }
func (noopHelper) OnNeedRetryRegister() error                         { return nil }
func (noopHelper) OnProviderUnavailable(string) error                 { return nil }
func (noopHelper) State() settings.State                              { return settings.StateUnregistered }
func (noopHelper) IsRegistered() bool                                 { return false }
func (noopHelper) CurrentProvider() interfaces.Provider               { return nil }
func (noopHelper) RegistrationID() string                             { return "" }
func (noopHelper) OnRegistered(string, string) error                  { return nil }
func (noopHelper) OnUnregistered(string, string) error                { return nil }
func (noopHelper) OnRegistrationError(string, *pusherr.Error) error   { return nil }
func (noopHelper) OnUnregistrationError(string, *pusherr.Error) error { return nil }
func (noopHelper) OnError(string, *pusherr.Error) error               { return nil }
func (noopHelper) OnMessage(string, map[string]string) error          { return nil }
func (noopHelper) OnDeletedMessages(string, int) error                { return nil }
