// Package openpush selects one push provider out of several, keeps it
// registered, and falls back to the next provider when it fails.
//
// Providers are supplied by the application in priority order. The Helper
// tries them one at a time in a circular sweep, retries recoverable failures
// with exponential backoff, and reports the outcome to an EventNotifier.
// Registration state survives restarts through a settings.Store.
//
// # Getting Started
//
//	cfg, err := openpush.NewConfigurationBuilder().
//	    AddProviders(gcm, vendor).
//	    SetEventNotifier(notifier.Funcs{
//	        Registered: func(provider, id string) { upload(provider, id) },
//	    }).
//	    SetRecoverProvider(true).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	helper := openpush.New(openpush.NewOptions())
//	if err := helper.Init(cfg); err != nil {
//	    log.Fatal(err)
//	}
//	helper.Register()
//
// Providers report their asynchronous results back through the Helper's
// interfaces.Receiver methods (OnRegistered, OnRegistrationError and so on).
//
// # States
//
// The Helper is always in one of three states:
//
//	UNREGISTERED -> REGISTERING -> REGISTERED
//
// A recoverable error returns to UNREGISTERED while a retry is scheduled. An
// unrecoverable error moves the sweep to the next provider. When every
// provider has failed the notifier receives OnNoAvailableProvider with the
// error recorded for each.
//
// # Concurrency
//
// All methods are safe for concurrent use. Provider operations and notifier
// events are invoked after the Helper's internal lock is released, so both
// may call back into the Helper.
//
// # Configuration
//
// The factory package builds Options and backoff policies from a YAML file
// and OPENPUSH_* environment variables.
package openpush
