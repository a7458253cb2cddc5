// Package notifier provides adapters that deliver the coordinator's outward
// events to an application.
//
// The coordinator calls its interfaces.EventNotifier directly. How events
// then reach application code is up to the embedder:
//
//   - Funcs wraps plain callbacks; unset callbacks drop their events.
//   - Bus publishes tagged Event values on a channel. Dispatch pumps a bus
//     into any EventNotifier on the caller's goroutine, which is how events
//     are moved onto an application's main loop.
//   - Queue delivers to a target on one dedicated goroutine, preserving
//     order, without ever blocking the coordinator.
//
// Example:
//
//	bus := notifier.NewBus(16)
//	cfg, err := openpush.NewConfigurationBuilder().
//	    AddProviders(gcm, adm).
//	    SetEventNotifier(bus).
//	    Build()
//	// ...
//	go notifier.Dispatch(ctx, bus, notifier.Funcs{
//	    Registered: func(name, id string) { log.Printf("registered with %s", name) },
//	})
package notifier
