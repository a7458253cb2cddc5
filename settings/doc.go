// Package settings persists the registration coordinator's state so it can
// resume correctly after a process restart.
//
// Settings is a typed view over a flat key/value snapshot:
//
//   - the global State (UNREGISTERED, REGISTERING, REGISTERED), stored as an int
//   - the name of the last provider that registered successfully
//   - per-provider registering:<name> and unregistering:<name> flags
//   - the pending registration and pending unregistration provider names
//   - the last known device identity
//
// The snapshot lives in a Store. MemoryStore is meant for tests and for hosts
// without durable storage; FileStore writes JSON atomically and holds an
// advisory lock (github.com/gofrs/flock) while doing so:
//
//	store, err := settings.NewFileStore(filepath.Join(dataDir, "push.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := settings.New(store)
//	s.SaveState(settings.StateRegistering)
package settings
