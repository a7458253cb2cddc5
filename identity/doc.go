// Package identity detects changes of the device or installation identity.
//
// Push registrations are bound to a device. When the identity changes (a
// restored backup, a cleared data directory) every stored registration is
// stale and the coordinator must register again. The coordinator compares the
// Fingerprint of the current identity with the one persisted at the last
// successful registration:
//
//	probe := identity.NewFileProbe(filepath.Join(dataDir, "installation-id"))
//	opts := openpush.NewOptions()
//	opts.IdentityProbe = probe
package identity
