// Package packages maps platform package-change events onto the push
// coordinator.
//
// The embedding layer watches for applications being removed or replaced
// and forwards each change as an Event. When the application hosting a
// provider goes away the provider is reported unavailable; when the
// embedding application itself is updated every registration is redone.
package packages
