package packages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	hosted      map[string][]string
	unavailable []string
	retries     int
	fail        error
}

func (f *fakeTarget) ProvidersForHostPackage(pkg string) []string {
	return f.hosted[pkg]
}

func (f *fakeTarget) OnProviderUnavailable(name string) error {
	f.unavailable = append(f.unavailable, name)
	return f.fail
}

func (f *fakeTarget) OnNeedRetryRegister() error {
	f.retries++
	return f.fail
}

func TestHandleRemovedAndReplaced(t *testing.T) {
	target := &fakeTarget{hosted: map[string][]string{
		"com.google.android.gms": {"fcm", "gcm"},
	}}
	o := NewObserver(target)

	require.NoError(t, o.Handle(Event{Kind: PackageRemoved, Package: "com.google.android.gms"}))
	require.NoError(t, o.Handle(Event{Kind: PackageReplaced, Package: "org.unrelated"}))

	assert.Equal(t, []string{"fcm", "gcm"}, target.unavailable)
	assert.Zero(t, target.retries)
}

func TestHandleSelfUpdated(t *testing.T) {
	target := &fakeTarget{}
	o := NewObserver(target)

	require.NoError(t, o.Handle(Event{Kind: SelfUpdated}))
	assert.Equal(t, 1, target.retries)
}

func TestHandleErrors(t *testing.T) {
	boom := errors.New("boom")
	target := &fakeTarget{hosted: map[string][]string{"pkg": {"a", "b"}}, fail: boom}
	o := NewObserver(target)

	err := o.Handle(Event{Kind: PackageRemoved, Package: "pkg"})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, target.unavailable, 2, "every provider is visited despite failures")

	assert.ErrorIs(t, o.Handle(Event{Kind: Kind(42)}), ErrUnknownKind)
}

func TestRunStopsOnCloseAndCancel(t *testing.T) {
	target := &fakeTarget{}
	o := NewObserver(target)

	events := make(chan Event, 2)
	events <- Event{Kind: SelfUpdated}
	events <- Event{Kind: Kind(99)}
	close(events)
	require.NoError(t, o.Run(context.Background(), events))
	assert.Equal(t, 1, target.retries)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, o.Run(ctx, make(chan Event)), context.Canceled)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "package_removed", PackageRemoved.String())
	assert.Equal(t, "self_updated", SelfUpdated.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
