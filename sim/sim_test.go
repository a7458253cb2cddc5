package sim

import (
	"testing"
	"time"

	"github.com/opd-ai/openpush/interfaces/mocks"
	"github.com/opd-ai/openpush/pusherr"
	"go.uber.org/mock/gomock"
)

func TestProviderImmediateSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	receiver := mocks.NewMockReceiver(ctrl)
	p := NewProvider("gcm")
	p.Attach(receiver)

	receiver.EXPECT().OnRegistered("gcm", "gcm-reg-1").Return(nil)
	p.Register()

	if !p.IsRegistered() {
		t.Fatal("provider should be registered after a successful outcome")
	}
	if p.RegistrationID() != "gcm-reg-1" {
		t.Errorf("unexpected registration id %q", p.RegistrationID())
	}

	receiver.EXPECT().OnUnregistered("gcm", "gcm-reg-1").Return(nil)
	p.Unregister()
	if p.IsRegistered() {
		t.Error("provider should be unregistered")
	}
	if p.CallCount(CallRegister) != 1 || p.CallCount(CallUnregister) != 1 {
		t.Errorf("unexpected call log %v", p.Calls())
	}
}

func TestProviderScriptedFailureThenSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	receiver := mocks.NewMockReceiver(ctrl)
	p := NewProvider("adm")
	p.Attach(receiver)
	p.ScriptRegister(Fail(pusherr.KindServiceNotAvailable))

	gomock.InOrder(
		receiver.EXPECT().OnRegistrationError("adm", gomock.Any()).Return(nil),
		receiver.EXPECT().OnRegistered("adm", "adm-reg-1").Return(nil),
	)
	p.Register()
	if p.IsRegistered() {
		t.Fatal("failed registration must not register the provider")
	}
	p.Register()
}

func TestProviderDeferredDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	receiver := mocks.NewMockReceiver(ctrl)
	p := NewProvider("hms")
	p.Attach(receiver)
	p.SetDeferred(true)
	p.ScriptRegister(Silent())

	p.Register()
	p.Register()
	if p.Pending() != 1 {
		t.Fatalf("expected one pending outcome, got %d", p.Pending())
	}

	receiver.EXPECT().OnRegistered("hms", "hms-reg-1").Return(nil)
	if n := p.Complete(); n != 1 {
		t.Errorf("expected 1 delivered outcome, got %d", n)
	}
}

func TestProviderInvalidation(t *testing.T) {
	p := NewProvider("gcm")
	p.SetRegistered("restored")
	p.OnRegistrationInvalid()
	if p.IsRegistered() || p.RegistrationID() != "" {
		t.Error("invalidated provider should hold no registration")
	}
}

func TestSchedulerAdvanceFiresInOrder(t *testing.T) {
	s := NewScheduler()
	var fired []string
	s.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	s.AfterFunc(time.Second, func() {
		fired = append(fired, "a")
		s.AfterFunc(500*time.Millisecond, func() { fired = append(fired, "a2") })
	})
	stopped := s.AfterFunc(time.Second, func() { fired = append(fired, "never") })
	if !stopped.Stop() {
		t.Fatal("Stop should report a live timer")
	}

	s.Advance(3 * time.Second)

	want := []string{"a", "a2", "b"}
	if len(fired) != len(want) {
		t.Fatalf("fired %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired %v, want %v", fired, want)
		}
	}
	if s.Now() != 3*time.Second {
		t.Errorf("clock at %s, want 3s", s.Now())
	}
	if stopped.Stop() {
		t.Error("second Stop should report false")
	}
}

func TestSchedulerRunNext(t *testing.T) {
	s := NewScheduler()
	if s.RunNext() {
		t.Fatal("RunNext without timers should report false")
	}
	ran := false
	s.AfterFunc(time.Minute, func() { ran = true })
	if got := s.Pending(); len(got) != 1 || got[0] != time.Minute {
		t.Fatalf("unexpected pending delays %v", got)
	}
	if !s.RunNext() || !ran {
		t.Fatal("RunNext should fire the pending timer")
	}
	if s.Now() != time.Minute {
		t.Errorf("clock at %s, want 1m", s.Now())
	}
}
