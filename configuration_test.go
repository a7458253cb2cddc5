package openpush

import (
	"testing"
	"time"

	"github.com/opd-ai/openpush/backoff"
	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/limits"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/opd-ai/openpush/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := NewConfigurationBuilder().
		AddProviders(sim.NewProvider("gcm")).
		SetEventNotifier(&recorder{}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, limits.DefaultRegisteringTimeout, cfg.RegisteringTimeout())
	assert.Equal(t, backoff.DefaultTryCount, cfg.Backoff().TryCount())
	assert.False(t, cfg.RecoverProvider())
	assert.False(t, cfg.SelectSystemPreferred())
	assert.Len(t, cfg.Providers(), 1)
	assert.NotNil(t, cfg.EventNotifier())
}

func TestBuildRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		builder *ConfigurationBuilder
		want    error
	}{
		{
			name:    "no providers",
			builder: NewConfigurationBuilder().SetEventNotifier(&recorder{}),
			want:    pusherr.ErrNoProviders,
		},
		{
			name:    "no notifier",
			builder: NewConfigurationBuilder().AddProviders(sim.NewProvider("gcm")),
			want:    pusherr.ErrNoNotifier,
		},
		{
			name: "duplicate provider",
			builder: NewConfigurationBuilder().
				AddProviders(sim.NewProvider("gcm"), sim.NewProvider("gcm")).
				SetEventNotifier(&recorder{}),
			want: pusherr.ErrDuplicateProvider,
		},
		{
			name: "nil provider",
			builder: NewConfigurationBuilder().
				AddProviders(sim.NewProvider("gcm"), nil).
				SetEventNotifier(&recorder{}),
			want: pusherr.ErrNilProvider,
		},
		{
			name: "invalid provider name",
			builder: NewConfigurationBuilder().
				AddProviders(sim.NewProvider("bad name")).
				SetEventNotifier(&recorder{}),
			want: limits.ErrInvalidCharacter,
		},
		{
			name: "negative timeout",
			builder: NewConfigurationBuilder().
				AddProviders(sim.NewProvider("gcm")).
				SetEventNotifier(&recorder{}).
				SetRegisteringTimeout(-time.Second),
			want: pusherr.ErrNegativeTimeout,
		},
		{
			name: "timeout too long",
			builder: NewConfigurationBuilder().
				AddProviders(sim.NewProvider("gcm")).
				SetEventNotifier(&recorder{}).
				SetRegisteringTimeout(limits.MaxRegisteringTimeout + time.Hour),
			want: limits.ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.builder.Build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildIsImmutable(t *testing.T) {
	b := NewConfigurationBuilder().AddProviders(sim.NewProvider("gcm")).SetEventNotifier(&recorder{})
	cfg, err := b.Build()
	require.NoError(t, err)

	b.AddProviders(sim.NewProvider("adm"))
	providers := cfg.Providers()
	providers[0] = nil

	assert.Len(t, cfg.Providers(), 1)
	assert.Equal(t, "gcm", cfg.Providers()[0].Name())
}

func TestSystemPreferredOrdering(t *testing.T) {
	gcm := sim.NewProvider("gcm").WithHostPackage("com.google.android.gms")
	adm := sim.NewProvider("adm").WithHostPackage("com.amazon.device.messaging")
	baidu := sim.NewProvider("baidu")
	vendor := interfaces.HostPackageIn("com.amazon.device.messaging")

	names := func(ps []interfaces.Provider) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Name())
		}
		return out
	}

	cfg, err := NewConfigurationBuilder().
		AddProviders(gcm, baidu, adm).
		SetEventNotifier(&recorder{}).
		SetSystemPreferredFunc(vendor).
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"gcm", "baidu", "adm"}, names(cfg.candidates()), "flag off keeps order")

	cfg, err = NewConfigurationBuilder().
		AddProviders(gcm, baidu, adm).
		SetEventNotifier(&recorder{}).
		SetSystemPreferredFunc(vendor).
		SetSelectSystemPreferred(true).
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"adm", "gcm", "baidu"}, names(cfg.candidates()))
	assert.Equal(t, []string{"gcm", "baidu", "adm"}, names(cfg.Providers()))
}

func TestSystemPreferredProviderRegistersFirst(t *testing.T) {
	f := newFixture(t, "gcm", "adm")
	f.p("adm").WithHostPackage("com.amazon.device.messaging")
	h := f.start(func(b *ConfigurationBuilder) {
		b.SetSelectSystemPreferred(true).
			SetSystemPreferredFunc(interfaces.HostPackageIn("com.amazon.device.messaging"))
	})

	require.NoError(t, h.Register())
	assert.Equal(t, "adm", h.CurrentProvider().Name())
	assert.Zero(t, f.p("gcm").CallCount(sim.CallRegister))
}
