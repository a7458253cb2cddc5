package backoff

import (
	"math"
	"testing"
	"time"

	cbackoff "github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	p := Default()

	assert.Equal(t, DefaultTryCount, p.TryCount())
	assert.Equal(t, 2000*time.Millisecond, p.Delay(1))
	for n := 1; n < 10; n++ {
		assert.Equal(t, 2*p.Delay(n), p.Delay(n+1), "delay(%d)", n+1)
	}
}

func TestExponentialOverflow(t *testing.T) {
	p := Exponential(time.Second, 3)

	assert.Equal(t, time.Duration(math.MaxInt64), p.Delay(62))
	assert.Equal(t, time.Duration(math.MaxInt64), p.Delay(40))
	assert.Equal(t, time.Second, p.Delay(-1))
	assert.Equal(t, time.Second, p.Delay(0))
}

func TestWithCap(t *testing.T) {
	p := WithCap(5*time.Second, Default())

	assert.Equal(t, 2*time.Second, p.Delay(1))
	assert.Equal(t, 4*time.Second, p.Delay(2))
	assert.Equal(t, 5*time.Second, p.Delay(3))
	assert.Equal(t, DefaultTryCount, p.TryCount())
}

func TestWithTries(t *testing.T) {
	p := WithTries(2, Default())

	assert.Equal(t, 2, p.TryCount())
	assert.Equal(t, 4*time.Second, p.Delay(2))
}

func TestFromBackOff(t *testing.T) {
	p := FromBackOff(cbackoff.NewConstantBackOff(250*time.Millisecond), 3)

	assert.Equal(t, 3, p.TryCount())
	assert.Equal(t, 250*time.Millisecond, p.Delay(1))
	assert.Equal(t, 250*time.Millisecond, p.Delay(3))
}

func TestFromBackOffExponentialIsNonDecreasing(t *testing.T) {
	eb := cbackoff.NewExponentialBackOff()
	eb.InitialInterval = 100 * time.Millisecond
	eb.Multiplier = 2
	eb.RandomizationFactor = 0
	eb.MaxInterval = time.Second

	p := FromBackOff(eb, 6)
	prev := time.Duration(0)
	for n := 1; n <= 6; n++ {
		d := p.Delay(n)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
	assert.Equal(t, 100*time.Millisecond, p.Delay(1))
	assert.Equal(t, time.Second, p.Delay(6))
}

func TestFromBackOffStop(t *testing.T) {
	p := FromBackOff(&cbackoff.StopBackOff{}, 1)

	assert.Equal(t, time.Duration(0), p.Delay(1))
}
