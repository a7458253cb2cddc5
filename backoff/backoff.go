package backoff

import (
	"math"
	"sync"
	"time"

	cbackoff "github.com/cenkalti/backoff/v5"
)

const (
	// DefaultBase is the unit of the default exponential policy.
	DefaultBase = time.Second

	// DefaultTryCount is the number of retries the default policy allows.
	DefaultTryCount = 4
)

// Policy maps a 1-based retry attempt to the delay before it, and bounds the
// number of retries.
type Policy interface {
	Delay(attempt int) time.Duration
	TryCount() int
}

// Func adapts a delay function and a try count to a Policy.
type Func struct {
	DelayFunc func(attempt int) time.Duration
	Tries     int
}

// Delay implements Policy.
func (f Func) Delay(attempt int) time.Duration {
	return f.DelayFunc(attempt)
}

// TryCount implements Policy.
func (f Func) TryCount() int {
	return f.Tries
}

// Exponential returns a policy with delay(n) = 2^n * base.
func Exponential(base time.Duration, tries int) Policy {
	return Func{
		DelayFunc: func(attempt int) time.Duration {
			if attempt < 0 {
				attempt = 0
			}
			// Prevent overflow
			if attempt >= 62 || base > time.Duration(math.MaxInt64>>uint(attempt)) {
				return time.Duration(math.MaxInt64)
			}
			return base * time.Duration(int64(1)<<uint(attempt))
		},
		Tries: tries,
	}
}

// Default returns the exponential policy used when a configuration sets none:
// 2s, 4s, 8s, 16s.
func Default() Policy {
	return Exponential(DefaultBase, DefaultTryCount)
}

// WithCap wraps a policy and caps each delay at max.
func WithCap(max time.Duration, p Policy) Policy {
	return Func{
		DelayFunc: func(attempt int) time.Duration {
			d := p.Delay(attempt)
			if d > max {
				return max
			}
			return d
		},
		Tries: p.TryCount(),
	}
}

// WithTries wraps a policy and replaces its try count.
func WithTries(tries int, p Policy) Policy {
	return Func{DelayFunc: p.Delay, Tries: tries}
}

// FromBackOff adapts a stateful cenkalti BackOff. Delay(n) resets b and returns
// its n-th interval, so delays stay a function of the attempt number. A Stop
// from b is reported as the largest delay seen before it.
func FromBackOff(b cbackoff.BackOff, tries int) Policy {
	var mu sync.Mutex
	return Func{
		DelayFunc: func(attempt int) time.Duration {
			mu.Lock()
			defer mu.Unlock()

			b.Reset()
			var last time.Duration
			for i := 0; i < attempt; i++ {
				next := b.NextBackOff()
				if next == cbackoff.Stop {
					break
				}
				last = next
			}
			return last
		},
		Tries: tries,
	}
}
