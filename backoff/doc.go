// Package backoff provides the retry delay policies used by the retry manager.
//
// A Policy answers two questions: how long to wait before the n-th retry, and
// how many retries are allowed at all. The default policy is exponential,
// delay(n) = 2^n seconds, with four tries:
//
//	p := backoff.Default()
//	p.Delay(1)    // 2s
//	p.Delay(2)    // 4s
//	p.TryCount()  // 4
//
// Policies compose:
//
//	p := backoff.WithCap(30*time.Second, backoff.Exponential(500*time.Millisecond, 6))
//
// Any github.com/cenkalti/backoff/v5 BackOff can be used through FromBackOff.
package backoff
