package cpu

import "time"

// DefaultHz is the Sharp LR35902's documented clock rate.
const DefaultHz = 4_194_304

// Clock paces Run's Tick loop to wall-clock time. Rather than sleeping a
// fixed period every call (which would accumulate the overhead of each
// Wait call itself as drift over many ticks), it tracks the wall-clock
// deadline the next tick should land on and sleeps only the remaining time
// until it, so scheduling jitter on one tick doesn't compound into the
// next.
type Clock struct {
	period time.Duration
	next   time.Time
}

// NewClock returns a Clock ticking at hz cycles per second.
func NewClock(hz uint64) *Clock {
	return &Clock{period: time.Second / time.Duration(hz)}
}

// Wait blocks until the next clock deadline, advancing it by one period.
// The first call does not sleep: it sets the first deadline one period
// from now and returns. If the caller has fallen behind (a previous Wait or the work between
// calls overran its period), the deadline resets from now rather than
// sleeping zero repeatedly to "catch up" by bursting ticks.
func (cl *Clock) Wait() {
	now := time.Now()
	if cl.next.IsZero() {
		cl.next = now.Add(cl.period)
		return
	}
	if remaining := cl.next.Sub(now); remaining > 0 {
		time.Sleep(remaining)
	} else {
		cl.next = now
	}
	cl.next = cl.next.Add(cl.period)
}
