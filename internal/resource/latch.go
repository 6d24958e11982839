package resource

import "sync/atomic"

// Latch is a one-shot guard. The first Fire wins; every later Fire reports
// false until Reset.
type Latch struct {
	fired atomic.Bool
}

func (l *Latch) Fire() bool {
	return l.fired.CompareAndSwap(false, true)
}

func (l *Latch) Fired() bool {
	return l.fired.Load()
}

// Reset re-arms the latch. Views never call it; tests do.
func (l *Latch) Reset() {
	l.fired.Store(false)
}
