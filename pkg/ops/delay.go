package ops

import (
	"context"
	"time"
)

// DelayOp completes after a fixed duration, producing the time it fired.
type DelayOp struct {
	d     time.Duration
	timer *time.Timer
	fired chan struct{}
	at    time.Time
}

// Delay returns an operation that completes d after its first poll. Linking
// a Delay alongside never-ending members is the usual way to give a block a
// stop condition.
func Delay(d time.Duration) *DelayOp {
	return &DelayOp{d: d, fired: make(chan struct{})}
}

// Poll starts the timer on first use and reports completion once it fires.
func (o *DelayOp) Poll(ctx context.Context) (time.Time, bool) {
	if o.timer == nil {
		o.timer = time.AfterFunc(o.d, func() {
			o.at = time.Now()
			close(o.fired)
		})
	}
	select {
	case <-o.fired:
		return o.at, true
	default:
		return time.Time{}, false
	}
}

// Notify returns the channel closed when the timer fires.
func (o *DelayOp) Notify() <-chan struct{} {
	return o.fired
}

// Cancel releases the timer registration.
func (o *DelayOp) Cancel() {
	if o.timer != nil {
		o.timer.Stop()
	}
}
