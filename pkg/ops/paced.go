package ops

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// PacedOp invokes a function at the pace allowed by a rate limiter and
// completes only when the function reports an error. It backs never-ending
// block members such as periodic generators: the op keeps producing until
// either its function fails or the rest of the block decides the race.
type PacedOp struct {
	lim     *rate.Limiter
	fn      func(context.Context, time.Time) error
	cancel  context.CancelFunc
	fired   chan struct{}
	err     error
	started bool
}

// Paced wraps fn as a paced race operation. fn receives the tick time of
// each invocation. A nil limiter means unpaced: fn runs back to back.
func Paced(lim *rate.Limiter, fn func(context.Context, time.Time) error) *PacedOp {
	if lim == nil {
		lim = rate.NewLimiter(rate.Inf, 0)
	}
	return &PacedOp{lim: lim, fn: fn, fired: make(chan struct{})}
}

// Poll starts the paced loop on first use and reports completion once the
// function returned an error.
func (o *PacedOp) Poll(ctx context.Context) (error, bool) {
	if !o.started {
		o.started = true
		pctx, cancel := context.WithCancel(ctx)
		o.cancel = cancel
		go func() {
			for {
				if err := o.lim.Wait(pctx); err != nil {
					// Torn down or outer context gone; the loop simply stops
					// without completing.
					return
				}
				if err := o.fn(pctx, time.Now()); err != nil {
					o.err = err
					close(o.fired)
					return
				}
			}
		}()
	}
	select {
	case <-o.fired:
		return o.err, true
	default:
		return nil, false
	}
}

// Notify returns the channel closed when the paced loop failed.
func (o *PacedOp) Notify() <-chan struct{} {
	return o.fired
}

// Cancel stops the paced loop.
func (o *PacedOp) Cancel() {
	if o.cancel != nil {
		o.cancel()
	}
}
