package race

import "context"

// Op is a single unit of asynchronous work raced inside a block.
//
// Poll attempts to make progress and must not block. It returns done=false
// while the operation is still pending, in which case the operation is
// responsible for arranging its own wake-up (typically by exposing a Notify
// channel). It returns the produced output and done=true exactly once, at
// which point the operation is consumed and will never be polled again.
//
// Whatever failure convention the operation uses is carried inside its
// output type; the block passes outputs through unchanged.
type Op[T any] interface {
	Poll(ctx context.Context) (T, bool)
}

// Canceler is implemented by operations that release resources when they are
// abandoned, such as stopping a timer registration or giving up a channel
// slot. When a block discards a still-pending member it invokes Cancel
// exactly once; operations that hold nothing simply don't implement it.
type Canceler interface {
	Cancel()
}

// Notifier is implemented by operations that can signal readiness. The
// returned channel is signal-only: it is closed (or sent on) when a future
// Poll may make progress, and no data is ever transferred through it.
//
// Await parks between empty turns only while every pending member implements
// Notifier; blocks containing members without one are re-polled continuously
// instead. Turn-driven callers can ignore this interface entirely.
type Notifier interface {
	Notify() <-chan struct{}
}

// OpFunc adapts a poll function to the Op interface.
type OpFunc[T any] func(ctx context.Context) (T, bool)

// Poll calls f(ctx).
func (f OpFunc[T]) Poll(ctx context.Context) (T, bool) {
	return f(ctx)
}
