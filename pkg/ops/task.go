package ops

import "context"

// Outcome pairs a function's value with the error produced alongside it.
// Blocks pass operation outputs through without interpreting them, so
// func-backed operations surface both halves in a single output value for
// the caller to inspect after the race.
type Outcome[T any] struct {
	Value T
	Err   error
}

// TaskOp runs a function in its own goroutine and completes with its
// Outcome. The goroutine starts on the op's first poll, not at
// construction; teardown cancels the function's context and the op never
// reports completion afterwards.
type TaskOp[T any] struct {
	fn      func(context.Context) (T, error)
	cancel  context.CancelFunc
	fired   chan struct{}
	out     Outcome[T]
	started bool
}

// Task wraps fn as a race operation. fn should honor context cancellation;
// a torn-down task whose function ignores its context leaks the goroutine
// until the function returns on its own.
func Task[T any](fn func(context.Context) (T, error)) *TaskOp[T] {
	return &TaskOp[T]{fn: fn, fired: make(chan struct{})}
}

// Poll starts the function on first use and reports completion once it
// returned.
func (o *TaskOp[T]) Poll(ctx context.Context) (Outcome[T], bool) {
	if !o.started {
		o.started = true
		tctx, cancel := context.WithCancel(ctx)
		o.cancel = cancel
		go func() {
			v, err := o.fn(tctx)
			o.out = Outcome[T]{Value: v, Err: err}
			close(o.fired)
		}()
	}
	select {
	case <-o.fired:
		return o.out, true
	default:
		return Outcome[T]{}, false
	}
}

// Notify returns the channel closed when the function returned.
func (o *TaskOp[T]) Notify() <-chan struct{} {
	return o.fired
}

// Cancel cancels the function's context.
func (o *TaskOp[T]) Cancel() {
	if o.cancel != nil {
		o.cancel()
	}
}
