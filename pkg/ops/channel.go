package ops

import "context"

// Received carries one value received from a channel. OK is false when the
// channel was closed instead of delivering a value.
type Received[T any] struct {
	Value T
	OK    bool
}

// RecvOp receives one value from a channel. A dedicated goroutine performs
// the receive so the op can signal readiness; it starts on the first poll
// and gives up its receive when the op is torn down. If teardown happens
// after the receive but before the block consumed the result, the received
// value is dropped.
type RecvOp[T any] struct {
	ch      <-chan T
	cancel  context.CancelFunc
	fired   chan struct{}
	out     Received[T]
	started bool
}

// Recv returns an operation that completes with the next value received
// from ch, or with OK=false once ch is closed.
func Recv[T any](ch <-chan T) *RecvOp[T] {
	return &RecvOp[T]{ch: ch, fired: make(chan struct{})}
}

// Poll starts the receive on first use and reports completion once a value
// (or a close) arrived.
func (o *RecvOp[T]) Poll(ctx context.Context) (Received[T], bool) {
	if !o.started {
		o.started = true
		rctx, cancel := context.WithCancel(ctx)
		o.cancel = cancel
		go func() {
			select {
			case v, ok := <-o.ch:
				o.out = Received[T]{Value: v, OK: ok}
				close(o.fired)
			case <-rctx.Done():
			}
		}()
	}
	select {
	case <-o.fired:
		return o.out, true
	default:
		return Received[T]{}, false
	}
}

// Notify returns the channel closed when the receive completed.
func (o *RecvOp[T]) Notify() <-chan struct{} {
	return o.fired
}

// Cancel gives up the pending receive.
func (o *RecvOp[T]) Cancel() {
	if o.cancel != nil {
		o.cancel()
	}
}

// SendOp sends one value into a channel, completing once the send is
// accepted. Teardown releases the channel slot: the send is withdrawn and
// the value is never delivered.
type SendOp[T any] struct {
	ch      chan<- T
	v       T
	cancel  context.CancelFunc
	fired   chan struct{}
	started bool
}

// Send returns an operation that completes once v has been sent into ch.
func Send[T any](ch chan<- T, v T) *SendOp[T] {
	return &SendOp[T]{ch: ch, v: v, fired: make(chan struct{})}
}

// Poll starts the send on first use and reports completion once it was
// accepted.
func (o *SendOp[T]) Poll(ctx context.Context) (struct{}, bool) {
	if !o.started {
		o.started = true
		sctx, cancel := context.WithCancel(ctx)
		o.cancel = cancel
		go func() {
			select {
			case o.ch <- o.v:
				close(o.fired)
			case <-sctx.Done():
			}
		}()
	}
	select {
	case <-o.fired:
		return struct{}{}, true
	default:
		return struct{}{}, false
	}
}

// Notify returns the channel closed when the send was accepted.
func (o *SendOp[T]) Notify() <-chan struct{} {
	return o.fired
}

// Cancel withdraws the pending send.
func (o *SendOp[T]) Cancel() {
	if o.cancel != nil {
		o.cancel()
	}
}
