// Package testutil provides shared testing utilities, mocks, and fixtures
// for use across the race-kit test suite.
package testutil

import (
	"context"
	"sync"
)

// ScriptedOp is a mock race operation with deterministic, poll-counted
// behavior. It completes on its Nth poll (or never, for N < 0) and tracks
// every poll and cancel so tests can assert the engine's scheduling and
// teardown contracts.
//
// ScriptedOp deliberately does not implement race.Notifier: it is meant for
// Turn-driven tests where the caller controls every scheduling turn.
type ScriptedOp[T any] struct {
	mu sync.Mutex

	// Configuration
	output         T
	pollsUntilDone int // completes on this poll count; < 0 never completes

	// Call tracking
	polls   int
	cancels int
}

// NeverComplete returns an op that stays pending forever.
func NeverComplete[T any]() *ScriptedOp[T] {
	return &ScriptedOp[T]{pollsUntilDone: -1}
}

// CompleteOnPoll returns an op that produces output on its nth poll
// (n >= 1). With n == 1 the op completes on the very first scheduling turn.
func CompleteOnPoll[T any](n int, output T) *ScriptedOp[T] {
	return &ScriptedOp[T]{pollsUntilDone: n, output: output}
}

// Poll implements race.Op.
func (o *ScriptedOp[T]) Poll(ctx context.Context) (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.polls++
	if o.pollsUntilDone >= 0 && o.polls >= o.pollsUntilDone {
		return o.output, true
	}
	var zero T
	return zero, false
}

// Cancel implements race.Canceler.
func (o *ScriptedOp[T]) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancels++
}

// Polls returns how many times the op has been polled.
func (o *ScriptedOp[T]) Polls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.polls
}

// Cancels returns how many times the op has been torn down.
func (o *ScriptedOp[T]) Cancels() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cancels
}

// SignalOp is a mock race operation that completes once Complete is called,
// and signals readiness through a notify channel so Await-driven tests can
// park on it. Like ScriptedOp it tracks polls and cancels.
type SignalOp[T any] struct {
	mu      sync.Mutex
	output  T
	fired   chan struct{}
	polls   int
	cancels int
}

// NewSignalOp returns a SignalOp that will produce output once completed.
func NewSignalOp[T any](output T) *SignalOp[T] {
	return &SignalOp[T]{output: output, fired: make(chan struct{})}
}

// Complete marks the op finished; the next poll reports done and any parked
// driver wakes up. Complete must be called at most once.
func (o *SignalOp[T]) Complete() {
	close(o.fired)
}

// Poll implements race.Op.
func (o *SignalOp[T]) Poll(ctx context.Context) (T, bool) {
	o.mu.Lock()
	o.polls++
	o.mu.Unlock()
	select {
	case <-o.fired:
		return o.output, true
	default:
		var zero T
		return zero, false
	}
}

// Notify implements race.Notifier.
func (o *SignalOp[T]) Notify() <-chan struct{} {
	return o.fired
}

// Cancel implements race.Canceler.
func (o *SignalOp[T]) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancels++
}

// Polls returns how many times the op has been polled.
func (o *SignalOp[T]) Polls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.polls
}

// Cancels returns how many times the op has been torn down.
func (o *SignalOp[T]) Cancels() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cancels
}
