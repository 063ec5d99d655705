package race

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// ErrDiscarded is returned by Await when the block was abandoned before any
// member completed.
var ErrDiscarded = errors.New("race: block discarded")

// ConfigError represents a block construction error: an empty operation set,
// a nil operation, or an empty or duplicate identifier. Construction errors
// are always raised before any scheduling occurs; a running block cannot
// fail on its own account.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// Option configures a block at construction time.
type Option func(*engine)

// WithName attaches a human-readable block name carried on collector events.
func WithName(name string) Option {
	return func(e *engine) {
		e.name = name
	}
}

// WithCollector attaches a Collector that receives the block's lifecycle
// events. Without one the block records nothing.
func WithCollector(c Collector) Option {
	return func(e *engine) {
		e.col = c
	}
}

// slot is one (identifier, operation) pair in the block's pool. The typed
// operation is captured inside the closures so that the engine itself stays
// arity-agnostic; dispatch to the operation's own step logic is decided at
// slot construction, once, per branch.
type slot struct {
	id     ID
	poll   func(ctx context.Context) bool
	cancel func()
	notify func() <-chan struct{}
}

// newSlot binds a typed operation into a slot. store receives the output
// value exactly once, when the operation completes.
func newSlot[T any](id ID, op Op[T], store func(T)) slot {
	s := slot{id: id}
	if op == nil {
		// poll stays nil; initEngine rejects the slot.
		return s
	}
	s.poll = func(ctx context.Context) bool {
		v, done := op.Poll(ctx)
		if done {
			store(v)
		}
		return done
	}
	if c, ok := op.(Canceler); ok {
		s.cancel = c.Cancel
	}
	if n, ok := op.(Notifier); ok {
		s.notify = n.Notify
	}
	return s
}

type blockState uint8

const (
	stateConstructed blockState = iota
	stateRunning
	stateCompleted
	stateDiscarded
)

// engine owns the race pool and the advancement protocol shared by every
// block arity. The pool is mutated only here and never exposed.
type engine struct {
	name    string
	raceID  string
	col     Collector
	slots   []slot
	pending []int
	state   blockState
	winner  int
	turns   int
	started time.Time
}

// initEngine validates the supplied slots and readies the engine. On error
// the engine is left untouched and no operation has been polled or started.
func initEngine(e *engine, slots []slot, opts []Option) error {
	if len(slots) == 0 {
		return &ConfigError{Field: "operations", Message: "at least one operation must be supplied"}
	}
	seen := make(map[ID]int, len(slots))
	for i, s := range slots {
		if s.id == "" {
			return &ConfigError{
				Field:   fmt.Sprintf("operations[%d].id", i),
				Message: "identifier cannot be empty",
			}
		}
		if s.poll == nil {
			return &ConfigError{
				Field:   fmt.Sprintf("operations[%d]", i),
				Message: "operation cannot be nil",
			}
		}
		if prev, dup := seen[s.id]; dup {
			return &ConfigError{
				Field:   fmt.Sprintf("operations[%d].id", i),
				Message: fmt.Sprintf("duplicate identifier %q (first used at position %d)", s.id, prev),
			}
		}
		seen[s.id] = i
	}

	e.slots = slots
	e.pending = make([]int, len(slots))
	for i := range slots {
		e.pending[i] = i
	}
	e.winner = -1
	e.raceID = uuid.New().String()
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return nil
}

// turn performs one scheduling turn: every still-pending slot is polled once
// in insertion order, and the first to report completion wins the whole
// block. It reports whether the block is in a terminal state. Turns after
// completion or discard are no-ops.
func (e *engine) turn(ctx context.Context) bool {
	switch e.state {
	case stateCompleted, stateDiscarded:
		return true
	case stateConstructed:
		e.state = stateRunning
		e.started = time.Now()
		e.record(EventRaceStarted, -1)
	}

	for _, idx := range e.pending {
		if e.slots[idx].poll(ctx) {
			e.complete(idx)
			return true
		}
	}
	e.turns++
	return false
}

// complete resolves the winner and tears down every other pending slot
// synchronously, in insertion order, as part of the same step. Losing slots
// receive no further scheduling of any kind.
func (e *engine) complete(winnerIdx int) {
	e.winner = winnerIdx
	e.record(EventSlotWon, winnerIdx)
	for _, idx := range e.pending {
		if idx == winnerIdx {
			continue
		}
		if cancel := e.slots[idx].cancel; cancel != nil {
			cancel()
		}
		e.record(EventSlotCancelled, idx)
	}
	e.pending = nil
	e.state = stateCompleted
	e.record(EventRaceCompleted, -1)
}

// discard abandons the block without a winner, tearing down every pending
// slot. Discarding a terminal block is a no-op.
func (e *engine) discard() {
	if e.state == stateCompleted || e.state == stateDiscarded {
		return
	}
	for _, idx := range e.pending {
		if cancel := e.slots[idx].cancel; cancel != nil {
			cancel()
		}
		e.record(EventSlotCancelled, idx)
	}
	e.pending = nil
	e.state = stateDiscarded
	e.record(EventRaceDiscarded, -1)
}

// await drives turns until the block completes. Between empty turns it parks
// on the pending operations' notify channels; if any pending operation
// cannot signal readiness the engine yields and re-polls instead. Context
// cancellation abandons the block.
func (e *engine) await(ctx context.Context) error {
	for {
		if e.turn(ctx) {
			if e.state == stateDiscarded {
				return ErrDiscarded
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			e.discard()
			return err
		}
		if !e.park(ctx) {
			runtime.Gosched()
		}
	}
}

// park blocks until some pending operation signals readiness or the context
// is done. It reports false, without blocking, when any pending operation
// lacks a notify channel.
func (e *engine) park(ctx context.Context) bool {
	cases := make([]reflect.SelectCase, 0, len(e.pending)+1)
	for _, idx := range e.pending {
		notify := e.slots[idx].notify
		if notify == nil {
			return false
		}
		ch := notify()
		if ch == nil {
			return false
		}
		cases = append(cases, reflect.SelectCase{
			Dir:  reflect.SelectRecv,
			Chan: reflect.ValueOf(ch),
		})
	}
	cases = append(cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(ctx.Done()),
	})
	reflect.Select(cases)
	return true
}

// winnerID returns the winning identifier once the block has completed.
func (e *engine) winnerID() (ID, bool) {
	if e.state != stateCompleted {
		return "", false
	}
	return e.slots[e.winner].id, true
}

// record emits a collector event. pos < 0 records a block-scoped event.
func (e *engine) record(t EventType, pos int) {
	if e.col == nil {
		return
	}
	now := time.Now()
	ev := Event{
		Type:   t,
		RaceID: e.raceID,
		Block:  e.name,
		Turn:   e.turns,
		Time:   now,
	}
	if !e.started.IsZero() {
		ev.Elapsed = now.Sub(e.started)
	}
	if pos >= 0 {
		ev.Slot = e.slots[pos].id
		ev.Position = pos
	}
	e.col.RecordEvent(ev)
}
