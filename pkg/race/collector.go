package race

import (
	"sync"
	"time"
)

// EventType describes the type of block lifecycle event.
type EventType uint8

const (
	// EventRaceStarted is recorded on the block's first scheduling turn.
	EventRaceStarted EventType = iota

	// EventSlotWon is recorded for the winning member, once per block.
	EventSlotWon

	// EventSlotCancelled is recorded once for every member torn down after
	// the winner is chosen, or when the block is discarded without one.
	EventSlotCancelled

	// EventRaceCompleted is recorded after the winner and all teardowns have
	// been resolved.
	EventRaceCompleted

	// EventRaceDiscarded is recorded when a block is abandoned before any
	// member completed.
	EventRaceDiscarded
)

// String returns a stable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventRaceStarted:
		return "race_started"
	case EventSlotWon:
		return "slot_won"
	case EventSlotCancelled:
		return "slot_cancelled"
	case EventRaceCompleted:
		return "race_completed"
	case EventRaceDiscarded:
		return "race_discarded"
	default:
		return "unknown"
	}
}

// Event is a point-in-time record of block lifecycle activity. Slot and
// Position are meaningful only for slot-scoped event types.
type Event struct {
	Type EventType

	// RaceID uniquely identifies one linked block instance. It is minted at
	// construction time and shared by every event the block records.
	RaceID string

	// Block is the optional human-readable block name (see WithName).
	Block string

	// Slot is the identifier of the member the event concerns.
	Slot ID

	// Position is the member's insertion position within the block.
	Position int

	// Turn is the number of completed scheduling turns at record time.
	Turn int

	// Elapsed is the time since the block's first turn.
	Elapsed time.Duration

	// Time is the wall-clock record time.
	Time time.Time
}

// Collector receives block lifecycle events.
//
// Collectors are invoked synchronously from the goroutine driving the block,
// in a fixed order per race: started, then the winner's slot_won, then one
// slot_cancelled per losing member in insertion order, then race_completed.
// Implementations should return quickly and must not drive the block
// re-entrantly.
type Collector interface {
	RecordEvent(Event)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(Event)

// RecordEvent calls f(e).
func (f CollectorFunc) RecordEvent(e Event) {
	f(e)
}

// MemoryCollector is a Collector that retains every recorded event in
// memory. It is safe for concurrent use and intended for tests, diagnostics
// and small tools; long-running processes should prefer a bounded sink.
type MemoryCollector struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryCollector creates an empty MemoryCollector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// RecordEvent appends e to the collector's history.
func (c *MemoryCollector) RecordEvent(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// Events returns a snapshot copy of all recorded events in record order.
func (c *MemoryCollector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// EventsOf returns a snapshot of recorded events of the given type.
func (c *MemoryCollector) EventsOf(t EventType) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Event
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
