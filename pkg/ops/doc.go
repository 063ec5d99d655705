// Package ops provides ready-made operations for linking into race blocks:
// timers, one-shot channel sends and receives, goroutine-backed functions,
// and paced never-ending producers.
//
// Every operation here starts its work lazily on its first poll, so an
// unstarted block schedules nothing, and implements teardown-on-discard
// where it holds resources: timers are stopped, pending channel slots are
// given up, and function goroutines have their context cancelled. All of
// them expose a notify channel, which lets a block's Await driver park
// instead of re-polling.
//
// Operations are not safe for use in more than one block at a time; each
// value is consumed by the block it is linked into.
package ops
