// Package race links a fixed, named set of heterogeneous asynchronous
// operations into a single block that completes as soon as any one of its
// members completes, cancelling the rest.
//
// A block is built once from an ordered list of (ID, operation) pairs and
// never grows or shrinks afterwards. Each operation keeps its own static
// output type; when the block completes, the caller receives the winning
// member's ID together with a result variant whose populated branch matches
// that ID. Operations signal failure through their own output values; the
// block applies no policy of its own to error-shaped outputs.
//
// Blocks can be driven two ways. Turn performs exactly one cooperative
// scheduling turn, visiting every still-pending member in insertion order,
// which makes the first-completion tie-break deterministic: if two members
// would finish in the same turn, the one supplied earlier wins. Await loops
// over Turn and parks between empty turns until a pending operation signals
// that it can make progress. The block itself starts no goroutines; all
// concurrency belongs to the wrapped operations.
//
// Once a winner is chosen every other pending member is torn down
// synchronously in the same step and never polled again. Teardown is the
// operation's own affair: members implementing Canceler have Cancel invoked
// exactly once, all others are simply dropped.
package race
