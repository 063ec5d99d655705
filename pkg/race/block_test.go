package race

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/race-kit/internal/testutil"
)

func TestLink2_WinnerMatchesBranch(t *testing.T) {
	pending := testutil.NeverComplete[int]()
	done := testutil.CompleteOnPoll(1, "payload")

	b, err := Link2[int, string]("pending", pending, "done", done)
	require.NoError(t, err)

	id, res, err := b.Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ID("done"), id)
	assert.Equal(t, 1, res.Which())

	v1, ok := res.V1()
	assert.True(t, ok)
	assert.Equal(t, "payload", v1)

	_, ok = res.V0()
	assert.False(t, ok)
}

func TestLink1_SingletonPassesThroughOwnResult(t *testing.T) {
	op := testutil.CompleteOnPoll(1, 42)

	b, err := Link1[int]("only", op)
	require.NoError(t, err)

	id, res, err := b.Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ID("only"), id)
	v, ok := res.V0()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, op.Polls())
	assert.Equal(t, 0, op.Cancels())
}

func TestLink2_TieBreakFollowsInsertionOrder(t *testing.T) {
	// Both members complete on the very first scheduling turn; the one
	// supplied earlier must win, reproducibly, under either ordering.
	for i := 0; i < 10; i++ {
		a := testutil.CompleteOnPoll(1, "a")
		bOp := testutil.CompleteOnPoll(1, "b")

		blk, err := Link2[string, string]("a", a, "b", bOp)
		require.NoError(t, err)

		id, res, err := blk.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ID("a"), id)
		assert.Equal(t, 0, res.Which())

		// The loser is never polled once the winner is found in the same
		// turn, and is torn down exactly once.
		assert.Equal(t, 0, bOp.Polls())
		assert.Equal(t, 1, bOp.Cancels())
	}

	for i := 0; i < 10; i++ {
		a := testutil.CompleteOnPoll(1, "a")
		bOp := testutil.CompleteOnPoll(1, "b")

		blk, err := Link2[string, string]("b", bOp, "a", a)
		require.NoError(t, err)

		id, _, err := blk.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ID("b"), id)
	}
}

func TestLink3_SlowestAndStalledAreTornDown(t *testing.T) {
	// A never completes, B completes on its second poll, C on its third.
	a := testutil.NeverComplete[struct{}]()
	bOp := testutil.CompleteOnPoll(2, "from-b")
	c := testutil.CompleteOnPoll(3, 7)

	blk, err := Link3[struct{}, string, int]("a", a, "b", bOp, "c", c)
	require.NoError(t, err)

	ctx := context.Background()

	// Turn 1: everyone polled once, nobody done.
	require.False(t, blk.Turn(ctx))
	assert.Equal(t, 1, a.Polls())
	assert.Equal(t, 1, bOp.Polls())
	assert.Equal(t, 1, c.Polls())

	// Turn 2: B completes; C must not be polled again this turn.
	require.True(t, blk.Turn(ctx))

	id, res, ok := blk.Winner()
	require.True(t, ok)
	assert.Equal(t, ID("b"), id)
	v, ok := res.V1()
	assert.True(t, ok)
	assert.Equal(t, "from-b", v)

	assert.Equal(t, 2, a.Polls())
	assert.Equal(t, 2, bOp.Polls())
	assert.Equal(t, 1, c.Polls())

	// Losers torn down exactly once, winner not at all.
	assert.Equal(t, 1, a.Cancels())
	assert.Equal(t, 1, c.Cancels())
	assert.Equal(t, 0, bOp.Cancels())

	// Further turns are no-ops: nobody is polled or cancelled again.
	require.True(t, blk.Turn(ctx))
	assert.Equal(t, 2, a.Polls())
	assert.Equal(t, 1, c.Polls())
	assert.Equal(t, 1, a.Cancels())
	assert.Equal(t, 1, c.Cancels())
}

func TestAwait_IsIdempotentAfterCompletion(t *testing.T) {
	op := testutil.CompleteOnPoll(1, "v")
	blk, err := Link2[string, struct{}]("winner", op, "loser", testutil.NeverComplete[struct{}]())
	require.NoError(t, err)

	id1, res1, err := blk.Await(context.Background())
	require.NoError(t, err)

	id2, res2, err := blk.Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, res1.Which(), res2.Which())
	assert.Equal(t, 1, op.Polls())
}

func TestAwait_ParksUntilSignalled(t *testing.T) {
	stalled := testutil.NewSignalOp("never")
	eventual := testutil.NewSignalOp("winner")

	blk, err := Link2[string, string]("stalled", stalled, "eventual", eventual)
	require.NoError(t, err)

	timer := time.AfterFunc(10*time.Millisecond, eventual.Complete)
	defer timer.Stop()

	id, res, err := blk.Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ID("eventual"), id)
	v, ok := res.V1()
	assert.True(t, ok)
	assert.Equal(t, "winner", v)
	assert.Equal(t, 1, stalled.Cancels())
}

func TestAwait_ContextCancellationAbandonsBlock(t *testing.T) {
	a := testutil.NewSignalOp(1)
	b := testutil.NewSignalOp(2)

	blk, err := Link2[int, int]("a", a, "b", b)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(10*time.Millisecond, cancel)
	defer timer.Stop()

	_, _, err = blk.Await(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 1, a.Cancels())
	assert.Equal(t, 1, b.Cancels())

	// The block is terminal; a later Await reports the discard.
	_, _, err = blk.Await(context.Background())
	assert.ErrorIs(t, err, ErrDiscarded)

	_, _, ok := blk.Winner()
	assert.False(t, ok)
}

func TestDiscard_TearsDownWithoutScheduling(t *testing.T) {
	a := testutil.NeverComplete[int]()
	b := testutil.NeverComplete[int]()

	blk, err := Link2[int, int]("a", a, "b", b)
	require.NoError(t, err)

	blk.Discard()

	assert.Equal(t, 0, a.Polls())
	assert.Equal(t, 0, b.Polls())
	assert.Equal(t, 1, a.Cancels())
	assert.Equal(t, 1, b.Cancels())

	// Discard is idempotent.
	blk.Discard()
	assert.Equal(t, 1, a.Cancels())

	_, _, err = blk.Await(context.Background())
	assert.ErrorIs(t, err, ErrDiscarded)
}

func TestLink_ConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		field string
	}{
		{
			name: "duplicate identifier",
			build: func() error {
				_, err := Link2[int, int](
					"same", testutil.NeverComplete[int](),
					"same", testutil.NeverComplete[int](),
				)
				return err
			},
			field: "operations[1].id",
		},
		{
			name: "empty identifier",
			build: func() error {
				_, err := Link1[int]("", testutil.NeverComplete[int]())
				return err
			},
			field: "operations[0].id",
		},
		{
			name: "nil operation",
			build: func() error {
				_, err := Link2[int, int](
					"a", testutil.NeverComplete[int](),
					"b", nil,
				)
				return err
			},
			field: "operations[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestResult_ZeroValueHasNoBranch(t *testing.T) {
	var res Result2[int, string]
	assert.Equal(t, -1, res.Which())

	_, ok := res.V0()
	assert.False(t, ok)
	_, ok = res.V1()
	assert.False(t, ok)
}

func TestLink5_LastMemberCanWin(t *testing.T) {
	blk, err := Link5[int, int, int, int, string](
		"p0", testutil.NeverComplete[int](),
		"p1", testutil.NeverComplete[int](),
		"p2", testutil.NeverComplete[int](),
		"p3", testutil.NeverComplete[int](),
		"p4", testutil.CompleteOnPoll(2, "tail"),
	)
	require.NoError(t, err)

	id, res, err := blk.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ID("p4"), id)
	assert.Equal(t, 4, res.Which())

	v, ok := res.V4()
	assert.True(t, ok)
	assert.Equal(t, "tail", v)
}
