package race

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitEngine_EmptySetFailsBeforeScheduling(t *testing.T) {
	var e engine
	err := initEngine(&e, nil, nil)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "operations", cfgErr.Field)

	// No engine state was produced: the pool is empty and nothing can run.
	assert.Nil(t, e.slots)
	assert.Nil(t, e.pending)
	assert.Equal(t, stateConstructed, e.state)
}

func TestEngine_TurnIsTerminalAfterCompletion(t *testing.T) {
	polled := 0
	op := OpFunc[int](func(ctx context.Context) (int, bool) {
		polled++
		return 99, true
	})

	b, err := Link1[int]("one", op)
	require.NoError(t, err)

	ctx := context.Background()
	require.True(t, b.Turn(ctx))
	require.True(t, b.Turn(ctx))
	require.True(t, b.Turn(ctx))

	// Completion is single-fire; the op is consumed on its winning poll.
	assert.Equal(t, 1, polled)

	id, res, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, ID("one"), id)
	v, _ := res.V0()
	assert.Equal(t, 99, v)
}

func TestEngine_OperationErrorsPassThrough(t *testing.T) {
	// An error-shaped output is just a normal completion; the engine applies
	// no policy of its own.
	type outcome struct {
		err error
	}
	op := OpFunc[outcome](func(ctx context.Context) (outcome, bool) {
		return outcome{err: assert.AnError}, true
	})

	b, err := Link1[outcome]("failing", op)
	require.NoError(t, err)

	id, res, err := b.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ID("failing"), id)

	out, ok := res.V0()
	require.True(t, ok)
	assert.ErrorIs(t, out.err, assert.AnError)
}

func TestEngine_MintsDistinctRaceIDs(t *testing.T) {
	b1, err := Link1[int]("x", OpFunc[int](func(context.Context) (int, bool) { return 0, true }))
	require.NoError(t, err)
	b2, err := Link1[int]("x", OpFunc[int](func(context.Context) (int, bool) { return 0, true }))
	require.NoError(t, err)

	assert.NotEmpty(t, b1.eng.raceID)
	assert.NotEmpty(t, b2.eng.raceID)
	assert.NotEqual(t, b1.eng.raceID, b2.eng.raceID)
}
