package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_GeneratesCoupledDefinitions(t *testing.T) {
	// Emit runs the output through go/format, so a successful return also
	// guarantees the generated source is syntactically valid Go.
	src, err := Emit(validFile())
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by blockgen; DO NOT EDIT."))
	assert.Contains(t, out, "package linked")

	// Identifier type and constants, in insertion order.
	assert.Contains(t, out, "type PipelineID race.ID")
	idx := []int{
		strings.Index(out, `PipelineGenerator PipelineID = "Generator"`),
		strings.Index(out, `PipelineForwarder PipelineID = "Forwarder"`),
		strings.Index(out, `PipelineReader    PipelineID = "Reader"`),
		strings.Index(out, `PipelineStop      PipelineID = "Stop"`),
	}
	for i, pos := range idx {
		require.GreaterOrEqual(t, pos, 0, "constant %d missing", i)
		if i > 0 {
			assert.Greater(t, pos, idx[i-1], "constants out of insertion order")
		}
	}

	// Linked block over the matching generic arity.
	assert.Contains(t, out, "type PipelineBlock[T0, T1, T2, T3 any] struct")
	assert.Contains(t, out, "inner *race.Block4[T0, T1, T2, T3]")
	assert.Contains(t, out, "func LinkPipeline[T0, T1, T2, T3 any](generator race.Op[T0], forwarder race.Op[T1], reader race.Op[T2], stop race.Op[T3], opts ...race.Option)")

	// Result variant with one named accessor per branch.
	assert.Contains(t, out, "type PipelineResult[T0, T1, T2, T3 any] struct")
	assert.Contains(t, out, "func (r PipelineResult[T0, T1, T2, T3]) Generator() (T0, bool)")
	assert.Contains(t, out, "func (r PipelineResult[T0, T1, T2, T3]) Stop() (T3, bool)")
}

func TestEmit_RejectsInvalidDefinitions(t *testing.T) {
	f := validFile()
	f.Blocks[0].Identifiers = nil

	_, err := Emit(f)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestEmit_KeywordIdentifierGetsSafeParamName(t *testing.T) {
	f := &File{
		Package: "linked",
		Blocks: []Block{
			{Name: "Guard", Identifiers: []string{"Select", "Default"}},
		},
	}

	src, err := Emit(f)
	require.NoError(t, err)

	// Both identifiers would lower-case to Go keywords.
	assert.Contains(t, string(src), "opSelect race.Op[T0]")
	assert.Contains(t, string(src), "opDefault race.Op[T1]")
}

func TestEmitArities_GeneratesGenericContainers(t *testing.T) {
	src, err := EmitArities("race", 3)
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by blockgen -arities 3 -package race; DO NOT EDIT."))

	for _, want := range []string{
		"type Block1[T0 any] struct",
		"type Block2[T0, T1 any] struct",
		"type Block3[T0, T1, T2 any] struct",
		"func Link3[T0, T1, T2 any](id0 ID, op0 Op[T0], id1 ID, op1 Op[T1], id2 ID, op2 Op[T2], opts ...Option)",
		"func (r Result3[T0, T1, T2]) V2() (T2, bool)",
	} {
		assert.Contains(t, out, want)
	}

	// Arity ceiling respected: nothing beyond Block3.
	assert.NotContains(t, out, "Block4")
}

func TestEmitArities_RejectsBadInput(t *testing.T) {
	_, err := EmitArities("Race", 3)
	assert.Error(t, err)

	_, err = EmitArities("race", 0)
	assert.Error(t, err)
}
