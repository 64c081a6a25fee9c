package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ippcode22/lang/program"
)

func TestParseOpcodeCaseInsensitive(t *testing.T) {
	op, ok := program.ParseOpcode("move")
	require.True(t, ok)
	assert.Equal(t, program.MOVE, op)
	assert.Equal(t, "MOVE", op.String())

	_, ok = program.ParseOpcode("notanopcode")
	assert.False(t, ok)
}

func TestOpcodeStringZeroValue(t *testing.T) {
	var op program.Opcode
	assert.Equal(t, "illegal opcode", op.String())
}

func TestProgramPutAtLen(t *testing.T) {
	p := program.New()
	assert.Equal(t, 0, p.Len())

	p.Put(program.Instruction{Order: 5, Op: program.DEFVAR})
	ins, ok := p.At(5)
	require.True(t, ok)
	assert.Equal(t, program.DEFVAR, ins.Op)
	assert.Equal(t, 1, p.Len())

	_, ok = p.At(6)
	assert.False(t, ok)
}

func TestProgramLabels(t *testing.T) {
	p := program.New()
	assert.True(t, p.DefineLabel("loop", 3))
	assert.False(t, p.DefineLabel("loop", 7))

	order, ok := p.ResolveLabel("loop")
	require.True(t, ok)
	assert.Equal(t, 3, order)

	_, ok = p.ResolveLabel("missing")
	assert.False(t, ok)
}
