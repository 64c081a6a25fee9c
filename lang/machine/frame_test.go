package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDeclareAndLookup(t *testing.T) {
	f := NewFrame()
	assert.True(t, f.Declare("x"))
	assert.False(t, f.Declare("x"))

	slot, ok := f.Lookup("x")
	require.True(t, ok)
	assert.Nil(t, slot.Value)

	_, ok = f.Lookup("y")
	assert.False(t, ok)
}

func TestRegistersFrameStack(t *testing.T) {
	r := NewRegisters()
	assert.NotNil(t, r.GF)
	assert.Nil(t, r.TF)
	assert.Nil(t, r.LF())

	assert.False(t, r.PushFrame())

	r.CreateFrame()
	assert.True(t, r.PushFrame())
	assert.NotNil(t, r.LF())
	assert.Nil(t, r.TF)

	assert.True(t, r.PopFrame())
	assert.NotNil(t, r.TF)
	assert.Nil(t, r.LF())

	assert.False(t, r.PopFrame())
}

func TestRegistersFrameTag(t *testing.T) {
	r := NewRegisters()
	assert.Same(t, r.GF, r.Frame("GF"))
	assert.Nil(t, r.Frame("TF"))
	assert.Nil(t, r.Frame("XF"))
}
