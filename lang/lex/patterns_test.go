package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ippcode22/lang/lex"
)

func TestIsVariable(t *testing.T) {
	assert.True(t, lex.IsVariable("GF@x"))
	assert.True(t, lex.IsVariable("lf@my_var"))
	assert.True(t, lex.IsVariable("TF@a-b$c&d%e*f!g?h"))
	assert.False(t, lex.IsVariable("XF@x"))
	assert.False(t, lex.IsVariable("GF@1x"))
	assert.False(t, lex.IsVariable("GF@"))
}

func TestIsInteger(t *testing.T) {
	for _, ok := range []string{"0", "123", "-123", "+123", "0x1A", "0X1a", "0b101", "0777", "0", "-0x0"} {
		assert.True(t, lex.IsInteger(ok), ok)
	}
	for _, bad := range []string{"", "01a", "1.0", "--1", "0b2", "0xZZ", "+ 1"} {
		assert.False(t, lex.IsInteger(bad), bad)
	}
}

func TestIntBase(t *testing.T) {
	assert.Equal(t, 10, lex.IntBase("123"))
	assert.Equal(t, 10, lex.IntBase("-5"))
	assert.Equal(t, 2, lex.IntBase("0b101"))
	assert.Equal(t, 16, lex.IntBase("-0x1F"))
	assert.Equal(t, 8, lex.IntBase("0777"))
	assert.Equal(t, 8, lex.IntBase("0"))
}

func TestIsString(t *testing.T) {
	assert.True(t, lex.IsString(""))
	assert.True(t, lex.IsString("hello"))
	assert.True(t, lex.IsString(`a\032b`))
	assert.False(t, lex.IsString("a#b"))
	assert.False(t, lex.IsString("a\tb"))
	assert.False(t, lex.IsString(`a\32b`))
	assert.False(t, lex.IsString(`a\b`))
}

func TestIsLabelAndType(t *testing.T) {
	assert.True(t, lex.IsLabel("loop_1"))
	assert.False(t, lex.IsLabel("1loop"))
	assert.True(t, lex.IsType("int"))
	assert.True(t, lex.IsType("bool"))
	assert.False(t, lex.IsType("float"))
}
