package machine_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ippcode22/lang/machine"
	"ippcode22/lang/validate"
	"ippcode22/lang/xmlsrc"
)

// run loads, validates and executes src, feeding stdinText to READ and
// returning the exit code, stdout and stderr.
func run(t *testing.T, src, stdinText string) (int, string, string) {
	t.Helper()

	doc, err := xmlsrc.Load(strings.NewReader(src))
	require.NoError(t, err)

	prog, err := validate.Validate(doc)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	m := machine.New(prog, strings.NewReader(stdinText), &stdout, &stderr, nil)
	code, err := m.Run(context.Background())
	if err != nil {
		return code, stdout.String(), err.Error()
	}
	return code, stdout.String(), stderr.String()
}

func TestHelloWorld(t *testing.T) {
	code, out, _ := run(t, `<program>
  <instruction order="1" opcode="WRITE"><arg1 type="string">hello world</arg1></instruction>
</program>`, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world", out)
}

func TestArithmetic(t *testing.T) {
	code, out, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="ADD">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">2</arg2>
    <arg3 type="int">40</arg3>
  </instruction>
  <instruction order="3" opcode="WRITE"><arg1 type="var">GF@x</arg1></instruction>
</program>`, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "42", out)
}

func TestDivisionByZero(t *testing.T) {
	code, _, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="IDIV">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">1</arg2>
    <arg3 type="int">0</arg3>
  </instruction>
</program>`, "")
	assert.Equal(t, 57, code)
}

func TestUninitializedRead(t *testing.T) {
	code, _, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="DEFVAR"><arg1 type="var">GF@y</arg1></instruction>
  <instruction order="3" opcode="MOVE">
    <arg1 type="var">GF@y</arg1>
    <arg2 type="var">GF@x</arg2>
  </instruction>
</program>`, "")
	assert.Equal(t, 56, code)
}

func TestUndefinedVariableFrame(t *testing.T) {
	code, _, _ := run(t, `<program>
  <instruction order="1" opcode="WRITE"><arg1 type="var">LF@x</arg1></instruction>
</program>`, "")
	assert.Equal(t, 55, code)
}

func TestLoopViaJumps(t *testing.T) {
	code, out, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@i</arg1></instruction>
  <instruction order="2" opcode="MOVE"><arg1 type="var">GF@i</arg1><arg2 type="int">0</arg2></instruction>
  <instruction order="3" opcode="LABEL"><arg1 type="label">loop</arg1></instruction>
  <instruction order="4" opcode="JUMPIFEQ">
    <arg1 type="label">done</arg1>
    <arg2 type="var">GF@i</arg2>
    <arg3 type="int">3</arg3>
  </instruction>
  <instruction order="5" opcode="WRITE"><arg1 type="var">GF@i</arg1></instruction>
  <instruction order="6" opcode="ADD">
    <arg1 type="var">GF@i</arg1>
    <arg2 type="var">GF@i</arg2>
    <arg3 type="int">1</arg3>
  </instruction>
  <instruction order="7" opcode="JUMP"><arg1 type="label">loop</arg1></instruction>
  <instruction order="8" opcode="LABEL"><arg1 type="label">done</arg1></instruction>
</program>`, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "012", out)
}

func TestCallReturn(t *testing.T) {
	code, out, _ := run(t, `<program>
  <instruction order="1" opcode="CALL"><arg1 type="label">greet</arg1></instruction>
  <instruction order="2" opcode="JUMP"><arg1 type="label">end</arg1></instruction>
  <instruction order="3" opcode="LABEL"><arg1 type="label">greet</arg1></instruction>
  <instruction order="4" opcode="WRITE"><arg1 type="string">hi</arg1></instruction>
  <instruction order="5" opcode="RETURN"></instruction>
  <instruction order="6" opcode="LABEL"><arg1 type="label">end</arg1></instruction>
</program>`, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "hi", out)
}

func TestReturnWithEmptyCallStack(t *testing.T) {
	code, _, _ := run(t, `<program>
  <instruction order="1" opcode="RETURN"></instruction>
</program>`, "")
	assert.Equal(t, 56, code)
}

// TestJumpIfEqDoesNotReproduceSrc2NameBug regresses against the reference
// interpreter's is_2_3_eql helper, which misread a bool second operand in
// its arg-2 branch so that bool@true and bool@false compared equal; both
// operands here resolve independently and correctly compare unequal.
func TestJumpIfEqDoesNotReproduceSrc2NameBug(t *testing.T) {
	code, out, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@a</arg1></instruction>
  <instruction order="2" opcode="DEFVAR"><arg1 type="var">GF@b</arg1></instruction>
  <instruction order="3" opcode="MOVE"><arg1 type="var">GF@a</arg1><arg2 type="bool">true</arg2></instruction>
  <instruction order="4" opcode="MOVE"><arg1 type="var">GF@b</arg1><arg2 type="bool">false</arg2></instruction>
  <instruction order="5" opcode="JUMPIFEQ">
    <arg1 type="label">same</arg1>
    <arg2 type="var">GF@a</arg2>
    <arg3 type="var">GF@b</arg3>
  </instruction>
  <instruction order="6" opcode="WRITE"><arg1 type="string">different</arg1></instruction>
  <instruction order="7" opcode="JUMP"><arg1 type="label">end</arg1></instruction>
  <instruction order="8" opcode="LABEL"><arg1 type="label">same</arg1></instruction>
  <instruction order="9" opcode="WRITE"><arg1 type="string">same</arg1></instruction>
  <instruction order="10" opcode="LABEL"><arg1 type="label">end</arg1></instruction>
</program>`, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "different", out)
}

func TestExitValidCode(t *testing.T) {
	code, _, _ := run(t, `<program>
  <instruction order="1" opcode="EXIT"><arg1 type="int">9</arg1></instruction>
</program>`, "")
	assert.Equal(t, 9, code)
}

func TestExitOutOfRange(t *testing.T) {
	code, _, _ := run(t, `<program>
  <instruction order="1" opcode="EXIT"><arg1 type="int">123</arg1></instruction>
</program>`, "")
	assert.Equal(t, 57, code)
}

func TestExitTypeMismatch(t *testing.T) {
	code, _, _ := run(t, `<program>
  <instruction order="1" opcode="EXIT"><arg1 type="string">nope</arg1></instruction>
</program>`, "")
	assert.Equal(t, 57, code)
}

func TestStringOps(t *testing.T) {
	code, out, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@s</arg1></instruction>
  <instruction order="2" opcode="CONCAT">
    <arg1 type="var">GF@s</arg1>
    <arg2 type="string">foo</arg2>
    <arg3 type="string">bar</arg3>
  </instruction>
  <instruction order="3" opcode="WRITE"><arg1 type="var">GF@s</arg1></instruction>
  <instruction order="4" opcode="DEFVAR"><arg1 type="var">GF@n</arg1></instruction>
  <instruction order="5" opcode="STRLEN">
    <arg1 type="var">GF@n</arg1>
    <arg2 type="var">GF@s</arg2>
  </instruction>
  <instruction order="6" opcode="WRITE"><arg1 type="var">GF@n</arg1></instruction>
</program>`, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "foobar6", out)
}

func TestGetCharOutOfBounds(t *testing.T) {
	code, _, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@c</arg1></instruction>
  <instruction order="2" opcode="GETCHAR">
    <arg1 type="var">GF@c</arg1>
    <arg2 type="string">hi</arg2>
    <arg3 type="int">5</arg3>
  </instruction>
</program>`, "")
	assert.Equal(t, 58, code)
}

func TestReadFromInput(t *testing.T) {
	code, out, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="READ">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="type">int</arg2>
  </instruction>
  <instruction order="3" opcode="WRITE"><arg1 type="var">GF@x</arg1></instruction>
</program>`, "7\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "7", out)
}

func TestTypeOfUninitializedIsEmptyNotError(t *testing.T) {
	code, out, _ := run(t, `<program>
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="DEFVAR"><arg1 type="var">GF@t</arg1></instruction>
  <instruction order="3" opcode="TYPE">
    <arg1 type="var">GF@t</arg1>
    <arg2 type="var">GF@x</arg2>
  </instruction>
  <instruction order="4" opcode="WRITE"><arg1 type="var">GF@t</arg1></instruction>
</program>`, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "", out)
}
