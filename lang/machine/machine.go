// Package machine implements the three-frame, three-stack execution engine
// that runs a validated program.Program: the frame register set, the
// operand resolver, the dispatcher loop, and the 35 instruction handlers.
package machine

import (
	"bufio"
	"context"
	"io"

	"ippcode22/internal/ippio"
	"ippcode22/lang/ipperr"
	"ippcode22/lang/program"
)

// Machine is the complete runtime state of one program execution: the
// instruction pointer, the frame register set, the three stacks, and the
// I/O streams WRITE/READ/DPRINT/BREAK use. Callers construct one per run;
// nothing here is safe for concurrent use, matching spec.md §5's
// single-threaded model.
type Machine struct {
	prog *program.Program
	regs *Registers
	data dataStack
	call callStack

	ip    int
	steps int

	stdout io.Writer
	stderr io.Writer
	input  *ippio.LineBuffer

	nextIP int
	jumped bool
}

// New builds a Machine ready to run prog. input may be nil, in which case
// READ falls back to stdin directly (via ippio.LineBuffer wrapping stdin).
func New(prog *program.Program, stdin io.Reader, stdout, stderr io.Writer, input *ippio.LineBuffer) *Machine {
	m := &Machine{
		prog:   prog,
		regs:   NewRegisters(),
		stdout: stdout,
		stderr: stderr,
		input:  input,
	}
	if m.input == nil {
		m.input = ippio.NewLineBuffer(bufio.NewScanner(stdin))
	}
	return m
}

// opHandler executes one instruction. A handler that transfers control sets
// m.jumped and m.nextIP instead of letting Run's default ip+1 advance take
// over.
type opHandler func(m *Machine, ins program.Instruction) error

var handlers map[program.Opcode]opHandler

func init() {
	handlers = map[program.Opcode]opHandler{
		program.CREATEFRAME: opCreateFrame,
		program.PUSHFRAME:   opPushFrame,
		program.POPFRAME:    opPopFrame,
		program.DEFVAR:      opDefVar,
		program.MOVE:        opMove,

		program.PUSHS: opPushs,
		program.POPS:  opPops,

		program.ADD:  opArith,
		program.SUB:  opArith,
		program.MUL:  opArith,
		program.IDIV: opArith,

		program.LT: opCompare,
		program.GT: opCompare,
		program.EQ: opCompare,

		program.AND: opLogic,
		program.OR:  opLogic,
		program.NOT: opNot,

		program.INT2CHAR: opInt2Char,
		program.STRI2INT: opStri2Int,
		program.CONCAT:   opConcat,
		program.STRLEN:   opStrlen,
		program.GETCHAR:  opGetChar,
		program.SETCHAR:  opSetChar,
		program.TYPE:     opType,

		program.READ:   opRead,
		program.WRITE:  opWrite,
		program.DPRINT: opDprint,

		program.LABEL:     opLabel,
		program.JUMP:      opJump,
		program.JUMPIFEQ:  opJumpIfEq,
		program.JUMPIFNEQ: opJumpIfNeq,
		program.CALL:      opCall,
		program.RETURN:    opReturn,
		program.EXIT:      opExit,

		program.BREAK: opBreak,
	}
}

// exitSignal is the internal control-flow error EXIT raises to unwind Run
// with a user-chosen process exit code; it is never reported as a fault.
type exitSignal struct{ code int }

func (e *exitSignal) Error() string { return "exit" }

// Run executes the program from its minimum order until ip runs past the
// maximum order (normal termination, exit code 0), an EXIT instruction
// fires (exit code 0-49), or a runtime fault occurs (the documented
// *ipperr.Error exit code). ctx is checked between instructions only —
// spec.md §5 guarantees no instruction itself suspends or is cancellable.
func (m *Machine) Run(ctx context.Context) (int, error) {
	m.ip = m.prog.MinOrder
	for m.ip >= m.prog.MinOrder && m.ip <= m.prog.MaxOrder {
		select {
		case <-ctx.Done():
			return 99, ipperr.New(99, "execution cancelled: %s", ctx.Err())
		default:
		}

		ins, ok := m.prog.At(m.ip)
		if !ok {
			return 99, ipperr.New(99, "no instruction at order %d", m.ip)
		}
		m.steps++

		handler, ok := handlers[ins.Op]
		if !ok {
			return 99, ipperr.New(99, "no handler registered for opcode %s", ins.Op)
		}

		m.jumped = false
		if err := handler(m, ins); err != nil {
			if sig, ok := err.(*exitSignal); ok {
				return sig.code, nil
			}
			return ipperr.CodeOf(err), err
		}

		if m.jumped {
			m.ip = m.nextIP
		} else {
			m.ip++
		}
	}
	return 0, nil
}
