package machine

import "github.com/dolthub/swiss"

// Slot is a declared variable's storage. A nil Value pointer means
// uninitialized (declared by DEFVAR, never written); a non-nil pointer
// means initialized and holds the current Value.
type Slot struct {
	Value *Value
}

// Frame is a mapping from variable name to Slot, backed by the same
// swiss-table map the teacher uses for its first-class Map value, here
// specialized to string keys for variable names.
type Frame struct {
	vars *swiss.Map[string, *Slot]
}

// NewFrame returns a fresh, empty frame.
func NewFrame() *Frame {
	return &Frame{vars: swiss.NewMap[string, *Slot](8)}
}

// Declare adds an uninitialized slot for name, returning false if name is
// already declared in this frame.
func (f *Frame) Declare(name string) bool {
	if _, ok := f.vars.Get(name); ok {
		return false
	}
	f.vars.Put(name, &Slot{})
	return true
}

// Lookup returns the slot declared under name, if any.
func (f *Frame) Lookup(name string) (*Slot, bool) {
	return f.vars.Get(name)
}

// Snapshot copies the frame's current name->slot bindings into a plain Go
// map, for callers (BREAK) that need to enumerate them with
// golang.org/x/exp/maps rather than the swiss-table's own iteration order.
func (f *Frame) Snapshot() map[string]*Slot {
	out := make(map[string]*Slot, f.vars.Count())
	f.vars.Iter(func(k string, v *Slot) bool {
		out[k] = v
		return false
	})
	return out
}

// Registers is the three-frame register set: GF always exists, TF is
// nullable, and LF is the top of the frame stack (nil iff the stack is
// empty).
type Registers struct {
	GF    *Frame
	TF    *Frame
	stack []*Frame // frame stack; stack[len-1], if any, is LF
}

// NewRegisters returns a register set with a fresh, empty GF and no TF or
// LF.
func NewRegisters() *Registers {
	return &Registers{GF: NewFrame()}
}

// LF returns the current local frame, or nil if the frame stack is empty.
func (r *Registers) LF() *Frame {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// CreateFrame unconditionally replaces TF with a fresh, empty frame.
func (r *Registers) CreateFrame() {
	r.TF = NewFrame()
}

// PushFrame moves TF onto the frame stack, making it the new LF, and clears
// TF. It reports false if TF does not exist.
func (r *Registers) PushFrame() bool {
	if r.TF == nil {
		return false
	}
	r.stack = append(r.stack, r.TF)
	r.TF = nil
	return true
}

// PopFrame moves the current LF into TF. It reports false if the frame
// stack is empty.
func (r *Registers) PopFrame() bool {
	if len(r.stack) == 0 {
		return false
	}
	r.TF = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// Frame resolves a two-letter frame tag ("GF", "LF", "TF") to the live
// *Frame, or nil if that register is currently absent.
func (r *Registers) Frame(tag string) *Frame {
	switch tag {
	case "GF":
		return r.GF
	case "LF":
		return r.LF()
	case "TF":
		return r.TF
	default:
		return nil
	}
}
