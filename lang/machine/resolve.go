package machine

import (
	"strings"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/program"
)

// splitVar splits a validated "FF@name" operand text into its frame tag and
// variable name.
func splitVar(text string) (tag, name string) {
	i := strings.IndexByte(text, '@')
	return strings.ToUpper(text[:i]), text[i+1:]
}

// slot resolves a var operand to its declaring Slot, raising exit 55 for an
// absent frame and 54 for an undeclared name — never 56, which is reserved
// for a declared-but-uninitialized read.
func (m *Machine) slot(text string) (*Slot, error) {
	tag, name := splitVar(text)
	frame := m.regs.Frame(tag)
	if frame == nil {
		return nil, ipperr.New(55, "undefined frame %s at order %d", tag, m.ip)
	}
	slot, ok := frame.Lookup(name)
	if !ok {
		return nil, ipperr.New(54, "undefined variable %s at order %d", text, m.ip)
	}
	return slot, nil
}

// Resolve turns a symb operand (variable or literal) into a concrete,
// independent Value, raising the exact runtime error spec.md §4.5 requires
// for uninitialized (56), undefined-name (54) and undefined-frame (55)
// cases.
func (m *Machine) Resolve(op program.Operand) (Value, error) {
	if op.Kind != program.KindVar {
		return ValueFromLiteral(op)
	}
	slot, err := m.slot(op.Text)
	if err != nil {
		return Value{}, err
	}
	if slot.Value == nil {
		return Value{}, ipperr.New(56, "read of uninitialized variable %s at order %d", op.Text, m.ip)
	}
	return slot.Value.Clone(), nil
}

// Store writes v (already a fresh, owned copy) into the variable operand
// var_, replacing any prior value. It raises the same 54/55 errors as
// Resolve for a missing target; it never raises 56, writing an
// uninitialized slot is always legal.
func (m *Machine) Store(varOp program.Operand, v Value) error {
	slot, err := m.slot(varOp.Text)
	if err != nil {
		return err
	}
	cp := v
	slot.Value = &cp
	return nil
}
