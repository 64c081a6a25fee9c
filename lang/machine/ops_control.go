package machine

import (
	"ippcode22/lang/ipperr"
	"ippcode22/lang/program"
)

func opMove(m *Machine, ins program.Instruction) error {
	v, err := m.Resolve(ins.Args[1])
	if err != nil {
		return err
	}
	return m.Store(ins.Args[0], v)
}

func opPushs(m *Machine, ins program.Instruction) error {
	v, err := m.Resolve(ins.Args[0])
	if err != nil {
		return err
	}
	m.data.push(v)
	return nil
}

func opPops(m *Machine, ins program.Instruction) error {
	v, ok := m.data.pop()
	if !ok {
		return ipperr.New(56, "POPS from empty data stack at order %d", m.ip)
	}
	return m.Store(ins.Args[0], v)
}

func opLabel(_ *Machine, _ program.Instruction) error { return nil }

func (m *Machine) jumpTo(label string) error {
	target, ok := m.prog.ResolveLabel(label)
	if !ok {
		return ipperr.New(99, "jump to unresolved label %s at order %d", label, m.ip)
	}
	m.jumped = true
	m.nextIP = target
	return nil
}

func opJump(m *Machine, ins program.Instruction) error {
	return m.jumpTo(ins.Args[0].Text)
}

// eqlOperands resolves the two symb operands of JUMPIFEQ/JUMPIFNEQ and
// reports whether they compare equal, applying the same tag rules as EQ:
// same tag required, except either side may be nil.
func (m *Machine) eqlOperands(ins program.Instruction) (bool, error) {
	x, err := m.Resolve(ins.Args[1])
	if err != nil {
		return false, err
	}
	y, err := m.Resolve(ins.Args[2])
	if err != nil {
		return false, err
	}
	if x.Tag != y.Tag && x.Tag != TagNil && y.Tag != TagNil {
		return false, ipperr.New(53, "JUMPIFEQ/JUMPIFNEQ operand type mismatch (%s vs %s) at order %d", x.Tag, y.Tag, m.ip)
	}
	return valuesEqual(x, y), nil
}

func opJumpIfEq(m *Machine, ins program.Instruction) error {
	eq, err := m.eqlOperands(ins)
	if err != nil {
		return err
	}
	if eq {
		return m.jumpTo(ins.Args[0].Text)
	}
	return nil
}

func opJumpIfNeq(m *Machine, ins program.Instruction) error {
	eq, err := m.eqlOperands(ins)
	if err != nil {
		return err
	}
	if !eq {
		return m.jumpTo(ins.Args[0].Text)
	}
	return nil
}

func opCall(m *Machine, ins program.Instruction) error {
	target, ok := m.prog.ResolveLabel(ins.Args[0].Text)
	if !ok {
		return ipperr.New(99, "call to unresolved label %s at order %d", ins.Args[0].Text, m.ip)
	}
	m.call.push(m.ip)
	m.jumped = true
	m.nextIP = target
	return nil
}

func opReturn(m *Machine, _ program.Instruction) error {
	order, ok := m.call.pop()
	if !ok {
		return ipperr.New(56, "RETURN with empty call stack at order %d", m.ip)
	}
	m.jumped = true
	m.nextIP = order + 1
	return nil
}

func opExit(m *Machine, ins program.Instruction) error {
	v, err := m.Resolve(ins.Args[0])
	if err != nil {
		return err
	}
	if v.Tag != TagInt {
		return ipperr.New(57, "EXIT with non-int operand (%s) at order %d", v.Tag, m.ip)
	}
	if !v.I.IsInt64() {
		return ipperr.New(57, "EXIT code out of range at order %d", m.ip)
	}
	code := v.I.Int64()
	if code < 0 || code > 49 {
		return ipperr.New(57, "EXIT code out of range [0,49]: %d at order %d", code, m.ip)
	}
	return &exitSignal{code: int(code)}
}
