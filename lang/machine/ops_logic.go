package machine

import (
	"ippcode22/lang/ipperr"
	"ippcode22/lang/program"
)

func (m *Machine) boolOperand(op program.Operand) (bool, error) {
	v, err := m.Resolve(op)
	if err != nil {
		return false, err
	}
	if v.Tag != TagBool {
		return false, ipperr.New(53, "expected bool operand, got %s at order %d", v.Tag, m.ip)
	}
	return v.B, nil
}

func opLogic(m *Machine, ins program.Instruction) error {
	x, err := m.boolOperand(ins.Args[1])
	if err != nil {
		return err
	}
	y, err := m.boolOperand(ins.Args[2])
	if err != nil {
		return err
	}
	var result bool
	switch ins.Op {
	case program.AND:
		result = x && y
	case program.OR:
		result = x || y
	default:
		return ipperr.New(99, "opLogic called with non-logic opcode %s", ins.Op)
	}
	return m.Store(ins.Args[0], NewBool(result))
}

func opNot(m *Machine, ins program.Instruction) error {
	x, err := m.boolOperand(ins.Args[1])
	if err != nil {
		return err
	}
	return m.Store(ins.Args[0], NewBool(!x))
}
