package machine

import (
	"math/big"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/program"
)

// intOperand resolves operand and requires it to carry an int, raising exit
// 53 otherwise.
func (m *Machine) intOperand(op program.Operand) (*big.Int, error) {
	v, err := m.Resolve(op)
	if err != nil {
		return nil, err
	}
	if v.Tag != TagInt {
		return nil, ipperr.New(53, "expected int operand, got %s at order %d", v.Tag, m.ip)
	}
	return v.I, nil
}

func opArith(m *Machine, ins program.Instruction) error {
	x, err := m.intOperand(ins.Args[1])
	if err != nil {
		return err
	}
	y, err := m.intOperand(ins.Args[2])
	if err != nil {
		return err
	}

	result := new(big.Int)
	switch ins.Op {
	case program.ADD:
		result.Add(x, y)
	case program.SUB:
		result.Sub(x, y)
	case program.MUL:
		result.Mul(x, y)
	case program.IDIV:
		if y.Sign() == 0 {
			return ipperr.New(57, "division by zero at order %d", m.ip)
		}
		result.Quo(x, y) // truncates toward zero, per spec.md §4.7
	default:
		return ipperr.New(99, "opArith called with non-arithmetic opcode %s", ins.Op)
	}
	return m.Store(ins.Args[0], NewInt(result))
}
