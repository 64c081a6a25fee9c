package machine

import (
	"ippcode22/lang/ipperr"
	"ippcode22/lang/program"
)

// valuesEqual reports whether x and y are equal. It assumes the caller has
// already ensured the tags are compatible (same tag, or either is nil) —
// the only combination spec.md §4.7 allows to reach EQ/JUMPIFEQ/JUMPIFNEQ.
func valuesEqual(x, y Value) bool {
	if x.Tag == TagNil || y.Tag == TagNil {
		return x.Tag == y.Tag
	}
	switch x.Tag {
	case TagBool:
		return x.B == y.B
	case TagInt:
		return x.I.Cmp(y.I) == 0
	case TagString:
		return x.S == y.S
	default:
		return false
	}
}

// compareOrdered returns -1/0/1 for x compared to y. Both must share a tag
// and neither may be nil — the caller enforces that before calling.
func compareOrdered(x, y Value) int {
	switch x.Tag {
	case TagBool:
		if x.B == y.B {
			return 0
		}
		if !x.B && y.B {
			return -1
		}
		return 1
	case TagInt:
		return x.I.Cmp(y.I)
	case TagString:
		if x.S == y.S {
			return 0
		}
		if x.S < y.S {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func opCompare(m *Machine, ins program.Instruction) error {
	x, err := m.Resolve(ins.Args[1])
	if err != nil {
		return err
	}
	y, err := m.Resolve(ins.Args[2])
	if err != nil {
		return err
	}

	if ins.Op == program.EQ {
		if x.Tag != y.Tag && x.Tag != TagNil && y.Tag != TagNil {
			return ipperr.New(53, "EQ operand type mismatch (%s vs %s) at order %d", x.Tag, y.Tag, m.ip)
		}
		return m.Store(ins.Args[0], NewBool(valuesEqual(x, y)))
	}

	// LT/GT: nil is never allowed, and tags must match.
	if x.Tag == TagNil || y.Tag == TagNil {
		return ipperr.New(53, "%s does not allow a nil operand at order %d", ins.Op, m.ip)
	}
	if x.Tag != y.Tag {
		return ipperr.New(53, "%s operand type mismatch (%s vs %s) at order %d", ins.Op, x.Tag, y.Tag, m.ip)
	}

	cmp := compareOrdered(x, y)
	var result bool
	switch ins.Op {
	case program.LT:
		result = cmp < 0
	case program.GT:
		result = cmp > 0
	default:
		return ipperr.New(99, "opCompare called with non-comparison opcode %s", ins.Op)
	}
	return m.Store(ins.Args[0], NewBool(result))
}
