package machine

import (
	"math/big"
	"unicode/utf8"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/program"
)

func (m *Machine) stringOperand(op program.Operand) (string, error) {
	v, err := m.Resolve(op)
	if err != nil {
		return "", err
	}
	if v.Tag != TagString {
		return "", ipperr.New(53, "expected string operand, got %s at order %d", v.Tag, m.ip)
	}
	return v.S, nil
}

func opConcat(m *Machine, ins program.Instruction) error {
	x, err := m.stringOperand(ins.Args[1])
	if err != nil {
		return err
	}
	y, err := m.stringOperand(ins.Args[2])
	if err != nil {
		return err
	}
	return m.Store(ins.Args[0], NewString(x+y))
}

func opStrlen(m *Machine, ins program.Instruction) error {
	s, err := m.stringOperand(ins.Args[1])
	if err != nil {
		return err
	}
	return m.Store(ins.Args[0], NewInt(big.NewInt(int64(utf8.RuneCountInString(s)))))
}

func opGetChar(m *Machine, ins program.Instruction) error {
	s, err := m.stringOperand(ins.Args[1])
	if err != nil {
		return err
	}
	idx, err := m.intOperand(ins.Args[2])
	if err != nil {
		return err
	}
	runes := []rune(s)
	i, ok := smallIndex(idx, len(runes))
	if !ok {
		return ipperr.New(58, "GETCHAR index out of range at order %d", m.ip)
	}
	return m.Store(ins.Args[0], NewString(string(runes[i])))
}

func opSetChar(m *Machine, ins program.Instruction) error {
	base, err := m.Resolve(ins.Args[0])
	if err != nil {
		return err
	}
	if base.Tag != TagString {
		return ipperr.New(53, "SETCHAR target does not hold a string at order %d", m.ip)
	}
	idx, err := m.intOperand(ins.Args[1])
	if err != nil {
		return err
	}
	repl, err := m.stringOperand(ins.Args[2])
	if err != nil {
		return err
	}
	if repl == "" {
		return ipperr.New(58, "SETCHAR with empty replacement string at order %d", m.ip)
	}

	runes := []rune(base.S)
	i, ok := smallIndex(idx, len(runes))
	if !ok {
		return ipperr.New(58, "SETCHAR index out of range at order %d", m.ip)
	}
	runes[i] = []rune(repl)[0]
	return m.Store(ins.Args[0], NewString(string(runes)))
}

func opInt2Char(m *Machine, ins program.Instruction) error {
	i, err := m.intOperand(ins.Args[1])
	if err != nil {
		return err
	}
	if !i.IsInt64() {
		return ipperr.New(58, "INT2CHAR code point out of range at order %d", m.ip)
	}
	r := rune(i.Int64())
	if !utf8.ValidRune(r) {
		return ipperr.New(58, "INT2CHAR code point out of range at order %d", m.ip)
	}
	return m.Store(ins.Args[0], NewString(string(r)))
}

func opStri2Int(m *Machine, ins program.Instruction) error {
	s, err := m.stringOperand(ins.Args[1])
	if err != nil {
		return err
	}
	idx, err := m.intOperand(ins.Args[2])
	if err != nil {
		return err
	}
	runes := []rune(s)
	i, ok := smallIndex(idx, len(runes))
	if !ok {
		return ipperr.New(58, "STRI2INT index out of range at order %d", m.ip)
	}
	return m.Store(ins.Args[0], NewInt(big.NewInt(int64(runes[i]))))
}

func opType(m *Machine, ins program.Instruction) error {
	op := ins.Args[1]
	var tagName string
	if op.Kind == program.KindVar {
		slot, err := m.slot(op.Text)
		if err != nil {
			return err
		}
		if slot.Value == nil {
			tagName = ""
		} else {
			tagName = slot.Value.Tag.String()
		}
	} else {
		v, err := ValueFromLiteral(op)
		if err != nil {
			return err
		}
		tagName = v.Tag.String()
	}
	return m.Store(ins.Args[0], NewString(tagName))
}

// smallIndex converts a validated, possibly arbitrary-precision index into
// an in-range int, reporting false for anything negative or >= n.
func smallIndex(idx *big.Int, n int) (int, bool) {
	if idx.Sign() < 0 || !idx.IsInt64() {
		return 0, false
	}
	i := idx.Int64()
	if i >= int64(n) {
		return 0, false
	}
	return int(i), true
}
