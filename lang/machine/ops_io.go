package machine

import (
	"fmt"
	"math/big"
	"strings"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/lex"
	"ippcode22/lang/program"
)

func opRead(m *Machine, ins program.Instruction) error {
	declared := ins.Args[1].Text // "int", "string" or "bool" — validated by lang/validate

	line, ok := m.input.Next()
	if !ok {
		return m.Store(ins.Args[0], Nil)
	}

	var v Value
	switch declared {
	case "int":
		if !lex.IsInteger(line) {
			v = Nil
		} else {
			i, ok := new(big.Int).SetString(stripSign(line), lex.IntBase(line))
			if !ok {
				v = Nil
			} else {
				if len(line) > 0 && line[0] == '-' {
					i.Neg(i)
				}
				v = NewInt(i)
			}
		}
	case "bool":
		v = NewBool(strings.EqualFold(line, "true"))
	case "string":
		v = NewString(line)
	default:
		return ipperr.New(99, "READ with unrecognized declared type %q at order %d", declared, m.ip)
	}
	return m.Store(ins.Args[0], v)
}

func opWrite(m *Machine, ins program.Instruction) error {
	v, err := m.Resolve(ins.Args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(m.stdout, v.WriteString())
	return nil
}

func opDprint(m *Machine, ins program.Instruction) error {
	v, err := m.Resolve(ins.Args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(m.stderr, v.WriteString())
	return nil
}
