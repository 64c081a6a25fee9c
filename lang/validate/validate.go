// Package validate turns a loaded xmlsrc.Document into a program.Program,
// performing every static check spec.md §4.4 requires: order well-formedness,
// opcode spelling, argument counts and per-position lexical validity, label
// uniqueness, and jump/call target resolution. The first defect found ends
// validation immediately — there is no "collect every error" mode.
package validate

import (
	"sort"
	"strconv"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/lex"
	"ippcode22/lang/program"
	"ippcode22/lang/xmlsrc"
)

// Validate checks doc and, on success, returns the dense program table and
// its label index bundled as a *program.Program.
func Validate(doc *xmlsrc.Document) (*program.Program, error) {
	prog := program.New()

	var orders []int
	seen := make(map[int]bool)
	pendingTargets := make(map[string]bool)

	for _, raw := range doc.Instructions {
		order, err := checkOrder(raw.Order)
		if err != nil {
			return nil, err
		}
		if seen[order] {
			return nil, ipperr.New(32, "duplicate instruction order: %d", order)
		}
		seen[order] = true
		orders = append(orders, order)

		op, ok := program.ParseOpcode(raw.Opcode)
		if !ok {
			return nil, ipperr.New(32, "invalid opcode at order %d: %q", order, raw.Opcode)
		}

		sig, ok := signatures[op]
		if !ok {
			return nil, ipperr.New(99, "no argument signature registered for opcode %s", op)
		}

		args, err := checkArgs(op, order, sig, raw.Args)
		if err != nil {
			return nil, err
		}

		switch op {
		case program.LABEL:
			if !prog.DefineLabel(args[0].Text, order) {
				return nil, ipperr.New(52, "label redefinition: %s at order %d", args[0].Text, order)
			}
		case program.CALL, program.JUMP, program.JUMPIFEQ, program.JUMPIFNEQ:
			pendingTargets[args[0].Text] = true
		}

		prog.Put(program.Instruction{Order: order, Op: op, Args: args})
	}

	if len(orders) == 0 {
		return nil, ipperr.New(32, "program has no instructions")
	}

	if err := checkContinuity(orders); err != nil {
		return nil, err
	}
	for name := range pendingTargets {
		if _, ok := prog.ResolveLabel(name); !ok {
			return nil, ipperr.New(52, "jump or call to undefined label: %s", name)
		}
	}

	sort.Ints(orders)
	prog.MinOrder = orders[0]
	prog.MaxOrder = orders[len(orders)-1]

	return prog, nil
}

func checkOrder(raw string) (int, error) {
	order, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ipperr.New(32, "missing or invalid instruction order: %q", raw)
	}
	if order < 0 {
		return 0, ipperr.New(32, "negative instruction order: %d", order)
	}
	return order, nil
}

func checkContinuity(orders []int) error {
	sorted := append([]int(nil), orders...)
	sort.Ints(sorted)
	min, max := sorted[0], sorted[len(sorted)-1]
	for i := min; i <= max; i++ {
		idx := sort.SearchInts(sorted, i)
		if idx == len(sorted) || sorted[idx] != i {
			return ipperr.New(32, "instruction order discontinuity at %d", i)
		}
	}
	return nil
}

func checkArgs(op program.Opcode, order int, sig signature, raw [3]xmlsrc.RawArg) ([]program.Operand, error) {
	count := 0
	for _, a := range raw {
		if a.Present {
			count++
		}
	}
	if count != len(sig) {
		return nil, ipperr.New(32, "incorrect number of arguments for %s at order %d (got %d, expected %d)", op, order, count, len(sig))
	}

	args := make([]program.Operand, len(sig))
	for i, kind := range sig {
		operand, err := checkArg(op, order, kind, raw[i])
		if err != nil {
			return nil, err
		}
		args[i] = operand
	}
	return args, nil
}

func checkArg(op program.Opcode, order int, kind slotKind, raw xmlsrc.RawArg) (program.Operand, error) {
	switch kind {
	case slotVar:
		if raw.Type != "var" {
			return program.Operand{}, ipperr.New(32, "arg type %q of %s at order %d does not match expected: var", raw.Type, op, order)
		}
		if !lex.IsVariable(raw.Text) {
			return program.Operand{}, ipperr.New(32, "arg %q of %s at order %d does not match the variable pattern", raw.Text, op, order)
		}
		return program.Operand{Kind: program.KindVar, Text: raw.Text}, nil

	case slotLabel:
		if raw.Type != "label" {
			return program.Operand{}, ipperr.New(32, "arg type %q of %s at order %d does not match expected: label", raw.Type, op, order)
		}
		if !lex.IsLabel(raw.Text) {
			return program.Operand{}, ipperr.New(32, "arg %q of %s at order %d does not match the label pattern", raw.Text, op, order)
		}
		return program.Operand{Kind: program.KindLabel, Text: raw.Text}, nil

	case slotType:
		if raw.Type != "type" {
			return program.Operand{}, ipperr.New(32, "arg type %q of %s at order %d does not match expected: type", raw.Type, op, order)
		}
		if !lex.IsType(raw.Text) {
			return program.Operand{}, ipperr.New(32, "arg %q of %s at order %d does not match the type pattern", raw.Text, op, order)
		}
		return program.Operand{Kind: program.KindType, Text: raw.Text}, nil

	case slotSymb:
		return checkSymb(op, order, raw)

	default:
		return program.Operand{}, ipperr.New(99, "unhandled slot kind for %s at order %d", op, order)
	}
}

func checkSymb(op program.Opcode, order int, raw xmlsrc.RawArg) (program.Operand, error) {
	switch raw.Type {
	case "var":
		if !lex.IsVariable(raw.Text) {
			return program.Operand{}, ipperr.New(32, "arg %q of %s at order %d does not match the variable pattern", raw.Text, op, order)
		}
		return program.Operand{Kind: program.KindVar, Text: raw.Text}, nil
	case "int":
		if !lex.IsInteger(raw.Text) {
			return program.Operand{}, ipperr.New(32, "arg %q of %s at order %d does not match the integer pattern", raw.Text, op, order)
		}
		return program.Operand{Kind: program.KindIntLit, Text: raw.Text}, nil
	case "bool":
		if !lex.IsBoolean(raw.Text) {
			return program.Operand{}, ipperr.New(32, "arg %q of %s at order %d does not match the boolean pattern", raw.Text, op, order)
		}
		return program.Operand{Kind: program.KindBoolLit, Text: raw.Text}, nil
	case "nil":
		if !lex.IsNil(raw.Text) {
			return program.Operand{}, ipperr.New(32, "arg %q of %s at order %d does not match the nil pattern", raw.Text, op, order)
		}
		return program.Operand{Kind: program.KindNilLit, Text: raw.Text}, nil
	case "string":
		if raw.Text != "" && !lex.IsString(raw.Text) {
			return program.Operand{}, ipperr.New(32, "arg %q of %s at order %d does not match the string pattern", raw.Text, op, order)
		}
		decoded, err := xmlsrc.DecodeString(raw.Text)
		if err != nil {
			return program.Operand{}, err
		}
		return program.Operand{Kind: program.KindStringLit, Text: decoded}, nil
	default:
		return program.Operand{}, ipperr.New(32, "arg type %q of %s at order %d is not a valid symb type", raw.Type, op, order)
	}
}
