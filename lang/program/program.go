package program

import (
	"github.com/dolthub/swiss"
)

// OperandKind distinguishes how an Operand's Text should be interpreted.
type OperandKind uint8

const (
	// KindVar marks a variable reference (Text is "FF@name").
	KindVar OperandKind = iota
	// KindLabel marks a label reference (Text is the label name).
	KindLabel
	// KindType marks a type-name literal (Text is "int"/"string"/"bool").
	KindType
	// KindIntLit, KindBoolLit, KindStringLit and KindNilLit mark symb
	// literals of the matching tag.
	KindIntLit
	KindBoolLit
	KindStringLit
	KindNilLit
)

// Operand is one normalized, already-lexically-validated argument. Text is
// the decoded value for string literals, the raw lexeme otherwise.
type Operand struct {
	Kind OperandKind
	Text string
}

// Instruction is one normalized program entry: an upper-cased opcode and
// its ordered operands.
type Instruction struct {
	Order int
	Op    Opcode
	Args  []Operand
}

// Program is the immutable artifact the validator builds: a dense,
// order-indexed instruction table plus the label index used to resolve
// jump and call targets.
type Program struct {
	MinOrder, MaxOrder int
	byOrder            map[int]Instruction
	labels             *swiss.Map[string, int]
}

// New returns an empty Program ready to be filled in by the validator.
func New() *Program {
	return &Program{
		byOrder: make(map[int]Instruction),
		labels:  swiss.NewMap[string, int](8),
	}
}

// Put inserts an instruction at its order. The caller is responsible for
// order uniqueness and contiguity checks (the validator's job).
func (p *Program) Put(ins Instruction) {
	p.byOrder[ins.Order] = ins
}

// At returns the instruction at the given order.
func (p *Program) At(order int) (Instruction, bool) {
	ins, ok := p.byOrder[order]
	return ins, ok
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int { return len(p.byOrder) }

// DefineLabel registers name at order, returning false if name is already
// registered (the caller should treat this as a duplicate-label error).
func (p *Program) DefineLabel(name string, order int) bool {
	if _, ok := p.labels.Get(name); ok {
		return false
	}
	p.labels.Put(name, order)
	return true
}

// ResolveLabel returns the order of the instruction defining name.
func (p *Program) ResolveLabel(name string) (int, bool) {
	return p.labels.Get(name)
}
