package machine

import (
	"math/big"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/lex"
	"ippcode22/lang/program"
)

// Tag is the closed set of dynamic types a Value may carry. It is never
// inspected via host runtime reflection; every type check in this package
// is an explicit switch over Tag.
type Tag uint8

const (
	TagNil Tag = iota
	TagBool
	TagInt
	TagString
)

func (t Tag) String() string {
	switch t {
	case TagNil:
		return "nil"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagString:
		return "string"
	default:
		return "illegal tag"
	}
}

// Value is a tagged union of the four IPPcode22 runtime types. The zero
// Value is the nil singleton. Values are logically immutable once
// constructed: every mutation (MOVE, SETCHAR, arithmetic results, ...)
// produces a fresh Value rather than editing one in place, so a Value may
// be freely shared without aliasing concerns — Clone exists only so a slot
// can own an independent big.Int.
type Value struct {
	Tag Tag
	B   bool
	I   *big.Int
	S   string
}

// Nil is the nil singleton value.
var Nil = Value{Tag: TagNil}

// NewBool constructs a bool Value.
func NewBool(b bool) Value { return Value{Tag: TagBool, B: b} }

// NewString constructs a string Value.
func NewString(s string) Value { return Value{Tag: TagString, S: s} }

// NewInt constructs an int Value, taking ownership of i.
func NewInt(i *big.Int) Value { return Value{Tag: TagInt, I: i} }

// Clone returns a deep, independent copy of v so later mutation of one does
// not alias the other. Every variable read (and so MOVE and PUSHS of a
// variable) goes through Clone; POPS stores the popped Value as is, since
// the stack no longer holds it.
func (v Value) Clone() Value {
	if v.Tag == TagInt && v.I != nil {
		return Value{Tag: TagInt, I: new(big.Int).Set(v.I)}
	}
	return v
}

// WriteString renders v the way WRITE/DPRINT do: integer decimal,
// lower-case true/false, verbatim string, empty for nil.
func (v Value) WriteString() string {
	switch v.Tag {
	case TagNil:
		return ""
	case TagBool:
		if v.B {
			return "true"
		}
		return "false"
	case TagInt:
		return v.I.String()
	case TagString:
		return v.S
	default:
		return ""
	}
}

// ValueFromLiteral builds a Value from an already lexically-validated
// program.Operand literal (KindIntLit, KindBoolLit, KindStringLit or
// KindNilLit). It never re-checks syntax, only converts.
func ValueFromLiteral(op program.Operand) (Value, error) {
	switch op.Kind {
	case program.KindIntLit:
		neg := len(op.Text) > 0 && op.Text[0] == '-'
		i, ok := new(big.Int).SetString(stripSign(op.Text), lex.IntBase(op.Text))
		if !ok {
			return Value{}, ipperr.New(99, "failed to parse validated integer literal %q", op.Text)
		}
		if neg {
			i.Neg(i)
		}
		return NewInt(i), nil
	case program.KindBoolLit:
		return NewBool(op.Text == "true"), nil
	case program.KindStringLit:
		return NewString(op.Text), nil
	case program.KindNilLit:
		return Nil, nil
	default:
		return Value{}, ipperr.New(99, "ValueFromLiteral called with non-literal operand kind %d", op.Kind)
	}
}

// stripSign removes a leading '+'/'-' and, for non-decimal bases, the base
// prefix, so the remainder can be handed to big.Int.SetString with an
// explicit base.
func stripSign(s string) string {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B' || s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return s
}
