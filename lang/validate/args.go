package validate

import "ippcode22/lang/program"

// slotKind is the kind of operand a given argument position accepts.
type slotKind uint8

const (
	slotVar slotKind = iota
	slotLabel
	slotSymb
	slotType
)

// signature lists, in order, the slot kind expected at each argument
// position for one opcode.
type signature []slotKind

// signatures is the single table driving both argument-count and
// per-position type checks, keyed by program.Opcode so it can never drift
// from the opcode enum itself.
var signatures = map[program.Opcode]signature{
	program.CREATEFRAME: {},
	program.PUSHFRAME:   {},
	program.POPFRAME:    {},
	program.RETURN:      {},
	program.BREAK:       {},

	program.DEFVAR: {slotVar},
	program.POPS:   {slotVar},

	program.CALL:  {slotLabel},
	program.LABEL: {slotLabel},
	program.JUMP:  {slotLabel},

	program.PUSHS:  {slotSymb},
	program.WRITE:  {slotSymb},
	program.EXIT:   {slotSymb},
	program.DPRINT: {slotSymb},

	program.MOVE:     {slotVar, slotSymb},
	program.INT2CHAR: {slotVar, slotSymb},
	program.STRLEN:   {slotVar, slotSymb},
	program.TYPE:     {slotVar, slotSymb},
	program.NOT:      {slotVar, slotSymb},

	program.READ: {slotVar, slotType},

	program.ADD:      {slotVar, slotSymb, slotSymb},
	program.SUB:      {slotVar, slotSymb, slotSymb},
	program.MUL:      {slotVar, slotSymb, slotSymb},
	program.IDIV:     {slotVar, slotSymb, slotSymb},
	program.LT:       {slotVar, slotSymb, slotSymb},
	program.GT:       {slotVar, slotSymb, slotSymb},
	program.EQ:       {slotVar, slotSymb, slotSymb},
	program.AND:      {slotVar, slotSymb, slotSymb},
	program.OR:       {slotVar, slotSymb, slotSymb},
	program.STRI2INT: {slotVar, slotSymb, slotSymb},
	program.CONCAT:   {slotVar, slotSymb, slotSymb},
	program.GETCHAR:  {slotVar, slotSymb, slotSymb},
	program.SETCHAR:  {slotVar, slotSymb, slotSymb},

	program.JUMPIFEQ:  {slotLabel, slotSymb, slotSymb},
	program.JUMPIFNEQ: {slotLabel, slotSymb, slotSymb},
}
