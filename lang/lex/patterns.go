// Package lex holds the regular expressions that validate the lexical
// surface of every operand kind IPPcode22 allows, mirroring the pat_* table
// of the reference interpreter one-for-one.
package lex

import "regexp"

var (
	identBody = `[0-9A-Za-z_\-$&%*!?]`
	identHead = `[A-Za-z_\-$&%*!?]`

	variablePattern = regexp.MustCompile(`^[GLTglt][Ff]@` + identHead + identBody + `*$`)
	labelPattern    = regexp.MustCompile(`^` + identHead + identBody + `*$`)
	typePattern     = regexp.MustCompile(`^(int|string|bool)$`)
	booleanPattern  = regexp.MustCompile(`^(true|false)$`)
	nilPattern      = regexp.MustCompile(`^nil$`)
	integerPattern  = regexp.MustCompile(`^[+-]?((0[bB][01]*)|(0[xX][0-9a-fA-F]*)|(0[0-7]*)|([1-9][0-9]*))$`)
	stringPattern   = regexp.MustCompile(`^[^\x00-\x20#]*$`)

	// escapePattern finds every backslash-introduced sequence in a raw string
	// literal; a match whose captured group is not exactly 3 decimal digits is
	// an invalid escape.
	escapePattern = regexp.MustCompile(`\\([0-9]{3})?`)
)

// IsVariable reports whether s is a well-formed FRAME@name operand.
func IsVariable(s string) bool { return variablePattern.MatchString(s) }

// IsLabel reports whether s is a well-formed label/identifier.
func IsLabel(s string) bool { return labelPattern.MatchString(s) }

// IsType reports whether s is one of the three declarable types.
func IsType(s string) bool { return typePattern.MatchString(s) }

// IsBoolean reports whether s is "true" or "false".
func IsBoolean(s string) bool { return booleanPattern.MatchString(s) }

// IsNil reports whether s is exactly "nil".
func IsNil(s string) bool { return nilPattern.MatchString(s) }

// IsInteger reports whether s is a well-formed signed integer literal in any
// of the four supported bases.
func IsInteger(s string) bool { return integerPattern.MatchString(s) }

// IsString reports whether s is a well-formed string-literal surface: no
// control characters, no bare '#', and every backslash starts a 3-digit
// decimal escape.
func IsString(s string) bool {
	if !stringPattern.MatchString(s) {
		return false
	}
	for _, m := range escapePattern.FindAllStringSubmatch(s, -1) {
		if m[1] == "" {
			return false
		}
	}
	return true
}

// IntBase returns the numeric base implied by the literal's prefix, after
// skipping an optional leading sign. A bare "0" is octal.
func IntBase(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 || s[0] != '0' {
		return 10
	}
	if len(s) == 1 {
		return 8
	}
	switch s[1] {
	case 'b', 'B':
		return 2
	case 'x', 'X':
		return 16
	default:
		return 8
	}
}
