package xmlsrc

import (
	"strconv"
	"strings"

	"ippcode22/lang/ipperr"
)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// DecodeString turns a raw string-literal argument's text into its decoded
// value: first an idempotent XML entity decode (encoding/xml will usually
// have already done this, but the decoder must tolerate being handed
// already-decoded text), then a left-to-right backslash-escape decode.
// Every backslash must introduce exactly three decimal digits; anything
// else is a structural error.
func DecodeString(raw string) (string, error) {
	unescapedEntities := entityReplacer.Replace(raw)

	var sb strings.Builder
	for i := 0; i < len(unescapedEntities); i++ {
		c := unescapedEntities[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+3 >= len(unescapedEntities) || !isDigit3(unescapedEntities[i+1:i+4]) {
			return "", ipperr.New(32, "invalid escape sequence in string literal: %q", raw)
		}
		n, err := strconv.Atoi(unescapedEntities[i+1 : i+4])
		if err != nil {
			return "", ipperr.New(32, "invalid escape sequence in string literal: %q", raw)
		}
		sb.WriteRune(rune(n))
		i += 3
	}
	return sb.String(), nil
}

func isDigit3(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
