// Package xmlsrc loads an IPPcode22 program from its XML representation and
// decodes the string-literal surfaces it carries. It knows nothing about
// opcodes, operand classes, or execution; it hands the validator a flat,
// order-agnostic-for-args view of the document.
package xmlsrc

import (
	"encoding/xml"
	"io"
	"strings"

	"ippcode22/lang/ipperr"
)

// RawArg is one arg1/arg2/arg3 child of an instruction, keyed by its
// argument position (1, 2 or 3) rather than by the order it appeared in —
// the XML schema allows arg2 to precede arg1, and position is taken from the
// tag name, never from document order.
type RawArg struct {
	Type    string
	Text    string
	Present bool
}

// RawInstruction is one <instruction> element, its three argument slots
// indexed by position (Args[0] is arg1, and so on).
type RawInstruction struct {
	Order  string
	Opcode string
	Args   [3]RawArg
}

// Document is the root <program> element's children, in document order.
type Document struct {
	Instructions []RawInstruction
}

// Load parses an XML document from r into a Document. It does not validate
// opcodes, argument counts, or operand lexical form — that is the
// validator's job. It does perform XML well-formedness and the structural
// checks that only the loader can make (root element, instruction tag
// names, well-known arg tag names).
func Load(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	root, err := nextStartElement(dec)
	if err != nil {
		return nil, ipperr.New(31, "failed to read XML document: %s", err)
	}
	if root == nil {
		return nil, ipperr.New(31, "empty XML document")
	}
	if !strings.EqualFold(root.Name.Local, "program") {
		return nil, ipperr.New(31, "unexpected root element: %s", root.Name.Local)
	}

	doc := &Document{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ipperr.New(31, "malformed XML: %s", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !strings.EqualFold(t.Name.Local, "instruction") {
				return nil, ipperr.New(32, "unexpected element at instruction level: %s", t.Name.Local)
			}
			ins, err := decodeInstruction(dec, t)
			if err != nil {
				return nil, err
			}
			doc.Instructions = append(doc.Instructions, ins)
		case xml.EndElement:
			if strings.EqualFold(t.Name.Local, root.Name.Local) {
				return doc, nil
			}
		}
	}
	return doc, nil
}

func nextStartElement(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			cp := se.Copy()
			return &cp, nil
		}
	}
}

func decodeInstruction(dec *xml.Decoder, start xml.StartElement) (RawInstruction, error) {
	ins := RawInstruction{
		Order:  attr(start, "order"),
		Opcode: attr(start, "opcode"),
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return ins, ipperr.New(31, "malformed XML inside instruction: %s", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			pos, ok := argPosition(t.Name.Local)
			if !ok {
				return ins, ipperr.New(32, "unexpected argument element: %s", t.Name.Local)
			}
			text, err := charData(dec, t)
			if err != nil {
				return ins, err
			}
			ins.Args[pos-1] = RawArg{Type: attr(t, "type"), Text: text, Present: true}
		case xml.EndElement:
			if strings.EqualFold(t.Name.Local, "instruction") {
				return ins, nil
			}
		}
	}
}

// charData reads and concatenates all character data inside start until its
// matching end element, decoding nested entity references along the way (as
// encoding/xml already does for xml.CharData tokens).
func charData(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", ipperr.New(31, "malformed XML inside %s: %s", start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return sb.String(), nil
			}
			depth--
		}
	}
}

func argPosition(tag string) (int, bool) {
	switch strings.ToLower(tag) {
	case "arg1":
		return 1, true
	case "arg2":
		return 2, true
	case "arg3":
		return 3, true
	default:
		return 0, false
	}
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value
		}
	}
	return ""
}
