package maincmd

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/mna/mainer"

	"ippcode22/internal/ippio"
	"ippcode22/lang/ipperr"
	"ippcode22/lang/machine"
	"ippcode22/lang/validate"
	"ippcode22/lang/xmlsrc"
)

// Run wires the XML loader, validator and machine together: it opens the
// chosen source and input streams, validates the program, executes it, and
// returns the process exit code the caller should use.
func Run(opts options, stdio mainer.Stdio) (int, error) {
	xmlReader, closeXML, err := sourceReader(opts, stdio.Stdin)
	if err != nil {
		return ipperr.CodeOf(err), err
	}
	if closeXML != nil {
		defer closeXML()
	}

	doc, err := xmlsrc.Load(xmlReader)
	if err != nil {
		return ipperr.CodeOf(err), err
	}

	prog, err := validate.Validate(doc)
	if err != nil {
		return ipperr.CodeOf(err), err
	}

	input, closeInput, err := inputBuffer(opts, stdio.Stdin)
	if err != nil {
		return ipperr.CodeOf(err), err
	}
	if closeInput != nil {
		defer closeInput()
	}

	m := machine.New(prog, stdio.Stdin, stdio.Stdout, stdio.Stderr, input)
	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	return m.Run(ctx)
}

// sourceReader resolves the XML source per spec.md §6: the named --source
// file if given, else standard input.
func sourceReader(opts options, stdin io.Reader) (io.Reader, func(), error) {
	if !opts.hasSource {
		return stdin, nil, nil
	}
	f, err := os.Open(opts.source)
	if err != nil {
		return nil, nil, ipperr.New(11, "failed to open source file %q: %s", opts.source, err)
	}
	return f, func() { f.Close() }, nil
}

// inputBuffer resolves the READ input source: if --input names a file, its
// lines are pre-read in full (matching interpret.py's read_list); otherwise
// READ pulls lines from standard input as the program runs.
func inputBuffer(opts options, stdin io.Reader) (*ippio.LineBuffer, func(), error) {
	if !opts.hasInput {
		return ippio.NewLineBuffer(bufio.NewScanner(stdin)), nil, nil
	}
	f, err := os.Open(opts.input)
	if err != nil {
		return nil, nil, ipperr.New(11, "failed to open input file %q: %s", opts.input, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r\n"))
	}
	return ippio.NewPreloadedLineBuffer(lines, nil), nil, nil
}
