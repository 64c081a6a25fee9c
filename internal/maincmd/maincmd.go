// Package maincmd implements the interpreter's command-line surface: option
// scanning, source/input stream selection, and wiring the xmlsrc/validate/
// machine pipeline together. It keeps the teacher's mainer-based Stdio and
// ExitCode plumbing (cmd/ippcode22/main.go, internal/maincmd/maincmd.go in
// the original) but replaces mainer's struct-tag flag parser: spec.md §6
// calls for literal prefix matching of whole option tokens, not abbreviated
// flag names, so options are hand-scanned the way interpret.py's main()
// does it.
package maincmd

import (
	"fmt"
	"strings"

	"github.com/mna/mainer"
)

const usage = `This is an IPPcode22 interpreter
Run with:
  ippcode22 [args]
Args:
  --source=<file>  the XML representation of the program to run
  --input=<file>   input for READ instructions; arbitrary text
  --help           print this and exit, overrides all other args
At least one of --source or --input must be present.
If only one is present, the other is read from standard input.
`

// options is the result of scanning the process argument list.
type options struct {
	help      bool
	source    string
	hasSource bool
	input     string
	hasInput  bool
}

// parseArgs scans args the same way interpret.py's main() does: each token
// is checked against a literal prefix, last occurrence wins, and --help
// short-circuits everything else.
func parseArgs(args []string) options {
	var o options
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "--help"):
			o.help = true
		case strings.HasPrefix(a, "--source="):
			o.source = strings.TrimPrefix(a, "--source=")
			o.hasSource = true
		case strings.HasPrefix(a, "--input="):
			o.input = strings.TrimPrefix(a, "--input=")
			o.hasInput = true
		}
	}
	return o
}

// Main is the process entry point: args is the full os.Args (including the
// program name at index 0), mirroring mainer's convention.
func Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	opts := parseArgs(rest)

	if opts.help {
		fmt.Fprint(stdio.Stdout, usage)
		return mainer.Success
	}

	if !opts.hasSource && !opts.hasInput {
		fmt.Fprintln(stdio.Stderr, "Error: at least one of --input or --source must be specified")
		return mainer.ExitCode(10)
	}

	code, err := Run(opts, stdio)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "Error: %s\n", err)
	}
	return mainer.ExitCode(code)
}
