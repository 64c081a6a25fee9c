// Package ippio buffers the optional --input file's lines (or standard
// input, when no --input file is given) for the READ instruction, exactly
// the role interpret.py's read_list plays: a FIFO of trailing-newline-
// stripped lines, consumed one at a time, falling through to the live
// stream once exhausted.
package ippio

import "bufio"

// LineBuffer hands out one line per call to Next, consuming a pre-read list
// first and then pulling more lines from its underlying scanner.
type LineBuffer struct {
	pending []string
	pos     int
	scanner *bufio.Scanner
}

// NewLineBuffer wraps a scanner with no pre-read lines; every READ call
// pulls directly from it.
func NewLineBuffer(scanner *bufio.Scanner) *LineBuffer {
	return &LineBuffer{scanner: scanner}
}

// NewPreloadedLineBuffer wraps a list of lines already read from an
// --input file. Once exhausted, further reads fall through to scanner (nil
// is valid: the --input file is the sole input source in that case, and
// exhaustion simply yields no more lines).
func NewPreloadedLineBuffer(lines []string, scanner *bufio.Scanner) *LineBuffer {
	return &LineBuffer{pending: lines, scanner: scanner}
}

// Next returns the next input line with its trailing newline already
// stripped, and whether one was available at all.
func (b *LineBuffer) Next() (string, bool) {
	if b.pos < len(b.pending) {
		line := b.pending[b.pos]
		b.pos++
		return line, true
	}
	if b.scanner == nil {
		return "", false
	}
	if !b.scanner.Scan() {
		return "", false
	}
	return b.scanner.Text(), true
}
