package machine

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/maps"
	"ippcode22/lang/program"
)

// opBreak dumps the full machine state to standard error, for interactive
// debugging of a running program. It never fails.
func opBreak(m *Machine, _ program.Instruction) error {
	fmt.Fprintln(m.stderr, "###### BREAK ######")
	fmt.Fprintf(m.stderr, "ip = %d\n", m.ip)
	fmt.Fprintf(m.stderr, "instructions executed = %d\n", m.steps)
	fmt.Fprintf(m.stderr, "call stack depth = %d\n", m.call.len())
	fmt.Fprintf(m.stderr, "data stack depth = %d\n", m.data.len())

	dumpFrame(m.stderr, "GF", m.regs.GF)
	dumpFrame(m.stderr, "LF", m.regs.LF())
	dumpFrame(m.stderr, "TF", m.regs.TF)
	fmt.Fprintln(m.stderr, "###### end BREAK ######")
	return nil
}

func dumpFrame(w io.Writer, label string, f *Frame) {
	fmt.Fprintf(w, "--- %s ---\n", label)
	if f == nil {
		fmt.Fprintln(w, "  (absent)")
		return
	}
	snapshot := f.Snapshot()
	names := maps.Keys(snapshot)
	sort.Strings(names)
	if len(names) == 0 {
		fmt.Fprintln(w, "  (empty)")
	}
	for _, name := range names {
		slot := snapshot[name]
		if slot.Value == nil {
			fmt.Fprintf(w, "  %s = <uninitialized>\n", name)
			continue
		}
		fmt.Fprintf(w, "  %s = %s (%s)\n", name, slot.Value.WriteString(), slot.Value.Tag)
	}
}
