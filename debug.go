package lui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[lui] warning: tree depth %d exceeds %d (widget %q)\n",
			depth, debugMaxTreeDepth, w.name)
	}
}

// debugCheckChildCount warns on stderr if a widget has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[lui] warning: widget %q has %d children (threshold %d)\n",
			w.name, len(w.children), debugMaxChildCount)
	}
}

// DumpTree writes an indented outline of w's subtree: one line per widget
// with its id, name, bounds and flags.
func DumpTree(out io.Writer, w *Widget) {
	dumpTree(out, w, 0)
}

func dumpTree(out io.Writer, w *Widget, depth int) {
	var flags []string
	if !w.visible {
		flags = append(flags, "hidden")
	}
	if w.opaque {
		flags = append(flags, "opaque")
	}
	if !w.interactive {
		flags = append(flags, "passthrough")
	}
	if w.alpha < 1 {
		flags = append(flags, "alpha="+formatFloat(w.alpha))
	}
	if w.view != nil {
		flags = append(flags, fmt.Sprintf("window=%d", w.view.window.ID()))
	}
	name := w.name
	if name == "" {
		name = "-"
	}
	line := fmt.Sprintf("%s#%d %s [%s]", strings.Repeat("  ", depth), w.id, name, w.bounds)
	if len(flags) > 0 {
		line += " " + strings.Join(flags, " ")
	}
	_, _ = fmt.Fprintln(out, line)
	for _, c := range w.children {
		dumpTree(out, c, depth+1)
	}
}
