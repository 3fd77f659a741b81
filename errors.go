package sash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// CycleError reports a cycle in a form strategy's attachment graph.
// The layout pass for the container aborts; no child bounds are assigned.
type CycleError struct {
	// Container is the container whose attachment graph is cyclic.
	Container *Container
	// Cycle holds the children forming the minimal cycle, in dependency
	// order: each child's attachments target the next, and the last
	// targets the first.
	Cycle []Node
	// Indexes are the positions of the cycle's children within the
	// container's child list.
	Indexes []int
}

func (e *CycleError) Error() string {
	idx := make([]string, len(e.Indexes))
	for i, v := range e.Indexes {
		idx[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("sash: attachment cycle among children at indexes [%s]", strings.Join(idx, " "))
}

// ReentrantError reports that ComputeSize or Layout was invoked on a
// container already mid-pass. This indicates a caller bug, typically a
// hint mutation triggering layout from inside a layout callback.
type ReentrantError struct {
	// Op is the operation that detected the reentrancy.
	Op string
}

func (e *ReentrantError) Error() string {
	return fmt.Sprintf("sash: reentrant %s on container already mid-pass", e.Op)
}

// diag is the optional diagnostic logger. It receives reports of
// recoverable hint problems (spans below 1, negative sizes) that the
// engine clamps and continues past. Nil by default.
var diag *log.Logger

// SetDiagnostics installs a logger for recoverable hint diagnostics.
// Pass nil to silence them. Not safe to call concurrently with layout.
func SetDiagnostics(logger *log.Logger) {
	diag = logger
}

// diagf logs a recoverable hint problem at debug level, if a diagnostic
// logger is installed.
func diagf(format string, args ...any) {
	if diag != nil {
		diag.Debugf(format, args...)
	}
}
