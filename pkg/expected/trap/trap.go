package trap

import (
	"fmt"
	"os"
)

// Handler is invoked with a diagnostic when a contract is violated.
// Implementations must not return normally.
type Handler func(detail any)

// Default is the process-wide handler used when no per-call handler is given.
// Embedding code may replace it once at startup.
var Default Handler = Halt

// Halt writes the diagnostic to stderr and terminates the process.
func Halt(detail any) {
	fmt.Fprintf(os.Stderr, "expected: contract violation: %v\n", detail)
	os.Exit(2)
}

// Panicking panics with the diagnostic instead of exiting. Tests use it to
// observe that a violation was detected.
func Panicking(detail any) {
	panic(fmt.Sprintf("expected: contract violation: %v", detail))
}

// Unreachable routes a statically-impossible code path through Default.
func Unreachable(msg string) {
	Default("unreachable: " + msg)
}

// Fire dispatches to h, falling back to Default when h is nil.
func Fire(h Handler, detail any) {
	if h == nil {
		h = Default
	}
	h(detail)
}
