package gremlingo

import (
	"fmt"
	"os"
)

// trace writes a single diagnostic line to stderr when Options.Trace is
// set. It is intentionally minimal: this module has no server connection
// to instrument and therefore no need for structured, leveled logging of
// its own — Trace exists so a caller debugging a traversal's bytecode
// construction can see each step as it is added.
func trace(opts Options, format string, args ...interface{}) {
	if !opts.Trace {
		return
	}
	fmt.Fprintf(os.Stderr, "gremlingo: "+format+"\n", args...)
}
