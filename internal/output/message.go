package output

import (
	"fmt"
	"os"
)

// Warn prints a warning message to stderr with a warning prefix. Unlike
// the rest of this package's formatters, which write through a command's
// own writer for testability, Warn always targets stderr directly: it is
// for conditions the spec requires to be surfaced loudly (e.g. a k=1
// encode) regardless of the chosen output format.
func Warn(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, "⚠️  "+msg)
}

// Warnf prints a formatted warning message to stderr.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}
