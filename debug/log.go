package debug

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/serpent-format/go-serpent/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug line to stderr. *ir.Node arguments are rendered as
// serpent literals.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = x.Literal()
		case []*ir.Node:
			parts := make([]string, len(x))
			for j, y := range x {
				parts[j] = y.Literal()
			}
			args[i] = "[" + strings.Join(parts, ", ") + "]"
		}
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(out, msg, args...)
}
