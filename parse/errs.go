package parse

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax   = errors.New("syntax error")
	ErrNoHeader = fmt.Errorf("%w: missing serpent header", ErrSyntax)
	ErrTooLong  = fmt.Errorf("%w: input too long", ErrSyntax)
	ErrEncoding = fmt.Errorf("%w: input is not utf-8", ErrSyntax)
)

// SyntaxError is returned by Parse for any input which is not a valid
// serpent expression. Offset, Line and Col locate the failure in runes;
// Left and Right hold up to 20 runes of input on either side of it.
type SyntaxError struct {
	Msg    string
	Offset int
	Line   int
	Col    int
	Left   string
	Right  string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (at position %d; '...%s>>><<<%s...')", e.Msg, e.Offset, e.Left, e.Right)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrSyntax}, args...)...)
}

func wrapErr(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSyntax, msg, err)
}
