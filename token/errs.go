package token

import (
	"errors"
)

var (
	ErrEOF          = errors.New("unexpected end of input")
	ErrNoTerminator = errors.New("terminator not found")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrRewind       = errors.New("negative count")
)
