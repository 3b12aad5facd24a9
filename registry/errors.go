package registry

import (
	"errors"
	"fmt"
)

var ErrConversion = errors.New("class conversion error")

// ConversionError reports a failure of a class converter or class hook.
type ConversionError struct {
	Class   string
	Message string
	Err     error
}

func (e *ConversionError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Class != "" {
		return fmt.Sprintf("%s for %q: %s", ErrConversion, e.Class, msg)
	}
	return fmt.Sprintf("%s: %s", ErrConversion, msg)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
