package encode

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrDepthExceeded   = errors.New("object graph nesting too deep")
)

// UnsupportedTypeError reports a value with no serpent form.
type UnsupportedTypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s: %s", ErrUnsupportedType, e.Type, e.Reason)
	}
	return fmt.Sprintf("%s %s", ErrUnsupportedType, e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}
