package layout

import (
	"errors"
	"fmt"
)

var (
	ErrBindingMismatch = errors.New("layout: binding does not match layout")
	ErrTrailingData    = errors.New("layout: trailing data")
)

// FieldError reports the field whose codec failed. Nested struct failures
// carry a dotted field path.
type FieldError struct {
	Layout string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("layout: %s.%s: %v", e.Layout, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func wrapField(l *Layout, f Field, err error) error {
	var inner *FieldError
	if f.Kind == Struct && errors.As(err, &inner) {
		return &FieldError{Layout: l.Name, Field: f.Name + "." + inner.Field, Err: inner.Err}
	}
	return &FieldError{Layout: l.Name, Field: f.Name, Err: err}
}
