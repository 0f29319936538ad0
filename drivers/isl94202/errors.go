package isl94202

import "errors"

// Sentinel errors (TinyGo-safe; no fmt).
var (
	// ErrOutOfRange is returned when a value, code or address does not fit
	// the field, table or register space it is aimed at.
	ErrOutOfRange = errors.New("isl94202: out of range")
	// ErrInvalidField is returned for inconsistent field definitions, or when
	// a field is used with an operation its kind does not support.
	ErrInvalidField = errors.New("isl94202: invalid field")
)

// FieldError carries the field name alongside one of the sentinels above.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	s := e.Err.Error()
	if e.Field != "" {
		s += ": " + e.Field
	}
	if e.Reason != "" {
		s += ": " + e.Reason
	}
	return s
}

func (e *FieldError) Unwrap() error { return e.Err }

func outOfRange(f Field, reason string) error {
	return &FieldError{Field: f.Name, Reason: reason, Err: ErrOutOfRange}
}

func invalidField(f Field, reason string) error {
	return &FieldError{Field: f.Name, Reason: reason, Err: ErrInvalidField}
}
