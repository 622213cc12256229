package statics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpan reports a non-positive beam length
	ErrInvalidSpan = errors.New("invalid span")

	// ErrInvalidLoadGeometry reports a load outside the beam or with a non-positive magnitude
	ErrInvalidLoadGeometry = errors.New("invalid load geometry")
)

// ValidationError describes an input that must be corrected before solving
type ValidationError struct {
	Kind  error  // ErrInvalidSpan or ErrInvalidLoadGeometry
	Field string // offending input, e.g. "position"
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%v: %s %s", e.Kind, e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func spanError(msg string) error {
	return &ValidationError{Kind: ErrInvalidSpan, Field: "length", Msg: msg}
}

func geometryError(field, msg string) error {
	return &ValidationError{Kind: ErrInvalidLoadGeometry, Field: field, Msg: msg}
}
