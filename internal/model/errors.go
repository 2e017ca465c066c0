package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel decode failures. Every failure surfaced while decoding a report wraps one of these.
var (
	ErrInvalidTimestamp     = errors.New("invalid timestamp")
	ErrInvalidTimezone      = errors.New("invalid timezone")
	ErrUnimplementedVariant = errors.New("variant not implemented")
	ErrNestedMeasurements   = errors.New("unexpected nested measurements")
	ErrUnknownField         = errors.New("unknown field")
	ErrMissingField         = errors.New("missing field")
	ErrDuplicateField       = errors.New("duplicate field")
	ErrEmptyTitle           = errors.New("empty title")
)

// UnimplementedVariantError reports a discriminator outside the known variant set.
type UnimplementedVariantError struct {
	Entity        string // Section, Measurement or Value
	Discriminator string
}

func (e *UnimplementedVariantError) Error() string {
	return fmt.Sprintf("%s '%s' not implemented", strings.ToLower(e.Entity), e.Discriminator)
}

func (e *UnimplementedVariantError) Unwrap() error {
	return ErrUnimplementedVariant
}

// InvariantError reports a structurally valid element that violates a variant's shape.
type InvariantError struct {
	Kind      MeasurementKind
	Title     string
	Violation error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s measurement %q: %v", e.Kind, e.Title, e.Violation)
}

func (e *InvariantError) Unwrap() error {
	return e.Violation
}

// DecodeError carries the structural path of the element that failed to decode,
// e.g. RESULT.SECTION[3].MEAS[0].@OBJECT.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
