package model

// ValueFormat is the @FORMAT discriminator of a VALUE element.
type ValueFormat string

const (
	// FormatNumeric marks a numeric value with an optional unit.
	FormatNumeric ValueFormat = "NUM"
	// FormatAlpha marks an alphanumeric value whose raw payload may be absent.
	FormatAlpha ValueFormat = "ALPHA"
)

// Value is a single labeled datum attached to a measurement.
type Value interface {
	// Label is the matching key of the value within its measurement.
	Label() string
	// Text is the human readable description shown by the tester.
	Text() string
	// Unit returns the unit of numeric values.
	Unit() (string, bool)
	// Value returns the raw payload.
	Value() (string, bool)
	Format() ValueFormat
}

// NumericValue always carries a payload.
type NumericValue struct {
	text  string
	unit  *string
	label string
	value string
}

func (v *NumericValue) Label() string { return v.label }

func (v *NumericValue) Text() string { return v.text }

func (v *NumericValue) Unit() (string, bool) {
	if v.unit == nil {
		return "", false
	}

	return *v.unit, true
}

func (v *NumericValue) Value() (string, bool) { return v.value, true }

func (v *NumericValue) Format() ValueFormat { return FormatNumeric }

// AlphaValue may be present in the report with an empty payload.
type AlphaValue struct {
	text  string
	label string
	value *string
}

func (v *AlphaValue) Label() string { return v.label }

func (v *AlphaValue) Text() string { return v.text }

func (v *AlphaValue) Unit() (string, bool) { return "", false }

func (v *AlphaValue) Value() (string, bool) {
	if v.value == nil {
		return "", false
	}

	return *v.value, true
}

func (v *AlphaValue) Format() ValueFormat { return FormatAlpha }
