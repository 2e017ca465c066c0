package model

import (
	"github.com/pkg/errors"
)

// Discriminator tables. A new document kind has to be added here deliberately;
// anything else fails with an UnimplementedVariantError.
var (
	sectionDiscriminators = map[string]SectionKind{
		"ECU": SectionECU,
	}

	measurementDiscriminators = map[string]MeasurementKind{
		"Codierung":                  KindCoding,
		"Identifikation":             KindIdentification,
		"Fehler":                     KindMistake,
		"Messwerte":                  KindMeasuredValues,
		"Erweiterter Fehlerspeicher": KindExtendedErrorMemory,
	}

	valueDiscriminators = map[string]ValueFormat{
		"NUM":   FormatNumeric,
		"ALPHA": FormatAlpha,
	}
)

// CommonSection is the generic projection of a SECTION element.
type CommonSection struct {
	Object       string        `val:"@OBJECT"`
	Title        string        `val:"TITLE"`
	Measurements []Measurement `val:"MEAS"`
}

// CommonMeasurement is the generic projection of a MEAS element. Nested measurements are
// already resolved when the projection is built.
type CommonMeasurement struct {
	Object       string        `val:"@OBJECT"`
	Title        string        `val:"TITLE"`
	Values       []Value       `val:"VALUE"`
	Measurements []Measurement `val:"MEAS"`
}

// CommonValue is the generic projection of a VALUE element.
type CommonValue struct {
	Format string  `val:"@FORMAT"`
	Text   string  `val:"@TEXT"`
	Unit   *string `val:"@UNIT"`
	Label  string  `val:"@LABEL"`
	Value  *string `val:"$text"`
}

// LookupSectionKind maps a SECTION @OBJECT discriminator to its kind.
func LookupSectionKind(discriminator string) (SectionKind, error) {
	kind, ok := sectionDiscriminators[discriminator]
	if !ok {
		return "", &UnimplementedVariantError{Entity: "Section", Discriminator: discriminator}
	}

	return kind, nil
}

// LookupMeasurementKind maps a MEAS @OBJECT discriminator to its kind.
func LookupMeasurementKind(discriminator string) (MeasurementKind, error) {
	kind, ok := measurementDiscriminators[discriminator]
	if !ok {
		return "", &UnimplementedVariantError{Entity: "Measurement", Discriminator: discriminator}
	}

	return kind, nil
}

// LookupValueFormat maps a VALUE @FORMAT discriminator to its format.
func LookupValueFormat(discriminator string) (ValueFormat, error) {
	format, ok := valueDiscriminators[discriminator]
	if !ok {
		return "", &UnimplementedVariantError{Entity: "Value", Discriminator: discriminator}
	}

	return format, nil
}

// ResolveSection turns a generic section projection into its closed variant.
func ResolveSection(c CommonSection) (Section, error) {
	kind, err := LookupSectionKind(c.Object)
	if err != nil {
		return nil, err
	}

	if c.Title == "" {
		return nil, errors.Wrap(ErrEmptyTitle, "section")
	}

	switch kind {
	case SectionECU:
		return &ECUSection{title: c.Title, measurements: c.Measurements}, nil
	}

	return nil, &UnimplementedVariantError{Entity: "Section", Discriminator: c.Object}
}

// ResolveMeasurement turns a generic measurement projection into its closed variant.
// Nested measurements under anything but a Mistake violate the variant's shape.
func ResolveMeasurement(c CommonMeasurement) (Measurement, error) {
	kind, err := LookupMeasurementKind(c.Object)
	if err != nil {
		return nil, err
	}

	if c.Title == "" {
		return nil, errors.Wrapf(ErrEmptyTitle, "%s measurement", kind)
	}

	if kind != KindMistake && c.Measurements != nil {
		return nil, &InvariantError{Kind: kind, Title: c.Title, Violation: ErrNestedMeasurements}
	}

	base := measurementBase{title: c.Title, values: c.Values}

	switch kind {
	case KindCoding:
		return &Coding{base}, nil
	case KindIdentification:
		return &Identification{base}, nil
	case KindMeasuredValues:
		return &MeasuredValues{base}, nil
	case KindExtendedErrorMemory:
		return &ExtendedErrorMemory{base}, nil
	case KindMistake:
		return &Mistake{measurementBase: base, measurements: c.Measurements}, nil
	}

	return nil, &UnimplementedVariantError{Entity: "Measurement", Discriminator: c.Object}
}

// ResolveValue turns a generic value projection into its closed variant.
func ResolveValue(c CommonValue) (Value, error) {
	format, err := LookupValueFormat(c.Format)
	if err != nil {
		return nil, err
	}

	if c.Label == "" {
		return nil, errors.Wrapf(ErrEmptyTitle, "%s value label", format)
	}

	switch format {
	case FormatNumeric:
		v := &NumericValue{text: c.Text, unit: c.Unit, label: c.Label}
		if c.Value != nil {
			v.value = *c.Value
		}

		return v, nil
	case FormatAlpha:
		if c.Unit != nil {
			return nil, errors.Wrapf(ErrUnknownField, "@UNIT on %s value %q", format, c.Label)
		}

		v := &AlphaValue{text: c.Text, label: c.Label}
		if c.Value != nil && *c.Value != "" {
			payload := *c.Value
			v.value = &payload
		}

		return v, nil
	}

	return nil, &UnimplementedVariantError{Entity: "Value", Discriminator: c.Format}
}
