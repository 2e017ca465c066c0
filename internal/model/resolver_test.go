package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestLookups(t *testing.T) {
	kind, err := LookupMeasurementKind("Erweiterter Fehlerspeicher")
	require.NoError(t, err)
	assert.Equal(t, KindExtendedErrorMemory, kind)

	section, err := LookupSectionKind("ECU")
	require.NoError(t, err)
	assert.Equal(t, SectionECU, section)

	format, err := LookupValueFormat("ALPHA")
	require.NoError(t, err)
	assert.Equal(t, FormatAlpha, format)

	_, err = LookupMeasurementKind("Unbekannt")

	var unimplemented *UnimplementedVariantError
	require.True(t, errors.As(err, &unimplemented))
	assert.Equal(t, "Measurement", unimplemented.Entity)
	assert.Equal(t, "Unbekannt", unimplemented.Discriminator)
	assert.ErrorIs(t, err, ErrUnimplementedVariant)
	assert.Equal(t, "measurement 'Unbekannt' not implemented", err.Error())

	_, err = LookupSectionKind("TCU")
	assert.ErrorIs(t, err, ErrUnimplementedVariant)

	_, err = LookupValueFormat("BIN")
	assert.ErrorIs(t, err, ErrUnimplementedVariant)
}

func TestResolveMeasurement_Variants(t *testing.T) {
	tests := []struct {
		object string
		kind   MeasurementKind
	}{
		{"Codierung", KindCoding},
		{"Identifikation", KindIdentification},
		{"Fehler", KindMistake},
		{"Messwerte", KindMeasuredValues},
		{"Erweiterter Fehlerspeicher", KindExtendedErrorMemory},
	}

	for _, tt := range tests {
		t.Run(tt.object, func(t *testing.T) {
			values := []Value{&NumericValue{label: "A", value: "1"}}

			measurement, err := ResolveMeasurement(CommonMeasurement{Object: tt.object, Title: "T", Values: values})
			require.NoError(t, err)
			assert.Equal(t, tt.kind, measurement.Kind())
			assert.Equal(t, "T", measurement.Title())
			assert.Equal(t, values, measurement.Values())
			assert.Nil(t, measurement.SubMeasurements())
		})
	}
}

func TestResolveMeasurement_OnlyMistakeNests(t *testing.T) {
	child := &Identification{measurementBase{title: "Event"}}

	mistake, err := ResolveMeasurement(CommonMeasurement{
		Object:       "Fehler",
		Title:        "Faults",
		Measurements: []Measurement{child},
	})
	require.NoError(t, err)
	assert.Equal(t, []Measurement{child}, mistake.SubMeasurements())

	for _, object := range []string{"Codierung", "Identifikation", "Messwerte", "Erweiterter Fehlerspeicher"} {
		_, err := ResolveMeasurement(CommonMeasurement{
			Object:       object,
			Title:        "Nested",
			Measurements: []Measurement{child},
		})

		var invariant *InvariantError
		require.True(t, errors.As(err, &invariant), object)
		assert.Equal(t, "Nested", invariant.Title)
		assert.ErrorIs(t, err, ErrNestedMeasurements)
	}
}

func TestResolveMeasurement_RejectsEmptyTitle(t *testing.T) {
	_, err := ResolveMeasurement(CommonMeasurement{Object: "Codierung"})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestResolveSection(t *testing.T) {
	section, err := ResolveSection(CommonSection{Object: "ECU", Title: "Gateway"})
	require.NoError(t, err)
	assert.Equal(t, "Gateway", section.Title())
	assert.Equal(t, SectionECU, section.Kind())
	assert.Empty(t, section.Measurements())

	_, err = ResolveSection(CommonSection{Object: "ECU"})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = ResolveSection(CommonSection{Object: "Vehicle", Title: "Gateway"})
	assert.ErrorIs(t, err, ErrUnimplementedVariant)
}

func TestResolveValue_Numeric(t *testing.T) {
	value, err := ResolveValue(CommonValue{Format: "NUM", Text: "12.6 V", Unit: strPtr("V"), Label: "Voltage", Value: strPtr("12.6")})
	require.NoError(t, err)

	assert.Equal(t, FormatNumeric, value.Format())
	assert.Equal(t, "Voltage", value.Label())
	assert.Equal(t, "12.6 V", value.Text())

	unit, ok := value.Unit()
	assert.True(t, ok)
	assert.Equal(t, "V", unit)

	payload, ok := value.Value()
	assert.True(t, ok)
	assert.Equal(t, "12.6", payload)

	empty, err := ResolveValue(CommonValue{Format: "NUM", Label: "Counter"})
	require.NoError(t, err)

	payload, ok = empty.Value()
	assert.True(t, ok, "numeric values always carry a payload")
	assert.Empty(t, payload)

	_, ok = empty.Unit()
	assert.False(t, ok)
}

func TestResolveValue_Alpha(t *testing.T) {
	value, err := ResolveValue(CommonValue{Format: "ALPHA", Text: "Scanner code", Label: "X", Value: strPtr("205 ABC")})
	require.NoError(t, err)

	payload, ok := value.Value()
	assert.True(t, ok)
	assert.Equal(t, "205 ABC", payload)

	_, ok = value.Unit()
	assert.False(t, ok)

	absent, err := ResolveValue(CommonValue{Format: "ALPHA", Text: "Scanner code", Label: "X"})
	require.NoError(t, err)

	_, ok = absent.Value()
	assert.False(t, ok)

	_, err = ResolveValue(CommonValue{Format: "ALPHA", Label: "X", Unit: strPtr("V")})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = ResolveValue(CommonValue{Format: "ALPHA"})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestDocumentLookups_FirstMatchWins(t *testing.T) {
	first := &NumericValue{label: "Dup", value: "1"}
	second := &NumericValue{label: "Dup", value: "2"}
	coding := &Coding{measurementBase{title: "Coding", values: []Value{first, second}}}
	event := &Identification{measurementBase{title: "Event"}}
	mistake := &Mistake{measurementBase: measurementBase{title: "Faults"}, measurements: []Measurement{event}}
	gateway := &ECUSection{title: "Gateway", measurements: []Measurement{coding, mistake}}

	doc := &Document{Result: Result{Sections: []Section{gateway, &ECUSection{title: "Gateway"}}}}

	section, ok := doc.SectionByTitle("Gateway")
	require.True(t, ok)
	assert.Same(t, gateway, section)

	_, ok = doc.SectionByTitle("Engine")
	assert.False(t, ok)

	measurement, ok := SectionMeasurementByTitle(section, "Coding")
	require.True(t, ok)
	assert.Same(t, coding, measurement)

	value, ok := MeasurementValueByLabel(measurement, "Dup")
	require.True(t, ok)
	assert.Same(t, first, value)

	_, ok = MeasurementValueByLabel(measurement, "Missing")
	assert.False(t, ok)

	sub, ok := SubMeasurementByTitle(mistake, "Event")
	require.True(t, ok)
	assert.Same(t, event, sub)

	_, ok = SubMeasurementByTitle(coding, "Event")
	assert.False(t, ok)
}
