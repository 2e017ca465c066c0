package domain

import (
	"fmt"

	m "github.com/mouse-blink/valdiff/internal/model"
)

// Differ compares two reports and lists every semantic divergence.
type Differ interface {
	Diff(first, second *m.Document, cfg m.DiffConfig) m.DiffResult
}

type differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() Differ {
	return &differ{}
}

// comparison accumulates records for a single Diff call.
type comparison struct {
	cfg     m.DiffConfig
	records []m.DiffRecord
}

// Diff matches sections, measurements and values by title or label (first match wins).
// The first document is compared against the second for presence and payload; the second
// is then walked against the first for presence only, so content already compared is not
// reported twice.
func (d *differ) Diff(first, second *m.Document, cfg m.DiffConfig) m.DiffResult {
	c := &comparison{cfg: cfg}

	var result m.DiffResult

	for _, section := range first.Sections() {
		other, ok := second.SectionByTitle(section.Title())
		if !ok {
			result.MissingInSecond = append(result.MissingInSecond, section.Title())
			continue
		}

		c.compareMeasurements(m.NodePath{section.Title()}, section.Measurements(), other.Measurements())
	}

	for _, section := range second.Sections() {
		other, ok := first.SectionByTitle(section.Title())
		if !ok {
			result.MissingInFirst = append(result.MissingInFirst, section.Title())
			continue
		}

		c.findMissingMeasurements(m.NodePath{section.Title()}, section.Measurements(), other.Measurements())
	}

	result.Records = c.records

	return result
}

func (c *comparison) compareMeasurements(path m.NodePath, measurements, others []m.Measurement) {
	for _, measurement := range measurements {
		if !c.cfg.Includes(measurement.Kind()) {
			continue
		}

		measurementPath := path.Append(measurement.Title())

		other, ok := m.MeasurementByTitle(others, measurement.Title())
		if !ok {
			c.missing(measurementPath, m.MeasurementMissing, m.SecondDocument)
			continue
		}

		subs, otherSubs := measurement.SubMeasurements(), other.SubMeasurements()

		switch {
		case subs != nil && otherSubs != nil:
			c.compareMeasurements(measurementPath, subs, otherSubs)
		case subs != nil:
			c.missing(measurementPath, m.SubMeasurementsMissing, m.SecondDocument)
		case otherSubs != nil:
			c.missing(measurementPath, m.SubMeasurementsMissing, m.FirstDocument)
		}

		c.compareValues(measurementPath, measurement.Values(), other.Values())
	}
}

func (c *comparison) compareValues(path m.NodePath, values, others []m.Value) {
	if values == nil {
		return
	}

	if others == nil {
		c.missing(path, m.ValuesMissing, m.SecondDocument)
		return
	}

	for _, value := range values {
		valuePath := path.Append(value.Label())

		other, ok := m.ValueByLabel(others, value.Label())
		if !ok {
			c.missing(valuePath, m.ValueMissing, m.SecondDocument)
			continue
		}

		// The raw payload decides, never the display text.
		before, after := payload(value), payload(other)
		if !samePayload(before, after) {
			c.records = append(c.records, m.DiffRecord{
				Path:    valuePath,
				Kind:    m.ValueChanged,
				Message: m.ChangeMessage(before, after),
				Old:     before,
				New:     after,
			})
		}
	}
}

// findMissingMeasurements reports nodes of the second document that the first lacks.
func (c *comparison) findMissingMeasurements(path m.NodePath, measurements, others []m.Measurement) {
	for _, measurement := range measurements {
		if !c.cfg.Includes(measurement.Kind()) {
			continue
		}

		measurementPath := path.Append(measurement.Title())

		other, ok := m.MeasurementByTitle(others, measurement.Title())
		if !ok {
			c.missing(measurementPath, m.MeasurementMissing, m.FirstDocument)
			continue
		}

		if subs, otherSubs := measurement.SubMeasurements(), other.SubMeasurements(); subs != nil && otherSubs != nil {
			c.findMissingMeasurements(measurementPath, subs, otherSubs)
		}

		c.findMissingValues(measurementPath, measurement.Values(), other.Values())
	}
}

func (c *comparison) findMissingValues(path m.NodePath, values, others []m.Value) {
	if values == nil {
		return
	}

	if others == nil {
		c.missing(path, m.ValuesMissing, m.FirstDocument)
		return
	}

	for _, value := range values {
		if _, ok := m.ValueByLabel(others, value.Label()); !ok {
			c.missing(path.Append(value.Label()), m.ValueMissing, m.FirstDocument)
		}
	}
}

func (c *comparison) missing(path m.NodePath, kind m.DiffKind, side m.Side) {
	c.records = append(c.records, m.DiffRecord{
		Path:    path,
		Kind:    kind,
		Missing: side,
		Message: missingMessage(kind, side),
	})
}

func missingMessage(kind m.DiffKind, side m.Side) string {
	var what string

	switch kind {
	case m.MeasurementMissing:
		what = "measurement"
	case m.SubMeasurementsMissing:
		what = "sub-measurements"
	case m.ValuesMissing:
		what = "values"
	default:
		what = "value"
	}

	return fmt.Sprintf("%s not found in %s document", what, side)
}

func payload(v m.Value) *string {
	raw, ok := v.Value()
	if !ok {
		return nil
	}

	return &raw
}

func samePayload(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
