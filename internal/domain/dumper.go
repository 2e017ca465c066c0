package domain

import (
	m "github.com/mouse-blink/valdiff/internal/model"
)

// Dumper flattens a report into path-qualified label/value records.
type Dumper interface {
	Dump(doc *m.Document) []m.DumpRecord
}

type dumper struct{}

// NewDumper creates a new Dumper instance.
func NewDumper() Dumper {
	return &dumper{}
}

// Dump walks the document depth first. Sub-measurements are listed before the values
// of the measurement that owns them.
func (d *dumper) Dump(doc *m.Document) []m.DumpRecord {
	records := []m.DumpRecord{}

	for _, section := range doc.Sections() {
		records = dumpMeasurements(records, m.NodePath{section.Title()}, section.Measurements())
	}

	return records
}

func dumpMeasurements(records []m.DumpRecord, path m.NodePath, measurements []m.Measurement) []m.DumpRecord {
	for _, measurement := range measurements {
		measurementPath := path.Append(measurement.Title())
		records = dumpMeasurements(records, measurementPath, measurement.SubMeasurements())

		for _, value := range measurement.Values() {
			records = append(records, m.DumpRecord{
				Path:  measurementPath,
				Label: value.Label(),
				Text:  value.Text(),
			})
		}
	}

	return records
}
