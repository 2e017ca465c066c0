package model

// SectionKind is the @OBJECT discriminator of a SECTION element.
type SectionKind string

// SectionECU is a section describing one electronic control unit.
const SectionECU SectionKind = "ECU"

// Section is a top-level grouping within a report's result body.
type Section interface {
	Title() string
	Kind() SectionKind
	// Measurements returns the section's measurements in document order.
	// The returned slice must not be modified.
	Measurements() []Measurement
}

// ECUSection groups the measurements read from one control unit.
type ECUSection struct {
	title        string
	measurements []Measurement
}

func (s *ECUSection) Title() string { return s.title }

func (s *ECUSection) Kind() SectionKind { return SectionECU }

func (s *ECUSection) Measurements() []Measurement { return s.measurements }
