package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Undefined is how an absent raw payload is rendered in diff messages.
const Undefined = "<undefined>"

// DumpRecord is one label/value pair of a flattened report.
type DumpRecord struct {
	Path  NodePath // section and measurement titles
	Label string
	Text  string
}

// DiffKind classifies a DiffRecord.
type DiffKind int

// Diff record kinds.
const (
	MeasurementMissing DiffKind = iota
	SubMeasurementsMissing
	ValuesMissing
	ValueMissing
	ValueChanged
)

var diffKindNames = [...]string{
	MeasurementMissing:     "measurement missing",
	SubMeasurementsMissing: "sub-measurements missing",
	ValuesMissing:          "values missing",
	ValueMissing:           "value missing",
	ValueChanged:           "value changed",
}

func (k DiffKind) String() string {
	if k < 0 || int(k) >= len(diffKindNames) {
		return fmt.Sprintf("DiffKind(%d)", int(k))
	}

	return diffKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k DiffKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(diffKindNames) {
		return nil, errors.Errorf("unknown diff kind %d", int(k))
	}

	return []byte(diffKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DiffKind) UnmarshalText(text []byte) error {
	for kind, name := range diffKindNames {
		if name == string(text) {
			*k = DiffKind(kind)
			return nil
		}
	}

	return errors.Errorf("unknown diff kind %q", text)
}

// Side names which of the two compared documents lacks something.
type Side string

const (
	FirstDocument  Side = "first"
	SecondDocument Side = "second"
)

// DiffRecord is a single discrepancy between two reports.
type DiffRecord struct {
	Path    NodePath `yaml:"path,flow"`
	Kind    DiffKind `yaml:"kind"`
	Missing Side     `yaml:"missing,omitempty"` // document lacking the node; empty for ValueChanged
	Message string   `yaml:"message"`
	Old     *string  `yaml:"old,omitempty"` // raw payloads, set for ValueChanged
	New     *string  `yaml:"new,omitempty"`
}

// DiffResult is everything a comparison found.
type DiffResult struct {
	Records         []DiffRecord `yaml:"records"`
	MissingInSecond []string     `yaml:"missing_in_second,omitempty"` // section titles of the first document absent from the second
	MissingInFirst  []string     `yaml:"missing_in_first,omitempty"`
}

// Empty reports whether the documents were found identical.
func (r DiffResult) Empty() bool {
	return len(r.Records) == 0 && len(r.MissingInSecond) == 0 && len(r.MissingInFirst) == 0
}

// DiffConfig selects which measurement kinds take part in a comparison.
type DiffConfig struct {
	IncludeCoding         bool
	IncludeMistakes       bool
	IncludeIdentification bool
	IncludeValues         bool
	IncludeExtendedErrors bool
}

// DefaultDiffConfig compares coding only.
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{IncludeCoding: true}
}

// AllDiffConfig compares every measurement kind.
func AllDiffConfig() DiffConfig {
	return DiffConfig{
		IncludeCoding:         true,
		IncludeMistakes:       true,
		IncludeIdentification: true,
		IncludeValues:         true,
		IncludeExtendedErrors: true,
	}
}

// Includes reports whether measurements of kind take part in the comparison.
func (c DiffConfig) Includes(kind MeasurementKind) bool {
	switch kind {
	case KindCoding:
		return c.IncludeCoding
	case KindMistake:
		return c.IncludeMistakes
	case KindIdentification:
		return c.IncludeIdentification
	case KindMeasuredValues:
		return c.IncludeValues
	case KindExtendedErrorMemory:
		return c.IncludeExtendedErrors
	}

	return false
}

// ChangeMessage formats a payload change.
func ChangeMessage(before, after *string) string {
	return fmt.Sprintf("'%s' -> '%s'", derefPayload(before), derefPayload(after))
}

func derefPayload(p *string) string {
	if p == nil {
		return Undefined
	}

	return *p
}
