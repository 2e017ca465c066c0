package model

// MeasurementKind identifies one of the closed set of measurement variants.
type MeasurementKind string

// Known measurement kinds. The discriminator strings they are decoded from live in
// measurementDiscriminators.
const (
	KindCoding              MeasurementKind = "coding"
	KindIdentification      MeasurementKind = "identification"
	KindMistake             MeasurementKind = "mistake"
	KindMeasuredValues      MeasurementKind = "measured values"
	KindExtendedErrorMemory MeasurementKind = "extended error memory"
)

// MeasurementKinds lists every kind in a stable order.
var MeasurementKinds = []MeasurementKind{
	KindCoding,
	KindIdentification,
	KindMistake,
	KindMeasuredValues,
	KindExtendedErrorMemory,
}

func (k MeasurementKind) String() string {
	return string(k)
}

// Measurement is a titled diagnostic entry. Only Mistake may nest further measurements.
type Measurement interface {
	Title() string
	Kind() MeasurementKind
	// Values returns nil when the measurement carries no VALUE elements.
	// The returned slice must not be modified.
	Values() []Value
	// SubMeasurements returns nil for every kind except a Mistake with children.
	SubMeasurements() []Measurement
}

type measurementBase struct {
	title  string
	values []Value
}

func (m *measurementBase) Title() string { return m.title }

func (m *measurementBase) Values() []Value { return m.values }

// Coding holds control unit coding values (Codierung).
type Coding struct{ measurementBase }

func (*Coding) Kind() MeasurementKind { return KindCoding }

func (*Coding) SubMeasurements() []Measurement { return nil }

// Identification holds control unit identification data (Identifikation).
type Identification struct{ measurementBase }

func (*Identification) Kind() MeasurementKind { return KindIdentification }

func (*Identification) SubMeasurements() []Measurement { return nil }

// MeasuredValues holds live data read from a control unit (Messwerte).
type MeasuredValues struct{ measurementBase }

func (*MeasuredValues) Kind() MeasurementKind { return KindMeasuredValues }

func (*MeasuredValues) SubMeasurements() []Measurement { return nil }

// ExtendedErrorMemory holds extended fault memory entries (Erweiterter Fehlerspeicher).
type ExtendedErrorMemory struct{ measurementBase }

func (*ExtendedErrorMemory) Kind() MeasurementKind { return KindExtendedErrorMemory }

func (*ExtendedErrorMemory) SubMeasurements() []Measurement { return nil }

// Mistake is a fault record (Fehler). It is the only kind that may own children.
type Mistake struct {
	measurementBase
	measurements []Measurement
}

func (*Mistake) Kind() MeasurementKind { return KindMistake }

func (m *Mistake) SubMeasurements() []Measurement { return m.measurements }
