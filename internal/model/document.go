// Package model defines the typed document model of a vehicle analysis log (VAL).
//
// Struct tags follow a small convention understood by the report decoder:
// "@NAME" is an attribute, "$text" the element text and "NAME" a child element.
// Pointer fields are optional, slice fields collect repeated children.
package model

// Document is one decoded vehicle analysis report.
type Document struct {
	ResultsHeader ResultsHeader `val:"RESULTSHEADER"`
	Result        Result        `val:"RESULT"`
}

// ResultsHeader holds metadata that identifies the vehicle and the workshop.
type ResultsHeader struct {
	Country   Country   `val:"COUNTRY"`
	CarDealer CarDealer `val:"CARDEALER"`
	Vehicle   Vehicle   `val:"VEHICLE"`
}

// Country names the regulation and language the report was written for.
type Country struct {
	Regulation string `val:"REGULATION"`
	Language   string `val:"LANGUAGE"`
}

// CarDealer identifies the workshop that ran the test.
type CarDealer struct {
	Name       string `val:"NAME"`
	Company    string `val:"COMPANY"`
	Address    string `val:"ADDRESS"`
	Zip        string `val:"ZIP"`
	City       string `val:"CITY"`
	Tel        string `val:"TEL"`
	DealerNo   string `val:"DEALERNO"`
	Order      string `val:"ORDER"`
	WarrantyNo string `val:"WARRANTYNO"`
}

// Vehicle groups the identity and data of the tested vehicle.
type Vehicle struct {
	Ident VehicleIdentity `val:"IDENT"`
	Data  VehicleData     `val:"DATA"`
}

// VehicleIdentity holds the VIN and registration.
type VehicleIdentity struct {
	VIN          string `val:"VIN"`
	Registration string `val:"REGISTRATION"`
}

// VehicleData holds model codes and readings such as the odometer.
type VehicleData struct {
	Odometer       UnitString `val:"ODOMETER"`
	OperatingTime  UnitString `val:"OPERATINGTIME"`
	OrderType      string     `val:"ORDERTYPE"`
	Model          *string    `val:"MODEL"`
	ModelType      string     `val:"MODELTYPE"`
	EngineType     string     `val:"ENGINETYPE"`
	CountryCode    string     `val:"COUNTRYCODE"`
	GearboxType    string     `val:"GEARBOXTYPE"`
	OnboardVoltage UnitString `val:"ONBOARDVOLTAGE"`
}

// Result is the body of the report: the test header and the ordered sections.
type Result struct {
	Object   string    `val:"@OBJECT"`
	Method   string    `val:"@METHOD"`
	Title    string    `val:"TITLE"`
	Header   Header    `val:"HEADER"`
	Sections []Section `val:"SECTION"`
}

// Header describes when and with which equipment the test ran.
type Header struct {
	StartTest    Timestamp `val:"START_TEST"`
	EndTest      Timestamp `val:"END_TEST"`
	Timezone     Timezone  `val:"TIMEZONE"`
	ProtocolType string    `val:"PROTOKOLLTYPE"`
	Equipment    Equipment `val:"EQUIPMENT"`
}

// Equipment describes the diagnostic tester.
type Equipment struct {
	Type           string `val:"@TYPE"`
	Title          string `val:"TITLE"`
	Manufacturer   string `val:"MANUFACTURER"`
	Model          string `val:"MODEL"`
	SerialNo       string `val:"SERIAL_NO"`
	Firmware       string `val:"FIRMWARE"`
	Version        string `val:"VERSION"`
	PT2GVersion    string `val:"PT2GVERSION"`
	BRPDX          string `val:"BR_PDX"`
	PDUAPI         string `val:"PDU_API"`
	SamDiaXVersion string `val:"SAMDIAX_VERSION"`
	System         string `val:"SYSTEM"`
	Java           string `val:"JAVA"`
	Mode           string `val:"MODE"`
}

// Sections returns the result sections in document order.
func (d *Document) Sections() []Section {
	return d.Result.Sections
}

// SectionByTitle returns the first section with the given title.
func (d *Document) SectionByTitle(title string) (Section, bool) {
	for _, s := range d.Result.Sections {
		if s.Title() == title {
			return s, true
		}
	}

	return nil, false
}

// MeasurementByTitle returns the first measurement in list with the given title.
func MeasurementByTitle(list []Measurement, title string) (Measurement, bool) {
	for _, m := range list {
		if m.Title() == title {
			return m, true
		}
	}

	return nil, false
}

// ValueByLabel returns the first value in list with the given label.
func ValueByLabel(list []Value, label string) (Value, bool) {
	for _, v := range list {
		if v.Label() == label {
			return v, true
		}
	}

	return nil, false
}

// SectionMeasurementByTitle looks up a measurement directly under a section.
func SectionMeasurementByTitle(s Section, title string) (Measurement, bool) {
	return MeasurementByTitle(s.Measurements(), title)
}

// SubMeasurementByTitle looks up a nested measurement of a Mistake.
func SubMeasurementByTitle(m Measurement, title string) (Measurement, bool) {
	return MeasurementByTitle(m.SubMeasurements(), title)
}

// MeasurementValueByLabel looks up a value of a measurement.
func MeasurementValueByLabel(m Measurement, label string) (Value, bool) {
	return ValueByLabel(m.Values(), label)
}
