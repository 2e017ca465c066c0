package controller

import (
	"testing"

	m "github.com/mouse-blink/valdiff/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func sampleDumpRecords() []m.DumpRecord {
	return []m.DumpRecord{
		{Path: m.NodePath{"Gateway", "Control unit, coding"}, Label: "X", Text: "Scanner code"},
		{Path: m.NodePath{"Gateway", "Faults", "Event"}, Label: "Status", Text: "active"},
	}
}

func sampleDiffResult() m.DiffResult {
	return m.DiffResult{
		Records: []m.DiffRecord{
			{
				Path:    m.NodePath{"Gateway", "Control unit, coding", "X"},
				Kind:    m.ValueChanged,
				Message: "'205 ABC' -> '999 XYZ'",
				Old:     strPtr("205 ABC"),
				New:     strPtr("999 XYZ"),
			},
			{
				Path:    m.NodePath{"Gateway", "Faults"},
				Kind:    m.MeasurementMissing,
				Missing: m.SecondDocument,
				Message: "measurement not found in second document",
			},
		},
		MissingInSecond: []string{"Engine", "Brakes"},
		MissingInFirst:  []string{"Body"},
	}
}

func sampleDocument(t *testing.T) *m.Document {
	t.Helper()

	start, err := m.ParseTimestamp("03.02.2024 10:15:00")
	if err != nil {
		t.Fatalf("ParseTimestamp error = %v", err)
	}

	end, err := m.ParseTimestamp("03.02.2024 10:45:30")
	if err != nil {
		t.Fatalf("ParseTimestamp error = %v", err)
	}

	doc := &m.Document{}
	doc.ResultsHeader.Vehicle.Ident.VIN = "WDD2050001F000001"
	doc.ResultsHeader.Vehicle.Ident.Registration = "S-VD 100"
	doc.ResultsHeader.Vehicle.Data.Model = strPtr("C 200")
	doc.ResultsHeader.Vehicle.Data.ModelType = "205.042"
	doc.ResultsHeader.Vehicle.Data.Odometer = m.UnitString{Unit: "km", Value: "12345"}
	doc.ResultsHeader.CarDealer.Name = "Autohaus Muster"
	doc.ResultsHeader.CarDealer.City = "Stuttgart"
	doc.Result.Title = "Quick test"
	doc.Result.Header.StartTest = start
	doc.Result.Header.EndTest = end
	doc.Result.Header.Timezone = m.NewTimezone(3600)
	doc.Result.Header.Equipment.Manufacturer = "Acme"
	doc.Result.Header.Equipment.Model = "DiagBox"

	return doc
}
