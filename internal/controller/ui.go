// Package controller provides output adapters for displaying report dumps and comparisons.
package controller

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/valdiff/internal/model"
)

const (
	dumpSeparator = " >> "
	diffSeparator = " // "
)

// UI defines the interface for displaying report dumps, comparisons and headers.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDump(records []m.DumpRecord) error
	DisplayDiff(result m.DiffResult) error
	DisplayInfo(doc *m.Document) error
}

// dumpLine renders a dump record as "section >> measurement >> label: text".
func dumpLine(r m.DumpRecord) string {
	return r.Path.Append(r.Label).Join(dumpSeparator) + ": " + r.Text
}

// diffLine renders a diff record as "section // measurement // label :: message".
func diffLine(r m.DiffRecord) string {
	return r.Path.Join(diffSeparator) + " :: " + r.Message
}

func missingSectionsLine(side m.Side, titles []string) string {
	return "Missing section(s) in " + string(side) + " report: " + strings.Join(titles, ",")
}

// infoRows lists the header fields shown by DisplayInfo.
func infoRows(doc *m.Document) [][]string {
	vehicle := doc.ResultsHeader.Vehicle
	dealer := doc.ResultsHeader.CarDealer
	header := doc.Result.Header
	equipment := header.Equipment

	model := vehicle.Data.ModelType
	if vehicle.Data.Model != nil && *vehicle.Data.Model != "" {
		model = *vehicle.Data.Model + " (" + vehicle.Data.ModelType + ")"
	}

	return [][]string{
		{"VIN", vehicle.Ident.VIN},
		{"Registration", vehicle.Ident.Registration},
		{"Model", model},
		{"Engine", vehicle.Data.EngineType},
		{"Odometer", vehicle.Data.Odometer.String()},
		{"Operating time", vehicle.Data.OperatingTime.String()},
		{"Onboard voltage", vehicle.Data.OnboardVoltage.String()},
		{"Dealer", strings.TrimSpace(dealer.Name + " " + dealer.City)},
		{"Order", dealer.Order},
		{"Test", doc.Result.Title},
		{"Started", header.StartTest.String()},
		{"Ended", header.EndTest.String()},
		{"Timezone", header.Timezone.String()},
		{"Equipment", strings.TrimSpace(equipment.Manufacturer + " " + equipment.Model)},
		{"PT2G version", equipment.PT2GVersion},
		{"Sections", strconv.Itoa(len(doc.Sections()))},
	}
}
