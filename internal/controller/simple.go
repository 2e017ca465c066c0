package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/valdiff/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDump prints one line per value.
func (s *SimpleUI) DisplayDump(records []m.DumpRecord) error {
	for _, record := range records {
		s.printf("%s\n", dumpLine(record))
	}

	return nil
}

// DisplayDiff prints one line per discrepancy followed by a summary table.
func (s *SimpleUI) DisplayDiff(result m.DiffResult) error {
	if result.Empty() {
		s.printf("No differences found\n")
		return nil
	}

	for _, record := range result.Records {
		s.printf("%s\n", diffLine(record))
	}

	if len(result.MissingInSecond) > 0 {
		s.printf("%s\n", missingSectionsLine(m.SecondDocument, result.MissingInSecond))
	}

	if len(result.MissingInFirst) > 0 {
		s.printf("%s\n", missingSectionsLine(m.FirstDocument, result.MissingInFirst))
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	counts := countByKind(result.Records)
	for _, kind := range diffKindOrder {
		if counts[kind] == 0 {
			continue
		}

		table.Append([]string{diffKindNames[kind], fmt.Sprintf("%d", counts[kind])})
	}

	table.Append([]string{"sections missing", fmt.Sprintf("%d", len(result.MissingInFirst)+len(result.MissingInSecond))})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(result.Records))})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayInfo prints the report header as a two column table.
func (s *SimpleUI) DisplayInfo(doc *m.Document) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk(infoRows(doc))
	table.Render()

	s.printf("%s", strings.TrimLeft(tableBuffer.String(), "\n"))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

var diffKindOrder = []m.DiffKind{
	m.ValueChanged,
	m.ValueMissing,
	m.ValuesMissing,
	m.MeasurementMissing,
	m.SubMeasurementsMissing,
}

var diffKindNames = map[m.DiffKind]string{
	m.ValueChanged:           "values changed",
	m.ValueMissing:           "values missing",
	m.ValuesMissing:          "value lists missing",
	m.MeasurementMissing:     "measurements missing",
	m.SubMeasurementsMissing: "sub-measurements missing",
}

func countByKind(records []m.DiffRecord) map[m.DiffKind]int {
	counts := make(map[m.DiffKind]int, len(diffKindOrder))
	for _, record := range records {
		counts[record.Kind]++
	}

	return counts
}
