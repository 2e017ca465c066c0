package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/valdiff/internal/model"
	"golang.org/x/term"
)

// TUI implements UI with lipgloss styling and a Bubble Tea browser for output
// that does not fit the terminal.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayDump shows the dump records.
func (t *TUI) DisplayDump(records []m.DumpRecord) error {
	items := make([]recordItem, 0, len(records))
	for _, record := range records {
		items = append(items, recordItem{
			path:   record.Path.Append(record.Label).Join(dumpSeparator),
			detail: record.Text,
		})
	}

	summary := fmt.Sprintf("Values: %s", accentStyle.Render(fmt.Sprintf("%d", len(records))))

	return t.show(newRecordModel("VAL Dump", summary, items, nil))
}

// DisplayDiff shows the discrepancies between two reports.
func (t *TUI) DisplayDiff(result m.DiffResult) error {
	if result.Empty() {
		_, err := fmt.Fprintln(t.output, "  "+accentStyle.Render("No differences found"))
		return err
	}

	items := make([]recordItem, 0, len(result.Records))
	for _, record := range result.Records {
		items = append(items, recordItem{
			path:   record.Path.Join(diffSeparator),
			detail: record.Message,
			kind:   record.Kind.String(),
		})
	}

	var footer []string
	if len(result.MissingInSecond) > 0 {
		footer = append(footer, missingSectionsLine(m.SecondDocument, result.MissingInSecond))
	}

	if len(result.MissingInFirst) > 0 {
		footer = append(footer, missingSectionsLine(m.FirstDocument, result.MissingInFirst))
	}

	counts := countByKind(result.Records)
	summary := fmt.Sprintf("Differences: %s   Changed: %s   Sections missing: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(result.Records))),
		accentStyle.Render(fmt.Sprintf("%d", counts[m.ValueChanged])),
		accentStyle.Render(fmt.Sprintf("%d", len(result.MissingInFirst)+len(result.MissingInSecond))),
	)

	return t.show(newRecordModel("VAL Diff", summary, items, footer))
}

// DisplayInfo shows the report header.
func (t *TUI) DisplayInfo(doc *m.Document) error {
	rows := infoRows(doc)

	keyWidth := 0
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row[0]))
	}

	keyStyle := mutedStyle.Width(keyWidth + 2)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, keyStyle.Render(row[0])+accentStyle.Render(row[1]))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("VAL Report"), box))

	return err
}

func (t *TUI) show(model recordModel) error {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
