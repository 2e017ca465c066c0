package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lines used by title, summary, headers, borders and footer.
const recordChromeHeight = 9

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// recordDelegate renders one record per line.
type recordDelegate struct {
	offset int
}

func (d recordDelegate) Height() int  { return 1 }
func (d recordDelegate) Spacing() int { return 0 }
func (d recordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	record, ok := item.(recordItem)
	if !ok {
		return
	}

	text := record.path + "  " + record.detail

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		_, _ = fmt.Fprint(w, selected.Render(animateScroll(text, m.Width(), d.offset)))

		return
	}

	_, _ = fmt.Fprint(w, renderRecord(truncateToWidth(record.path, m.Width()), record, m.Width()))
}

// renderRecord styles a record, truncating the detail to what is left of width.
func renderRecord(path string, record recordItem, width int) string {
	line := pathStyle.Render(path)
	rest := width - lipgloss.Width(path) - 2

	if record.detail != "" && (width <= 0 || rest > 0) {
		detail := record.detail
		if width > 0 {
			detail = truncateToWidth(detail, rest)
		}

		line += "  " + detailStyle.Render(detail)
	}

	return line
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling starts.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// recordModel is a filterable browser over dump or diff records.
type recordModel struct {
	title        string
	summary      string
	footer       []string
	items        []recordItem
	width        int
	height       int
	recordList   list.Model
	delegate     recordDelegate
	animOffset   int
	lastSelected int
}

func newRecordModel(title, summary string, items []recordItem, footer []string) recordModel {
	delegate := recordDelegate{}

	listItems := make([]list.Item, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, item)
	}

	recordList := list.New(listItems, delegate, 80, 20)
	recordList.SetShowPagination(false)
	recordList.SetShowFilter(true)
	recordList.SetShowHelp(false)
	recordList.SetShowTitle(false)
	recordList.SetShowStatusBar(false)
	recordList.FilterInput.Placeholder = "Filter by path or value…"

	return recordModel{
		title:        title,
		summary:      summary,
		footer:       footer,
		items:        items,
		recordList:   recordList,
		delegate:     delegate,
		lastSelected: 0,
	}
}

// needsPagination reports whether the records overflow a known terminal height.
func (m recordModel) needsPagination() bool {
	if m.height <= 0 || len(m.items) == 0 {
		return false
	}

	return len(m.items)+len(m.footer) > m.height-recordChromeHeight
}

func (m recordModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m recordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recordList.SetWidth(m.width)

	case tickMsg:
		if m.recordList.FilterState() == list.Filtering {
			return m, nil
		}

		m.animOffset++
		m.delegate.offset = m.animOffset
		m.recordList.SetDelegate(m.delegate)

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.recordList.FilterState() != list.Filtering) {
			return m, tea.Quit
		}

		m.recordList, cmd = m.recordList.Update(msg)

		if m.recordList.Index() != m.lastSelected {
			m.lastSelected = m.recordList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.recordList.SetDelegate(m.delegate)
		}

		return m, cmd
	}

	return m, cmd
}

func (m recordModel) View() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	parts := []string{
		titleStyle.Render(m.title),
		summaryStyle.Render(m.summary),
		m.renderTable(),
	}

	for _, line := range m.footer {
		parts = append(parts, "  "+kindStyle.Render(line))
	}

	parts = append(parts, footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m recordModel) renderTable() string {
	listHeight := m.height - recordChromeHeight - len(m.footer)
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	m.recordList.SetHeight(listHeight)
	m.recordList.SetWidth(listWidth)

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(m.recordList.View())
}

// staticView renders every record without the browser chrome.
func (m recordModel) staticView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(m.summary))
	b.WriteString("\n")

	for _, item := range m.items {
		b.WriteString("  ")
		b.WriteString(renderRecord(item.path, item, 0))
		b.WriteString("\n")
	}

	for _, line := range m.footer {
		b.WriteString("  ")
		b.WriteString(kindStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
