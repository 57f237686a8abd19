package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Color constants for consistent styling
const (
	ColorBrightCyan  = "14"
	ColorRed         = "9"
	ColorYellow      = "11"
	ColorGreen       = "10"
	ColorGray        = "7"
	ColorBrightGray  = "8"
	ColorBrightWhite = "15"
)

// Column represents a table column definition
type Column struct {
	Title     string
	Key       string
	StyleFunc func(value string) lipgloss.Style
}

// Row represents a table row with data
type Row map[string]string

// Table renders column-aligned rows with lipgloss styling, sized to the
// terminal.
type Table struct {
	columns     []Column
	rows        []Row
	headerStyle lipgloss.Style
	maxWidth    int
}

// NewTable creates a new table with default styling
func NewTable(columns ...Column) *Table {
	return &Table{
		columns:     columns,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBrightCyan)),
		maxWidth:    getTerminalWidth(),
	}
}

// AddRow appends one data row.
func (t *Table) AddRow(row Row) *Table {
	t.rows = append(t.rows, row)
	return t
}

// columnWidths sizes each column to its widest cell, capped so the table
// fits the terminal.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = runewidth.StringWidth(col.Title)
		for _, row := range t.rows {
			if w := runewidth.StringWidth(row[col.Key]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	if t.maxWidth > 0 && len(t.columns) > 1 {
		perColumn := t.maxWidth/len(t.columns) - 2
		for i := range widths {
			if perColumn > 0 && widths[i] > perColumn {
				widths[i] = perColumn
			}
		}
	}

	return widths
}

// Render renders the table as a string
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	var sb strings.Builder
	widths := t.columnWidths()

	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = t.headerStyle.Render(pad(col.Title, widths[i]))
	}
	sb.WriteString(strings.Join(cells, "  "))
	sb.WriteString("\n")

	totalWidth := 0
	for _, w := range widths {
		totalWidth += w + 2
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightGray)).Render(strings.Repeat("─", totalWidth)))
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i, col := range t.columns {
			value := row[col.Key]
			if value == "" {
				value = "-"
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightWhite))
			if col.StyleFunc != nil {
				style = col.StyleFunc(value)
			}
			cells[i] = style.Render(pad(truncateText(value, widths[i]), widths[i]))
		}
		sb.WriteString(strings.Join(cells, "  "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Print renders and prints the table
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// LabelTable renders a key/value label set as a two-column table with keys
// in a stable sorted order.
func LabelTable(labels map[string]string) *Table {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := NewTable(
		Column{
			Title: "KEY",
			Key:   "key",
			StyleFunc: func(string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightCyan))
			},
		},
		Column{Title: "VALUE", Key: "value"},
	)
	for _, k := range keys {
		t.AddRow(Row{"key": k, "value": labels[k]})
	}
	return t
}

// GetSyncStyle styles the verify status column. The value may carry a
// leading indicator dot.
func GetSyncStyle(status string) lipgloss.Style {
	switch strings.TrimLeft(strings.ToLower(status), "● ") {
	case "in-sync":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)).Bold(true)
	case "drift":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)).Bold(true)
	case "selector-drift":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray))
	}
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// truncateText truncates text with an ellipsis at the given display width.
func truncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	return runewidth.Truncate(text, maxWidth-1, "…")
}

// getTerminalWidth returns the current terminal width
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 120 // fallback width
	}
	return width
}

// IsTerminal checks if the output is going to a terminal
func IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
