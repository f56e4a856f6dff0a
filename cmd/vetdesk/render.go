package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#74c7ec"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b4befe"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// renderTable lays out rows in fixed-width columns with a styled header.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(renderRow(headers, widths)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(renderRow(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		width := 0
		if i < len(widths) {
			width = widths[i]
		}
		padded[i] = cell + strings.Repeat(" ", max(0, width-len(cell)))
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

func renderKeyValues(pairs [][2]string) string {
	keyWidth := 0
	for _, p := range pairs {
		if len(p[0]) > keyWidth {
			keyWidth = len(p[0])
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		key := p[0] + strings.Repeat(" ", keyWidth-len(p[0]))
		b.WriteString(dimStyle.Render(key))
		b.WriteString("  ")
		b.WriteString(p[1])
		b.WriteString("\n")
	}
	return b.String()
}
