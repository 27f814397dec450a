package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var columns = []string{"ID", "NAME", "CR", "BF", "DF", "C", "CX", "RD"}

// WriteText writes a as a styled table followed by the statistics. Styles
// are resolved against w, so a non-terminal writer gets plain text.
func WriteText(w io.Writer, a *Analysis) error {
	r := lipgloss.NewRenderer(w)

	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	cellStyle := r.NewStyle().
		Foreground(lipgloss.Color("245"))

	labelStyle := r.NewStyle().
		Bold(true)

	// 1. Cells
	rows := make([][]string, 0, len(a.Courses))
	for _, c := range a.Courses {
		m := c.Metrics
		rows = append(rows, []string{
			c.ID,
			c.Name,
			num(c.Credits),
			strconv.Itoa(m.BlockingFactor),
			num(m.DelayFactor),
			strconv.Itoa(m.Centrality),
			num(m.Complexity),
			strconv.Itoa(m.RequisiteDistance),
		})
	}

	// 2. Column widths
	widths := make([]int, len(columns))
	for i, h := range columns {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Width(widths[i]).Render(cell)
		}

		return strings.Join(parts, "  ")
	}

	// 3. Output
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(a.Name))
	sb.WriteString("\n\n")
	sb.WriteString(line(columns, headerStyle))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(line(row, cellStyle))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	st := a.Statistics
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Courses:"), strconv.Itoa(st.Vertices))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Requisites:"), strconv.Itoa(st.Edges))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Credits:"), num(a.Credits))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Complexity:"), num(st.CurricularComplexity))
	fmt.Fprintf(&sb, "%s %s (%s)\n", labelStyle.Render("Longest path:"),
		strings.Join(a.LongestPath.Courses, " → "), num(a.LongestPath.Length))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Order:"), strings.Join(a.Order, ", "))
	h := a.Homology
	fmt.Fprintf(&sb, "%s components=%d sources=%d sinks=%d strict_pairs=%d strict_cycles=%d\n",
		labelStyle.Render("Homology:"), h.Components, h.Sources, h.Sinks, h.StrictPairs, h.StrictCycles)

	_, err := io.WriteString(w, sb.String())

	return err
}

// num formats a float without trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
