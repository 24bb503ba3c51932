package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"focuslock/internal/ui/theme"
)

// BarPoint is one labelled value in a bar chart.
type BarPoint struct {
	Label string
	Value float64
}

// BarChart renders a vertical bar chart from labelled values. Bars are
// scaled against the largest value in the series.
type BarChart struct {
	Points []BarPoint
	Height int
}

// NewBarChart creates a bar chart with the given rendering height.
func NewBarChart(points []BarPoint, height int) BarChart {
	if height < 3 {
		height = 3
	}
	return BarChart{Points: points, Height: height}
}

// View renders the chart: one column of "█" cells per point, with the
// value above the bar and the label below it.
func (c BarChart) View() string {
	if len(c.Points) == 0 {
		return theme.Hint.Render("no data")
	}

	max := 0.0
	for _, p := range c.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	if max == 0 {
		max = 1
	}

	colWidth := 0
	for _, p := range c.Points {
		if w := lipgloss.Width(p.Label); w > colWidth {
			colWidth = w
		}
	}
	if colWidth < 4 {
		colWidth = 4
	}

	heights := make([]int, len(c.Points))
	for i, p := range c.Points {
		h := int(p.Value / max * float64(c.Height))
		if p.Value > 0 && h == 0 {
			h = 1
		}
		heights[i] = h
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	valStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder

	// One extra row on top holds the value of each bar at its peak.
	for row := c.Height; row >= 1; row-- {
		for i, p := range c.Points {
			var cell string
			switch {
			case heights[i] == row:
				cell = valStyle.Render(center(trimFloat(p.Value), colWidth))
			case heights[i] > row:
				cell = barStyle.Render(center(strings.Repeat("█", 2), colWidth))
			default:
				cell = strings.Repeat(" ", colWidth)
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	for _, p := range c.Points {
		b.WriteString(labelStyle.Render(center(p.Label, colWidth)))
		b.WriteString(" ")
	}

	return b.String()
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
