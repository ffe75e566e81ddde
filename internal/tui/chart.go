package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eriiiic/Retirement/internal/domain"
)

// capitalChart renders the capital curve as an ASCII line chart. The column
// count adapts to the terminal width; each column is one or more projection
// years sampled at its first year.
func capitalChart(result *domain.SimulationResult, width, height int) string {
	if result.IsEmpty() || width < 20 || height < 5 {
		return ""
	}

	points := make([]float64, len(result.Snapshots))
	for i, snap := range result.Snapshots {
		points[i] = snap.Capital.InexactFloat64()
	}

	cols := width - 12 // room for the y-axis labels
	if cols > len(points) {
		cols = len(points)
	}
	sampled := make([]float64, cols)
	for c := 0; c < cols; c++ {
		sampled[c] = points[c*len(points)/cols]
	}

	maxVal := 0.0
	for _, v := range sampled {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	lineStyle := lipgloss.NewStyle().Foreground(ColorChartLine)
	axisStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var sb strings.Builder
	for row := height - 1; row >= 0; row-- {
		threshold := maxVal * float64(row) / float64(height-1)
		label := ""
		if row == height-1 {
			label = compactAmount(maxVal)
		} else if row == 0 {
			label = "0"
		}
		sb.WriteString(axisStyle.Render(fmt.Sprintf("%9s |", label)))
		for _, v := range sampled {
			if v >= threshold && v > 0 {
				sb.WriteString(lineStyle.Render("#"))
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(axisStyle.Render(strings.Repeat(" ", 10) + "+" + strings.Repeat("-", cols)))
	sb.WriteString("\n")
	first := result.First()
	last := result.Last()
	xAxis := fmt.Sprintf("%11d%*d", first.Year, cols-len(fmt.Sprint(first.Year))+4, last.Year)
	sb.WriteString(axisStyle.Render(xAxis))
	return sb.String()
}

// compactAmount renders a float as a short magnitude label (1.2M, 340k).
func compactAmount(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
