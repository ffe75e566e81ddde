package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eriiiic/Retirement/internal/output"
)

// View renders the whole screen: parameter panel, summary metrics and the
// capital curve.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Retirement Projection"))
	sb.WriteString("  ")
	sb.WriteString(SubtitleStyle.Render(m.scenarioName))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		BorderStyle.Render(m.viewParameters()),
		"  ",
		BorderStyle.Render(m.viewSummary()),
	))
	sb.WriteString("\n")

	if m.report != nil {
		chartWidth := m.width - 6
		if chartWidth > 100 {
			chartWidth = 100
		}
		sb.WriteString(BorderStyle.Render(capitalChart(&m.report.Result, chartWidth, 10)))
		sb.WriteString("\n")
	}

	if m.err != nil {
		sb.WriteString(ErrorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpLine())

	return AppStyle.Render(sb.String())
}

func (m Model) viewParameters() string {
	var sb strings.Builder
	sb.WriteString(MetricLabelStyle.Render("PARAMETERS"))
	sb.WriteString("\n")
	for i, f := range m.fields {
		marker := "  "
		style := ParamLabelStyle
		if i == m.cursor {
			marker = "> "
			style = SelectedParamStyle
		}
		sb.WriteString(style.Render(fmt.Sprintf("%s%-24s %s", marker, f.label, f.value(&m.params))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) viewSummary() string {
	var sb strings.Builder
	sb.WriteString(MetricLabelStyle.Render("SUMMARY"))
	sb.WriteString("\n")
	if m.report == nil {
		sb.WriteString(SubtitleStyle.Render("projecting..."))
		return sb.String()
	}

	s := m.report.Summary
	row := func(label, value string, style lipgloss.Style) {
		sb.WriteString(MetricLabelStyle.Render(fmt.Sprintf("  %-22s", label)))
		sb.WriteString(style.Render(value))
		sb.WriteString("\n")
	}

	row("Retirement", fmt.Sprintf("year %d (age %d)", s.RetirementYear, s.RetirementAge), MetricValueStyle)
	row("Capital at retirement", output.FormatCurrency(s.CapitalAtRetirement), MetricValueStyle)
	row("Needed capital", output.FormatCurrency(s.NeededCapital), MetricValueStyle)
	row("Final capital", output.FormatCurrency(s.FinalCapital), MetricValueStyle)
	if s.IsDepleted && s.DepletionYear != nil {
		row("Depleted", fmt.Sprintf("year %d (age %d)", *s.DepletionYear, *s.DepletionAge), MetricBadStyle)
	} else {
		row("Depleted", "never", MetricGoodStyle)
	}
	row("Total invested", output.FormatCurrency(s.TotalInvested), MetricValueStyle)
	row("Total withdrawn", output.FormatCurrency(s.TotalWithdrawn), MetricValueStyle)
	return sb.String()
}

func helpLine() string {
	parts := []struct{ key, desc string }{
		{"up/down", "select"},
		{"left/right", "adjust"},
		{"r", "reproject"},
		{"q", "quit"},
	}
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(HelpKeyStyle.Render(p.key))
		sb.WriteString(" ")
		sb.WriteString(HelpDescStyle.Render(p.desc))
	}
	return sb.String()
}

func intString(v int) string { return strconv.Itoa(v) }
