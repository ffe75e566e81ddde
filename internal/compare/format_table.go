package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/output"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios.
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("RETIREMENT SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 90) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.SourcePath != "" {
		sb.WriteString(fmt.Sprintf("Scenario File: %s\n", compSet.SourcePath))
	}
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 18

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "At Retirement",
		numWidth, "Final Capital",
		numWidth, "Total Withdrawn",
		numWidth-8, "Longevity"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 90) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			sb.WriteString(fmt.Sprintf("  Final Capital:       %s%s (%s%%)\n",
				tf.deltaSymbol(alt.FinalCapitalDiffFromBase),
				output.FormatCurrency(alt.FinalCapitalDiffFromBase.Abs()),
				alt.FinalCapitalPctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Capital at Retirement: %s%s\n",
				tf.deltaSymbol(alt.RetirementCapitalDiffBase),
				output.FormatCurrency(alt.RetirementCapitalDiffBase.Abs())))
			if alt.LongevityDiffFromBase != 0 {
				symbol := "+"
				if alt.LongevityDiffFromBase < 0 {
					symbol = ""
				}
				sb.WriteString(fmt.Sprintf("  Capital Longevity:   %s%d years\n",
					symbol, alt.LongevityDiffFromBase))
			}
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := r.ScenarioName
	if isBase {
		name += " (base)"
	}
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}
	return fmt.Sprintf("%-*s %*s %*s %*s %*d\n",
		nameWidth, name,
		numWidth, output.FormatCurrency(r.CapitalAtRetirement),
		numWidth, output.FormatCurrency(r.FinalCapital),
		numWidth, output.FormatCurrency(r.TotalWithdrawn),
		numWidth-14, r.CapitalLongevityYears)
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}
