package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/eriiiic/Retirement/internal/domain"
)

// ConsoleFormatter renders the human-readable report: parameter recap,
// summary statistics, the have-vs-need bars and the year table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	p := report.Parameters
	s := report.Summary

	fmt.Fprintln(buf, strings.Repeat("=", 79))
	fmt.Fprintf(buf, "RETIREMENT CAPITAL PROJECTION: %s\n", report.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 79))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "PARAMETERS")
	fmt.Fprintln(buf, "----------")
	fmt.Fprintf(buf, "Initial Capital:       %s\n", FormatCurrency(p.InitialCapital))
	fmt.Fprintf(buf, "Monthly Contribution:  %s\n", FormatCurrency(p.MonthlyContribution))
	fmt.Fprintf(buf, "Annual Growth Rate:    %s\n", FormatPercentage(p.AnnualGrowthRatePercent))
	fmt.Fprintf(buf, "Annual Inflation Rate: %s\n", FormatPercentage(p.AnnualInflationRatePercent))
	fmt.Fprintf(buf, "Compounding:           %s\n", p.Compounding)
	fmt.Fprintf(buf, "Withdrawal Strategy:   %s\n", describeStrategy(p.Strategy))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "SUMMARY")
	fmt.Fprintln(buf, "-------")
	fmt.Fprintf(buf, "Retirement:            year %d (age %d)\n", s.RetirementYear, s.RetirementAge)
	fmt.Fprintf(buf, "Capital at Retirement: %s\n", FormatCurrency(s.CapitalAtRetirement))
	fmt.Fprintf(buf, "Needed Capital:        %s\n", FormatCurrency(s.NeededCapital))
	fmt.Fprintf(buf, "Final Capital:         %s (today's money: %s)\n",
		FormatCurrency(s.FinalCapital), FormatCurrency(s.FinalCapitalPresentValue))
	fmt.Fprintf(buf, "Total Invested:        %s (today's money: %s)\n",
		FormatCurrency(s.TotalInvested), FormatCurrency(s.TotalInvestedPresentValue))
	fmt.Fprintf(buf, "Total Withdrawn:       %s\n", FormatCurrency(s.TotalWithdrawn))
	if s.IsDepleted && s.DepletionYear != nil {
		fmt.Fprintf(buf, "Capital Depleted:      year %d (age %d)\n", *s.DepletionYear, *s.DepletionAge)
	} else {
		fmt.Fprintf(buf, "Capital Depleted:      never (horizon age %d)\n", p.HorizonMaxAge)
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "HAVE VS NEED AT RETIREMENT")
	fmt.Fprintln(buf, "--------------------------")
	fmt.Fprintf(buf, "Have %s %s\n", bar(s.HaveBarPercent.IntPart()), FormatCurrency(s.CapitalAtRetirement))
	fmt.Fprintf(buf, "Need %s %s\n", bar(s.NeedBarPercent.IntPart()), FormatCurrency(s.NeededCapital))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "YEAR BY YEAR")
	fmt.Fprintln(buf, "------------")
	fmt.Fprintf(buf, "%-6s %-4s %-5s %16s %14s %14s %14s\n",
		"Year", "Age", "Phase", "Capital", "Contributed", "Withdrawn", "Interest")
	for _, snap := range report.Result.Snapshots {
		phase := "save"
		if snap.IsRetired {
			phase = "draw"
		}
		fmt.Fprintf(buf, "%-6d %-4d %-5s %16s %14s %14s %14s\n",
			snap.Year, snap.Age, phase,
			snap.Capital.StringFixed(2),
			snap.ContributionThisYear.StringFixed(2),
			snap.WithdrawalThisYear.StringFixed(2),
			snap.InterestThisYear.StringFixed(2))
	}

	return buf.Bytes(), nil
}

// describeStrategy renders the strategy variant with its active parameter.
func describeStrategy(s domain.WithdrawalStrategy) string {
	switch s.Kind {
	case domain.StrategyFixedAmount:
		return fmt.Sprintf("fixed amount, %s/month", FormatCurrency(s.MonthlyWithdrawal))
	case domain.StrategyTargetEndAge:
		return fmt.Sprintf("target end age %d", s.MaxAge)
	case domain.StrategyRateOfCapital:
		return fmt.Sprintf("rate of capital, %s/year", FormatPercentage(s.AnnualRatePercent))
	default:
		return string(s.Kind)
	}
}

// bar renders a 0-100 percentage as a fixed-width 40-cell bar.
func bar(percent int64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent * 40 / 100)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 40-filled) + "]"
}
