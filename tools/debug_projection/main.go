// Command debug_projection prints the year table and summary for a
// hard-coded parameter set. Useful when bisecting loop changes without a
// scenario file.
package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/calculation"
	"github.com/eriiiic/Retirement/internal/domain"
	"github.com/eriiiic/Retirement/internal/output"
)

func main() {
	params := domain.SimulationParameters{
		InitialCapital:             decimal.NewFromInt(150000),
		MonthlyContribution:        decimal.NewFromInt(500),
		AnnualGrowthRatePercent:    decimal.NewFromInt(7),
		AnnualInflationRatePercent: decimal.NewFromInt(2),
		CurrentAge:                 46,
		CurrentYear:                2025,
		RetirementInput:            60,
		Strategy: domain.WithdrawalStrategy{
			Kind:   domain.StrategyTargetEndAge,
			MaxAge: 95,
		},
	}

	engine := calculation.NewProjectionEngine()
	report, err := engine.RunScenario("debug", params)
	if err != nil {
		fmt.Println("projection failed:", err)
		return
	}

	rendered, err := (output.ConsoleFormatter{}).Format(report)
	if err != nil {
		fmt.Println("formatting failed:", err)
		return
	}
	fmt.Print(string(rendered))

	fmt.Println()
	fmt.Printf("have bar: %s  need bar: %s\n",
		report.Summary.HaveBarPercent.StringFixed(1),
		report.Summary.NeedBarPercent.StringFixed(1))
}
