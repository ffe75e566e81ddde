// Package transform derives alternative parameter sets from a base scenario.
// Transforms are the building blocks of comparison templates: small, named
// parameter edits that compose.
package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/domain"
)

// ScenarioTransform is a single named parameter edit.
type ScenarioTransform interface {
	Name() string
	Description() string
	Apply(p domain.SimulationParameters) (domain.SimulationParameters, error)
}

// ShiftRetirement moves the retirement boundary by whole years. Positive
// postpones, negative brings it forward. It works on the raw input so an
// age stays an age and a calendar year stays a calendar year.
type ShiftRetirement struct {
	Years int
}

func (t *ShiftRetirement) Name() string { return "shift_retirement" }

func (t *ShiftRetirement) Description() string {
	if t.Years >= 0 {
		return fmt.Sprintf("Postpone retirement by %d year(s)", t.Years)
	}
	return fmt.Sprintf("Retire %d year(s) earlier", -t.Years)
}

func (t *ShiftRetirement) Apply(p domain.SimulationParameters) (domain.SimulationParameters, error) {
	p.RetirementInput += t.Years
	return p, nil
}

// ScaleContribution multiplies the monthly contribution by a factor.
type ScaleContribution struct {
	Factor decimal.Decimal
}

func (t *ScaleContribution) Name() string { return "scale_contribution" }

func (t *ScaleContribution) Description() string {
	return fmt.Sprintf("Scale monthly contribution by %s", t.Factor.String())
}

func (t *ScaleContribution) Apply(p domain.SimulationParameters) (domain.SimulationParameters, error) {
	if t.Factor.IsNegative() {
		return p, fmt.Errorf("contribution factor must not be negative")
	}
	p.MonthlyContribution = p.MonthlyContribution.Mul(t.Factor)
	return p, nil
}

// AdjustGrowthRate shifts the annual growth rate by percentage points.
type AdjustGrowthRate struct {
	DeltaPercent decimal.Decimal
}

func (t *AdjustGrowthRate) Name() string { return "adjust_growth_rate" }

func (t *AdjustGrowthRate) Description() string {
	return fmt.Sprintf("Shift annual growth rate by %s points", t.DeltaPercent.String())
}

func (t *AdjustGrowthRate) Apply(p domain.SimulationParameters) (domain.SimulationParameters, error) {
	p.AnnualGrowthRatePercent = p.AnnualGrowthRatePercent.Add(t.DeltaPercent)
	return p, nil
}

// ScaleWithdrawal multiplies the spending side of the active strategy by a
// factor: the fixed amount, or the rate of capital. A target-end-age
// strategy has no literal amount to scale and is returned unchanged.
type ScaleWithdrawal struct {
	Factor decimal.Decimal
}

func (t *ScaleWithdrawal) Name() string { return "scale_withdrawal" }

func (t *ScaleWithdrawal) Description() string {
	return fmt.Sprintf("Scale withdrawal by %s", t.Factor.String())
}

func (t *ScaleWithdrawal) Apply(p domain.SimulationParameters) (domain.SimulationParameters, error) {
	if t.Factor.IsNegative() {
		return p, fmt.Errorf("withdrawal factor must not be negative")
	}
	switch p.Strategy.Kind {
	case domain.StrategyFixedAmount:
		p.Strategy.MonthlyWithdrawal = p.Strategy.MonthlyWithdrawal.Mul(t.Factor)
	case domain.StrategyRateOfCapital:
		p.Strategy.AnnualRatePercent = p.Strategy.AnnualRatePercent.Mul(t.Factor)
	}
	return p, nil
}

// Apply runs a template's transforms in order over a copy of the base
// parameters.
func Apply(base domain.SimulationParameters, template Template) (domain.SimulationParameters, error) {
	p := base
	var err error
	for _, tr := range template.Transforms {
		p, err = tr.Apply(p)
		if err != nil {
			return base, fmt.Errorf("applying transform %s: %w", tr.Name(), err)
		}
	}
	return p, nil
}
