package domain

import (
	"github.com/shopspring/decimal"
)

var minusOneHundred = decimal.NewFromInt(-100)

// Validate rejects malformed parameters before any simulation work starts.
// It expects a Normalized() parameter set.
func (p SimulationParameters) Validate() error {
	if p.CurrentAge < 0 {
		return invalidParam("current_age", "must not be negative, got %d", p.CurrentAge)
	}
	if p.InitialCapital.IsNegative() {
		return invalidParam("initial_capital", "must not be negative")
	}
	if p.MonthlyContribution.IsNegative() {
		return invalidParam("monthly_contribution", "must not be negative")
	}
	if p.AnnualGrowthRatePercent.LessThanOrEqual(minusOneHundred) {
		return invalidParam("annual_growth_rate", "must be greater than -100%%")
	}
	if p.AnnualInflationRatePercent.IsNegative() {
		return invalidParam("annual_inflation_rate", "must not be negative")
	}

	retirementAge := p.RetirementAge()
	if p.CurrentAge >= retirementAge {
		return invalidParam("retirement", "resolved retirement age %d must be greater than current age %d", retirementAge, p.CurrentAge)
	}
	if p.HorizonMaxAge <= p.CurrentAge {
		return invalidParam("horizon_max_age", "must be greater than current age %d, got %d", p.CurrentAge, p.HorizonMaxAge)
	}

	switch p.Strategy.Kind {
	case StrategyFixedAmount:
		if p.Strategy.MonthlyWithdrawal.IsNegative() {
			return invalidParam("strategy.monthly_withdrawal", "must not be negative")
		}
	case StrategyTargetEndAge:
		if p.Strategy.MaxAge <= retirementAge {
			return invalidParam("strategy.max_age", "must be greater than retirement age %d, got %d", retirementAge, p.Strategy.MaxAge)
		}
	case StrategyRateOfCapital:
		if !p.Strategy.AnnualRatePercent.IsPositive() {
			return invalidParam("strategy.annual_rate", "must be positive")
		}
	default:
		return invalidParam("strategy.mode", "unknown withdrawal strategy %q", p.Strategy.Kind)
	}

	switch p.Compounding {
	case CompoundingMonthly, CompoundingAnnual:
	default:
		return invalidParam("compounding", "must be %q or %q, got %q", CompoundingMonthly, CompoundingAnnual, p.Compounding)
	}

	return nil
}
