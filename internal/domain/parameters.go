package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compounding selects how often interest is applied during a projection.
type Compounding string

const (
	CompoundingMonthly Compounding = "monthly"
	CompoundingAnnual  Compounding = "annual"
)

// StrategyKind identifies a withdrawal strategy variant.
type StrategyKind string

const (
	StrategyFixedAmount   StrategyKind = "fixed_amount"
	StrategyTargetEndAge  StrategyKind = "target_end_age"
	StrategyRateOfCapital StrategyKind = "rate_of_capital"
)

// DefaultHorizonMaxAge is the simulation horizon used when the strategy does
// not carry its own target end age.
const DefaultHorizonMaxAge = 95

// WithdrawalStrategy is a closed variant type: exactly one of the value
// fields is meaningful for a given Kind, and all dispatch happens through
// exhaustive switches on Kind rather than through an interface.
type WithdrawalStrategy struct {
	Kind StrategyKind `yaml:"mode" json:"mode"`

	// MonthlyWithdrawal is the literal amount for StrategyFixedAmount.
	MonthlyWithdrawal decimal.Decimal `yaml:"monthly_withdrawal,omitempty" json:"monthlyWithdrawal,omitempty"`

	// MaxAge is the age capital should last until for StrategyTargetEndAge.
	MaxAge int `yaml:"max_age,omitempty" json:"maxAge,omitempty"`

	// AnnualRatePercent is the percentage of current capital withdrawn per
	// year for StrategyRateOfCapital (4.0 means 4%).
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate,omitempty" json:"annualRate,omitempty"`
}

// SimulationParameters is the complete, immutable input of a single
// projection run. Rates are nominal percentages (5.0 means 5%).
type SimulationParameters struct {
	InitialCapital      decimal.Decimal `yaml:"initial_capital" json:"initialCapital"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution"`

	AnnualGrowthRatePercent    decimal.Decimal `yaml:"annual_growth_rate" json:"annualGrowthRate"`
	AnnualInflationRatePercent decimal.Decimal `yaml:"annual_inflation_rate" json:"annualInflationRate"`

	CurrentAge int `yaml:"current_age" json:"currentAge"`

	// RetirementInput is the raw user-entered integer; it is classified as
	// an age or an absolute calendar year once, at run start.
	RetirementInput int `yaml:"retirement" json:"retirement"`

	Strategy WithdrawalStrategy `yaml:"strategy" json:"strategy"`

	Compounding Compounding `yaml:"compounding" json:"compounding"`

	// HorizonMaxAge stops the simulation regardless of strategy. Zero means
	// the default (95, or the strategy's MaxAge for target_end_age).
	HorizonMaxAge int `yaml:"horizon_max_age,omitempty" json:"horizonMaxAge,omitempty"`

	// CurrentYear anchors the projection on the calendar. Zero means the
	// current wall-clock year; tests pin it for determinism.
	CurrentYear int `yaml:"current_year,omitempty" json:"currentYear,omitempty"`
}

// Normalized returns a copy with defaults filled in: compounding convention,
// calendar anchor and horizon. The receiver is never mutated.
func (p SimulationParameters) Normalized() SimulationParameters {
	out := p
	if out.Compounding == "" {
		out.Compounding = CompoundingMonthly
	}
	if out.CurrentYear == 0 {
		out.CurrentYear = time.Now().Year()
	}
	if out.HorizonMaxAge == 0 {
		if out.Strategy.Kind == StrategyTargetEndAge && out.Strategy.MaxAge > 0 {
			out.HorizonMaxAge = out.Strategy.MaxAge
		} else {
			out.HorizonMaxAge = DefaultHorizonMaxAge
		}
	}
	return out
}

// GrowthRate returns the nominal annual growth rate as a fraction.
func (p SimulationParameters) GrowthRate() decimal.Decimal {
	return p.AnnualGrowthRatePercent.Div(decimal.NewFromInt(100))
}

// InflationRate returns the annual inflation rate as a fraction.
func (p SimulationParameters) InflationRate() decimal.Decimal {
	return p.AnnualInflationRatePercent.Div(decimal.NewFromInt(100))
}

// RetirementYear resolves the raw retirement input to a calendar year.
func (p SimulationParameters) RetirementYear() int {
	return ClassifyRetirementInput(p.RetirementInput).ResolveYear(p.CurrentAge, p.CurrentYear)
}

// RetirementAge resolves the raw retirement input to an age.
func (p SimulationParameters) RetirementAge() int {
	return p.CurrentAge + (p.RetirementYear() - p.CurrentYear)
}
