package domain

import (
	"github.com/shopspring/decimal"
)

// SummaryStatistics is a read-only view derived from a SimulationResult and
// the parameters that produced it.
type SummaryStatistics struct {
	RetirementYear int `json:"retirementYear"`
	RetirementAge  int `json:"retirementAge"`

	FinalCapital decimal.Decimal `json:"finalCapital"`

	IsDepleted    bool `json:"isDepleted"`
	DepletionYear *int `json:"depletionYear,omitempty"`
	DepletionAge  *int `json:"depletionAge,omitempty"`

	TotalInvested  decimal.Decimal `json:"totalInvested"`
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn"`

	CapitalAtRetirement decimal.Decimal `json:"capitalAtRetirement"`

	// NeededCapital is the independent present-value estimate of the capital
	// required at retirement to fund the withdrawal stream.
	NeededCapital decimal.Decimal `json:"neededCapital"`

	// Present-value (deflated) views of nominal totals.
	TotalInvestedPresentValue decimal.Decimal `json:"totalInvestedPresentValue"`
	FinalCapitalPresentValue  decimal.Decimal `json:"finalCapitalPresentValue"`

	// Normalized 0-100 bar heights for the have-vs-need display.
	HaveBarPercent decimal.Decimal `json:"haveBarPercent"`
	NeedBarPercent decimal.Decimal `json:"needBarPercent"`
}

// ProjectionReport bundles everything one projection run produced, for
// formatters and comparison.
type ProjectionReport struct {
	Name       string               `json:"name"`
	Parameters SimulationParameters `json:"parameters"`
	Result     SimulationResult     `json:"result"`
	Summary    SummaryStatistics    `json:"summary"`
}
