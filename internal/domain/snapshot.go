package domain

import (
	"github.com/shopspring/decimal"
)

// YearlySnapshot is the state of the projection at the end of one calendar
// year. Capital is never negative; once it reaches zero it stays zero and no
// further interest, contributions or withdrawals accrue.
type YearlySnapshot struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	Capital decimal.Decimal `json:"capital"`

	// CapitalExcludingInterest tracks the principal only: initial capital
	// plus contributions minus withdrawals, ignoring all interest earned.
	CapitalExcludingInterest decimal.Decimal `json:"capitalExcludingInterest"`

	IsRetired bool `json:"isRetired"`

	ContributionThisYear decimal.Decimal `json:"contributionThisYear"`
	WithdrawalThisYear   decimal.Decimal `json:"withdrawalThisYear"`
	InterestThisYear     decimal.Decimal `json:"interestThisYear"`

	// NetCashFlowExcludingInterest is contributions minus withdrawals for
	// the year.
	NetCashFlowExcludingInterest decimal.Decimal `json:"netCashFlowExcludingInterest"`

	// Post-inflation-adjustment monthly rates as of year end.
	EndingMonthlyContribution decimal.Decimal `json:"endingMonthlyContribution"`
	EndingMonthlyWithdrawal   decimal.Decimal `json:"endingMonthlyWithdrawal"`

	CumulativeInvested  decimal.Decimal `json:"cumulativeInvested"`
	CumulativeWithdrawn decimal.Decimal `json:"cumulativeWithdrawn"`
}

// IsDepletedState reports whether this snapshot sits in the absorbing
// zero-capital state.
func (s *YearlySnapshot) IsDepletedState() bool {
	return s.Capital.LessThanOrEqual(decimal.Zero)
}

// SimulationResult is the chronologically increasing sequence of yearly
// snapshots produced by one projection run, first entry at the current
// calendar year.
type SimulationResult struct {
	Snapshots []YearlySnapshot `json:"snapshots"`
}

// IsEmpty reports whether the result holds no snapshots.
func (r *SimulationResult) IsEmpty() bool {
	return r == nil || len(r.Snapshots) == 0
}

// First returns the first snapshot, or nil for an empty result.
func (r *SimulationResult) First() *YearlySnapshot {
	if r.IsEmpty() {
		return nil
	}
	return &r.Snapshots[0]
}

// Last returns the final snapshot, or nil for an empty result.
func (r *SimulationResult) Last() *YearlySnapshot {
	if r.IsEmpty() {
		return nil
	}
	return &r.Snapshots[len(r.Snapshots)-1]
}

// AtOrAfterYear returns the first snapshot whose calendar year is at least
// the given year, or nil when the projection ends before it.
func (r *SimulationResult) AtOrAfterYear(year int) *YearlySnapshot {
	if r == nil {
		return nil
	}
	for i := range r.Snapshots {
		if r.Snapshots[i].Year >= year {
			return &r.Snapshots[i]
		}
	}
	return nil
}

// FirstDepleted returns the first retired snapshot in the absorbing
// zero-capital state, or nil if capital never runs out. Depletion is a
// decumulation concept: a zero balance before retirement (nothing saved yet)
// does not count. It is absorbing, so many trailing snapshots may also read
// zero; callers want the first.
func (r *SimulationResult) FirstDepleted() *YearlySnapshot {
	if r == nil {
		return nil
	}
	for i := range r.Snapshots {
		if r.Snapshots[i].IsRetired && r.Snapshots[i].IsDepletedState() {
			return &r.Snapshots[i]
		}
	}
	return nil
}
