package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/domain"
	"github.com/eriiiic/Retirement/pkg/annuity"
)

var decimalHundred = decimal.NewFromInt(100)

// buildSummary derives headline statistics from a non-empty result. All
// values are deterministic functions of the snapshots and parameters.
func (e *ProjectionEngine) buildSummary(result *domain.SimulationResult, p domain.SimulationParameters) domain.SummaryStatistics {
	retirementYear := p.RetirementYear()
	retirementAge := p.RetirementAge()
	last := result.Last()

	s := domain.SummaryStatistics{
		RetirementYear: retirementYear,
		RetirementAge:  retirementAge,
		FinalCapital:   last.Capital,
		IsDepleted:     last.IsDepletedState(),
		TotalInvested:  last.CumulativeInvested,
		TotalWithdrawn: last.CumulativeWithdrawn,
	}

	if fd := result.FirstDepleted(); fd != nil {
		year := fd.Year
		age := fd.Age
		s.DepletionYear = &year
		s.DepletionAge = &age
	}

	atRetirement := result.AtOrAfterYear(retirementYear)
	if atRetirement != nil {
		s.CapitalAtRetirement = atRetirement.Capital
	} else {
		s.CapitalAtRetirement = last.Capital
	}

	s.NeededCapital = e.neededCapital(result, p, retirementYear, retirementAge)

	// Deflate nominal totals back to today's purchasing power over the full
	// projection span.
	projectionYears := p.HorizonMaxAge - p.CurrentAge
	s.TotalInvestedPresentValue = annuity.Deflate(s.TotalInvested, p.InflationRate(), projectionYears)
	s.FinalCapitalPresentValue = annuity.Deflate(s.FinalCapital, p.InflationRate(), projectionYears)

	s.HaveBarPercent, s.NeedBarPercent = normalizedBars(s.CapitalAtRetirement, s.NeededCapital)
	return s
}

// neededCapital estimates, independently of the simulation, the capital
// required at retirement to fund the withdrawal stream over the effective
// decumulation span. The real (inflation-adjusted) rate already accounts for
// withdrawals growing with inflation, so the stream is valued at its
// boundary amount.
func (e *ProjectionEngine) neededCapital(result *domain.SimulationResult, p domain.SimulationParameters, retirementYear, retirementAge int) decimal.Decimal {
	years := p.HorizonMaxAge - retirementAge
	switch p.Strategy.Kind {
	case domain.StrategyTargetEndAge:
		years = p.Strategy.MaxAge - retirementAge
	case domain.StrategyFixedAmount:
		// A stream that realizes depletion only needs funding up to the
		// year it ran dry.
		if fd := result.FirstDepleted(); fd != nil && fd.Year > retirementYear {
			years = fd.Year - retirementYear
		}
	}
	if years <= 0 {
		return decimal.Zero
	}

	monthlyWithdrawal := withdrawalAtRetirement(result, p, retirementYear)
	if monthlyWithdrawal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	realRate := annuity.RealRate(p.GrowthRate(), p.InflationRate())
	monthlyReal := annuity.MonthlyRate(realRate)
	return annuity.PresentValueOfAnnuity(monthlyWithdrawal, monthlyReal, years*12)
}

// withdrawalAtRetirement returns the monthly withdrawal in effect at the
// retirement boundary.
func withdrawalAtRetirement(result *domain.SimulationResult, p domain.SimulationParameters, retirementYear int) decimal.Decimal {
	if p.Strategy.Kind == domain.StrategyFixedAmount {
		return p.Strategy.MonthlyWithdrawal
	}
	snap := result.AtOrAfterYear(retirementYear)
	if snap == nil {
		return decimal.Zero
	}
	return snap.EndingMonthlyWithdrawal
}

// normalizedBars scales capital-at-retirement against needed capital onto a
// shared 0-100 range, with the larger of the two pinned at 100.
func normalizedBars(have, need decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if have.IsNegative() {
		have = decimal.Zero
	}
	if need.IsNegative() {
		need = decimal.Zero
	}
	max := have
	if need.GreaterThan(max) {
		max = need
	}
	if max.IsZero() {
		return decimal.Zero, decimal.Zero
	}
	return have.Div(max).Mul(decimalHundred), need.Div(max).Mul(decimalHundred)
}
