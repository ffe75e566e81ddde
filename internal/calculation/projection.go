package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/domain"
	"github.com/eriiiic/Retirement/pkg/annuity"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalSix    = decimal.NewFromInt(6)
	decimalTwelve = decimal.NewFromInt(12)
)

// transitionMonthIndex splits the retirement year: months before it behave
// as accumulation, months from it on as decumulation. With no birth-month
// data a mid-year retirement date is the closest approximation.
const transitionMonthIndex = 6

// projectionState carries the loop's working variables across years.
type projectionState struct {
	capital   decimal.Decimal
	principal decimal.Decimal // capital excluding all interest earned

	monthlyContribution decimal.Decimal
	monthlyWithdrawal   decimal.Decimal

	cumulativeInvested  decimal.Decimal
	cumulativeWithdrawn decimal.Decimal

	depleted         bool
	withdrawalSolved bool // target_end_age solves exactly once, at retirement
}

// runProjection walks the calendar from the current age to the horizon and
// emits one snapshot per year. Parameters must already be normalized and
// validated.
func (e *ProjectionEngine) runProjection(p domain.SimulationParameters, strat resolvedStrategy) domain.SimulationResult {
	retirementYear := p.RetirementYear()
	years := p.HorizonMaxAge - p.CurrentAge + 1

	st := &projectionState{
		capital:             p.InitialCapital,
		principal:           p.InitialCapital,
		monthlyContribution: p.MonthlyContribution,
		monthlyWithdrawal:   strat.InitialMonthlyWithdrawal,
		cumulativeInvested:  decimal.Zero,
		cumulativeWithdrawn: decimal.Zero,
	}

	snapshots := make([]domain.YearlySnapshot, 0, years)
	for i := 0; i < years; i++ {
		year := p.CurrentYear + i
		age := p.CurrentAge + i

		// Retirement-year reconciliation: the closed-form estimate must
		// never pull the curve down below its natural compounded path, so
		// the larger of the two wins.
		if year == retirementYear && i > 0 && strat.EstimatedCapitalAtRetirement.GreaterThan(st.capital) {
			e.Logger.Debugf("retirement year %d: lifting capital %s to closed-form estimate %s",
				year, st.capital.StringFixed(2), strat.EstimatedCapitalAtRetirement.StringFixed(2))
			st.capital = strat.EstimatedCapitalAtRetirement
		}

		var snap domain.YearlySnapshot
		if p.Compounding == domain.CompoundingAnnual {
			snap = e.simulateYearAnnual(p, strat, st, year, retirementYear)
		} else {
			snap = e.simulateYearMonthly(p, strat, st, year, retirementYear)
		}
		snap.Year = year
		snap.Age = age
		snap.IsRetired = year >= retirementYear
		snap.Capital = st.capital
		snap.CapitalExcludingInterest = st.principal
		snap.NetCashFlowExcludingInterest = snap.ContributionThisYear.Sub(snap.WithdrawalThisYear)
		snap.EndingMonthlyContribution = st.monthlyContribution
		snap.EndingMonthlyWithdrawal = st.monthlyWithdrawal
		snap.CumulativeInvested = st.cumulativeInvested
		snap.CumulativeWithdrawn = st.cumulativeWithdrawn
		snapshots = append(snapshots, snap)
	}

	return domain.SimulationResult{Snapshots: snapshots}
}

// simulateYearMonthly advances the state through twelve monthly steps.
func (e *ProjectionEngine) simulateYearMonthly(p domain.SimulationParameters, strat resolvedStrategy, st *projectionState, year, retirementYear int) domain.YearlySnapshot {
	var snap domain.YearlySnapshot
	snap.ContributionThisYear = decimal.Zero
	snap.WithdrawalThisYear = decimal.Zero
	snap.InterestThisYear = decimal.Zero

	monthlyGrowth := annuity.MonthlyRate(p.GrowthRate())
	monthlyInflation := annuity.MonthlyRate(p.InflationRate())

	for m := 0; m < 12; m++ {
		decumulating := year > retirementYear || (year == retirementYear && m >= transitionMonthIndex)

		if !decumulating {
			if st.depleted {
				continue
			}
			interest := st.capital.Mul(monthlyGrowth)
			st.capital = st.capital.Add(interest)
			snap.InterestThisYear = snap.InterestThisYear.Add(interest)

			st.capital = st.capital.Add(st.monthlyContribution)
			st.principal = st.principal.Add(st.monthlyContribution)
			st.cumulativeInvested = st.cumulativeInvested.Add(st.monthlyContribution)
			snap.ContributionThisYear = snap.ContributionThisYear.Add(st.monthlyContribution)

			st.monthlyContribution = st.monthlyContribution.Mul(decimalOne.Add(monthlyInflation))
			continue
		}

		// First decumulation month: the target-end-age amount is solved
		// here, from the capital the loop actually reached, and never
		// recomputed afterwards (only inflation-grown).
		if strat.Kind == domain.StrategyTargetEndAge && !st.withdrawalSolved {
			st.monthlyWithdrawal = e.solveAtRetirementBoundary(p, st.capital, year, m)
			st.withdrawalSolved = true
		}

		if st.depleted || st.capital.LessThanOrEqual(decimal.Zero) {
			st.capital = decimal.Zero
			st.depleted = true
			continue
		}

		interest := st.capital.Mul(monthlyGrowth)
		st.capital = st.capital.Add(interest)
		snap.InterestThisYear = snap.InterestThisYear.Add(interest)

		// rate_of_capital is the one strategy re-derived continuously: a
		// fresh fraction of the balance at the start of every month.
		if strat.Kind == domain.StrategyRateOfCapital {
			st.monthlyWithdrawal = st.capital.Mul(strat.MonthlyRateOfCapital)
		}

		withdrawal := st.monthlyWithdrawal
		if withdrawal.GreaterThan(st.capital) {
			withdrawal = st.capital
		}
		st.capital = st.capital.Sub(withdrawal)
		st.cumulativeWithdrawn = st.cumulativeWithdrawn.Add(withdrawal)
		snap.WithdrawalThisYear = snap.WithdrawalThisYear.Add(withdrawal)
		st.principal = st.principal.Sub(withdrawal)
		if st.principal.IsNegative() {
			st.principal = decimal.Zero
		}

		if st.capital.LessThanOrEqual(decimal.Zero) {
			st.capital = decimal.Zero
			st.principal = decimal.Zero
			st.depleted = true
			continue
		}

		st.monthlyWithdrawal = st.monthlyWithdrawal.Mul(decimalOne.Add(monthlyInflation))
	}

	return snap
}

// simulateYearAnnual applies the year's cash flows as lump sums, interest
// once at year end on the post-cash-flow balance, then one annual inflation
// adjustment of the active rates.
func (e *ProjectionEngine) simulateYearAnnual(p domain.SimulationParameters, strat resolvedStrategy, st *projectionState, year, retirementYear int) domain.YearlySnapshot {
	var snap domain.YearlySnapshot
	snap.ContributionThisYear = decimal.Zero
	snap.WithdrawalThisYear = decimal.Zero
	snap.InterestThisYear = decimal.Zero

	annualGrowth := p.GrowthRate()
	annualInflation := p.InflationRate()

	contribute := func(months decimal.Decimal) {
		amount := st.monthlyContribution.Mul(months)
		st.capital = st.capital.Add(amount)
		st.principal = st.principal.Add(amount)
		st.cumulativeInvested = st.cumulativeInvested.Add(amount)
		snap.ContributionThisYear = amount
	}
	withdraw := func(months decimal.Decimal) {
		if strat.Kind == domain.StrategyRateOfCapital {
			st.monthlyWithdrawal = st.capital.Mul(strat.MonthlyRateOfCapital)
		}
		amount := st.monthlyWithdrawal.Mul(months)
		if amount.GreaterThan(st.capital) {
			amount = st.capital
		}
		st.capital = st.capital.Sub(amount)
		st.cumulativeWithdrawn = st.cumulativeWithdrawn.Add(amount)
		snap.WithdrawalThisYear = amount
		st.principal = st.principal.Sub(amount)
		if st.principal.IsNegative() {
			st.principal = decimal.Zero
		}
	}

	switch {
	case year < retirementYear:
		if st.depleted {
			return snap
		}
		contribute(decimalTwelve)

	case year == retirementYear:
		if !st.depleted {
			contribute(decimalSix)
		}
		if strat.Kind == domain.StrategyTargetEndAge && !st.withdrawalSolved {
			st.monthlyWithdrawal = e.solveAtRetirementBoundary(p, st.capital, year, transitionMonthIndex)
			st.withdrawalSolved = true
		}
		if st.depleted || st.capital.LessThanOrEqual(decimal.Zero) {
			st.capital = decimal.Zero
			st.depleted = true
			return snap
		}
		withdraw(decimalSix)

	default:
		if st.depleted || st.capital.LessThanOrEqual(decimal.Zero) {
			st.capital = decimal.Zero
			st.depleted = true
			return snap
		}
		withdraw(decimalTwelve)
	}

	interest := st.capital.Mul(annualGrowth)
	st.capital = st.capital.Add(interest)
	snap.InterestThisYear = interest

	if st.capital.LessThanOrEqual(decimal.Zero) {
		st.capital = decimal.Zero
		st.principal = decimal.Zero
		st.depleted = true
		return snap
	}

	inflationFactor := decimalOne.Add(annualInflation)
	if year < retirementYear {
		st.monthlyContribution = st.monthlyContribution.Mul(inflationFactor)
	} else if year == retirementYear {
		st.monthlyContribution = st.monthlyContribution.Mul(inflationFactor)
		st.monthlyWithdrawal = st.monthlyWithdrawal.Mul(inflationFactor)
	} else {
		st.monthlyWithdrawal = st.monthlyWithdrawal.Mul(inflationFactor)
	}

	return snap
}

// solveAtRetirementBoundary re-solves the target-end-age withdrawal from the
// capital actually reached at the boundary, over the decumulation months
// that remain until the strategy's MaxAge.
func (e *ProjectionEngine) solveAtRetirementBoundary(p domain.SimulationParameters, capital decimal.Decimal, year, month int) decimal.Decimal {
	retirementAge := p.RetirementAge()
	remainingMonths := (p.Strategy.MaxAge-retirementAge)*12 + (12 - month)
	if remainingMonths <= 0 || capital.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	realRate := annuity.RealRate(p.GrowthRate(), p.InflationRate())
	if p.Compounding == domain.CompoundingAnnual {
		years := p.Strategy.MaxAge - retirementAge
		if years <= 0 {
			return decimal.Zero
		}
		return annuity.PaymentForAnnuity(capital, realRate, years).Div(decimalTwelve)
	}

	monthlyReal := annuity.MonthlyRate(realRate)
	payment := annuity.PaymentForAnnuity(capital, monthlyReal, remainingMonths)
	if payment.IsNegative() {
		e.Logger.Warnf("solved withdrawal was negative at year %d, clamping to zero", year)
		return decimal.Zero
	}
	return payment
}
