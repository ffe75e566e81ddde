package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/domain"
	"github.com/eriiiic/Retirement/pkg/annuity"
)

// resolvedStrategy is what the projection loop consumes: the effective
// starting monthly withdrawal plus the recomputation rule the loop invokes
// at its checkpoints. The loop dispatches on Kind exhaustively; there is no
// virtual dispatch between strategy behaviors.
type resolvedStrategy struct {
	Kind domain.StrategyKind

	// InitialMonthlyWithdrawal seeds the loop. For target_end_age it is the
	// closed-form estimate; the loop re-solves it once, at the retirement
	// boundary, from the capital actually reached there.
	InitialMonthlyWithdrawal decimal.Decimal

	// EstimatedCapitalAtRetirement is the closed-form future value of the
	// pre-retirement phase. The loop reconciles against it when entering the
	// retirement year, and summary statistics report it.
	EstimatedCapitalAtRetirement decimal.Decimal

	// MonthlyRateOfCapital is the per-month withdrawal fraction for
	// rate_of_capital (annual percent / 100 / 12); zero otherwise.
	MonthlyRateOfCapital decimal.Decimal
}

// resolveStrategy converts the parameter set's withdrawal strategy into the
// effective schedule. Solved amounts are clamped to a zero floor so a
// degenerate capital estimate can never push a negative withdrawal into the
// loop.
func (e *ProjectionEngine) resolveStrategy(p domain.SimulationParameters) resolvedStrategy {
	rs := resolvedStrategy{Kind: p.Strategy.Kind}
	rs.EstimatedCapitalAtRetirement = closedFormCapitalAtRetirement(p)

	switch p.Strategy.Kind {
	case domain.StrategyFixedAmount:
		rs.InitialMonthlyWithdrawal = p.Strategy.MonthlyWithdrawal

	case domain.StrategyTargetEndAge:
		rs.InitialMonthlyWithdrawal = solveTargetEndAgeWithdrawal(p, rs.EstimatedCapitalAtRetirement)

	case domain.StrategyRateOfCapital:
		rs.MonthlyRateOfCapital = p.Strategy.AnnualRatePercent.
			Div(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(12))
		// The loop recomputes the amount from current capital at the start
		// of every decumulation month; the seed is only a display value.
		rs.InitialMonthlyWithdrawal = rs.EstimatedCapitalAtRetirement.Mul(rs.MonthlyRateOfCapital)
	}

	if rs.InitialMonthlyWithdrawal.IsNegative() {
		e.Logger.Warnf("resolved withdrawal was negative, clamping to zero")
		rs.InitialMonthlyWithdrawal = decimal.Zero
	}
	return rs
}

// closedFormCapitalAtRetirement estimates capital at the retirement boundary
// with the annuity future-value identity, under the parameter set's
// compounding convention.
func closedFormCapitalAtRetirement(p domain.SimulationParameters) decimal.Decimal {
	yearsToRetirement := p.RetirementAge() - p.CurrentAge
	if yearsToRetirement <= 0 {
		return p.InitialCapital
	}

	if p.Compounding == domain.CompoundingAnnual {
		annualContribution := p.MonthlyContribution.Mul(decimal.NewFromInt(12))
		return annuity.FutureValue(p.InitialCapital, p.GrowthRate(), yearsToRetirement, annualContribution)
	}

	monthlyRate := annuity.MonthlyRate(p.GrowthRate())
	return annuity.FutureValue(p.InitialCapital, monthlyRate, yearsToRetirement*12, p.MonthlyContribution)
}

// solveTargetEndAgeWithdrawal computes the constant monthly withdrawal that
// exhausts the given retirement capital by the strategy's MaxAge, using the
// Fisher real rate so the amount can be inflation-grown during decumulation
// without overshooting.
func solveTargetEndAgeWithdrawal(p domain.SimulationParameters, capitalAtRetirement decimal.Decimal) decimal.Decimal {
	retirementAge := p.RetirementAge()
	years := p.Strategy.MaxAge - retirementAge
	if years <= 0 || capitalAtRetirement.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	realRate := annuity.RealRate(p.GrowthRate(), p.InflationRate())
	if p.Compounding == domain.CompoundingAnnual {
		annual := annuity.PaymentForAnnuity(capitalAtRetirement, realRate, years)
		return annual.Div(decimal.NewFromInt(12))
	}
	monthlyReal := annuity.MonthlyRate(realRate)
	return annuity.PaymentForAnnuity(capitalAtRetirement, monthlyReal, years*12)
}
