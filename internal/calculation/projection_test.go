package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eriiiic/Retirement/internal/domain"
	"github.com/eriiiic/Retirement/pkg/annuity"
)

func baseParams() domain.SimulationParameters {
	return domain.SimulationParameters{
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
}

func TestProjectRejectsInvalidParameters(t *testing.T) {
	engine := NewProjectionEngine()
	p := baseParams()
	p.RetirementInput = 30 // before current age

	_, err := engine.Project(p)
	require.Error(t, err)
	assert.ErrorContains(t, err, "retirement")
}

func TestProjectIsDeterministic(t *testing.T) {
	engine := NewProjectionEngine()
	p := baseParams()

	first, err := engine.Project(p)
	require.NoError(t, err)
	second, err := engine.Project(p)
	require.NoError(t, err)

	require.Equal(t, len(first.Snapshots), len(second.Snapshots))
	for i := range first.Snapshots {
		assert.True(t, first.Snapshots[i].Capital.Equal(second.Snapshots[i].Capital),
			"year %d differs", first.Snapshots[i].Year)
	}
}

func TestSnapshotSequenceShape(t *testing.T) {
	engine := NewProjectionEngine()
	p := baseParams()

	result, err := engine.Project(p)
	require.NoError(t, err)

	// One snapshot per year from the current age to the horizon.
	require.Len(t, result.Snapshots, 95-46+1)
	assert.Equal(t, 2025, result.First().Year)
	assert.Equal(t, 46, result.First().Age)
	assert.Equal(t, 95, result.Last().Age)

	for i := 1; i < len(result.Snapshots); i++ {
		assert.Equal(t, result.Snapshots[i-1].Year+1, result.Snapshots[i].Year)
	}
}

func TestMonotonicAccumulation(t *testing.T) {
	engine := NewProjectionEngine()
	p := baseParams()

	result, err := engine.Project(p)
	require.NoError(t, err)

	retirementYear := p.Normalized().RetirementYear()
	var prev decimal.Decimal
	for i, snap := range result.Snapshots {
		if snap.Year >= retirementYear {
			break
		}
		if i > 0 {
			assert.True(t, snap.Capital.GreaterThanOrEqual(prev),
				"capital decreased during accumulation at year %d", snap.Year)
		}
		prev = snap.Capital
	}
}

func TestScenarioSustainedToHorizon(t *testing.T) {
	// 150k at 7% with contributions from 46 to 60, then a solved withdrawal
	// until 95: the curve reaches the horizon without depleting and without
	// a boundary discontinuity.
	engine := NewProjectionEngine()
	p := baseParams()
	norm := p.Normalized()

	result, err := engine.Project(p)
	require.NoError(t, err)

	retirementYear := norm.RetirementYear()
	atRetirement := result.AtOrAfterYear(retirementYear)
	require.NotNil(t, atRetirement)

	// Capital at retirement exceeds everything paid in.
	paidIn := atRetirement.CumulativeInvested.Add(p.InitialCapital)
	assert.True(t, atRetirement.Capital.GreaterThan(paidIn),
		"capital at retirement %s should exceed principal %s",
		atRetirement.Capital.StringFixed(2), paidIn.StringFixed(2))

	// The retirement-year snapshot stays continuous with the prior year's
	// natural growth: no drop bigger than 1%.
	var prior *domain.YearlySnapshot
	for i := range result.Snapshots {
		if result.Snapshots[i].Year == retirementYear-1 {
			prior = &result.Snapshots[i]
		}
	}
	require.NotNil(t, prior)
	naturalFloor := prior.Capital.Mul(decimal.NewFromFloat(0.99))
	assert.True(t, atRetirement.Capital.GreaterThan(naturalFloor),
		"retirement-year capital %s dropped more than 1%% below prior year %s",
		atRetirement.Capital.StringFixed(2), prior.Capital.StringFixed(2))

	assert.Equal(t, 95, result.Last().Age)

	// The solved stream is built to exhaust at the horizon, not before: any
	// depletion lands in the final year or not at all.
	summary, err := engine.Summarize(result, p)
	require.NoError(t, err)
	if summary.DepletionAge != nil {
		assert.GreaterOrEqual(t, *summary.DepletionAge, 94)
	}
}

func TestScenarioImmediateDepletion(t *testing.T) {
	// Nothing saved, no growth, a fixed withdrawal: capital is gone in the
	// first retirement month and the depletion year is the retirement year.
	engine := NewProjectionEngine()
	p := domain.SimulationParameters{
		InitialCapital:             decimal.Zero,
		MonthlyContribution:        decimal.Zero,
		AnnualGrowthRatePercent:    decimal.Zero,
		AnnualInflationRatePercent: decimal.Zero,
		CurrentAge:                 40,
		CurrentYear:                2025,
		RetirementInput:            41,
		HorizonMaxAge:              95,
		Strategy: domain.WithdrawalStrategy{
			Kind:              domain.StrategyFixedAmount,
			MonthlyWithdrawal: decimal.NewFromInt(1000),
		},
	}

	result, err := engine.Project(p)
	require.NoError(t, err)

	summary, err := engine.Summarize(result, p)
	require.NoError(t, err)

	retirementYear := p.Normalized().RetirementYear()
	require.True(t, summary.IsDepleted)
	require.NotNil(t, summary.DepletionYear)
	assert.Equal(t, retirementYear, *summary.DepletionYear)

	for _, snap := range result.Snapshots {
		assert.True(t, snap.Capital.IsZero(), "capital must stay zero at year %d", snap.Year)
	}
}

func TestAbsorbingDepletion(t *testing.T) {
	// A withdrawal far beyond what the capital sustains: after the
	// depletion year every snapshot is frozen at zero with no flows.
	engine := NewProjectionEngine()
	p := domain.SimulationParameters{
		InitialCapital:             decimal.NewFromInt(50000),
		MonthlyContribution:        decimal.Zero,
		AnnualGrowthRatePercent:    decimal.NewFromInt(2),
		AnnualInflationRatePercent: decimal.Zero,
		CurrentAge:                 59,
		CurrentYear:                2025,
		RetirementInput:            60,
		HorizonMaxAge:              80,
		Strategy: domain.WithdrawalStrategy{
			Kind:              domain.StrategyFixedAmount,
			MonthlyWithdrawal: decimal.NewFromInt(5000),
		},
	}

	result, err := engine.Project(p)
	require.NoError(t, err)

	depleted := result.FirstDepleted()
	require.NotNil(t, depleted)

	past := false
	for _, snap := range result.Snapshots {
		if snap.Year == depleted.Year {
			past = true
			continue
		}
		if !past {
			continue
		}
		assert.True(t, snap.Capital.IsZero(), "year %d capital", snap.Year)
		assert.True(t, snap.InterestThisYear.IsZero(), "year %d interest", snap.Year)
		assert.True(t, snap.ContributionThisYear.IsZero(), "year %d contribution", snap.Year)
		assert.True(t, snap.WithdrawalThisYear.IsZero(), "year %d withdrawal", snap.Year)
	}
	assert.True(t, past, "depletion year missing from sequence")
}

func TestRateOfCapitalTracksBalance(t *testing.T) {
	// With no growth the balance declines, so the recomputed withdrawal
	// declines with it, month over month and year over year.
	engine := NewProjectionEngine()
	p := domain.SimulationParameters{
		InitialCapital:             decimal.NewFromInt(500000),
		MonthlyContribution:        decimal.Zero,
		AnnualGrowthRatePercent:    decimal.Zero,
		AnnualInflationRatePercent: decimal.Zero,
		CurrentAge:                 59,
		CurrentYear:                2025,
		RetirementInput:            60,
		HorizonMaxAge:              90,
		Strategy: domain.WithdrawalStrategy{
			Kind:              domain.StrategyRateOfCapital,
			AnnualRatePercent: decimal.NewFromInt(4),
		},
	}

	result, err := engine.Project(p)
	require.NoError(t, err)

	retirementYear := p.Normalized().RetirementYear()
	var prev decimal.Decimal
	seen := 0
	for _, snap := range result.Snapshots {
		if snap.Year <= retirementYear {
			continue
		}
		if seen > 0 {
			assert.True(t, snap.EndingMonthlyWithdrawal.LessThan(prev),
				"withdrawal should shrink with the balance at year %d", snap.Year)
		}
		prev = snap.EndingMonthlyWithdrawal
		seen++
	}
	assert.Greater(t, seen, 5)

	// A fraction of the balance can never exhaust it.
	assert.True(t, result.Last().Capital.IsPositive())
}

func TestCompoundingConventions(t *testing.T) {
	t.Run("lump sum grows identically under both conventions", func(t *testing.T) {
		// The monthly rate is the annual-equivalent (1+r)^(1/12)-1, so a
		// pure lump sum compounds to the same value either way.
		engine := NewProjectionEngine()
		p := domain.SimulationParameters{
			InitialCapital:             decimal.NewFromInt(100000),
			MonthlyContribution:        decimal.Zero,
			AnnualGrowthRatePercent:    decimal.NewFromInt(5),
			AnnualInflationRatePercent: decimal.Zero,
			CurrentAge:                 40,
			CurrentYear:                2025,
			RetirementInput:            50,
			HorizonMaxAge:              50,
			Strategy: domain.WithdrawalStrategy{
				Kind:              domain.StrategyFixedAmount,
				MonthlyWithdrawal: decimal.Zero,
			},
		}

		p.Compounding = domain.CompoundingMonthly
		monthly, err := engine.Project(p)
		require.NoError(t, err)

		p.Compounding = domain.CompoundingAnnual
		annual, err := engine.Project(p)
		require.NoError(t, err)

		// Annual mode is exact: P*(1.05)^n.
		fourYears := annual.Snapshots[3].Capital
		exact := decimal.NewFromInt(100000).Mul(decimal.NewFromFloat(1.05).Pow(decimal.NewFromInt(4)))
		assert.True(t, fourYears.Sub(exact).Abs().LessThan(decimal.NewFromFloat(0.01)),
			"annual mode should match the closed form, got %s", fourYears.StringFixed(2))

		// Monthly mode agrees within the float bridge's tolerance.
		monthlyFour := monthly.Snapshots[3].Capital
		relTol := exact.Mul(decimal.NewFromFloat(0.0001))
		assert.True(t, monthlyFour.Sub(exact).Abs().LessThan(relTol),
			"monthly mode diverged from the closed form: %s vs %s",
			monthlyFour.StringFixed(2), exact.StringFixed(2))
	})

	t.Run("annual mode front-loads contribution interest", func(t *testing.T) {
		// Annual mode credits every contribution a full year of interest
		// (lump sum before year-end interest); monthly mode only the
		// remaining months. Annual therefore accumulates at least as much.
		engine := NewProjectionEngine()
		p := baseParams()

		p.Compounding = domain.CompoundingMonthly
		monthly, err := engine.Project(p)
		require.NoError(t, err)

		p.Compounding = domain.CompoundingAnnual
		annual, err := engine.Project(p)
		require.NoError(t, err)

		retirementYear := p.Normalized().RetirementYear()
		m := monthly.AtOrAfterYear(retirementYear)
		a := annual.AtOrAfterYear(retirementYear)
		require.NotNil(t, m)
		require.NotNil(t, a)
		assert.True(t, a.Capital.GreaterThanOrEqual(m.Capital),
			"annual %s vs monthly %s", a.Capital.StringFixed(2), m.Capital.StringFixed(2))
	})
}

func TestTargetEndAgeSolvesFromActualCapital(t *testing.T) {
	engine := NewProjectionEngine()
	p := baseParams()
	norm := p.Normalized()

	result, err := engine.Project(p)
	require.NoError(t, err)

	retirementYear := norm.RetirementYear()
	atRetirement := result.AtOrAfterYear(retirementYear)
	require.NotNil(t, atRetirement)
	assert.True(t, atRetirement.EndingMonthlyWithdrawal.IsPositive())

	// The solved stream must neither deplete early nor leave the capital
	// still growing unboundedly: final capital is a small fraction of the
	// retirement capital.
	final := result.Last().Capital
	assert.True(t, final.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, final.LessThan(atRetirement.Capital),
		"final capital %s should be drawn well below retirement capital %s",
		final.StringFixed(2), atRetirement.Capital.StringFixed(2))
}

func TestPrincipalTrackIgnoresInterest(t *testing.T) {
	engine := NewProjectionEngine()
	p := baseParams()

	result, err := engine.Project(p)
	require.NoError(t, err)

	norm := p.Normalized()
	retirementYear := norm.RetirementYear()
	for _, snap := range result.Snapshots {
		if snap.Year >= retirementYear {
			break
		}
		expected := p.InitialCapital.Add(snap.CumulativeInvested)
		assert.True(t, snap.CapitalExcludingInterest.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
			"principal track at year %d: %s vs %s", snap.Year,
			snap.CapitalExcludingInterest.StringFixed(2), expected.StringFixed(2))
		assert.True(t, snap.Capital.GreaterThanOrEqual(snap.CapitalExcludingInterest))
	}
}

func TestStrategyResolution(t *testing.T) {
	engine := NewProjectionEngine()

	t.Run("fixed amount passes through", func(t *testing.T) {
		p := baseParams()
		p.Strategy = domain.WithdrawalStrategy{
			Kind:              domain.StrategyFixedAmount,
			MonthlyWithdrawal: decimal.NewFromInt(2500),
		}
		rs := engine.resolveStrategy(p.Normalized())
		assert.True(t, rs.InitialMonthlyWithdrawal.Equal(decimal.NewFromInt(2500)))
	})

	t.Run("rate of capital derives monthly fraction", func(t *testing.T) {
		p := baseParams()
		p.Strategy = domain.WithdrawalStrategy{
			Kind:              domain.StrategyRateOfCapital,
			AnnualRatePercent: decimal.NewFromInt(4),
		}
		rs := engine.resolveStrategy(p.Normalized())
		expected := decimal.NewFromFloat(4.0 / 100.0 / 12.0)
		assert.True(t, rs.MonthlyRateOfCapital.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.000001)))
	})

	t.Run("target end age seeds from the closed form", func(t *testing.T) {
		p := baseParams().Normalized()
		rs := engine.resolveStrategy(p)
		require.True(t, rs.InitialMonthlyWithdrawal.IsPositive())

		// Seed is consistent with the closed-form capital estimate: paying
		// it back over the decumulation months recovers the estimate.
		realRate := annuity.RealRate(p.GrowthRate(), p.InflationRate())
		monthlyReal := annuity.MonthlyRate(realRate)
		months := (p.Strategy.MaxAge - p.RetirementAge()) * 12
		back := annuity.PresentValueOfAnnuity(rs.InitialMonthlyWithdrawal, monthlyReal, months)
		tolerance := rs.EstimatedCapitalAtRetirement.Mul(decimal.NewFromFloat(0.0001))
		assert.True(t, back.Sub(rs.EstimatedCapitalAtRetirement).Abs().LessThan(tolerance))
	})
}
