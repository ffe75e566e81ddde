package compare

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eriiiic/Retirement/internal/calculation"
	"github.com/eriiiic/Retirement/internal/config"
	"github.com/eriiiic/Retirement/internal/domain"
)

func scenarioFile() *config.ScenarioFile {
	base := domain.SimulationParameters{
		InitialCapital:             decimal.NewFromInt(150000),
		MonthlyContribution:        decimal.NewFromInt(500),
		AnnualGrowthRatePercent:    decimal.NewFromInt(7),
		AnnualInflationRatePercent: decimal.NewFromInt(2),
		CurrentAge:                 46,
		CurrentYear:                2025,
		RetirementInput:            60,
		Strategy: domain.WithdrawalStrategy{
			Kind:              domain.StrategyFixedAmount,
			MonthlyWithdrawal: decimal.NewFromInt(2500),
		},
	}

	richer := base
	richer.MonthlyContribution = decimal.NewFromInt(1000)

	return &config.ScenarioFile{Scenarios: []config.Scenario{
		{Name: "Base", Parameters: base},
		{Name: "Save More", Parameters: richer},
	}}
}

func TestCompareAgainstFirstScenario(t *testing.T) {
	ce := NewCompareEngine(calculation.NewProjectionEngine())

	compSet, err := ce.Compare(context.Background(), scenarioFile(), CompareOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Base", compSet.BaseScenarioName)
	require.NotNil(t, compSet.BaseResult)
	require.Len(t, compSet.AlternativeResults, 1)

	alt := compSet.AlternativeResults[0]
	assert.Equal(t, "Save More", alt.ScenarioName)

	// Doubling the contribution ends richer everywhere.
	assert.True(t, alt.FinalCapitalDiffFromBase.IsPositive())
	assert.True(t, alt.RetirementCapitalDiffBase.IsPositive())
	assert.True(t, alt.FinalCapitalPctFromBase.IsPositive())

	// Base carries zero deltas.
	assert.True(t, compSet.BaseResult.FinalCapitalDiffFromBase.IsZero())
}

func TestCompareNamedBase(t *testing.T) {
	ce := NewCompareEngine(calculation.NewProjectionEngine())

	compSet, err := ce.Compare(context.Background(), scenarioFile(), CompareOptions{
		BaseScenarioName: "Save More",
	})
	require.NoError(t, err)
	assert.Equal(t, "Save More", compSet.BaseScenarioName)
	require.Len(t, compSet.AlternativeResults, 1)
	assert.Equal(t, "Base", compSet.AlternativeResults[0].ScenarioName)
	assert.True(t, compSet.AlternativeResults[0].FinalCapitalDiffFromBase.IsNegative())
}

func TestCompareUnknownBase(t *testing.T) {
	ce := NewCompareEngine(calculation.NewProjectionEngine())
	_, err := ce.Compare(context.Background(), scenarioFile(), CompareOptions{
		BaseScenarioName: "Ghost",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found")
}

func TestCompareWithTemplates(t *testing.T) {
	ce := NewCompareEngine(calculation.NewProjectionEngine())

	compSet, err := ce.Compare(context.Background(), scenarioFile(), CompareOptions{
		Templates: []string{"save_10pct_more", "retire_1yr_later"},
	})
	require.NoError(t, err)

	// One file alternative plus two derived from templates.
	require.Len(t, compSet.AlternativeResults, 3)
	names := make([]string, 0, 3)
	for _, alt := range compSet.AlternativeResults {
		names = append(names, alt.ScenarioName)
	}
	assert.Contains(t, names, "Base (save_10pct_more)")
	assert.Contains(t, names, "Base (retire_1yr_later)")
}

func TestCompareUnknownTemplate(t *testing.T) {
	ce := NewCompareEngine(calculation.NewProjectionEngine())
	_, err := ce.Compare(context.Background(), scenarioFile(), CompareOptions{
		Templates: []string{"win_lottery"},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "template win_lottery not found")
}

func TestCompareHonorsCancellation(t *testing.T) {
	ce := NewCompareEngine(calculation.NewProjectionEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ce.Compare(ctx, scenarioFile(), CompareOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormatterOutputs(t *testing.T) {
	ce := NewCompareEngine(calculation.NewProjectionEngine())
	compSet, err := ce.Compare(context.Background(), scenarioFile(), CompareOptions{})
	require.NoError(t, err)

	t.Run("table", func(t *testing.T) {
		tf := &TableFormatter{}
		text := tf.Format(compSet)
		assert.Contains(t, text, "RETIREMENT SCENARIO COMPARISON")
		assert.Contains(t, text, "Base (base)")
		assert.Contains(t, text, "Save More")
		assert.Contains(t, text, "COMPARISON TO BASE")
	})

	t.Run("csv", func(t *testing.T) {
		cf := &CSVFormatter{}
		rendered, err := cf.Format(compSet)
		require.NoError(t, err)
		text := string(rendered)
		assert.Contains(t, text, "Scenario,IsBase")
		assert.Contains(t, text, "Base,true")
		assert.Contains(t, text, "Save More,false")
	})

	t.Run("json", func(t *testing.T) {
		jf := &JSONFormatter{}
		rendered, err := jf.Format(compSet)
		require.NoError(t, err)
		assert.Contains(t, string(rendered), `"baseScenarioName": "Base"`)
	})
}
