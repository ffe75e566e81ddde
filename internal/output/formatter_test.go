package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eriiiic/Retirement/internal/calculation"
	"github.com/eriiiic/Retirement/internal/domain"
)

func sampleReport(t *testing.T) *domain.ProjectionReport {
	t.Helper()
	engine := calculation.NewProjectionEngine()
	report, err := engine.RunScenario("Sample", domain.SimulationParameters{
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
	})
	require.NoError(t, err)
	return report
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", "pdf", "CSV", ""} {
		f, err := GetFormatterByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, f)
	}

	_, err := GetFormatterByName("yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestConsoleFormatter(t *testing.T) {
	report := sampleReport(t)
	rendered, err := (ConsoleFormatter{}).Format(report)
	require.NoError(t, err)

	text := string(rendered)
	assert.Contains(t, text, "Sample")
	assert.Contains(t, text, "PARAMETERS")
	assert.Contains(t, text, "SUMMARY")
	assert.Contains(t, text, "HAVE VS NEED")
	assert.Contains(t, text, "YEAR BY YEAR")
	assert.Contains(t, text, "2025")
	assert.Contains(t, text, "target end age 95")
}

func TestCSVFormatter(t *testing.T) {
	report := sampleReport(t)
	rendered, err := (CSVFormatter{}).Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(rendered))).ReadAll()
	require.NoError(t, err)

	// Header plus one row per projected year.
	require.Len(t, records, len(report.Result.Snapshots)+1)
	assert.Equal(t, "Year", records[0][0])
	assert.Equal(t, "2025", records[1][0])
	assert.Equal(t, "46", records[1][1])
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	report := sampleReport(t)
	rendered, err := (JSONFormatter{}).Format(report)
	require.NoError(t, err)

	var back domain.ProjectionReport
	require.NoError(t, json.Unmarshal(rendered, &back))
	assert.Equal(t, report.Name, back.Name)
	assert.Len(t, back.Result.Snapshots, len(report.Result.Snapshots))
	assert.True(t, back.Summary.FinalCapital.Equal(report.Summary.FinalCapital))
}

func TestPDFFormatterProducesDocument(t *testing.T) {
	report := sampleReport(t)
	rendered, err := (PDFFormatter{}).Format(report)
	require.NoError(t, err)
	require.NotEmpty(t, rendered)
	assert.True(t, strings.HasPrefix(string(rendered), "%PDF"), "output should be a PDF document")
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-9876.54, "$-9,876.54"},
		{999, "$999.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCurrency(decimal.NewFromFloat(tt.in)))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "7.00%", FormatPercentage(decimal.NewFromInt(7)))
	assert.Equal(t, "2.50%", FormatPercentage(decimal.NewFromFloat(2.5)))
}

func TestSortSnapshots(t *testing.T) {
	snaps := []domain.YearlySnapshot{
		{Year: 2025, Age: 40, Capital: decimal.NewFromInt(300)},
		{Year: 2026, Age: 41, Capital: decimal.NewFromInt(100)},
		{Year: 2027, Age: 42, Capital: decimal.NewFromInt(200)},
	}

	byCapital, err := SortSnapshots(snaps, SortByCapital, false)
	require.NoError(t, err)
	assert.Equal(t, 2026, byCapital[0].Year)
	assert.Equal(t, 2025, byCapital[2].Year)

	desc, err := SortSnapshots(snaps, SortByCapital, true)
	require.NoError(t, err)
	assert.Equal(t, 2025, desc[0].Year)

	// The input slice is untouched.
	assert.Equal(t, 2025, snaps[0].Year)

	_, err = SortSnapshots(snaps, "networth", false)
	require.Error(t, err)
}

func TestSortSnapshotsStableOnTies(t *testing.T) {
	snaps := []domain.YearlySnapshot{
		{Year: 2025, Capital: decimal.NewFromInt(100)},
		{Year: 2026, Capital: decimal.NewFromInt(100)},
		{Year: 2027, Capital: decimal.NewFromInt(100)},
	}
	sorted, err := SortSnapshots(snaps, SortByCapital, false)
	require.NoError(t, err)
	for i, s := range sorted {
		assert.Equal(t, 2025+i, s.Year, "ties must keep chronological order")
	}
}

func TestFilterSnapshots(t *testing.T) {
	snaps := []domain.YearlySnapshot{
		{Year: 2025, IsRetired: false},
		{Year: 2026, IsRetired: true},
		{Year: 2027, IsRetired: true},
	}
	retired := FilterSnapshots(snaps, RetiredOnly)
	require.Len(t, retired, 2)
	assert.Equal(t, 2026, retired[0].Year)
}
