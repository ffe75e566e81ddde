// Package compare runs several projection scenarios against a baseline and
// reports the metric deltas.
package compare

import (
	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/domain"
)

// ComparisonResult is one scenario's headline metrics plus its deltas from
// the base scenario. The base scenario's delta fields are all zero.
type ComparisonResult struct {
	ScenarioName string                   `json:"scenarioName"`
	Report       *domain.ProjectionReport `json:"report"`

	FinalCapital        decimal.Decimal `json:"finalCapital"`
	CapitalAtRetirement decimal.Decimal `json:"capitalAtRetirement"`
	TotalWithdrawn      decimal.Decimal `json:"totalWithdrawn"`

	// CapitalLongevityYears counts the retirement years the capital funded:
	// from retirement to depletion, or to the horizon when it never runs
	// out.
	CapitalLongevityYears int `json:"capitalLongevityYears"`

	FinalCapitalDiffFromBase  decimal.Decimal `json:"finalCapitalDiffFromBase"`
	FinalCapitalPctFromBase   decimal.Decimal `json:"finalCapitalPctFromBase"`
	RetirementCapitalDiffBase decimal.Decimal `json:"retirementCapitalDiffFromBase"`
	LongevityDiffFromBase     int             `json:"longevityDiffFromBase"`
}

// ComparisonSet bundles one base scenario and its alternatives.
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	SourcePath         string             `json:"sourcePath,omitempty"`
}

// buildResult derives a scenario's metrics from its report.
func buildResult(report *domain.ProjectionReport) ComparisonResult {
	s := report.Summary
	longevity := report.Parameters.HorizonMaxAge - s.RetirementAge
	if s.DepletionAge != nil {
		longevity = *s.DepletionAge - s.RetirementAge
	}
	if longevity < 0 {
		longevity = 0
	}
	return ComparisonResult{
		ScenarioName:          report.Name,
		Report:                report,
		FinalCapital:          s.FinalCapital,
		CapitalAtRetirement:   s.CapitalAtRetirement,
		TotalWithdrawn:        s.TotalWithdrawn,
		CapitalLongevityYears: longevity,
	}
}

// applyBaseDeltas fills a result's comparison fields against the base.
func (r *ComparisonResult) applyBaseDeltas(base *ComparisonResult) {
	r.FinalCapitalDiffFromBase = r.FinalCapital.Sub(base.FinalCapital)
	if !base.FinalCapital.IsZero() {
		r.FinalCapitalPctFromBase = r.FinalCapitalDiffFromBase.
			Div(base.FinalCapital).
			Mul(decimal.NewFromInt(100))
	}
	r.RetirementCapitalDiffBase = r.CapitalAtRetirement.Sub(base.CapitalAtRetirement)
	r.LongevityDiffFromBase = r.CapitalLongevityYears - base.CapitalLongevityYears
}
