// Package calculation runs deterministic retirement capital projections: a
// year-by-year simulation over an accumulation and a decumulation phase,
// seeded and reconciled by closed-form annuity identities.
package calculation

import (
	"fmt"

	"github.com/eriiiic/Retirement/internal/domain"
)

// ProjectionEngine runs projections. It holds no per-run state and is safe
// for concurrent use once configured.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine returns an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. A nil logger restores the no-op.
func (e *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// Project normalizes and validates the parameters, resolves the withdrawal
// strategy and runs the year-by-year simulation. Identical inputs always
// produce identical results.
func (e *ProjectionEngine) Project(params domain.SimulationParameters) (*domain.SimulationResult, error) {
	p := params.Normalized()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("projecting capital: %w", err)
	}

	strat := e.resolveStrategy(p)
	e.Logger.Debugf("projecting %s from age %d to %d, retirement year %d, strategy %s",
		p.InitialCapital.StringFixed(2), p.CurrentAge, p.HorizonMaxAge, p.RetirementYear(), p.Strategy.Kind)

	result := e.runProjection(p, strat)
	return &result, nil
}

// Summarize derives the headline statistics from a completed projection.
func (e *ProjectionEngine) Summarize(result *domain.SimulationResult, params domain.SimulationParameters) (*domain.SummaryStatistics, error) {
	if result.IsEmpty() {
		return nil, domain.ErrEmptyResult
	}
	p := params.Normalized()
	summary := e.buildSummary(result, p)
	return &summary, nil
}

// RunScenario projects, summarizes and bundles one named parameter set.
func (e *ProjectionEngine) RunScenario(name string, params domain.SimulationParameters) (*domain.ProjectionReport, error) {
	result, err := e.Project(params)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	summary, err := e.Summarize(result, params)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	return &domain.ProjectionReport{
		Name:       name,
		Parameters: params.Normalized(),
		Result:     *result,
		Summary:    *summary,
	}, nil
}
