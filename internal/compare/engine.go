package compare

import (
	"context"
	"fmt"

	"github.com/eriiiic/Retirement/internal/calculation"
	"github.com/eriiiic/Retirement/internal/config"
	"github.com/eriiiic/Retirement/internal/transform"
)

// CompareEngine orchestrates multi-scenario comparison.
type CompareEngine struct {
	Engine *calculation.ProjectionEngine
}

// NewCompareEngine creates a comparison engine around a projection engine.
func NewCompareEngine(engine *calculation.ProjectionEngine) *CompareEngine {
	return &CompareEngine{Engine: engine}
}

// CompareOptions configures comparison behavior.
type CompareOptions struct {
	// BaseScenarioName selects the baseline. Empty means the file's first
	// scenario.
	BaseScenarioName string

	// Templates names built-in what-if variations to derive from the base
	// scenario, in addition to the file's other scenarios.
	Templates []string

	SourcePath string
}

// Compare projects every scenario in the file and computes each
// alternative's deltas from the base. The context is checked between
// scenarios so a large file can be cancelled.
func (ce *CompareEngine) Compare(ctx context.Context, sf *config.ScenarioFile, options CompareOptions) (*ComparisonSet, error) {
	if len(sf.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to compare")
	}

	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = sf.Scenarios[0].Name
	}

	var base *ComparisonResult
	alternatives := make([]ComparisonResult, 0, len(sf.Scenarios)-1)

	for _, sc := range sf.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report, err := ce.Engine.RunScenario(sc.Name, sc.Parameters)
		if err != nil {
			return nil, fmt.Errorf("comparing scenarios: %w", err)
		}

		result := buildResult(report)
		if sc.Name == baseName {
			base = &result
			continue
		}
		alternatives = append(alternatives, result)
	}

	if base == nil {
		return nil, fmt.Errorf("base scenario %s not found in scenario file", baseName)
	}

	if len(options.Templates) > 0 {
		derived, err := ce.applyTemplates(ctx, base, options.Templates)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, derived...)
	}

	for i := range alternatives {
		alternatives[i].applyBaseDeltas(base)
	}

	return &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         base,
		AlternativeResults: alternatives,
		SourcePath:         options.SourcePath,
	}, nil
}

// applyTemplates derives one alternative per named template from the base
// scenario's parameters.
func (ce *CompareEngine) applyTemplates(ctx context.Context, base *ComparisonResult, names []string) ([]ComparisonResult, error) {
	registry := transform.CreateBuiltInTemplates()
	out := make([]ComparisonResult, 0, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		template, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %s not found (available: %v)", name, registry.List())
		}
		params, err := transform.Apply(base.Report.Parameters, template)
		if err != nil {
			return nil, err
		}

		scenarioName := fmt.Sprintf("%s (%s)", base.ScenarioName, template.Name)
		report, err := ce.Engine.RunScenario(scenarioName, params)
		if err != nil {
			return nil, fmt.Errorf("projecting template %s: %w", name, err)
		}
		out = append(out, buildResult(report))
	}
	return out, nil
}
