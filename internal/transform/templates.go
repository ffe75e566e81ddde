package transform

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates.
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named collection of transforms.
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]Template)}
}

// Register adds a template to the registry.
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive).
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted.
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates registers the common what-if variations.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "retire_1yr_later",
		Description: "Postpone retirement by 1 year",
		Transforms:  []ScenarioTransform{&ShiftRetirement{Years: 1}},
	})
	registry.Register(Template{
		Name:        "retire_2yr_later",
		Description: "Postpone retirement by 2 years",
		Transforms:  []ScenarioTransform{&ShiftRetirement{Years: 2}},
	})
	registry.Register(Template{
		Name:        "retire_1yr_earlier",
		Description: "Retire 1 year earlier",
		Transforms:  []ScenarioTransform{&ShiftRetirement{Years: -1}},
	})
	registry.Register(Template{
		Name:        "save_10pct_more",
		Description: "Increase monthly contribution by 10%",
		Transforms:  []ScenarioTransform{&ScaleContribution{Factor: decimal.NewFromFloat(1.10)}},
	})
	registry.Register(Template{
		Name:        "save_25pct_more",
		Description: "Increase monthly contribution by 25%",
		Transforms:  []ScenarioTransform{&ScaleContribution{Factor: decimal.NewFromFloat(1.25)}},
	})
	registry.Register(Template{
		Name:        "conservative_returns",
		Description: "Lower annual growth by 2 percentage points",
		Transforms:  []ScenarioTransform{&AdjustGrowthRate{DeltaPercent: decimal.NewFromInt(-2)}},
	})
	registry.Register(Template{
		Name:        "spend_10pct_less",
		Description: "Reduce withdrawals by 10%",
		Transforms:  []ScenarioTransform{&ScaleWithdrawal{Factor: decimal.NewFromFloat(0.90)}},
	})
	registry.Register(Template{
		Name:        "belt_and_braces",
		Description: "Retire 1 year later, save 10% more, assume 1 point lower growth",
		Transforms: []ScenarioTransform{
			&ShiftRetirement{Years: 1},
			&ScaleContribution{Factor: decimal.NewFromFloat(1.10)},
			&AdjustGrowthRate{DeltaPercent: decimal.NewFromInt(-1)},
		},
	})

	return registry
}
