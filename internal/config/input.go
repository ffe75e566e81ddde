// Package config loads and validates scenario files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eriiiic/Retirement/internal/domain"
)

// Scenario is one named parameter set in a scenario file.
type Scenario struct {
	Name       string                      `yaml:"name" json:"name"`
	Parameters domain.SimulationParameters `yaml:"parameters" json:"parameters"`
}

// ScenarioFile is the top-level document: one or more named scenarios. The
// first scenario is the baseline for comparisons.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file from YAML. JSON files parse too since
// yaml.v3 accepts JSON as a subset.
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&sf); err != nil {
		return nil, fmt.Errorf("scenario file validation failed: %w", err)
	}
	return &sf, nil
}

// Validate checks the structural rules of a scenario file and the parameter
// rules of every scenario in it.
func (ip *InputParser) Validate(sf *ScenarioFile) error {
	if len(sf.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]struct{}, len(sf.Scenarios))
	for i, sc := range sf.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if _, dup := seen[sc.Name]; dup {
			return fmt.Errorf("scenario %d: duplicate name %q", i, sc.Name)
		}
		seen[sc.Name] = struct{}{}

		if err := sc.Parameters.Normalized().Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, sc.Name, err)
		}
	}
	return nil
}
