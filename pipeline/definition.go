// Package pipeline evaluates declarative stage definitions against a branch
// classification, producing the plan a CI run would execute.
package pipeline

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/branchops/branch-policy/classify"
)

// Condition gates a stage on properties of the branch classification. All set
// fields must match; an empty condition always matches.
type Condition struct {
	// BranchTypes the stage only runs for these branch types
	BranchTypes []classify.BranchType `yaml:"branchTypes,omitempty"`

	// Environments the stage only runs when deploying to one of these environments
	Environments []string `yaml:"environments,omitempty"`

	// AutoDeploy the stage only runs when auto-deploy eligibility has this value
	AutoDeploy *bool `yaml:"autoDeploy,omitempty"`
}

// Stage is one named step of the pipeline definition.
type Stage struct {
	Name string     `yaml:"name"`
	When *Condition `yaml:"when,omitempty"`
}

// Definition is an ordered list of stages.
type Definition struct {
	Stages []Stage `yaml:"stages"`
}

// Parse reads a pipeline definition from YAML.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid pipeline definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads a pipeline definition from a YAML file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read pipeline definition: %w", err)
	}
	return Parse(data)
}

func (d *Definition) validate() error {
	if len(d.Stages) == 0 {
		return fmt.Errorf("pipeline definition has no stages")
	}

	var seen []string
	for _, stage := range d.Stages {
		if stage.Name == "" {
			return fmt.Errorf("pipeline definition has a stage without a name")
		}
		if slices.Contains(seen, stage.Name) {
			return fmt.Errorf("duplicate stage name %q", stage.Name)
		}
		seen = append(seen, stage.Name)
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

// Default mirrors the canonical branch-conditional pipeline: integration tests
// only for the long-lived branch types, deployment only when the branch is
// auto-deploy eligible.
func Default() *Definition {
	return &Definition{
		Stages: []Stage{
			{Name: "checkout"},
			{Name: "build"},
			{Name: "test"},
			{Name: "integration-test", When: &Condition{
				BranchTypes: []classify.BranchType{classify.Production, classify.Staging, classify.Hotfix, classify.Release},
			}},
			{Name: "deploy", When: &Condition{
				AutoDeploy: boolPtr(true),
			}},
			{Name: "notify"},
		},
	}
}
