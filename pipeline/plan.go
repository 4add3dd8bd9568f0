package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/branchops/branch-policy/classify"
)

// StageDecision records whether a stage runs for a given branch, and why not
// when it is skipped.
type StageDecision struct {
	Name   string `json:"name"`
	Run    bool   `json:"run"`
	Reason string `json:"reason,omitempty"`
}

// Plan is the outcome of evaluating a pipeline definition against a branch
// classification. It is a pure value: evaluating the same inputs always yields
// the same plan.
type Plan struct {
	Classification classify.Classification `json:"classification"`
	BuildNumber    int                     `json:"buildNumber"`

	// DeployTag the sanitized artifact tag for this run
	DeployTag string `json:"deployTag"`

	// DeployEnvironment set when at least one deploy stage runs
	DeployEnvironment string `json:"deployEnvironment,omitempty"`

	Stages []StageDecision `json:"stages"`
}

// Evaluate computes the stage plan for one pipeline run.
func Evaluate(def *Definition, c classify.Classification, buildNumber int) Plan {
	plan := Plan{
		Classification: c,
		BuildNumber:    buildNumber,
		DeployTag:      classify.SanitizeTag(c.Branch, buildNumber),
	}

	for _, stage := range def.Stages {
		run, reason := stage.When.evaluate(c)
		plan.Stages = append(plan.Stages, StageDecision{Name: stage.Name, Run: run, Reason: reason})
		if run && stage.Name == "deploy" {
			plan.DeployEnvironment = c.Environment
		}
	}
	return plan
}

func (cond *Condition) evaluate(c classify.Classification) (bool, string) {
	if cond == nil {
		return true, ""
	}
	if len(cond.BranchTypes) > 0 && !slices.Contains(cond.BranchTypes, c.Type) {
		return false, fmt.Sprintf("branch type %s not in %v", c.Type, cond.BranchTypes)
	}
	if len(cond.Environments) > 0 && !slices.Contains(cond.Environments, c.Environment) {
		return false, fmt.Sprintf("environment %s not in %v", c.Environment, cond.Environments)
	}
	if cond.AutoDeploy != nil && *cond.AutoDeploy != c.AutoDeploy {
		return false, fmt.Sprintf("requires autoDeploy=%t", *cond.AutoDeploy)
	}
	return true, ""
}

// RunStages returns the names of the stages that will run, in order.
func (p Plan) RunStages() []string {
	var names []string
	for _, s := range p.Stages {
		if s.Run {
			names = append(names, s.Name)
		}
	}
	return names
}

// Summary renders a one-line human-readable description of the plan, suitable
// for a notification message.
func (p Plan) Summary() string {
	c := p.Classification
	summary := fmt.Sprintf("Build %d for %s (%s, environment %s): stages %s, tag %s",
		p.BuildNumber, c.Branch, c.Type, c.Environment, strings.Join(p.RunStages(), ", "), p.DeployTag)
	if p.DeployEnvironment != "" {
		summary += fmt.Sprintf(", auto-deploying to %s", p.DeployEnvironment)
	}
	return summary
}
