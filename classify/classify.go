// Package classify derives deployment policy constants from git branch names.
//
// Classification is a total, deterministic function of the branch-name string:
// the same input always yields the same record, and no input can make it fail.
// Branch names that follow none of the recognized naming conventions still
// classify through the default rule; the record's WellFormed flag tells the
// caller it may want to log a warning.
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// BranchType is the coarse category derived from the branch naming convention.
type BranchType string

const (
	Production BranchType = "Production"
	Staging    BranchType = "Staging"
	Feature    BranchType = "Feature"
	Hotfix     BranchType = "Hotfix"
	Release    BranchType = "Release"
	Unknown    BranchType = "Unknown"
)

// Target environments.
const (
	EnvProduction  = "production"
	EnvStaging     = "staging"
	EnvDevelopment = "development"
	EnvHotfix      = "hotfix"
	EnvUnknown     = "unknown"
)

// DefaultBranch substitutes for an absent or empty branch name.
const DefaultBranch = "unknown"

// experimentalBranch is excluded from auto-deploy despite matching the
// feature/ prefix.
const experimentalBranch = "feature/experimental"

// Classification holds every constant derived from a branch name.
type Classification struct {
	// Branch the branch name the record was derived from, after empty-input
	// normalization
	Branch string `json:"branch"`

	// Type the coarse branch category
	Type BranchType `json:"type"`

	// Environment the target environment for builds of this branch
	Environment string `json:"environment"`

	// AutoDeploy whether builds are deployed without manual approval
	AutoDeploy bool `json:"autoDeploy"`

	// BuildTimeoutMinutes the build timeout in minutes
	BuildTimeoutMinutes int `json:"buildTimeoutMinutes"`

	// BuildRetention how many builds are retained
	BuildRetention int `json:"buildRetention"`

	// SlackChannel the notification channel for build results
	SlackChannel string `json:"slackChannel"`

	// WellFormed false when the branch name follows none of the recognized
	// naming conventions. Non-fatal: the record is still fully populated.
	WellFormed bool `json:"wellFormed"`
}

type rule struct {
	match  func(branch string) bool
	policy Classification
}

func exact(names ...string) func(string) bool {
	return func(branch string) bool {
		for _, name := range names {
			if branch == name {
				return true
			}
		}
		return false
	}
}

func prefix(p string) func(string) bool {
	return func(branch string) bool {
		return strings.HasPrefix(branch, p)
	}
}

func always(string) bool {
	return true
}

// rules is evaluated in order, first match wins. The last rule matches
// everything, so classification is total. Release branches have no environment
// of their own and deliberately carry the default one.
var rules = []rule{
	{
		match: exact("main", "master"),
		policy: Classification{
			Type:                Production,
			Environment:         EnvProduction,
			AutoDeploy:          false,
			BuildTimeoutMinutes: 60,
			BuildRetention:      50,
			SlackChannel:        "#production-alerts",
		},
	},
	{
		match: exact("develop"),
		policy: Classification{
			Type:                Staging,
			Environment:         EnvStaging,
			AutoDeploy:          true,
			BuildTimeoutMinutes: 45,
			BuildRetention:      20,
			SlackChannel:        "#staging-updates",
		},
	},
	{
		match: prefix("feature/"),
		policy: Classification{
			Type:                Feature,
			Environment:         EnvDevelopment,
			AutoDeploy:          true,
			BuildTimeoutMinutes: 30,
			BuildRetention:      10,
			SlackChannel:        "#development",
		},
	},
	{
		match: prefix("hotfix/"),
		policy: Classification{
			Type:                Hotfix,
			Environment:         EnvHotfix,
			AutoDeploy:          false,
			BuildTimeoutMinutes: 30,
			BuildRetention:      10,
			SlackChannel:        "#development",
		},
	},
	{
		match: prefix("release/"),
		policy: Classification{
			Type:                Release,
			Environment:         EnvDevelopment,
			AutoDeploy:          false,
			BuildTimeoutMinutes: 30,
			BuildRetention:      10,
			SlackChannel:        "#development",
		},
	},
	{
		match: always,
		policy: Classification{
			Type:                Unknown,
			Environment:         EnvDevelopment,
			AutoDeploy:          false,
			BuildTimeoutMinutes: 30,
			BuildRetention:      10,
			SlackChannel:        "#development",
		},
	},
}

// Classify derives the full policy record for the given branch name. An empty
// branch name is treated as DefaultBranch. Classify never fails for any input.
func Classify(branch string) Classification {
	if branch == "" {
		branch = DefaultBranch
	}

	for _, r := range rules {
		if !r.match(branch) {
			continue
		}
		c := r.policy
		c.Branch = branch
		c.WellFormed = WellFormed(branch)
		if branch == experimentalBranch {
			c.AutoDeploy = false
		}
		return c
	}

	// Unreachable, the last rule matches everything.
	panic("classify: no rule matched " + branch)
}

// WellFormed reports whether the branch name follows one of the recognized
// naming conventions.
func WellFormed(branch string) bool {
	switch branch {
	case "main", "master", "develop":
		return true
	}
	return strings.HasPrefix(branch, "feature/") ||
		strings.HasPrefix(branch, "hotfix/") ||
		strings.HasPrefix(branch, "release/")
}

var tagUnsafePattern = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// SanitizeTag derives a deployment-artifact label from a branch name. Every
// character outside [A-Za-z0-9.-] becomes a single hyphen, the result is
// lowercased and the run number appended. The mapping is readable, not
// collision-free: "feature/A" and "feature_A" produce the same tag.
func SanitizeTag(branch string, runNumber int) string {
	if branch == "" {
		branch = DefaultBranch
	}
	tag := tagUnsafePattern.ReplaceAllString(branch, "-")
	return fmt.Sprintf("%s-%d", strings.ToLower(tag), runNumber)
}
