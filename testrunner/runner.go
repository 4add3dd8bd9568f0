// Package testrunner emulates the scripted test stage of the pipeline: a
// fixed number of canned passing tests chosen by branch type, plus a short
// integration suite for the long-lived branches.
package testrunner

import (
	"fmt"
	"io"

	"github.com/branchops/branch-policy/classify"
)

// Profile selects how many tests run for a branch type and whether the
// integration suite is skipped.
type Profile struct {
	TestCount            int
	SkipIntegrationTests bool
}

var profiles = map[classify.BranchType]Profile{
	classify.Production: {TestCount: 15},
	classify.Staging:    {TestCount: 12},
	classify.Release:    {TestCount: 10},
	classify.Feature:    {TestCount: 8, SkipIntegrationTests: true},
	classify.Hotfix:     {TestCount: 5},
	classify.Unknown:    {TestCount: 3, SkipIntegrationTests: true},
}

var integrationTests = []string{
	"API connectivity",
	"database migration",
	"deployment smoke test",
}

// ProfileFor returns the test profile for a branch type. Unlisted types get
// the Unknown profile.
func ProfileFor(branchType classify.BranchType) Profile {
	if p, ok := profiles[branchType]; ok {
		return p
	}
	return profiles[classify.Unknown]
}

// Run writes the canned test output for the classified branch.
func Run(w io.Writer, c classify.Classification) {
	p := ProfileFor(c.Type)

	for i := 1; i <= p.TestCount; i++ {
		fmt.Fprintf(w, "Test %d/%d: PASSED\n", i, p.TestCount)
	}

	if p.SkipIntegrationTests {
		return
	}
	for _, name := range integrationTests {
		fmt.Fprintf(w, "Integration test: %s ... PASSED\n", name)
	}
}
