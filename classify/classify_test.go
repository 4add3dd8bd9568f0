package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestClassify_MainAndMasterAreIdentical(t *testing.T) {
	main := Classify("main")
	master := Classify("master")

	main.Branch = ""
	master.Branch = ""
	assert.Empty(t, cmp.Diff(main, master), "main and master must derive the same policy")
}

func TestClassify_ProductionBranch(t *testing.T) {
	c := Classify("main")

	assert.Equal(t, Production, c.Type)
	assert.Equal(t, EnvProduction, c.Environment)
	assert.False(t, c.AutoDeploy)
	assert.Equal(t, 60, c.BuildTimeoutMinutes)
	assert.Equal(t, 50, c.BuildRetention)
	assert.Equal(t, "#production-alerts", c.SlackChannel)
	assert.True(t, c.WellFormed)
}

func TestClassify_DevelopBranch(t *testing.T) {
	c := Classify("develop")

	assert.Equal(t, Staging, c.Type)
	assert.Equal(t, EnvStaging, c.Environment)
	assert.True(t, c.AutoDeploy)
	assert.Equal(t, 45, c.BuildTimeoutMinutes)
	assert.Equal(t, 20, c.BuildRetention)
	assert.Equal(t, "#staging-updates", c.SlackChannel)
}

func TestClassify_FeatureBranchesAutoDeploy(t *testing.T) {
	c := Classify("feature/login-form")

	assert.Equal(t, Feature, c.Type)
	assert.Equal(t, EnvDevelopment, c.Environment)
	assert.True(t, c.AutoDeploy)
	assert.Equal(t, 30, c.BuildTimeoutMinutes)
	assert.Equal(t, 10, c.BuildRetention)
	assert.Equal(t, "#development", c.SlackChannel)
}

func TestClassify_ExperimentalFeatureBranchExcludedFromAutoDeploy(t *testing.T) {
	c := Classify("feature/experimental")

	assert.Equal(t, Feature, c.Type)
	assert.False(t, c.AutoDeploy, "feature/experimental is excluded from auto-deploy")

	// Only the exact name is excluded.
	assert.True(t, Classify("feature/experimental-ui").AutoDeploy)
	assert.True(t, Classify("feature/x").AutoDeploy)
}

func TestClassify_HotfixBranch(t *testing.T) {
	c := Classify("hotfix/urgent-fix")

	assert.Equal(t, Hotfix, c.Type)
	assert.Equal(t, EnvHotfix, c.Environment)
	assert.False(t, c.AutoDeploy)
	assert.Equal(t, 30, c.BuildTimeoutMinutes)
}

func TestClassify_ReleaseBranchFallsThroughToDefaultEnvironment(t *testing.T) {
	c := Classify("release/2.0")

	assert.Equal(t, Release, c.Type)
	assert.Equal(t, EnvDevelopment, c.Environment, "release branches carry the default environment")
	assert.Equal(t, 30, c.BuildTimeoutMinutes)
	assert.Equal(t, 10, c.BuildRetention)
	assert.False(t, c.AutoDeploy)
}

func TestClassify_EmptyInputBehavesLikeUnknown(t *testing.T) {
	assert.Empty(t, cmp.Diff(Classify(""), Classify("unknown")))
}

func TestClassify_UnrecognizedNamesClassifyViaDefaultRule(t *testing.T) {
	for _, branch := range []string{"unknown", "bugfix/typo", "Feature/caps", "main ", "features", "release", "héllo/wörld", "a b c"} {
		c := Classify(branch)

		assert.Equal(t, Unknown, c.Type, "branch %q", branch)
		assert.Equal(t, EnvDevelopment, c.Environment)
		assert.False(t, c.AutoDeploy)
		assert.Equal(t, 30, c.BuildTimeoutMinutes)
		assert.Equal(t, 10, c.BuildRetention)
		assert.Equal(t, "#development", c.SlackChannel)
		assert.False(t, c.WellFormed)
	}
}

func TestClassify_IsIdempotent(t *testing.T) {
	for _, branch := range []string{"main", "develop", "feature/experimental", "release/2.0", "", "no-convention"} {
		assert.Empty(t, cmp.Diff(Classify(branch), Classify(branch)), "branch %q", branch)
	}
}

func TestClassify_AlwaysReturnsTotalRecord(t *testing.T) {
	for _, branch := range []string{"", "/", "feature/", "\x00", "🚀", "refs/heads/main"} {
		c := Classify(branch)

		assert.NotEmpty(t, c.Branch)
		assert.NotEmpty(t, c.Type)
		assert.NotEmpty(t, c.Environment)
		assert.NotEmpty(t, c.SlackChannel)
		assert.Positive(t, c.BuildTimeoutMinutes)
		assert.Positive(t, c.BuildRetention)
	}
}

func TestWellFormed(t *testing.T) {
	wellFormed := []string{"main", "master", "develop", "feature/x", "hotfix/crash", "release/1.2.3"}
	for _, branch := range wellFormed {
		assert.True(t, WellFormed(branch), "branch %q", branch)
	}

	malformed := []string{"", "unknown", "Main", "developer", "feat/x", "bugfix/typo"}
	for _, branch := range malformed {
		assert.False(t, WellFormed(branch), "branch %q", branch)
	}
}
