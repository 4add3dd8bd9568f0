package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branchops/branch-policy/classify"
)

func TestParse_ValidDefinition(t *testing.T) {
	data := []byte(`
stages:
  - name: build
  - name: integration-test
    when:
      branchTypes: [Production, Staging]
  - name: deploy
    when:
      autoDeploy: true
      environments: [staging, development]
`)

	def, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, def.Stages, 3)

	assert.Equal(t, "build", def.Stages[0].Name)
	assert.Nil(t, def.Stages[0].When)

	assert.Equal(t, []classify.BranchType{classify.Production, classify.Staging}, def.Stages[1].When.BranchTypes)

	require.NotNil(t, def.Stages[2].When.AutoDeploy)
	assert.True(t, *def.Stages[2].When.AutoDeploy)
	assert.Equal(t, []string{"staging", "development"}, def.Stages[2].When.Environments)
}

func TestParse_RejectsEmptyDefinition(t *testing.T) {
	_, err := Parse([]byte("stages: []"))
	assert.Error(t, err)
}

func TestParse_RejectsUnnamedStage(t *testing.T) {
	_, err := Parse([]byte("stages:\n  - when:\n      autoDeploy: true"))
	assert.Error(t, err)
}

func TestParse_RejectsDuplicateStageNames(t *testing.T) {
	_, err := Parse([]byte("stages:\n  - name: build\n  - name: build"))
	assert.Error(t, err)
}

func TestParse_RejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("stages: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_ReadsDefinitionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stages:\n  - name: build\n  - name: test"), 0600))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, def.Stages, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	def := Default()
	assert.NoError(t, def.validate())
}
