package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitdu/test/integration/harness"
)

func sumSizes(lines []harness.CommitLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Size
	}
	return total
}

func TestMeasure_LooseObjects(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	first := git.CommitFile("README.md", "# Test Repo\n", "Initial commit")
	second := git.CommitEmpty("Same tree")

	result := harness.RunCommand(t, env, git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertStderrContains(t, result, "# Repository directory: ")
	harness.AssertStderrContains(t, result, "# WARNING: cannot find any pack files!")
	harness.AssertStdoutNotContains(t, result, "#")

	lines := harness.ParseCommitLines(t, result)
	require.Len(t, lines, 2)
	assert.Equal(t, first, lines[0].ID)
	assert.Equal(t, second, lines[1].ID)

	expectedFirst := git.ObjectSize(first) + git.ObjectSize(first+"^{tree}") + int64(len("# Test Repo\n"))
	assert.Equal(t, expectedFirst, lines[0].Size)
	assert.Equal(t, git.ObjectSize(second), lines[1].Size, "shared tree is only counted once")

	assert.Equal(t, int64(0), harness.StderrTotal(t, result, "Total packed size"))
	assert.Equal(t, sumSizes(lines), harness.StderrTotal(t, result, "Total unpacked size"))
	assert.Equal(t, sumSizes(lines), harness.StderrTotal(t, result, "Total size"))
}

func TestMeasure_PackedObjects(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CommitFile("README.md", "# Test Repo\n", "Initial commit")
	git.CommitFile("docs/guide.md", "guide\n", "Add guide")
	git.Repack()
	git.CommitFile("docs/more.md", "more\n", "Add more")

	result := harness.RunCommand(t, env, "measure", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, "#")

	lines := harness.ParseCommitLines(t, result)
	require.Len(t, lines, 3)

	packed := harness.StderrTotal(t, result, "Total packed size")
	unpacked := harness.StderrTotal(t, result, "Total unpacked size")
	assert.Positive(t, packed)
	assert.Positive(t, unpacked, "the commit after the repack is loose")
	assert.Equal(t, sumSizes(lines), packed+unpacked)
	assert.Equal(t, packed+unpacked, harness.StderrTotal(t, result, "Total size"))
}

func TestMeasure_PackSizeStored(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CommitFile("README.md", "# Test Repo\n", "Initial commit")
	git.Repack()

	uncompressed := harness.RunCommand(t, env, git.ClonePath)
	stored := harness.RunCommand(t, env, git.ClonePath, "--pack-size", "stored")

	harness.AssertSuccess(t, uncompressed)
	harness.AssertSuccess(t, stored)
	assert.NotEqual(t,
		harness.StderrTotal(t, uncompressed, "Total packed size"),
		harness.StderrTotal(t, stored, "Total packed size"))
}

func TestMeasure_PackSizeFromSettings(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CommitFile("README.md", "# Test Repo\n", "Initial commit")
	git.Repack()

	flag := harness.RunCommand(t, env, git.ClonePath, "--pack-size", "stored")
	env.WriteSettings(`{"pack_size": "stored"}`)
	settings := harness.RunCommand(t, env, git.ClonePath)

	harness.AssertSuccess(t, flag)
	harness.AssertSuccess(t, settings)
	assert.Equal(t, flag.Stdout, settings.Stdout)
}

func TestMeasure_BareRepository(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	first := git.CommitFile("README.md", "# Test Repo\n", "Initial commit")
	second := git.CommitFile("main.go", "package main\n", "Add main")
	git.Push()

	result := harness.RunCommand(t, env, git.BareRepoPath)

	harness.AssertSuccess(t, result)
	lines := harness.ParseCommitLines(t, result)
	require.Len(t, lines, 2)
	assert.Equal(t, first, lines[0].ID)
	assert.Equal(t, second, lines[1].ID)
}

func TestMeasure_FromSubdirectory(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CommitFile("docs/guide.md", "guide\n", "Add guide")

	result := harness.RunCommand(t, env, filepath.Join(git.ClonePath, "docs"))

	harness.AssertSuccess(t, result)
	assert.Len(t, harness.ParseCommitLines(t, result), 1)
}

func TestMeasure_FatalErrors(t *testing.T) {
	tests := []struct {
		name      string
		path      func(t *testing.T) string
		wantError string
	}{
		{
			name: "not a repository",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			wantError: "# ERROR: cannot detect repository root directory!",
		},
		{
			name: "no commits",
			path: func(t *testing.T) string {
				return harness.NewTestGitSetup(t).ClonePath
			},
			wantError: "# ERROR: cannot find any commits!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			path := tt.path(t)
			env.SetEnv("GIT_CEILING_DIRECTORIES", filepath.Dir(path))

			result := harness.RunCommand(t, env, path)

			harness.AssertExitCode(t, result, 1)
			harness.AssertStderrContains(t, result, tt.wantError)
			harness.AssertStdoutEmpty(t, result)
		})
	}
}

func TestMeasure_InvalidPackSize(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, ".", "--pack-size", "compressed")

	harness.AssertFailure(t, result)
	harness.AssertStdoutEmpty(t, result)
}
