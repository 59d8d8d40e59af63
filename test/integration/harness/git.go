package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestGitSetup holds paths for a git test environment.
// It creates a bare repo (simulating remote/origin) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working repo with origin configured
	tb           testing.TB
}

// NewTestGitSetup creates a git environment with origin and no commits.
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/           <- git init --bare (acts as origin)
//	└── clone/          <- git clone bare/ clone/ (has origin remote)
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git is not installed")
	}

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	runGitCommand(tb, baseDir, "init", "--bare", bareRepoPath)
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	runGitCommand(tb, clonePath, "config", "user.email", "test@example.com")
	runGitCommand(tb, clonePath, "config", "user.name", "Test User")

	return &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		tb:           tb,
	}
}

// CommitFile writes a file in the clone and commits it. Returns the commit id.
func (g *TestGitSetup) CommitFile(name, content, message string) string {
	g.tb.Helper()

	path := filepath.Join(g.ClonePath, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		g.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", name, err)
	}

	runGitCommand(g.tb, g.ClonePath, "add", name)
	runGitCommand(g.tb, g.ClonePath, "commit", "-m", message)
	return g.RevParse("HEAD")
}

// CommitEmpty commits the current tree again. Returns the commit id.
func (g *TestGitSetup) CommitEmpty(message string) string {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "commit", "--allow-empty", "-m", message)
	return g.RevParse("HEAD")
}

// Repack moves every object of the clone into a single pack.
func (g *TestGitSetup) Repack() {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "repack", "-a", "-d")
}

// Push pushes the current branch to origin (bare repo).
func (g *TestGitSetup) Push() {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "push", "origin", "HEAD")
}

// RevParse resolves a revision in the clone.
func (g *TestGitSetup) RevParse(rev string) string {
	g.tb.Helper()
	return runGitCommand(g.tb, g.ClonePath, "rev-parse", rev)
}

// ObjectSize returns the uncompressed size of an object in the clone.
func (g *TestGitSetup) ObjectSize(rev string) int64 {
	g.tb.Helper()

	out := runGitCommand(g.tb, g.ClonePath, "cat-file", "-s", rev)
	size, err := strconv.ParseInt(out, 10, 64)
	if err != nil {
		g.tb.Fatalf("Invalid size for %s: %v", rev, err)
	}
	return size
}

// runGitCommand executes a git command in the specified directory and
// returns its trimmed output.
func runGitCommand(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return strings.TrimSpace(string(output))
}
