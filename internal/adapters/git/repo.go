package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/logging"
)

// runGit runs git -C dir args... and returns its standard output.
// Standard error is folded into the returned error.
func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	logging.Logger.Debug("Running git", "dir", dir, "args", args)

	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return output, nil
}

// findRepository locates the repository enclosing startPath
func findRepository(ctx context.Context, startPath string) (*domain.Repository, error) {
	logging.Logger.Debug("Finding repository", "path", startPath)

	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", startPath, err)
	}

	output, err := runGit(ctx, absPath, "rev-parse", "--absolute-git-dir", "--is-bare-repository")
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) != 2 {
		return nil, fmt.Errorf("unexpected rev-parse output: %q", output)
	}

	repo := &domain.Repository{
		Bare:   strings.TrimSpace(lines[1]) == "true",
		GitDir: strings.TrimSpace(lines[0]),
	}

	if !repo.Bare {
		output, err := runGit(ctx, absPath, "rev-parse", "--show-toplevel")
		if err != nil {
			return nil, err
		}
		repo.WorkDir = strings.TrimSpace(string(output))
	}

	repo.ObjectFormat, err = readObjectFormat(repo.GitDir)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Found git repository",
		"git_dir", repo.GitDir,
		"work_dir", repo.WorkDir,
		"object_format", repo.ObjectFormat)
	return repo, nil
}

// readObjectFormat reads extensions.objectformat from the repository config.
// Repositories without the extension use sha1.
func readObjectFormat(gitDir string) (domain.ObjectFormat, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys: true,
		Insensitive:      true,
		Loose:            true,
	}, filepath.Join(gitDir, "config"))
	if err != nil {
		return "", fmt.Errorf("failed to read repository config: %w", err)
	}

	format := strings.ToLower(cfg.Section("extensions").Key("objectformat").String())
	switch domain.ObjectFormat(format) {
	case "", domain.ObjectFormatSHA1:
		return domain.ObjectFormatSHA1, nil
	case domain.ObjectFormatSHA256:
		return domain.ObjectFormatSHA256, nil
	}

	return "", fmt.Errorf("unsupported object format %q", format)
}
