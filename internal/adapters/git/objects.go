package git

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/logging"
)

// listPackIndexFiles returns the pack index files of the repository, sorted by name
func listPackIndexFiles(repo *domain.Repository) ([]string, error) {
	pattern := filepath.Join(repo.GitDir, "objects", "pack", "pack-*.idx")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list pack index files: %w", err)
	}

	sort.Strings(files)
	logging.Logger.Debug("Listed pack index files", "count", len(files))
	return files, nil
}

// listCommits returns every commit reachable from any ref, oldest first
func listCommits(ctx context.Context, repo *domain.Repository) ([]domain.CommitRecord, error) {
	output, err := runGit(ctx, repo.GitDir, "rev-list", "--all", "--reverse", "--timestamp")
	if err != nil {
		return nil, err
	}

	commits, err := parseRevList(output, repo.ObjectFormat)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Listed commits", "count", len(commits))
	return commits, nil
}

// listPackedObjectSizes runs a single verify-pack over all index files
func listPackedObjectSizes(ctx context.Context, repo *domain.Repository, idxFiles []string) (domain.PackedIndex, error) {
	if len(idxFiles) == 0 {
		return domain.PackedIndex{}, nil
	}

	args := append([]string{"verify-pack", "-v"}, idxFiles...)
	output, err := runGit(ctx, repo.GitDir, args...)
	if err != nil {
		return nil, err
	}

	index := parseVerifyPack(output, repo.ObjectFormat)
	logging.Logger.Debug("Read pack indexes", "files", len(idxFiles), "objects", len(index))
	return index, nil
}

// getObjectSize returns the uncompressed size of an object
func getObjectSize(ctx context.Context, repo *domain.Repository, id domain.ObjectID) (int64, error) {
	output, err := runGit(ctx, repo.GitDir, "cat-file", "-s", string(id))
	if err != nil {
		return 0, err
	}

	size, err := strconv.ParseInt(strings.TrimSpace(string(output)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size for object %s: %w", id, err)
	}

	return size, nil
}

// describeCommit returns the root tree of a commit
func describeCommit(ctx context.Context, repo *domain.Repository, id domain.ObjectID) (domain.ObjectID, error) {
	output, err := runGit(ctx, repo.GitDir, "cat-file", "-p", string(id))
	if err != nil {
		return "", err
	}

	return parseCommitTree(output)
}

// describeTree returns the entries of a tree in declared order
func describeTree(ctx context.Context, repo *domain.Repository, id domain.ObjectID) ([]domain.ObjectRef, error) {
	output, err := runGit(ctx, repo.GitDir, "cat-file", "-p", string(id))
	if err != nil {
		return nil, err
	}

	return parseTreeEntries(output)
}

// parseRevList parses "<timestamp> <id>" lines
func parseRevList(output []byte, format domain.ObjectFormat) ([]domain.CommitRecord, error) {
	var commits []domain.CommitRecord

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("unexpected rev-list line: %q", line)
		}

		ts, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid commit timestamp in %q: %w", line, err)
		}

		id := domain.ObjectID(fields[1])
		if !id.Valid(format) {
			return nil, fmt.Errorf("invalid commit id in %q", line)
		}

		commits = append(commits, domain.CommitRecord{ID: id, Timestamp: ts})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rev-list output: %w", err)
	}

	return commits, nil
}

// parseVerifyPack parses verify-pack -v output. Only lines starting with an
// object id are considered (id type size size-in-pack offset [depth base]).
// When an id shows up in several packs the first occurrence wins.
func parseVerifyPack(output []byte, format domain.ObjectFormat) domain.PackedIndex {
	index := domain.PackedIndex{}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}

		id := domain.ObjectID(fields[0])
		if !id.Valid(format) {
			continue
		}
		if _, exists := index[id]; exists {
			continue
		}

		size, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			logging.Logger.Debug("Skipping verify-pack line", "line", scanner.Text(), "error", err)
			continue
		}
		stored, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			logging.Logger.Debug("Skipping verify-pack line", "line", scanner.Text(), "error", err)
			continue
		}

		index[id] = domain.PackedObject{Size: size, StoredSize: stored}
	}

	return index
}

// parseCommitTree extracts the tree id from the first line of a commit
func parseCommitTree(output []byte) (domain.ObjectID, error) {
	firstLine, _, _ := bytes.Cut(output, []byte("\n"))
	fields := strings.Fields(string(firstLine))
	if len(fields) != 2 || fields[0] != "tree" {
		return "", domain.ErrNoTreeReference
	}

	return domain.ObjectID(fields[1]), nil
}

// parseTreeEntries parses "<mode> <type> <id>\t<name>" lines
func parseTreeEntries(output []byte) ([]domain.ObjectRef, error) {
	var entries []domain.ObjectRef

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		meta, _, found := strings.Cut(line, "\t")
		fields := strings.Fields(meta)
		if !found || len(fields) != 3 {
			return nil, fmt.Errorf("unexpected tree entry: %q", line)
		}

		entries = append(entries, domain.ObjectRef{
			ID:   domain.ObjectID(fields[2]),
			Type: domain.ObjectType(fields[1]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}

	return entries, nil
}
