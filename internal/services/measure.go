package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/logging"
	"github.com/renato0307/gitdu/internal/ports"
)

// MeasureOptions configures a measurement run
type MeasureOptions struct {
	PackSizeMode domain.PackSizeMode
}

// MeasureService attributes object storage to the commits that first reach it
type MeasureService struct {
	gitRepo ports.GitRepository
	now     func() time.Time
}

// NewMeasureService creates a new MeasureService
func NewMeasureService(gitRepo ports.GitRepository) *MeasureService {
	return &MeasureService{
		gitRepo: gitRepo,
		now:     time.Now,
	}
}

// Measure walks every commit of the repository enclosing path, oldest first,
// and reports each commit's size to observer as soon as it is known.
// A missing repository or an empty history is fatal and reported before any
// commit is measured; every other failure is logged and skipped.
func (s *MeasureService) Measure(ctx context.Context, path string, opts MeasureOptions, observer ports.MeasureObserver) (*domain.Run, error) {
	if opts.PackSizeMode == "" {
		opts.PackSizeMode = domain.PackSizeUncompressed
	}

	repo, err := s.gitRepo.FindRepository(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRepositoryNotFound, err)
	}
	logging.Logger.Info("Repository directory: "+repo.GitDir,
		"object_format", repo.ObjectFormat,
		"bare", repo.Bare)

	index, commits, err := s.prepare(ctx, repo)
	if err != nil {
		return nil, err
	}

	run := &domain.Run{
		ID:           uuid.New().String(),
		PackSizeMode: opts.PackSizeMode,
		RepoPath:     repo.Path(),
		StartedAt:    s.now(),
	}

	logging.Logger.Info("Fetching all related objects...")

	visited := NewVisitedSet()
	resolver := NewSizeResolver(s.gitRepo, repo, index, opts.PackSizeMode)
	walker := NewWalker(s.gitRepo, repo, resolver, visited)
	stats := &domain.WalkStats{TotalCommits: len(commits)}

	for _, commit := range commits {
		stats.Commits++

		var size domain.Size
		if _, err := walker.Walk(ctx, &size, domain.ObjectRef{ID: commit.ID, Type: domain.ObjectTypeCommit}, stats); err != nil {
			return nil, fmt.Errorf("measuring commit %s: %w", commit.ID, err)
		}
		run.Totals = run.Totals.Plus(size)

		observer.OnCommitMeasured(domain.CommitSize{Commit: commit, Size: size})
		observer.OnProgress(*stats)
	}

	run.Commits = len(commits)
	run.Objects = visited.Len()
	run.FinishedAt = s.now()

	logging.Logger.Debug("Measurement finished",
		"run_id", run.ID,
		"commits", run.Commits,
		"objects", run.Objects,
		"failures", stats.Failures,
		"duration", run.FinishedAt.Sub(run.StartedAt))

	return run, nil
}

// prepare loads the packed object index and the commit list concurrently
func (s *MeasureService) prepare(ctx context.Context, repo *domain.Repository) (domain.PackedIndex, []domain.CommitRecord, error) {
	var (
		index   domain.PackedIndex
		commits []domain.CommitRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		index = s.loadPackedIndex(gctx, repo)
		return nil
	})

	g.Go(func() error {
		logging.Logger.Info("Fetching all commits...")
		list, err := s.gitRepo.ListCommits(gctx, repo)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrNoCommits, err)
		}
		commits = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if len(commits) == 0 {
		return nil, nil, domain.ErrNoCommits
	}

	return index, commits, nil
}

// loadPackedIndex returns the packed object index. Without readable packs
// every object is resolved as unpacked.
func (s *MeasureService) loadPackedIndex(ctx context.Context, repo *domain.Repository) domain.PackedIndex {
	packs, err := s.gitRepo.ListPackIndexFiles(ctx, repo)
	if err != nil {
		logging.Logger.Warn("cannot list pack files", "error", err)
		return domain.PackedIndex{}
	}
	if len(packs) == 0 {
		logging.Logger.Warn("cannot find any pack files!")
		return domain.PackedIndex{}
	}

	logging.Logger.Info("Fetching all packed object sizes...", "packs", len(packs))
	index, err := s.gitRepo.ListPackedObjectSizes(ctx, repo, packs)
	if err != nil {
		logging.Logger.Warn("cannot read pack indexes, treating all objects as unpacked", "error", err)
		return domain.PackedIndex{}
	}

	logging.Logger.Debug("Packed index loaded", "objects", len(index))
	return index
}
