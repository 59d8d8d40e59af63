package services

import (
	"context"
	"fmt"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/ports"
)

// HistoryService stores and reads back measurement runs
type HistoryService struct {
	gitRepo ports.RepoLocator
	runRepo ports.RunRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(gitRepo ports.RepoLocator, runRepo ports.RunRepository) *HistoryService {
	return &HistoryService{
		gitRepo: gitRepo,
		runRepo: runRepo,
	}
}

// Save persists a finished run with its per-commit sizes
func (s *HistoryService) Save(ctx context.Context, run *domain.Run, commits []domain.CommitSize) error {
	if err := s.runRepo.SaveRun(ctx, *run, commits); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	return nil
}

// ListForPath lists the most recent runs of the repository enclosing path
func (s *HistoryService) ListForPath(ctx context.Context, path string, limit int) ([]domain.Run, error) {
	repo, err := s.gitRepo.FindRepository(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRepositoryNotFound, err)
	}
	return s.runRepo.ListRuns(ctx, repo.Path(), limit)
}

// Show returns a saved run and its per-commit sizes in measurement order
func (s *HistoryService) Show(ctx context.Context, id string) (*domain.Run, []domain.CommitSize, error) {
	run, err := s.runRepo.GetRun(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	commits, err := s.runRepo.GetRunCommits(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load commits of run %s: %w", id, err)
	}

	return run, commits, nil
}
