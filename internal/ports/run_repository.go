package ports

import (
	"context"

	"github.com/renato0307/gitdu/internal/domain"
)

// RunReader reads saved measurement runs
type RunReader interface {
	GetRun(ctx context.Context, id string) (*domain.Run, error)
	GetRunCommits(ctx context.Context, id string) ([]domain.CommitSize, error)
	ListRuns(ctx context.Context, repoPath string, limit int) ([]domain.Run, error)
}

// RunWriter persists measurement runs
type RunWriter interface {
	SaveRun(ctx context.Context, run domain.Run, commits []domain.CommitSize) error
}

// RunRepository is the composite interface
type RunRepository interface {
	RunReader
	RunWriter
	Close() error
}
