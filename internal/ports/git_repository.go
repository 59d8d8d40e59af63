package ports

import (
	"context"

	"github.com/renato0307/gitdu/internal/domain"
)

// RepoLocator finds the repository enclosing a path
type RepoLocator interface {
	FindRepository(ctx context.Context, startPath string) (*domain.Repository, error)
}

// HistoryReader enumerates the commit history
type HistoryReader interface {
	// ListCommits returns every commit reachable from any ref, oldest first
	ListCommits(ctx context.Context, repo *domain.Repository) ([]domain.CommitRecord, error)
}

// PackIndexReader reads pack archive metadata
type PackIndexReader interface {
	ListPackIndexFiles(ctx context.Context, repo *domain.Repository) ([]string, error)
	ListPackedObjectSizes(ctx context.Context, repo *domain.Repository, idxFiles []string) (domain.PackedIndex, error)
}

// ObjectReader answers point queries about single objects
type ObjectReader interface {
	DescribeCommit(ctx context.Context, repo *domain.Repository, id domain.ObjectID) (domain.ObjectID, error)
	DescribeTree(ctx context.Context, repo *domain.Repository, id domain.ObjectID) ([]domain.ObjectRef, error)
	GetLooseObjectSize(ctx context.Context, repo *domain.Repository, id domain.ObjectID) (int64, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	HistoryReader
	ObjectReader
	PackIndexReader
	RepoLocator
}
