package git

import (
	"context"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// RepoLocator methods

// FindRepository implements RepoLocator.FindRepository
func (r *CLIRepository) FindRepository(ctx context.Context, startPath string) (*domain.Repository, error) {
	return findRepository(ctx, startPath)
}

// HistoryReader methods

// ListCommits implements HistoryReader.ListCommits
func (r *CLIRepository) ListCommits(ctx context.Context, repo *domain.Repository) ([]domain.CommitRecord, error) {
	return listCommits(ctx, repo)
}

// PackIndexReader methods

// ListPackIndexFiles implements PackIndexReader.ListPackIndexFiles
func (r *CLIRepository) ListPackIndexFiles(ctx context.Context, repo *domain.Repository) ([]string, error) {
	return listPackIndexFiles(repo)
}

// ListPackedObjectSizes implements PackIndexReader.ListPackedObjectSizes
func (r *CLIRepository) ListPackedObjectSizes(ctx context.Context, repo *domain.Repository, idxFiles []string) (domain.PackedIndex, error) {
	return listPackedObjectSizes(ctx, repo, idxFiles)
}

// ObjectReader methods

// DescribeCommit implements ObjectReader.DescribeCommit
func (r *CLIRepository) DescribeCommit(ctx context.Context, repo *domain.Repository, id domain.ObjectID) (domain.ObjectID, error) {
	return describeCommit(ctx, repo, id)
}

// DescribeTree implements ObjectReader.DescribeTree
func (r *CLIRepository) DescribeTree(ctx context.Context, repo *domain.Repository, id domain.ObjectID) ([]domain.ObjectRef, error) {
	return describeTree(ctx, repo, id)
}

// GetLooseObjectSize implements ObjectReader.GetLooseObjectSize
func (r *CLIRepository) GetLooseObjectSize(ctx context.Context, repo *domain.Repository, id domain.ObjectID) (int64, error) {
	return getObjectSize(ctx, repo, id)
}
