package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/logging"
	"github.com/renato0307/gitdu/internal/ports"
)

// Walker walks the object graph depth-first, adding the size of every object
// not yet visited during the run to an accumulator
type Walker struct {
	objects  ports.ObjectReader
	repo     *domain.Repository
	resolver *SizeResolver
	visited  *VisitedSet
}

// NewWalker creates a new Walker. visited must be shared by every walk of a run.
func NewWalker(objects ports.ObjectReader, repo *domain.Repository, resolver *SizeResolver, visited *VisitedSet) *Walker {
	return &Walker{
		objects:  objects,
		repo:     repo,
		resolver: resolver,
		visited:  visited,
	}
}

// Walk visits root and everything reachable from it, in pre-order with
// children in declared order. Objects already visited (in this or an earlier
// walk) add nothing and are not expanded. Read failures are logged and the
// walk continues; only context cancellation stops it.
func (w *Walker) Walk(ctx context.Context, acc *domain.Size, root domain.ObjectRef, stats *domain.WalkStats) (*domain.Size, error) {
	stack := []domain.ObjectRef{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return acc, err
		}

		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.visited.MarkAndCheck(ref.ID) {
			continue
		}

		res, err := w.resolver.Resolve(ctx, ref.ID)
		if err != nil && ctx.Err() == nil {
			logging.Logger.Warn("cannot read object size", "object_id", ref.ID, "type", ref.Type, "error", err)
			stats.Failures++
		}
		acc.Add(res)
		stats.Objects++

		children := w.children(ctx, ref, stats)

		// Reverse push keeps the declared order on pop
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	// A git call interrupted by cancellation leaves the walk incomplete
	return acc, ctx.Err()
}

// children returns the objects referenced by ref, or nil when it has none or
// they cannot be read
func (w *Walker) children(ctx context.Context, ref domain.ObjectRef, stats *domain.WalkStats) []domain.ObjectRef {
	switch ref.Type {
	case domain.ObjectTypeCommit:
		treeID, err := w.objects.DescribeCommit(ctx, w.repo, ref.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, domain.ErrNoTreeReference) {
				logging.Logger.Error("cannot find a tree from commit", "commit_id", ref.ID)
			} else {
				logging.Logger.Error("cannot read commit", "commit_id", ref.ID, "error", err)
			}
			stats.Failures++
			return nil
		}
		return []domain.ObjectRef{{ID: treeID, Type: domain.ObjectTypeTree}}

	case domain.ObjectTypeTree:
		entries, err := w.objects.DescribeTree(ctx, w.repo, ref.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logging.Logger.Error("cannot read tree", "tree_id", ref.ID, "error", err)
			stats.Failures++
			return nil
		}
		return entries

	case domain.ObjectTypeBlob:
		return nil

	default:
		err := fmt.Errorf("%w: %s", domain.ErrUnknownObjectType, ref.Type)
		logging.Logger.Warn("skipping object", "object_id", ref.ID, "error", err)
		return nil
	}
}
