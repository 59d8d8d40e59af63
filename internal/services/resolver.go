package services

import (
	"context"
	"fmt"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/ports"
)

// SizeResolver resolves object sizes. Objects found in the packed index are
// answered from it; any other object costs one loose size query.
type SizeResolver struct {
	index   domain.PackedIndex
	mode    domain.PackSizeMode
	objects ports.ObjectReader
	repo    *domain.Repository
}

// NewSizeResolver creates a new SizeResolver
func NewSizeResolver(objects ports.ObjectReader, repo *domain.Repository, index domain.PackedIndex, mode domain.PackSizeMode) *SizeResolver {
	return &SizeResolver{
		index:   index,
		mode:    mode,
		objects: objects,
		repo:    repo,
	}
}

// Resolve returns the size of id and where it came from. On a failed loose
// query the returned resolution is a zero unpacked size and err is non-nil.
func (r *SizeResolver) Resolve(ctx context.Context, id domain.ObjectID) (domain.Resolution, error) {
	if p, ok := r.index[id]; ok {
		return domain.Resolution{Kind: domain.SizeKindPacked, Size: r.mode.Of(p)}, nil
	}

	size, err := r.objects.GetLooseObjectSize(ctx, r.repo, id)
	if err != nil {
		return domain.Resolution{Kind: domain.SizeKindUnpacked}, fmt.Errorf("%w: size of %s: %w", domain.ErrObjectQuery, id, err)
	}

	return domain.Resolution{Kind: domain.SizeKindUnpacked, Size: size}, nil
}
