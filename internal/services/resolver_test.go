package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitdu/internal/domain"
	portsmocks "github.com/renato0307/gitdu/internal/ports/mocks"
)

var testRepo = &domain.Repository{GitDir: "/src/repo/.git", WorkDir: "/src/repo", ObjectFormat: domain.ObjectFormatSHA1}

func TestResolve_PackedObjectNeverQueriesStore(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t) // no expectations: any call fails the test
	index := domain.PackedIndex{"x": {Size: 500, StoredSize: 90}}

	resolver := NewSizeResolver(gitRepo, testRepo, index, domain.PackSizeUncompressed)
	res, err := resolver.Resolve(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, domain.Resolution{Kind: domain.SizeKindPacked, Size: 500}, res)
	gitRepo.AssertNotCalled(t, "GetLooseObjectSize", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_StoredModeUsesSizeInPack(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	index := domain.PackedIndex{"x": {Size: 500, StoredSize: 90}}

	resolver := NewSizeResolver(gitRepo, testRepo, index, domain.PackSizeStored)
	res, err := resolver.Resolve(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, domain.Resolution{Kind: domain.SizeKindPacked, Size: 90}, res)
}

func TestResolve_LooseObjectQueriedOnce(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	gitRepo.EXPECT().GetLooseObjectSize(mock.Anything, testRepo, domain.ObjectID("y")).Return(int64(42), nil).Once()

	resolver := NewSizeResolver(gitRepo, testRepo, domain.PackedIndex{}, domain.PackSizeUncompressed)
	res, err := resolver.Resolve(context.Background(), "y")

	require.NoError(t, err)
	assert.Equal(t, domain.Resolution{Kind: domain.SizeKindUnpacked, Size: 42}, res)
}

func TestResolve_QueryFailureIsReported(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	gitRepo.EXPECT().GetLooseObjectSize(mock.Anything, testRepo, domain.ObjectID("bad")).
		Return(int64(0), errors.New("exit status 128"))

	resolver := NewSizeResolver(gitRepo, testRepo, nil, domain.PackSizeUncompressed)
	res, err := resolver.Resolve(context.Background(), "bad")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrObjectQuery)
	assert.Contains(t, err.Error(), "exit status 128")
	assert.Equal(t, domain.Resolution{Kind: domain.SizeKindUnpacked}, res)
}
