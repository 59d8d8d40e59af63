package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/logging"
	portsmocks "github.com/renato0307/gitdu/internal/ports/mocks"
)

// fakeGraph is an in-memory object store served through MockGitRepository
type fakeGraph struct {
	commits    map[domain.ObjectID]domain.ObjectID
	interrupts map[domain.ObjectID]context.CancelFunc // Cancel the run when these ids are queried
	loose      map[domain.ObjectID]int64
	looseCalls map[domain.ObjectID]int
	order      []domain.ObjectID // Loose size queries, in call order
	trees      map[domain.ObjectID][]domain.ObjectRef
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		commits:    make(map[domain.ObjectID]domain.ObjectID),
		interrupts: make(map[domain.ObjectID]context.CancelFunc),
		loose:      make(map[domain.ObjectID]int64),
		looseCalls: make(map[domain.ObjectID]int),
		trees:      make(map[domain.ObjectID][]domain.ObjectRef),
	}
}

func (g *fakeGraph) commit(id, tree domain.ObjectID, size int64) {
	g.commits[id] = tree
	g.loose[id] = size
}

func (g *fakeGraph) tree(id domain.ObjectID, size int64, entries ...domain.ObjectRef) {
	g.trees[id] = entries
	g.loose[id] = size
}

func (g *fakeGraph) blob(id domain.ObjectID, size int64) {
	g.loose[id] = size
}

func (g *fakeGraph) install(m *portsmocks.MockGitRepository) {
	m.EXPECT().DescribeCommit(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Repository, id domain.ObjectID) (domain.ObjectID, error) {
			if err := g.interrupt(ctx, id); err != nil {
				return "", err
			}
			tree, ok := g.commits[id]
			if !ok {
				return "", fmt.Errorf("git cat-file -p %s: exit status 128", id)
			}
			if tree == "" {
				return "", domain.ErrNoTreeReference
			}
			return tree, nil
		}).Maybe()

	m.EXPECT().DescribeTree(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Repository, id domain.ObjectID) ([]domain.ObjectRef, error) {
			if err := g.interrupt(ctx, id); err != nil {
				return nil, err
			}
			entries, ok := g.trees[id]
			if !ok {
				return nil, fmt.Errorf("git cat-file -p %s: exit status 128", id)
			}
			return entries, nil
		}).Maybe()

	m.EXPECT().GetLooseObjectSize(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Repository, id domain.ObjectID) (int64, error) {
			if err := g.interrupt(ctx, id); err != nil {
				return 0, err
			}
			g.looseCalls[id]++
			g.order = append(g.order, id)
			size, ok := g.loose[id]
			if !ok {
				return 0, errors.New("git cat-file -s: exit status 128")
			}
			return size, nil
		}).Maybe()
}

// interrupt cancels the run if id is registered, mimicking a git process
// killed by Ctrl-C, and returns the resulting context error
func (g *fakeGraph) interrupt(ctx context.Context, id domain.ObjectID) error {
	cancel, ok := g.interrupts[id]
	if !ok {
		return nil
	}
	cancel()
	return ctx.Err()
}

func blobRef(id domain.ObjectID) domain.ObjectRef {
	return domain.ObjectRef{ID: id, Type: domain.ObjectTypeBlob}
}

func treeRef(id domain.ObjectID) domain.ObjectRef {
	return domain.ObjectRef{ID: id, Type: domain.ObjectTypeTree}
}

func commitRef(id domain.ObjectID) domain.ObjectRef {
	return domain.ObjectRef{ID: id, Type: domain.ObjectTypeCommit}
}

// captureLogs routes the package logger to a buffer for the duration of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := logging.Logger
	logging.Logger = slog.New(logging.NewConsoleHandler(logging.NewConsole(&buf), slog.LevelInfo))
	t.Cleanup(func() { logging.Logger = previous })

	return &buf
}

func logLines(buf *bytes.Buffer, prefix string) []string {
	var out []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, prefix) {
			out = append(out, line)
		}
	}
	return out
}
