package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/logging"
)

const (
	idA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	idB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	idC = "cccccccccccccccccccccccccccccccccccccccc"
	idD = "dddddddddddddddddddddddddddddddddddddddd"
)

func commitSize(id domain.ObjectID, ts int64, packed, unpacked int64) domain.CommitSize {
	return domain.CommitSize{
		Commit: domain.CommitRecord{ID: id, Timestamp: ts},
		Size:   domain.Size{Packed: packed, Unpacked: unpacked},
	}
}

func newTestPrinter(opts PrinterOptions) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewPrinter(&stdout, logging.NewConsole(&stderr), opts), &stdout, &stderr
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteCommitLine(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCommitLine(&buf, commitSize(idA, 1700000000, 5000, 250)))

	assert.Equal(t, "1700000000 "+idA+" 5250\n", buf.String())
}

func TestPrinter_CommitLinesInOrder(t *testing.T) {
	p, stdout, stderr := newTestPrinter(PrinterOptions{})

	p.OnCommitMeasured(commitSize(idA, 100, 5000, 250))
	p.OnCommitMeasured(commitSize(idB, 200, 0, 0))

	assert.Equal(t, "100 "+idA+" 5250\n200 "+idB+" 0\n", stdout.String())
	assert.Empty(t, stderr.String(), "per-commit records never go to the diagnostic stream")
	assert.NoError(t, p.Err())
	assert.Nil(t, p.Commits(), "commits are only kept when recording")
}

func TestPrinter_Record(t *testing.T) {
	p, _, _ := newTestPrinter(PrinterOptions{Record: true})

	p.OnCommitMeasured(commitSize(idA, 100, 1, 2))
	p.OnCommitMeasured(commitSize(idB, 200, 3, 4))

	assert.Equal(t, []domain.CommitSize{
		commitSize(idA, 100, 1, 2),
		commitSize(idB, 200, 3, 4),
	}, p.Commits())
}

func TestPrinter_WriteErrorIsKept(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinter(failingWriter{}, logging.NewConsole(&stderr), PrinterOptions{Record: true})

	p.OnCommitMeasured(commitSize(idA, 100, 1, 2))
	p.OnCommitMeasured(commitSize(idB, 200, 3, 4))

	require.Error(t, p.Err())
	assert.Contains(t, p.Err().Error(), "broken pipe")
	assert.Len(t, p.Commits(), 2, "measurement continues after a write error")
}

func TestPrinter_Progress(t *testing.T) {
	p, stdout, stderr := newTestPrinter(PrinterOptions{Progress: true})

	p.OnProgress(domain.WalkStats{Commits: 1, TotalCommits: 2, Objects: 3})
	p.OnProgress(domain.WalkStats{Commits: 2, TotalCommits: 2, Objects: 8})

	assert.Empty(t, stdout.String())
	assert.Equal(t,
		"\r# 1/2 commits done (3 object(s) found)"+
			"\r# 2/2 commits done (8 object(s) found)",
		stderr.String())
}

func TestPrinter_ProgressDisabled(t *testing.T) {
	p, _, stderr := newTestPrinter(PrinterOptions{})

	p.OnProgress(domain.WalkStats{Commits: 1, TotalCommits: 2, Objects: 3})

	assert.Empty(t, stderr.String())
}

func TestPrinter_FinishSummary(t *testing.T) {
	p, stdout, stderr := newTestPrinter(PrinterOptions{})

	p.Finish(&domain.Run{Totals: domain.Size{Packed: 5250, Unpacked: 508}})

	assert.Empty(t, stdout.String())
	assert.Equal(t,
		"# Total packed size: 5250 (5.1 KiB)\n"+
			"# Total unpacked size: 508 (508 B)\n"+
			"# Total size: 5758 (5.6 KiB)\n",
		stderr.String())
}

func TestPrinter_FinishClearsProgress(t *testing.T) {
	p, _, stderr := newTestPrinter(PrinterOptions{Progress: true})
	p.OnProgress(domain.WalkStats{Commits: 1, TotalCommits: 1, Objects: 1})
	status := "# 1/1 commits done (1 object(s) found)"

	p.Finish(&domain.Run{})

	assert.True(t, strings.HasPrefix(stderr.String(),
		"\r"+status+"\r"+strings.Repeat(" ", len(status))+"\r# Total packed size: 0 (0 B)\n"))
}

func TestPrinter_FinishTop(t *testing.T) {
	p, _, stderr := newTestPrinter(PrinterOptions{Top: 2})

	p.OnCommitMeasured(commitSize(idA, 100, 10, 0))
	p.OnCommitMeasured(commitSize(idB, 200, 0, 30))
	p.OnCommitMeasured(commitSize(idC, 300, 20, 0))
	p.OnCommitMeasured(commitSize(idD, 400, 30, 0))
	p.Finish(&domain.Run{Totals: domain.Size{Packed: 60, Unpacked: 30}})

	lines := strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "# Largest 2 commit(s):", lines[3])
	assert.Equal(t, "#   1. "+idB+" 30 (30 B, packed 0 B, unpacked 30 B)", lines[4])
	assert.Equal(t, "#   2. "+idD+" 30 (30 B, packed 30 B, unpacked 0 B)", lines[5])
}

func TestRanking(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		sizes    []int64
		expected []int64
	}{
		{name: "fewer than limit", limit: 5, sizes: []int64{3, 1, 2}, expected: []int64{3, 2, 1}},
		{name: "keeps largest", limit: 2, sizes: []int64{3, 9, 1, 7}, expected: []int64{9, 7}},
		{name: "empty", limit: 3, sizes: nil, expected: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRanking(tt.limit)
			for i, size := range tt.sizes {
				r.Add(commitSize(idA, int64(i), size, 0))
			}

			got := []int64{}
			for _, cs := range r.Top() {
				got = append(got, cs.Size.Total())
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRanking_TiesKeepEnumerationOrder(t *testing.T) {
	r := NewRanking(2)

	r.Add(commitSize(idA, 1, 5, 0))
	r.Add(commitSize(idB, 2, 5, 0))
	r.Add(commitSize(idC, 3, 5, 0))

	top := r.Top()
	require.Len(t, top, 2)
	assert.Equal(t, domain.ObjectID(idA), top[0].Commit.ID)
	assert.Equal(t, domain.ObjectID(idB), top[1].Commit.ID)
}

func TestWriteRuns(t *testing.T) {
	var buf bytes.Buffer
	runs := []domain.Run{
		{
			Commits:      2,
			ID:           "run-1",
			Objects:      8,
			PackSizeMode: domain.PackSizeUncompressed,
			StartedAt:    time.Now().Add(-2 * time.Hour),
			Totals:       domain.Size{Packed: 5250, Unpacked: 508},
		},
	}

	require.NoError(t, WriteRuns(&buf, runs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"ID", "STARTED", "COMMITS", "OBJECTS", "PACK", "SIZE", "PACKED", "UNPACKED", "TOTAL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"run-1", "2", "hours", "ago", "2", "8", "uncompressed", "5250", "508", "5.6", "KiB"}, strings.Fields(lines[1]))
}
