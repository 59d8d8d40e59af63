package console

import (
	"github.com/google/btree"

	"github.com/renato0307/gitdu/internal/domain"
)

type rankedCommit struct {
	commit   domain.CommitSize
	position int
}

// rankedLess orders by total size descending, then by enumeration order
func rankedLess(a, b rankedCommit) bool {
	if at, bt := a.commit.Size.Total(), b.commit.Size.Total(); at != bt {
		return at > bt
	}
	return a.position < b.position
}

// Ranking keeps the n largest commits seen so far
type Ranking struct {
	limit int
	seen  int
	tree  *btree.BTreeG[rankedCommit]
}

// NewRanking creates a Ranking holding at most limit commits
func NewRanking(limit int) *Ranking {
	return &Ranking{
		limit: limit,
		tree:  btree.NewG(8, rankedLess),
	}
}

// Add offers a commit to the ranking
func (r *Ranking) Add(cs domain.CommitSize) {
	r.tree.ReplaceOrInsert(rankedCommit{commit: cs, position: r.seen})
	r.seen++

	if r.tree.Len() > r.limit {
		r.tree.DeleteMax()
	}
}

// Top returns the ranked commits, largest first
func (r *Ranking) Top() []domain.CommitSize {
	result := make([]domain.CommitSize, 0, r.tree.Len())
	r.tree.Ascend(func(item rankedCommit) bool {
		result = append(result, item.commit)
		return true
	})
	return result
}
