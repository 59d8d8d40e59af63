package ports

import "github.com/renato0307/gitdu/internal/domain"

// MeasureObserver receives results while a repository is being measured
type MeasureObserver interface {
	OnCommitMeasured(cs domain.CommitSize)
	OnProgress(stats domain.WalkStats)
}
