package storage

import (
	"github.com/renato0307/gitdu/internal/domain"
)

// runModelToDomain converts a RunModel (GORM) to domain.Run
func runModelToDomain(m RunModel) domain.Run {
	return domain.Run{
		Commits:      m.Commits,
		FinishedAt:   m.FinishedAt,
		ID:           m.ID,
		Objects:      m.Objects,
		PackSizeMode: domain.PackSizeMode(m.PackSizeMode),
		RepoPath:     m.RepoPath,
		StartedAt:    m.StartedAt,
		Totals: domain.Size{
			Packed:   m.PackedBytes,
			Unpacked: m.UnpackedBytes,
		},
	}
}

// domainToRunModel converts a domain.Run to RunModel (GORM)
func domainToRunModel(r domain.Run) RunModel {
	return RunModel{
		Commits:       r.Commits,
		FinishedAt:    r.FinishedAt.UTC(),
		ID:            r.ID,
		Objects:       r.Objects,
		PackSizeMode:  string(r.PackSizeMode),
		PackedBytes:   r.Totals.Packed,
		RepoPath:      r.RepoPath,
		StartedAt:     r.StartedAt.UTC(),
		UnpackedBytes: r.Totals.Unpacked,
	}
}

// commitSizeModelToDomain converts a CommitSizeModel (GORM) to domain.CommitSize
func commitSizeModelToDomain(m CommitSizeModel) domain.CommitSize {
	return domain.CommitSize{
		Commit: domain.CommitRecord{
			ID:        domain.ObjectID(m.CommitID),
			Timestamp: m.Timestamp,
		},
		Size: domain.Size{
			Packed:   m.PackedBytes,
			Unpacked: m.UnpackedBytes,
		},
	}
}

// domainToCommitSizeModels converts per-commit sizes to models, keeping their order
func domainToCommitSizeModels(runID string, commits []domain.CommitSize) []CommitSizeModel {
	models := make([]CommitSizeModel, 0, len(commits))
	for i, c := range commits {
		models = append(models, CommitSizeModel{
			CommitID:      string(c.Commit.ID),
			PackedBytes:   c.Size.Packed,
			Position:      i,
			RunID:         runID,
			Timestamp:     c.Commit.Timestamp,
			UnpackedBytes: c.Size.Unpacked,
		})
	}
	return models
}
