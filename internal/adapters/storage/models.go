package storage

import "time"

// RunModel is the GORM model for runs table
type RunModel struct {
	Commits       int `gorm:"not null;default:0"`
	CreatedAt     time.Time
	FinishedAt    time.Time `gorm:"not null"`
	ID            string    `gorm:"primaryKey"`
	Objects       int       `gorm:"not null;default:0"`
	PackSizeMode  string    `gorm:"not null;default:'uncompressed';check:pack_size_mode IN ('uncompressed','stored')"`
	PackedBytes   int64     `gorm:"not null;default:0"`
	RepoPath      string    `gorm:"not null;index:idx_repo_started,priority:1"`
	StartedAt     time.Time `gorm:"not null;index:idx_repo_started,priority:2"`
	UnpackedBytes int64     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (RunModel) TableName() string { return "runs" }

// CommitSizeModel is the GORM model for per-commit sizes of a run
type CommitSizeModel struct {
	CommitID      string `gorm:"not null"`
	PackedBytes   int64  `gorm:"not null;default:0"`
	Position      int    `gorm:"primaryKey;autoIncrement:false"`
	RunID         string `gorm:"primaryKey"`
	Timestamp     int64  `gorm:"not null"`
	UnpackedBytes int64  `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (CommitSizeModel) TableName() string { return "commit_sizes" }
