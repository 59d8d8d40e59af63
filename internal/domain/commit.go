package domain

import "time"

// CommitRecord is one entry of the enumerated commit history
type CommitRecord struct {
	ID        ObjectID
	Timestamp int64 // Committer time, seconds since epoch
}

// CommitSize is the size attributed to a commit by its walk
type CommitSize struct {
	Commit CommitRecord
	Size   Size
}

// WalkStats holds progress counters shared by every walk of a run
type WalkStats struct {
	Commits      int // Commits processed so far
	Failures     int // Objects whose size or children could not be read
	Objects      int // Distinct objects discovered
	TotalCommits int
}

// Run is the outcome of measuring a repository once
type Run struct {
	Commits      int
	FinishedAt   time.Time
	ID           string
	Objects      int
	PackSizeMode PackSizeMode
	RepoPath     string
	StartedAt    time.Time
	Totals       Size
}
