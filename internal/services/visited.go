package services

import "github.com/renato0307/gitdu/internal/domain"

// VisitedSet records every object already counted during a run. It only grows.
type VisitedSet struct {
	seen map[domain.ObjectID]struct{}
}

// NewVisitedSet creates an empty VisitedSet
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{seen: make(map[domain.ObjectID]struct{})}
}

// MarkAndCheck marks id as seen and reports whether it had been seen before
func (v *VisitedSet) MarkAndCheck(id domain.ObjectID) bool {
	if _, ok := v.seen[id]; ok {
		return true
	}
	v.seen[id] = struct{}{}
	return false
}

// Len returns the number of distinct objects seen
func (v *VisitedSet) Len() int {
	return len(v.seen)
}
