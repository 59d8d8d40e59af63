package domain

import "errors"

var (
	ErrNoCommits          = errors.New("cannot find any commits")
	ErrNoTreeReference    = errors.New("cannot find a tree from commit")
	ErrObjectQuery        = errors.New("object query failed")
	ErrRepositoryNotFound = errors.New("cannot detect repository root directory")
	ErrRunNotFound        = errors.New("run not found")
	ErrUnknownObjectType  = errors.New("unknown object type")
)
