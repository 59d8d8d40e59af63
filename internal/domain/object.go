package domain

import "strings"

// ObjectFormat is the hash algorithm a repository uses to name objects
type ObjectFormat string

const (
	ObjectFormatSHA1   ObjectFormat = "sha1"
	ObjectFormatSHA256 ObjectFormat = "sha256"
)

// HexLen returns the length of a hex-encoded object name in this format
func (f ObjectFormat) HexLen() int {
	if f == ObjectFormatSHA256 {
		return 64
	}
	return 40
}

// ObjectID is the hex-encoded, content-derived name of an object
type ObjectID string

// Valid reports whether id is a well-formed object name for the given format
func (id ObjectID) Valid(format ObjectFormat) bool {
	if len(id) != format.HexLen() {
		return false
	}
	return strings.IndexFunc(string(id), func(r rune) bool {
		return !(r >= '0' && r <= '9') && !(r >= 'a' && r <= 'f')
	}) == -1
}

// ObjectType is the declared type of an object in the graph
type ObjectType string

const (
	ObjectTypeBlob   ObjectType = "blob"
	ObjectTypeCommit ObjectType = "commit"
	ObjectTypeTree   ObjectType = "tree"
)

// ObjectRef is a typed reference to an object, as found in a commit or tree
type ObjectRef struct {
	ID   ObjectID
	Type ObjectType
}

// PackedObject is one entry of the packed object index
type PackedObject struct {
	Size       int64 // Declared uncompressed size
	StoredSize int64 // Size inside the pack (compressed, possibly deltified)
}

// PackedIndex maps object ids to their pack entries. Built once, read-only afterwards.
type PackedIndex map[ObjectID]PackedObject

// Repository describes a located git repository
type Repository struct {
	Bare         bool
	GitDir       string // Absolute path to the git directory
	ObjectFormat ObjectFormat
	WorkDir      string // Top-level working directory (empty for bare repositories)
}

// Path returns the path used to identify the repository in reports
func (r *Repository) Path() string {
	if r.WorkDir != "" {
		return r.WorkDir
	}
	return r.GitDir
}
