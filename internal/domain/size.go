package domain

import "fmt"

// SizeKind tells which size source produced a resolution
type SizeKind int

const (
	SizeKindUnpacked SizeKind = iota
	SizeKindPacked
)

// String implements fmt.Stringer
func (k SizeKind) String() string {
	if k == SizeKindPacked {
		return "packed"
	}
	return "unpacked"
}

// Resolution is the resolved size of a single object
type Resolution struct {
	Kind SizeKind
	Size int64
}

// Size accumulates packed and unpacked bytes
type Size struct {
	Packed   int64
	Unpacked int64
}

// Add adds a resolution to the counter matching its kind
func (s *Size) Add(r Resolution) {
	switch r.Kind {
	case SizeKindPacked:
		s.Packed += r.Size
	default:
		s.Unpacked += r.Size
	}
}

// Plus returns the field-wise sum of s and o
func (s Size) Plus(o Size) Size {
	return Size{
		Packed:   s.Packed + o.Packed,
		Unpacked: s.Unpacked + o.Unpacked,
	}
}

// Total returns packed + unpacked
func (s Size) Total() int64 {
	return s.Packed + s.Unpacked
}

// PackSizeMode selects which pack index column counts as an object's packed size
type PackSizeMode string

const (
	PackSizeStored       PackSizeMode = "stored"
	PackSizeUncompressed PackSizeMode = "uncompressed"
)

// ParsePackSizeMode validates a pack size mode name
func ParsePackSizeMode(s string) (PackSizeMode, error) {
	switch PackSizeMode(s) {
	case PackSizeStored, PackSizeUncompressed:
		return PackSizeMode(s), nil
	case "":
		return PackSizeUncompressed, nil
	}
	return "", fmt.Errorf("invalid pack size mode %q (expected %q or %q)", s, PackSizeUncompressed, PackSizeStored)
}

// Of returns the size of a packed object under this mode
func (m PackSizeMode) Of(p PackedObject) int64 {
	if m == PackSizeStored {
		return p.StoredSize
	}
	return p.Size
}
