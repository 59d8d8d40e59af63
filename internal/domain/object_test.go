package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectID_Valid(t *testing.T) {
	tests := []struct {
		name     string
		id       ObjectID
		format   ObjectFormat
		expected bool
	}{
		{"sha1", ObjectID(strings.Repeat("a1", 20)), ObjectFormatSHA1, true},
		{"sha256", ObjectID(strings.Repeat("0f", 32)), ObjectFormatSHA256, true},
		{"sha1 id in sha256 repo", ObjectID(strings.Repeat("a1", 20)), ObjectFormatSHA256, false},
		{"uppercase", ObjectID(strings.Repeat("A1", 20)), ObjectFormatSHA1, false},
		{"not hex", ObjectID(strings.Repeat("zz", 20)), ObjectFormatSHA1, false},
		{"empty", ObjectID(""), ObjectFormatSHA1, false},
		{"verify-pack footer", ObjectID("non delta: 12 objects"), ObjectFormatSHA1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.id.Valid(tt.format))
		})
	}
}

func TestSize_AddClassifiesByKind(t *testing.T) {
	var s Size
	s.Add(Resolution{Kind: SizeKindPacked, Size: 500})
	s.Add(Resolution{Kind: SizeKindUnpacked, Size: 20})
	s.Add(Resolution{Kind: SizeKindPacked, Size: 1})

	assert.Equal(t, int64(501), s.Packed)
	assert.Equal(t, int64(20), s.Unpacked)
	assert.Equal(t, int64(521), s.Total())
}

func TestSize_Plus(t *testing.T) {
	a := Size{Packed: 1, Unpacked: 2}
	b := Size{Packed: 10, Unpacked: 20}

	assert.Equal(t, Size{Packed: 11, Unpacked: 22}, a.Plus(b))
	assert.Equal(t, Size{Packed: 1, Unpacked: 2}, a, "Plus must not modify the receiver")
}

func TestParsePackSizeMode(t *testing.T) {
	mode, err := ParsePackSizeMode("")
	require.NoError(t, err)
	assert.Equal(t, PackSizeUncompressed, mode)

	mode, err = ParsePackSizeMode("stored")
	require.NoError(t, err)
	assert.Equal(t, PackSizeStored, mode)

	_, err = ParsePackSizeMode("zipped")
	assert.Error(t, err)
}

func TestPackSizeMode_Of(t *testing.T) {
	p := PackedObject{Size: 500, StoredSize: 120}

	assert.Equal(t, int64(500), PackSizeUncompressed.Of(p))
	assert.Equal(t, int64(120), PackSizeStored.Of(p))
}

func TestRepository_Path(t *testing.T) {
	assert.Equal(t, "/src/repo", (&Repository{WorkDir: "/src/repo", GitDir: "/src/repo/.git"}).Path())
	assert.Equal(t, "/srv/repo.git", (&Repository{GitDir: "/srv/repo.git", Bare: true}).Path())
}
