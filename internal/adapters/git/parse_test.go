package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitdu/internal/domain"
)

const (
	commitA = "1111111111111111111111111111111111111111"
	commitB = "2222222222222222222222222222222222222222"
	blobX   = "3333333333333333333333333333333333333333"
	treeT   = "4444444444444444444444444444444444444444"
)

func TestParseRevList(t *testing.T) {
	output := []byte("1700000000 " + commitA + "\n1700000100 " + commitB + "\n")

	commits, err := parseRevList(output, domain.ObjectFormatSHA1)

	require.NoError(t, err)
	assert.Equal(t, []domain.CommitRecord{
		{ID: commitA, Timestamp: 1700000000},
		{ID: commitB, Timestamp: 1700000100},
	}, commits)
}

func TestParseRevList_Empty(t *testing.T) {
	commits, err := parseRevList(nil, domain.ObjectFormatSHA1)

	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestParseRevList_InvalidLines(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{name: "missing timestamp", output: commitA + "\n"},
		{name: "bad timestamp", output: "yesterday " + commitA + "\n"},
		{name: "short id", output: "1700000000 abc123\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRevList([]byte(tt.output), domain.ObjectFormatSHA1)
			assert.Error(t, err)
		})
	}
}

func TestParseVerifyPack(t *testing.T) {
	output := []byte(
		commitA + " commit 230 152 12\n" +
			treeT + " tree   33 44 164\n" +
			blobX + " blob   5000 60 208 1 " + treeT + "\n" +
			"non delta: 2 objects\n" +
			"chain length = 1: 1 object\n" +
			"/repo/.git/objects/pack/pack-abc.pack: ok\n" +
			commitA + " commit 999 999 999\n",
	)

	index := parseVerifyPack(output, domain.ObjectFormatSHA1)

	assert.Equal(t, domain.PackedIndex{
		commitA: {Size: 230, StoredSize: 152},
		treeT:   {Size: 33, StoredSize: 44},
		blobX:   {Size: 5000, StoredSize: 60},
	}, index, "summary lines are skipped and the first occurrence wins")
}

func TestParseVerifyPack_IDLengthFollowsFormat(t *testing.T) {
	sha256ID := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	output := []byte(
		sha256ID + " blob 10 12 12\n" +
			commitA + " blob 20 22 40\n",
	)

	assert.Equal(t, domain.PackedIndex{commitA: {Size: 20, StoredSize: 22}},
		parseVerifyPack(output, domain.ObjectFormatSHA1))
	assert.Equal(t, domain.PackedIndex{domain.ObjectID(sha256ID): {Size: 10, StoredSize: 12}},
		parseVerifyPack(output, domain.ObjectFormatSHA256))
}

func TestParseVerifyPack_SkipsMalformedSizes(t *testing.T) {
	output := []byte(commitA + " commit big 152 12\n")

	assert.Empty(t, parseVerifyPack(output, domain.ObjectFormatSHA1))
}

func TestParseCommitTree(t *testing.T) {
	output := []byte("tree " + treeT + "\nparent " + commitA + "\nauthor Test <test@test.com> 1700000000 +0000\n\nmsg\n")

	tree, err := parseCommitTree(output)

	require.NoError(t, err)
	assert.Equal(t, domain.ObjectID(treeT), tree)
}

func TestParseCommitTree_NoTreeLine(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{name: "empty", output: ""},
		{name: "tree not first", output: "parent " + commitA + "\ntree " + treeT + "\n"},
		{name: "missing id", output: "tree\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCommitTree([]byte(tt.output))
			assert.ErrorIs(t, err, domain.ErrNoTreeReference)
		})
	}
}

func TestParseTreeEntries(t *testing.T) {
	output := []byte(
		"100644 blob " + blobX + "\tREADME.md\n" +
			"040000 tree " + treeT + "\tdocs dir\n" +
			"160000 commit " + commitA + "\tvendor/lib\n",
	)

	entries, err := parseTreeEntries(output)

	require.NoError(t, err)
	assert.Equal(t, []domain.ObjectRef{
		{ID: blobX, Type: domain.ObjectTypeBlob},
		{ID: treeT, Type: domain.ObjectTypeTree},
		{ID: commitA, Type: domain.ObjectTypeCommit},
	}, entries)
}

func TestParseTreeEntries_EmptyTree(t *testing.T) {
	entries, err := parseTreeEntries(nil)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseTreeEntries_Malformed(t *testing.T) {
	_, err := parseTreeEntries([]byte("100644 blob " + blobX + " README.md\n"))

	assert.Error(t, err)
}

func TestReadObjectFormat(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		expected domain.ObjectFormat
		wantErr  bool
	}{
		{
			name:     "no extensions section",
			config:   "[core]\n\trepositoryformatversion = 0\n\tbare = false\n",
			expected: domain.ObjectFormatSHA1,
		},
		{
			name:     "sha256",
			config:   "[core]\n\trepositoryformatversion = 1\n[extensions]\n\tobjectFormat = sha256\n",
			expected: domain.ObjectFormatSHA256,
		},
		{
			name:     "subsections and boolean keys",
			config:   "[core]\n\tbare\n[remote \"origin\"]\n\turl = git@example.com:repo.git\n[extensions]\n\tobjectformat = sha1\n",
			expected: domain.ObjectFormatSHA1,
		},
		{
			name:    "unsupported",
			config:  "[extensions]\n\tobjectformat = md5\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gitDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), []byte(tt.config), 0644))

			format, err := readObjectFormat(gitDir)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestReadObjectFormat_MissingConfig(t *testing.T) {
	format, err := readObjectFormat(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, domain.ObjectFormatSHA1, format)
}
