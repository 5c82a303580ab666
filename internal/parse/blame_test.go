package parse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blameFixture mirrors real porcelain output: full attribute block on a
// commit's first appearance, short headers afterwards.
func blameFixture() string {
	return strings.Join([]string{
		hashA + " 1 1 2",
		"author Alice",
		"author-mail <alice@example.com>",
		"author-time 1709287200",
		"author-tz +0000",
		"summary fix login crash",
		"filename auth.go",
		"\tpackage auth",
		hashA + " 2 2",
		"\t",
		hashB + " 3 3 1",
		"author Bob",
		"author-time 1708417800",
		"summary add retry",
		"filename auth.go",
		"\tfunc Login() error {",
	}, "\n")
}

func TestParseBlame(t *testing.T) {
	lines := ParseBlame([]byte(blameFixture()))
	require.Len(t, lines, 3)

	// Line numbers form the contiguous range 1..N
	for i, line := range lines {
		assert.Equal(t, i+1, line.LineNumber)
	}

	assert.Equal(t, hashA, lines[0].CommitHash)
	assert.Equal(t, "Alice", lines[0].AuthorName)
	assert.Equal(t, time.Unix(1709287200, 0).UTC(), lines[0].Timestamp)
	assert.Equal(t, "package auth", lines[0].Content)

	// The short header re-binds the hash; attribution carries forward
	assert.Equal(t, hashA, lines[1].CommitHash)
	assert.Equal(t, "Alice", lines[1].AuthorName)
	assert.Equal(t, "", lines[1].Content)

	assert.Equal(t, hashB, lines[2].CommitHash)
	assert.Equal(t, "Bob", lines[2].AuthorName)
	assert.Equal(t, time.Unix(1708417800, 0).UTC(), lines[2].Timestamp)
	assert.Equal(t, "func Login() error {", lines[2].Content)
}

func TestParseBlameIdempotent(t *testing.T) {
	input := []byte(blameFixture())
	first := ParseBlame(input)
	second := ParseBlame(input)
	assert.Equal(t, first, second)
}

func TestParseBlameMalformedStream(t *testing.T) {
	// Content before any header carries empty attribution and line number 0
	input := strings.Join([]string{
		"author Mallory",
		"\torphan line",
		hashA + " 1 1 1",
		"author Alice",
		"\tattributed line",
	}, "\n")

	lines := ParseBlame([]byte(input))
	require.Len(t, lines, 2)

	assert.Equal(t, 0, lines[0].LineNumber)
	assert.Equal(t, "", lines[0].CommitHash)
	assert.Equal(t, "", lines[0].AuthorName)
	assert.True(t, lines[0].Timestamp.IsZero())
	assert.Equal(t, "orphan line", lines[0].Content)

	assert.Equal(t, 1, lines[1].LineNumber)
	assert.Equal(t, "Alice", lines[1].AuthorName)
}

func TestParseBlameIgnoresUnknownLines(t *testing.T) {
	input := strings.Join([]string{
		hashA + " 1 1 1",
		"author Alice",
		"committer Carol",
		"previous " + hashB + " auth.go",
		"boundary",
		"\tcontent",
	}, "\n")

	lines := ParseBlame([]byte(input))
	require.Len(t, lines, 1)
	assert.Equal(t, "Alice", lines[0].AuthorName)
	assert.Equal(t, "content", lines[0].Content)
}

func TestParseBlameEmptyInput(t *testing.T) {
	lines := ParseBlame(nil)
	assert.Empty(t, lines)
	assert.NotNil(t, lines)
}
