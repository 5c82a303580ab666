package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrep(t *testing.T) {
	input := strings.Join([]string{
		"src/a.ts:42:foo(bar)",
		"pkg/server.go:7:\tcase \"status\": return ok",
		"README.md:1:# Title",
	}, "\n")

	matches := ParseGrep([]byte(input))
	require.Len(t, matches, 3)

	assert.Equal(t, GrepMatch{File: "src/a.ts", Line: 42, Content: "foo(bar)"}, matches[0])

	// Content keeps its own colons; only the first two split
	assert.Equal(t, "pkg/server.go", matches[1].File)
	assert.Equal(t, 7, matches[1].Line)
	assert.Equal(t, "\tcase \"status\": return ok", matches[1].Content)
}

func TestParseGrepRejectsUnparseableLines(t *testing.T) {
	input := strings.Join([]string{
		"src/a.ts:42:kept",
		"src/b.ts:notanumber:dropped",
		"src/c.ts:0:dropped",
		"src/d.ts:-3:dropped",
		"noseparators",
		"onlyone:part",
		"",
		"src/e.ts:9:kept too",
	}, "\n")

	matches := ParseGrep([]byte(input))
	require.Len(t, matches, 2)
	assert.Equal(t, "src/a.ts", matches[0].File)
	assert.Equal(t, "src/e.ts", matches[1].File)
}

func TestParseGrepEmptyInput(t *testing.T) {
	matches := ParseGrep(nil)
	assert.Empty(t, matches)
	assert.NotNil(t, matches)
}
