package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repohist/repohist-go/internal/errors"
)

func TestSearch(t *testing.T) {
	r := newStubRunner()
	r.on("grep -n -e handleRequest", "src/a.go:42:func handleRequest() {\nsrc/b.go:7:\thandleRequest()\n")

	svc := newTestService(r)
	matches, err := svc.Search(context.Background(), "handleRequest", "")

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "src/a.go", matches[0].File)
	assert.Equal(t, 42, matches[0].Line)
	assert.Equal(t, "func handleRequest() {", matches[0].Content)
}

func TestSearchScopedToPath(t *testing.T) {
	r := newStubRunner()
	r.on("grep -n -e foo -- src", "src/a.go:1:foo\n")

	svc := newTestService(r)
	matches, err := svc.Search(context.Background(), "foo", "src")

	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSearchNoMatches(t *testing.T) {
	r := newStubRunner()
	r.failExit("grep -n -e nomatch", 1, "")

	svc := newTestService(r)
	matches, err := svc.Search(context.Background(), "nomatch", "")

	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestSearchBadPattern(t *testing.T) {
	r := newStubRunner()
	r.failExit("grep -n -e [", 128, "fatal: command line, '[': Unmatched [, [^, [:, [., or [=")

	svc := newTestService(r)
	_, err := svc.Search(context.Background(), "[", "")

	assert.True(t, errors.IsCommandFailed(err))
}

func TestSearchRequiresPattern(t *testing.T) {
	svc := newTestService(newStubRunner())

	_, err := svc.Search(context.Background(), "  ", "")

	assert.True(t, errors.IsInvalidArgument(err))
}
