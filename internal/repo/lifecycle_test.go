package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repohist/repohist-go/internal/parse"
	"github.com/repohist/repohist-go/internal/temporal"
)

func TestFileLifecycle(t *testing.T) {
	now := time.Now().UTC()
	fixture := fmt.Sprintf("%s|Alice|alice@x.com|%s|fix handler\n%s|Bob|bob@x.com|%s|add handler\n%s|Alice|alice@x.com|%s|initial\n",
		repoHashA, now.Format(time.RFC3339),
		repoHashB, now.Add(-5*24*time.Hour).Format(time.RFC3339),
		repoHashC, now.Add(-400*24*time.Hour).Format(time.RFC3339))

	r := newStubRunner()
	r.on("log --follow --format="+parse.LogFormat+" -- handler.go", fixture)

	svc := newTestService(r)
	summary, err := svc.FileLifecycle(context.Background(), "handler.go")

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalCommits)
	assert.Equal(t, temporal.ActivityRarelyModified, summary.Activity)
	assert.Equal(t, now.Add(-400*24*time.Hour).Format("2006-01-02"), summary.CreatedAt.UTC().Format("2006-01-02"))

	require.Len(t, summary.Hotspots, 2)
	assert.Equal(t, "fix handler", summary.Hotspots[0].Message)
	assert.Equal(t, "add handler", summary.Hotspots[1].Message)
}

func TestFileLifecycleEmptyRepository(t *testing.T) {
	r := newStubRunner()
	r.failWith("log --follow --format="+parse.LogFormat+" -- handler.go",
		"fatal: your current branch 'main' does not have any commits yet")

	svc := newTestService(r)
	summary, err := svc.FileLifecycle(context.Background(), "handler.go")

	require.NoError(t, err)
	assert.True(t, summary.CreatedAt.IsZero())
	assert.Equal(t, temporal.ActivityInactive, summary.Activity)
}
