package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	r := newStubRunner()
	r.on("rev-parse --abbrev-ref HEAD", "main\n")
	r.on("status --porcelain", "M  staged.go\n M edited.go\n?? fresh.go\n")
	r.on("rev-list --left-right --count HEAD...@{upstream}", "2\t1\n")

	svc := newTestService(r)
	status, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "main", status.Branch)
	assert.False(t, status.IsClean)
	assert.Equal(t, []string{"staged.go"}, status.Staged)
	assert.Equal(t, []string{"edited.go"}, status.Modified)
	assert.Equal(t, []string{"fresh.go"}, status.Untracked)
	assert.Equal(t, 2, status.Ahead)
	assert.Equal(t, 1, status.Behind)
}

func TestStatusClean(t *testing.T) {
	r := newStubRunner()
	r.on("rev-parse --abbrev-ref HEAD", "main\n")
	r.on("status --porcelain", "")
	r.on("rev-list --left-right --count HEAD...@{upstream}", "0\t0\n")

	svc := newTestService(r)
	status, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.True(t, status.IsClean)
	assert.NotNil(t, status.Staged)
	assert.NotNil(t, status.Modified)
	assert.NotNil(t, status.Untracked)
}

func TestStatusNoUpstream(t *testing.T) {
	r := newStubRunner()
	r.on("rev-parse --abbrev-ref HEAD", "topic\n")
	r.on("status --porcelain", "")
	r.failWith("rev-list --left-right --count HEAD...@{upstream}",
		"fatal: no upstream configured for branch 'topic'")

	svc := newTestService(r)
	status, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, status.Ahead)
	assert.Equal(t, 0, status.Behind)
}

func TestStatusEmptyRepository(t *testing.T) {
	r := newStubRunner()
	r.failWith("rev-parse --abbrev-ref HEAD",
		"fatal: ambiguous argument 'HEAD': unknown revision or path not in the working tree.")
	r.on("branch --show-current", "main\n")
	r.on("status --porcelain", "")
	r.failWith("rev-list --left-right --count HEAD...@{upstream}",
		"fatal: ambiguous argument 'HEAD': unknown revision or path not in the working tree.")

	svc := newTestService(r)
	status, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "main", status.Branch)
	assert.True(t, status.IsClean)
}
