package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repohist/repohist-go/internal/errors"
	"github.com/repohist/repohist-go/internal/parse"
)

func TestBranches(t *testing.T) {
	r := newStubRunner()
	r.on("branch --format=%(refname:short)", "main\nfeature\n")
	r.on("rev-parse --abbrev-ref HEAD", "main\n")
	r.on("branch -a --format=%(refname:short)", "main\nfeature\norigin/main\n")
	r.on("log -1 --format="+parse.LogFormat+" main --",
		repoHashA+"|Alice|alice@x.com|2025-05-02T10:00:00Z|fix main\n")
	r.on("log -1 --format="+parse.LogFormat+" feature --",
		repoHashB+"|Bob|bob@x.com|2025-05-01T10:00:00Z|start feature\n")

	svc := newTestService(r)
	list, err := svc.Branches(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "main", list.Current)
	assert.Equal(t, []string{"main", "feature", "origin/main"}, list.All)

	require.Len(t, list.Branches, 2)
	assert.Equal(t, "main", list.Branches[0].Name)
	require.NotNil(t, list.Branches[0].Tip)
	assert.Equal(t, repoHashA, list.Branches[0].Tip.Hash)
	require.NotNil(t, list.Branches[1].Tip)
	assert.Equal(t, repoHashB, list.Branches[1].Tip.Hash)
}

func TestBranchesKeepsEntryWhenTipLookupFails(t *testing.T) {
	r := newStubRunner()
	r.on("branch --format=%(refname:short)", "main\nwedged\n")
	r.on("rev-parse --abbrev-ref HEAD", "main\n")
	r.on("branch -a --format=%(refname:short)", "main\nwedged\n")
	r.on("log -1 --format="+parse.LogFormat+" main --",
		repoHashA+"|Alice|alice@x.com|2025-05-02T10:00:00Z|fix main\n")
	r.failWith("log -1 --format="+parse.LogFormat+" wedged --", "fatal: bad object")

	svc := newTestService(r)
	list, err := svc.Branches(context.Background())

	require.NoError(t, err)
	require.Len(t, list.Branches, 2)
	assert.Equal(t, "wedged", list.Branches[1].Name)
	assert.Nil(t, list.Branches[1].Tip)
}

func TestCompareBranches(t *testing.T) {
	r := newStubRunner()
	r.on("diff --numstat main...feature",
		"10\t2\tsrc/a.go\n-\t-\tassets/logo.png\n3\t0\tdocs/readme.md\n")
	r.on("diff main...feature",
		"diff --git a/src/a.go b/src/a.go\n"+
			"--- a/src/a.go\n"+
			"+++ b/src/a.go\n"+
			"@@ -1,4 +1,8 @@\n"+
			"+added\n"+
			"@@ -20,2 +24,6 @@\n"+
			"+more\n"+
			"diff --git a/docs/readme.md b/docs/readme.md\n"+
			"--- a/docs/readme.md\n"+
			"+++ b/docs/readme.md\n"+
			"@@ -1 +1,4 @@\n"+
			"+notes\n")

	svc := newTestService(r)
	summary, err := svc.CompareBranches(context.Background(), "main", "feature")

	require.NoError(t, err)
	assert.Equal(t, "main", summary.From)
	assert.Equal(t, "feature", summary.To)
	require.Len(t, summary.PerFile, 3)

	assert.Equal(t, "src/a.go", summary.PerFile[0].Path)
	assert.Equal(t, 2, summary.PerFile[0].ChangedHunks)
	assert.Equal(t, 10, summary.PerFile[0].Insertions)

	assert.True(t, summary.PerFile[1].IsBinary)
	assert.Equal(t, 0, summary.PerFile[1].ChangedHunks)

	assert.Equal(t, 3, summary.Totals.ChangedHunks)
	assert.Equal(t, 13, summary.Totals.Insertions)
	assert.Equal(t, 2, summary.Totals.Deletions)
}

func TestCompareBranchesValidatesRefs(t *testing.T) {
	svc := newTestService(newStubRunner())
	ctx := context.Background()

	_, err := svc.CompareBranches(ctx, "", "feature")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = svc.CompareBranches(ctx, "main", "")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = svc.CompareBranches(ctx, "--force", "feature")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCompareBranchesUnknownRef(t *testing.T) {
	r := newStubRunner()
	r.failWith("diff --numstat main...ghost",
		"fatal: ambiguous argument 'main...ghost': unknown revision or path not in the working tree.")

	svc := newTestService(r)
	_, err := svc.CompareBranches(context.Background(), "main", "ghost")

	assert.True(t, errors.IsCommandFailed(err))
}
