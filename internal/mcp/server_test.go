package mcp

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/repohist/repohist-go/internal/config"
	"github.com/repohist/repohist-go/internal/repo"
)

// setupTestRepo creates a real repository with one commit so handlers
// can be exercised end to end without a transport.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Skipf("git not available: %v (%s)", err, out)
		}
	}

	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "Test User")

	if err := os.WriteFile(filepath.Join(dir, "hello.go"), []byte("package main\n\n// hello marker\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	run("add", ".")
	run("commit", "-m", "add hello")

	return dir
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := setupTestRepo(t)
	cfg := config.Default()
	cfg.Repo.Path = dir

	service, err := repo.NewService(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewService() returned error: %v", err)
	}
	return NewServer(service, "test")
}

func TestHandleStatus(t *testing.T) {
	s := newTestServer(t)

	_, status, err := s.handleStatus(context.Background(), nil, emptyParams{})
	if err != nil {
		t.Fatalf("handleStatus() returned error: %v", err)
	}
	if status.Branch == "" {
		t.Error("expected a branch name")
	}
	if !status.IsClean {
		t.Errorf("expected clean working tree, got %+v", status)
	}
}

func TestHandleRecentCommits(t *testing.T) {
	s := newTestServer(t)

	_, result, err := s.handleRecentCommits(context.Background(), nil, limitParams{Limit: 5})
	if err != nil {
		t.Fatalf("handleRecentCommits() returned error: %v", err)
	}
	if len(result.Commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(result.Commits))
	}
	if result.Commits[0].Message != "add hello" {
		t.Errorf("unexpected subject %q", result.Commits[0].Message)
	}
}

func TestHandleFileHistory(t *testing.T) {
	s := newTestServer(t)

	_, history, err := s.handleFileHistory(context.Background(), nil, pathLimitParams{Path: "hello.go"})
	if err != nil {
		t.Fatalf("handleFileHistory() returned error: %v", err)
	}
	if len(history.Commits) != 1 {
		t.Errorf("expected 1 commit, got %d", len(history.Commits))
	}
	if history.TotalCount != 1 {
		t.Errorf("expected total count 1, got %d", history.TotalCount)
	}
}

func TestHandleSearch(t *testing.T) {
	s := newTestServer(t)

	_, result, err := s.handleSearch(context.Background(), nil, searchParams{Pattern: "hello marker"})
	if err != nil {
		t.Fatalf("handleSearch() returned error: %v", err)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matches))
	}
	if result.Matches[0].File != "hello.go" {
		t.Errorf("unexpected file %q", result.Matches[0].File)
	}
}

func TestHandleRejectsMissingPath(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleFileBlame(context.Background(), nil, pathParams{})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}
