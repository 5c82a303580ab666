package repo

import (
	"context"
	"strconv"

	"github.com/repohist/repohist-go/internal/parse"
)

// FileHistory is one file's commit history, newest-first, alongside the
// total number of commits touching the path. Derived fresh per query.
type FileHistory struct {
	Path       string               `json:"path"`
	Commits    []parse.CommitRecord `json:"commits"`
	TotalCount int                  `json:"total_count"`
}

// RecentCommits returns the newest commits on the current branch, at
// most limit records. An empty repository yields an empty sequence, not
// an error.
func (s *Service) RecentCommits(ctx context.Context, limit int) ([]parse.CommitRecord, error) {
	n, err := s.historyLimit(limit)
	if err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, "log", "--format="+parse.LogFormat, "-n", strconv.Itoa(n))
	if err != nil {
		if isEmptyRepository(err) {
			return []parse.CommitRecord{}, nil
		}
		return nil, err
	}
	return parse.ParseLog(out), nil
}

// FileHistory returns the newest commits touching path, following
// renames, plus the total count of commits reaching the path from HEAD.
func (s *Service) FileHistory(ctx context.Context, path string, limit int) (*FileHistory, error) {
	if err := requirePath(path); err != nil {
		return nil, err
	}
	n, err := s.historyLimit(limit)
	if err != nil {
		return nil, err
	}

	history := &FileHistory{Path: path, Commits: []parse.CommitRecord{}}

	out, err := s.runner.Run(ctx, "log", "--follow", "--format="+parse.LogFormat, "-n", strconv.Itoa(n), "--", path)
	if err != nil {
		if isEmptyRepository(err) {
			return history, nil
		}
		return nil, err
	}
	history.Commits = parse.ParseLog(out)

	// Total count does not follow renames; it reflects the current path
	// name only.
	lines, err := s.runner.RunLines(ctx, "rev-list", "--count", "HEAD", "--", path)
	if err == nil && len(lines) > 0 {
		if total, convErr := strconv.Atoi(lines[0]); convErr == nil {
			history.TotalCount = total
		}
	}
	if history.TotalCount < len(history.Commits) {
		history.TotalCount = len(history.Commits)
	}

	return history, nil
}

// FileBlame attributes every line of the file's current content to the
// commit that last touched it.
func (s *Service) FileBlame(ctx context.Context, path string) ([]parse.BlameLine, error) {
	if err := requirePath(path); err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, "blame", "--porcelain", "--", path)
	if err != nil {
		return nil, err
	}
	return parse.ParseBlame(out), nil
}
