package repo

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/repohist/repohist-go/internal/fanout"
	"github.com/repohist/repohist-go/internal/parse"
)

// FileActivity summarizes how often one file changes and who changes it.
type FileActivity struct {
	Path         string    `json:"path"`
	CommitCount  int       `json:"commit_count"`
	LastModified time.Time `json:"last_modified"`
	Authors      []string  `json:"authors"`
}

// FileChanges returns the newest commits touching path together with
// their full diff text, following renames.
func (s *Service) FileChanges(ctx context.Context, path string, limit int) ([]parse.CommitPatch, error) {
	if err := requirePath(path); err != nil {
		return nil, err
	}
	n, err := s.historyLimit(limit)
	if err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, "log", "-p", "--follow", "--format="+parse.LogFormat, "-n", strconv.Itoa(n), "--", path)
	if err != nil {
		if isEmptyRepository(err) {
			return []parse.CommitPatch{}, nil
		}
		return nil, err
	}
	return parse.ParseLogWithPatches(out), nil
}

// ChangeSummary ranks tracked files by how often they change. It scans
// at most maxScanFiles paths, querying each file's history concurrently;
// a file whose query fails is omitted rather than failing the batch. The
// result is sorted by commit count descending and truncated to limit.
func (s *Service) ChangeSummary(ctx context.Context, limit int) ([]FileActivity, error) {
	n, err := s.historyLimit(limit)
	if err != nil {
		return nil, err
	}

	files, err := s.trackedFiles(ctx)
	if err != nil {
		return nil, err
	}

	results := fanout.Map(ctx, files, func(ctx context.Context, path string) (FileActivity, error) {
		out, err := s.runner.Run(ctx, "log", "--format="+parse.LogFormat, "--", path)
		if err != nil {
			return FileActivity{}, err
		}
		commits := parse.ParseLog(out)
		if len(commits) == 0 {
			return FileActivity{}, nil
		}
		return FileActivity{
			Path:         path,
			CommitCount:  len(commits),
			LastModified: commits[0].Timestamp,
			Authors:      distinctAuthors(commits),
		}, nil
	})

	activities := []FileActivity{}
	for _, r := range results {
		if r.Err != nil {
			s.logger.Debug("file activity query failed", "error", r.Err)
			continue
		}
		if r.Value.CommitCount == 0 {
			continue
		}
		activities = append(activities, r.Value)
	}

	sort.Slice(activities, func(i, j int) bool {
		if activities[i].CommitCount != activities[j].CommitCount {
			return activities[i].CommitCount > activities[j].CommitCount
		}
		return activities[i].Path < activities[j].Path
	})

	if len(activities) > n {
		activities = activities[:n]
	}
	return activities, nil
}

// distinctAuthors collects author names in first-seen order.
func distinctAuthors(commits []parse.CommitRecord) []string {
	seen := make(map[string]bool, len(commits))
	authors := []string{}
	for _, c := range commits {
		if c.AuthorName == "" || seen[c.AuthorName] {
			continue
		}
		seen[c.AuthorName] = true
		authors = append(authors, c.AuthorName)
	}
	return authors
}
