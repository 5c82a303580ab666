package repo

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/repohist/repohist-go/internal/parse"
)

// Contributor is one author's repository-wide commit count.
type Contributor struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Commits int    `json:"commits"`
}

// RepositoryStats aggregates whole-repository history totals.
type RepositoryStats struct {
	TotalCommits    int           `json:"total_commits"`
	TotalFiles      int           `json:"total_files"`
	Contributors    []Contributor `json:"contributors"`
	ActiveDays      int           `json:"active_days"`
	FirstCommitDate time.Time     `json:"first_commit_date"`
	LastCommitDate  time.Time     `json:"last_commit_date"`
}

// Statistics summarizes the whole repository: commit and file totals,
// contributors ranked by commit count, and the span of recorded
// activity. Active days count distinct author dates in UTC. An empty
// repository reports zero totals.
func (s *Service) Statistics(ctx context.Context) (*RepositoryStats, error) {
	stats := &RepositoryStats{Contributors: []Contributor{}}

	lines, err := s.runner.RunLines(ctx, "rev-list", "--count", "HEAD")
	if err != nil {
		if isEmptyRepository(err) {
			return stats, nil
		}
		return nil, err
	}
	if len(lines) > 0 {
		if total, convErr := strconv.Atoi(lines[0]); convErr == nil {
			stats.TotalCommits = total
		}
	}

	files, err := s.runner.RunLines(ctx, "ls-files")
	if err != nil {
		return nil, err
	}
	stats.TotalFiles = len(files)

	out, err := s.runner.Run(ctx, "log", "--format="+parse.LogFormat)
	if err != nil {
		if isEmptyRepository(err) {
			return stats, nil
		}
		return nil, err
	}
	commits := parse.ParseLog(out)
	if len(commits) == 0 {
		return stats, nil
	}

	// History is newest-first.
	stats.LastCommitDate = commits[0].Timestamp
	stats.FirstCommitDate = commits[len(commits)-1].Timestamp

	type tally struct {
		name    string
		email   string
		commits int
	}
	byAuthor := make(map[string]*tally)
	days := make(map[string]bool)

	for _, c := range commits {
		days[c.Timestamp.UTC().Format("2006-01-02")] = true

		key := strings.ToLower(c.AuthorEmail)
		if key == "" {
			key = strings.ToLower(c.AuthorName)
		}
		if t, ok := byAuthor[key]; ok {
			t.commits++
		} else {
			byAuthor[key] = &tally{name: c.AuthorName, email: c.AuthorEmail, commits: 1}
		}
	}
	stats.ActiveDays = len(days)

	for _, t := range byAuthor {
		stats.Contributors = append(stats.Contributors, Contributor{
			Name:    t.name,
			Email:   t.email,
			Commits: t.commits,
		})
	}
	sort.Slice(stats.Contributors, func(i, j int) bool {
		if stats.Contributors[i].Commits != stats.Contributors[j].Commits {
			return stats.Contributors[i].Commits > stats.Contributors[j].Commits
		}
		return stats.Contributors[i].Name < stats.Contributors[j].Name
	})

	return stats, nil
}
