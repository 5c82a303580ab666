package repo

import (
	"context"
	"strconv"
	"strings"

	"github.com/repohist/repohist-go/internal/parse"
)

// StatusSummary describes the working tree at the moment of the call.
type StatusSummary struct {
	Branch    string   `json:"branch"`
	IsClean   bool     `json:"is_clean"`
	Staged    []string `json:"staged"`
	Modified  []string `json:"modified"`
	Untracked []string `json:"untracked"`
	Ahead     int      `json:"ahead"`
	Behind    int      `json:"behind"`
}

// Status reports the current branch, working tree state, and the
// ahead/behind counts against the configured upstream. A branch without
// an upstream reports 0/0 rather than failing the whole call.
func (s *Service) Status(ctx context.Context) (*StatusSummary, error) {
	branch, err := s.currentBranch(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	files := parse.ParseStatusPorcelain(out)

	summary := &StatusSummary{
		Branch:    branch,
		IsClean:   len(files.Staged) == 0 && len(files.Modified) == 0 && len(files.Untracked) == 0,
		Staged:    files.Staged,
		Modified:  files.Modified,
		Untracked: files.Untracked,
	}

	summary.Ahead, summary.Behind = s.aheadBehind(ctx)
	return summary, nil
}

// currentBranch resolves the checked-out branch name. A detached HEAD
// reports "HEAD"; an unborn branch falls back to the symbolic name git
// still knows about.
func (s *Service) currentBranch(ctx context.Context) (string, error) {
	lines, err := s.runner.RunLines(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err == nil && len(lines) > 0 {
		return lines[0], nil
	}
	if err != nil && !isEmptyRepository(err) {
		return "", err
	}

	lines, err = s.runner.RunLines(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[0], nil
}

// aheadBehind counts commits unique to HEAD and to its upstream. Any
// failure, most commonly a branch with no upstream configured, degrades
// to 0/0.
func (s *Service) aheadBehind(ctx context.Context) (int, int) {
	lines, err := s.runner.RunLines(ctx, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil || len(lines) == 0 {
		s.logger.Debug("upstream comparison unavailable", "error", err)
		return 0, 0
	}
	fields := strings.Fields(lines[0])
	if len(fields) != 2 {
		return 0, 0
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0
	}
	return ahead, behind
}
