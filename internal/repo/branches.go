package repo

import (
	"context"

	"github.com/repohist/repohist-go/internal/fanout"
	"github.com/repohist/repohist-go/internal/parse"
)

// BranchInfo is one local branch and, when resolvable, its tip commit.
type BranchInfo struct {
	Name string              `json:"name"`
	Tip  *parse.CommitRecord `json:"tip,omitempty"`
}

// BranchList enumerates local branches with tip metadata plus the full
// ref list including remotes.
type BranchList struct {
	Current  string       `json:"current"`
	Branches []BranchInfo `json:"branches"`
	All      []string     `json:"all"`
}

// DiffTotals accumulates per-file deltas across a branch comparison.
type DiffTotals struct {
	ChangedHunks int `json:"changed_hunks"`
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
}

// BranchDiffSummary describes what changed on to since it diverged from
// from.
type BranchDiffSummary struct {
	From    string               `json:"from"`
	To      string               `json:"to"`
	PerFile []parse.FileDiffStat `json:"files"`
	Totals  DiffTotals           `json:"totals"`
}

// Branches lists local branches with their tip commits, resolved
// concurrently, plus all refs including remotes. A branch whose tip
// lookup fails keeps its entry with absent metadata instead of dropping
// out or failing the batch.
func (s *Service) Branches(ctx context.Context) (*BranchList, error) {
	names, err := s.runner.RunLines(ctx, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}

	current, err := s.currentBranch(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.runner.RunLines(ctx, "branch", "-a", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}

	tips := fanout.Map(ctx, names, func(ctx context.Context, name string) (*parse.CommitRecord, error) {
		out, err := s.runner.Run(ctx, "log", "-1", "--format="+parse.LogFormat, name, "--")
		if err != nil {
			return nil, err
		}
		recs := parse.ParseLog(out)
		if len(recs) == 0 {
			return nil, nil
		}
		return &recs[0], nil
	})

	branches := make([]BranchInfo, len(names))
	for i, name := range names {
		branches[i] = BranchInfo{Name: name}
		if tips[i].Err != nil {
			s.logger.Debug("branch tip lookup failed", "branch", name, "error", tips[i].Err)
			continue
		}
		branches[i].Tip = tips[i].Value
	}

	return &BranchList{
		Current:  current,
		Branches: branches,
		All:      all,
	}, nil
}

// CompareBranches summarizes per-file insertions, deletions, and changed
// hunks for everything that changed on to since its merge base with
// from. Binary files are flagged instead of counted.
func (s *Service) CompareBranches(ctx context.Context, from, to string) (*BranchDiffSummary, error) {
	if err := requireRef("from", from); err != nil {
		return nil, err
	}
	if err := requireRef("to", to); err != nil {
		return nil, err
	}

	refRange := from + "..." + to

	statOut, err := s.runner.Run(ctx, "diff", "--numstat", refRange)
	if err != nil {
		return nil, err
	}
	perFile := parse.ParseDiffNumstat(statOut)

	diffOut, err := s.runner.Run(ctx, "diff", refRange)
	if err != nil {
		return nil, err
	}
	hunks := parse.CountDiffHunks(diffOut)

	summary := &BranchDiffSummary{
		From:    from,
		To:      to,
		PerFile: perFile,
	}
	for i := range summary.PerFile {
		f := &summary.PerFile[i]
		f.ChangedHunks = hunks[f.Path]
		summary.Totals.ChangedHunks += f.ChangedHunks
		summary.Totals.Insertions += f.Insertions
		summary.Totals.Deletions += f.Deletions
	}

	return summary, nil
}
