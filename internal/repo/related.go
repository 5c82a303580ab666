package repo

import (
	"context"

	"github.com/repohist/repohist-go/internal/fanout"
	"github.com/repohist/repohist-go/internal/parse"
	"github.com/repohist/repohist-go/internal/temporal"
)

// RelatedFiles finds files that share commits with path, ranked by how
// many commits they share. Candidates come from the capped tracked-file
// scan; each candidate's hash set is fetched concurrently, and a failing
// candidate is dropped from the correlation rather than failing the
// batch.
func (s *Service) RelatedFiles(ctx context.Context, path string, limit int) ([]temporal.CoChangeEntry, error) {
	if err := requirePath(path); err != nil {
		return nil, err
	}
	n, err := s.relatedLimit(limit)
	if err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, "log", "--follow", "--format="+parse.LogFormat, "--", path)
	if err != nil {
		if isEmptyRepository(err) {
			return []temporal.CoChangeEntry{}, nil
		}
		return nil, err
	}
	target := parse.ParseLog(out)
	if len(target) == 0 {
		return []temporal.CoChangeEntry{}, nil
	}

	files, err := s.trackedFiles(ctx)
	if err != nil {
		return nil, err
	}
	others := make([]string, 0, len(files))
	for _, f := range files {
		if f != path {
			others = append(others, f)
		}
	}

	results := fanout.Map(ctx, others, func(ctx context.Context, cand string) (temporal.CandidateHistory, error) {
		hashes, err := s.runner.RunLines(ctx, "log", "--format=%H", "--", cand)
		if err != nil {
			return temporal.CandidateHistory{}, err
		}
		return temporal.CandidateHistory{Path: cand, Hashes: hashes}, nil
	})

	candidates := make([]temporal.CandidateHistory, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			s.logger.Debug("candidate history query failed", "error", r.Err)
			continue
		}
		candidates = append(candidates, r.Value)
	}

	return temporal.CorrelateCoChanges(target, candidates, n), nil
}
