package repo

import (
	"context"

	"github.com/repohist/repohist-go/internal/parse"
	"github.com/repohist/repohist-go/internal/temporal"
)

// CodeOwnership computes per-author shares of the lines changed under
// path, which may be a single file or a directory subtree.
func (s *Service) CodeOwnership(ctx context.Context, path string) ([]temporal.OwnershipEntry, error) {
	stats, err := s.authorStats(ctx, path)
	if err != nil {
		return nil, err
	}
	return temporal.ComputeOwnership(stats), nil
}

// FileContributors lists everyone who committed to path with their
// commit and line counts, most active first.
func (s *Service) FileContributors(ctx context.Context, path string) ([]parse.AuthorStat, error) {
	stats, err := s.authorStats(ctx, path)
	if err != nil {
		return nil, err
	}
	return temporal.RankContributors(stats), nil
}

func (s *Service) authorStats(ctx context.Context, path string) (map[string]*parse.AuthorStat, error) {
	if err := requirePath(path); err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, "log", "--numstat", "--format="+parse.NumstatFormat, "--", path)
	if err != nil {
		if isEmptyRepository(err) {
			return map[string]*parse.AuthorStat{}, nil
		}
		return nil, err
	}
	return parse.ParseNumstat(out), nil
}
