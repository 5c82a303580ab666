package repo

import (
	"context"
	"time"

	"github.com/repohist/repohist-go/internal/parse"
	"github.com/repohist/repohist-go/internal/temporal"
)

// FileLifecycle classifies a file's activity from its full history:
// creation date, a qualitative activity tier measured against trailing
// windows ending now, and up to five hotspot commits.
func (s *Service) FileLifecycle(ctx context.Context, path string) (*temporal.LifecycleSummary, error) {
	if err := requirePath(path); err != nil {
		return nil, err
	}

	var history []parse.CommitRecord
	out, err := s.runner.Run(ctx, "log", "--follow", "--format="+parse.LogFormat, "--", path)
	if err != nil {
		if !isEmptyRepository(err) {
			return nil, err
		}
	} else {
		history = parse.ParseLog(out)
	}

	summary := temporal.ClassifyLifecycle(history, time.Now())
	return &summary, nil
}
