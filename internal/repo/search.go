package repo

import (
	"context"
	"strings"

	"github.com/repohist/repohist-go/internal/errors"
	"github.com/repohist/repohist-go/internal/parse"
)

// Search greps tracked content for pattern, optionally scoped to one
// path. No matches is an empty result, not a failure; git signals it
// with exit code 1 and nothing on stderr.
func (s *Service) Search(ctx context.Context, pattern, path string) ([]parse.GrepMatch, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, errors.InvalidArgumentError("pattern", "required")
	}

	args := []string{"grep", "-n", "-e", pattern}
	if path != "" {
		args = append(args, "--", path)
	}

	out, err := s.runner.Run(ctx, args...)
	if err != nil {
		if code, ok := errors.ExitCode(err); ok && code == 1 && errors.Stderr(err) == "" {
			return []parse.GrepMatch{}, nil
		}
		return nil, err
	}
	return parse.ParseGrep(out), nil
}
