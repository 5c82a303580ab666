// Package repo exposes history and authorship operations against one
// resolved repository. Every operation shells out through the command
// gateway, parses the output into typed records, and derives its result
// fresh per call; nothing is cached between calls, the repository's
// on-disk state is the sole source of truth.
package repo

import (
	"context"
	"log/slog"
	"strings"

	"github.com/repohist/repohist-go/internal/config"
	"github.com/repohist/repohist-go/internal/errors"
	"github.com/repohist/repohist-go/internal/git"
	"github.com/repohist/repohist-go/internal/logging"
)

// maxScanFiles caps how many tracked files a repository-wide scan will
// query, bounding subprocess cost on large trees.
const maxScanFiles = 100

// Runner abstracts gateway execution so operations can be tested against
// canned output.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
	RunLines(ctx context.Context, args ...string) ([]string, error)
	Root() string
}

// Service answers history and authorship queries against one repository.
// It is safe for concurrent use; operations share no mutable state.
type Service struct {
	runner Runner
	cfg    config.AnalysisConfig
	logger *slog.Logger
}

// NewService resolves the repository described by cfg and returns a
// service bound to its root. Resolution failures surface the gateway's
// taxonomy: NotARepository for an unrecognized path, ToolUnavailable
// when git itself cannot be invoked.
func NewService(ctx context.Context, cfg *config.Config) (*Service, error) {
	gw, err := git.Open(ctx, cfg.Repo.Path, git.Options{
		GitPath: cfg.Repo.GitPath,
		Timeout: cfg.Repo.CommandTimeout,
	})
	if err != nil {
		return nil, err
	}
	return newServiceWithRunner(gw, cfg.Analysis), nil
}

func newServiceWithRunner(r Runner, cfg config.AnalysisConfig) *Service {
	return &Service{
		runner: r,
		cfg:    cfg,
		logger: logging.ForComponent("repo"),
	}
}

// Root returns the resolved repository root.
func (s *Service) Root() string {
	return s.runner.Root()
}

// historyLimit validates a caller-supplied commit limit, falling back to
// the configured default when the caller passes zero.
func (s *Service) historyLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, errors.InvalidArgumentError("limit", "must be positive")
	}
	if limit == 0 {
		return s.cfg.HistoryLimit, nil
	}
	return limit, nil
}

// relatedLimit validates a caller-supplied entry limit for co-change
// results, falling back to the configured default when zero.
func (s *Service) relatedLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, errors.InvalidArgumentError("limit", "must be positive")
	}
	if limit == 0 {
		return s.cfg.RelatedLimit, nil
	}
	return limit, nil
}

func requirePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.InvalidArgumentError("path", "required")
	}
	return nil
}

func requireRef(field, ref string) error {
	if strings.TrimSpace(ref) == "" {
		return errors.InvalidArgumentError(field, "required")
	}
	if strings.HasPrefix(ref, "-") {
		return errors.InvalidArgumentErrorf(field, "ref %q must not begin with a dash", ref)
	}
	return nil
}

// isEmptyRepository reports whether err is the failure git emits when a
// repository has no commits yet. Operations that can answer sensibly for
// an unborn branch degrade to an empty result instead of propagating it.
func isEmptyRepository(err error) bool {
	msg := strings.ToLower(errors.Stderr(err))
	return strings.Contains(msg, "does not have any commits") ||
		strings.Contains(msg, "unknown revision")
}

// trackedFiles lists tracked paths for repository-wide scans, truncated
// to maxScanFiles.
func (s *Service) trackedFiles(ctx context.Context) ([]string, error) {
	files, err := s.runner.RunLines(ctx, "ls-files")
	if err != nil {
		return nil, err
	}
	if len(files) > maxScanFiles {
		s.logger.Debug("file scan capped",
			"tracked", len(files),
			"cap", maxScanFiles)
		files = files[:maxScanFiles]
	}
	return files, nil
}
