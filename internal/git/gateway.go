package git

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/repohist/repohist-go/internal/errors"
	"github.com/repohist/repohist-go/internal/logging"
)

// readOnlySubcommands is the set of git subcommands the gateway will spawn.
// The gateway is read-only by convention, not by sandboxing: anything that
// could mutate repository state is rejected before a process is started.
var readOnlySubcommands = map[string]bool{
	"blame":     true,
	"branch":    true,
	"diff":      true,
	"grep":      true,
	"log":       true,
	"ls-files":  true,
	"rev-list":  true,
	"rev-parse": true,
	"shortlog":  true,
	"show":      true,
	"status":    true,
}

// Options configures gateway construction.
type Options struct {
	// GitPath is the executable to invoke. Defaults to "git".
	GitPath string

	// Timeout bounds a single invocation. Zero means no caller-side
	// timeout; cancellation still flows from the context.
	Timeout time.Duration
}

// Gateway invokes git subcommands against one resolved repository root.
// A Gateway is immutable after Open; every call is independent and
// stateless, so one Gateway may serve concurrent queries.
type Gateway struct {
	gitPath string
	root    string
	timeout time.Duration
	logger  *slog.Logger
}

// Open resolves the repository root containing path and returns a gateway
// bound to it. The path may be the root itself, any directory inside the
// working tree, or a file inside it.
func Open(ctx context.Context, path string, opts Options) (*Gateway, error) {
	gitPath := opts.GitPath
	if gitPath == "" {
		gitPath = "git"
	}

	if _, err := exec.LookPath(gitPath); err != nil {
		return nil, errors.ToolUnavailableError(err, gitPath)
	}

	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NotARepositoryError(path)
	}
	dir := path
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}

	cmd := exec.CommandContext(ctx, gitPath, "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if strings.Contains(strings.ToLower(msg), "not a git repository") {
				return nil, errors.NotARepositoryError(path)
			}
			return nil, errors.CommandFailedError(err,
				[]string{"rev-parse", "--show-toplevel"}, exitErr.ExitCode(), msg)
		}
		return nil, errors.ToolUnavailableError(err, gitPath)
	}

	root := strings.TrimSpace(stdout.String())
	if root == "" {
		return nil, errors.NotARepositoryError(path)
	}

	return &Gateway{
		gitPath: gitPath,
		root:    root,
		timeout: opts.Timeout,
		logger:  logging.ForComponent("git"),
	}, nil
}

// Root returns the resolved repository root.
func (g *Gateway) Root() string {
	return g.root
}

// Run executes one git subcommand rooted at the repository and returns its
// stdout. Failures are categorized: a rejected subcommand surfaces as
// InvalidArgument, a missing executable as ToolUnavailable, and a non-zero
// exit as CommandFailed carrying the exit code and trimmed stderr.
func (g *Gateway) Run(ctx context.Context, args ...string) ([]byte, error) {
	if len(args) == 0 {
		return nil, errors.InvalidArgumentError("args", "no git subcommand given")
	}
	if !readOnlySubcommands[args[0]] {
		return nil, errors.InvalidArgumentErrorf("args", "subcommand %q is not read-only", args[0])
	}

	runCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, g.gitPath, args...)
	cmd.Dir = g.root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if stderrors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, errors.CommandFailedError(err, args, -1, "command timed out").
				WithContext("timeout", g.timeout.String())
		}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			g.logger.Debug("git command failed",
				"args", strings.Join(args, " "),
				"exit_code", exitErr.ExitCode(),
				"stderr", msg)
			return nil, errors.CommandFailedError(err, args, exitErr.ExitCode(), msg)
		}
		return nil, errors.ToolUnavailableError(err, g.gitPath)
	}

	g.logger.Debug("git command",
		"args", strings.Join(args, " "),
		"duration_ms", elapsed.Milliseconds(),
		"bytes", stdout.Len())

	return stdout.Bytes(), nil
}

// RunLines executes a git subcommand and returns stdout split into
// trimmed, non-empty lines.
func (g *Gateway) RunLines(ctx context.Context, args ...string) ([]string, error) {
	out, err := g.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	raw := strings.Split(string(out), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if s := strings.TrimSpace(l); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, nil
}
