package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/repohist/repohist-go/internal/parse"
	"github.com/repohist/repohist-go/internal/repo"
	"github.com/repohist/repohist-go/internal/temporal"
)

// Tool inputs. Optional limits fall back to configured defaults when
// omitted; required fields are validated by the service layer, never
// silently defaulted.

type emptyParams struct{}

type limitParams struct {
	Limit int `json:"limit,omitempty"`
}

type pathParams struct {
	Path string `json:"path"`
}

type pathLimitParams struct {
	Path  string `json:"path"`
	Limit int    `json:"limit,omitempty"`
}

type searchParams struct {
	Pattern string `json:"pattern"`
	Path    string `json:"path,omitempty"`
}

type compareParams struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Tool outputs. Slice results are wrapped so the structured content is
// always a single object.

type commitsResult struct {
	Commits []parse.CommitRecord `json:"commits"`
}

type blameResult struct {
	Path  string            `json:"path"`
	Lines []parse.BlameLine `json:"lines"`
}

type changesResult struct {
	Path    string              `json:"path"`
	Changes []parse.CommitPatch `json:"changes"`
}

type activityResult struct {
	Files []repo.FileActivity `json:"files"`
}

type relatedResult struct {
	Path    string                   `json:"path"`
	Related []temporal.CoChangeEntry `json:"related"`
}

type ownershipResult struct {
	Path   string                    `json:"path"`
	Owners []temporal.OwnershipEntry `json:"owners"`
}

type contributorsResult struct {
	Path         string             `json:"path"`
	Contributors []parse.AuthorStat `json:"contributors"`
}

type lifecycleResult struct {
	Path string `json:"path"`
	temporal.LifecycleSummary
}

type searchResult struct {
	Matches []parse.GrepMatch `json:"matches"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_status",
		Description: "Current branch, working tree state, and ahead/behind counts against the upstream.",
	}, s.handleStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recent_commits",
		Description: "Newest commits on the current branch, newest first.",
	}, s.handleRecentCommits)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_file_history",
		Description: "Commit history for one file, following renames, with the total commit count.",
	}, s.handleFileHistory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_file_blame",
		Description: "Line-by-line attribution for a file's current content.",
	}, s.handleFileBlame)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_file_changes",
		Description: "Recent commits touching a file together with their diffs.",
	}, s.handleFileChanges)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_change_summary",
		Description: "Tracked files ranked by how often they change, with last change and authors.",
	}, s.handleChangeSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_related_files",
		Description: "Files that change together with a target file, ranked by shared commits.",
	}, s.handleRelatedFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_code_ownership",
		Description: "Per-author ownership shares of the lines changed under a file or directory.",
	}, s.handleCodeOwnership)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_file_contributors",
		Description: "Everyone who committed to a path, with commit and line counts.",
	}, s.handleFileContributors)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_file_lifecycle",
		Description: "Creation date, activity classification, and significant commits for a file.",
	}, s.handleFileLifecycle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_repository",
		Description: "Search tracked content for a pattern, optionally scoped to a path.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_branches",
		Description: "Local branches with tip commits plus all refs including remotes.",
	}, s.handleBranches)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compare_branches",
		Description: "Per-file insertions, deletions, and changed hunks between two refs.",
	}, s.handleCompareBranches)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_repository_stats",
		Description: "Repository-wide totals: commits, files, contributors, and activity span.",
	}, s.handleStatistics)
}

func (s *Server) handleStatus(ctx context.Context, req *mcp.CallToolRequest, in emptyParams) (*mcp.CallToolResult, *repo.StatusSummary, error) {
	done := s.instrument("get_status")
	status, err := s.service.Status(ctx)
	done(err)
	return nil, status, err
}

func (s *Server) handleRecentCommits(ctx context.Context, req *mcp.CallToolRequest, in limitParams) (*mcp.CallToolResult, *commitsResult, error) {
	done := s.instrument("get_recent_commits")
	commits, err := s.service.RecentCommits(ctx, in.Limit)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &commitsResult{Commits: commits}, nil
}

func (s *Server) handleFileHistory(ctx context.Context, req *mcp.CallToolRequest, in pathLimitParams) (*mcp.CallToolResult, *repo.FileHistory, error) {
	done := s.instrument("get_file_history")
	history, err := s.service.FileHistory(ctx, in.Path, in.Limit)
	done(err)
	return nil, history, err
}

func (s *Server) handleFileBlame(ctx context.Context, req *mcp.CallToolRequest, in pathParams) (*mcp.CallToolResult, *blameResult, error) {
	done := s.instrument("get_file_blame")
	lines, err := s.service.FileBlame(ctx, in.Path)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &blameResult{Path: in.Path, Lines: lines}, nil
}

func (s *Server) handleFileChanges(ctx context.Context, req *mcp.CallToolRequest, in pathLimitParams) (*mcp.CallToolResult, *changesResult, error) {
	done := s.instrument("get_file_changes")
	changes, err := s.service.FileChanges(ctx, in.Path, in.Limit)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &changesResult{Path: in.Path, Changes: changes}, nil
}

func (s *Server) handleChangeSummary(ctx context.Context, req *mcp.CallToolRequest, in limitParams) (*mcp.CallToolResult, *activityResult, error) {
	done := s.instrument("get_change_summary")
	files, err := s.service.ChangeSummary(ctx, in.Limit)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &activityResult{Files: files}, nil
}

func (s *Server) handleRelatedFiles(ctx context.Context, req *mcp.CallToolRequest, in pathLimitParams) (*mcp.CallToolResult, *relatedResult, error) {
	done := s.instrument("get_related_files")
	related, err := s.service.RelatedFiles(ctx, in.Path, in.Limit)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &relatedResult{Path: in.Path, Related: related}, nil
}

func (s *Server) handleCodeOwnership(ctx context.Context, req *mcp.CallToolRequest, in pathParams) (*mcp.CallToolResult, *ownershipResult, error) {
	done := s.instrument("get_code_ownership")
	owners, err := s.service.CodeOwnership(ctx, in.Path)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &ownershipResult{Path: in.Path, Owners: owners}, nil
}

func (s *Server) handleFileContributors(ctx context.Context, req *mcp.CallToolRequest, in pathParams) (*mcp.CallToolResult, *contributorsResult, error) {
	done := s.instrument("get_file_contributors")
	contributors, err := s.service.FileContributors(ctx, in.Path)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &contributorsResult{Path: in.Path, Contributors: contributors}, nil
}

func (s *Server) handleFileLifecycle(ctx context.Context, req *mcp.CallToolRequest, in pathParams) (*mcp.CallToolResult, *lifecycleResult, error) {
	done := s.instrument("get_file_lifecycle")
	summary, err := s.service.FileLifecycle(ctx, in.Path)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &lifecycleResult{Path: in.Path, LifecycleSummary: *summary}, nil
}

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest, in searchParams) (*mcp.CallToolResult, *searchResult, error) {
	done := s.instrument("search_repository")
	matches, err := s.service.Search(ctx, in.Pattern, in.Path)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	return nil, &searchResult{Matches: matches}, nil
}

func (s *Server) handleBranches(ctx context.Context, req *mcp.CallToolRequest, in emptyParams) (*mcp.CallToolResult, *repo.BranchList, error) {
	done := s.instrument("get_branches")
	list, err := s.service.Branches(ctx)
	done(err)
	return nil, list, err
}

func (s *Server) handleCompareBranches(ctx context.Context, req *mcp.CallToolRequest, in compareParams) (*mcp.CallToolResult, *repo.BranchDiffSummary, error) {
	done := s.instrument("compare_branches")
	summary, err := s.service.CompareBranches(ctx, in.From, in.To)
	done(err)
	return nil, summary, err
}

func (s *Server) handleStatistics(ctx context.Context, req *mcp.CallToolRequest, in emptyParams) (*mcp.CallToolResult, *repo.RepositoryStats, error) {
	done := s.instrument("get_repository_stats")
	stats, err := s.service.Statistics(ctx)
	done(err)
	return nil, stats, err
}
