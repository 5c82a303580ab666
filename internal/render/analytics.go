package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/repohist/repohist-go/internal/parse"
	"github.com/repohist/repohist-go/internal/repo"
	"github.com/repohist/repohist-go/internal/temporal"
)

// Related writes co-change entries for a target file.
func (r *Renderer) Related(w io.Writer, path string, entries []temporal.CoChangeEntry) error {
	if r.wantJSON() {
		return r.renderJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(w, "No files change together with %s\n", path)
		return nil
	}

	fmt.Fprintf(w, "Files changing together with %s:\n\n", path)
	fmt.Fprintf(w, "%-45s %14s %-17s\n", "Path", "Shared commits", "Last shared")
	rule(w, 80)
	for _, e := range entries {
		fmt.Fprintf(w, "%-45s %14d %-17s\n",
			truncate(e.OtherPath, 45),
			e.SharedCommitCount,
			formatTime(e.MostRecentShared))
	}
	return nil
}

// Ownership writes per-author line shares for a path.
func (r *Renderer) Ownership(w io.Writer, path string, entries []temporal.OwnershipEntry) error {
	if r.wantJSON() {
		return r.renderJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(w, "No ownership information for %s\n", path)
		return nil
	}

	fmt.Fprintf(w, "Ownership: %s\n\n", path)
	fmt.Fprintf(w, "%-25s %-30s %13s %7s\n", "Author", "Email", "Lines changed", "Share")
	rule(w, 80)
	for _, e := range entries {
		fmt.Fprintf(w, "%-25s %-30s %13d %6d%%\n",
			truncate(e.AuthorName, 25),
			truncate(e.AuthorEmail, 30),
			e.LinesChanged,
			e.SharePercent)
	}
	return nil
}

// Contributors writes per-author commit and line counts for a path.
func (r *Renderer) Contributors(w io.Writer, path string, stats []parse.AuthorStat) error {
	if r.wantJSON() {
		return r.renderJSON(w, stats)
	}

	if len(stats) == 0 {
		fmt.Fprintf(w, "No contributors found for %s\n", path)
		return nil
	}

	fmt.Fprintf(w, "Contributors: %s\n\n", path)
	fmt.Fprintf(w, "%-25s %-30s %8s %7s %7s\n", "Author", "Email", "Commits", "Added", "Deleted")
	rule(w, 82)
	for _, s := range stats {
		fmt.Fprintf(w, "%-25s %-30s %8d %7d %7d\n",
			truncate(s.Name, 25),
			truncate(s.Email, 30),
			s.Commits,
			s.Additions,
			s.Deletions)
	}
	return nil
}

// Lifecycle writes a file's lifecycle classification.
func (r *Renderer) Lifecycle(w io.Writer, path string, summary *temporal.LifecycleSummary) error {
	if r.wantJSON() {
		return r.renderJSON(w, summary)
	}

	fmt.Fprintf(w, "Lifecycle: %s\n\n", path)
	fmt.Fprintf(w, "Created:       %s\n", formatDate(summary.CreatedAt))
	fmt.Fprintf(w, "Last modified: %s\n", formatDate(summary.LastModifiedAt))
	fmt.Fprintf(w, "Commits:       %d\n", summary.TotalCommits)
	fmt.Fprintf(w, "Activity:      %s\n", summary.Activity)

	if len(summary.Hotspots) > 0 {
		fmt.Fprintln(w, "\nSignificant commits:")
		for _, c := range summary.Hotspots {
			fmt.Fprintf(w, "  %s %s %s\n", shortHash(c.Hash), formatDate(c.Timestamp), c.Message)
		}
	}
	return nil
}

// Activity writes the repository change summary, busiest files first.
func (r *Renderer) Activity(w io.Writer, activities []repo.FileActivity) error {
	if r.wantJSON() {
		return r.renderJSON(w, activities)
	}

	if len(activities) == 0 {
		fmt.Fprintln(w, "No tracked file activity found.")
		return nil
	}

	fmt.Fprintf(w, "%-40s %8s %-17s %s\n", "Path", "Commits", "Last change", "Authors")
	rule(w, 96)
	for _, a := range activities {
		fmt.Fprintf(w, "%-40s %8d %-17s %s\n",
			truncate(a.Path, 40),
			a.CommitCount,
			formatTime(a.LastModified),
			truncate(strings.Join(a.Authors, ", "), 28))
	}
	return nil
}
