package render

import (
	"fmt"
	"io"

	"github.com/repohist/repohist-go/internal/parse"
	"github.com/repohist/repohist-go/internal/repo"
)

// Status writes the working tree summary.
func (r *Renderer) Status(w io.Writer, status *repo.StatusSummary) error {
	if r.wantJSON() {
		return r.renderJSON(w, status)
	}

	fmt.Fprintf(w, "On branch %s\n", status.Branch)
	if status.Ahead > 0 || status.Behind > 0 {
		fmt.Fprintf(w, "Ahead %d, behind %d of upstream\n", status.Ahead, status.Behind)
	}

	if status.IsClean {
		fmt.Fprintln(w, "Working tree clean")
		return nil
	}

	writeSection := func(title string, paths []string) {
		if len(paths) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s:\n", title)
		for _, p := range paths {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	writeSection("Staged", status.Staged)
	writeSection("Modified", status.Modified)
	writeSection("Untracked", status.Untracked)
	return nil
}

// Matches writes search results in file:line:content form.
func (r *Renderer) Matches(w io.Writer, matches []parse.GrepMatch) error {
	if r.wantJSON() {
		return r.renderJSON(w, matches)
	}

	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(w, "%s:%d: %s\n", m.File, m.Line, m.Content)
	}
	fmt.Fprintf(w, "\n%d matching lines\n", len(matches))
	return nil
}

// Branches writes local branches with tip metadata, then remaining refs.
func (r *Renderer) Branches(w io.Writer, list *repo.BranchList) error {
	if r.wantJSON() {
		return r.renderJSON(w, list)
	}

	if len(list.Branches) == 0 {
		fmt.Fprintln(w, "No branches found.")
		return nil
	}

	local := make(map[string]bool, len(list.Branches))
	for _, b := range list.Branches {
		local[b.Name] = true

		marker := " "
		if b.Name == list.Current {
			marker = "*"
		}
		if b.Tip != nil {
			fmt.Fprintf(w, "%s %-30s %s %s\n", marker, b.Name, shortHash(b.Tip.Hash), truncate(b.Tip.Message, 40))
		} else {
			fmt.Fprintf(w, "%s %-30s (no commit metadata)\n", marker, b.Name)
		}
	}

	remote := false
	for _, name := range list.All {
		if local[name] {
			continue
		}
		if !remote {
			fmt.Fprintln(w, "\nRemote:")
			remote = true
		}
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}

// BranchDiff writes the per-file comparison between two refs.
func (r *Renderer) BranchDiff(w io.Writer, summary *repo.BranchDiffSummary) error {
	if r.wantJSON() {
		return r.renderJSON(w, summary)
	}

	fmt.Fprintf(w, "Changes on %s since %s:\n\n", summary.To, summary.From)
	if len(summary.PerFile) == 0 {
		fmt.Fprintln(w, "No differences.")
		return nil
	}

	fmt.Fprintf(w, "%-45s %6s %10s %10s\n", "Path", "Hunks", "Insertions", "Deletions")
	rule(w, 80)
	for _, f := range summary.PerFile {
		if f.IsBinary {
			fmt.Fprintf(w, "%-45s %6s %10s %10s\n", truncate(f.Path, 45), "-", "binary", "-")
			continue
		}
		fmt.Fprintf(w, "%-45s %6d %10d %10d\n", truncate(f.Path, 45), f.ChangedHunks, f.Insertions, f.Deletions)
	}
	rule(w, 80)
	fmt.Fprintf(w, "%-45s %6d %10d %10d\n", "Total",
		summary.Totals.ChangedHunks, summary.Totals.Insertions, summary.Totals.Deletions)
	return nil
}

// Stats writes repository-wide totals and the contributor ranking.
func (r *Renderer) Stats(w io.Writer, stats *repo.RepositoryStats) error {
	if r.wantJSON() {
		return r.renderJSON(w, stats)
	}

	fmt.Fprintf(w, "Commits:      %d\n", stats.TotalCommits)
	fmt.Fprintf(w, "Files:        %d\n", stats.TotalFiles)
	fmt.Fprintf(w, "Active days:  %d\n", stats.ActiveDays)
	fmt.Fprintf(w, "First commit: %s\n", formatDate(stats.FirstCommitDate))
	fmt.Fprintf(w, "Last commit:  %s\n", formatDate(stats.LastCommitDate))

	if len(stats.Contributors) > 0 {
		fmt.Fprintf(w, "\n%-25s %-30s %8s\n", "Contributor", "Email", "Commits")
		rule(w, 66)
		for _, c := range stats.Contributors {
			fmt.Fprintf(w, "%-25s %-30s %8d\n", truncate(c.Name, 25), truncate(c.Email, 30), c.Commits)
		}
	}
	return nil
}
