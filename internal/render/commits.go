package render

import (
	"fmt"
	"io"

	"github.com/repohist/repohist-go/internal/parse"
	"github.com/repohist/repohist-go/internal/repo"
)

// Commits writes a commit listing, newest first.
func (r *Renderer) Commits(w io.Writer, commits []parse.CommitRecord) error {
	if r.wantJSON() {
		return r.renderJSON(w, commits)
	}

	if len(commits) == 0 {
		fmt.Fprintln(w, "No commits found.")
		return nil
	}

	fmt.Fprintf(w, "%-10s %-17s %-20s %s\n", "Commit", "Date", "Author", "Subject")
	rule(w, 80)
	for _, c := range commits {
		fmt.Fprintf(w, "%-10s %-17s %-20s %s\n",
			shortHash(c.Hash),
			formatTime(c.Timestamp),
			truncate(c.AuthorName, 20),
			c.Message)
	}
	return nil
}

// FileHistory writes one file's history with its total commit count.
func (r *Renderer) FileHistory(w io.Writer, history *repo.FileHistory) error {
	if r.wantJSON() {
		return r.renderJSON(w, history)
	}

	fmt.Fprintf(w, "History: %s (%d of %d commits)\n\n", history.Path, len(history.Commits), history.TotalCount)
	return r.Commits(w, history.Commits)
}

// Changes writes commits with their diff text.
func (r *Renderer) Changes(w io.Writer, path string, changes []parse.CommitPatch) error {
	if r.wantJSON() {
		return r.renderJSON(w, changes)
	}

	if len(changes) == 0 {
		fmt.Fprintf(w, "No changes found for %s\n", path)
		return nil
	}

	for i, c := range changes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "commit %s\n", c.Hash)
		fmt.Fprintf(w, "Author: %s <%s>\n", c.AuthorName, c.AuthorEmail)
		fmt.Fprintf(w, "Date:   %s\n\n", formatTime(c.Timestamp))
		fmt.Fprintf(w, "    %s\n", c.Message)
		if c.DiffText != "" {
			fmt.Fprintf(w, "\n%s\n", c.DiffText)
		}
	}
	return nil
}

// Blame writes per-line attribution for a file.
func (r *Renderer) Blame(w io.Writer, path string, lines []parse.BlameLine) error {
	if r.wantJSON() {
		return r.renderJSON(w, lines)
	}

	if len(lines) == 0 {
		fmt.Fprintf(w, "No blame information for %s\n", path)
		return nil
	}

	fmt.Fprintf(w, "Blame: %s\n", path)
	rule(w, 80)
	for _, l := range lines {
		fmt.Fprintf(w, "%s %-16s %s %4d) %s\n",
			shortHash(l.CommitHash),
			truncate(l.AuthorName, 16),
			formatDate(l.Timestamp),
			l.LineNumber,
			l.Content)
	}
	return nil
}
