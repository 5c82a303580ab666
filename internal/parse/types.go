// Package parse turns git's line-oriented output formats into typed records.
// Each parser absorbs malformed lines locally: records that do not match the
// expected structure are dropped, never fatal to the whole parse.
package parse

import (
	"bufio"
	"bytes"
	"time"
)

// CommitRecord is one commit's identity and metadata. Immutable once
// parsed; Hash is the natural unique key within a repository.
type CommitRecord struct {
	Hash        string    `json:"hash"`
	Timestamp   time.Time `json:"timestamp"`
	Message     string    `json:"message"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
}

// CommitPatch is a commit together with its textual diff.
type CommitPatch struct {
	CommitRecord
	DiffText string `json:"diff_text"`
}

// BlameLine attributes one line of a file's current content to the commit
// that last touched it.
type BlameLine struct {
	CommitHash string    `json:"commit_hash"`
	AuthorName string    `json:"author_name"`
	Timestamp  time.Time `json:"timestamp"`
	LineNumber int       `json:"line_number"`
	Content    string    `json:"content"`
}

// GrepMatch is one search hit in the working tree.
type GrepMatch struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Content string `json:"content"`
}

// AuthorStat accumulates one author's commit and line-change counts.
type AuthorStat struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Commits   int    `json:"commits"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// FileDiffStat summarizes one file's changes between two revisions.
type FileDiffStat struct {
	Path         string `json:"path"`
	ChangedHunks int    `json:"changed_hunks"`
	Insertions   int    `json:"insertions"`
	Deletions    int    `json:"deletions"`
	IsBinary     bool   `json:"is_binary"`
}

// StatusFiles partitions working-tree paths by porcelain status.
type StatusFiles struct {
	Staged    []string `json:"staged"`
	Modified  []string `json:"modified"`
	Untracked []string `json:"untracked"`
}

// isCommitHash reports whether s is a full 40-character hex object name.
func isCommitHash(s string) bool {
	if len(s) != 40 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// Diff content routinely exceeds bufio's default 64K token limit
// (minified sources arrive as one line), so every parser scans with a
// widened buffer.
const maxLineBytes = 4 * 1024 * 1024

func newScanner(out []byte) *bufio.Scanner {
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}
