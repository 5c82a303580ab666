// Package temporal computes history-derived analytics over parsed commit
// records: co-change correlation, line-weighted ownership, and lifecycle
// classification. All functions are pure; callers supply parsed history
// and, where windows matter, the evaluation time.
package temporal

import (
	"time"

	"github.com/repohist/repohist-go/internal/parse"
)

// CoChangeEntry describes a file that shares commits with a target file.
type CoChangeEntry struct {
	OtherPath         string    `json:"path"`
	SharedCommitCount int       `json:"shared_commits"`
	MostRecentShared  time.Time `json:"most_recent_shared"`
}

// CandidateHistory pairs a candidate path with the commit hashes that
// touched it.
type CandidateHistory struct {
	Path   string
	Hashes []string
}

// OwnershipEntry is one author's share of the lines changed under a path.
type OwnershipEntry struct {
	AuthorName   string `json:"author"`
	AuthorEmail  string `json:"email"`
	LinesChanged int    `json:"lines_changed"`
	SharePercent int    `json:"share_percent"`
}

// LifecycleSummary classifies a file's activity from its full history.
type LifecycleSummary struct {
	// CreatedAt is the timestamp of the oldest commit touching the file,
	// zero when the file has no history.
	CreatedAt      time.Time            `json:"created_at"`
	LastModifiedAt time.Time            `json:"last_modified_at"`
	TotalCommits   int                  `json:"total_commits"`
	Activity       string               `json:"activity"`
	Hotspots       []parse.CommitRecord `json:"hotspots"`
}

// Activity labels, strongest to weakest.
const (
	ActivityVeryActive           = "very active"
	ActivityActive               = "active"
	ActivityModeratelyActive     = "moderately active"
	ActivityOccasionallyModified = "occasionally modified"
	ActivityRarelyModified       = "rarely modified"
	ActivityInactive             = "inactive"
)
