package temporal

import (
	"strings"
	"time"

	"github.com/repohist/repohist-go/internal/parse"
)

// Commit messages starting with these prefixes mark lifecycle hotspots.
var hotspotPrefixes = []string{"add", "fix", "feature", "refactor", "rewrite", "implement"}

const maxHotspots = 5

const (
	window30d  = 30 * 24 * time.Hour
	window90d  = 90 * 24 * time.Hour
	window365d = 365 * 24 * time.Hour
)

// ClassifyLifecycle summarizes a file's history into creation date, an
// activity label, and hotspot commits. history is newest-first; now is
// the evaluation time the trailing windows are measured from. Thresholds
// are checked strongest-first, so a history qualifying for "very active"
// never falls through to a weaker tier.
func ClassifyLifecycle(history []parse.CommitRecord, now time.Time) LifecycleSummary {
	summary := LifecycleSummary{
		TotalCommits: len(history),
		Activity:     ActivityInactive,
		Hotspots:     []parse.CommitRecord{},
	}
	if len(history) == 0 {
		return summary
	}

	summary.CreatedAt = history[len(history)-1].Timestamp
	summary.LastModifiedAt = history[0].Timestamp

	var in30, in90, in365 int
	for _, rec := range history {
		age := now.Sub(rec.Timestamp)
		if age < 0 {
			// Clock skew can put a commit in the future; count it as current.
			age = 0
		}
		if age <= window30d {
			in30++
		}
		if age <= window90d {
			in90++
		}
		if age <= window365d {
			in365++
		}
	}

	switch {
	case in30 > 10:
		summary.Activity = ActivityVeryActive
	case in30 > 5:
		summary.Activity = ActivityActive
	case in90 > 10:
		summary.Activity = ActivityModeratelyActive
	case in365 > 10:
		summary.Activity = ActivityOccasionallyModified
	case in365 > 0:
		summary.Activity = ActivityRarelyModified
	}

	for _, rec := range history {
		if len(summary.Hotspots) == maxHotspots {
			break
		}
		if isHotspotMessage(rec.Message) {
			summary.Hotspots = append(summary.Hotspots, rec)
		}
	}

	return summary
}

func isHotspotMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, prefix := range hotspotPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
