package temporal

import (
	"math"
	"sort"

	"github.com/repohist/repohist-go/internal/parse"
)

// ComputeOwnership converts per-author line totals into ranked ownership
// shares. An author's lines changed is additions plus deletions, and the
// share is round(lines / total x 100). When no lines changed at all every
// share is 0. Output sorts descending by lines changed, ties broken by
// author name ascending.
func ComputeOwnership(stats map[string]*parse.AuthorStat) []OwnershipEntry {
	entries := []OwnershipEntry{}

	total := 0
	for _, stat := range stats {
		total += stat.Additions + stat.Deletions
	}

	for _, stat := range stats {
		lines := stat.Additions + stat.Deletions
		share := 0
		if total > 0 {
			share = int(math.Round(float64(lines) / float64(total) * 100))
		}
		entries = append(entries, OwnershipEntry{
			AuthorName:   stat.Name,
			AuthorEmail:  stat.Email,
			LinesChanged: lines,
			SharePercent: share,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LinesChanged != entries[j].LinesChanged {
			return entries[i].LinesChanged > entries[j].LinesChanged
		}
		return entries[i].AuthorName < entries[j].AuthorName
	})

	return entries
}

// RankContributors orders per-author stats by commit count descending,
// ties broken by author name ascending.
func RankContributors(stats map[string]*parse.AuthorStat) []parse.AuthorStat {
	ranked := make([]parse.AuthorStat, 0, len(stats))
	for _, stat := range stats {
		ranked = append(ranked, *stat)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Commits != ranked[j].Commits {
			return ranked[i].Commits > ranked[j].Commits
		}
		return ranked[i].Name < ranked[j].Name
	})

	return ranked
}
