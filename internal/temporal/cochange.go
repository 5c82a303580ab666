package temporal

import (
	"sort"

	"github.com/repohist/repohist-go/internal/parse"
)

// CorrelateCoChanges ranks candidate files by how many commits they share
// with a target file. targetHistory is the target's own history,
// newest-first. For each candidate the shared count is the size of the
// intersection between the target's hash set and the candidate's; zero
// intersections are dropped. The most recent shared commit is resolved
// against the target's own newest-first ordering, not the candidate's, so
// ties between hash-identical commits land on the target's timeline.
//
// Results sort descending by shared count, ties broken by path ascending,
// and are truncated to limit when limit > 0. Cost is
// O(candidates x historyDepth).
func CorrelateCoChanges(targetHistory []parse.CommitRecord, candidates []CandidateHistory, limit int) []CoChangeEntry {
	entries := []CoChangeEntry{}
	if len(targetHistory) == 0 {
		return entries
	}

	targetHashes := make(map[string]bool, len(targetHistory))
	for _, rec := range targetHistory {
		targetHashes[rec.Hash] = true
	}

	for _, cand := range candidates {
		candHashes := make(map[string]bool, len(cand.Hashes))
		for _, h := range cand.Hashes {
			candHashes[h] = true
		}

		shared := 0
		for h := range candHashes {
			if targetHashes[h] {
				shared++
			}
		}
		if shared == 0 {
			continue
		}

		entry := CoChangeEntry{
			OtherPath:         cand.Path,
			SharedCommitCount: shared,
		}
		for _, rec := range targetHistory {
			if candHashes[rec.Hash] {
				entry.MostRecentShared = rec.Timestamp
				break
			}
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SharedCommitCount != entries[j].SharedCommitCount {
			return entries[i].SharedCommitCount > entries[j].SharedCommitCount
		}
		return entries[i].OtherPath < entries[j].OtherPath
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// SharedCommitCount computes the intersection size between two hash sets
// directly. It exists so co-change symmetry can be checked without going
// through the full correlator.
func SharedCommitCount(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, h := range a {
		set[h] = true
	}
	count := 0
	seen := make(map[string]bool, len(b))
	for _, h := range b {
		if set[h] && !seen[h] {
			seen[h] = true
			count++
		}
	}
	return count
}
