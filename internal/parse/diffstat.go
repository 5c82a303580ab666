package parse

import (
	"path"
	"strconv"
	"strings"
)

// ParseDiffNumstat turns `diff --numstat` output into per-file insertion
// and deletion counts. Binary files report `-` counts and are flagged
// instead of counted. Rename paths are normalized to the new name.
func ParseDiffNumstat(out []byte) []FileDiffStat {
	stats := []FileDiffStat{}

	sc := newScanner(out)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		stat := FileDiffStat{Path: NormalizeRenamePath(strings.TrimSpace(parts[2]))}
		if parts[0] == "-" || parts[1] == "-" {
			stat.IsBinary = true
			stats = append(stats, stat)
			continue
		}
		ins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		del, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		stat.Insertions = ins
		stat.Deletions = del
		stats = append(stats, stat)
	}

	return stats
}

// CountDiffHunks counts `@@` hunk markers in a unified diff, grouped by
// file. The current file is tracked from `+++ b/` header lines; deleted
// files report `+++ /dev/null` and fall back to the preceding `--- a/`
// path. Binary entries have no hunks and do not appear.
func CountDiffHunks(out []byte) map[string]int {
	hunks := make(map[string]int)

	var current string
	var oldPath string

	sc := newScanner(out)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "--- a/"):
			oldPath = strings.TrimPrefix(line, "--- a/")
		case strings.HasPrefix(line, "--- "):
			oldPath = ""
		case strings.HasPrefix(line, "+++ b/"):
			current = strings.TrimPrefix(line, "+++ b/")
		case strings.HasPrefix(line, "+++ /dev/null"):
			current = oldPath
		case strings.HasPrefix(line, "@@"):
			if current != "" {
				hunks[current]++
			}
		}
	}

	return hunks
}

// NormalizeRenamePath collapses git's rename notation to the new path:
// `old => new` becomes `new`, and the braced form `pre{old => new}post`
// becomes `pre` + `new` + `post`.
func NormalizeRenamePath(p string) string {
	if i := strings.Index(p, "{"); i >= 0 {
		rest := p[i:]
		j := strings.Index(rest, " => ")
		k := strings.Index(rest, "}")
		if j >= 0 && k > j {
			return path.Clean(p[:i] + rest[j+4:k] + rest[k+1:])
		}
	}
	if j := strings.Index(p, " => "); j >= 0 {
		return p[j+4:]
	}
	return p
}
