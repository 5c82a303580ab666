package parse

import (
	"strings"
)

// ParseStatusPorcelain partitions `status --porcelain` output into staged,
// modified, and untracked paths. Each line carries a two-character XY code:
// X is the index state, Y the worktree state, and "??" marks untracked
// files. A path can appear in both the staged and modified partitions.
// Rename lines keep the new path.
func ParseStatusPorcelain(out []byte) StatusFiles {
	files := StatusFiles{
		Staged:    []string{},
		Modified:  []string{},
		Untracked: []string{},
	}

	sc := newScanner(out)
	for sc.Scan() {
		line := sc.Text()
		if len(line) < 4 {
			continue
		}
		x, y := line[0], line[1]
		path := statusPath(line[3:])

		if x == '?' && y == '?' {
			files.Untracked = append(files.Untracked, path)
			continue
		}
		if strings.ContainsRune("AMDRC", rune(x)) {
			files.Staged = append(files.Staged, path)
		}
		if y == 'M' || y == 'D' {
			files.Modified = append(files.Modified, path)
		}
	}

	return files
}

// statusPath extracts the display path from a porcelain entry: renames
// report `old -> new` and keep the new path, and quoted paths lose their
// surrounding quotes.
func statusPath(p string) string {
	if i := strings.Index(p, " -> "); i >= 0 {
		p = p[i+4:]
	}
	return strings.Trim(p, `"`)
}
