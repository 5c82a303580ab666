package parse

import (
	"strconv"
	"strings"
)

// ParseGrep turns `path:lineNumber:content` search output into structured
// matches. Only the first two colons split, so content may itself contain
// colons. Lines without a parseable positive line number are excluded.
func ParseGrep(out []byte) []GrepMatch {
	matches := []GrepMatch{}

	sc := newScanner(out)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		m, ok := parseGrepLine(line)
		if !ok {
			continue
		}
		matches = append(matches, m)
	}

	return matches
}

func parseGrepLine(line string) (GrepMatch, bool) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) != 3 {
		return GrepMatch{}, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n <= 0 {
		return GrepMatch{}, false
	}
	return GrepMatch{
		File:    parts[0],
		Line:    n,
		Content: parts[2],
	}, true
}
