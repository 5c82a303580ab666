package parse

import (
	"strconv"
	"strings"
)

// NumstatFormat is the --format template the numstat parser expects on
// commit header lines.
const NumstatFormat = "%H|%an|%ae|%aI"

const numstatHeaderFields = 4

// numstatState names the parser's position in the interleaved stream.
type numstatState int

const (
	// numstatSeekHeader - stat lines are dropped until an author context exists
	numstatSeekHeader numstatState = iota
	// numstatInCommit - stat lines accumulate against the current author
	numstatInCommit
)

// numstatLineKind classifies one input line of the interleaved stream.
type numstatLineKind int

const (
	numstatLineBlank numstatLineKind = iota
	numstatLineHeader
	numstatLineStat
)

func classifyNumstatLine(line string) numstatLineKind {
	if strings.TrimSpace(line) == "" {
		return numstatLineBlank
	}
	parts := strings.SplitN(line, "|", numstatHeaderFields)
	if len(parts) == numstatHeaderFields && isCommitHash(parts[0]) {
		return numstatLineHeader
	}
	return numstatLineStat
}

// ParseNumstat consumes an interleaved stream of commit headers and
// `<added>\t<deleted>\t<path>` stat lines. Each header sets the current
// author context and counts one commit for that author; every following
// stat line attributes its added and deleted counts to the same author
// until the next header. Binary markers ("-") and malformed stat lines
// are skipped without aborting; stat lines before any header are dropped.
//
// Authors are keyed by lowercased email, falling back to lowercased name
// when the email is empty. The first-seen display name and email win.
func ParseNumstat(out []byte) map[string]*AuthorStat {
	authors := make(map[string]*AuthorStat)

	state := numstatSeekHeader
	var current *AuthorStat

	sc := newScanner(out)
	for sc.Scan() {
		line := sc.Text()
		switch classifyNumstatLine(line) {
		case numstatLineBlank:
			// separator, state unchanged
		case numstatLineHeader:
			parts := strings.SplitN(line, "|", numstatHeaderFields)
			name := strings.TrimSpace(parts[1])
			email := strings.TrimSpace(parts[2])
			key := AuthorKey(name, email)
			stat, ok := authors[key]
			if !ok {
				stat = &AuthorStat{Name: name, Email: email}
				authors[key] = stat
			}
			stat.Commits++
			current = stat
			state = numstatInCommit
		case numstatLineStat:
			if state != numstatInCommit {
				continue
			}
			added, deleted, ok := parseStatLine(line)
			if !ok {
				continue
			}
			current.Additions += added
			current.Deletions += deleted
		}
	}

	return authors
}

// AuthorKey normalizes an author identity: lowercased email when present,
// lowercased name otherwise.
func AuthorKey(name, email string) string {
	if email != "" {
		return strings.ToLower(email)
	}
	return strings.ToLower(name)
}

// parseStatLine splits one `<added>\t<deleted>\t<path>` line. Lines with
// fewer than three fields or non-numeric counts report ok=false.
func parseStatLine(line string) (added, deleted int, ok bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return 0, 0, false
	}
	added, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	deleted, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return added, deleted, true
}
