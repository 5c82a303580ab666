package parse

import (
	"strings"
	"time"
)

// LogFormat is the --format template the log parsers expect: one commit
// per record line, fields separated by a pipe, newest first.
const LogFormat = "%H|%an|%ae|%aI|%s"

const logFieldCount = 5

// ParseLog turns a delimited commit-log stream into an ordered sequence of
// commit records, preserving git's newest-first order. Lines that do not
// yield five fields, a well-formed hash, and a parseable timestamp are
// dropped. Empty input yields an empty slice, never an error.
func ParseLog(out []byte) []CommitRecord {
	commits := []CommitRecord{}

	sc := newScanner(out)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, ok := parseLogLine(line)
		if !ok {
			continue
		}
		commits = append(commits, rec)
	}

	return commits
}

// parseLogLine splits one record line. The subject may itself contain
// pipes, so only the first four delimiters split.
func parseLogLine(line string) (CommitRecord, bool) {
	parts := strings.SplitN(line, "|", logFieldCount)
	if len(parts) != logFieldCount {
		return CommitRecord{}, false
	}
	if !isCommitHash(parts[0]) {
		return CommitRecord{}, false
	}
	ts, err := time.Parse(time.RFC3339, parts[3])
	if err != nil {
		return CommitRecord{}, false
	}
	return CommitRecord{
		Hash:        parts[0],
		AuthorName:  parts[1],
		AuthorEmail: parts[2],
		Timestamp:   ts,
		Message:     parts[4],
	}, true
}

// ParseLogWithPatches consumes a `log -p` stream produced with LogFormat.
// A line that parses as a commit record starts a new entry; every other
// line is accumulated verbatim as that entry's diff text. Content before
// the first record line is discarded.
func ParseLogWithPatches(out []byte) []CommitPatch {
	patches := []CommitPatch{}
	var diff strings.Builder
	haveCurrent := false
	var current CommitRecord

	flush := func() {
		if !haveCurrent {
			return
		}
		patches = append(patches, CommitPatch{
			CommitRecord: current,
			DiffText:     strings.Trim(diff.String(), "\n"),
		})
		diff.Reset()
	}

	sc := newScanner(out)
	for sc.Scan() {
		line := sc.Text()
		if rec, ok := parseLogLine(strings.TrimSpace(line)); ok {
			flush()
			current = rec
			haveCurrent = true
			continue
		}
		if !haveCurrent {
			continue
		}
		diff.WriteString(line)
		diff.WriteByte('\n')
	}
	flush()

	return patches
}
