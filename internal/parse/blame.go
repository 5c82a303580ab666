package parse

import (
	"strconv"
	"strings"
	"time"
)

// blameState names the parser's position in the porcelain stream.
type blameState int

const (
	// blameSeekHeader - no commit header seen yet
	blameSeekHeader blameState = iota
	// blameInEntry - a header has bound hash/author context
	blameInEntry
)

// blameLineKind classifies one input line of the porcelain stream.
type blameLineKind int

const (
	blameLineContent blameLineKind = iota
	blameLineHeader
	blameLineAuthor
	blameLineAuthorTime
	blameLineOther
)

func classifyBlameLine(line string) blameLineKind {
	if strings.HasPrefix(line, "\t") {
		return blameLineContent
	}
	if len(line) >= 40 && isCommitHash(line[:40]) && (len(line) == 40 || line[40] == ' ') {
		return blameLineHeader
	}
	if strings.HasPrefix(line, "author ") {
		return blameLineAuthor
	}
	if strings.HasPrefix(line, "author-time ") {
		return blameLineAuthorTime
	}
	return blameLineOther
}

// ParseBlame walks `blame --porcelain` output one line at a time. A header
// line records the commit hash and advances the output-line counter; author
// and author-time lines update the current attribution; a tab-marked
// content line emits a BlameLine from the most-recently-seen values with
// the content after the tab verbatim. All other lines are ignored.
//
// For a well-formed stream the emitted LineNumber values form the
// contiguous range 1..N for N content lines, and re-parsing identical
// input yields identical output. A malformed stream whose content arrives
// before any header emits entries with empty attribution and LineNumber 0;
// that is the documented contract for such input, not an error.
func ParseBlame(out []byte) []BlameLine {
	var (
		state     = blameSeekHeader
		curHash   string
		curAuthor string
		curTime   time.Time
		lineNo    int
	)
	lines := []BlameLine{}

	sc := newScanner(out)
	for sc.Scan() {
		line := sc.Text()
		switch classifyBlameLine(line) {
		case blameLineHeader:
			curHash = line[:40]
			lineNo++
			state = blameInEntry
		case blameLineAuthor:
			if state == blameInEntry {
				curAuthor = strings.TrimPrefix(line, "author ")
			}
		case blameLineAuthorTime:
			if state == blameInEntry {
				epoch, err := strconv.ParseInt(strings.TrimPrefix(line, "author-time "), 10, 64)
				if err == nil {
					curTime = time.Unix(epoch, 0).UTC()
				}
			}
		case blameLineContent:
			lines = append(lines, BlameLine{
				CommitHash: curHash,
				AuthorName: curAuthor,
				Timestamp:  curTime,
				LineNumber: lineNo,
				Content:    line[1:],
			})
		case blameLineOther:
			// ignored
		}
	}

	return lines
}
