package eutils

import (
	"regexp"
	"strconv"
)

// History is the server-side result-set handle returned by a search run
// with usehistory=y. Zero-valued fields mean the server never reported
// them. The handle is only as durable as the WebEnv session on the
// remote side; no local expiry is tracked.
type History struct {
	// WebEnv is the opaque session token.
	WebEnv string
	// QueryKey identifies the stored query within the session.
	QueryKey string
	// Count is the string-encoded total number of matching elements.
	Count string
}

// HasSession reports whether the handle carries both fields pagination
// needs to reference the stored result set.
func (h History) HasSession() bool {
	return h.WebEnv != "" && h.QueryKey != ""
}

// CountValue parses Count. ok is false when Count is absent or not a
// non-negative integer.
func (h History) CountValue() (n int, ok bool) {
	if h.Count == "" {
		return 0, false
	}
	n, err := strconv.Atoi(h.Count)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// historyTags maps each tag name to a pattern capturing its inline value.
// Values are non-whitespace runs; the captures are non-greedy so a value
// stops at the first closing tag even when the tag repeats on one line.
var historyTags = map[string]*regexp.Regexp{
	"WebEnv":   regexp.MustCompile(`<WebEnv>(\S+?)</WebEnv>`),
	"QueryKey": regexp.MustCompile(`<QueryKey>(\S+?)</QueryKey>`),
	"Count":    regexp.MustCompile(`<Count>(\S+?)</Count>`),
}

// HistoryScanner extracts a History from response lines. Each tag is
// captured at most once: the first occurrence wins and later occurrences
// are ignored, even if their values differ.
type HistoryScanner struct {
	found   map[string]string
	missing int
}

// NewHistoryScanner returns a scanner with no tags captured yet.
func NewHistoryScanner() *HistoryScanner {
	return &HistoryScanner{
		found:   make(map[string]string, len(historyTags)),
		missing: len(historyTags),
	}
}

// Scan inspects one line for any not-yet-captured tags. It returns true
// once every tag has been captured, letting callers stop early.
func (s *HistoryScanner) Scan(line string) (done bool) {
	for tag, re := range historyTags {
		if _, ok := s.found[tag]; ok {
			continue
		}
		if m := re.FindStringSubmatch(line); m != nil {
			s.found[tag] = m[1]
			s.missing--
		}
	}
	return s.missing == 0
}

// History returns the handle assembled so far. Uncaptured tags stay
// zero-valued; absence is not an error at this stage.
func (s *HistoryScanner) History() History {
	return History{
		WebEnv:   s.found["WebEnv"],
		QueryKey: s.found["QueryKey"],
		Count:    s.found["Count"],
	}
}
