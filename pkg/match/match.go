// Package match decides whether a todo's content appears in a log's content.
// The rule is deliberately simple: the todo text, taken as a literal phrase,
// must occur in the log bounded by word boundaries, case-insensitively. No
// fuzzy, partial, or out-of-order matching.
package match

import (
	"regexp"
	"strings"

	"tableflip.dev/daylog/pkg/entry"
)

// Matches reports whether todoContent occurs as a word-bounded literal
// phrase inside logContent. Blank todo content never matches. Total for
// arbitrary input; a pattern that fails to compile is treated as no match.
func Matches(todoContent, logContent string) bool {
	phrase := strings.TrimSpace(todoContent)
	if phrase == "" || logContent == "" {
		return false
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(logContent)
}

// FindLog returns the first log in bucket order whose content matches the
// todo content, or nil. This backs the "jump to the matching log" query.
func FindLog(todoContent string, logs []*entry.LogEntry) *entry.LogEntry {
	for _, l := range logs {
		if l != nil && Matches(todoContent, l.Content) {
			return l
		}
	}
	return nil
}

// Any reports whether any log in the bucket matches the todo content.
func Any(todoContent string, logs []*entry.LogEntry) bool {
	return FindLog(todoContent, logs) != nil
}
