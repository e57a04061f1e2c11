// Package entry defines the persisted data model: timestamped log entries
// and todo entries grouped into per-date buckets.
package entry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const layoutISO = "2006-01-02"

// LogEntry is one timestamped activity record. Canonical is the source of
// truth; Display is a regenerable rendering of that instant under the
// session's current timezone and format. Canonical == 0 marks a legacy entry
// imported without a time; those sort first in their bucket.
type LogEntry struct {
	ID        string `json:"id"`
	Canonical int64  `json:"canonicalTime,omitempty"`
	Display   string `json:"displayTime,omitempty"`
	Content   string `json:"content"`
	Date      string `json:"date"`
}

func NewLog(date, content string, canonical int64, display string) *LogEntry {
	return &LogEntry{
		ID:        uuid.NewString(),
		Canonical: canonical,
		Display:   display,
		Content:   content,
		Date:      date,
	}
}

// TodoEntry is one task item. Done carries the completion state machine;
// deriving effective completion from log matching is the app layer's concern.
type TodoEntry struct {
	ID      string     `json:"id"`
	Content string     `json:"content"`
	Done    Completion `json:"manualOverride"`
	Date    string     `json:"date"`
}

func NewTodo(date, content string) *TodoEntry {
	return &TodoEntry{
		ID:      uuid.NewString(),
		Content: content,
		Date:    date,
	}
}

// ParseDate validates and canonicalizes a YYYY-MM-DD bucket key.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return "", fmt.Errorf("entry: bad date %q: %w", s, err)
	}
	return t.Format(layoutISO), nil
}

// SortLogs orders a bucket ascending by canonical timestamp. The sort is
// stable so equal timestamps keep their relative insertion order, and
// missing timestamps (zero) sort first.
func SortLogs(entries []*LogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		return left.Canonical < right.Canonical
	})
}
