package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/daylog/pkg/entry"
)

// ExportLogs renders log buckets in the interchange format, one entry per
// line: `[YYYY-MM-DD] HH:MM - content`. Entries without a recoverable time
// omit the time column. Dates are emitted in ascending order.
func ExportLogs(buckets map[string][]*entry.LogEntry) string {
	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var b strings.Builder
	for _, date := range dates {
		for _, e := range buckets[date] {
			if e == nil || e.Content == "" {
				continue
			}
			if e.Display == "" {
				fmt.Fprintf(&b, "[%s] %s\n", e.Date, e.Content)
				continue
			}
			fmt.Fprintf(&b, "[%s] %s - %s\n", e.Date, e.Display, e.Content)
		}
	}
	return b.String()
}

// ExportTodos renders todo buckets as `[YYYY-MM-DD] - content` lines.
func ExportTodos(buckets map[string][]*entry.TodoEntry) string {
	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var b strings.Builder
	for _, date := range dates {
		for _, t := range buckets[date] {
			if t == nil || t.Content == "" {
				continue
			}
			fmt.Fprintf(&b, "[%s] - %s\n", t.Date, t.Content)
		}
	}
	return b.String()
}

// ExportFileName names a download for one date's entries, e.g.
// "2026-02-28-logs.txt".
func ExportFileName(date, kind string) string {
	return fmt.Sprintf("%s-%s.txt", date, kind)
}
