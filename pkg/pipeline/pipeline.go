// Package pipeline turns freeform multi-line text into candidate entries,
// flags duplicates, and commits the selected subset into a session. Parsing
// is maximally permissive: a line that fits no grammar degrades to "whole
// line as content at the current time and date" instead of being rejected,
// so the preview always renders.
package pipeline

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/timeclock"
)

// Options carries the session context a batch parse resolves against.
type Options struct {
	// Date is the currently selected date, used when a line carries no date
	// token of its own.
	Date string
	// Now supplies the default time for lines without one.
	Now      time.Time
	Timezone string
	Format   timeclock.Format
}

// Candidate is one parsed line awaiting the caller's commit decision.
// Exactly one of Log or Todo is set. Duplicates stay in the list so the
// preview can show them; they just start deselected.
type Candidate struct {
	Log  *entry.LogEntry
	Todo *entry.TodoEntry

	Line      string
	Duplicate bool
	Selected  bool
}

var (
	datePrefixPattern     = regexp.MustCompile(`^\[?(\d{4}-\d{2}-\d{2})\]?\s+`)
	todoDatePrefixPattern = regexp.MustCompile(`^\[?(\d{4}-\d{2}-\d{2})\]?\s*-\s+`)
)

const separator = " - "

// ParseLogs parses one log candidate per non-blank line.
//
// Grammar, best effort: optional leading YYYY-MM-DD (bracketed or bare),
// then `HH:MM[ AM|PM] - content`. A line with no separator, or whose time
// side does not parse, becomes content-only at the default time.
func ParseLogs(text string, opts Options) []*Candidate {
	seen := make(map[string]bool)
	var out []*Candidate

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		date, rest := takeDate(line, opts.Date, datePrefixPattern)

		content := rest
		hour, minute := nowClock(opts)
		if idx := strings.Index(rest, separator); idx >= 0 {
			if h, m, err := timeclock.ParseFreeTime(rest[:idx], opts.Format); err == nil {
				hour, minute = h, m
				content = strings.TrimSpace(rest[idx+len(separator):])
			}
		}
		if content == "" {
			continue
		}

		canonical, err := timeclock.Compose(date, hour, minute, opts.Timezone)
		if err != nil {
			// Unparsable date tokens never reach here, but keep the line
			// alive on the selected date regardless.
			canonical, _ = timeclock.Compose(opts.Date, hour, minute, opts.Timezone)
			date = opts.Date
		}
		display := timeclock.Render(canonical, opts.Timezone, opts.Format)

		key := fmt.Sprintf("%d\x00%s", canonical, strings.ToLower(content))
		c := &Candidate{
			Log:       entry.NewLog(date, content, canonical, display),
			Line:      raw,
			Duplicate: seen[key],
		}
		c.Selected = !c.Duplicate
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// ParseTodos parses one todo candidate per non-blank line: an optional
// `[YYYY-MM-DD] - ` prefix, else an optional leading `-` is stripped; the
// remainder is content.
func ParseTodos(text string, opts Options) []*Candidate {
	seen := make(map[string]bool)
	var out []*Candidate

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		date := opts.Date
		content := line
		if m := todoDatePrefixPattern.FindStringSubmatch(line); m != nil {
			if parsed, err := entry.ParseDate(m[1]); err == nil {
				date = parsed
				content = strings.TrimSpace(line[len(m[0]):])
			}
		} else {
			content = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		}
		if content == "" {
			continue
		}

		key := fmt.Sprintf("%s\x00%s", date, strings.ToLower(content))
		c := &Candidate{
			Todo:      entry.NewTodo(date, content),
			Line:      raw,
			Duplicate: seen[key],
		}
		c.Selected = !c.Duplicate
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// CommitLogs merges the selected log candidates into the session, each under
// its own resolved date. Returns the number committed.
func CommitLogs(svc *app.Service, candidates []*Candidate) int {
	n := 0
	for _, c := range candidates {
		if c == nil || !c.Selected || c.Log == nil {
			continue
		}
		svc.ImportLog(c.Log)
		n++
	}
	return n
}

// CommitTodos merges the selected todo candidates into the session.
func CommitTodos(svc *app.Service, candidates []*Candidate) int {
	n := 0
	for _, c := range candidates {
		if c == nil || !c.Selected || c.Todo == nil {
			continue
		}
		svc.ImportTodo(c.Todo)
		n++
	}
	return n
}

// takeDate strips a leading date token when present and valid, otherwise
// returns the fallback date with the line untouched.
func takeDate(line, fallback string, pattern *regexp.Regexp) (string, string) {
	if m := pattern.FindStringSubmatch(line); m != nil {
		if parsed, err := entry.ParseDate(m[1]); err == nil {
			return parsed, strings.TrimSpace(line[len(m[0]):])
		}
	}
	return fallback, line
}

func nowClock(opts Options) (int, int) {
	t := opts.Now.In(timeclock.Location(opts.Timezone))
	return t.Hour(), t.Minute()
}
