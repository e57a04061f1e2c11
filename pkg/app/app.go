// Package app owns one identity's session state: the per-date log and todo
// buckets, the session settings, and the persistence boundary. All mutation
// happens in memory; Save is the explicit write-back.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/match"
	"tableflip.dev/daylog/pkg/store"
	"tableflip.dev/daylog/pkg/timeclock"
)

var (
	ErrNotFound = errors.New("app: entry not found")

	// ErrInvalidTimeFormat is returned when an edit supplies text with no
	// parsable time. The entry is left unmodified.
	ErrInvalidTimeFormat = errors.New("app: invalid time format")
)

// Service provides the log store and todo store operations for one identity.
type Service struct {
	Identity string
	Settings Settings

	Logs  map[string][]*entry.LogEntry
	Todos map[string][]*entry.TodoEntry

	Persistence store.Persistence
}

// LoadSession reads the identity's persisted records. Missing or corrupt
// records fall back to empty state; switching identities is just another
// LoadSession with nothing carried over.
func LoadSession(p store.Persistence, identity string) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	s := &Service{
		Identity:    identity,
		Settings:    DefaultSettings(),
		Logs:        make(map[string][]*entry.LogEntry),
		Todos:       make(map[string][]*entry.TodoEntry),
		Persistence: p,
	}
	p.Load(identity, store.RecordSettings, &s.Settings)
	p.Load(identity, store.RecordLogs, &s.Logs)
	p.Load(identity, store.RecordTodos, &s.Todos)
	for _, bucket := range s.Logs {
		entry.SortLogs(bucket)
	}
	return s, nil
}

// Save writes all three records back.
func (s *Service) Save() error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	if err := s.Persistence.Save(s.Identity, store.RecordLogs, s.Logs); err != nil {
		return err
	}
	if err := s.Persistence.Save(s.Identity, store.RecordTodos, s.Todos); err != nil {
		return err
	}
	return s.Persistence.Save(s.Identity, store.RecordSettings, s.Settings)
}

// Logs and todos for a date, in bucket order.

func (s *Service) LogsOn(date string) []*entry.LogEntry {
	return s.Logs[date]
}

func (s *Service) TodosOn(date string) []*entry.TodoEntry {
	return s.Todos[date]
}

// AddLog records content at the given instant. Blank content is a silent
// no-op.
func (s *Service) AddLog(date, content string, now time.Time) *entry.LogEntry {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	canonical := now.UnixMilli()
	display := timeclock.Render(canonical, s.Settings.Timezone, s.Settings.TimeFormat)
	e := entry.NewLog(date, content, canonical, display)
	s.insertLog(e)
	return e
}

// insertLog appends into the entry's own date bucket and restores ordering.
func (s *Service) insertLog(e *entry.LogEntry) {
	bucket := append(s.Logs[e.Date], e)
	entry.SortLogs(bucket)
	s.Logs[e.Date] = bucket
}

// EditLog updates time and/or content. The new time is parsed as free text
// and re-composed against the entry's own date, so an edit never moves an
// entry across dates. Empty newContent keeps the prior content. On a parse
// failure the entry is untouched and ErrInvalidTimeFormat is returned for
// the caller to surface.
func (s *Service) EditLog(id, newTime, newContent string) (*entry.LogEntry, error) {
	e := s.findLog(id)
	if e == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(newTime) != "" {
		hour, minute, err := timeclock.ParseFreeTime(newTime, s.Settings.TimeFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, newTime)
		}
		canonical, err := timeclock.Compose(e.Date, hour, minute, s.Settings.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, newTime)
		}
		e.Canonical = canonical
		e.Display = timeclock.Render(canonical, s.Settings.Timezone, s.Settings.TimeFormat)
	}
	if c := strings.TrimSpace(newContent); c != "" {
		e.Content = c
	}
	entry.SortLogs(s.Logs[e.Date])
	return e, nil
}

func (s *Service) RemoveLog(id string) error {
	for date, bucket := range s.Logs {
		for i, e := range bucket {
			if e != nil && e.ID == id {
				s.Logs[date] = append(bucket[:i], bucket[i+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}

// ClearLogs drops a whole date bucket. Confirmation is the caller's concern.
func (s *Service) ClearLogs(date string) {
	delete(s.Logs, date)
}

func (s *Service) findLog(id string) *entry.LogEntry {
	for _, bucket := range s.Logs {
		for _, e := range bucket {
			if e != nil && e.ID == id {
				return e
			}
		}
	}
	return nil
}

// AddTodo records a task item. Blank content is a silent no-op.
func (s *Service) AddTodo(date, content string) *entry.TodoEntry {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	t := entry.NewTodo(date, content)
	s.Todos[date] = append(s.Todos[date], t)
	return t
}

// EditTodo replaces content. The manual override survives content edits.
func (s *Service) EditTodo(id, newContent string) (*entry.TodoEntry, error) {
	t := s.findTodo(id)
	if t == nil {
		return nil, ErrNotFound
	}
	if c := strings.TrimSpace(newContent); c != "" {
		t.Content = c
	}
	return t, nil
}

func (s *Service) RemoveTodo(id string) error {
	for date, bucket := range s.Todos {
		for i, t := range bucket {
			if t != nil && t.ID == id {
				s.Todos[date] = append(bucket[:i], bucket[i+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}

func (s *Service) ClearTodos(date string) {
	delete(s.Todos, date)
}

func (s *Service) findTodo(id string) *entry.TodoEntry {
	for _, bucket := range s.Todos {
		for _, t := range bucket {
			if t != nil && t.ID == id {
				return t
			}
		}
	}
	return nil
}

// TodoDone resolves a todo's effective completion: the pinned override when
// present, otherwise whether any log on the same date matches. Recomputed on
// demand, never cached, so it is always consistent with the latest log edits.
func (s *Service) TodoDone(t *entry.TodoEntry) bool {
	if t == nil {
		return false
	}
	return t.Done.Effective(match.Any(t.Content, s.Logs[t.Date]))
}

// ToggleTodo pins the todo to the negation of its current effective
// completion.
func (s *Service) ToggleTodo(id string) (*entry.TodoEntry, error) {
	t := s.findTodo(id)
	if t == nil {
		return nil, ErrNotFound
	}
	t.Done = t.Done.Toggled(match.Any(t.Content, s.Logs[t.Date]))
	return t, nil
}

// MatchingLog finds the log entry backing a todo's derived completion, or
// nil when nothing matches.
func (s *Service) MatchingLog(id string) (*entry.LogEntry, error) {
	t := s.findTodo(id)
	if t == nil {
		return nil, ErrNotFound
	}
	return match.FindLog(t.Content, s.Logs[t.Date]), nil
}

// CopyTodoToLog records a todo's content as a log entry at the given
// instant, leaving the todo in place.
func (s *Service) CopyTodoToLog(id string, now time.Time) (*entry.LogEntry, error) {
	t := s.findTodo(id)
	if t == nil {
		return nil, ErrNotFound
	}
	return s.AddLog(t.Date, t.Content, now), nil
}

// CopyLogToTodo creates a todo from a log's content on the same date.
func (s *Service) CopyLogToTodo(id string) (*entry.TodoEntry, error) {
	e := s.findLog(id)
	if e == nil {
		return nil, ErrNotFound
	}
	return s.AddTodo(e.Date, e.Content), nil
}

// ImportLog inserts an already-built entry into its own date bucket.
func (s *Service) ImportLog(e *entry.LogEntry) {
	if e == nil || strings.TrimSpace(e.Content) == "" {
		return
	}
	s.insertLog(e)
}

// ImportTodo appends an already-built todo into its own date bucket.
func (s *Service) ImportTodo(t *entry.TodoEntry) {
	if t == nil || strings.TrimSpace(t.Content) == "" {
		return
	}
	s.Todos[t.Date] = append(s.Todos[t.Date], t)
}

// Today returns the bucket key for now under the session timezone.
func (s *Service) Today(now time.Time) string {
	return timeclock.Today(now, s.Settings.Timezone)
}
