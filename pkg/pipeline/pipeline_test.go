package pipeline_test

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/pipeline"
	"tableflip.dev/daylog/pkg/timeclock"
)

const testDate = "2026-02-28"

func testOptions(t *testing.T) pipeline.Options {
	t.Helper()
	now, err := time.Parse("2006-01-02 15:04", testDate+" 11:45")
	if err != nil {
		t.Fatalf("bad test clock: %v", err)
	}
	return pipeline.Options{
		Date:     testDate,
		Now:      now.UTC(),
		Timezone: "UTC",
		Format:   timeclock.Format24,
	}
}

func TestParseLogs(t *testing.T) {
	text := strings.Join([]string{
		"9:15 - standup",
		"",
		"just a note with no time",
		"[2026-03-01] 10:00 - planning",
		"2026-03-01 10:30 - grooming",
	}, "\n")

	got := pipeline.ParseLogs(text, testOptions(t))
	if len(got) != 4 {
		t.Fatalf("got %d candidates, want 4 (blank line skipped)", len(got))
	}

	if got[0].Log.Content != "standup" || got[0].Log.Display != "09:15" || got[0].Log.Date != testDate {
		t.Fatalf("candidate 0: %+v", got[0].Log)
	}

	// No separator: whole line is content at the session clock.
	if got[1].Log.Content != "just a note with no time" {
		t.Fatalf("candidate 1 content = %q", got[1].Log.Content)
	}
	if got[1].Log.Display != "11:45" {
		t.Fatalf("candidate 1 display = %q, want the default time 11:45", got[1].Log.Display)
	}

	// Bracketed and bare date prefixes both carry the line to their own date.
	if got[2].Log.Date != "2026-03-01" || got[2].Log.Content != "planning" {
		t.Fatalf("candidate 2: %+v", got[2].Log)
	}
	if got[3].Log.Date != "2026-03-01" || got[3].Log.Display != "10:30" {
		t.Fatalf("candidate 3: %+v", got[3].Log)
	}

	for i, c := range got {
		if !c.Selected || c.Duplicate {
			t.Fatalf("candidate %d should start selected and not duplicate", i)
		}
	}
}

func TestParseLogsBadTimeDegradesToContent(t *testing.T) {
	got := pipeline.ParseLogs("sometime - broken clock", testOptions(t))
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	// The time side fails to parse, so the whole line is content.
	if got[0].Log.Content != "sometime - broken clock" {
		t.Fatalf("content = %q", got[0].Log.Content)
	}
	if got[0].Log.Display != "11:45" {
		t.Fatalf("display = %q, want default 11:45", got[0].Log.Display)
	}
}

func TestParseLogsDuplicates(t *testing.T) {
	text := strings.Join([]string{
		"9:15 - standup",
		"9:15 - Standup",
		"9:16 - standup",
	}, "\n")

	got := pipeline.ParseLogs(text, testOptions(t))
	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3 (duplicates stay in the preview)", len(got))
	}
	if got[0].Duplicate || !got[0].Selected {
		t.Fatal("first occurrence must stay selected")
	}
	// Same time, same content ignoring case: a duplicate, deselected.
	if !got[1].Duplicate || got[1].Selected {
		t.Fatal("case-insensitive repeat at the same time must be flagged")
	}
	// Same content at a different time is a distinct entry.
	if got[2].Duplicate {
		t.Fatal("same content at a new time is not a duplicate")
	}
}

func TestParseTodos(t *testing.T) {
	text := strings.Join([]string{
		"- review PR",
		"plain task",
		"[2026-03-01] - prep demo",
		"",
		"-",
	}, "\n")

	got := pipeline.ParseTodos(text, testOptions(t))
	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3 (blank and dash-only skipped)", len(got))
	}
	if got[0].Todo.Content != "review PR" || got[0].Todo.Date != testDate {
		t.Fatalf("candidate 0: %+v", got[0].Todo)
	}
	if got[1].Todo.Content != "plain task" {
		t.Fatalf("candidate 1: %+v", got[1].Todo)
	}
	if got[2].Todo.Date != "2026-03-01" || got[2].Todo.Content != "prep demo" {
		t.Fatalf("candidate 2: %+v", got[2].Todo)
	}
}

func TestParseTodosDuplicates(t *testing.T) {
	text := strings.Join([]string{
		"- review PR",
		"- Review pr",
		"[2026-03-01] - review PR",
	}, "\n")

	got := pipeline.ParseTodos(text, testOptions(t))
	if !got[1].Duplicate {
		t.Fatal("same content on the same date must be flagged")
	}
	// Same content on a different date is distinct.
	if got[2].Duplicate {
		t.Fatal("same content on another date is not a duplicate")
	}
}

func TestCommitLogs(t *testing.T) {
	svc := newTestService(t)
	text := strings.Join([]string{
		"9:15 - standup",
		"9:15 - standup",
		"[2026-03-01] 10:00 - planning",
	}, "\n")

	candidates := pipeline.ParseLogs(text, testOptions(t))
	n := pipeline.CommitLogs(svc, candidates)
	if n != 2 {
		t.Fatalf("committed %d, want 2 (duplicate skipped)", n)
	}
	if len(svc.LogsOn(testDate)) != 1 {
		t.Fatalf("selected-date bucket has %d entries, want 1", len(svc.LogsOn(testDate)))
	}
	// Dated lines land in their own bucket, not the selected date's.
	if len(svc.LogsOn("2026-03-01")) != 1 {
		t.Fatal("dated line should land in its own bucket")
	}
}

func TestCommitLogsHonorsSelection(t *testing.T) {
	svc := newTestService(t)
	candidates := pipeline.ParseLogs("9:15 - standup\n9:15 - standup", testOptions(t))

	// The caller can force the duplicate in.
	candidates[1].Selected = true
	if n := pipeline.CommitLogs(svc, candidates); n != 2 {
		t.Fatalf("committed %d, want 2 when the duplicate is re-selected", n)
	}
	if len(svc.LogsOn(testDate)) != 2 {
		t.Fatal("both entries should be in the bucket")
	}
}

func TestCommitTodos(t *testing.T) {
	svc := newTestService(t)
	candidates := pipeline.ParseTodos("- review PR\n- review PR", testOptions(t))
	if n := pipeline.CommitTodos(svc, candidates); n != 1 {
		t.Fatal("duplicate todo should not commit")
	}
	if len(svc.TodosOn(testDate)) != 1 {
		t.Fatal("bucket should hold one todo")
	}
}

func TestExportLogs(t *testing.T) {
	buckets := map[string][]*entry.LogEntry{
		"2026-03-01": {
			{Date: "2026-03-01", Display: "10:00", Content: "planning"},
		},
		testDate: {
			{Date: testDate, Display: "09:15", Content: "standup"},
			{Date: testDate, Content: "legacy note"},
		},
	}

	got := pipeline.ExportLogs(buckets)
	want := strings.Join([]string{
		"[2026-02-28] 09:15 - standup",
		"[2026-02-28] legacy note",
		"[2026-03-01] 10:00 - planning",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("ExportLogs =\n%s\nwant\n%s", got, want)
	}
}

func TestExportTodos(t *testing.T) {
	buckets := map[string][]*entry.TodoEntry{
		testDate: {
			{Date: testDate, Content: "review PR"},
			nil,
			{Date: testDate, Content: ""},
		},
	}
	got := pipeline.ExportTodos(buckets)
	if got != "[2026-02-28] - review PR\n" {
		t.Fatalf("ExportTodos = %q", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	svc := newTestService(t)
	candidates := pipeline.ParseLogs("[2026-02-28] 9:15 - standup", testOptions(t))
	pipeline.CommitLogs(svc, candidates)

	exported := pipeline.ExportLogs(svc.Logs)

	again := newTestService(t)
	pipeline.CommitLogs(again, pipeline.ParseLogs(exported, testOptions(t)))
	logs := again.LogsOn(testDate)
	if len(logs) != 1 || logs[0].Content != "standup" || logs[0].Display != "09:15" {
		t.Fatalf("round trip produced %+v", logs)
	}
}

func TestExportFileName(t *testing.T) {
	if got := pipeline.ExportFileName(testDate, "logs"); got != "2026-02-28-logs.txt" {
		t.Fatalf("ExportFileName = %q", got)
	}
}

func newTestService(t *testing.T) *app.Service {
	t.Helper()
	return &app.Service{
		Settings: app.DefaultSettings(),
		Logs:     make(map[string][]*entry.LogEntry),
		Todos:    make(map[string][]*entry.TodoEntry),
	}
}
