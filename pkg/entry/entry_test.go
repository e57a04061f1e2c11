package entry_test

import (
	"encoding/json"
	"testing"

	"tableflip.dev/daylog/pkg/entry"
)

func TestCompletionEffective(t *testing.T) {
	tests := []struct {
		name    string
		state   entry.Completion
		derived bool
		want    bool
	}{
		{"auto follows derived false", entry.Auto, false, false},
		{"auto follows derived true", entry.Auto, true, true},
		{"pinned true ignores derived", entry.Pin(true), false, true},
		{"pinned false ignores derived", entry.Pin(false), true, false},
	}
	for _, tt := range tests {
		if got := tt.state.Effective(tt.derived); got != tt.want {
			t.Errorf("%s: Effective(%v) = %v, want %v", tt.name, tt.derived, got, tt.want)
		}
	}
}

func TestCompletionToggled(t *testing.T) {
	// A toggle always pins the negation of what the user currently sees.
	tests := []struct {
		name    string
		state   entry.Completion
		derived bool
		want    bool
	}{
		{"auto undone toggles to done", entry.Auto, false, true},
		{"auto done-by-match toggles to undone", entry.Auto, true, false},
		{"pinned done toggles to undone", entry.Pin(true), true, false},
		{"pinned undone toggles to done", entry.Pin(false), false, true},
	}
	for _, tt := range tests {
		next := tt.state.Toggled(tt.derived)
		if !next.Pinned {
			t.Errorf("%s: toggle must pin", tt.name)
		}
		if next.Value != tt.want {
			t.Errorf("%s: Toggled(%v).Value = %v, want %v", tt.name, tt.derived, next.Value, tt.want)
		}
	}
}

func TestCompletionJSON(t *testing.T) {
	type record struct {
		Done entry.Completion `json:"manualOverride"`
	}

	tests := []struct {
		name  string
		state entry.Completion
		wire  string
	}{
		{"auto is null", entry.Auto, `{"manualOverride":null}`},
		{"pinned true", entry.Pin(true), `{"manualOverride":true}`},
		{"pinned false", entry.Pin(false), `{"manualOverride":false}`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(record{Done: tt.state})
		if err != nil {
			t.Fatalf("%s: marshal: %v", tt.name, err)
		}
		if string(b) != tt.wire {
			t.Errorf("%s: marshal = %s, want %s", tt.name, b, tt.wire)
		}

		var back record
		if err := json.Unmarshal([]byte(tt.wire), &back); err != nil {
			t.Fatalf("%s: unmarshal: %v", tt.name, err)
		}
		if back.Done != tt.state {
			t.Errorf("%s: unmarshal = %+v, want %+v", tt.name, back.Done, tt.state)
		}
	}

	// A blob with the field missing entirely decodes as Auto.
	var missing record
	if err := json.Unmarshal([]byte(`{}`), &missing); err != nil {
		t.Fatalf("unmarshal empty object: %v", err)
	}
	if missing.Done != entry.Auto {
		t.Errorf("missing field = %+v, want Auto", missing.Done)
	}
}

func TestParseDate(t *testing.T) {
	got, err := entry.ParseDate(" 2026-02-28 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "2026-02-28" {
		t.Errorf("ParseDate = %q, want 2026-02-28", got)
	}

	for _, bad := range []string{"", "02/28/2026", "2026-13-01", "tomorrow"} {
		if _, err := entry.ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestSortLogs(t *testing.T) {
	a := &entry.LogEntry{ID: "a", Canonical: 300}
	b := &entry.LogEntry{ID: "b", Canonical: 100}
	c := &entry.LogEntry{ID: "c", Canonical: 0} // legacy, no timestamp
	d := &entry.LogEntry{ID: "d", Canonical: 100}

	logs := []*entry.LogEntry{a, b, c, d}
	entry.SortLogs(logs)

	order := []string{logs[0].ID, logs[1].ID, logs[2].ID, logs[3].ID}
	want := []string{"c", "b", "d", "a"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestNewEntries(t *testing.T) {
	l := entry.NewLog("2026-02-28", "wrote tests", 42, "9:00 AM")
	if l.ID == "" {
		t.Fatal("log entry needs an id")
	}
	if l.Date != "2026-02-28" || l.Content != "wrote tests" || l.Canonical != 42 {
		t.Fatalf("unexpected log entry: %+v", l)
	}

	td := entry.NewTodo("2026-02-28", "review PR")
	if td.ID == "" {
		t.Fatal("todo entry needs an id")
	}
	if td.Done != entry.Auto {
		t.Fatalf("new todo should start Auto, got %+v", td.Done)
	}
	if td.ID == l.ID {
		t.Fatal("ids should be unique")
	}
}
