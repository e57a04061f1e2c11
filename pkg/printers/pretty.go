// Package printers renders buckets and previews for the CLI.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/glyph"
	"tableflip.dev/daylog/pkg/pipeline"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-000000000000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Logs prints one date bucket in canonical order.
func (pp *PrettyPrint) Logs(entries ...*entry.LogEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	ts := color.New(color.Faint)

	for _, e := range entries {
		if e == nil {
			continue
		}
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(pad(e.ID))
		}
		if e.Display != "" {
			_, _ = ts.Printf("%s ", e.Display)
		}
		_, _ = t.Printf("%s %s\n", glyph.Log.String(), e.Content)
	}
	_, _ = t.Println("")
}

// Todos prints one date bucket; done resolves each todo's effective
// completion so the caller can bring the match-derived state along.
func (pp *PrettyPrint) Todos(todos []*entry.TodoEntry, done func(*entry.TodoEntry) bool) {
	if len(todos) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, td := range todos {
		if td == nil {
			continue
		}
		if pp.ShowID {
			_, _ = y.Print(td.ID)
			_, _ = y.Print(pad(td.ID))
		}
		mark := glyph.TodoOpen
		text := td.Content
		if done != nil && done(td) {
			mark = glyph.TodoDone
			text = glyph.Strike(text)
		}
		_, _ = t.Printf("%s %s\n", mark.String(), text)
	}
	_, _ = t.Println("")
}

// Preview renders import candidates as a table: selection, duplicate flag,
// resolved date/time, and content.
func (pp *PrettyPrint) Preview(candidates []*pipeline.Candidate) {
	if len(candidates) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("#", "SEL", "DUP", "DATE", "TIME", "CONTENT")

	for i, c := range candidates {
		if c == nil {
			continue
		}
		sel := " "
		if c.Selected {
			sel = "*"
		}
		dup := " "
		if c.Duplicate {
			dup = glyph.Duplicate.String()
		}
		switch {
		case c.Log != nil:
			tbl.AddRow(fmt.Sprint(i+1), sel, dup, c.Log.Date, c.Log.Display, c.Log.Content)
		case c.Todo != nil:
			tbl.AddRow(fmt.Sprint(i+1), sel, dup, c.Todo.Date, "", c.Todo.Content)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func pad(id string) string {
	if len(id) >= len(spacing) {
		return " "
	}
	return strings.Repeat(" ", len(spacing)-len(id))
}
