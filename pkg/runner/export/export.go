package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/pipeline"
)

// Export renders buckets in the interchange format to stdout, a file, or
// the clipboard.
type Export struct {
	Service *app.Service

	Date  string // one date; empty exports every bucket
	Todos bool

	Out          string // write to this file; empty prints to stdout
	OutDefaulted bool   // derive <date>-<kind>.txt
	Clipboard    bool
}

func (n *Export) Do(ctx context.Context) error {
	kind := "logs"
	var text string
	if n.Todos {
		kind = "todos"
		text = pipeline.ExportTodos(n.todoBuckets())
	} else {
		text = pipeline.ExportLogs(n.logBuckets())
	}

	if n.Clipboard {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("export: clipboard write: %w", err)
		}
		fmt.Println("copied")
		return nil
	}

	out := n.Out
	if out == "" && n.OutDefaulted {
		date := n.Date
		if date == "" {
			date = n.Service.Today(time.Now())
		}
		out = pipeline.ExportFileName(date, kind)
	}
	if out != "" {
		if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
			return fmt.Errorf("export: write %s: %w", out, err)
		}
		fmt.Printf("wrote %s\n", out)
		return nil
	}

	fmt.Print(text)
	return nil
}

func (n *Export) logBuckets() map[string][]*entry.LogEntry {
	if n.Date == "" {
		return n.Service.Logs
	}
	return map[string][]*entry.LogEntry{n.Date: n.Service.LogsOn(n.Date)}
}

func (n *Export) todoBuckets() map[string][]*entry.TodoEntry {
	if n.Date == "" {
		return n.Service.Todos
	}
	return map[string][]*entry.TodoEntry{n.Date: n.Service.TodosOn(n.Date)}
}
