package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/pipeline"
	"tableflip.dev/daylog/pkg/printers"
)

// Ingest parses freeform text into candidates, previews them, and commits
// the selected subset when asked.
type Ingest struct {
	Service *app.Service

	Todos bool   // parse todo grammar instead of log grammar
	Path  string // read from a file; empty means stdin
	Date  string // selected date for lines without their own

	Commit bool // merge selected candidates; default previews only
	All    bool // include flagged duplicates in the commit

	Stdin io.Reader
}

func (n *Ingest) Do(ctx context.Context) error {
	text, err := n.readAll()
	if err != nil {
		return err
	}

	now := time.Now()
	if n.Date == "" {
		n.Date = n.Service.Today(now)
	}
	opts := pipeline.Options{
		Date:     n.Date,
		Now:      now,
		Timezone: n.Service.Settings.Timezone,
		Format:   n.Service.Settings.TimeFormat,
	}

	var candidates []*pipeline.Candidate
	if n.Todos {
		candidates = pipeline.ParseTodos(text, opts)
	} else {
		candidates = pipeline.ParseLogs(text, opts)
	}

	if n.All {
		for _, c := range candidates {
			c.Selected = true
		}
	}

	pp := printers.PrettyPrint{}
	pp.Title("import preview")
	pp.Preview(candidates)

	if !n.Commit {
		fmt.Println("preview only; pass --commit to merge the selected entries")
		return nil
	}

	var committed int
	if n.Todos {
		committed = pipeline.CommitTodos(n.Service, candidates)
	} else {
		committed = pipeline.CommitLogs(n.Service, candidates)
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	fmt.Printf("committed %d of %d\n", committed, len(candidates))
	return nil
}

func (n *Ingest) readAll() (string, error) {
	if n.Path != "" {
		data, err := os.ReadFile(n.Path)
		if err != nil {
			return "", fmt.Errorf("import: read %s: %w", n.Path, err)
		}
		return string(data), nil
	}
	in := n.Stdin
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.New("import: nothing to read")
	}
	return string(data), nil
}
