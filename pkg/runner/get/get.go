package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/printers"
)

// Get prints a date's log and todo buckets.
type Get struct {
	Service *app.Service

	Date      string
	ShowID    bool
	LogsOnly  bool
	TodosOnly bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no session")
	}
	if n.Date == "" {
		n.Date = n.Service.Today(time.Now())
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if !n.TodosOnly {
		logs := n.Service.LogsOn(n.Date)
		pp.TitleWithCount(fmt.Sprintf("%s · logs", n.Date), len(logs))
		pp.Logs(logs...)
	}

	if !n.LogsOnly {
		todos := n.Service.TodosOn(n.Date)
		pp.TitleWithCount(fmt.Sprintf("%s · todos", n.Date), len(todos))
		pp.Todos(todos, func(t *entry.TodoEntry) bool {
			return n.Service.TodoDone(t)
		})
	}

	// Remember the selection so the next invocation lands here.
	if n.Service.Settings.LastDate != n.Date {
		n.Service.Settings.LastDate = n.Date
		if err := n.Service.Save(); err != nil {
			return err
		}
	}

	return nil
}
