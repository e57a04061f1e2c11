package watch

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/printers"
	"tableflip.dev/daylog/pkg/store"
)

// Watch re-prints a date's buckets whenever another process changes this
// identity's records. Runs until ctx is cancelled.
type Watch struct {
	Service     *app.Service
	Persistence store.Persistence

	Date   string
	ShowID bool
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Date == "" {
		n.Date = n.Service.Today(time.Now())
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	n.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventIdentityChanged && ev.Identity != n.Service.Identity {
				continue
			}
			// Reload the snapshot wholesale; the watcher holds no state of
			// its own to merge.
			svc, err := app.LoadSession(n.Persistence, n.Service.Identity)
			if err != nil {
				fmt.Println("watch: reload:", err)
				continue
			}
			n.Service = svc
			n.render()
		}
	}
}

func (n *Watch) render() {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	logs := n.Service.LogsOn(n.Date)
	pp.TitleWithCount(fmt.Sprintf("%s · logs", n.Date), len(logs))
	pp.Logs(logs...)
	todos := n.Service.TodosOn(n.Date)
	pp.TitleWithCount(fmt.Sprintf("%s · todos", n.Date), len(todos))
	pp.Todos(todos, func(t *entry.TodoEntry) bool {
		return n.Service.TodoDone(t)
	})
}
