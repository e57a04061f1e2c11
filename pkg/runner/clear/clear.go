package clear

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daylog/pkg/app"
)

// Clear drops a whole date bucket. The store clears unconditionally, so the
// caller must have confirmed first; Confirmed is that handshake.
type Clear struct {
	Service *app.Service

	Date      string
	Todos     bool
	Confirmed bool
}

func (n *Clear) Do(ctx context.Context) error {
	if !n.Confirmed {
		return errors.New("clear requires confirmation, pass --yes")
	}
	if n.Date == "" {
		n.Date = n.Service.Today(time.Now())
	}

	if n.Todos {
		n.Service.ClearTodos(n.Date)
	} else {
		n.Service.ClearLogs(n.Date)
	}
	return n.Service.Save()
}
