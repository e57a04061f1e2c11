package remove

import (
	"context"
	"errors"

	"tableflip.dev/daylog/pkg/app"
)

// Remove deletes one entry by id, whichever store it lives in.
type Remove struct {
	Service *app.Service

	ID string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("rm requires an entry id")
	}
	if err := n.Service.RemoveLog(n.ID); err != nil {
		if !errors.Is(err, app.ErrNotFound) {
			return err
		}
		if err := n.Service.RemoveTodo(n.ID); err != nil {
			return err
		}
	}
	return n.Service.Save()
}
