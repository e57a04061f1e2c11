package clip

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"tableflip.dev/daylog/pkg/app"
)

// Copy writes one entry's content to the system clipboard.
type Copy struct {
	Service *app.Service

	ID string
}

func (n *Copy) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("copy requires an entry id")
	}

	content, err := n.lookup()
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("copy: clipboard write: %w", err)
	}
	fmt.Println("copied")
	return nil
}

func (n *Copy) lookup() (string, error) {
	for _, bucket := range n.Service.Logs {
		for _, e := range bucket {
			if e != nil && e.ID == n.ID {
				return e.Content, nil
			}
		}
	}
	for _, bucket := range n.Service.Todos {
		for _, t := range bucket {
			if t != nil && t.ID == n.ID {
				return t.Content, nil
			}
		}
	}
	return "", app.ErrNotFound
}
