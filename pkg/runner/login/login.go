package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"tableflip.dev/daylog/pkg/auth"
	"tableflip.dev/daylog/pkg/store"
)

// Login checks credentials against the identity table and optionally
// records the identity for auto-login on the next invocation.
type Login struct {
	Persistence store.Persistence

	Username string
	Password string
	Remember bool
}

func (n *Login) Do(ctx context.Context) error {
	if n.Username == "" {
		return errors.New("login requires a username")
	}
	if n.Password == "" {
		prompt := promptui.Prompt{
			Label: fmt.Sprintf("Password for %s", n.Username),
			Mask:  '*',
		}
		pass, err := prompt.Run()
		if err != nil {
			return err
		}
		n.Password = pass
	}

	token, err := auth.Login(n.Username, n.Password)
	if err != nil {
		return err
	}

	if n.Remember {
		if err := n.Persistence.Remember(n.Username, token); err != nil {
			return err
		}
	}

	fmt.Printf("logged in as %s\n", n.Username)
	return nil
}

// Logout discards the remembered identity. In-memory state belongs to the
// finished invocation; the next session reloads whichever identity logs in.
type Logout struct {
	Persistence store.Persistence
}

func (n *Logout) Do(ctx context.Context) error {
	if err := n.Persistence.Forget(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}
