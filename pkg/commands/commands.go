// Package commands wires the daylog CLI.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/auth"
	"tableflip.dev/daylog/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daylog",
		Short: "Timestamped activity logs and todos, one day at a time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addTodo(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addImport(topLevel)
	addExport(topLevel)
	addCopy(topLevel)
	addSettings(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

// loadSession resolves the remembered identity and loads its records. Every
// command except login/logout/version goes through here.
func loadSession() (*app.Service, store.Persistence, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	identity, ok := auth.RememberedIdentity(p)
	if !ok {
		return nil, p, errors.New(`not logged in, run: daylog login <user> --remember`)
	}
	svc, err := app.LoadSession(p, identity)
	if err != nil {
		return nil, p, err
	}
	return svc, p, nil
}

func selectedDate(svc *app.Service, flag string) string {
	if flag != "" {
		return flag
	}
	if svc.Settings.LastDate != "" {
		return svc.Settings.LastDate
	}
	return ""
}
