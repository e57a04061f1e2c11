package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/runner/login"
	"tableflip.dev/daylog/pkg/store"
)

func addLogin(topLevel *cobra.Command) {
	var (
		password string
		remember bool
	)

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in against the identity table.",
		Example: `
daylog login demo --remember
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := login.Login{
				Persistence: p,
				Username:    args[0],
				Password:    password,
				Remember:    remember,
			}
			return l.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password; prompted for when omitted.")
	cmd.Flags().BoolVarP(&remember, "remember", "r", true, "Remember this identity for the next invocation.")
	topLevel.AddCommand(cmd)

	out := &cobra.Command{
		Use:   "logout",
		Short: "Forget the remembered identity.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := login.Logout{Persistence: p}
			return l.Do(context.Background())
		},
	}
	topLevel.AddCommand(out)
}
