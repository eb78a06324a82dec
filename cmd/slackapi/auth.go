package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "auth-test",
		Short: "Check the configured token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := a.api()
			if err != nil {
				return err
			}
			user, team, err := api.AuthenticationTest(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "user %s on team %s\n", user, team)
			return err
		},
	}
}
