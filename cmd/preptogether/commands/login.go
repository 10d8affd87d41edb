package commands

import (
	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)
			var err error
			if email == "" {
				if remembered, ok := wire.RememberedEmail(); ok {
					email = remembered
				} else if email, err = p.ask("Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = p.secret("Password"); err != nil {
					return err
				}
			}
			return wire.Login(cmd.Context(), email, password)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "e-mail address (default: last used for this server)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}
