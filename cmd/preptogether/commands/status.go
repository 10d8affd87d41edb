package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether you are logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Server: %s\n", wire.API.BaseURL())
			if !wire.Session.IsLoggedIn() {
				fmt.Fprintln(out, "Logged out")
				return nil
			}
			fmt.Fprintln(out, "Logged in")
			claims, ok := wire.Session.Claims()
			if !ok {
				return nil
			}
			if claims.Subject != "" {
				fmt.Fprintf(out, "Account: %s\n", claims.Subject)
			}
			if !claims.ExpiresAt.IsZero() {
				state := "valid"
				if claims.Expired(time.Now()) {
					state = "expired"
				}
				fmt.Fprintf(out, "Token expires: %s (%s)\n", claims.ExpiresAt.Local().Format(time.RFC1123), state)
			}
			return nil
		},
	}
}
