package commands

import (
	"github.com/spf13/cobra"

	"preptogether/internal/domain"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wire.Router.Navigate(cmd.Context(), domain.RouteProfile)
		},
	}
}
