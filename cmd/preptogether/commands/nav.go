package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"preptogether/internal/domain"
)

var routesByName = map[string]domain.Route{
	"home":     domain.RouteHome,
	"register": domain.RouteRegister,
	"login":    domain.RouteLogin,
	"profile":  domain.RouteProfile,
}

func navCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "nav [home|register|login|profile]",
		Short:     "Print the navigation bar, or open a view",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"home", "register", "login", "profile"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return wire.Gate.Render(cmd.OutOrStdout())
			}
			route, ok := routesByName[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown view %q", args[0])
			}
			return wire.Router.Navigate(cmd.Context(), route)
		},
	}
}
