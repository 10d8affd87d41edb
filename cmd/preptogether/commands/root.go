package commands

import (
	"github.com/spf13/cobra"

	"preptogether/internal/app"
	"preptogether/internal/logging"
)

const serviceName = "preptogether"

// wire is the dependency graph for the running command.
var wire *app.Wire

// NewRootCmd creates the root command.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "preptogether",
		Short: "Prepare Together client",
		Long: `preptogether connects job seekers with volunteer mentors in the industry.
Register an account, log in and view your profile from the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger := logging.Setup(serviceName, version, cfg.LogFormat, level, cmd.ErrOrStderr())

			wire, err = app.NewWire(cfg, logger, app.WithOutput(cmd.OutOrStdout()))
			return err
		},
	}

	app.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		profileCmd(),
		navCmd(),
		statusCmd(),
		professionsCmd(),
	)
	return root
}
