package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"preptogether/internal/catalog"
	"preptogether/internal/domain"
)

func professionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "professions [profession]",
		Short: "List professions, or the technologies offered for one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				techs, ok := catalog.Technologies(domain.Profession(args[0]))
				if !ok {
					return fmt.Errorf("unknown profession %q", args[0])
				}
				for _, tech := range techs {
					fmt.Fprintln(out, tech)
				}
				return nil
			}
			for _, p := range catalog.Professions() {
				techs, _ := catalog.Technologies(p)
				fmt.Fprintf(out, "%s: %s\n", p, strings.Join(techs, ", "))
			}
			return nil
		},
	}
}
