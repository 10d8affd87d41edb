package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"preptogether/internal/catalog"
	"preptogether/internal/domain"
	"preptogether/internal/services/registration"
)

type registerFlags struct {
	username   string
	email      string
	password   string
	role       string
	profession string
	techs      []string
}

func registerCmd() *cobra.Command {
	f := &registerFlags{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Prepare Together account",
		Long: `Create an account. Values not given as flags are asked for interactively.
On success the login view is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRegister(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.username, "username", "", "username")
	cmd.Flags().StringVar(&f.email, "email", "", "e-mail address")
	cmd.Flags().StringVar(&f.password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&f.role, "role", "", "interviewer or jobseeker")
	cmd.Flags().StringVar(&f.profession, "profession", "", "profession, see `preptogether professions`")
	cmd.Flags().StringSliceVar(&f.techs, "tech", nil, "technology (repeat or comma-separate, at least 3)")
	return cmd
}

func runRegister(cmd *cobra.Command, f *registerFlags) error {
	ctx := cmd.Context()
	if err := wire.Router.Navigate(ctx, domain.RouteRegister); err != nil {
		return err
	}

	p := newPrompter(cmd)
	var err error
	if f.username == "" {
		if f.username, err = p.ask("Username"); err != nil {
			return err
		}
	}
	if f.email == "" {
		if f.email, err = p.ask("Email"); err != nil {
			return err
		}
	}
	if f.password == "" {
		if f.password, err = p.secret("Password"); err != nil {
			return err
		}
	}
	if f.role == "" {
		roles := make([]string, 0, 2)
		for _, r := range domain.Roles() {
			roles = append(roles, r.String())
		}
		if f.role, err = p.choose("Role", roles); err != nil {
			return err
		}
	}
	if f.profession == "" {
		names := make([]string, 0)
		for _, prof := range catalog.Professions() {
			names = append(names, string(prof))
		}
		if f.profession, err = p.choose("Profession", names); err != nil {
			return err
		}
	}
	if len(f.techs) == 0 {
		if techs, ok := catalog.Technologies(domain.Profession(f.profession)); ok {
			if f.techs, err = p.chooseMany("Technologies (comma separated)", techs); err != nil {
				return err
			}
		}
	}

	form := wire.NewRegistration()
	form.SetUsername(f.username)
	form.SetEmail(f.email)
	form.SetPassword(f.password)
	form.SetRole(domain.Role(f.role))
	form.SetProfession(domain.Profession(f.profession))
	if err := form.SetTechnologies(f.techs); err != nil {
		return err
	}

	outcome, err := form.Submit(ctx)
	if outcome == registration.OutcomeRegistered {
		fmt.Fprintln(cmd.OutOrStdout(), form.Message())
		return err
	}
	form.Errors().Each(func(field registration.Field, msg string) {
		cmd.PrintErrf("  %s: %s\n", field, msg)
	})
	if err != nil {
		return err
	}
	return fmt.Errorf("registration not submitted: %s", outcome)
}
