package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-builder/internal/domain"
)

func newThemeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{domain.ThemeLight, domain.ThemeDark, "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var theme domain.Theme
			switch {
			case len(args) == 0:
				theme = c.svc.Settings.Theme(ctx, c.scope)
			case args[0] == "toggle":
				theme = c.svc.Settings.ToggleTheme(ctx, c.scope)
			default:
				t, err := c.svc.Settings.SetTheme(ctx, c.scope, args[0])
				if err != nil {
					return err
				}
				theme = t
			}
			name := domain.ThemeLight
			if theme.Dark {
				name = domain.ThemeDark
			}
			newPrinter(cmd.OutOrStdout(), theme).heading("theme: " + name)
			return nil
		},
	}
}

func newProfileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the local profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printProfile(c.printer(cmd), c.svc.Settings.Profile(cmd.Context(), c.scope))
			return nil
		},
	}
	cmd.AddCommand(newProfileSetCmd(c))
	return cmd
}

func newProfileSetCmd(c *cli) *cobra.Command {
	var p domain.Profile
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the local profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			// Unset flags keep their stored value.
			cur := c.svc.Settings.Profile(ctx, c.scope)
			flags := cmd.Flags()
			keep := func(name string, dst *string, stored string) {
				if !flags.Changed(name) {
					*dst = stored
				}
			}
			keep("firstname", &p.FirstName, cur.FirstName)
			keep("lastname", &p.LastName, cur.LastName)
			keep("email", &p.Email, cur.Email)
			keep("phone", &p.Phone, cur.Phone)
			keep("address", &p.Address, cur.Address)
			keep("birthdate", &p.Birthdate, cur.Birthdate)

			saved, err := c.svc.Settings.UpdateProfile(ctx, c.scope, p)
			if err != nil {
				return err
			}
			printProfile(c.printer(cmd), saved)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.FirstName, "firstname", "", "first name")
	cmd.Flags().StringVar(&p.LastName, "lastname", "", "last name")
	cmd.Flags().StringVar(&p.Email, "email", "", "email")
	cmd.Flags().StringVar(&p.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&p.Address, "address", "", "address")
	cmd.Flags().StringVar(&p.Birthdate, "birthdate", "", "birth date")
	return cmd
}

func printProfile(p *printer, prof domain.Profile) {
	p.heading(prof.FirstName + " " + prof.LastName)
	p.line("email:     %s", orDash(prof.Email))
	p.line("phone:     %s", orDash(prof.Phone))
	p.line("address:   %s", orDash(prof.Address))
	p.line("birthdate: %s", orDash(prof.Birthdate))
}
