package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-builder/internal/domain"
)

func newLoginCmd(c *cli) *cobra.Command {
	var creds domain.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session for this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.svc.Auth.Login(cmd.Context(), c.scope, creds)
			if err != nil {
				return err
			}
			c.printer(cmd).line("logged in as %s %s <%s>", u.FirstName, u.LastName, u.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session of this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.svc.Auth.Logout(cmd.Context(), c.scope)
			c.printer(cmd).line("logged out")
			return nil
		},
	}
}

func newRegisterCmd(c *cli) *cobra.Command {
	var r domain.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.svc.Auth.Register(cmd.Context(), r); err != nil {
				return err
			}
			c.printer(cmd).line("account created for %s, log in with tripctl login", r.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&r.FirstName, "firstname", "", "first name")
	cmd.Flags().StringVar(&r.LastName, "lastname", "", "last name")
	cmd.Flags().StringVar(&r.City, "city", "", "home city")
	cmd.Flags().StringVar(&r.Email, "email", "", "account email")
	cmd.Flags().StringVar(&r.Password, "password", "", "password")
	cmd.Flags().StringVar(&r.Confirm, "confirm", "", "password again")
	for _, name := range []string{"firstname", "email", "password", "confirm"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newMeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.svc.Auth.CurrentUser(cmd.Context(), c.scope)
			if err != nil {
				return err
			}
			p := c.printer(cmd)
			p.heading(u.FirstName + " " + u.LastName)
			p.line("%s", u.Email)
			return nil
		},
	}
}
