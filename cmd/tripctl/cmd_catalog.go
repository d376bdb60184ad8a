package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-builder/internal/domain"
)

func newPlacesCmd(c *cli) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "places",
		Short: "List the place catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			places, err := c.svc.Catalog.Places(cmd.Context(), search)
			if err != nil {
				return err
			}
			c.printer(cmd).places(places, domain.SelectionSet{})
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "match name, location or type")
	return cmd
}

func newProgramsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "programs",
		Short: "List the ready-made programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			programs, err := c.svc.Catalog.Programs(cmd.Context())
			if err != nil {
				return err
			}
			c.printer(cmd).programs(programs)
			return nil
		},
	}
}

func newHomeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show categories, places and programs together",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := c.svc.Catalog.Home(cmd.Context())
			if err != nil {
				return err
			}
			p := c.printer(cmd)
			p.heading("categories")
			p.categories(home.Categories)
			p.heading("places")
			p.places(home.Places, domain.SelectionSet{})
			p.heading("programs")
			p.programs(home.Programs)
			return nil
		},
	}
}
