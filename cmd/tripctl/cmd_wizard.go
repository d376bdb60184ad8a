package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/filter"
	"github.com/pkordes/trip-builder/internal/service"
)

func newWizardCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wizard",
		Aliases: []string{"w"},
		Short:   "Build a trip step by step",
	}
	cmd.AddCommand(
		c.viewCmd("enter", "Start a new trip, discarding any draft", func(cmd *cobra.Command) service.WizardView {
			return c.svc.Wizard.Enter(cmd.Context(), c.scope)
		}),
		c.viewCmd("show", "Show the current step and draft", func(cmd *cobra.Command) service.WizardView {
			return c.svc.Wizard.View(cmd.Context(), c.scope)
		}),
		newConstraintCmd(c),
		newPeopleCmd(c),
		c.viewCmdE("advance", "Go to the next step", func(cmd *cobra.Command) (service.WizardView, error) {
			return c.svc.Wizard.Advance(cmd.Context(), c.scope)
		}),
		c.viewCmdE("back", "Go to the previous step", func(cmd *cobra.Command) (service.WizardView, error) {
			return c.svc.Wizard.Back(cmd.Context(), c.scope)
		}),
		newBrowseCmd(c),
		newToggleCmd(c),
		newReviewCmd(c),
		newSubmitCmd(c),
	)
	return cmd
}

// viewCmd builds a no-argument command that prints the resulting wizard view.
func (c *cli) viewCmd(use, short string, fn func(*cobra.Command) service.WizardView) *cobra.Command {
	return c.viewCmdE(use, short, func(cmd *cobra.Command) (service.WizardView, error) {
		return fn(cmd), nil
	})
}

func (c *cli) viewCmdE(use, short string, fn func(*cobra.Command) (service.WizardView, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := fn(cmd)
			if err != nil {
				return err
			}
			c.printer(cmd).view(v)
			return nil
		},
	}
}

func newConstraintCmd(c *cli) *cobra.Command {
	var in domain.Constraint
	cmd := &cobra.Command{
		Use:   "constraint",
		Short: "Fill in the trip form (people, budget, destination, category)",
		Long: fmt.Sprintf(`Fill in the trip form. Flags that are not given keep their current value.

Destinations: %s
Categories:   %s`, strings.Join(domain.Destinations, ", "), strings.Join(domain.Categories, ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			next := c.svc.Wizard.View(ctx, c.scope).Constraint
			flags := cmd.Flags()
			if flags.Changed("people") {
				next.People = in.People
			}
			if flags.Changed("amount") {
				next.Amount = in.Amount
			}
			if flags.Changed("destination") {
				next.Destination = in.Destination
			}
			if flags.Changed("category") {
				next.Category = in.Category
			}

			v, err := c.svc.Wizard.UpdateConstraint(ctx, c.scope, next)
			if err != nil {
				return err
			}
			c.printer(cmd).view(v)
			return nil
		},
	}
	cmd.Flags().IntVar(&in.People, "people", 0, "number of travellers (1-10)")
	cmd.Flags().StringVar(&in.Amount, "amount", "", "budget")
	cmd.Flags().StringVar(&in.Destination, "destination", "", "destination city")
	cmd.Flags().StringVar(&in.Category, "category", "", "program category")
	return cmd
}

func newPeopleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "people up|down [n]",
		Short:     "Step the number of travellers up or down",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 2 {
				v, err := strconv.Atoi(args[1])
				if err != nil || v < 1 {
					return fmt.Errorf("n must be a positive integer")
				}
				n = v
			}
			switch args[0] {
			case "up":
			case "down":
				n = -n
			default:
				return fmt.Errorf("direction must be up or down")
			}

			v, err := c.svc.Wizard.AdjustPeople(cmd.Context(), c.scope, n)
			if err != nil {
				return err
			}
			c.printer(cmd).view(v)
			return nil
		},
	}
}

func newBrowseCmd(c *cli) *cobra.Command {
	var typeFacet, search string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List the places that match the trip form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.svc.Wizard.Browse(cmd.Context(), c.scope, typeFacet, search)
			if err != nil {
				return err
			}
			p := c.printer(cmd)
			p.line("%s %s", p.muted.Render("types:"), strings.Join(res.Types, " | "))
			p.places(res.Places, res.Selection)
			return nil
		},
	}
	cmd.Flags().StringVar(&typeFacet, "type", filter.AllTypes, "only places of this type")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search the whole catalog instead")
	return cmd
}

func newToggleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <place-id>...",
		Short: "Add or remove places from the trip",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sel domain.SelectionSet
			for _, id := range args {
				s, err := c.svc.Wizard.Toggle(cmd.Context(), c.scope, id)
				if err != nil {
					return fmt.Errorf("%s: %w", id, err)
				}
				sel = s
			}
			c.printer(cmd).selection(sel)
			return nil
		},
	}
}

func newReviewCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Show the itinerary that submit would send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rev, err := c.svc.Wizard.Review(cmd.Context(), c.scope)
			if err != nil {
				return err
			}
			p := c.printer(cmd)
			p.heading("review")
			p.constraint(rev.Constraint)
			p.selection(rev.Selection)
			return nil
		},
	}
}

func newSubmitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Send the trip to the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it, err := c.svc.Wizard.Submit(cmd.Context(), c.scope)
			if err != nil {
				return err
			}
			p := c.printer(cmd)
			p.heading("trip saved")
			p.line("%s, %d people, %s", it.Locate, it.NumberOfPersons, it.SelectedTripPlaces)
			return nil
		},
	}
}
