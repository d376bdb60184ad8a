package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-builder/internal/domain"
)

func newTripsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Manage submitted trips",
	}
	cmd.AddCommand(newTripsListCmd(c), newTripsDeleteCmd(c), newTripsExportCmd(c))
	return cmd
}

func parseStatus(s string) (domain.TripStatus, error) {
	status, ok := domain.ParseTripStatus(s)
	if !ok {
		return "", fmt.Errorf("status must be one of all, upcoming, completed, cancelled")
	}
	return status, nil
}

func newTripsListCmd(c *cli) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := parseStatus(status)
			if err != nil {
				return err
			}
			trips, err := c.svc.Trips.List(cmd.Context(), c.scope, st)
			if err != nil {
				return err
			}
			c.printer(cmd).trips(trips)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "all, upcoming, completed or cancelled")
	return cmd
}

func newTripsDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your trips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.svc.Trips.Delete(cmd.Context(), c.scope, args[0]); err != nil {
				return err
			}
			c.printer(cmd).line("deleted %s", args[0])
			return nil
		},
	}
}

func newTripsExportCmd(c *cli) *cobra.Command {
	var status, format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write your trips as CSV or JSON, one row per place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := parseStatus(status)
			if err != nil {
				return err
			}
			if format != "csv" && format != "json" {
				return fmt.Errorf("format must be csv or json")
			}
			rows, err := c.svc.Export.Export(cmd.Context(), c.scope, st)
			if err != nil {
				return err
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.Write(domain.ExportCSVHeader); err != nil {
				return err
			}
			for _, r := range rows {
				if err := w.Write(r.CSVRecord()); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "all, upcoming, completed or cancelled")
	cmd.Flags().StringVar(&format, "format", "csv", "csv or json")
	return cmd
}
