package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-builder/internal/app"
	"github.com/pkordes/trip-builder/internal/client"
)

// cli is the state shared by every command of one invocation.
type cli struct {
	configPath string
	apiURL     string
	draftPath  string
	verbose    bool

	cfg   cliConfig
	scope uuid.UUID
	svc   *app.Services
	close func()
}

// run executes one tripctl invocation and releases the draft file afterwards,
// whether or not the command failed.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := &cli{}
	defer c.shutdown()

	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "tripctl",
		Short: "Build and manage trips from the terminal",
		Long: `tripctl drives the trip builder against the remote trip API.

The in-progress trip (form, selected places, wizard step) is kept in a local
draft file, so a trip can be built across several invocations:

  tripctl wizard enter
  tripctl wizard constraint --people 2 --amount 1500 --destination أسوان --category ثقافية
  tripctl wizard advance
  tripctl wizard browse
  tripctl wizard toggle <place-id>
  tripctl wizard advance
  tripctl wizard submit`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", defaultConfigPath(), "config file")
	root.PersistentFlags().StringVar(&c.apiURL, "api", "", "remote API base URL (overrides config)")
	root.PersistentFlags().StringVar(&c.draftPath, "drafts", "", "draft file (overrides config)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log storage and API warnings to stderr")

	root.AddCommand(
		newLoginCmd(c),
		newLogoutCmd(c),
		newRegisterCmd(c),
		newMeCmd(c),
		newPlacesCmd(c),
		newProgramsCmd(c),
		newHomeCmd(c),
		newTripsCmd(c),
		newWizardCmd(c),
		newThemeCmd(c),
		newProfileCmd(c),
	)
	return root
}

// open loads the config and wires the services over the local draft file.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(c.configPath)
	if err != nil {
		return err
	}
	if c.apiURL != "" {
		cfg.APIBaseURL = c.apiURL
	}
	if c.draftPath != "" {
		cfg.DraftPath = c.draftPath
	}
	c.cfg = cfg

	// Both were checked by loadCLIConfig.
	c.scope, _ = cfg.scope()
	timeout, _ := cfg.timeout()

	drafts, closeDrafts, err := app.OpenBolt(cfg.DraftPath)
	if err != nil {
		return err
	}
	c.close = closeDrafts

	logOut := io.Discard
	if c.verbose {
		logOut = cmd.ErrOrStderr()
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c.svc = app.NewServices(drafts, client.New(cfg.APIBaseURL, timeout), cfg.Theme, log)
	return nil
}

func (c *cli) shutdown() {
	if c.close != nil {
		c.close()
		c.close = nil
	}
}

// printer returns an output writer styled with the device's current theme.
func (c *cli) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), c.svc.Settings.Theme(cmd.Context(), c.scope))
}
