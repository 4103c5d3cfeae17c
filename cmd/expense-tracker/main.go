package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/peaknot/expense-tracker/internal/config"
	"github.com/peaknot/expense-tracker/internal/logging"
	"github.com/peaknot/expense-tracker/internal/storage"
	"github.com/peaknot/expense-tracker/internal/tracker"
)

func main() {
	err := rootCmd.Execute()
	cli.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var (
	cli     = newApp(afero.NewOsFs(), time.Now)
	rootCmd = newRootCmd(cli)
)

// app carries what one invocation loads before dispatching a command
type app struct {
	fs         afero.Fs
	now        func() time.Time
	v          *viper.Viper
	configPath string

	log     *logrus.Logger
	store   storage.Store
	tracker *tracker.Tracker
}

func newApp(fsys afero.Fs, now func() time.Time) *app {
	return &app{fs: fsys, now: now, v: viper.New()}
}

// setup loads config and the expense collection. Any failure here is
// fatal: no command runs against a store that could not be read.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}

	a.log, err = logging.SetupLogging(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.store, err = storage.New(cmd.Context(), cfg.Storage, a.fs, a.log)
	if err != nil {
		return fmt.Errorf("failed to open expense store: %w", err)
	}

	list, err := a.store.Load(cmd.Context())
	if err != nil {
		a.log.WithError(err).Error("failed to load expenses")
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	a.tracker = tracker.New(a.store, list, cmd.OutOrStdout(),
		tracker.WithClock(a.now),
		tracker.WithCurrency(cfg.Currency),
		tracker.WithLogger(a.log),
	)
	return nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil && a.log != nil {
		a.log.WithError(err).Warn("failed to close expense store")
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense-tracker",
		Short: "Track personal expenses from the command line",
		Long: `Expense Tracker records expenses in a local file and lists or totals them,
optionally filtered to a month of the current year.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return a.setup(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Please input a valid argument")
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./expense-tracker.toml if present)")
	flags.String("file", "", "expense file for the json backend (default ./expenses.json)")
	flags.String("db", "", "database file for the sqlite backend (default ./expenses.db)")
	flags.String("backend", "", "storage backend: json or sqlite (default json)")
	flags.String("log-level", "", "log level for diagnostics on stderr (default warn)")

	_ = a.v.BindPFlag("storage.file", flags.Lookup("file"))
	_ = a.v.BindPFlag("storage.sqlite_path", flags.Lookup("db"))
	_ = a.v.BindPFlag("storage.backend", flags.Lookup("backend"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	cmd.AddCommand(
		newAddCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newViewCmd(a),
		newSummaryCmd(a),
	)
	return cmd
}
