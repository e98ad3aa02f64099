package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jask/jaskterm/internal/config"
	"github.com/jask/jaskterm/internal/database"
	"github.com/jask/jaskterm/internal/database/repository"
	"github.com/jask/jaskterm/internal/logging"
	"github.com/jask/jaskterm/internal/panel"
	"github.com/jask/jaskterm/internal/service"
	"github.com/jask/jaskterm/internal/tui"
	"github.com/jask/jaskterm/internal/workspace"
)

var (
	configFlag string
	layoutFlag string
)

var rootCmd = &cobra.Command{
	Use:   "jaskterm",
	Short: "Keyboard-driven market terminal with a four-panel workspace.",
	Long: `jaskterm opens a terminal workspace of up to four panels driven by
mnemonic commands such as "AAPL GP 6M" or "CORR AAPL,MSFT 1Y".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env in the working directory may carry JASKTERM_* overrides.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: .env:", err)
		}
		if configFlag != "" {
			return os.Setenv("JASKTERM_CONFIG", configFlag)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return errors.New("jaskterm needs an interactive terminal; use `jaskterm parse` for scripting")
		}
		return runTerminal(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default $JASKTERM_CONFIG or ~/.config/jaskterm/config.toml).")
	rootCmd.Flags().StringVarP(&layoutFlag, "layout", "l", "", "Initial layout: 1x1, 2x1, 1x2 or 2x2. Overrides workspace.default_layout.")
}

// env is what every subcommand that touches the database shares.
type env struct {
	cfg config.Config
	log *logging.Log
	db  *sql.DB
}

// openEnv loads config, builds the logger and opens the migrated database.
// Interactive runs log to the configured file; everything else to stderr.
func openEnv(ctx context.Context, interactive bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	out := "stderr"
	if interactive {
		out = cfg.Log.Path
	}
	log, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     out,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return nil, err
	}
	db, err := database.OpenAndMigrate(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, db: db}, nil
}

func (e *env) Close() error {
	return e.db.Close()
}

func runTerminal(ctx context.Context) error {
	e, err := openEnv(ctx, true)
	if err != nil {
		return err
	}
	defer e.Close()

	layout := e.cfg.Workspace.DefaultLayout
	if layoutFlag != "" {
		layout = layoutFlag
	}
	l, err := workspace.ParseLayout(layout)
	if err != nil {
		return err
	}
	ws, err := workspace.New(panel.NewStore(e.cfg.Workspace.HistorySize), l)
	if err != nil {
		return err
	}

	instruments := repository.NewInstrumentRepo(e.db)
	watchlist := repository.NewWatchlistRepo(e.db)
	app := tui.New(ctx, e.cfg, tui.Deps{
		Workspace: ws,
		Dispatcher: &service.Dispatcher{
			Workspace: ws,
			Resolver:  &service.InstrumentResolver{Instruments: instruments},
			Watchlist: watchlist,
			Log:       e.log.WithComponent("dispatch"),
		},
		Searcher:  &service.Searcher{Instruments: instruments, Limit: e.cfg.Search.Limit},
		Watchlist: watchlist,
		Log:       e.log.WithComponent("tui"),
	})
	defer app.Close()

	e.log.WithComponent("main").WithFields(logging.Fields{"layout": string(l), "db": e.cfg.Database.Path}).Info("starting terminal")
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
