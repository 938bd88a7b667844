package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gdql/dtlit/internal/config"
	"github.com/gdql/dtlit/internal/data/sqlite"
	"github.com/gdql/dtlit/internal/formatter"
)

// env is the state shared by all subcommands once flags are parsed.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	format formatter.OutputFormat
}

// GetRootCommand creates the dtlit root command with all subcommands.
func GetRootCommand() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "dtlit",
		Short: "Parse SQL INTERVAL, DATE, TIME and TIMESTAMP literals",
		Long: `dtlit parses typed SQL datetime literals into their individual fields.

Examples:
  dtlit parse "INTERVAL '1-2' YEAR TO MONTH"
  dtlit parse "TIMESTAMP WITH TIME ZONE '2020-01-02 03:04:05.5+05:30'"
  dtlit tokens --tz "4:30+05:15"
  dtlit pattern day
  dtlit --db history.db history

Settings come from flags, DTLIT_* environment variables (DTLIT_DB, DTLIT_FORMAT,
DTLIT_LOG_LEVEL) and the YAML file given by --config.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return e.load(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newParseCommand(e),
		newTokensCommand(e),
		newPatternCommand(e),
		newHistoryCommand(e),
		newInitCommand(e),
	)
	return root
}

func (e *env) load(cmd *cobra.Command) error {
	v, err := config.New(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	format, err := formatter.ParseFormat(cfg.OutputFormat(isTerminal(cmd.OutOrStdout())))
	if err != nil {
		return err
	}
	e.cfg, e.logger, e.format = cfg, logger, format
	return nil
}

// openHistory opens the configured history database, or returns nil when history is off.
func (e *env) openHistory() (*sqlite.DB, error) {
	if e.cfg.DB == "" {
		return nil, nil
	}
	db, err := sqlite.Open(e.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("opening history database %s: %w", e.cfg.DB, err)
	}
	return db, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
