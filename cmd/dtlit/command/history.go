package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdql/dtlit/internal/data/sqlite"
	"github.com/gdql/dtlit/internal/formatter"
)

func newHistoryCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently parsed literals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			db, err := e.openHistory()
			if err != nil {
				return err
			}
			if db == nil {
				return fmt.Errorf("no history database configured (use --db or DTLIT_DB)")
			}
			defer db.Close()
			entries, err := db.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out, err := formatter.New().FormatHistory(entries, e.format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum number of entries to show")
	return cmd
}

func newInitCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create a history database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.cfg.DB
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = "dtlit.db"
			}
			if err := sqlite.Init(path); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}
			e.logger.Info("history database created", "path", path)
			fmt.Fprintf(cmd.ErrOrStderr(), "Database created: %s\n", path)
			return nil
		},
	}
}
