package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gdql/dtlit/internal/data"
	"github.com/gdql/dtlit/internal/executor"
	"github.com/gdql/dtlit/internal/formatter"
)

func newParseCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [literal...]",
		Short: "Parse typed datetime literals",
		Long: `Parse one typed literal given as arguments, or one literal per line
from a file (-f <file>) or standard input (-).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			return e.runParse(cmd, args, file)
		},
	}
	cmd.Flags().StringP("file", "f", "", "read literals from file, one per line")
	return cmd
}

func (e *env) runParse(cmd *cobra.Command, args []string, file string) error {
	literals, err := readLiterals(args, file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts := []executor.Option{executor.WithLogger(e.logger)}
	db, err := e.openHistory()
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		var store data.HistoryStore = db
		opts = append(opts, executor.WithHistory(store))
	}
	ex := executor.New(opts...)
	fmtr := formatter.New()

	var failed int
	for _, lit := range literals {
		result, err := ex.Execute(cmd.Context(), lit)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		out, err := fmtr.Format(result, e.format)
		if err != nil {
			return fmt.Errorf("formatting: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d literals failed to parse", failed, len(literals))
	}
	return nil
}

// readLiterals returns the literals from args: either the joined args, the lines
// of file, or the lines of stdin when the only arg is "-".
func readLiterals(args []string, file string, stdin io.Reader) ([]string, error) {
	switch {
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		defer f.Close()
		return readLines(f)
	case len(args) == 1 && args[0] == "-":
		return readLines(stdin)
	case len(args) == 0:
		return nil, fmt.Errorf("no literal given")
	}
	return []string{strings.TrimSpace(strings.Join(args, " "))}, nil
}

// readLines returns the non-empty lines of r, skipping lines starting with "--".
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no literal given")
	}
	return lines, nil
}
