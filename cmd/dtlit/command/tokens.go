package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gdql/dtlit/internal/lexer"
	"github.com/gdql/dtlit/internal/token"
)

func newTokensCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <value>",
		Short: "Show the tokens of a raw literal value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tz, _ := cmd.Flags().GetBool("tz")
			body, zone, err := lexer.Tokenize(args[0], tz)
			if err != nil {
				return err
			}
			e.logger.Debug("tokenized", "value", args[0], "body", len(body), "timezone", len(zone))
			fmt.Fprintf(cmd.OutOrStdout(), "body:     %s\n", joinTokens(body))
			if tz {
				fmt.Fprintf(cmd.OutOrStdout(), "timezone: %s\n", joinTokens(zone))
			}
			return nil
		},
	}
	cmd.Flags().Bool("tz", false, "allow a +hh:mm timezone suffix after a time value")
	return cmd
}

func joinTokens(toks []token.Token) string {
	if len(toks) == 0 {
		return "(none)"
	}
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
