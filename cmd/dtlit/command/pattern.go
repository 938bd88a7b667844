package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/parser"
)

func newPatternCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "pattern <field|timezone>",
		Short: "Show the tokens a literal starting at a field may contain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.EqualFold(args[0], "timezone") {
				fmt.Fprintln(cmd.OutOrStdout(), joinTypes(parser.ExpectedTimezone()))
				return nil
			}
			f, ok := ast.LookupField(args[0])
			if !ok {
				return fmt.Errorf("unknown field %q", args[0])
			}
			types, err := parser.ExpectedBody(f)
			if err != nil {
				return err
			}
			e.logger.Debug("expected pattern", "leading", f, "tokens", len(types))
			fmt.Fprintln(cmd.OutOrStdout(), joinTypes(types))
			return nil
		},
	}
}

func joinTypes[T fmt.Stringer](types []T) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
