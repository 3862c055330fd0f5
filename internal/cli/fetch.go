package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tinywasm/liteorm"
	"github.com/tinywasm/liteorm/internal/demo"
)

// parseFilters turns column=value arguments into equality conditions in
// argument order, joined with OR when or is set. Values that parse as
// integers are bound as integers.
func parseFilters(args []string, or bool) ([]liteorm.Condition, error) {
	conds := make([]liteorm.Condition, 0, len(args))
	for _, arg := range args {
		col, val, ok := strings.Cut(arg, "=")
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid filter %q (want column=value)", arg)
		}
		var c liteorm.Condition
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			c = liteorm.Eq(col, n)
		} else {
			c = liteorm.Eq(col, val)
		}
		if or {
			c = liteorm.Or(c)
		}
		conds = append(conds, c)
	}
	return conds, nil
}

func newFetchCommand() *cobra.Command {
	var or bool
	cmd := &cobra.Command{
		Use:   "fetch <table> [column=value...]",
		Short: "Fetch the rows of a model table",
		Long: `Fetch the rows of a model table through its manager.

Each column=value argument adds an equality filter. Filters are combined
with AND unless --or is given; a column may repeat.`,
		Example: `  liteorm fetch game
  liteorm fetch test game_id=1
  liteorm fetch game name=chess name=go --or -o csv`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return demo.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conds, err := parseFilters(args[1:], or)
			if err != nil {
				return err
			}

			conn, err := openConnector(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			t, ok := demo.Tables(conn)[args[0]]
			if !ok {
				return fmt.Errorf("unknown table %q (known: %v)", args[0], demo.Names())
			}

			rows, err := t.FetchValues(cmd.Context(), conds...)
			if err != nil {
				return err
			}
			renderRows(cmd.OutOrStdout(), t.Columns(), rows, GetConfig(cmd.Context()).Output)
			return nil
		},
	}
	cmd.Flags().BoolVar(&or, "or", false, "combine filters with OR")
	return cmd
}
