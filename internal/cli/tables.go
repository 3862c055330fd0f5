package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tinywasm/liteorm"
	"github.com/tinywasm/liteorm/internal/demo"
)

// selectTables returns the demo tables named in args, in creation order.
// No args selects every table.
func selectTables(exec liteorm.Executor, args []string) ([]liteorm.Table, error) {
	all := demo.Ordered(exec)
	if len(args) == 0 {
		return all, nil
	}

	known := demo.Tables(exec)
	for _, name := range args {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("unknown table %q (known: %v)", name, demo.Names())
		}
	}

	var selected []liteorm.Table
	for _, t := range all {
		if slices.Contains(args, t.TableName()) {
			selected = append(selected, t)
		}
	}
	return selected, nil
}

func newCreateTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-tables [table...]",
		Short: "Create the tables of the demo models",
		Long:  "Create the tables of the demo models if they do not exist. Referenced tables are created first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnector(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			tables, err := selectTables(conn, args)
			if err != nil {
				return err
			}
			logger := GetLogger(cmd.Context())
			for _, t := range tables {
				if err := t.CreateTable(cmd.Context()); err != nil {
					return fmt.Errorf("create %s: %w", t.TableName(), err)
				}
				logger.Info("table created", "table", t.TableName())
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", t.TableName())
			}
			return nil
		},
	}
}

func newDropTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drop-tables [table...]",
		Short: "Drop the tables of the demo models",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnector(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			tables, err := selectTables(conn, args)
			if err != nil {
				return err
			}
			logger := GetLogger(cmd.Context())
			for _, t := range slices.Backward(tables) {
				if err := t.DropTable(cmd.Context()); err != nil {
					return fmt.Errorf("drop %s: %w", t.TableName(), err)
				}
				logger.Info("table dropped", "table", t.TableName())
				fmt.Fprintf(cmd.OutOrStdout(), "dropped %s\n", t.TableName())
			}
			return nil
		},
	}
}

func newSQLCommand() *cobra.Command {
	var drop bool
	cmd := &cobra.Command{
		Use:   "sql",
		Short: "Print the DDL of the demo models without connecting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if drop {
				for _, s := range []string{demo.TestModel.DropQuery().String(), demo.GameModel.DropQuery().String()} {
					fmt.Fprint(w, s)
				}
				return nil
			}
			for _, s := range demo.Definitions() {
				fmt.Fprint(w, s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&drop, "drop", false, "print DROP statements instead")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "liteorm %s\n", Version)
			return nil
		},
	}
}
