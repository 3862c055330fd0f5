package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <sql>",
		Short: "Execute a statement that returns no rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnector(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := conn.Execute(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}

func newQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql>",
		Short: "Run a statement and print every row it returns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnector(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			cols, rows, err := conn.FetchColumns(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			renderRows(cmd.OutOrStdout(), cols, rows, GetConfig(cmd.Context()).Output)
			return nil
		},
	}
}
