// Command liteorm creates, drops and queries the tables of the demo models.
package main

import (
	"os"

	_ "github.com/marcboeker/go-duckdb"
	_ "modernc.org/sqlite"

	"github.com/tinywasm/liteorm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
