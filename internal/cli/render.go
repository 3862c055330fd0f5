package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderRows writes rows under cols in the given output format.
func renderRows(w io.Writer, cols []string, rows [][]any, format string) {
	if len(rows) == 0 && (format == "table" || format == "") {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = formatValue(v)
		}
		t.AppendRow(row)
	}

	switch format {
	case "csv":
		t.RenderCSV()
	case "md", "markdown":
		t.RenderMarkdown()
	default:
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
	}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	}
	return fmt.Sprintf("%v", v)
}
