package report

import (
	"fmt"
	"io"
	"strings"

	"db-census/internal/census"
	"db-census/internal/schema"

	"github.com/fatih/color"
)

var heading = color.New(color.Bold)

// PrintTable lists one table's column count and names.
func PrintTable(w io.Writer, database string, t *schema.Table) {
	fmt.Fprintf(w, "Database %s, table %s: %d columns\n", database, t.Name, t.ColumnCount())
	fmt.Fprintf(w, "Columns: %s\n", strings.Join(t.ColumnNames(), ColumnSeparator))
}

// PrintDistribution prints the column-count distribution sorted by column count.
func PrintDistribution(w io.Writer, dist census.Distribution) {
	heading.Fprintln(w, "\nColumn distribution:")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, k := range dist.Keys() {
		fmt.Fprintf(w, "Tables with %d columns: %d\n", k, dist[k])
	}
}
