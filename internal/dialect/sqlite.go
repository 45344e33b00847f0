package dialect

import (
	"fmt"
	"strings"
)

// SQLiteDialect serves both registered SQLite drivers; they share SQL and DSN syntax.
type SQLiteDialect struct {
	Driver string
	// Quote wraps catalog-provided names in quotes. When false, names are
	// interpolated verbatim and tables with special characters fail to query.
	Quote bool
}

func (d *SQLiteDialect) DriverName() string {
	return d.Driver
}

// DSN opens inspection connections read-only so a missing path is reported
// instead of being created as an empty database.
func (d *SQLiteDialect) DSN(path string, readOnly bool) string {
	if readOnly {
		return FileURI(path, "mode=ro")
	}
	return path
}

func (d *SQLiteDialect) TablesQuery() string {
	return `SELECT name FROM sqlite_master WHERE type='table'`
}

func (d *SQLiteDialect) ColumnsQuery(table string) string {
	// cid, name, type, notnull, dflt_value, pk
	return fmt.Sprintf("PRAGMA table_info(%s)", d.Ident(table))
}

func (d *SQLiteDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.Ident(table))
}

func (d *SQLiteDialect) CreateTableQuery(table string, cols []ColumnDef) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = strings.TrimSpace(d.Ident(c.Name) + " " + c.Type)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.Ident(table), strings.Join(defs, ", "))
}

func (d *SQLiteDialect) InsertQuery(table string, cols []string) string {
	idents := make([]string, len(cols))
	for i, c := range cols {
		idents[i] = d.Ident(c)
	}
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", d.Ident(table), strings.Join(idents, ", "), vals)
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) Ident(name string) string {
	if d.Quote {
		return QuoteIdent(name)
	}
	return name
}
