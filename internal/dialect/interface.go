package dialect

// Dialect abstracts the engine-specific SQL the census and the seeder need.
type Dialect interface {
	// Connection
	DriverName() string
	DSN(path string, readOnly bool) string

	// Metadata Queries (Schema Introspection)
	TablesQuery() string
	ColumnsQuery(table string) string
	CountQuery(table string) string

	// Query Generation
	CreateTableQuery(table string, cols []ColumnDef) string
	InsertQuery(table string, cols []string) string
	Placeholder(index int) string

	// Helpers
	Ident(name string) string
}

// ColumnDef is a column declaration used when creating tables.
type ColumnDef struct {
	Name string
	Type string
}
