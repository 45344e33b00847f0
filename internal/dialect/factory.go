package dialect

// Factory returns the appropriate Dialect implementation based on driver name.
// quote controls whether identifiers are quoted when interpolated into queries.
func GetDialect(driver string, quote bool) Dialect {
	switch driver {
	case "sqlite3":
		// github.com/mattn/go-sqlite3 (cgo)
		return &SQLiteDialect{Driver: "sqlite3", Quote: quote}
	default: // sqlite, modernc.org/sqlite
		return &SQLiteDialect{Driver: "sqlite", Quote: quote}
	}
}

// Ensure interface implementation
var _ Dialect = (*SQLiteDialect)(nil)
