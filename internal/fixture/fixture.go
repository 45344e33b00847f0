// Package fixture builds small SQLite files for tests.
package fixture

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Database creates a SQLite file at path and runs stmts against it.
func Database(t testing.TB, path string, stmts ...string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	// Force the file into existence even when no statements are given.
	_, err = db.Exec("PRAGMA user_version = 1")
	require.NoError(t, err)
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

// Corrupt writes a file at path that is not a SQLite database.
func Corrupt(t testing.TB, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("definitely not sqlite\n", 256)), 0o644))
	return path
}

// Rows returns n INSERT statements that fill table with sequential ids.
func Rows(table string, n int) []string {
	stmts := make([]string, n)
	for i := range stmts {
		stmts[i] = "INSERT INTO " + table + " DEFAULT VALUES"
	}
	return stmts
}

// AlphaBeta lays out two databases under root: alpha with users(id, name,
// email) holding 10 rows and beta with an empty logs(id, ts).
func AlphaBeta(t testing.TB, root string) (alpha, beta string) {
	t.Helper()
	alpha = Database(t, filepath.Join(root, "alpha.db"),
		append([]string{"CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, email TEXT)"}, Rows("users", 10)...)...)
	beta = Database(t, filepath.Join(root, "nested", "beta.db"),
		"CREATE TABLE logs (id INTEGER PRIMARY KEY, ts TEXT)")
	return alpha, beta
}
