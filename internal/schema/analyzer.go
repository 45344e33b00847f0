package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"db-census/internal/dialect"
	"db-census/internal/discover"

	"go.uber.org/multierr"
)

// Options controls how much Inspect reads and how failures are scoped.
type Options struct {
	CountRows bool
	// IsolateTables keeps going after a table fails instead of abandoning the file.
	IsolateTables bool
	// SkipInternal drops sqlite_* bookkeeping tables such as sqlite_sequence.
	SkipInternal bool
}

// Inspect opens the database at path read-only and reads its table catalog.
// It never returns a Go error: failures are carried on Result.Err.
func Inspect(d dialect.Dialect, path string, opts Options) Result {
	res := Result{Path: path, Database: discover.LogicalName(path)}

	db, err := sql.Open(d.DriverName(), d.DSN(path, true))
	if err != nil {
		res.Err = &InspectionError{Path: path, Op: "open", Err: err}
		return res
	}
	defer db.Close()
	// One connection, used sequentially.
	db.SetMaxOpenConns(1)

	// --- Step 1: Fetch Tables ---
	names, err := listTables(db, d)
	if err != nil {
		res.Err = &InspectionError{Path: path, Op: "list tables", Err: err}
		return res
	}

	// --- Step 2: Fetch Columns (and Row Counts) ---
	var tableErrs error
	for _, name := range names {
		if opts.SkipInternal && strings.HasPrefix(name, "sqlite_") {
			continue
		}

		t, op, err := inspectTable(db, d, name, opts.CountRows)
		if err != nil {
			ierr := &InspectionError{Path: path, Table: name, Op: op, Err: err}
			if !opts.IsolateTables {
				res.Err = ierr
				return res
			}
			tableErrs = multierr.Append(tableErrs, ierr)
			continue
		}
		res.Tables = append(res.Tables, t)
	}

	if tableErrs != nil {
		res.Err = tableErrs
		res.Partial = true
	}
	return res
}

func listTables(db *sql.DB, d dialect.Dialect) ([]string, error) {
	rows, err := db.Query(d.TablesQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}
	return names, nil
}

// inspectTable returns the failing operation name alongside any error.
func inspectTable(db *sql.DB, d dialect.Dialect, name string, countRows bool) (*Table, string, error) {
	t := &Table{Name: name}

	cols, err := readColumns(db, d, name)
	if err != nil {
		return nil, "read columns of", err
	}
	t.Columns = cols

	if countRows {
		if err := db.QueryRow(d.CountQuery(name)).Scan(&t.RowCount); err != nil {
			return nil, "count rows of", fmt.Errorf("failed to count rows: %w", err)
		}
		t.HasRowCount = true
	}
	return t, "", nil
}

func readColumns(db *sql.DB, d dialect.Dialect, table string) ([]*Column, error) {
	rows, err := db.Query(d.ColumnsQuery(table))
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var cols []*Column
	for rows.Next() {
		var (
			cid     int
			name    string
			dType   sql.NullString
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &dType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		cols = append(cols, &Column{
			Name:     name,
			DataType: dType.String,
			NotNull:  notNull != 0,
			IsPK:     pk > 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}
	return cols, nil
}
