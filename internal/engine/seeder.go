package engine

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"regexp"
	"strings"

	"db-census/internal/dialect"

	"github.com/brianvoe/gofakeit/v6"
)

type SeedOptions struct {
	Tables     int
	MinColumns int // including the id column
	MaxColumns int
	Rows       int
	Seed       int64
	Overwrite  bool
}

func (o SeedOptions) Validate() error {
	if o.Tables < 1 {
		return fmt.Errorf("tables must be at least 1, got %d", o.Tables)
	}
	if o.MinColumns < 1 || o.MaxColumns < o.MinColumns {
		return fmt.Errorf("invalid column range [%d, %d]", o.MinColumns, o.MaxColumns)
	}
	if o.MaxColumns > len(columnVocabulary)+1 {
		return fmt.Errorf("max columns is limited to %d", len(columnVocabulary)+1)
	}
	if o.Rows < 0 {
		return fmt.Errorf("rows must not be negative, got %d", o.Rows)
	}
	return nil
}

// TableResult reports how many rows landed in one seeded table.
type TableResult struct {
	TableName string
	Columns   int
	Target    int
	Actual    int
	Status    string
	ErrorMsg  string
}

type SeedResult struct {
	Path   string
	Tables []TableResult
}

var identCleaner = regexp.MustCompile(`[^a-z0-9_]+`)

// Seed creates a new database at path with randomly shaped tables filled with
// fake rows. onProgress is called once per inserted row.
func Seed(d dialect.Dialect, path string, opts SeedOptions, onProgress func()) (*SeedResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		if !opts.Overwrite {
			return nil, fmt.Errorf("%s already exists", path)
		}
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	db, err := sql.Open(d.DriverName(), d.DSN(path, false))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	rng := rand.New(rand.NewSource(opts.Seed))
	faker := gofakeit.New(opts.Seed)
	gen := NewGenerator(opts.Seed)

	result := &SeedResult{Path: path}

	for i := 0; i < opts.Tables; i++ {
		name := tableName(faker, i)
		cols := pickColumns(rng, opts.MinColumns+rng.Intn(opts.MaxColumns-opts.MinColumns+1))

		if _, err := db.Exec(d.CreateTableQuery(name, cols)); err != nil {
			return result, fmt.Errorf("failed to create table %s: %w", name, err)
		}

		inserted, err := fill(db, d, gen, name, cols, opts.Rows, onProgress)

		// Verification
		var actual int
		if cerr := db.QueryRow(d.CountQuery(name)).Scan(&actual); cerr != nil && err == nil {
			err = cerr
		}

		tr := TableResult{TableName: name, Columns: len(cols), Target: opts.Rows, Actual: actual, Status: "OK"}
		if err != nil {
			tr.Status = "FAILED"
			tr.ErrorMsg = err.Error()
		} else if actual < opts.Rows {
			tr.Status = "MISSING DATA"
			tr.ErrorMsg = fmt.Sprintf("Only inserted %d out of %d.", inserted, opts.Rows)
		}
		result.Tables = append(result.Tables, tr)
	}
	return result, nil
}

// fill inserts rows in a single transaction. Columns after the key are generated.
func fill(db *sql.DB, d dialect.Dialect, gen *Generator, table string, cols []dialect.ColumnDef, rows int, onProgress func()) (int, error) {
	insertCols := cols[1:]
	colNames := make([]string, len(insertCols))
	for i, c := range insertCols {
		colNames[i] = c.Name
	}

	var query string
	if len(colNames) == 0 {
		query = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", d.Ident(table))
	} else {
		query = d.InsertQuery(table, colNames)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	inserted := 0
	for r := 0; r < rows; r++ {
		values := make([]interface{}, len(insertCols))
		for i, c := range insertCols {
			values[i] = gen.Value(c.Name, c.Type)
		}
		if _, err := tx.Exec(query, values...); err != nil {
			return inserted, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		inserted++
		if onProgress != nil {
			onProgress()
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %s: %w", table, err)
	}
	tx = nil
	return inserted, nil
}

// tableName is a noun plus the table's ordinal, which keeps names unique and
// clear of SQL keywords.
func tableName(f *gofakeit.Faker, i int) string {
	base := identCleaner.ReplaceAllString(strings.ToLower(f.Noun()), "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "table"
	}
	return fmt.Sprintf("%s_%02d", base, i+1)
}

// pickColumns returns the key column followed by n-1 distinct vocabulary columns.
func pickColumns(rng *rand.Rand, n int) []dialect.ColumnDef {
	cols := []dialect.ColumnDef{keyColumn}
	for _, idx := range rng.Perm(len(columnVocabulary))[:n-1] {
		cols = append(cols, columnVocabulary[idx])
	}
	return cols
}
