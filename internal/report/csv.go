// Package report renders census aggregates as CSV, HTML charts and console tables.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"db-census/internal/census"
)

// Header is the fixed first row of the CSV report.
var Header = []string{"Database", "Table", "Rows", "Columns", "Column Names"}

// ColumnSeparator joins column names inside the "Column Names" field.
const ColumnSeparator = ", "

// WriteCSV writes records to path, replacing any existing file.
func WriteCSV(path string, records []census.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	if err := EncodeCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return f.Close()
}

// EncodeCSV writes the header and one UTF-8 row per record.
func EncodeCSV(w io.Writer, records []census.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Database,
			r.Table,
			strconv.FormatInt(r.Rows, 10),
			strconv.Itoa(r.Columns),
			strings.Join(r.ColumnNames, ColumnSeparator),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
