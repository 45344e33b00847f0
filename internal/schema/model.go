package schema

import (
	"fmt"

	"go.uber.org/multierr"
)

type Table struct {
	Name        string
	Columns     []*Column
	RowCount    int64
	HasRowCount bool // set when the count query ran
}

type Column struct {
	Name     string
	DataType string
	NotNull  bool
	IsPK     bool
}

// ColumnNames returns the column names in ordinal order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// Result is the outcome of inspecting one database file.
type Result struct {
	Path     string
	Database string // logical name: base name without extension
	Tables   []*Table

	// Err is an *InspectionError, or several of them combined when tables are
	// inspected in isolation.
	Err error
	// Partial is set when Err only covers individual tables and Tables holds
	// the ones that were read successfully.
	Partial bool
}

// Lookup returns the table with the given name, or nil.
func (r *Result) Lookup(name string) *Table {
	for _, t := range r.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Errors flattens Err into its individual inspection errors.
func (r *Result) Errors() []error {
	return multierr.Errors(r.Err)
}

// Usable returns the tables that may be aggregated. A file-level failure
// excludes every table of the file.
func (r *Result) Usable() []*Table {
	if r.Err != nil && !r.Partial {
		return nil
	}
	return r.Tables
}

// InspectionError identifies the file (and table, when known) a catalog query failed on.
type InspectionError struct {
	Path  string
	Table string
	Op    string
	Err   error
}

func (e *InspectionError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s: %s %q: %v", e.Path, e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}
