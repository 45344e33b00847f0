package census

import (
	"sort"

	"db-census/internal/schema"
)

// Distribution maps a column count to the number of tables with that many columns.
type Distribution map[int]int

// Keys returns the observed column counts in ascending order.
func (d Distribution) Keys() []int {
	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Total is the number of tables counted.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Record is one table flattened for tabular export.
type Record struct {
	Database    string
	Table       string
	Rows        int64
	Columns     int
	ColumnNames []string
}

// Histogram counts tables per column count across all usable results.
func Histogram(results []schema.Result) Distribution {
	dist := make(Distribution)
	for i := range results {
		for _, t := range results[i].Usable() {
			dist[t.ColumnCount()]++
		}
	}
	return dist
}

// Flatten emits one record per usable table, in database then table order.
func Flatten(results []schema.Result) []Record {
	var records []Record
	for i := range results {
		res := &results[i]
		for _, t := range res.Usable() {
			records = append(records, Record{
				Database:    res.Database,
				Table:       t.Name,
				Rows:        t.RowCount,
				Columns:     t.ColumnCount(),
				ColumnNames: t.ColumnNames(),
			})
		}
	}
	return records
}
