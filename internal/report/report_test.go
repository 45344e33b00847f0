package report_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"db-census/internal/census"
	"db-census/internal/report"
	"db-census/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSV_AlphaBeta(t *testing.T) {
	records := []census.Record{
		{Database: "alpha", Table: "users", Rows: 10, Columns: 3, ColumnNames: []string{"id", "name", "email"}},
		{Database: "beta", Table: "logs", Rows: 0, Columns: 2, ColumnNames: []string{"id", "ts"}},
	}

	var buf bytes.Buffer
	require.NoError(t, report.EncodeCSV(&buf, records))
	assert.Equal(t,
		"Database,Table,Rows,Columns,Column Names\n"+
			"alpha,users,10,3,\"id, name, email\"\n"+
			"beta,logs,0,2,\"id, ts\"\n",
		buf.String())
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	records := []census.Record{
		{Database: "商店", Table: "顧客", Rows: 42, Columns: 2, ColumnNames: []string{"名前", "メール"}},
		{Database: "odd", Table: `quote"d`, Rows: 1, Columns: 1, ColumnNames: []string{"a,b"}},
		{Database: "odd", Table: "empty", Rows: 0, Columns: 0},
	}
	path := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that must disappear"), 0o644))

	require.NoError(t, report.WriteCSV(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, len(records)+1)
	assert.Equal(t, report.Header, rows[0])
	for i, r := range records {
		assert.Equal(t, []string{
			r.Database,
			r.Table,
			strconv.FormatInt(r.Rows, 10),
			strconv.Itoa(r.Columns),
			strings.Join(r.ColumnNames, ", "),
		}, rows[i+1])
	}
}

func TestWriteCSV_BadPath(t *testing.T) {
	err := report.WriteCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	assert.Error(t, err)
}

func TestNewChart(t *testing.T) {
	tests := []struct {
		name string
		dist census.Distribution
		want report.Chart
	}{
		{
			name: "gap",
			dist: census.Distribution{3: 2, 5: 1},
			want: report.Chart{Ticks: []int{3, 4, 5}, Values: []int{2, 0, 1}, Bars: []bool{true, false, true}},
		},
		{
			name: "single",
			dist: census.Distribution{7: 4},
			want: report.Chart{Ticks: []int{7}, Values: []int{4}, Bars: []bool{true}},
		},
		{
			name: "empty",
			dist: census.Distribution{},
			want: report.Chart{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.NewChart(tt.dist))
		})
	}
}

func TestWriteChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column_distribution.html")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, report.WriteChart(path, census.Distribution{3: 2, 5: 1}, report.DefaultChartOptions))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(raw)
	assert.False(t, strings.HasPrefix(page, "old"))
	assert.Contains(t, page, "<html")
	assert.Contains(t, page, "<svg")
	assert.Contains(t, page, report.DefaultChartOptions.Title)
	assert.NotContains(t, page, "<script")

	var ticks []string
	for _, m := range regexp.MustCompile(`class="xtick"[^>]*>(\d+)</text>`).FindAllStringSubmatch(page, -1) {
		ticks = append(ticks, m[1])
	}
	assert.Equal(t, []string{"3", "4", "5"}, ticks)

	bars := regexp.MustCompile(`data-columns="(\d+)" data-tables="(\d+)"`).FindAllStringSubmatch(page, -1)
	require.Len(t, bars, 2)
	assert.Equal(t, []string{"3", "2"}, bars[0][1:])
	assert.Equal(t, []string{"5", "1"}, bars[1][1:])
}

func TestRenderChart_InlinesECharts(t *testing.T) {
	lib := filepath.Join(t.TempDir(), "echarts.min.js")
	require.NoError(t, os.WriteFile(lib, []byte("var echarts = {init: function () {}};"), 0o644))

	o := report.DefaultChartOptions
	o.Script = lib

	var buf bytes.Buffer
	require.NoError(t, report.RenderChart(&buf, census.Distribution{3: 2, 5: 1}, o))

	page := buf.String()
	assert.Contains(t, page, "var echarts = {init: function () {}};")
	assert.Contains(t, page, `"data":["3","4","5"]`)
	assert.Contains(t, page, `{"value":2},{"value":"-"},{"value":1}`)
	assert.Contains(t, page, `"label":{"show":true`)
	assert.NotContains(t, page, "<script src=")
	assert.NotContains(t, page, `src="http`)
}

func TestRenderChart_MissingScript(t *testing.T) {
	o := report.DefaultChartOptions
	o.Script = filepath.Join(t.TempDir(), "missing.js")

	var buf bytes.Buffer
	err := report.RenderChart(&buf, census.Distribution{3: 1}, o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.js")
}

func TestPrintDistribution(t *testing.T) {
	var buf bytes.Buffer
	report.PrintDistribution(&buf, census.Distribution{5: 1, 2: 3})

	out := buf.String()
	assert.Contains(t, out, "Column distribution:")
	assert.Contains(t, out, "Tables with 2 columns: 3")
	assert.Contains(t, out, "Tables with 5 columns: 1")
	assert.Less(t, strings.Index(out, "Tables with 2 columns: 3"), strings.Index(out, "Tables with 5 columns: 1"))
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	report.PrintTable(&buf, "alpha", &schema.Table{
		Name:    "users",
		Columns: []*schema.Column{{Name: "id"}, {Name: "name"}},
	})
	assert.Equal(t, "Database alpha, table users: 2 columns\nColumns: id, name\n", buf.String())
}
