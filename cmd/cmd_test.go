package cmd

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"db-census/internal/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)
	defer RootCmd.SetArgs(nil)

	require.NoError(t, RootCmd.Execute(), errOut.String())
	return out.String(), errOut.String()
}

func linesMentioning(log, s string) int {
	n := 0
	for _, line := range strings.Split(log, "\n") {
		if strings.Contains(line, s) {
			n++
		}
	}
	return n
}

func TestReportAndDistribution(t *testing.T) {
	root := t.TempDir()
	fixture.AlphaBeta(t, root)
	corrupt := fixture.Corrupt(t, filepath.Join(root, "corrupt.db"))
	work := t.TempDir()
	csvPath := filepath.Join(work, "stats.csv")
	chartPath := filepath.Join(work, "dist.html")

	out, errOut := run(t, "report", "--root", root, "--output", csvPath)
	assert.Contains(t, out, "Found 3 database files")
	assert.Contains(t, out, "Statistics saved to "+csvPath)
	assert.Equal(t, 1, linesMentioning(errOut, corrupt))

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Database", "Table", "Rows", "Columns", "Column Names"}, rows[0])
	data := rows[1:]
	sort.Slice(data, func(i, j int) bool { return data[i][0] < data[j][0] })
	assert.Equal(t, [][]string{
		{"alpha", "users", "10", "3", "id, name, email"},
		{"beta", "logs", "0", "2", "id, ts"},
	}, data)

	out, errOut = run(t, "distribution", "--root", root, "--chart", chartPath)
	assert.Contains(t, out, "Database alpha, table users: 3 columns")
	assert.Contains(t, out, "Columns: id, ts")
	assert.Contains(t, out, "Tables with 2 columns: 1")
	assert.Contains(t, out, "Tables with 3 columns: 1")
	assert.Equal(t, 1, linesMentioning(errOut, corrupt))
	assert.FileExists(t, chartPath)
}

func TestSeedThenReport(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(t.TempDir(), "seeded.csv")

	out, _ := run(t, "seed", "--dir", dir, "--databases", "2", "--tables", "3",
		"--min-columns", "2", "--max-columns", "4", "--rows", "5", "--seed", "11", "--no-progress")
	assert.Contains(t, out, "Total Rows: 30")

	out, _ = run(t, "report", "--root", dir, "--output", csvPath)
	assert.Contains(t, out, "Found 2 database files")

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+2*3)
	for _, row := range rows[1:] {
		assert.Equal(t, "5", row[2])
		assert.True(t, strings.HasPrefix(row[4], "id, "))
	}
}

func TestScanConfig_Validate(t *testing.T) {
	valid := ScanConfig{RootDir: "r", OutputPath: "o.csv", ChartPath: "c.html", Extensions: []string{".db"}}
	assert.NoError(t, valid.Validate())

	noRoot := valid
	noRoot.RootDir = ""
	assert.Error(t, noRoot.Validate())

	noExt := valid
	noExt.Extensions = nil
	assert.Error(t, noExt.Validate())
}

func TestExecute_ReportsErrorOnce(t *testing.T) {
	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs([]string{"report", "--no-such-flag"})
	defer RootCmd.SetArgs(nil)

	err := execute()
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(errOut.String(), err.Error()))
	assert.NotContains(t, errOut.String(), "Error:")
	assert.NotContains(t, out.String(), err.Error())
}
