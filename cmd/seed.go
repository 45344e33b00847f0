package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"db-census/internal/engine"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var (
	seedDir       string
	seedDatabases int
	seedOpts      engine.SeedOptions
	noProgress    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate sample SQLite databases filled with fake data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		if seedDatabases < 1 {
			return fmt.Errorf("--databases must be at least 1")
		}
		if err := seedOpts.Validate(); err != nil {
			return err
		}

		dir := seedDir
		if dir == "" {
			dir = cfg.Scan.RootDir
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}

		d := cfg.Scan.Dialect()
		log := runLogger()
		out := cmd.OutOrStdout()
		log.Infof("Seeding %d databases into %s (driver %s)", seedDatabases, dir, d.DriverName())
		start := time.Now()

		// Progress Bar
		var tick func()
		if !noProgress {
			uiprogress.Start()
			bar := uiprogress.AddBar(seedDatabases * seedOpts.Tables * seedOpts.Rows).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Seeding: "
			})
			tick = func() { bar.Incr() }
		}

		var results []*engine.SeedResult
		for i := 0; i < seedDatabases; i++ {
			opts := seedOpts
			opts.Seed = seedOpts.Seed + int64(i)
			path := filepath.Join(dir, fmt.Sprintf("sample_%02d.db", i+1))

			res, err := engine.Seed(d, path, opts, tick)
			if err != nil {
				if !noProgress {
					uiprogress.Stop()
				}
				return err
			}
			results = append(results, res)
		}
		if !noProgress {
			uiprogress.Stop()
		}

		// Summary Report
		fmt.Fprintln(out, "\n📊 Seed Report:")
		total := 0
		for _, res := range results {
			fmt.Fprintf(out, "%s\n", res.Path)
			for i, r := range res.Tables {
				icon := "✓"
				if r.Status != "OK" {
					icon = "!"
				}
				fmt.Fprintf(out, "[%s] [%02d/%02d] %-20s : %d rows, %d columns - %s\n",
					icon, i+1, len(res.Tables), r.TableName, r.Actual, r.Columns, r.Status)
				if r.ErrorMsg != "" {
					fmt.Fprintf(out, "    └ Error: %s\n", r.ErrorMsg)
				}
				total += r.Actual
			}
		}
		fmt.Fprintln(out, "--------------------------------------------------")
		fmt.Fprintf(out, "Total Rows: %d\n", total)
		log.Infof("Seed Done! Time Elapsed: %s", time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedDir, "dir", "", "directory to write databases to (default: scan root)")
	seedCmd.Flags().IntVar(&seedDatabases, "databases", 3, "number of database files to create")
	seedCmd.Flags().IntVar(&seedOpts.Tables, "tables", 5, "tables per database")
	seedCmd.Flags().IntVar(&seedOpts.MinColumns, "min-columns", 2, "minimum columns per table, id included")
	seedCmd.Flags().IntVar(&seedOpts.MaxColumns, "max-columns", 10, "maximum columns per table")
	seedCmd.Flags().IntVar(&seedOpts.Rows, "rows", 100, "rows per table")
	seedCmd.Flags().Int64Var(&seedOpts.Seed, "seed", time.Now().UnixNano(), "random seed")
	seedCmd.Flags().BoolVar(&seedOpts.Overwrite, "overwrite", false, "replace existing database files")
	seedCmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
}
