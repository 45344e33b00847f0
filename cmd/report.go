package cmd

import (
	"fmt"

	"db-census/internal/census"
	"db-census/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a CSV of every table's row count, column count and column names",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		log := runLogger()
		out := cmd.OutOrStdout()

		// 1. Discover & Inspect
		results, err := cfg.Scan.Census(out, log, true).Collect(cfg.Scan.RootDir)
		if err != nil {
			return err
		}

		// 2. Flatten
		records := census.Flatten(results)

		// 3. Report
		if err := report.WriteCSV(cfg.Scan.OutputPath, records); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nStatistics saved to %s\n", cfg.Scan.OutputPath)
		log.WithField("databases", len(results)).WithField("tables", len(records)).Debug("report written")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("output", "", "CSV file to write (overrides config)")
	viper.BindPFlag("scan.output_path", reportCmd.Flags().Lookup("output"))
}
