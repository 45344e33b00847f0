package cmd

import (
	"fmt"

	"db-census/internal/census"
	"db-census/internal/report"
	"db-census/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var distributionCmd = &cobra.Command{
	Use:     "distribution",
	Aliases: []string{"dist"},
	Short:   "Chart how many tables have each column count",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		log := runLogger()
		out := cmd.OutOrStdout()

		// 1. Discover & Inspect, listing each table as it is read
		c := cfg.Scan.Census(out, log, false)
		c.OnResult = func(res schema.Result) {
			for _, t := range res.Usable() {
				report.PrintTable(out, res.Database, t)
			}
		}
		results, err := c.Collect(cfg.Scan.RootDir)
		if err != nil {
			return err
		}

		// 2. Histogram
		dist := census.Histogram(results)
		report.PrintDistribution(out, dist)

		// 3. Chart
		if err := report.WriteChart(cfg.Scan.ChartPath, dist, cfg.Scan.ChartOptions()); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nColumn distribution chart saved to %s\n", cfg.Scan.ChartPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(distributionCmd)

	distributionCmd.Flags().String("chart", "", "HTML chart file to write (overrides config)")
	viper.BindPFlag("scan.chart_path", distributionCmd.Flags().Lookup("chart"))
	distributionCmd.Flags().String("chart-script", "", "local echarts.min.js to inline for an interactive chart (default: SVG)")
	viper.BindPFlag("scan.chart_script", distributionCmd.Flags().Lookup("chart-script"))
}
