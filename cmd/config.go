package cmd

import (
	"fmt"
	"io"

	"db-census/internal/census"
	"db-census/internal/dialect"
	"db-census/internal/discover"
	"db-census/internal/report"
	"db-census/internal/schema"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Scan ScanConfig `mapstructure:"scan"`
}

type ScanConfig struct {
	RootDir          string   `mapstructure:"root_dir"`
	OutputPath       string   `mapstructure:"output_path"`
	ChartPath        string   `mapstructure:"chart_path"`
	ChartScript      string   `mapstructure:"chart_script"`
	Extensions       []string `mapstructure:"extensions"`
	Driver           string   `mapstructure:"driver"`
	QuoteIdentifiers bool     `mapstructure:"quote_identifiers"`
	IsolateTables    bool     `mapstructure:"isolate_tables"`
	SkipInternal     bool     `mapstructure:"skip_internal"`
}

func setDefaults() {
	viper.SetDefault("scan.root_dir", "train")
	viper.SetDefault("scan.output_path", "database_tables_stats.csv")
	viper.SetDefault("scan.chart_path", "column_distribution.html")
	viper.SetDefault("scan.chart_script", "")
	viper.SetDefault("scan.extensions", discover.DefaultExtensions)
	viper.SetDefault("scan.driver", "sqlite")
	viper.SetDefault("scan.quote_identifiers", true)
	viper.SetDefault("scan.isolate_tables", false)
	viper.SetDefault("scan.skip_internal", false)
	viper.SetDefault("log.level", "info")
}

// LoadConfig resolves the scan configuration (Flag > Env > Config > Default).
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Scan.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ScanConfig) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("scan.root_dir is required (via --root or config)")
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("scan.extensions must list at least one suffix")
	}
	if c.OutputPath == "" || c.ChartPath == "" {
		return fmt.Errorf("scan.output_path and scan.chart_path must not be empty")
	}
	return nil
}

// ChartOptions inlines the configured ECharts bundle, if any, into the chart page.
func (c *ScanConfig) ChartOptions() report.ChartOptions {
	o := report.DefaultChartOptions
	o.Script = c.ChartScript
	return o
}

func (c *ScanConfig) Dialect() dialect.Dialect {
	return dialect.GetDialect(c.Driver, c.QuoteIdentifiers)
}

// Census builds the scan pipeline; countRows enables the per-table COUNT(*) query.
func (c *ScanConfig) Census(out io.Writer, log logrus.FieldLogger, countRows bool) *census.Census {
	return &census.Census{
		Dialect:    c.Dialect(),
		Extensions: c.Extensions,
		Options: schema.Options{
			CountRows:     countRows,
			IsolateTables: c.IsolateTables,
			SkipInternal:  c.SkipInternal,
		},
		Out: out,
		Log: log,
	}
}
