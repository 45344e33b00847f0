package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// Log carries diagnostics; progress lines go to the command's stdout.
	Log = logrus.New()
)

var RootCmd = &cobra.Command{
	Use:   "db-census",
	Short: "A schema census for embedded database files",
	Long: `
  ____  ____     ____ _____ _   _ ____  _   _ ____  
 |  _ \| __ )   / ___| ____| \ | / ___|| | | / ___| 
 | | | |  _ \  | |   |  _| |  \| \___ \| | | \___ \ 
 | |_| | |_) | | |___| |___| |\  |___) | |_| |___) |
 |____/|____/   \____|_____|_| \_|____/ \___/|____/ 

DB CENSUS - walks a directory of SQLite files and reports on their tables
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(viper.GetString("log.level"))
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		Log.SetLevel(level)
		Log.SetOutput(cmd.ErrOrStderr())
		Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

		if used := viper.ConfigFileUsed(); used != "" {
			Log.WithField("file", used).Debug("using config file")
		}
		return nil
	},
}

func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and reports a failure once, on stderr.
func execute() error {
	err := RootCmd.Execute()
	if err != nil {
		fmt.Fprintln(RootCmd.ErrOrStderr(), err)
	}
	return err
}

// runLogger tags every entry of one invocation with a run id.
func runLogger() logrus.FieldLogger {
	return Log.WithField("run", uuid.NewString())
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-census.yaml)")
	RootCmd.PersistentFlags().String("root", "", "root directory to scan for database files")
	RootCmd.PersistentFlags().String("driver", "", "SQLite driver: sqlite (pure Go) or sqlite3 (cgo)")
	RootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	// Bind flags to viper
	viper.BindPFlag("scan.root_dir", RootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("scan.driver", RootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))

	setDefaults()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-census")
		viper.SetConfigType("yaml")
	}

	// DB_CENSUS_SCAN_ROOT_DIR etc.
	viper.SetEnvPrefix("db_census")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			Log.WithError(err).Warn("failed to read config file")
		}
	}
}
