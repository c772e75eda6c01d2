package fuelup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/config"
	"github.com/ibdesignproject/FuelUpFinal/internal/logging"
)

var (
	dbPath     string
	configFile string
	logLevel   string
	quiet      bool
)

var cfg *config.Config

var logger = logging.Discard()

var rootCmd = &cobra.Command{
	Use:   "fuelup",
	Short: "fuelup plans athlete nutrition from your terminal",
	Long: "fuelup is a local-first nutrition companion for athletes: log meals and water, " +
		"track daily goals and streaks, and get recipes for your sport or the ingredients you have.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}
		cfg = loaded
		logger = logging.Setup(cfg.Log.Level, cmd.ErrOrStderr())
		logger.Debug("config loaded", "db_path", cfg.Storage.DBPath, "default_sport", cfg.Profile.DefaultSport)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: ./fuelup.yaml or the data directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Send notifications to the log instead of stdout")
}
