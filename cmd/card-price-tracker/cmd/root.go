// Package cmd implements the CLI commands for card-price-tracker.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/card-price-tracker/internal/config"
	"github.com/donaldgifford/card-price-tracker/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "card-price-tracker",
	Short: "Value eBay trading card listings against PriceCharting",
	Long: "An API-first service that ingests eBay trading card listings, identifies each card\n" +
		"and its grade, matches it against the daily PriceCharting price guide, and records\n" +
		"a market value with the basis it was derived from.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the config")

	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))
	cobra.CheckErr(viper.BindPFlag("env_file", rootCmd.PersistentFlags().Lookup("env-file")))

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		importCmd(),
		ingestCmd(),
		valuateCmd(),
		versionCommand(),
	)
}

func initConfig() {
	viper.SetEnvPrefix("CPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the env file and config, and builds the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	if err := config.LoadEnvFile(viper.GetString("env_file")); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	slog.SetDefault(log)
	return cfg, log, nil
}
