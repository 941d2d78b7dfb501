/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/curdle/pkg/config"
	"github.com/ssargent/curdle/pkg/store"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "curdle",
	Short: "Curdle - persistent player leaderboard",
	Long: `Curdle keeps player scores in a plain scores file of fixed-width
records, one player per line. Scores are adjusted by a signed delta;
unknown players are appended with the delta as their starting score.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.GetDefaultConfigPath(), "Path to the config file")
	rootCmd.PersistentFlags().String("scores-file", "", "Scores file path (overrides config)")
}

// openStore resolves the effective store settings from the config file
// and command flags, then opens the scores file.
func openStore(cmd *cobra.Command) (*store.ScoreStore, error) {
	cfg := resolveConfig(cmd)

	scores, err := store.NewScoreStore(store.ScoreStoreConfig{
		FilePath:   cfg.ScoresFile,
		Lock:       cfg.Lock,
		SyncWrites: cfg.SyncWrites,
	})
	if err != nil {
		return nil, err
	}
	if err := scores.Open(); err != nil {
		return nil, err
	}
	return scores, nil
}

// resolveConfig loads the config file when one exists and applies flag
// overrides on top of it. Missing config files fall back to defaults so
// the CLI works without running init first.
func resolveConfig(cmd *cobra.Command) *config.Config {
	configPath, _ := cmd.Flags().GetString("config")

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		if loaded, err := config.LoadConfig(configPath); err == nil {
			cfg = loaded
		}
	}

	if scoresFile, _ := cmd.Flags().GetString("scores-file"); scoresFile != "" {
		cfg.ScoresFile = scoresFile
	}
	return cfg
}
