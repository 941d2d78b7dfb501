/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/curdle/pkg/config"
	"github.com/ssargent/curdle/pkg/store"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the curdle config and scores file",
	Long: `Initialize the curdle configuration file and create an empty scores
file. An existing config is loaded rather than overwritten, so init is
safe to run repeatedly.

Examples:
  curdle init
  curdle init --scores-file ./scores`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		scoresFile, _ := cmd.Flags().GetString("scores-file")

		cfg, err := config.BootstrapConfig(configPath, scoresFile)
		if err != nil {
			return fmt.Errorf("bootstrapping config: %w", err)
		}

		scores, err := store.NewScoreStore(store.ScoreStoreConfig{
			FilePath:   cfg.ScoresFile,
			Lock:       cfg.Lock,
			SyncWrites: cfg.SyncWrites,
		})
		if err != nil {
			return err
		}
		if err := scores.Open(); err != nil {
			return fmt.Errorf("creating scores file: %w", err)
		}
		defer scores.Close()

		cmd.Printf("Config: %s\n", configPath)
		cmd.Printf("Scores file: %s\n", cfg.ScoresFile)
		cmd.Printf("Client API key: %s\n", cfg.Security.ClientAPIKey)
		cmd.Printf("\nYou can now adjust scores with:\n")
		cmd.Printf("  curdle adjust <player> <delta>\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
