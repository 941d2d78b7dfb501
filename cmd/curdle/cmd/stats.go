/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scores file statistics",
	Long: `Show the number of records in the scores file and its size on disk.

Example:
  curdle stats --scores-file ./scores`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("opening scores file: %w", err)
		}
		defer scores.Close()

		stats, err := scores.Stats()
		if err != nil {
			return err
		}

		cmd.Printf("Records: %d\n", stats.Records)
		cmd.Printf("File size: %d bytes\n", stats.FileSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
