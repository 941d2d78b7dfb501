/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/ssargent/curdle/pkg/codec"
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust [player] [delta]",
	Short: "Adjust a player's score by a signed delta",
	Long: `Adjust a player's score by a signed delta. The player's record is
rewritten in place when it exists; otherwise a new record is appended
with the delta as the starting score.

With no arguments the command prompts for the player and delta
interactively.

Examples:
  curdle adjust alice 50
  curdle adjust alice -- -25
  curdle adjust`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		player, deltaText, err := adjustInputs(args)
		if err != nil {
			return err
		}

		delta, err := parseDelta(deltaText)
		if err != nil {
			return err
		}

		scores, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("opening scores file: %w", err)
		}
		defer scores.Close()

		if err := scores.Adjust(player, delta); err != nil {
			return err
		}

		cmd.Printf("Adjusted %s by %d\n", player, delta)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adjustCmd)
}

// adjustInputs returns the player and delta text, prompting for
// whichever the command line did not supply.
func adjustInputs(args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	player := ""
	if len(args) == 1 {
		player = args[0]
	} else {
		input, err := line.Prompt("Player name: ")
		if err != nil {
			return "", "", promptError(err)
		}
		player = strings.TrimSpace(input)
	}

	deltaText, err := line.Prompt("Score adjustment: ")
	if err != nil {
		return "", "", promptError(err)
	}
	return player, strings.TrimSpace(deltaText), nil
}

func promptError(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return errors.New("aborted")
	}
	return fmt.Errorf("reading input: %w", err)
}

// parseDelta classifies the delta text so the user learns whether the
// value was malformed or merely out of range.
func parseDelta(text string) (int32, error) {
	delta, status := codec.ParseScore(text)
	switch status {
	case codec.ScoreValid:
		return delta, nil
	case codec.ScoreOverflow:
		return 0, fmt.Errorf("score adjustment %q is too large (max %d)", text, codec.ScoreMax)
	case codec.ScoreUnderflow:
		return 0, fmt.Errorf("score adjustment %q is too small (min %d)", text, codec.ScoreMin)
	default:
		return 0, fmt.Errorf("score adjustment %q is not a number", text)
	}
}
