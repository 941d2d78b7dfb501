/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/curdle/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the curdle REST API server. Score adjustments are accepted over
HTTP and applied to the same scores file the CLI uses.

The client API key comes from the config file (run 'curdle init' to
generate one) unless --api-key overrides it.

Examples:
  curdle serve
  curdle serve --port 9090 --api-key mysecretkey`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)

		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
			cfg.Bind = bind
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
			cfg.Security.ClientAPIKey = apiKey
		}
		if cfg.Security.ClientAPIKey == "" || cfg.Security.ClientAPIKey == "auto" {
			return fmt.Errorf("no client API key configured (run 'curdle init' or pass --api-key)")
		}

		scores, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("opening scores file: %w", err)
		}
		defer scores.Close()

		cmd.Printf("Serving scores from %s on %s:%d\n", cfg.ScoresFile, cfg.Bind, cfg.Port)

		return api.StartServer(scores, api.ServerConfig{
			Port:   cfg.Port,
			Bind:   cfg.Bind,
			APIKey: cfg.Security.ClientAPIKey,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Address to bind to (overrides config)")
	serveCmd.Flags().String("api-key", "", "Client API key (overrides config)")
}
