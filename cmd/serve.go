package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/iksnae/cost-advisor/internal"
	"github.com/spf13/cobra"
)

var serveListen string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local chat proxy",
	Long: `Run the HTTP proxy that forwards chat turns to the hosted inference
service. The UI posts to /api/chat and the proxy attaches the server-held
API key before forwarding.

The key is read from ` + internal.APIKeyEnv + `; when it is missing the proxy still
starts but every chat request fails with a configuration error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if serveListen != "" {
			cfg.Server.Listen = serveListen
		}

		apiKey := cfg.APIKey()
		if apiKey == "" {
			internal.LogWarn("%s is not set; chat requests will fail until it is configured", internal.APIKeyEnv)
		}

		proxy := internal.NewProxy(apiKey, cfg.Agent.Endpoint)

		server := &http.Server{
			Addr:              cfg.Server.Listen,
			Handler:           proxy.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		fmt.Printf("Listening on %s (upstream: %s)\n", cfg.Server.Listen, cfg.Agent.Endpoint)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (overrides config)")
}
