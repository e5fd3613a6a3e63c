package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/cost-advisor/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	configPath  string
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cost-advisor",
	Short: "Chat with the AI cost-advisor agent from your terminal",
	Long: `A CLI companion for the AI cost-advisor agent.

Conversations are kept locally as sessions and every assistant reply is
scanned for report sections (cost summary, ROI projection, model comparison,
recommendations).

Quick Start:
  cost-advisor send "What would AI support cost us?"   # Ask the agent
  cost-advisor list                                    # List sessions
  cost-advisor report                                  # Render the latest report
  cost-advisor serve                                   # Run the local chat proxy

The agent API key is read from the ` + internal.APIKeyEnv + ` environment variable.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom session snapshot location")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig loads the effective configuration, applying flag overrides.
func loadConfig() *internal.Config {
	cfg := internal.LoadConfig(configPath)
	if storagePath != "" {
		cfg.Storage.Path = storagePath
	}
	return cfg
}

// openStore builds the session store over the configured snapshot backend.
// agent may be nil for commands that never dispatch a message.
func openStore(cfg *internal.Config, agent internal.AgentCaller) (*internal.SessionStore, error) {
	snapshot, err := cfg.SnapshotStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}
	return internal.NewSessionStore(snapshot, agent), nil
}
