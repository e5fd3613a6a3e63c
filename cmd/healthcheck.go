package cmd

import (
	"fmt"
	"net/url"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cost-advisor/internal"
	"github.com/spf13/cobra"
)

var healthcheckVerbose bool

var (
	checkOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	checkWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	checkFailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	checkInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	checkSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("62")).
				Bold(true).
				Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check configuration, storage, and agent settings",
	Long: `Check the health of cost-advisor by verifying:
  • Config file resolution
  • Session snapshot accessibility and session count
  • Agent endpoint and API key configuration

This command is useful for debugging setup issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(checkSectionStyle.Render("🔍 Cost Advisor Health Check"))
		fmt.Println()

		// Step 1: Configuration
		fmt.Println(checkInfoStyle.Render("Step 1: Loading configuration..."))
		cfg := loadConfig()
		fmt.Println(checkOKStyle.Render("✅ Configuration loaded"))
		if healthcheckVerbose {
			fmt.Printf("   Config file: %s\n", internal.DefaultConfigPath())
			fmt.Printf("   Storage backend: %s\n", cfg.Storage.Backend)
		}
		fmt.Println()

		// Step 2: Session storage
		fmt.Println(checkInfoStyle.Render("Step 2: Checking session storage..."))
		snapshot, err := cfg.SnapshotStore()
		if err != nil {
			fmt.Println(checkFailStyle.Render("❌ Storage misconfigured:"), err)
			os.Exit(1)
		}
		sessions, err := snapshot.Load()
		if err != nil {
			fmt.Println(checkWarnStyle.Render("⚠️  Snapshot unreadable (the store will start empty):"), err)
		} else {
			fmt.Println(checkOKStyle.Render(fmt.Sprintf("✅ Snapshot readable, %d session(s)", len(sessions))))
		}
		fmt.Println()

		// Step 3: Agent configuration
		fmt.Println(checkInfoStyle.Render("Step 3: Checking agent configuration..."))
		if _, err := url.ParseRequestURI(cfg.Agent.Endpoint); err != nil {
			fmt.Println(checkFailStyle.Render("❌ Invalid agent endpoint:"), cfg.Agent.Endpoint)
			os.Exit(1)
		}
		fmt.Println(checkOKStyle.Render("✅ Agent endpoint configured"))
		if healthcheckVerbose {
			fmt.Printf("   Endpoint: %s\n", cfg.Agent.Endpoint)
			fmt.Printf("   Agent ID: %s\n", cfg.Agent.AgentID)
		}

		if cfg.APIKey() == "" {
			fmt.Println(checkWarnStyle.Render("⚠️  " + internal.APIKeyEnv + " is not set; send and serve will fail"))
		} else {
			fmt.Println(checkOKStyle.Render("✅ API key present"))
		}

		fmt.Println()
		fmt.Println(checkSectionStyle.Render("Health check complete"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "verbose-check", false, "Show detailed check output")
}
