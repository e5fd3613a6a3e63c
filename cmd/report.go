package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cost-advisor/internal"
	"github.com/spf13/cobra"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	reportSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				MarginTop(1)

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))

	reportValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("135"))

	reportEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Italic(true)

	recommendedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [session-id]",
	Short: "Render the analysis report for a conversation",
	Long: `Render the report sections found in the latest assistant reply of a
conversation. Without an id the active session is used.

Sections appear only when the agent's reply contains the matching heading;
a reply phrased differently yields an empty report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(loadConfig(), nil)
		if err != nil {
			return err
		}

		var sess *internal.ChatSession
		if len(args) == 1 {
			sess = store.Find(args[0])
			if sess == nil {
				return fmt.Errorf("session not found: %s", args[0])
			}
		} else {
			sess = store.Active()
		}

		var content string
		if last := sess.LastAssistantMessage(); last != nil {
			content = last.Content
		}

		report := internal.ExtractReport(content)
		if !report.HasAnySection() {
			fmt.Println(reportEmptyStyle.Render("Complete your analysis to see the report."))
			fmt.Println(reportEmptyStyle.Render("Start a conversation to generate detailed cost analysis and recommendations."))
			return nil
		}

		fmt.Println(reportTitleStyle.Render("📊 Analysis Report"))
		renderReport(report)
		return nil
	},
}

// renderReport prints the extracted sections. Shared with the send command.
func renderReport(report *internal.Report) {
	if len(report.CostSummary) > 0 {
		fmt.Println(reportSectionStyle.Render("💰 Cost Summary"))
		for _, item := range report.CostSummary {
			fmt.Printf("  %s  %s\n", reportLabelStyle.Render(item.Label+":"), reportValueStyle.Render(item.Value))
		}
	}

	if len(report.ROIProjection) > 0 {
		fmt.Println(reportSectionStyle.Render("📈 ROI Projection"))
		for _, item := range report.ROIProjection {
			fmt.Printf("  %s  %s\n", reportLabelStyle.Render(item.Label+":"), reportValueStyle.Render(item.Value))
		}
	}

	if report.Comparison != nil {
		fmt.Println(reportSectionStyle.Render("⚖️  Model Comparison"))
		for _, model := range report.Comparison.Models {
			marker := "  "
			if model.Model == report.Comparison.Recommended {
				marker = recommendedStyle.Render("★ ")
			}
			fmt.Printf("  %s%s\n", marker, reportValueStyle.Render(model.Model))
			for _, note := range model.Notes {
				fmt.Printf("    %s\n", reportLabelStyle.Render("- "+note))
			}
		}
		fmt.Printf("  %s %s\n", reportLabelStyle.Render("Recommended:"), recommendedStyle.Render(report.Comparison.Recommended))
	}

	if len(report.Recommendations) > 0 {
		fmt.Println(reportSectionStyle.Render("✅ Key Recommendations"))
		for i, rec := range report.Recommendations {
			fmt.Printf("  %d. %s\n", i+1, rec)
		}
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
