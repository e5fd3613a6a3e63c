package export

import (
	"fmt"
	"io"

	"github.com/iksnae/cost-advisor/internal"
)

// ReportExporter writes the latest assistant reply as plain text, the same
// payload the dashboard's report download produced. When the reply contains
// recognizable report sections, a parsed summary is appended.
type ReportExporter struct{}

// Export writes the report text for a session
func (e *ReportExporter) Export(session *internal.ChatSession, w io.Writer) error {
	last := session.LastAssistantMessage()
	if last == nil {
		_, err := fmt.Fprintln(w, "No analysis available for this conversation yet.")
		return err
	}

	if _, err := fmt.Fprintln(w, last.Content); err != nil {
		return err
	}

	report := internal.ExtractReport(last.Content)
	if !report.HasAnySection() {
		return nil
	}

	_, _ = fmt.Fprintf(w, "\n----------------------------------------\nParsed summary\n----------------------------------------\n")

	if len(report.CostSummary) > 0 {
		_, _ = fmt.Fprintln(w, "\nCost Summary:")
		for _, item := range report.CostSummary {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", item.Label, item.Value)
		}
	}

	if len(report.ROIProjection) > 0 {
		_, _ = fmt.Fprintln(w, "\nROI Projection:")
		for _, item := range report.ROIProjection {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", item.Label, item.Value)
		}
	}

	if report.Comparison != nil {
		_, _ = fmt.Fprintln(w, "\nModel Comparison:")
		for _, model := range report.Comparison.Models {
			_, _ = fmt.Fprintf(w, "  %s:\n", model.Model)
			for _, note := range model.Notes {
				_, _ = fmt.Fprintf(w, "    - %s\n", note)
			}
		}
		_, _ = fmt.Fprintf(w, "  Recommended: %s\n", report.Comparison.Recommended)
	}

	if len(report.Recommendations) > 0 {
		_, _ = fmt.Fprintln(w, "\nRecommendations:")
		for i, rec := range report.Recommendations {
			_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *ReportExporter) Extension() string {
	return "txt"
}
