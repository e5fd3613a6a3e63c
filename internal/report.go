package internal

import (
	"strings"
)

// Section markers recognized in assistant replies. The agent is prompted to
// answer in a loose markdown convention; these literal substrings are the
// only contract. A reply that phrases things differently simply yields no
// sections.
const (
	markerCostAnalysis    = "**Cost Analysis:**"
	markerReturns         = "**Returns:**"
	markerPaybackPeriod   = "payback period is approximately"
	markerGPT4            = "**GPT-4:**"
	markerClaude          = "**Claude:**"
	markerRecommendations = "**Recommendations:**"

	recommendClaudeProbe = "Recommendation: Use Claude"

	boldToken = "**"
)

// ReportItem is one label/value row inside a report section. Values stay
// display strings; no numeric or currency parsing is done.
type ReportItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ModelProfile holds the bullet lines extracted for one compared model.
type ModelProfile struct {
	Model string   `json:"model"`
	Notes []string `json:"notes"`
}

// ModelComparison is the GPT-4 vs Claude section of a report.
type ModelComparison struct {
	Models      []ModelProfile `json:"models"`
	Recommended string         `json:"recommended"`
}

// Report is the section-level view of the latest assistant reply. A nil or
// empty field means the corresponding marker was absent; there is no partial
// rendering of a section whose marker is missing.
type Report struct {
	CostSummary     []ReportItem     `json:"costSummary,omitempty"`
	ROIProjection   []ReportItem     `json:"roiProjection,omitempty"`
	Comparison      *ModelComparison `json:"comparison,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`

	// present records that a section marker appeared in the reply. Presence
	// is marker containment, not parse success: a section whose body yields
	// no rows still counts.
	present bool
}

// HasAnySection reports whether at least one section marker was found. This
// is the "show report" decision: false means the caller renders the empty
// state.
func (r *Report) HasAnySection() bool {
	if r == nil {
		return false
	}
	return r.present || len(r.CostSummary) > 0 || len(r.ROIProjection) > 0 ||
		r.Comparison != nil || len(r.Recommendations) > 0
}

// ExtractReport derives report sections from an assistant reply by checking
// for literal marker substrings and splitting around them. It is pure and
// never fails; the worst case is a report with zero sections.
func ExtractReport(content string) *Report {
	report := &Report{}
	if content == "" {
		return report
	}

	if strings.Contains(content, markerCostAnalysis) {
		report.present = true
		report.CostSummary = extractItems(content, markerCostAnalysis, "-")
	}

	if strings.Contains(content, markerReturns) {
		report.present = true
		report.ROIProjection = extractItems(content, markerReturns, ":")
	}
	if strings.Contains(content, markerPaybackPeriod) {
		report.present = true
		if value := extractPaybackPeriod(content); value != "" {
			report.ROIProjection = append(report.ROIProjection, ReportItem{
				Label: "Payback Period",
				Value: value,
			})
		}
	}

	// Model comparison needs both model markers; one model alone is not a
	// comparison.
	if strings.Contains(content, markerGPT4) && strings.Contains(content, markerClaude) {
		report.present = true
		report.Comparison = extractComparison(content)
	}

	if strings.Contains(content, markerRecommendations) {
		report.present = true
		report.Recommendations = extractRecommendations(content)
	}

	return report
}

// extractItems takes everything after the first occurrence of marker, splits
// it on bold tokens into candidate lines, discards lines without the
// separator, and splits each survivor on the first ":" into label and value.
func extractItems(content, marker, separator string) []ReportItem {
	after := textAfter(content, marker)
	if after == "" {
		return nil
	}

	var items []ReportItem
	for _, candidate := range strings.Split(after, boldToken) {
		if !strings.Contains(candidate, separator) {
			continue
		}
		for _, line := range strings.Split(candidate, "\n") {
			if !strings.Contains(line, ":") {
				continue
			}
			parts := strings.SplitN(line, ":", 2)
			label := trimDecoration(parts[0])
			value := trimDecoration(parts[1])
			if label == "" || value == "" {
				continue
			}
			items = append(items, ReportItem{Label: label, Value: value})
		}
	}

	return items
}

// extractPaybackPeriod pulls the free-text payback phrase: the value runs up
// to the next period.
func extractPaybackPeriod(content string) string {
	after := textAfter(content, markerPaybackPeriod)
	if after == "" {
		return ""
	}
	value := strings.SplitN(after, ".", 2)[0]
	return strings.TrimSpace(value)
}

// extractComparison collects the bullet lines following each model marker.
// The recommended model is derived from a literal recommendation probe.
func extractComparison(content string) *ModelComparison {
	comparison := &ModelComparison{Recommended: "GPT-4"}
	if strings.Contains(content, recommendClaudeProbe) {
		comparison.Recommended = "Claude"
	}

	for _, model := range []struct {
		name   string
		marker string
	}{
		{"GPT-4", markerGPT4},
		{"Claude", markerClaude},
	} {
		notes := extractModelNotes(content, model.marker)
		if len(notes) > 0 {
			comparison.Models = append(comparison.Models, ModelProfile{
				Model: model.name,
				Notes: notes,
			})
		}
	}

	if len(comparison.Models) == 0 {
		return nil
	}
	return comparison
}

func extractModelNotes(content, marker string) []string {
	after := textAfter(content, marker)
	if after == "" {
		return nil
	}

	// The model's own lines end at the next bold heading.
	chunk := strings.Split(after, boldToken)[0]

	var notes []string
	for _, line := range strings.Split(chunk, "\n") {
		line = trimDecoration(line)
		if line == "" {
			continue
		}
		notes = append(notes, line)
	}
	return notes
}

// extractRecommendations keeps the numbered lines after the marker, taking
// the text after the ordinal ("1. Start with..." -> "Start with...").
func extractRecommendations(content string) []string {
	after := textAfter(content, markerRecommendations)
	if after == "" {
		return nil
	}

	// Recommendations end at the next bold heading, if any.
	chunk := strings.Split(after, boldToken)[0]

	var recs []string
	for _, line := range strings.Split(chunk, "\n") {
		if !strings.Contains(line, ". ") {
			continue
		}
		rec := strings.TrimSpace(strings.SplitN(line, ". ", 2)[1])
		if rec != "" {
			recs = append(recs, rec)
		}
	}
	return recs
}

// textAfter returns everything after the first occurrence of marker, or ""
// when the marker is absent.
func textAfter(content, marker string) string {
	idx := strings.Index(content, marker)
	if idx < 0 {
		return ""
	}
	return content[idx+len(marker):]
}

// trimDecoration strips surrounding whitespace and decorative list/bold
// characters from a label or value.
func trimDecoration(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "-*")
	return strings.TrimSpace(s)
}
