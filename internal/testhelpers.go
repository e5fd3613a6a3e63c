package internal

import (
	"time"
)

// Canned agent replies used across tests. These mirror the markdown
// convention the hosted cost-advisor agent answers in.
const (
	SampleCostReply = "Based on your requirements, I've analyzed the cost implications of implementing AI for customer support. Here's what I found:\n\n" +
		"**Cost Analysis:**\n- Initial setup: $15,000-25,000\n- Monthly operational costs: $2,500-4,000\n- Expected ROI: 180% within 18 months\n\n" +
		"**Recommendations:**\n1. Start with GPT-4 for complex queries\n2. Use Claude for routine responses\n3. Implement token optimization strategies\n\n" +
		"Would you like me to generate a detailed report with these findings?"

	SampleComparisonReply = "I've compared GPT-4 and Claude for your specific use case. Here's the breakdown:\n\n" +
		"**GPT-4:**\n- Cost per 1K tokens: $0.03 (input), $0.06 (output)\n- Best for: Complex reasoning, creative tasks\n- Monthly estimate: $3,200\n\n" +
		"**Claude:**\n- Cost per 1K tokens: $0.015 (input), $0.075 (output)\n- Best for: Long-form content, analysis\n- Monthly estimate: $2,800\n\n" +
		"**Recommendation:** Use Claude for your use case - 12% cost savings with comparable quality."

	SampleROIReply = "Here's your ROI projection for AI implementation:\n\n" +
		"**Investment Breakdown:**\n- Year 1: $45,000 total investment\n- Year 2: $35,000 operational costs\n- Year 3: $38,000 with scaling\n\n" +
		"**Returns:**\n- Cost savings: $65,000/year\n- Efficiency gains: $25,000/year\n- Revenue increase: $40,000/year\n\n" +
		"**Net ROI: 245% over 3 years**\n\nThe payback period is approximately 14 months."
)

// CreateTestSession creates a session with one user/assistant exchange.
func CreateTestSession(id string) *ChatSession {
	return &ChatSession{
		ID:    id,
		Title: "Test Conversation",
		Messages: []Message{
			{
				ID:        id + "-m1",
				Role:      RoleUser,
				Content:   "What will AI support cost us?",
				Timestamp: time.Now(),
			},
			{
				ID:        id + "-m2",
				Role:      RoleAssistant,
				Content:   SampleCostReply,
				Timestamp: time.Now(),
			},
		},
		LastModified: time.Now(),
	}
}

// CreateTestSessionWithMessages creates a session with custom messages.
func CreateTestSessionWithMessages(id string, messages []Message) *ChatSession {
	return &ChatSession{
		ID:           id,
		Title:        "Test Conversation",
		Messages:     messages,
		LastModified: time.Now(),
	}
}
