package testutil

import (
	"fmt"
	"testing"
	"time"
)

// SessionFixtureJSON returns a serialized snapshot holding n sessions with
// one user/assistant exchange each, newest first.
func SessionFixtureJSON(t *testing.T, n int) []byte {
	t.Helper()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sessions := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("session-%d", n-i)
		created := base.Add(time.Duration(n-i) * time.Hour)
		sessions = append(sessions, map[string]interface{}{
			"id":           id,
			"title":        fmt.Sprintf("Conversation %d", n-i),
			"lastModified": created.Format(time.RFC3339),
			"isActive":     i == 0,
			"messages": []map[string]interface{}{
				{
					"id":        id + "-m1",
					"role":      "user",
					"content":   "How much would this cost?",
					"timestamp": created.Format(time.RFC3339),
				},
				{
					"id":        id + "-m2",
					"role":      "assistant",
					"content":   "**Cost Analysis:**\n- Initial setup: $15,000-25,000",
					"timestamp": created.Add(time.Minute).Format(time.RFC3339),
				},
			},
		})
	}

	return JSONMarshal(t, sessions)
}
