package export

import (
	"io"

	"github.com/iksnae/cost-advisor/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports sessions in YAML format
type YAMLExporter struct{}

// yamlSession mirrors ChatSession with yaml-friendly field names.
type yamlSession struct {
	ID           string        `yaml:"id"`
	Title        string        `yaml:"title"`
	LastModified string        `yaml:"last_modified"`
	Messages     []yamlMessage `yaml:"messages"`
}

type yamlMessage struct {
	ID        string `yaml:"id"`
	Role      string `yaml:"role"`
	Content   string `yaml:"content"`
	Timestamp string `yaml:"timestamp"`
}

// Export exports a session to YAML format
func (e *YAMLExporter) Export(session *internal.ChatSession, w io.Writer) error {
	out := yamlSession{
		ID:           session.ID,
		Title:        session.Title,
		LastModified: session.LastModified.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, msg := range session.Messages {
		out.Messages = append(out.Messages, yamlMessage{
			ID:        msg.ID,
			Role:      string(msg.Role),
			Content:   msg.Content,
			Timestamp: msg.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(out)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
