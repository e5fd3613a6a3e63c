package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// APIKeyEnv is the environment variable holding the inference API key. The
// key is never read from the config file.
const APIKeyEnv = "LYZR_API_KEY"

// StorageConfig selects and locates the snapshot backend.
type StorageConfig struct {
	Backend string `yaml:"backend,omitempty"` // "json" (default) or "sqlite"
	Path    string `yaml:"path,omitempty"`    // snapshot file; derived from the data dir when empty
}

// AgentConfig identifies the hosted agent a send is routed to.
type AgentConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	AgentID  string `yaml:"agent_id,omitempty"`
	UserID   string `yaml:"user_id,omitempty"`
}

// ServerConfig configures the local proxy server.
type ServerConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// Config holds all configuration options.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Agent   AgentConfig   `yaml:"agent"`
	Server  ServerConfig  `yaml:"server"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendJSON},
		Agent: AgentConfig{
			Endpoint: DefaultAgentEndpoint,
			AgentID:  "683d24f83b7c57f1745cfbe8",
			UserID:   "local",
		},
		Server: ServerConfig{Listen: ":8080"},
	}
}

// LoadConfig loads config from path (or the default location when path is
// empty), falling back to defaults when the file is missing or unparseable.
func LoadConfig(path string) *Config {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		LogWarn("Failed to parse config %s, using defaults: %v", path, err)
		return DefaultConfig()
	}

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Agent.Endpoint == "" {
		c.Agent.Endpoint = def.Agent.Endpoint
	}
	if c.Agent.AgentID == "" {
		c.Agent.AgentID = def.Agent.AgentID
	}
	if c.Agent.UserID == "" {
		c.Agent.UserID = def.Agent.UserID
	}
	if c.Server.Listen == "" {
		c.Server.Listen = def.Server.Listen
	}
}

// APIKey returns the inference API key from the environment.
func (c *Config) APIKey() string {
	return os.Getenv(APIKeyEnv)
}

// SnapshotStore builds the snapshot backend selected by the config.
func (c *Config) SnapshotStore() (SnapshotStore, error) {
	path := c.Storage.Path
	if path == "" {
		dataDir, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		path = SnapshotPath(dataDir, c.Storage.Backend)
	}

	switch c.Storage.Backend {
	case BackendSQLite:
		return NewSQLiteSnapshotStore(path), nil
	case BackendJSON:
		return NewJSONSnapshotStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s (supported: json, sqlite)", c.Storage.Backend)
	}
}
