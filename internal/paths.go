package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "cost-advisor"

// DefaultDataDir returns the per-OS directory where session snapshots live.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library/Application Support", appDirName), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName), nil
		}
		return filepath.Join(home, "AppData", "Roaming", appDirName), nil
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		return filepath.Join(home, ".local/share", appDirName), nil
	}
}

// DefaultConfigPath returns the config file location.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName, "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appDirName, "config.yaml")
}

// SnapshotPath returns the snapshot file path for a storage backend inside
// dataDir.
func SnapshotPath(dataDir, backend string) string {
	if backend == BackendSQLite {
		return filepath.Join(dataDir, "sessions.db")
	}
	return filepath.Join(dataDir, "sessions.json")
}
