package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/cost-advisor/internal"
	"github.com/iksnae/cost-advisor/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat    string
	exportOutputDir string
	exportSessionID string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export conversations to file",
	Long: `Export conversations to various formats (jsonl, md, yaml, json, txt).

The txt format writes the latest assistant reply as a plain-text report,
matching what the dashboard's download button produced.

You can export all conversations or a specific one by ID.
Use 'cost-advisor list' to see available session IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(loadConfig(), nil)
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		sessions := store.Sessions()
		if exportSessionID != "" {
			sess := store.Find(exportSessionID)
			if sess == nil {
				return fmt.Errorf("session not found: %s", exportSessionID)
			}
			sessions = []*internal.ChatSession{sess}
		}

		if len(sessions) == 0 {
			fmt.Println("No conversations to export.")
			return nil
		}

		if err := os.MkdirAll(exportOutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for _, sess := range sessions {
			path := filepath.Join(exportOutputDir,
				fmt.Sprintf("session_%s.%s", sess.ID, exporter.Extension()))
			if err := writeExport(exporter, sess, path); err != nil {
				return err
			}
			internal.LogInfo("Exported %s", path)
		}

		fmt.Printf("Exported %d conversation(s) to %s\n", len(sessions), exportOutputDir)
		return nil
	},
}

func writeExport(exporter export.Exporter, sess *internal.ChatSession, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	defer f.Close()

	if err := exporter.Export(sess, f); err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (jsonl, md, yaml, json, txt)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "output", "o", ".", "Output directory")
	exportCmd.Flags().StringVar(&exportSessionID, "session", "", "Export a single session by ID")
}
