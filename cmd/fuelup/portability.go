package fuelup

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var (
	exportOut    string
	importIn     string
	importMode   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile, logs, form and goals as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withKV(func(kv *service.SQLiteKV) error {
			data, err := service.ExportDataSnapshot(kv, time.Now())
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export json: %w", err)
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d document(s) to %s\n", len(data.Documents), exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		mode := service.ImportMode(strings.ToLower(strings.TrimSpace(importMode)))
		switch mode {
		case service.ImportModeFail, service.ImportModeSkip, service.ImportModeMerge, service.ImportModeReplace:
		default:
			return fmt.Errorf("--mode must be one of fail, skip, merge, replace")
		}
		b, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		var data service.ExportData
		if err := json.Unmarshal(b, &data); err != nil {
			return fmt.Errorf("parse import json: %w", err)
		}
		return withKV(func(kv *service.SQLiteKV) error {
			report, err := service.ImportDataSnapshotWithOptions(kv, &data, service.ImportOptions{Mode: mode, DryRun: importDryRun})
			if err != nil {
				return err
			}
			for _, w := range report.Warnings {
				logger.Warn("import", "warning", w)
			}
			prefix := "Imported"
			if importDryRun {
				prefix = "Dry run"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d inserted, %d updated, %d skipped\n", prefix, report.Inserted, report.Updated, report.Skipped)
			return nil
		})
	},
}

func init() {
	dataCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	importCmd.Flags().StringVar(&importMode, "mode", "merge", "Conflict mode: fail, skip, merge, replace")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would change without writing")
}
