package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

const exportFormatVersion = 1

// ExportData is a portable snapshot of every stored document, keyed the
// same way as the key-value store.
type ExportData struct {
	Version    int                        `json:"version"`
	ExportedAt time.Time                  `json:"exported_at"`
	Documents  map[string]json.RawMessage `json:"documents"`
}

type ImportMode string

const (
	ImportModeFail    ImportMode = "fail"
	ImportModeSkip    ImportMode = "skip"
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Inserted  int      `json:"inserted"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Conflicts int      `json:"conflicts"`
	Warnings  []string `json:"warnings,omitempty"`
}

// KVLister is a store that can enumerate its keys.
type KVLister interface {
	KVStore
	List() ([]KVEntry, error)
}

// portableKeys are exported and imported; the session never leaves the device.
var portableKeys = map[string]func() any{
	KeyUserProfile:    func() any { return &model.UserProfile{} },
	KeyNutritionLogs:  func() any { return &[]model.NutritionLog{} },
	KeyUserFormData:   func() any { return &model.UserFormData{} },
	KeyNutritionGoals: func() any { return &model.DailyGoals{} },
}

func ExportDataSnapshot(kv KVLister, now time.Time) (*ExportData, error) {
	entries, err := kv.List()
	if err != nil {
		return nil, err
	}
	out := &ExportData{
		Version:    exportFormatVersion,
		ExportedAt: now.UTC(),
		Documents:  make(map[string]json.RawMessage, len(entries)),
	}
	for _, e := range entries {
		if _, ok := portableKeys[e.Key]; !ok {
			continue
		}
		raw, ok, err := kv.Get(e.Key)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", e.Key, err)
		}
		if !ok {
			continue
		}
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("export %s: stored value is not valid JSON", e.Key)
		}
		out.Documents[e.Key] = json.RawMessage(raw)
	}
	return out, nil
}

func ImportDataSnapshot(kv KVStore, data *ExportData) (ImportReport, error) {
	return ImportDataSnapshotWithOptions(kv, data, ImportOptions{Mode: ImportModeMerge})
}

// ImportDataSnapshotWithOptions writes the snapshot's documents. Existing keys
// are handled per mode: fail aborts before anything is written, skip keeps
// the stored value, replace overwrites it. merge behaves like skip except
// for nutrition logs, where days missing locally are appended.
func ImportDataSnapshotWithOptions(kv KVStore, data *ExportData, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	if data == nil {
		return report, fmt.Errorf("import data is required")
	}
	if data.Version > exportFormatVersion {
		return report, fmt.Errorf("unsupported export version %d", data.Version)
	}
	mode := normalizeImportMode(opts.Mode)

	keys := make([]string, 0, len(data.Documents))
	for k := range data.Documents {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	type write struct {
		key   string
		value string
	}
	writes := make([]write, 0, len(keys))

	for _, key := range keys {
		newValue, ok := portableKeys[key]
		if !ok {
			report.Warnings = append(report.Warnings, fmt.Sprintf("skipped unknown key %q", key))
			report.Skipped++
			continue
		}
		raw := data.Documents[key]
		if err := json.Unmarshal(raw, newValue()); err != nil {
			return report, fmt.Errorf("import %s: %w", key, err)
		}

		existing, exists, err := kv.Get(key)
		if err != nil {
			return report, err
		}
		if !exists {
			writes = append(writes, write{key, string(raw)})
			report.Inserted++
			continue
		}

		switch mode {
		case ImportModeFail:
			report.Conflicts++
		case ImportModeSkip:
			report.Skipped++
		case ImportModeReplace:
			writes = append(writes, write{key, string(raw)})
			report.Updated++
		case ImportModeMerge:
			if key != KeyNutritionLogs {
				report.Skipped++
				continue
			}
			merged, added, err := mergeLogs(existing, raw)
			if err != nil {
				return report, err
			}
			if added == 0 {
				report.Skipped++
				continue
			}
			writes = append(writes, write{key, merged})
			report.Updated++
		}
	}

	if report.Conflicts > 0 {
		return report, fmt.Errorf("import conflicts with %d existing document(s); use --mode skip, merge or replace", report.Conflicts)
	}
	if opts.DryRun {
		return report, nil
	}
	for _, w := range writes {
		if err := kv.Set(w.key, w.value); err != nil {
			return report, fmt.Errorf("import %s: %w", w.key, err)
		}
	}
	return report, nil
}

// mergeLogs appends imported days that are not already logged locally.
func mergeLogs(existingRaw string, importedRaw json.RawMessage) (string, int, error) {
	var existing, imported []model.NutritionLog
	if err := json.Unmarshal([]byte(existingRaw), &existing); err != nil {
		return "", 0, fmt.Errorf("decode stored logs: %w", err)
	}
	if err := json.Unmarshal(importedRaw, &imported); err != nil {
		return "", 0, fmt.Errorf("decode imported logs: %w", err)
	}
	have := make(map[string]struct{}, len(existing))
	for _, l := range existing {
		have[l.Date] = struct{}{}
	}
	added := 0
	for _, l := range imported {
		if _, ok := have[l.Date]; ok {
			continue
		}
		have[l.Date] = struct{}{}
		existing = append(existing, l)
		added++
	}
	b, err := json.Marshal(existing)
	if err != nil {
		return "", 0, fmt.Errorf("encode merged logs: %w", err)
	}
	return string(b), added, nil
}

func normalizeImportMode(mode ImportMode) ImportMode {
	switch mode {
	case ImportModeFail, ImportModeSkip, ImportModeMerge, ImportModeReplace:
		return mode
	default:
		return ImportModeMerge
	}
}
