package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/db"
	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// BackupContents summarises the documents held in a backup snapshot.
type BackupContents struct {
	Path       string   `json:"path"`
	Keys       []string `json:"keys"`
	LogDays    int      `json:"log_days"`
	Meals      int      `json:"meals"`
	HasProfile bool     `json:"has_profile"`
	HasSession bool     `json:"has_session"`
}

// DoctorReport counts problems found in the stored documents. Log totals are
// running tallies kept apart from the meal list, so a total that falls below
// its meals is reported as drift but does not make the report unhealthy.
type DoctorReport struct {
	UndecodableKeys   []string `json:"undecodable_keys,omitempty"`
	TotalsBelowMeals  int      `json:"totals_below_meals"`
	DuplicateLogDates int      `json:"duplicate_log_dates"`
	InvalidMealTimes  int      `json:"invalid_meal_times"`
	NegativeValues    int      `json:"negative_values"`
	FixedLogs         int      `json:"fixed_logs,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return len(r.UndecodableKeys) == 0 && r.DuplicateLogDates == 0 &&
		r.InvalidMealTimes == 0 && r.NegativeValues == 0
}

func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return BackupInfo{}, fmt.Errorf("db path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dbPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if _, err := InspectBackup(backupPath); err != nil {
		return fmt.Errorf("refusing to restore %s: %w", backupPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	if err := copyFile(backupPath, dbPath); err != nil {
		return err
	}
	// A leftover WAL would be replayed over the restored file on next open.
	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale %s: %w", suffix, err)
		}
	}
	return nil
}

// InspectBackup opens a snapshot read-only and reports which documents it
// holds. Files without the key-value table are rejected with ErrNotFuelUpBackup.
func InspectBackup(path string) (BackupContents, error) {
	out := BackupContents{Path: path, Keys: []string{}}
	if _, err := os.Stat(path); err != nil {
		return out, fmt.Errorf("stat backup: %w", err)
	}
	sqldb, err := db.OpenReadOnly(path)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrNotFuelUpBackup, err)
	}
	defer sqldb.Close()

	var tables int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'`).Scan(&tables); err != nil {
		return out, fmt.Errorf("%w: %v", ErrNotFuelUpBackup, err)
	}
	if tables == 0 {
		return out, ErrNotFuelUpBackup
	}

	kv := NewSQLiteKV(sqldb)
	entries, err := kv.List()
	if err != nil {
		return out, err
	}
	for _, e := range entries {
		out.Keys = append(out.Keys, e.Key)
		switch e.Key {
		case KeyUserProfile:
			out.HasProfile = true
		case KeySession:
			out.HasSession = true
		}
	}

	var logs []model.NutritionLog
	if _, err := getJSON(kv, KeyNutritionLogs, &logs); err != nil {
		return out, err
	}
	days := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		days[l.Date] = struct{}{}
		out.Meals += len(l.Meals)
	}
	out.LogDays = len(days)
	return out, nil
}

func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// RunDoctor inspects every known key. With fix, log totals that fall below
// their meals are raised to the meal sums and the logs are written back.
func RunDoctor(kv KVStore, fix bool) (DoctorReport, error) {
	report := DoctorReport{}

	decoders := []struct {
		key string
		dst any
	}{
		{KeyUserProfile, &model.UserProfile{}},
		{KeyUserFormData, &model.UserFormData{}},
		{KeyNutritionGoals, &model.DailyGoals{}},
		{KeySession, &model.Session{}},
	}
	for _, d := range decoders {
		if _, err := getJSON(kv, d.key, d.dst); err != nil {
			if !isDecodeError(err) {
				return report, fmt.Errorf("doctor read %s: %w", d.key, err)
			}
			report.UndecodableKeys = append(report.UndecodableKeys, d.key)
		}
	}

	var logs []model.NutritionLog
	if _, err := getJSON(kv, KeyNutritionLogs, &logs); err != nil {
		if !isDecodeError(err) {
			return report, fmt.Errorf("doctor read %s: %w", KeyNutritionLogs, err)
		}
		report.UndecodableKeys = append(report.UndecodableKeys, KeyNutritionLogs)
		return report, nil
	}

	seen := make(map[string]int, len(logs))
	changed := false
	for i := range logs {
		l := &logs[i]
		seen[l.Date]++
		if seen[l.Date] == 2 {
			report.DuplicateLogDates++
		}
		if l.Water < 0 || l.Protein < 0 || l.Calories < 0 {
			report.NegativeValues++
		}

		mealCalories, mealProtein := 0, 0
		for _, m := range l.Meals {
			if !m.Time.Valid() {
				report.InvalidMealTimes++
			}
			if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
				report.NegativeValues++
			}
			mealCalories += m.Calories
			mealProtein += m.Protein
		}
		if l.Calories < mealCalories || l.Protein < mealProtein {
			report.TotalsBelowMeals++
			if fix {
				l.Calories = max(l.Calories, mealCalories)
				l.Protein = max(l.Protein, mealProtein)
				report.FixedLogs++
				changed = true
			}
		}
	}

	if changed {
		if err := setJSON(kv, KeyNutritionLogs, logs); err != nil {
			return report, fmt.Errorf("doctor fix logs: %w", err)
		}
	}
	return report, nil
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CheckpointWAL folds the write-ahead log into the main database file so a
// plain file copy captures every committed write.
func CheckpointWAL(sqldb *sql.DB) error {
	if _, err := sqldb.Exec(`PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return fmt.Errorf("checkpoint wal: %w", err)
	}
	return nil
}
