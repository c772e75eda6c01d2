package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/db"
	"github.com/ibdesignproject/FuelUpFinal/internal/logging"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fuelup.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

type notification struct {
	Title       string
	Description string
}

type recordingNotifier struct {
	got []notification
}

func (n *recordingNotifier) Notify(title, description string) {
	n.got = append(n.got, notification{Title: title, Description: description})
}

func (n *recordingNotifier) titles() []string {
	out := make([]string, 0, len(n.got))
	for _, g := range n.got {
		out = append(out, g.Title)
	}
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// newTestStore returns a profile store over a fresh database with the clock
// pinned to now.
func newTestStore(t *testing.T, now time.Time) (*service.ProfileStore, *service.SQLiteKV, *recordingNotifier) {
	t.Helper()
	sqldb := newTestDB(t)
	t.Cleanup(func() { _ = sqldb.Close() })
	kv := service.NewSQLiteKV(sqldb)
	n := &recordingNotifier{}
	store := service.NewProfileStore(kv, n, logging.Discard(), service.WithClock(fixedClock(now)))
	return store, kv, n
}
