package service_test

import (
	"testing"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

func TestFormDataSaveAndSport(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	kv := service.NewSQLiteKV(db)

	if got := service.UserSport(kv, "Basketball"); got != "Basketball" {
		t.Fatalf("expected fallback sport, got %q", got)
	}
	if err := service.SaveFormData(kv, model.UserFormData{
		Name: " Sam ", Age: "16", Weight: "60.5", Height: "170", Sport: "Swimming", CompetitionDate: "2026-04-01",
	}); err != nil {
		t.Fatalf("save form data: %v", err)
	}
	data, err := service.LoadFormData(kv)
	if err != nil || data == nil {
		t.Fatalf("load form data: %+v %v", data, err)
	}
	if data.Name != "Sam" || data.Sport != "Swimming" {
		t.Fatalf("unexpected form data: %+v", data)
	}
	if got := service.UserSport(kv, "Basketball"); got != "Swimming" {
		t.Fatalf("expected saved sport, got %q", got)
	}

	days, ok := service.DaysUntilCompetition(data, time.Date(2026, 3, 25, 22, 0, 0, 0, time.Local))
	if !ok || days != 7 {
		t.Fatalf("expected 7 days to competition, got %d ok=%v", days, ok)
	}
}

func TestFormDataValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	kv := service.NewSQLiteKV(db)

	bad := []model.UserFormData{
		{Age: "sixteen"},
		{Weight: "-3"},
		{CompetitionDate: "04/01/2026"},
	}
	for _, in := range bad {
		if err := service.SaveFormData(kv, in); err == nil {
			t.Fatalf("expected validation error for %+v", in)
		}
	}
	if data, err := service.LoadFormData(kv); err != nil || data != nil {
		t.Fatalf("expected nothing saved, got %+v err=%v", data, err)
	}
}

func TestFormDataUnreadableFallsBack(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	kv := service.NewSQLiteKV(db)
	if err := kv.Set(service.KeyUserFormData, "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := service.UserSport(kv, "Golf"); got != "Golf" {
		t.Fatalf("expected fallback sport, got %q", got)
	}
}
