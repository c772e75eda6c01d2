package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

func SaveFormData(kv KVStore, in model.UserFormData) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Sport = strings.TrimSpace(in.Sport)
	in.CompetitionDate = strings.TrimSpace(in.CompetitionDate)
	for _, f := range []struct {
		name  string
		value string
	}{{"age", in.Age}, {"weight", in.Weight}, {"height", in.Height}} {
		v := strings.TrimSpace(f.value)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q", f.name, f.value)
		}
		if err := validateNonNegativeFloat(f.name, n); err != nil {
			return err
		}
	}
	if in.CompetitionDate != "" {
		if _, err := time.Parse(dateLayout, in.CompetitionDate); err != nil {
			return fmt.Errorf("invalid competition date %q (expected YYYY-MM-DD)", in.CompetitionDate)
		}
	}
	return setJSON(kv, KeyUserFormData, in)
}

func LoadFormData(kv KVStore) (*model.UserFormData, error) {
	var data model.UserFormData
	ok, err := getJSON(kv, KeyUserFormData, &data)
	if err != nil || !ok {
		return nil, err
	}
	return &data, nil
}

// UserSport is the sport from the saved profile form, or fallback when the
// form is missing, unreadable, or has no sport.
func UserSport(kv KVStore, fallback string) string {
	data, err := LoadFormData(kv)
	if err != nil || data == nil || strings.TrimSpace(data.Sport) == "" {
		return fallback
	}
	return data.Sport
}

// DaysUntilCompetition counts whole local days from now to the saved
// competition date. ok is false when no date is set.
func DaysUntilCompetition(data *model.UserFormData, now time.Time) (days int, ok bool) {
	if data == nil || data.CompetitionDate == "" {
		return 0, false
	}
	target, err := time.ParseInLocation(dateLayout, data.CompetitionDate, time.Local)
	if err != nil {
		return 0, false
	}
	today, _ := time.ParseInLocation(dateLayout, dateKey(now), time.Local)
	return int(math.Round(target.Sub(today).Hours() / 24)), true
}
