package service

import (
	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

type TodayStatus struct {
	Date              string            `json:"date"`
	Water             int               `json:"water"`
	Protein           int               `json:"protein"`
	Calories          int               `json:"calories"`
	Carbs             int               `json:"carbs"`
	Fat               int               `json:"fat"`
	Meals             []model.MealEntry `json:"meals"`
	Goals             model.DailyGoals  `json:"goals"`
	RemainingWater    int               `json:"remaining_water"`
	RemainingProtein  int               `json:"remaining_protein"`
	RemainingCalories int               `json:"remaining_calories"`
	WaterPct          int               `json:"water_pct"`
	ProteinPct        int               `json:"protein_pct"`
	CaloriesPct       int               `json:"calories_pct"`
	Streaks           model.Streaks     `json:"streaks"`
}

// TodaySummary reports today's totals against the daily goals. Water,
// protein and calories come from the log aggregates; carbs and fat are summed
// from the meals because the log keeps no running total for them.
func TodaySummary(store *ProfileStore, kv KVStore) (*TodayStatus, error) {
	user := store.CurrentUser()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	goals, err := CurrentGoals(kv)
	if err != nil {
		return nil, err
	}
	status := &TodayStatus{
		Date:    dateKey(store.now()),
		Goals:   goals,
		Streaks: user.Streaks,
		Meals:   []model.MealEntry{},
	}
	if log := store.TodayNutritionLog(); log != nil {
		status.Water = log.Water
		status.Protein = log.Protein
		status.Calories = log.Calories
		status.Meals = log.Meals
		for _, m := range log.Meals {
			status.Carbs += m.Carbs
			status.Fat += m.Fat
		}
	}
	status.RemainingWater = goals.Water - status.Water
	status.RemainingProtein = goals.Protein - status.Protein
	status.RemainingCalories = goals.Calories - status.Calories
	status.WaterPct = progressPercent(status.Water, goals.Water)
	status.ProteinPct = progressPercent(status.Protein, goals.Protein)
	status.CaloriesPct = progressPercent(status.Calories, goals.Calories)
	return status, nil
}
