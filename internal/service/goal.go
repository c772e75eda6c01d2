package service

import (
	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

func DefaultGoals() model.DailyGoals {
	return model.DailyGoals{
		Water:    WaterThresholdML,
		Protein:  ProteinThresholdG,
		Calories: CaloriesThresholdKcal,
	}
}

func SetGoals(kv KVStore, in model.DailyGoals) error {
	if err := validateNonNegativeInt("water", in.Water); err != nil {
		return err
	}
	if err := validateNonNegativeInt("protein", in.Protein); err != nil {
		return err
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return err
	}
	return setJSON(kv, KeyNutritionGoals, in)
}

// CurrentGoals returns the saved daily targets, falling back to the streak
// thresholds when none were saved.
func CurrentGoals(kv KVStore) (model.DailyGoals, error) {
	goals := DefaultGoals()
	if _, err := getJSON(kv, KeyNutritionGoals, &goals); err != nil {
		return DefaultGoals(), err
	}
	return goals, nil
}

func progressPercent(actual, target int) int {
	if target == 0 {
		if actual == 0 {
			return 0
		}
		return 100
	}
	return actual * 100 / target
}
