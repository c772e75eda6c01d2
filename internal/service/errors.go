package service

import "errors"

var (
	// ErrNotLoggedIn is returned by profile mutations before a user exists.
	ErrNotLoggedIn = errors.New("no active user; run login first")

	ErrInvalidAmount         = errors.New("amount must be > 0")
	ErrInvalidMealTime       = errors.New("meal time must be one of breakfast, lunch, dinner, snack")
	ErrNoIngredientsSelected = errors.New("select at least one ingredient")
	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrNotFuelUpBackup       = errors.New("not a fuelup database")
)
