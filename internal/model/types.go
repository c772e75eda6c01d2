package model

import (
	"strings"
	"time"
)

type Ingredient struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

type NutritionInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type Recipe struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Image         string        `json:"image"`
	Description   string        `json:"description"`
	PrepTime      int           `json:"prepTime"`
	CookTime      int           `json:"cookTime"`
	Calories      int           `json:"calories"`
	Protein       int           `json:"protein"`
	Carbs         int           `json:"carbs"`
	Fat           int           `json:"fat"`
	Ingredients   []string      `json:"ingredients"`
	Instructions  []string      `json:"instructions"`
	Tags          []string      `json:"tags"`
	Rating        float64       `json:"rating,omitempty"`
	Popularity    int           `json:"popularity,omitempty"`
	TimeAdded     time.Time     `json:"timeAdded,omitzero"`
	Source        string        `json:"source,omitempty"`
	NutritionInfo NutritionInfo `json:"nutritionInfo"`
}

// HasTag reports whether the recipe carries tag, ignoring case.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealLunch     MealTime = "lunch"
	MealDinner    MealTime = "dinner"
	MealSnack     MealTime = "snack"
)

func (t MealTime) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type MealEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fat      int      `json:"fat"`
	Time     MealTime `json:"time"`
}

type NutritionLog struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	Date     string      `json:"date"`
	Water    int         `json:"water"`
	Protein  int         `json:"protein"`
	Calories int         `json:"calories"`
	Meals    []MealEntry `json:"meals"`
}

type Streaks struct {
	Water    int `json:"water"`
	Protein  int `json:"protein"`
	Calories int `json:"calories"`
}

type UserProfile struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	Weight             float64  `json:"weight"`
	Height             float64  `json:"height"`
	ActivityLevel      string   `json:"activityLevel"`
	Goals              []string `json:"goals"`
	DietaryPreferences []string `json:"dietaryPreferences"`
	Streaks            Streaks  `json:"streaks"`
}

type UserFormData struct {
	Name            string `json:"name"`
	Age             string `json:"age"`
	Weight          string `json:"weight"`
	Height          string `json:"height"`
	Sport           string `json:"sport"`
	CompetitionDate string `json:"competitionDate,omitempty"`
}

type DailyGoals struct {
	Water    int `json:"water"`
	Protein  int `json:"protein"`
	Calories int `json:"calories"`
}

type Session struct {
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"passwordHash"`
	LoggedInAt   time.Time `json:"loggedInAt"`
}
