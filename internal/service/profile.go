package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

// Daily thresholds that trigger a streak increment.
const (
	WaterThresholdML      = 2000
	ProteinThresholdG     = 120
	CaloriesThresholdKcal = 2500
)

const (
	mockUserID           = "1"
	defaultActivityLevel = "high"
)

type AddMealInput struct {
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Time     model.MealTime
}

type UpdateProfileInput struct {
	Name               *string
	Age                *int
	Weight             *float64
	Height             *float64
	ActivityLevel      *string
	Goals              []string
	DietaryPreferences []string
}

// ProfileStore owns the single active user's profile and nutrition logs.
// Every mutation is written through to the key-value store; write failures
// are logged and the in-memory state keeps serving.
type ProfileStore struct {
	kv       KVStore
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	user *model.UserProfile
	logs []model.NutritionLog
}

type ProfileOption func(*ProfileStore)

// WithClock overrides the clock used to pick today's log.
func WithClock(now func() time.Time) ProfileOption {
	return func(s *ProfileStore) { s.now = now }
}

func NewProfileStore(kv KVStore, notifier Notifier, logger *slog.Logger, opts ...ProfileOption) *ProfileStore {
	s := &ProfileStore{
		kv:       kv,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *ProfileStore) load() {
	var user model.UserProfile
	ok, err := getJSON(s.kv, KeyUserProfile, &user)
	if err != nil {
		s.logger.Error("load user profile", "err", err)
	} else if ok {
		s.user = &user
	}

	var logs []model.NutritionLog
	if _, err := getJSON(s.kv, KeyNutritionLogs, &logs); err != nil {
		s.logger.Error("load nutrition logs", "err", err)
	} else {
		s.logs = logs
	}
}

func (s *ProfileStore) save() {
	if s.user != nil {
		if err := setJSON(s.kv, KeyUserProfile, s.user); err != nil {
			s.logger.Error("save user profile", "err", err)
		}
	}
	logs := s.logs
	if logs == nil {
		logs = []model.NutritionLog{}
	}
	if err := setJSON(s.kv, KeyNutritionLogs, logs); err != nil {
		s.logger.Error("save nutrition logs", "err", err)
	}
}

// Login provisions the mock athlete profile and a seeded log for today on
// first use. Credentials are recorded but never verified, so it always succeeds.
func (s *ProfileStore) Login(phone, password string) bool {
	s.recordSession(phone, password)

	if s.user != nil {
		s.notifier.Notify("Welcome back!", "You are now logged in.")
		return true
	}

	s.user = &model.UserProfile{
		ID:                 mockUserID,
		Name:               "Alex Smith",
		Age:                17,
		Weight:             68,
		Height:             175,
		ActivityLevel:      defaultActivityLevel,
		Goals:              []string{"Build muscle", "Improve endurance"},
		DietaryPreferences: []string{"High protein", "Low sugar"},
		Streaks:            model.Streaks{Water: 3, Protein: 5, Calories: 2},
	}
	// The seeded totals are running tallies, not the sum of the seeded meals.
	s.logs = append(s.logs, model.NutritionLog{
		ID:       uuid.NewString(),
		UserID:   mockUserID,
		Date:     dateKey(s.now()),
		Water:    1200,
		Protein:  45,
		Calories: 1500,
		Meals: []model.MealEntry{
			{ID: uuid.NewString(), Name: "Protein Oatmeal", Calories: 350, Protein: 20, Carbs: 45, Fat: 8, Time: model.MealBreakfast},
			{ID: uuid.NewString(), Name: "Chicken Salad", Calories: 450, Protein: 35, Carbs: 15, Fat: 20, Time: model.MealLunch},
		},
	})
	s.save()

	s.notifier.Notify("Welcome to FuelUp!", "Your account has been created successfully.")
	return true
}

func (s *ProfileStore) recordSession(phone, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash session password", "err", err)
		return
	}
	session := model.Session{
		Phone:        strings.TrimSpace(phone),
		PasswordHash: string(hash),
		LoggedInAt:   s.now(),
	}
	if err := setJSON(s.kv, KeySession, session); err != nil {
		s.logger.Error("save session", "err", err)
	}
}

// Logout ends the session. The profile and logs are kept for the next login.
func (s *ProfileStore) Logout() {
	if err := s.kv.Delete(KeySession); err != nil {
		s.logger.Error("clear session", "err", err)
	}
	s.notifier.Notify("Logged out", "You have been logged out successfully.")
}

// Session returns the recorded login, if any.
func (s *ProfileStore) Session() (*model.Session, error) {
	var session model.Session
	ok, err := getJSON(s.kv, KeySession, &session)
	if err != nil || !ok {
		return nil, err
	}
	return &session, nil
}

func (s *ProfileStore) CurrentUser() *model.UserProfile {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// TodayNutritionLog returns a copy of today's log, or nil when nothing has
// been logged today.
func (s *ProfileStore) TodayNutritionLog() *model.NutritionLog {
	idx := s.todayIndex()
	if idx < 0 {
		return nil
	}
	log := s.logs[idx]
	log.Meals = append([]model.MealEntry(nil), log.Meals...)
	return &log
}

// Logs returns every stored log ordered by date, newest first.
func (s *ProfileStore) Logs() []model.NutritionLog {
	out := append([]model.NutritionLog(nil), s.logs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func (s *ProfileStore) todayIndex() int {
	today := dateKey(s.now())
	for i := range s.logs {
		if s.logs[i].Date == today {
			return i
		}
	}
	return -1
}

func (s *ProfileStore) ensureTodayLog() *model.NutritionLog {
	if idx := s.todayIndex(); idx >= 0 {
		return &s.logs[idx]
	}
	s.logs = append(s.logs, model.NutritionLog{
		ID:     uuid.NewString(),
		UserID: s.user.ID,
		Date:   dateKey(s.now()),
		Meals:  []model.MealEntry{},
	})
	return &s.logs[len(s.logs)-1]
}

func (s *ProfileStore) UpdateWaterIntake(amountML int) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	if amountML <= 0 {
		s.notifier.Notify("Invalid amount", "Water intake must be greater than zero.")
		return ErrInvalidAmount
	}

	log := s.ensureTodayLog()
	log.Water += amountML

	// Fires only while the counter is zero; a nonzero streak is left alone.
	if log.Water >= WaterThresholdML && s.user.Streaks.Water == 0 {
		s.user.Streaks.Water++
		s.notifier.Notify("Water Streak Updated!", fmt.Sprintf("You're on a %d day streak!", s.user.Streaks.Water))
	}

	s.save()
	s.notifier.Notify("Water Logged", fmt.Sprintf("%d ml added. Today's total: %d ml.", amountML, log.Water))
	return nil
}

func (s *ProfileStore) AddMeal(in AddMealInput) (*model.MealEntry, error) {
	if s.user == nil {
		return nil, ErrNotLoggedIn
	}
	if err := validateMealInput(in); err != nil {
		s.notifier.Notify("Invalid meal", err.Error())
		return nil, err
	}

	log := s.ensureTodayLog()
	meal := model.MealEntry{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Time:     in.Time,
	}
	log.Meals = append(log.Meals, meal)
	log.Calories += meal.Calories
	log.Protein += meal.Protein

	if log.Protein >= ProteinThresholdG && s.user.Streaks.Protein == 0 {
		s.user.Streaks.Protein++
		s.notifier.Notify("Protein Streak Updated!", fmt.Sprintf("You're on a %d day streak!", s.user.Streaks.Protein))
	}
	if log.Calories >= CaloriesThresholdKcal && s.user.Streaks.Calories == 0 {
		s.user.Streaks.Calories++
		s.notifier.Notify("Calorie Streak Updated!", fmt.Sprintf("You're on a %d day streak!", s.user.Streaks.Calories))
	}

	s.save()
	s.notifier.Notify("Meal Added", fmt.Sprintf("%s has been added to your log.", meal.Name))
	return &meal, nil
}

// AddRecipeAsMeal logs one serving of recipe at the given meal time.
func (s *ProfileStore) AddRecipeAsMeal(recipe model.Recipe, at model.MealTime) (*model.MealEntry, error) {
	return s.AddMeal(AddMealInput{
		Name:     recipe.Name,
		Calories: recipe.Calories,
		Protein:  recipe.Protein,
		Carbs:    recipe.Carbs,
		Fat:      recipe.Fat,
		Time:     at,
	})
}

func (s *ProfileStore) ResetStreaks() error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	s.user.Streaks = model.Streaks{}
	s.save()
	s.notifier.Notify("Streaks reset", "All streak counters are back to zero.")
	return nil
}

func (s *ProfileStore) UpdateProfile(in UpdateProfileInput) (*model.UserProfile, error) {
	if s.user == nil {
		return nil, ErrNotLoggedIn
	}
	next := *s.user
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("name must not be empty")
		}
		next.Name = name
	}
	if in.Age != nil {
		if err := validateNonNegativeInt("age", *in.Age); err != nil {
			return nil, err
		}
		next.Age = *in.Age
	}
	if in.Weight != nil {
		if err := validateNonNegativeFloat("weight", *in.Weight); err != nil {
			return nil, err
		}
		next.Weight = *in.Weight
	}
	if in.Height != nil {
		if err := validateNonNegativeFloat("height", *in.Height); err != nil {
			return nil, err
		}
		next.Height = *in.Height
	}
	if in.ActivityLevel != nil {
		level := normalizeName(*in.ActivityLevel)
		switch level {
		case "low", "moderate", "high":
		default:
			return nil, fmt.Errorf("activity level must be one of low, moderate, high")
		}
		next.ActivityLevel = level
	}
	if in.Goals != nil {
		next.Goals = in.Goals
	}
	if in.DietaryPreferences != nil {
		next.DietaryPreferences = in.DietaryPreferences
	}
	s.user = &next
	s.save()
	s.notifier.Notify("Profile updated", "Your profile changes have been saved.")
	return s.CurrentUser(), nil
}

func validateMealInput(in AddMealInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("meal name is required")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return err
	}
	if err := validateNonNegativeInt("protein", in.Protein); err != nil {
		return err
	}
	if err := validateNonNegativeInt("carbs", in.Carbs); err != nil {
		return err
	}
	if err := validateNonNegativeInt("fat", in.Fat); err != nil {
		return err
	}
	if !in.Time.Valid() {
		return ErrInvalidMealTime
	}
	return nil
}
