package service_test

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibdesignproject/FuelUpFinal/internal/logging"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

func newTestSportGenerator(seed uint64) *service.SportGenerator {
	return service.NewSportGenerator(rand.New(rand.NewPCG(seed, seed+1)), logging.Discard())
}

func TestGenerateSportRecipesBasketball(t *testing.T) {
	t.Parallel()
	for seed := uint64(1); seed <= 5; seed++ {
		recipes := newTestSportGenerator(seed).GenerateSportRecipes("Basketball")
		require.Len(t, recipes, service.SportBatchSize)
		for i, r := range recipes {
			assert.Contains(t, r.Tags, "basketball")
			assert.Contains(t, r.Tags, "performance")
			assert.Equal(t, "sport", r.Source)
			assert.Equal(t, "sport-"+strconv.Itoa(i+1), r.ID)
			assert.True(t, strings.HasPrefix(r.Name, "Basketball "), r.Name)
		}
	}
}

func TestGenerateSportRecipesRanges(t *testing.T) {
	t.Parallel()
	start := time.Now()
	recipes := newTestSportGenerator(42).GenerateSportRecipes("running")
	require.Len(t, recipes, service.SportBatchSize)

	profile, ok := service.ProfileForSport("running")
	require.True(t, ok)
	for _, r := range recipes {
		assert.GreaterOrEqual(t, r.PrepTime, 5)
		assert.LessOrEqual(t, r.PrepTime, 24)
		assert.GreaterOrEqual(t, r.CookTime, 5)
		assert.LessOrEqual(t, r.CookTime, 34)
		assert.GreaterOrEqual(t, r.Rating, 3.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
		assert.GreaterOrEqual(t, r.Popularity, 20)
		assert.LessOrEqual(t, r.Popularity, 99)
		assert.InDelta(t, profile.Calories, r.Calories, float64(profile.Calories)*0.1+1)
		assert.Equal(t, r.Calories, r.NutritionInfo.Calories)
		assert.False(t, r.TimeAdded.After(time.Now()))
		assert.True(t, r.TimeAdded.After(start.Add(-7*24*time.Hour-time.Minute)))
		assert.Len(t, r.Instructions, 3)

		seen := map[string]bool{}
		for _, ing := range r.Ingredients {
			assert.False(t, seen[ing], "duplicate ingredient %q in %q", ing, r.Name)
			seen[ing] = true
		}
		assert.GreaterOrEqual(t, len(r.Ingredients), 2)
	}
}

func TestGenerateSportRecipesSeedIsDeterministic(t *testing.T) {
	t.Parallel()
	a := newTestSportGenerator(7).GenerateSportRecipes("Soccer")
	b := newTestSportGenerator(7).GenerateSportRecipes("Soccer")
	require.Len(t, a, len(b))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Ingredients, b[i].Ingredients)
		assert.Equal(t, a[i].Calories, b[i].Calories)
	}
}

func TestGenerateSportRecipesUnknownSportUsesDefaults(t *testing.T) {
	t.Parallel()
	profile, ok := service.ProfileForSport("Curling")
	assert.False(t, ok)
	assert.Equal(t, service.SportProfile{Protein: 25, Carbs: 55, Fat: 20, Calories: 450}, profile)

	recipes := newTestSportGenerator(3).GenerateSportRecipes("Curling")
	require.Len(t, recipes, service.SportBatchSize)
	defaults := service.RecipeTypesForSport("Curling")
	for _, r := range recipes {
		assert.Contains(t, r.Tags, "curling")
		assert.Contains(t, defaults, r.Tags[1])
	}
}

func TestGenerateSportRecipesBlankSportUsesDefaults(t *testing.T) {
	t.Parallel()
	recipes := newTestSportGenerator(1).GenerateSportRecipes("  ")
	require.Len(t, recipes, service.SportBatchSize)
	defaults := service.RecipeTypesForSport("")
	require.Len(t, defaults, 8)
	for _, r := range recipes {
		assert.Contains(t, defaults, r.Tags[1])
		assert.InDelta(t, 450, r.Calories, 45.5)
		assert.False(t, strings.HasPrefix(r.Name, " "), r.Name)
	}
}

func TestGenerateSportRecipesMacrosFollowProfile(t *testing.T) {
	t.Parallel()
	for _, sport := range []string{"Basketball", "Weightlifting", "Yoga"} {
		profile, ok := service.ProfileForSport(sport)
		require.True(t, ok, sport)
		for _, r := range newTestSportGenerator(9).GenerateSportRecipes(sport) {
			assert.InDelta(t, profile.Protein, r.Protein, float64(profile.Protein)*0.1+0.5, "%s protein", sport)
			assert.InDelta(t, profile.Carbs, r.Carbs, float64(profile.Carbs)*0.1+0.5, "%s carbs", sport)
			assert.InDelta(t, profile.Fat, r.Fat, float64(profile.Fat)*0.1+0.5, "%s fat", sport)
			assert.InDelta(t, profile.Calories, r.Calories, float64(profile.Calories)*0.1+0.5, "%s calories", sport)
			assert.Equal(t, r.Protein, r.NutritionInfo.Protein)
			assert.Equal(t, r.Carbs, r.NutritionInfo.Carbs)
			assert.Equal(t, r.Fat, r.NutritionInfo.Fat)
		}
	}
}

func TestProfileForSportMatchesNamesWithinLongerText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sport string
		want  service.SportProfile
	}{
		{"College Basketball", service.SportProfile{Protein: 25, Carbs: 55, Fat: 20, Calories: 500}},
		{"pro football player", service.SportProfile{Protein: 30, Carbs: 50, Fat: 20, Calories: 600}},
		{"Martial Arts (Judo)", service.SportProfile{Protein: 28, Carbs: 52, Fat: 20, Calories: 500}},
		{"Marathon running", service.SportProfile{Protein: 20, Carbs: 65, Fat: 15, Calories: 450}},
		{"  TENNIS  ", service.SportProfile{Protein: 22, Carbs: 58, Fat: 20, Calories: 400}},
	}
	for _, tt := range tests {
		t.Run(tt.sport, func(t *testing.T) {
			got, ok := service.ProfileForSport(tt.sport)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := service.ProfileForSport("")
	assert.False(t, ok)
}

func TestRecipeTypesForSportMatchesGroupsInOrder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sport string
		first string
	}{
		{"marathon running", "energy bar"},
		{"Olympic Weightlifting", "protein shake"},
		{"ice hockey", "team snack"},
		{"College Basketball", "team snack"},
		{"competitive diving", "brain food"},
		// endurance is checked before team sports
		{"soccer and cycling", "energy bar"},
		{"chess", "meal"},
	}
	for _, tt := range tests {
		t.Run(tt.sport, func(t *testing.T) {
			types := service.RecipeTypesForSport(tt.sport)
			require.NotEmpty(t, types)
			assert.Equal(t, tt.first, types[0])
			assert.Equal(t, "dinner", types[len(types)-1])
		})
	}
}

func TestRecipeTypesForSport(t *testing.T) {
	t.Parallel()
	types := service.RecipeTypesForSport("Cycling")
	require.Len(t, types, 13)
	assert.Equal(t, "energy bar", types[0])
	assert.Equal(t, "meal", types[5])

	assert.Len(t, service.RecipeTypesForSport("yoga"), 8)
	assert.Contains(t, service.RecipeTypesForSport("Archery"), "brain food")
}

func TestKnownSports(t *testing.T) {
	t.Parallel()
	sports := service.KnownSports()
	require.Len(t, sports, 15)
	assert.Equal(t, "basketball", sports[0])
	assert.Equal(t, "martial arts", sports[14])
}
