package service

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

const SportBatchSize = 50

// SportProfile is the macro split (percent of calories) and the base calorie
// budget used for one sport's recipes.
type SportProfile struct {
	Protein  int
	Carbs    int
	Fat      int
	Calories int
}

var sportProfiles = []struct {
	sport   string
	profile SportProfile
}{
	{"basketball", SportProfile{25, 55, 20, 500}},
	{"football", SportProfile{30, 50, 20, 600}},
	{"soccer", SportProfile{20, 60, 20, 450}},
	{"tennis", SportProfile{22, 58, 20, 400}},
	{"golf", SportProfile{18, 52, 30, 350}},
	{"swimming", SportProfile{25, 60, 15, 500}},
	{"running", SportProfile{20, 65, 15, 450}},
	{"cycling", SportProfile{22, 63, 15, 500}},
	{"weightlifting", SportProfile{35, 45, 20, 550}},
	{"crossfit", SportProfile{30, 50, 20, 550}},
	{"yoga", SportProfile{18, 52, 30, 350}},
	{"pilates", SportProfile{18, 52, 30, 350}},
	{"volleyball", SportProfile{22, 55, 23, 450}},
	{"boxing", SportProfile{30, 50, 20, 500}},
	{"martial arts", SportProfile{28, 52, 20, 500}},
}

var defaultSportProfile = SportProfile{25, 55, 20, 450}

var (
	highProteinFoods = []string{"chicken breast", "salmon", "tuna", "turkey", "lean beef", "tofu", "tempeh", "eggs", "greek yogurt", "cottage cheese", "protein powder", "lentils", "chickpeas", "black beans", "quinoa"}
	highCarbFoods    = []string{"sweet potato", "brown rice", "oats", "pasta", "quinoa", "banana", "honey", "mango", "pineapple", "dates", "whole grain bread", "potatoes", "barley", "bulgur"}
	healthyFatFoods  = []string{"avocado", "olive oil", "nuts", "seeds", "nut butter", "coconut oil", "flaxseed", "chia seeds", "salmon", "whole eggs", "dark chocolate"}
)

var prepMethods = []string{"baked", "grilled", "roasted", "sautéed", "steamed", "raw", "slow-cooked", "pressure-cooked", "stir-fried", "boiled"}

var defaultRecipeTypes = []string{"meal", "bowl", "smoothie", "salad", "snack", "breakfast", "lunch", "dinner"}

var sportGroups = []struct {
	sports []string
	types  []string
}{
	{
		sports: []string{"running", "cycling", "swimming", "triathlon", "marathon"},
		types:  []string{"energy bar", "recovery smoothie", "electrolyte drink", "carb-loading pasta", "energy balls"},
	},
	{
		sports: []string{"weightlifting", "crossfit", "bodybuilding", "powerlifting", "strength training"},
		types:  []string{"protein shake", "muscle recovery meal", "bulking bowl", "mass builder", "protein pancakes"},
	},
	{
		sports: []string{"basketball", "football", "soccer", "volleyball", "hockey", "baseball"},
		types:  []string{"team snack", "quick energy boost", "halftime refuel", "post-game recovery", "game day prep"},
	},
	{
		sports: []string{"golf", "tennis", "gymnastics", "figure skating", "diving", "archery"},
		types:  []string{"brain food", "focus enhancer", "steady energy meal", "nutrient-dense snack", "mental clarity bowl"},
	},
}

// ProfileForSport returns the first profile whose sport name appears in
// sport, ignoring case, so "College Basketball" gets the basketball profile.
// Sports matching no entry get the default profile and ok=false.
func ProfileForSport(sport string) (SportProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(sport))
	if key == "" {
		return defaultSportProfile, false
	}
	for _, p := range sportProfiles {
		if strings.Contains(key, p.sport) {
			return p.profile, true
		}
	}
	return defaultSportProfile, false
}

// KnownSports lists the sports with a dedicated profile.
func KnownSports() []string {
	out := make([]string, 0, len(sportProfiles))
	for _, p := range sportProfiles {
		out = append(out, p.sport)
	}
	return out
}

// RecipeTypesForSport returns the types of the first group with a sport
// named in sport, followed by the default types. Sports outside every group
// get the defaults alone.
func RecipeTypesForSport(sport string) []string {
	key := strings.ToLower(strings.TrimSpace(sport))
	for _, g := range sportGroups {
		for _, s := range g.sports {
			if key != "" && strings.Contains(key, s) {
				return append(append([]string(nil), g.types...), defaultRecipeTypes...)
			}
		}
	}
	return append([]string(nil), defaultRecipeTypes...)
}

// SportGenerator produces randomized recipes shaped by a sport's macro
// profile. It is not safe for concurrent use; the random source is shared.
type SportGenerator struct {
	rng    *rand.Rand
	now    func() time.Time
	logger *slog.Logger
}

func NewSportGenerator(rng *rand.Rand, logger *slog.Logger) *SportGenerator {
	return &SportGenerator{rng: rng, now: time.Now, logger: logger}
}

// NewSeededRand returns a PCG source seeded with seed, or a randomly seeded
// one when seed is zero.
func NewSeededRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateSportRecipes returns SportBatchSize recipes for sport. A blank
// sport uses the default profile and types. A failure during generation is
// logged and produces an empty slice.
func (g *SportGenerator) GenerateSportRecipes(sport string) (recipes []model.Recipe) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("generate sport recipes", "panic", r, "sport", sport)
			recipes = []model.Recipe{}
		}
	}()

	sport = strings.TrimSpace(sport)
	profile, _ := ProfileForSport(sport)
	types := RecipeTypesForSport(sport)
	now := g.now()

	out := make([]model.Recipe, 0, SportBatchSize)
	for i := 1; i <= SportBatchSize; i++ {
		out = append(out, g.recipe(i, sport, profile, types, now))
	}
	return out
}

func (g *SportGenerator) recipe(i int, sport string, p SportProfile, types []string, now time.Time) model.Recipe {
	pool := g.ingredientPool(p)
	mainCount := 2 + g.rng.IntN(2)
	if mainCount > len(pool) {
		mainCount = len(pool)
	}
	mains := pool[:mainCount]

	recipeType := types[g.rng.IntN(len(types))]
	verb := prepMethods[g.rng.IntN(len(prepMethods))]

	protein := g.jitter(float64(p.Protein))
	carbs := g.jitter(float64(p.Carbs))
	fat := g.jitter(float64(p.Fat))
	calories := g.jitter(float64(p.Calories))

	lower := strings.ToLower(sport)
	return model.Recipe{
		ID:          fmt.Sprintf("sport-%d", i),
		Name:        strings.TrimSpace(fmt.Sprintf("%s %s %s %s", capitalize(lower), verb, strings.Join(mains, " & "), recipeType)),
		Description: strings.Join(strings.Fields(fmt.Sprintf("Perfect for %s athletes. High in nutrients needed for peak performance.", sport)), " "),
		PrepTime:    5 + g.rng.IntN(20),
		CookTime:    5 + g.rng.IntN(30),
		Calories:    calories,
		Protein:     protein,
		Carbs:       carbs,
		Fat:         fat,
		Ingredients: pool,
		Instructions: []string{
			fmt.Sprintf("Prepare the %s.", strings.Join(mains, " and ")),
			fmt.Sprintf("%s until done.", capitalize(verb)),
			"Combine all ingredients and serve.",
		},
		Tags:          []string{lower, recipeType, verb, "performance"},
		Rating:        float64(3 + g.rng.IntN(3)),
		Popularity:    20 + g.rng.IntN(80),
		TimeAdded:     now.Add(-time.Duration(g.rng.Float64() * float64(7*24*time.Hour))),
		Source:        "sport",
		NutritionInfo: model.NutritionInfo{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat},
	}
}

// ingredientPool draws from each food group in proportion to the profile's
// macro split, with replacement, and drops repeats keeping first occurrence.
func (g *SportGenerator) ingredientPool(p SportProfile) []string {
	draws := make([]string, 0, 10)
	draws = append(draws, g.pick(highProteinFoods, p.Protein)...)
	draws = append(draws, g.pick(highCarbFoods, p.Carbs)...)
	draws = append(draws, g.pick(healthyFatFoods, p.Fat)...)

	seen := make(map[string]struct{}, len(draws))
	pool := make([]string, 0, len(draws))
	for _, d := range draws {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		pool = append(pool, d)
	}
	return pool
}

func (g *SportGenerator) pick(foods []string, pct int) []string {
	n := int(math.Round(float64(pct) / 100 * 10))
	out := make([]string, 0, n)
	for range n {
		out = append(out, foods[g.rng.IntN(len(foods))])
	}
	return out
}

func (g *SportGenerator) jitter(v float64) int {
	return int(math.Round(v * (0.9 + g.rng.Float64()*0.2)))
}
