package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

var catalog = []model.Recipe{
	{
		ID:          "1",
		Name:        "High-Protein Chicken Stir Fry",
		Image:       "https://images.unsplash.com/photo-1512058564366-18510be2db19",
		Description: "A protein-packed stir fry perfect for athletes",
		PrepTime:    15,
		CookTime:    10,
		Calories:    450,
		Protein:     40,
		Carbs:       30,
		Fat:         15,
		Ingredients: []string{
			"1 lb chicken breast, sliced",
			"2 cups broccoli florets",
			"1 red bell pepper, sliced",
			"1 cup snap peas",
			"2 tbsp olive oil",
			"3 cloves garlic, minced",
			"1 tbsp ginger, grated",
			"3 tbsp low-sodium soy sauce",
			"1 tbsp honey",
			"1 tsp sesame oil",
			"1 tbsp cornstarch",
		},
		Instructions: []string{
			"Slice chicken into thin strips and marinate with 1 tbsp soy sauce for 10 minutes.",
			"Mix remaining soy sauce, honey, and cornstarch in a small bowl to create sauce.",
			"Heat olive oil in a large wok or skillet over high heat.",
			"Add chicken and cook until no longer pink, about 5-6 minutes.",
			"Add garlic and ginger, stir for 30 seconds until fragrant.",
			"Add broccoli, bell pepper, and snap peas, stir-fry for 3-4 minutes until vegetables are crisp-tender.",
			"Pour sauce over the mixture, stirring constantly until thickened, about 1-2 minutes.",
			"Drizzle with sesame oil before serving.",
		},
		Tags:          []string{"high-protein", "dinner", "muscle-building", "quick"},
		Rating:        4.6,
		Popularity:    92,
		TimeAdded:     time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		Source:        "catalog",
		NutritionInfo: model.NutritionInfo{Calories: 450, Protein: 40, Carbs: 30, Fat: 15},
	},
	{
		ID:          "2",
		Name:        "Athlete's Overnight Oats",
		Image:       "https://images.unsplash.com/photo-1584913527550-a3a5a804d922",
		Description: "Prepare this the night before for a quick energy-boosting breakfast",
		PrepTime:    5,
		CookTime:    0,
		Calories:    350,
		Protein:     20,
		Carbs:       45,
		Fat:         10,
		Ingredients: []string{
			"1 cup rolled oats",
			"1 cup milk of choice",
			"1/4 cup Greek yogurt",
			"1 tbsp chia seeds",
			"1 tbsp honey or maple syrup",
			"1/2 tsp vanilla extract",
			"1/2 cup berries",
			"1 tbsp almond butter",
		},
		Instructions: []string{
			"Combine oats, milk, yogurt, chia seeds, honey, and vanilla in a jar or container.",
			"Stir well to mix all ingredients thoroughly.",
			"Seal container and refrigerate overnight or for at least 4 hours.",
			"Before eating, top with berries and a tablespoon of almond butter.",
			"Can be stored in refrigerator for up to 3 days.",
		},
		Tags:          []string{"breakfast", "pre-workout", "high-carb", "no-cook"},
		Rating:        4.3,
		Popularity:    78,
		TimeAdded:     time.Date(2025, 3, 9, 7, 30, 0, 0, time.UTC),
		Source:        "catalog",
		NutritionInfo: model.NutritionInfo{Calories: 350, Protein: 20, Carbs: 45, Fat: 10},
	},
	{
		ID:          "3",
		Name:        "Recovery Smoothie Bowl",
		Image:       "https://images.unsplash.com/photo-1546039907-9d4a26dfeee4",
		Description: "Perfect post-workout meal to aid muscle recovery",
		PrepTime:    10,
		CookTime:    0,
		Calories:    380,
		Protein:     25,
		Carbs:       50,
		Fat:         12,
		Ingredients: []string{
			"1 frozen banana",
			"1/2 cup frozen berries",
			"1 scoop protein powder (vanilla or flavor of choice)",
			"1 cup spinach",
			"1 tbsp almond butter",
			"1/2 cup almond milk",
			"Toppings: sliced banana, granola, chia seeds, berries",
		},
		Instructions: []string{
			"Place frozen banana, berries, protein powder, spinach, almond butter, and almond milk in a blender.",
			"Blend until smooth, adding more almond milk if needed for desired consistency.",
			"Pour into a bowl and top with sliced banana, granola, chia seeds, and additional berries.",
			"Consume immediately for optimal nutrition.",
		},
		Tags:          []string{"post-workout", "recovery", "high-protein", "no-cook"},
		Rating:        4.8,
		Popularity:    85,
		TimeAdded:     time.Date(2025, 2, 20, 18, 15, 0, 0, time.UTC),
		Source:        "catalog",
		NutritionInfo: model.NutritionInfo{Calories: 380, Protein: 25, Carbs: 50, Fat: 12},
	},
}

func cloneRecipe(r model.Recipe) model.Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	r.Instructions = append([]string(nil), r.Instructions...)
	r.Tags = append([]string(nil), r.Tags...)
	return r
}

// Catalog returns a copy of the hand-authored recipes.
func Catalog() []model.Recipe {
	out := make([]model.Recipe, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, cloneRecipe(r))
	}
	return out
}

func RecipeByID(id string) (model.Recipe, error) {
	id = strings.TrimSpace(id)
	for _, r := range catalog {
		if r.ID == id {
			return cloneRecipe(r), nil
		}
	}
	return model.Recipe{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, id)
}

// SearchCatalog keeps recipes that carry tag and list an ingredient line
// containing ingredient. Empty criteria match everything.
func SearchCatalog(tag, ingredient string) []model.Recipe {
	tag = normalizeName(tag)
	ingredient = normalizeName(ingredient)
	out := make([]model.Recipe, 0)
	for _, r := range catalog {
		if tag != "" && !r.HasTag(tag) {
			continue
		}
		if ingredient != "" && !anyContains(r.Ingredients, ingredient) {
			continue
		}
		out = append(out, cloneRecipe(r))
	}
	return out
}

type Range struct {
	Min int
	Max int
}

type PreferenceInput struct {
	Ingredients []string
	Dietary     []string
	MealType    string
	Calories    *Range
	Protein     *Range
	MaxPrepTime int
}

// RecommendByPreferences narrows the catalog by every criterion that is set.
// When nothing survives, the first three catalog recipes are suggested instead.
func RecommendByPreferences(in PreferenceInput) []model.Recipe {
	out := make([]model.Recipe, 0)
	for _, r := range catalog {
		if len(in.Ingredients) > 0 && !anyIngredientMatches(r.Ingredients, in.Ingredients) {
			continue
		}
		if len(in.Dietary) > 0 && !anyTagContains(r.Tags, in.Dietary) {
			continue
		}
		if in.MealType != "" && !r.HasTag(in.MealType) {
			continue
		}
		if in.Calories != nil && (r.Calories < in.Calories.Min || r.Calories > in.Calories.Max) {
			continue
		}
		if in.Protein != nil && (r.Protein < in.Protein.Min || r.Protein > in.Protein.Max) {
			continue
		}
		if in.MaxPrepTime > 0 && r.PrepTime > in.MaxPrepTime {
			continue
		}
		out = append(out, cloneRecipe(r))
	}
	if len(out) == 0 {
		all := Catalog()
		if len(all) > 3 {
			all = all[:3]
		}
		return all
	}
	return out
}

func anyContains(lines []string, needle string) bool {
	for _, l := range lines {
		if strings.Contains(strings.ToLower(l), needle) {
			return true
		}
	}
	return false
}

func anyIngredientMatches(lines, wanted []string) bool {
	for _, w := range wanted {
		if w = normalizeName(w); w != "" && anyContains(lines, w) {
			return true
		}
	}
	return false
}

func anyTagContains(tags, wanted []string) bool {
	for _, w := range wanted {
		if w = normalizeName(w); w != "" && anyContains(tags, w) {
			return true
		}
	}
	return false
}

var defaultImages = []string{
	"https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
	"https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
	"https://images.unsplash.com/photo-1467003909585-2f8a72700288",
	"https://images.unsplash.com/photo-1490645935967-10de6ba17061",
	"https://images.unsplash.com/photo-1515003197210-e0cd71810b5f",
	"https://images.unsplash.com/photo-1540189549336-e6e99c3679fe",
}

// RecipeImage returns the recipe's own image or a stock photo picked from
// the digits of its id, so the same recipe always gets the same picture.
func RecipeImage(r model.Recipe) string {
	if r.Image != "" {
		return r.Image
	}
	var n uint64
	for _, c := range r.ID {
		d := uint64(0)
		if c >= '0' && c <= '9' {
			d = uint64(c - '0')
		}
		n = (n*10 + d) % uint64(len(defaultImages))
	}
	return defaultImages[n]
}
