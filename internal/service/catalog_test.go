package service_test

import (
	"errors"
	"testing"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

func TestCatalogReturnsCopies(t *testing.T) {
	t.Parallel()
	first := service.Catalog()
	if len(first) != 3 {
		t.Fatalf("expected 3 catalog recipes, got %d", len(first))
	}
	first[0].Tags[0] = "mutated"
	first[0].Name = "mutated"

	again := service.Catalog()
	if again[0].Name == "mutated" || again[0].Tags[0] == "mutated" {
		t.Fatalf("expected catalog to be immutable, got %+v", again[0])
	}
	for _, r := range again {
		if r.NutritionInfo.Calories != r.Calories || r.NutritionInfo.Protein != r.Protein {
			t.Fatalf("expected nutritionInfo to mirror macros for %q", r.Name)
		}
	}
}

func TestRecipeByID(t *testing.T) {
	t.Parallel()
	r, err := service.RecipeByID("2")
	if err != nil {
		t.Fatalf("recipe by id: %v", err)
	}
	if r.Name != "Athlete's Overnight Oats" {
		t.Fatalf("unexpected recipe: %q", r.Name)
	}
	if _, err := service.RecipeByID("99"); !errors.Is(err, service.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestSearchCatalog(t *testing.T) {
	t.Parallel()
	byTag := service.SearchCatalog("High-Protein", "")
	if len(byTag) != 2 {
		t.Fatalf("expected 2 high-protein recipes, got %d", len(byTag))
	}
	byIngredient := service.SearchCatalog("", "banana")
	if len(byIngredient) != 1 || byIngredient[0].ID != "3" {
		t.Fatalf("expected recovery bowl for banana, got %+v", byIngredient)
	}
	both := service.SearchCatalog("breakfast", "chicken")
	if len(both) != 0 {
		t.Fatalf("expected no match, got %d", len(both))
	}
}

func TestRecommendByPreferences(t *testing.T) {
	t.Parallel()
	out := service.RecommendByPreferences(service.PreferenceInput{
		Protein:     &service.Range{Min: 30, Max: 60},
		MaxPrepTime: 20,
	})
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("expected stir fry only, got %+v", out)
	}

	out = service.RecommendByPreferences(service.PreferenceInput{MealType: "no-cook", Dietary: []string{"recovery"}})
	if len(out) != 1 || out[0].ID != "3" {
		t.Fatalf("expected smoothie bowl only, got %+v", out)
	}

	fallback := service.RecommendByPreferences(service.PreferenceInput{Ingredients: []string{"durian"}})
	if len(fallback) != 3 {
		t.Fatalf("expected fallback to 3 recipes, got %d", len(fallback))
	}
}

func TestRecipeImageIsStable(t *testing.T) {
	t.Parallel()
	withImage := model.Recipe{ID: "1", Image: "https://example.com/a.jpg"}
	if got := service.RecipeImage(withImage); got != withImage.Image {
		t.Fatalf("expected own image, got %q", got)
	}
	r := model.Recipe{ID: "sport-12"}
	a, b := service.RecipeImage(r), service.RecipeImage(r)
	if a == "" || a != b {
		t.Fatalf("expected stable fallback image, got %q and %q", a, b)
	}
}
