package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

func filterFixture() []model.Recipe {
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return []model.Recipe{
		{ID: "a", Name: "Banana Oats", Description: "Quick breakfast", Popularity: 40, TimeAdded: base.Add(2 * time.Hour)},
		{ID: "b", Name: "Chicken Bowl", Description: "Lean protein lunch", Popularity: 90},
		{ID: "c", Name: "Salmon Plate", Description: "Omega-3 dinner with oats crumble", Popularity: 40, TimeAdded: base.Add(5 * time.Hour)},
		{ID: "d", Name: "Protein Shake", Description: "Post-workout", Popularity: 75, TimeAdded: base},
	}
}

func ids(recipes []model.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterRecipesPopularIsNonIncreasing(t *testing.T) {
	t.Parallel()
	out := service.FilterRecipes(filterFixture(), nil, "", service.FilterPopular)
	require.Len(t, out, 4)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Popularity, out[i].Popularity)
	}
	// Ties keep input order.
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(out))
}

func TestFilterRecipesRecentIsNonIncreasing(t *testing.T) {
	t.Parallel()
	out := service.FilterRecipes(filterFixture(), nil, "", service.FilterRecent)
	require.Len(t, out, 4)
	assert.Equal(t, []string{"c", "a", "d", "b"}, ids(out))
	for i := 1; i < len(out)-1; i++ {
		assert.False(t, out[i].TimeAdded.After(out[i-1].TimeAdded))
	}
}

func TestFilterRecipesSearchTerm(t *testing.T) {
	t.Parallel()
	out := service.FilterRecipes(filterFixture(), nil, "OATS", service.FilterAll)
	assert.Equal(t, []string{"a", "c"}, ids(out))

	out = service.FilterRecipes(filterFixture(), nil, "nothing matches", service.FilterAll)
	assert.Empty(t, out)
}

func TestFilterRecipesSportModeUsesSportPool(t *testing.T) {
	t.Parallel()
	sport := []model.Recipe{{ID: "sport-1", Name: "Basketball grilled tuna meal"}}
	out := service.FilterRecipes(filterFixture(), sport, "", service.FilterSport)
	assert.Equal(t, []string{"sport-1"}, ids(out))

	out = service.FilterRecipes(filterFixture(), sport, "tuna", service.FilterAll)
	assert.Empty(t, out)
}

func TestFilterRecipesDoesNotReorderInput(t *testing.T) {
	t.Parallel()
	in := filterFixture()
	_ = service.FilterRecipes(in, nil, "", service.FilterPopular)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(in))
}

func TestParseFilterMode(t *testing.T) {
	t.Parallel()
	mode, err := service.ParseFilterMode("")
	require.NoError(t, err)
	assert.Equal(t, service.FilterAll, mode)

	mode, err = service.ParseFilterMode(" Recent ")
	require.NoError(t, err)
	assert.Equal(t, service.FilterRecent, mode)

	_, err = service.ParseFilterMode("trending")
	assert.Error(t, err)
}
