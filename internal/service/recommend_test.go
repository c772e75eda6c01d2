package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibdesignproject/FuelUpFinal/internal/logging"
	"github.com/ibdesignproject/FuelUpFinal/internal/model"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

func newTestRecommender() (*service.Recommender, *recordingNotifier) {
	n := &recordingNotifier{}
	return service.NewRecommender(newTestSynthesizer(), n, logging.Discard()), n
}

func TestRecommendKeepsOnlySelectedIngredients(t *testing.T) {
	t.Parallel()
	rec, _ := newTestRecommender()
	recipes, err := rec.Recommend(context.Background(), []model.Ingredient{
		{Name: "Tomato", Selected: true},
		{Name: "Chicken", Selected: false},
		{Name: "Garlic", Selected: true},
	})
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.Equal(t, []string{"Tomato", "Garlic"}, r.Ingredients)
	}
}

func TestRecommendWithNothingSelected(t *testing.T) {
	t.Parallel()
	rec, n := newTestRecommender()
	_, err := rec.Recommend(context.Background(), []model.Ingredient{{Name: "Tomato"}})
	assert.True(t, errors.Is(err, service.ErrNoIngredientsSelected))
	assert.Equal(t, []string{"No ingredients selected"}, n.titles())

	_, err = rec.RecommendNames(context.Background(), []string{" ", ""})
	assert.ErrorIs(t, err, service.ErrNoIngredientsSelected)
}

func TestRecommendHonoursCancelledContext(t *testing.T) {
	t.Parallel()
	rec, _ := newTestRecommender()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rec.RecommendNames(ctx, []string{"Tomato"})
	assert.ErrorIs(t, err, context.Canceled)
}
