package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

// Recommender answers recipe requests for a set of ingredients.
type Recommender struct {
	synth    *Synthesizer
	notifier Notifier
	logger   *slog.Logger
}

func NewRecommender(synth *Synthesizer, notifier Notifier, logger *slog.Logger) *Recommender {
	return &Recommender{synth: synth, notifier: notifier, logger: logger}
}

// Recommend returns recipes built from the selected ingredients only.
func (r *Recommender) Recommend(ctx context.Context, ingredients []model.Ingredient) ([]model.Recipe, error) {
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing.Selected && strings.TrimSpace(ing.Name) != "" {
			names = append(names, strings.TrimSpace(ing.Name))
		}
	}
	return r.RecommendNames(ctx, names)
}

// RecommendNames treats every non-blank name as selected.
func (r *Recommender) RecommendNames(ctx context.Context, names []string) ([]model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	selected := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			selected = append(selected, n)
		}
	}
	if len(selected) == 0 {
		r.notifier.Notify("No ingredients selected", "Pick at least one ingredient to get recipe ideas.")
		return nil, ErrNoIngredientsSelected
	}

	r.logger.Debug("recommend recipes", "ingredients", selected)
	recipes := r.synth.Synthesize(selected)
	if len(recipes) == 0 {
		r.notifier.Notify("No recipes found", "We couldn't build recipes from those ingredients.")
	}
	return recipes, nil
}
