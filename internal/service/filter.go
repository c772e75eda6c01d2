package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

type FilterMode string

const (
	FilterAll     FilterMode = "all"
	FilterPopular FilterMode = "popular"
	FilterRecent  FilterMode = "recent"
	FilterSport   FilterMode = "sport"
)

func ParseFilterMode(s string) (FilterMode, error) {
	switch m := FilterMode(normalizeName(s)); m {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPopular, FilterRecent, FilterSport:
		return m, nil
	}
	return "", fmt.Errorf("filter must be one of all, popular, recent, sport")
}

// FilterRecipes narrows recipes (or sportRecipes in sport mode) to those
// whose name or description contains searchTerm, then orders them for the
// mode. The inputs are never modified.
func FilterRecipes(recipes, sportRecipes []model.Recipe, searchTerm string, mode FilterMode) []model.Recipe {
	source := recipes
	if mode == FilterSport {
		source = sportRecipes
	}

	term := strings.ToLower(searchTerm)
	out := make([]model.Recipe, 0, len(source))
	for _, r := range source {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Name), term) &&
			!strings.Contains(strings.ToLower(r.Description), term) {
			continue
		}
		out = append(out, r)
	}

	switch mode {
	case FilterPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	case FilterRecent:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].TimeAdded, out[j].TimeAdded
			if a.IsZero() || b.IsZero() {
				return !a.IsZero() && b.IsZero()
			}
			return a.After(b)
		})
	}
	return out
}
