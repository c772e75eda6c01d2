package fuelup

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Browse, search and generate recipes",
}

var recipeJSON bool

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		recipes := service.Catalog()
		if recipeJSON {
			return printJSON(cmd, "recipes", recipes)
		}
		printRecipeTable(cmd, recipes)
		return nil
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a catalog recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe, err := service.RecipeByID(args[0])
		if err != nil {
			return err
		}
		if recipeJSON {
			return printJSON(cmd, "recipe", recipe)
		}
		printRecipe(cmd, recipe)
		return nil
	},
}

var (
	searchTag        string
	searchIngredient string
)

var recipeSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search catalog recipes by tag and ingredient",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(searchTag) == "" && strings.TrimSpace(searchIngredient) == "" {
			return fmt.Errorf("--tag or --ingredient is required")
		}
		recipes := service.SearchCatalog(searchTag, searchIngredient)
		if recipeJSON {
			return printJSON(cmd, "recipes", recipes)
		}
		printRecipeTable(cmd, recipes)
		return nil
	},
}

var (
	suggestIngredients string
	suggestDiet        string
	suggestMealType    string
	suggestCalories    string
	suggestProtein     string
	suggestMaxPrep     int
)

var recipeSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest catalog recipes matching your preferences",
	Example: `  fuelup recipe suggest --meal-type breakfast
  fuelup recipe suggest --protein 30-60 --max-prep 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := parseRange("calories", suggestCalories)
		if err != nil {
			return err
		}
		protein, err := parseRange("protein", suggestProtein)
		if err != nil {
			return err
		}
		if suggestMaxPrep < 0 {
			return fmt.Errorf("--max-prep must be >= 0")
		}
		recipes := service.RecommendByPreferences(service.PreferenceInput{
			Ingredients: splitList(suggestIngredients),
			Dietary:     splitList(suggestDiet),
			MealType:    suggestMealType,
			Calories:    calories,
			Protein:     protein,
			MaxPrepTime: suggestMaxPrep,
		})
		if recipeJSON {
			return printJSON(cmd, "recipes", recipes)
		}
		printRecipeTable(cmd, recipes)
		return nil
	},
}

var sportLimit int

var recipeSportCmd = &cobra.Command{
	Use:   "sport [sport]",
	Short: "Generate recipes for a sport (default: your profile's sport)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(kv *service.SQLiteKV) error {
			sport := service.UserSport(kv, configuredSport())
			if len(args) == 1 {
				sport = args[0]
			}
			recipes := newSportGenerator().GenerateSportRecipes(sport)
			if sportLimit > 0 && len(recipes) > sportLimit {
				recipes = recipes[:sportLimit]
			}
			if recipeJSON {
				return printJSON(cmd, "recipes", recipes)
			}
			if _, ok := service.ProfileForSport(sport); !ok {
				logger.Info("no dedicated profile for sport; using defaults", "sport", sport)
			}
			printRecipeTable(cmd, recipes)
			return nil
		})
	},
}

var (
	browseFilter string
	browseSearch string
	browseSport  string
)

var recipeBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse catalog or sport recipes with search and ordering",
	Example: `  fuelup recipe browse --filter popular
  fuelup recipe browse --filter sport --sport Running --search smoothie`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := service.ParseFilterMode(browseFilter)
		if err != nil {
			return err
		}
		return withKV(func(kv *service.SQLiteKV) error {
			var sportRecipes []model.Recipe
			if mode == service.FilterSport {
				sport := browseSport
				if strings.TrimSpace(sport) == "" {
					sport = service.UserSport(kv, configuredSport())
				}
				sportRecipes = newSportGenerator().GenerateSportRecipes(sport)
			}
			recipes := service.FilterRecipes(service.Catalog(), sportRecipes, browseSearch, mode)
			if recipeJSON {
				return printJSON(cmd, "recipes", recipes)
			}
			printRecipeTable(cmd, recipes)
			return nil
		})
	},
}

var recommendIngredients string

var recipeRecommendCmd = &cobra.Command{
	Use:   "recommend [ingredient...]",
	Short: "Build recipes that use only the given ingredients",
	Example: `  fuelup recipe recommend Tomato Garlic
  fuelup recipe recommend --ingredients "Chicken, Rice, Broccoli"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := append(splitList(recommendIngredients), args...)
		rec := service.NewRecommender(service.NewSynthesizer(logger, nil), newNotifier(cmd), logger)
		recipes, err := rec.RecommendNames(cmd.Context(), names)
		if err != nil {
			return err
		}
		if recipeJSON {
			return printJSON(cmd, "recipes", recipes)
		}
		for i, r := range recipes {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printRecipe(cmd, r)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeListCmd, recipeShowCmd, recipeSearchCmd, recipeSuggestCmd, recipeSportCmd, recipeBrowseCmd, recipeRecommendCmd)

	recipeCmd.PersistentFlags().BoolVar(&recipeJSON, "json", false, "Output JSON")

	recipeSearchCmd.Flags().StringVar(&searchTag, "tag", "", "Tag to match")
	recipeSearchCmd.Flags().StringVar(&searchIngredient, "ingredient", "", "Ingredient text to match")

	recipeSuggestCmd.Flags().StringVar(&suggestIngredients, "ingredients", "", "Comma-separated ingredients (any match)")
	recipeSuggestCmd.Flags().StringVar(&suggestDiet, "diet", "", "Comma-separated dietary tags (any match)")
	recipeSuggestCmd.Flags().StringVar(&suggestMealType, "meal-type", "", "Meal type tag, e.g. breakfast")
	recipeSuggestCmd.Flags().StringVar(&suggestCalories, "calories", "", "Calorie range MIN-MAX")
	recipeSuggestCmd.Flags().StringVar(&suggestProtein, "protein", "", "Protein range MIN-MAX")
	recipeSuggestCmd.Flags().IntVar(&suggestMaxPrep, "max-prep", 0, "Maximum prep minutes (0 for any)")

	recipeSportCmd.Flags().IntVar(&sportLimit, "limit", 0, "Show at most this many recipes (0 for all)")

	recipeBrowseCmd.Flags().StringVar(&browseFilter, "filter", "all", "Filter: all, popular, recent, sport")
	recipeBrowseCmd.Flags().StringVar(&browseSearch, "search", "", "Match recipe name or description")
	recipeBrowseCmd.Flags().StringVar(&browseSport, "sport", "", "Sport for --filter sport (default: your profile's sport)")

	recipeRecommendCmd.Flags().StringVar(&recommendIngredients, "ingredients", "", "Comma-separated ingredients")
}
