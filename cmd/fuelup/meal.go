package fuelup

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log meals",
}

var (
	mealName     string
	mealCalories int
	mealProtein  int
	mealCarbs    int
	mealFat      int
	mealTime     string
	mealRecipe   string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a meal to today's log",
	Example: `  fuelup meal add --name "Chicken bowl" --calories 550 --protein 45 --carbs 50 --fat 15 --time lunch
  fuelup meal add --recipe 3 --time snack`,
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseMealTime(mealTime)
		if err != nil {
			return err
		}
		return withStore(cmd, func(store *service.ProfileStore, _ *service.SQLiteKV) error {
			var meal *model.MealEntry
			if strings.TrimSpace(mealRecipe) != "" {
				recipe, err := service.RecipeByID(mealRecipe)
				if err != nil {
					return err
				}
				meal, err = store.AddRecipeAsMeal(recipe, at)
				if err != nil {
					return err
				}
			} else {
				meal, err = store.AddMeal(service.AddMealInput{
					Name:     mealName,
					Calories: mealCalories,
					Protein:  mealProtein,
					Carbs:    mealCarbs,
					Fat:      mealFat,
					Time:     at,
				})
				if err != nil {
					return err
				}
			}
			logger.Info("meal logged", "id", meal.ID, "name", meal.Name, "time", meal.Time)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealAddCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories")
	mealAddCmd.Flags().IntVar(&mealProtein, "protein", 0, "Protein grams")
	mealAddCmd.Flags().IntVar(&mealCarbs, "carbs", 0, "Carb grams")
	mealAddCmd.Flags().IntVar(&mealFat, "fat", 0, "Fat grams")
	mealAddCmd.Flags().StringVar(&mealTime, "time", "snack", "Meal time: breakfast, lunch, dinner, snack")
	mealAddCmd.Flags().StringVar(&mealRecipe, "recipe", "", "Log one serving of a catalog recipe by id")
}
