package fuelup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage daily nutrition goals",
}

var (
	goalWater    int
	goalProtein  int
	goalCalories int
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily water, protein and calorie targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(kv *service.SQLiteKV) error {
			current, err := service.CurrentGoals(kv)
			if err != nil {
				return err
			}
			next := current
			updates := 0
			if cmd.Flags().Changed("water") {
				next.Water = goalWater
				updates++
			}
			if cmd.Flags().Changed("protein") {
				next.Protein = goalProtein
				updates++
			}
			if cmd.Flags().Changed("calories") {
				next.Calories = goalCalories
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			if err := service.SetGoals(kv, next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goals: %d ml water | %d g protein | %d kcal\n", next.Water, next.Protein, next.Calories)
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show daily goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(kv *service.SQLiteKV) error {
			goals, err := service.CurrentGoals(kv)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goals: %d ml water | %d g protein | %d kcal\n", goals.Water, goals.Protein, goals.Calories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)

	goalSetCmd.Flags().IntVar(&goalWater, "water", 0, "Daily water target in ml")
	goalSetCmd.Flags().IntVar(&goalProtein, "protein", 0, "Daily protein target in grams")
	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie target")
}
