package fuelup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var todayJSON bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, goal progress, and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store *service.ProfileStore, kv *service.SQLiteKV) error {
			status, err := service.TodaySummary(store, kv)
			if err != nil {
				return err
			}
			if todayJSON {
				return printJSON(cmd, "today", status)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Water: %d / %d ml (%d%%)\n", status.Water, status.Goals.Water, status.WaterPct)
			fmt.Fprintf(out, "Protein: %d / %d g (%d%%)\n", status.Protein, status.Goals.Protein, status.ProteinPct)
			fmt.Fprintf(out, "Calories: %d / %d kcal (%d%%)\n", status.Calories, status.Goals.Calories, status.CaloriesPct)
			fmt.Fprintf(out, "Macros from meals: C %dg | F %dg\n", status.Carbs, status.Fat)
			fmt.Fprintf(out, "Remaining: %d ml | %d g protein | %d kcal\n", max(status.RemainingWater, 0), max(status.RemainingProtein, 0), max(status.RemainingCalories, 0))
			fmt.Fprintf(out, "Streaks: water %d | protein %d | calories %d\n", status.Streaks.Water, status.Streaks.Protein, status.Streaks.Calories)
			if len(status.Meals) == 0 {
				fmt.Fprintln(out, "Meals: none")
				return nil
			}
			fmt.Fprintln(out, "TIME\tNAME\tKCAL\tP\tC\tF")
			for _, m := range status.Meals {
				fmt.Fprintf(out, "%s\t%s\t%d\t%d\t%d\t%d\n", m.Time, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output JSON")
}
