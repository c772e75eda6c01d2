package fuelup

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var (
	analyticsFrom string
	analyticsTo   string
	analyticsJSON bool
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Summarize logged days against your goals",
	Example: `  fuelup analytics
  fuelup analytics --from 2026-03-01 --to 2026-03-31 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		to := time.Now()
		from := to.AddDate(0, 0, -6)
		var err error
		if strings.TrimSpace(analyticsFrom) != "" {
			if from, err = time.ParseInLocation("2006-01-02", analyticsFrom, time.Local); err != nil {
				return fmt.Errorf("invalid --from %q (expected YYYY-MM-DD)", analyticsFrom)
			}
		}
		if strings.TrimSpace(analyticsTo) != "" {
			if to, err = time.ParseInLocation("2006-01-02", analyticsTo, time.Local); err != nil {
				return fmt.Errorf("invalid --to %q (expected YYYY-MM-DD)", analyticsTo)
			}
		}
		return withStore(cmd, func(store *service.ProfileStore, kv *service.SQLiteKV) error {
			goals, err := service.CurrentGoals(kv)
			if err != nil {
				return err
			}
			report, err := service.AnalyticsRange(store.Logs(), goals, from, to)
			if err != nil {
				return err
			}
			if analyticsJSON {
				return printJSON(cmd, "analytics", report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Range: %s to %s (%d logged day(s))\n", report.FromDate, report.ToDate, report.DaysWithLogs)
			fmt.Fprintf(out, "Average: %.0f ml water | %.1f g protein | %.0f kcal\n", report.AverageWaterPerDay, report.AverageProteinPerDay, report.AverageCaloriesPerDay)
			if report.HighestDay != nil {
				fmt.Fprintf(out, "Highest: %s (%d kcal) | Lowest: %s (%d kcal)\n", report.HighestDay.Date, report.HighestDay.Calories, report.LowestDay.Date, report.LowestDay.Calories)
			}
			a := report.Adherence
			fmt.Fprintf(out, "Goal days: water %d | protein %d | calories %d | all goals %.1f%%\n", a.WaterGoalDays, a.ProteinGoalDays, a.CaloriesGoalDays, a.PercentAllGoals)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
	analyticsCmd.Flags().StringVar(&analyticsFrom, "from", "", "Start date YYYY-MM-DD (default: 6 days ago)")
	analyticsCmd.Flags().StringVar(&analyticsTo, "to", "", "End date YYYY-MM-DD (default: today)")
	analyticsCmd.Flags().BoolVar(&analyticsJSON, "json", false, "Output JSON")
}
