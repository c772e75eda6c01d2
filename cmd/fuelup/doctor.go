package fuelup

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(kv *service.SQLiteKV) error {
			report, err := service.RunDoctor(kv, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Undecodable keys: %d", len(report.UndecodableKeys))
			if len(report.UndecodableKeys) > 0 {
				fmt.Fprintf(out, " (%s)", strings.Join(report.UndecodableKeys, ", "))
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Logs with totals below meals (drift, not an error): %d\n", report.TotalsBelowMeals)
			fmt.Fprintf(out, "Duplicate log dates: %d\n", report.DuplicateLogDates)
			fmt.Fprintf(out, "Invalid meal times: %d\n", report.InvalidMealTimes)
			fmt.Fprintf(out, "Negative values: %d\n", report.NegativeValues)
			if doctorFix {
				fmt.Fprintf(out, "Fixed logs: %d\n", report.FixedLogs)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(kv, false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Raise log totals that fall below their meals")
}
