package fuelup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show or reset goal streaks",
}

var streaksShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store *service.ProfileStore, _ *service.SQLiteKV) error {
			user := store.CurrentUser()
			if user == nil {
				return service.ErrNotLoggedIn
			}
			fmt.Fprintln(cmd.OutOrStdout(), "GOAL\tTHRESHOLD\tDAYS")
			fmt.Fprintf(cmd.OutOrStdout(), "water\t%d ml\t%d\n", service.WaterThresholdML, user.Streaks.Water)
			fmt.Fprintf(cmd.OutOrStdout(), "protein\t%d g\t%d\n", service.ProteinThresholdG, user.Streaks.Protein)
			fmt.Fprintf(cmd.OutOrStdout(), "calories\t%d kcal\t%d\n", service.CaloriesThresholdKcal, user.Streaks.Calories)
			return nil
		})
	},
}

var streaksResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all streaks to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store *service.ProfileStore, _ *service.SQLiteKV) error {
			return store.ResetStreaks()
		})
	},
}

func init() {
	rootCmd.AddCommand(streaksCmd)
	streaksCmd.AddCommand(streaksShowCmd, streaksResetCmd)
}
