package fuelup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log water intake",
}

var waterUnit string

var waterAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Add water to today's log",
	Args:  cobra.ExactArgs(1),
	Example: `  fuelup water add 500
  fuelup water add 2 --unit cup`,
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		amount, err := service.WaterML(value, waterUnit)
		if err != nil {
			return err
		}
		return withStore(cmd, func(store *service.ProfileStore, _ *service.SQLiteKV) error {
			return store.UpdateWaterIntake(amount)
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd)

	waterAddCmd.Flags().StringVar(&waterUnit, "unit", "ml", "Volume unit: ml, l, cup, fl-oz")
}
