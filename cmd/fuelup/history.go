package fuelup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List daily nutrition logs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyLimit < 0 {
			return fmt.Errorf("--limit must be >= 0")
		}
		return withStore(cmd, func(store *service.ProfileStore, _ *service.SQLiteKV) error {
			logs := store.Logs()
			if historyLimit > 0 && len(logs) > historyLimit {
				logs = logs[:historyLimit]
			}
			if historyJSON {
				return printJSON(cmd, "history", logs)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWATER\tPROTEIN\tKCAL\tMEALS")
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%d\t%d\n", l.Date, l.Water, l.Protein, l.Calories, len(l.Meals))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum number of days (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output JSON")
}
