package fuelup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect stored documents",
}

var dataListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(kv *service.SQLiteKV) error {
			entries, err := kv.List()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tBYTES\tUPDATED")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", e.Key, e.SizeBytes, e.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		})
	},
}

var dataGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a stored document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(kv *service.SQLiteKV) error {
			raw, ok, err := kv.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no value stored for %q", args[0])
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, []byte(raw), "", "  "); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), raw)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataListCmd, dataGetCmd)
}
