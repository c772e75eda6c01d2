package fuelup

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var (
	loginPhone    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and provision the athlete profile on first use",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(loginPhone) == "" {
			return fmt.Errorf("--phone is required")
		}
		return withStore(cmd, func(store *service.ProfileStore, _ *service.SQLiteKV) error {
			if !store.Login(loginPhone, loginPassword) {
				return fmt.Errorf("login failed")
			}
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store *service.ProfileStore, _ *service.SQLiteKV) error {
			store.Logout()
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in phone number and athlete",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store *service.ProfileStore, _ *service.SQLiteKV) error {
			session, err := store.Session()
			if err != nil {
				return err
			}
			if session == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Phone: %s\n", session.Phone)
			fmt.Fprintf(cmd.OutOrStdout(), "Since: %s\n", session.LoggedInAt.Local().Format(time.RFC3339))
			if user := store.CurrentUser(); user != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Athlete: %s\n", user.Name)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)

	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "Phone number")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (recorded, not verified)")
}
