package fuelup

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the athlete profile",
}

var profileJSON bool

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile, sport and competition countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store *service.ProfileStore, kv *service.SQLiteKV) error {
			user := store.CurrentUser()
			form, err := service.LoadFormData(kv)
			if err != nil {
				logger.Warn("read profile form", "err", err)
			}
			if profileJSON {
				return printJSON(cmd, "profile", struct {
					User *model.UserProfile  `json:"user"`
					Form *model.UserFormData `json:"form"`
				}{user, form})
			}

			out := cmd.OutOrStdout()
			if user == nil {
				fmt.Fprintln(out, "Profile: not logged in")
			} else {
				fmt.Fprintf(out, "Name: %s\n", user.Name)
				fmt.Fprintf(out, "Age: %d | Weight: %.1f kg | Height: %.1f cm\n", user.Age, user.Weight, user.Height)
				fmt.Fprintf(out, "Activity: %s\n", user.ActivityLevel)
				if len(user.Goals) > 0 {
					fmt.Fprintf(out, "Goals: %s\n", strings.Join(user.Goals, ", "))
				}
				if len(user.DietaryPreferences) > 0 {
					fmt.Fprintf(out, "Diet: %s\n", strings.Join(user.DietaryPreferences, ", "))
				}
			}
			fmt.Fprintf(out, "Sport: %s\n", service.UserSport(kv, configuredSport()))
			if days, ok := service.DaysUntilCompetition(form, time.Now()); ok {
				fmt.Fprintf(out, "Competition: %s (%d days)\n", form.CompetitionDate, days)
			}
			return nil
		})
	},
}

var (
	profileName        string
	profileAge         int
	profileWeight      float64
	profileHeight      float64
	profileActivity    string
	profileGoals       string
	profileDiet        string
	profileSport       string
	profileCompetition string
	profileWeightUnit  string
	profileHeightUnit  string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields and the onboarding form",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		formChanged := flags.Changed("name") || flags.Changed("age") || flags.Changed("weight") ||
			flags.Changed("height") || flags.Changed("sport") || flags.Changed("competition-date")
		profileOnly := flags.Changed("activity") || flags.Changed("goals") || flags.Changed("diet")
		if !formChanged && !profileOnly {
			return fmt.Errorf("set at least one flag")
		}

		weight, err := service.WeightKG(profileWeight, profileWeightUnit)
		if err != nil {
			return err
		}
		height, err := service.HeightCM(profileHeight, profileHeightUnit)
		if err != nil {
			return err
		}

		return withStore(cmd, func(store *service.ProfileStore, kv *service.SQLiteKV) error {
			if formChanged {
				form, err := service.LoadFormData(kv)
				if err != nil {
					return err
				}
				if form == nil {
					form = &model.UserFormData{}
				}
				if flags.Changed("name") {
					form.Name = profileName
				}
				if flags.Changed("age") {
					form.Age = strconv.Itoa(profileAge)
				}
				if flags.Changed("weight") {
					form.Weight = strconv.FormatFloat(weight, 'f', -1, 64)
				}
				if flags.Changed("height") {
					form.Height = strconv.FormatFloat(height, 'f', -1, 64)
				}
				if flags.Changed("sport") {
					form.Sport = profileSport
				}
				if flags.Changed("competition-date") {
					form.CompetitionDate = profileCompetition
				}
				if err := service.SaveFormData(kv, *form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Saved profile form")
			}

			if store.CurrentUser() == nil {
				if profileOnly {
					return service.ErrNotLoggedIn
				}
				return nil
			}
			if !profileOnly && !flags.Changed("name") && !flags.Changed("age") &&
				!flags.Changed("weight") && !flags.Changed("height") {
				return nil
			}
			in := service.UpdateProfileInput{}
			if flags.Changed("name") {
				in.Name = &profileName
			}
			if flags.Changed("age") {
				in.Age = &profileAge
			}
			if flags.Changed("weight") {
				in.Weight = &weight
			}
			if flags.Changed("height") {
				in.Height = &height
			}
			if flags.Changed("activity") {
				in.ActivityLevel = &profileActivity
			}
			if flags.Changed("goals") {
				in.Goals = splitList(profileGoals)
			}
			if flags.Changed("diet") {
				in.DietaryPreferences = splitList(profileDiet)
			}
			_, err := store.UpdateProfile(in)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)

	profileShowCmd.Flags().BoolVar(&profileJSON, "json", false, "Output JSON")

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight (see --weight-unit)")
	profileSetCmd.Flags().StringVar(&profileWeightUnit, "weight-unit", "kg", "Weight unit: kg, lb")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height (see --height-unit)")
	profileSetCmd.Flags().StringVar(&profileHeightUnit, "height-unit", "cm", "Height unit: cm, m, in, ft")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level: low, moderate, high")
	profileSetCmd.Flags().StringVar(&profileGoals, "goals", "", "Comma-separated goals")
	profileSetCmd.Flags().StringVar(&profileDiet, "diet", "", "Comma-separated dietary preferences")
	profileSetCmd.Flags().StringVar(&profileSport, "sport", "", "Primary sport")
	profileSetCmd.Flags().StringVar(&profileCompetition, "competition-date", "", "Next competition date YYYY-MM-DD")
}
