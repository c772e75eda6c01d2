package fuelup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibdesignproject/FuelUpFinal/internal/app"
	"github.com/ibdesignproject/FuelUpFinal/internal/db"
	"github.com/ibdesignproject/FuelUpFinal/internal/model"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

const fallbackSport = "Basketball"

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg != nil && cfg.Storage.DBPath != "" {
		return cfg.Storage.DBPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	logger.Debug("database ready", "path", path)
	return run(sqldb)
}

func withKV(run func(*service.SQLiteKV) error) error {
	return withDB(func(sqldb *sql.DB) error {
		return run(service.NewSQLiteKV(sqldb))
	})
}

func withStore(cmd *cobra.Command, run func(*service.ProfileStore, *service.SQLiteKV) error) error {
	return withKV(func(kv *service.SQLiteKV) error {
		return run(service.NewProfileStore(kv, newNotifier(cmd), logger), kv)
	})
}

func newNotifier(cmd *cobra.Command) service.Notifier {
	if quiet {
		return service.NewLogNotifier(logger)
	}
	return service.NewWriterNotifier(cmd.OutOrStdout())
}

func newSportGenerator() *service.SportGenerator {
	var seed uint64
	if cfg != nil {
		seed = cfg.Generator.Seed
	}
	return service.NewSportGenerator(service.NewSeededRand(seed), logger)
}

func configuredSport() string {
	if cfg != nil && cfg.Profile.DefaultSport != "" {
		return cfg.Profile.DefaultSport
	}
	return fallbackSport
}

func printJSON(cmd *cobra.Command, what string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s json: %w", what, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func parseMealTime(value string) (model.MealTime, error) {
	t := model.MealTime(strings.ToLower(strings.TrimSpace(value)))
	if !t.Valid() {
		return "", service.ErrInvalidMealTime
	}
	return t, nil
}

// parseRange accepts MIN-MAX, MIN- or -MAX.
func parseRange(name, value string) (*service.Range, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(value, "-")
	if !ok {
		return nil, fmt.Errorf("invalid %s range %q (expected MIN-MAX)", name, value)
	}
	r := &service.Range{Min: 0, Max: int(^uint(0) >> 1)}
	if lo = strings.TrimSpace(lo); lo != "" {
		v, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("invalid %s range %q", name, value)
		}
		r.Min = v
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		v, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("invalid %s range %q", name, value)
		}
		r.Max = v
	}
	if r.Min > r.Max {
		return nil, fmt.Errorf("invalid %s range %q: min is above max", name, value)
	}
	return r, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printRecipeTable(cmd *cobra.Command, recipes []model.Recipe) {
	fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tP\tC\tF\tMIN\tPOP")
	for _, r := range recipes {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.ID, r.Name, r.Calories, r.Protein, r.Carbs, r.Fat, r.PrepTime+r.CookTime, r.Popularity)
	}
}

func printRecipe(cmd *cobra.Command, r model.Recipe) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", r.Name, r.ID)
	if r.Description != "" {
		fmt.Fprintln(out, r.Description)
	}
	fmt.Fprintf(out, "Image: %s\n", service.RecipeImage(r))
	fmt.Fprintf(out, "Time: prep %d min | cook %d min\n", r.PrepTime, r.CookTime)
	fmt.Fprintf(out, "Nutrition: %d kcal | P %dg | C %dg | F %dg\n", r.Calories, r.Protein, r.Carbs, r.Fat)
	if len(r.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	fmt.Fprintln(out, "Ingredients:")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(out, "  - %s\n", ing)
	}
	fmt.Fprintln(out, "Instructions:")
	for i, step := range r.Instructions {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}
}
