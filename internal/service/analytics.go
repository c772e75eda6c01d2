package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

type DaySummary struct {
	Date     string `json:"date"`
	Water    int    `json:"water"`
	Protein  int    `json:"protein"`
	Calories int    `json:"calories"`
	Meals    int    `json:"meals"`
}

type AdherenceSummary struct {
	EvaluatedDays    int     `json:"evaluated_days"`
	WaterGoalDays    int     `json:"water_goal_days"`
	ProteinGoalDays  int     `json:"protein_goal_days"`
	CaloriesGoalDays int     `json:"calories_goal_days"`
	PercentAllGoals  float64 `json:"percent_all_goals"`
}

type AnalyticsReport struct {
	FromDate              string           `json:"from_date"`
	ToDate                string           `json:"to_date"`
	DaysWithLogs          int              `json:"days_with_logs"`
	TotalWater            int              `json:"total_water"`
	TotalProtein          int              `json:"total_protein"`
	TotalCalories         int              `json:"total_calories"`
	AverageWaterPerDay    float64          `json:"avg_water_per_day"`
	AverageProteinPerDay  float64          `json:"avg_protein_per_day"`
	AverageCaloriesPerDay float64          `json:"avg_calories_per_day"`
	HighestDay            *DaySummary      `json:"highest_day,omitempty"`
	LowestDay             *DaySummary      `json:"lowest_day,omitempty"`
	Adherence             AdherenceSummary `json:"adherence"`
	Days                  []DaySummary     `json:"days"`
}

// AnalyticsRange summarizes the logs dated between from and to inclusive,
// judging each day against goals.
func AnalyticsRange(logs []model.NutritionLog, goals model.DailyGoals, from, to time.Time) (*AnalyticsReport, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}
	report := &AnalyticsReport{
		FromDate: dateKey(from),
		ToDate:   dateKey(to),
	}

	days := make([]DaySummary, 0)
	for _, l := range logs {
		if l.Date < report.FromDate || l.Date > report.ToDate {
			continue
		}
		days = append(days, DaySummary{
			Date:     l.Date,
			Water:    l.Water,
			Protein:  l.Protein,
			Calories: l.Calories,
			Meals:    len(l.Meals),
		})
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	report.Days = days
	report.DaysWithLogs = len(days)

	for _, d := range days {
		report.TotalWater += d.Water
		report.TotalProtein += d.Protein
		report.TotalCalories += d.Calories
	}
	if report.DaysWithLogs > 0 {
		div := float64(report.DaysWithLogs)
		report.AverageWaterPerDay = float64(report.TotalWater) / div
		report.AverageProteinPerDay = float64(report.TotalProtein) / div
		report.AverageCaloriesPerDay = float64(report.TotalCalories) / div
	}
	report.HighestDay, report.LowestDay = extremeDays(days)
	report.Adherence = calculateAdherence(days, goals)
	return report, nil
}

func calculateAdherence(days []DaySummary, goals model.DailyGoals) AdherenceSummary {
	out := AdherenceSummary{EvaluatedDays: len(days)}
	all := 0
	for _, d := range days {
		water := d.Water >= goals.Water
		protein := d.Protein >= goals.Protein
		calories := d.Calories >= goals.Calories
		if water {
			out.WaterGoalDays++
		}
		if protein {
			out.ProteinGoalDays++
		}
		if calories {
			out.CaloriesGoalDays++
		}
		if water && protein && calories {
			all++
		}
	}
	if out.EvaluatedDays > 0 {
		out.PercentAllGoals = (float64(all) / float64(out.EvaluatedDays)) * 100
	}
	return out
}

func extremeDays(days []DaySummary) (*DaySummary, *DaySummary) {
	if len(days) == 0 {
		return nil, nil
	}
	copied := make([]DaySummary, len(days))
	copy(copied, days)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].Calories < copied[j].Calories
	})
	low := copied[0]
	high := copied[len(copied)-1]
	return &high, &low
}
