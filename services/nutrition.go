package services

import (
	"errors"
	"math"
	"time"

	"github.com/QUATTR0KI/fatbeaches-web/models"
	"github.com/QUATTR0KI/fatbeaches-web/utils"

	"gorm.io/gorm"
)

// Fixed derivation constants. The activity multiplier is not configurable.
const (
	activityMultiplier = 1.375
	loseWeightDelta    = 500
	gainMuscleDelta    = 400

	// DefaultDailyCaloriesGoal is used whenever a profile or its goal is
	// absent at aggregation time.
	DefaultDailyCaloriesGoal = 2000
)

// DailyCalorieTarget derives the stored BMR and the daily calorie goal.
// The goal is rounded from the unrounded BMR before the per-goal delta is
// applied; the stored BMR is rounded independently.
func DailyCalorieTarget(weightKg, heightCm float64, age int, gender, goal string) (bmr, calories int, err error) {
	raw, err := utils.CalculateBMR(weightKg, heightCm, age, gender)
	if err != nil {
		return 0, 0, err
	}

	calories = int(math.Round(raw * activityMultiplier))
	switch goal {
	case models.GoalLoseWeight:
		calories -= loseWeightDelta
	case models.GoalGainMuscle:
		calories += gainMuscleDelta
	case models.GoalMaintain:
	default:
		return 0, 0, errors.New("goal must be lose_weight, maintain or gain_muscle")
	}

	return int(math.Round(raw)), calories, nil
}

// EntryCalories is one diary row joined with its food item's per-100g
// calorie value.
type EntryCalories struct {
	MealType      string
	QuantityGrams float64
	Calories      float64
}

type DailySummary struct {
	Consumed  int `json:"consumed"`
	Goal      int `json:"goal"`
	Remaining int `json:"remaining"`

	// Percent is unclamped; DisplayPercent is capped at 100 for progress
	// bars while the raw value is shown as text.
	Percent        int            `json:"percent"`
	DisplayPercent int            `json:"display_percent"`
	Meals          map[string]int `json:"meals"`
}

// SummarizeEntries folds one day's rows into a running total and the four
// meal subtotals. An entry with an unrecognized meal type still counts
// toward the total but toward no subtotal.
func SummarizeEntries(rows []EntryCalories, goal int) DailySummary {
	if goal <= 0 {
		goal = DefaultDailyCaloriesGoal
	}

	meals := map[string]int{
		models.MealBreakfast: 0,
		models.MealLunch:     0,
		models.MealDinner:    0,
		models.MealSnack:     0,
	}

	total := 0
	for _, r := range rows {
		cals := int(math.Round(r.Calories * r.QuantityGrams / 100))
		if _, known := meals[r.MealType]; known {
			meals[r.MealType] += cals
		}
		total += cals
	}

	remaining := goal - total
	if remaining < 0 {
		remaining = 0
	}
	percent := int(math.Round(float64(total) / float64(goal) * 100))
	display := percent
	if display > 100 {
		display = 100
	}

	return DailySummary{
		Consumed:       total,
		Goal:           goal,
		Remaining:      remaining,
		Percent:        percent,
		DisplayPercent: display,
		Meals:          meals,
	}
}

// dayWindow returns the half-open [midnight, midnight+24h) window of the
// local day containing at. An entry stamped exactly at the next midnight
// belongs to the next day.
func dayWindow(at time.Time) (start, end time.Time) {
	start = time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	return start, start.Add(24 * time.Hour)
}

type entryStore interface {
	EntriesBetween(userID string, start, end time.Time) ([]EntryCalories, error)
	DailyGoal(userID string) int
}

type gormEntryStore struct {
	db *gorm.DB
}

func (s *gormEntryStore) EntriesBetween(userID string, start, end time.Time) ([]EntryCalories, error) {
	var rows []EntryCalories
	err := s.db.
		Table("food_entries").
		Select("food_entries.meal_type, food_entries.quantity_grams, food_items.calories").
		Joins("JOIN food_items ON food_items.food_item_id = food_entries.food_item_id").
		Where("food_entries.user_id = ? AND food_entries.date_time >= ? AND food_entries.date_time < ?", userID, start, end).
		Scan(&rows).Error
	return rows, err
}

func (s *gormEntryStore) DailyGoal(userID string) int {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return 0
	}
	return profile.DailyCaloriesGoal
}

type NutritionService struct {
	store entryStore
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{store: &gormEntryStore{db: db}}
}

func newNutritionServiceWithStore(store entryStore) *NutritionService {
	return &NutritionService{store: store}
}

// DailySummary aggregates the user's entries whose date_time falls within
// the local day containing at.
func (s *NutritionService) DailySummary(userID string, at time.Time) (DailySummary, error) {
	start, end := dayWindow(at)
	rows, err := s.store.EntriesBetween(userID, start, end)
	if err != nil {
		return DailySummary{}, err
	}
	return SummarizeEntries(rows, s.store.DailyGoal(userID)), nil
}
