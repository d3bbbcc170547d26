package services

import (
	"errors"
	"time"

	"github.com/QUATTR0KI/fatbeaches-web/models"

	"gorm.io/gorm"
)

type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

func validMealType(mealType string) bool {
	switch mealType {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
		return true
	}
	return false
}

// LogEntry appends one diary row. The referenced food item must be visible
// to the caller (own item or public). The summary refresh is kicked only
// after the insert is acknowledged, never optimistically.
func (s *EntryService) LogEntry(userID, foodItemID, mealType string, quantityGrams float64, at time.Time) (*models.FoodEntry, error) {
	if foodItemID == "" {
		return nil, errors.New("food_item_id is required")
	}
	if !validMealType(mealType) {
		return nil, errors.New("meal_type must be breakfast, lunch, dinner or snack")
	}
	if quantityGrams < 0 {
		return nil, errors.New("quantity_grams must be non-negative")
	}

	var item models.FoodItem
	err := s.db.
		Where("food_item_id = ? AND (created_by_user_id = ? OR is_public_plan = ?)", foodItemID, userID, true).
		First(&item).Error
	if err != nil {
		return nil, errors.New("food item not found")
	}

	entry := &models.FoodEntry{
		UserID:        userID,
		FoodItemID:    foodItemID,
		MealType:      mealType,
		QuantityGrams: quantityGrams,
		DateTime:      at,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	RefreshDailySummary(userID, at)
	EmitSessionEvent(userID, EventRecordsChanged)
	return entry, nil
}
