package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// FoodEntry is an append-only diary record; one row per logging action.
type FoodEntry struct {
	gorm.Model
	UserID        string    `gorm:"type:varchar(36);index;not null"`
	FoodItemID    string    `gorm:"type:varchar(36);index;not null"`
	MealType      string    `gorm:"type:varchar(16);not null"`
	QuantityGrams float64   `gorm:"not null"`
	DateTime      time.Time `gorm:"index;not null"`
}
