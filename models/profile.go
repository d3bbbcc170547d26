package models

import (
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	GoalLoseWeight = "lose_weight"
	GoalMaintain   = "maintain"
	GoalGainMuscle = "gain_muscle"
)

// UserProfile exists only for customers who completed onboarding.
// BMR and DailyCaloriesGoal are derived at submit time, never user-entered.
type UserProfile struct {
	gorm.Model
	UserID            string  `gorm:"type:varchar(36);uniqueIndex;not null"`
	Age               int     `gorm:"not null"`
	WeightKg          float64 `gorm:"not null"`
	HeightCm          float64 `gorm:"not null"`
	Gender            string  `gorm:"type:varchar(8);not null"`
	Goal              string  `gorm:"type:varchar(16);not null"`
	BMR               int     `gorm:"not null"`
	DailyCaloriesGoal int     `gorm:"not null"`
}
