package models

import "gorm.io/gorm"

// FoodItem is a catalog entry. Nutrient values are per 100g. An item is
// visible either to its creator or, when IsPublicPlan is set, to everyone;
// visibility is decided by that flag alone, never by the creator's role.
type FoodItem struct {
	gorm.Model
	FoodItemID      string  `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name            string  `gorm:"not null"`
	Calories        float64 `gorm:"not null"`
	Proteins        float64
	Fats            float64
	Carbohydrates   float64
	CreatedByUserID string `gorm:"type:varchar(36);index;not null"`
	IsCustomDish    bool   `gorm:"not null;default:false"`
	IsPublicPlan    bool   `gorm:"index;not null;default:false"`
}
