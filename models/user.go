package models

import (
	"gorm.io/gorm"
)

// Account roles. A role is picked exactly once during onboarding and is
// not user-editable afterwards.
const (
	RoleUnset    = ""
	RoleCustomer = "customer"
	RoleTrainer  = "trainer"
)

type UserAccount struct {
	gorm.Model
	UserID   string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string
	Role     string `gorm:"type:varchar(16);not null;default:''"`
}
