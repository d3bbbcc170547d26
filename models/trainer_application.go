package models

import (
	"gorm.io/gorm"
)

// Application statuses. Transitions are owned by an administrator; the
// client only ever inserts with status=pending.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

type TrainerApplication struct {
	gorm.Model
	UserID             string `gorm:"type:varchar(36);uniqueIndex;not null"`
	CredentialsDetails string `gorm:"type:text;not null"`
	Status             string `gorm:"type:varchar(16);not null;default:'pending'"`
}
