package services

import (
	"errors"
	"log"
	"strings"

	"github.com/QUATTR0KI/fatbeaches-web/models"
	"github.com/QUATTR0KI/fatbeaches-web/utils"

	"gorm.io/gorm"
)

type TrainerService struct {
	db *gorm.DB
}

func NewTrainerService(db *gorm.DB) *TrainerService {
	return &TrainerService{db: db}
}

func (s *TrainerService) GetApplication(userID string) (*models.TrainerApplication, error) {
	var app models.TrainerApplication
	if err := s.db.Where("user_id = ?", userID).First(&app).Error; err != nil {
		return nil, errors.New("application not found")
	}
	return &app, nil
}

// SubmitApplication files the one-per-user verification request with
// status=pending.
func (s *TrainerService) SubmitApplication(userID, credentialsDetails string) (*models.TrainerApplication, error) {
	credentialsDetails = strings.TrimSpace(credentialsDetails)
	if credentialsDetails == "" {
		return nil, errors.New("credentials details are required")
	}

	var existing models.TrainerApplication
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, errors.New("application already submitted")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	app := &models.TrainerApplication{
		UserID:             userID,
		CredentialsDetails: credentialsDetails,
		Status:             models.ApplicationPending,
	}
	if err := s.db.Create(app).Error; err != nil {
		return nil, err
	}

	EmitSessionEvent(userID, EventRecordsChanged)
	return app, nil
}

// Decide applies an administrator's review to a pending application and
// notifies the applicant. The applicant side never mutates status.
func (s *TrainerService) Decide(applicationID uint, status string) (*models.TrainerApplication, error) {
	if status != models.ApplicationApproved && status != models.ApplicationRejected {
		return nil, errors.New("status must be approved or rejected")
	}

	var app models.TrainerApplication
	if err := s.db.First(&app, applicationID).Error; err != nil {
		return nil, errors.New("application not found")
	}
	if app.Status != models.ApplicationPending {
		return nil, errors.New("application already decided")
	}

	app.Status = status
	if err := s.db.Save(&app).Error; err != nil {
		return nil, err
	}

	var account models.UserAccount
	if err := s.db.Where("user_id = ?", app.UserID).First(&account).Error; err == nil {
		go func(email, status string) {
			if err := utils.SendApplicationDecisionEmail(email, status); err != nil {
				log.Printf("decision email to %s failed: %v", email, err)
			}
		}(account.Email, status)
	}

	EmitSessionEvent(app.UserID, EventRecordsChanged)
	return &app, nil
}
