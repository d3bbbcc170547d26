package services

import (
	"errors"

	"github.com/QUATTR0KI/fatbeaches-web/models"

	"gorm.io/gorm"
)

type ProfileStore interface {
	FindByUserID(userID string) (*models.UserProfile, error)
	Save(profile *models.UserProfile) error
}

type gormProfileStore struct {
	db *gorm.DB
}

func (s *gormProfileStore) FindByUserID(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *gormProfileStore) Save(profile *models.UserProfile) error {
	if profile.ID == 0 {
		return s.db.Create(profile).Error
	}
	return s.db.Save(profile).Error
}

type ProfileService struct {
	store ProfileStore
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{store: &gormProfileStore{db: db}}
}

func newProfileServiceWithStore(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Get(userID string) (*models.UserProfile, error) {
	profile, err := s.store.FindByUserID(userID)
	if err != nil {
		return nil, errors.New("profile not found")
	}
	return profile, nil
}

// Submit validates the anthropometric inputs, re-derives BMR and the daily
// calorie goal from scratch, and upserts the profile keyed on user_id.
// A validation failure writes nothing, and the derived fields are never
// patched in place: every submission recomputes them from the inputs.
func (s *ProfileService) Submit(userID string, age int, weightKg, heightCm float64, gender, goal string) (*models.UserProfile, error) {
	bmr, calories, err := DailyCalorieTarget(weightKg, heightCm, age, gender, goal)
	if err != nil {
		return nil, err
	}

	profile, err := s.store.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &models.UserProfile{UserID: userID}
	}

	profile.Age = age
	profile.WeightKg = weightKg
	profile.HeightCm = heightCm
	profile.Gender = gender
	profile.Goal = goal
	profile.BMR = bmr
	profile.DailyCaloriesGoal = calories

	if err := s.store.Save(profile); err != nil {
		return nil, err
	}

	EmitSessionEvent(userID, EventRecordsChanged)
	return profile, nil
}
