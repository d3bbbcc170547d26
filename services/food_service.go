package services

import (
	"errors"
	"strings"

	"github.com/QUATTR0KI/fatbeaches-web/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Search partitions. A query is always scoped to exactly one of them; they
// are never merged.
const (
	ScopeMine   = "mine"
	ScopePublic = "public"
)

// scopeClause maps a partition to its WHERE condition. The public partition
// never references the caller, so a user's private items cannot leak into it.
func scopeClause(scope, userID string) (string, any, error) {
	switch scope {
	case ScopeMine:
		return "created_by_user_id = ?", userID, nil
	case ScopePublic:
		return "is_public_plan = ?", true, nil
	default:
		return "", nil, errors.New("scope must be mine or public")
	}
}

type FoodStore interface {
	Search(scope, userID, nameFilter string) ([]models.FoodItem, error)
	Create(item *models.FoodItem) error
}

type gormFoodStore struct {
	db *gorm.DB
}

func (s *gormFoodStore) Search(scope, userID, nameFilter string) ([]models.FoodItem, error) {
	clause, arg, err := scopeClause(scope, userID)
	if err != nil {
		return nil, err
	}

	q := s.db.Model(&models.FoodItem{}).Where(clause, arg)
	if nameFilter != "" {
		q = q.Where("name ILIKE ?", "%"+nameFilter+"%")
	}

	var items []models.FoodItem
	err = q.Order("name").Find(&items).Error
	return items, err
}

func (s *gormFoodStore) Create(item *models.FoodItem) error {
	return s.db.Create(item).Error
}

type FoodService struct {
	store FoodStore
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{store: &gormFoodStore{db: db}}
}

func newFoodServiceWithStore(store FoodStore) *FoodService {
	return &FoodService{store: store}
}

func (s *FoodService) Search(userID, scope, nameFilter string) ([]models.FoodItem, error) {
	if scope != ScopeMine && scope != ScopePublic {
		return nil, errors.New("scope must be mine or public")
	}
	return s.store.Search(scope, userID, strings.TrimSpace(nameFilter))
}

// CreateCustom adds a private catalog item. The flags are fixed no matter
// which partition was being browsed when creation started.
func (s *FoodService) CreateCustom(userID, name string, calories, proteins, fats, carbohydrates float64) (*models.FoodItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if calories < 0 || proteins < 0 || fats < 0 || carbohydrates < 0 {
		return nil, errors.New("nutrient values must be non-negative")
	}

	item := &models.FoodItem{
		FoodItemID:      uuid.NewString(),
		Name:            name,
		Calories:        calories,
		Proteins:        proteins,
		Fats:            fats,
		Carbohydrates:   carbohydrates,
		CreatedByUserID: userID,
		IsCustomDish:    true,
		IsPublicPlan:    false,
	}
	if err := s.store.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}
