package services

import (
	"testing"

	"github.com/QUATTR0KI/fatbeaches-web/models"

	"gorm.io/gorm"
)

type fakeProfileStore struct {
	byUser map[string]*models.UserProfile
	nextID uint
	saves  int
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{byUser: make(map[string]*models.UserProfile), nextID: 1}
}

func (f *fakeProfileStore) FindByUserID(userID string) (*models.UserProfile, error) {
	if p, ok := f.byUser[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileStore) Save(profile *models.UserProfile) error {
	if profile.ID == 0 {
		profile.ID = f.nextID
		f.nextID++
	}
	cp := *profile
	f.byUser[profile.UserID] = &cp
	f.saves++
	return nil
}

// A resubmission must round-trip the five user-entered fields unchanged and
// recompute both derived fields from the new inputs, never carrying either
// over from the previous row.
func TestProfileSubmitRoundTrip(t *testing.T) {
	store := newFakeProfileStore()
	svc := newProfileServiceWithStore(store)

	first, err := svc.Submit("user-1", 25, 70, 175, models.GenderMale, models.GoalMaintain)
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if first.BMR != 1674 || first.DailyCaloriesGoal != 2301 {
		t.Errorf("first derived = (%d, %d), want (1674, 2301)", first.BMR, first.DailyCaloriesGoal)
	}

	second, err := svc.Submit("user-1", 30, 80, 180, models.GenderFemale, models.GoalLoseWeight)
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}

	if second.Age != 30 || second.WeightKg != 80 || second.HeightCm != 180 ||
		second.Gender != models.GenderFemale || second.Goal != models.GoalLoseWeight {
		t.Errorf("inputs did not round-trip: %+v", second)
	}
	// 10*80 + 6.25*180 - 5*30 - 161 = 1614; round(1614*1.375) - 500 = 1719
	if second.BMR != 1614 || second.DailyCaloriesGoal != 1719 {
		t.Errorf("second derived = (%d, %d), want (1614, 1719)", second.BMR, second.DailyCaloriesGoal)
	}

	// same row updated, not a second one created
	if second.ID != first.ID {
		t.Errorf("resubmit created a new row: id %d then %d", first.ID, second.ID)
	}
	if len(store.byUser) != 1 || store.saves != 2 {
		t.Errorf("store holds %d rows after %d saves", len(store.byUser), store.saves)
	}

	stored, err := svc.Get("user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *stored != *second {
		t.Errorf("Get = %+v, want %+v", stored, second)
	}
}

func TestProfileGetAbsent(t *testing.T) {
	svc := newProfileServiceWithStore(newFakeProfileStore())
	if _, err := svc.Get("nobody"); err == nil {
		t.Error("expected error for missing profile")
	}
}
