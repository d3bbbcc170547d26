package services

import (
	"errors"

	"github.com/QUATTR0KI/fatbeaches-web/models"

	"gorm.io/gorm"
)

type AccessService struct {
	db *gorm.DB
}

func NewAccessService(db *gorm.DB) *AccessService {
	return &AccessService{db: db}
}

// AccessSnapshot is the resolved state plus the records that produced it.
type AccessSnapshot struct {
	State       AccessState                `json:"state"`
	Role        string                     `json:"role"`
	Profile     *models.UserProfile        `json:"profile,omitempty"`
	Application *models.TrainerApplication `json:"application,omitempty"`
}

// ResolveAccess fetches role, then profile or trainer application, and
// evaluates the state machine over the fetched records. A failed role read
// keeps the machine in loading and reports the error; a failed fetch of the
// optional profile/application rows is treated the same as "row absent",
// matching the single-row lookup semantics of the record store.
func (s *AccessService) ResolveAccess(userID string, editingProfile bool) (*AccessSnapshot, error) {
	if userID == "" {
		return &AccessSnapshot{State: StateUnauthenticated}, nil
	}

	var account models.UserAccount
	err := s.db.Where("user_id = ?", userID).First(&account).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return &AccessSnapshot{State: StateLoading}, err
	}

	in := AccessInputs{
		SessionPresent: true,
		Role:           account.Role,
		EditingProfile: editingProfile,
	}
	snap := &AccessSnapshot{Role: account.Role}

	switch account.Role {
	case models.RoleTrainer:
		var app models.TrainerApplication
		if err := s.db.Where("user_id = ?", userID).First(&app).Error; err == nil {
			in.HasApplication = true
			in.ApplicationStatus = app.Status
			snap.Application = &app
		}
	case models.RoleCustomer:
		var profile models.UserProfile
		if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			in.HasProfile = true
			snap.Profile = &profile
		}
	}

	snap.State = EvaluateAccess(in)
	return snap, nil
}

// SelectRole records the one-time role choice, then re-resolves the state
// from a fresh fetch. On a write failure nothing transitions.
func (s *AccessService) SelectRole(userID, role string) (*AccessSnapshot, error) {
	if role != models.RoleCustomer && role != models.RoleTrainer {
		return nil, errors.New("role must be customer or trainer")
	}

	var account models.UserAccount
	if err := s.db.Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, errors.New("account not found")
	}
	if account.Role != models.RoleUnset {
		return nil, errors.New("role already selected")
	}

	account.Role = role
	if err := s.db.Save(&account).Error; err != nil {
		return nil, err
	}

	EmitSessionEvent(userID, EventRecordsChanged)
	return s.ResolveAccess(userID, false)
}

// WatchSessions subscribes the state machine to the session event stream:
// every event triggers a re-evaluation pushed to the user's clients. The
// returned func unsubscribes on teardown.
func (s *AccessService) WatchSessions(bus *SessionBus, hub *RealtimeHub) func() {
	return bus.Subscribe(func(ev SessionEvent) {
		if ev.Kind == EventSignedOut {
			hub.Broadcast(ev.UserID, "access.state", AccessSnapshot{State: StateUnauthenticated})
			return
		}
		snap, err := s.ResolveAccess(ev.UserID, false)
		if err != nil {
			return // still loading, nothing durable to show
		}
		hub.Broadcast(ev.UserID, "access.state", snap)
	})
}
