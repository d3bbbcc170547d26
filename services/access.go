package services

import (
	"github.com/QUATTR0KI/fatbeaches-web/models"
)

// AccessState names the single screen a user may see. States are mutually
// exclusive; EvaluateAccess picks exactly one for any combination of inputs.
type AccessState string

const (
	StateLoading                 AccessState = "loading"
	StateUnauthenticated         AccessState = "unauthenticated"
	StateRoleUnset               AccessState = "role_unset"
	StateCustomerOnboarding      AccessState = "customer_onboarding"
	StateTrainerVerificationForm AccessState = "trainer_verification_form"
	StateTrainerPending          AccessState = "trainer_pending"
	StateTrainerActive           AccessState = "trainer_active"
	StateCustomerDashboard       AccessState = "customer_dashboard"
	StateProfileEdit             AccessState = "profile_edit"
)

// AccessInputs is everything the state machine looks at. The values come
// from fetched records only; there are no hidden flags.
type AccessInputs struct {
	SessionPresent    bool
	Role              string
	HasProfile        bool
	HasApplication    bool
	ApplicationStatus string
	EditingProfile    bool
}

// EvaluateAccess is a pure, total function over AccessInputs. Post-write
// transitions never call this with fabricated inputs; callers re-fetch
// records first.
func EvaluateAccess(in AccessInputs) AccessState {
	if !in.SessionPresent {
		return StateUnauthenticated
	}

	switch in.Role {
	case models.RoleTrainer:
		if !in.HasApplication {
			return StateTrainerVerificationForm
		}
		if in.ApplicationStatus == models.ApplicationPending {
			return StateTrainerPending
		}
		return StateTrainerActive
	case models.RoleCustomer:
		if !in.HasProfile {
			return StateCustomerOnboarding
		}
		if in.EditingProfile {
			return StateProfileEdit
		}
		return StateCustomerDashboard
	default:
		return StateRoleUnset
	}
}
