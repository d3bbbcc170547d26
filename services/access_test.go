package services

import (
	"testing"

	"github.com/QUATTR0KI/fatbeaches-web/models"
)

func TestEvaluateAccessTable(t *testing.T) {
	tests := []struct {
		name string
		in   AccessInputs
		want AccessState
	}{
		{
			name: "no session",
			in:   AccessInputs{},
			want: StateUnauthenticated,
		},
		{
			name: "no session ignores everything else",
			in:   AccessInputs{Role: models.RoleCustomer, HasProfile: true, EditingProfile: true},
			want: StateUnauthenticated,
		},
		{
			name: "role unset",
			in:   AccessInputs{SessionPresent: true},
			want: StateRoleUnset,
		},
		{
			name: "customer without profile",
			in:   AccessInputs{SessionPresent: true, Role: models.RoleCustomer},
			want: StateCustomerOnboarding,
		},
		{
			name: "customer with profile",
			in:   AccessInputs{SessionPresent: true, Role: models.RoleCustomer, HasProfile: true},
			want: StateCustomerDashboard,
		},
		{
			name: "customer editing profile",
			in:   AccessInputs{SessionPresent: true, Role: models.RoleCustomer, HasProfile: true, EditingProfile: true},
			want: StateProfileEdit,
		},
		{
			name: "editing without profile still onboards",
			in:   AccessInputs{SessionPresent: true, Role: models.RoleCustomer, EditingProfile: true},
			want: StateCustomerOnboarding,
		},
		{
			name: "trainer without application",
			in:   AccessInputs{SessionPresent: true, Role: models.RoleTrainer},
			want: StateTrainerVerificationForm,
		},
		{
			name: "trainer pending",
			in:   AccessInputs{SessionPresent: true, Role: models.RoleTrainer, HasApplication: true, ApplicationStatus: models.ApplicationPending},
			want: StateTrainerPending,
		},
		{
			name: "trainer approved",
			in:   AccessInputs{SessionPresent: true, Role: models.RoleTrainer, HasApplication: true, ApplicationStatus: models.ApplicationApproved},
			want: StateTrainerActive,
		},
		{
			name: "trainer rejected is also not pending",
			in:   AccessInputs{SessionPresent: true, Role: models.RoleTrainer, HasApplication: true, ApplicationStatus: models.ApplicationRejected},
			want: StateTrainerActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateAccess(tt.in); got != tt.want {
				t.Errorf("EvaluateAccess(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Every reachable input combination must land in exactly one non-loading
// state: the machine is total and unambiguous.
func TestEvaluateAccessCompleteness(t *testing.T) {
	roles := []string{models.RoleUnset, models.RoleCustomer, models.RoleTrainer}
	appStatuses := []string{models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected}

	known := map[AccessState]bool{
		StateUnauthenticated:         true,
		StateRoleUnset:               true,
		StateCustomerOnboarding:      true,
		StateTrainerVerificationForm: true,
		StateTrainerPending:          true,
		StateTrainerActive:           true,
		StateCustomerDashboard:       true,
		StateProfileEdit:             true,
	}

	for _, session := range []bool{false, true} {
		for _, role := range roles {
			for _, hasProfile := range []bool{false, true} {
				for _, hasApp := range []bool{false, true} {
					for _, status := range appStatuses {
						for _, editing := range []bool{false, true} {
							in := AccessInputs{
								SessionPresent:    session,
								Role:              role,
								HasProfile:        hasProfile,
								HasApplication:    hasApp,
								ApplicationStatus: status,
								EditingProfile:    editing,
							}
							got := EvaluateAccess(in)
							if !known[got] {
								t.Fatalf("EvaluateAccess(%+v) = %q, not a renderable state", in, got)
							}
							if got == StateLoading {
								t.Fatalf("EvaluateAccess(%+v) fell back to loading", in)
							}
						}
					}
				}
			}
		}
	}
}
