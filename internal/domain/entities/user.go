package entities

// UserRole controls mutating operations. Admins may manage the stage catalog
// and machines; workers are limited to their assigned stages.

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleWorker UserRole = "worker"
)

// UserProfile is the per-principal record looked up by the authenticated uid.
//
// Storage model (DynamoDB):
//   - PK: uid
//
// AssignedStages lists stage catalog ids the worker may start/complete.
type UserProfile struct {
	UID            string   `json:"uid"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           UserRole `json:"role"`
	AssignedStages []string `json:"assigned_stages,omitempty"`
}

// CanActOnStage reports whether the profile may mutate the given stage.
func (u UserProfile) CanActOnStage(stageID string) bool {
	if u.Role == UserRoleAdmin {
		return true
	}
	for _, s := range u.AssignedStages {
		if s == stageID {
			return true
		}
	}
	return false
}
