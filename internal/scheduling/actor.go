package scheduling

import "github.com/google/uuid"

type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// Actor is the caller identity passed explicitly into every engine operation.
// It is never read from ambient/session state inside this package.
type Actor struct {
	ID    uuid.UUID
	Roles []Role
}

func (a Actor) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the actor holds staff or admin privileges.
func (a Actor) IsStaff() bool {
	return a.HasRole(RoleStaff) || a.HasRole(RoleAdmin)
}
