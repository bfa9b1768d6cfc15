package identity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the capability tier assigned to an actor.
type Role string

// Role tiers ordered by capability. Staff and admin are functionally
// equivalent elevated tiers; every policy rule treats them identically.
const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// Roles lists every valid role.
var Roles = []Role{RoleUser, RoleStaff, RoleAdmin}

// ParseRole converts a string into a Role, failing closed on unknown input.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleStaff, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Elevated reports whether the role grants the elevated capability tier.
func (r Role) Elevated() bool {
	return r == RoleStaff || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// Actor represents an authenticated identity in the system. The Main flag
// marks the single distinguished super-admin; it is orthogonal to Role and
// only meaningful on an elevated account.
type Actor struct {
	ID           uuid.UUID
	Login        string
	Email        string
	Role         Role
	Main         bool
	Confirmed    bool
	Active       bool
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsElevated reports whether the actor is in the staff/admin tier.
func (a *Actor) IsElevated() bool {
	return a != nil && a.Role.Elevated()
}

// IsPlainUser reports whether the actor holds the base user role.
func (a *Actor) IsPlainUser() bool {
	return a != nil && a.Role == RoleUser
}

// IsMain reports whether the actor is the distinguished main account,
// exempt from the elevated-tier policy carve-outs.
func (a *Actor) IsMain() bool {
	return a != nil && a.Main
}

// Usable reports whether the actor may hold a session: the identity must be
// confirmed and the account active.
func (a *Actor) Usable() bool {
	return a != nil && a.Confirmed && a.Active
}

// HasPassword reports whether a password hash is set. A cleared hash marks
// states where no password is usable, such as pending invitations.
func (a *Actor) HasPassword() bool {
	return a != nil && len(a.PasswordHash) > 0
}
