package models

import "slices"

// Role is the account type that drives authorization decisions.
type Role string

const (
	RoleClient   Role = "Client"
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

// Valid reports whether r is one of the known account types.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Identity is the authenticated principal of a request. It is decoded from
// the session token once per request and stored in the request context.
type Identity struct {
	AccountID int64  `json:"account_id"`
	FirstName string `json:"account_firstname"`
	LastName  string `json:"account_lastname"`
	Email     string `json:"account_email"`
	Role      Role   `json:"account_type"`
}

// HasRole reports whether the identity's role is one of roles.
func (i Identity) HasRole(roles ...Role) bool {
	return slices.Contains(roles, i.Role)
}

// IsStaff reports whether the identity may manage inventory.
func (i Identity) IsStaff() bool {
	return i.HasRole(RoleEmployee, RoleAdmin)
}
