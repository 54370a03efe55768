package domain

// UserRole enumerates dashboard roles.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleSupport  UserRole = "support"
	UserRoleQA       UserRole = "qa"
	UserRoleCustomer UserRole = "customer"
)

// IsStaff reports whether the role belongs to the support team, i.e. may
// see internal comments and be assigned tickets.
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleSupport || r == UserRoleQA
}

// User is a dashboard account. Users are static seed data in this scope;
// no user management mutations exist.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}
