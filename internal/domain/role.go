package domain

import "strings"

// Role is the closed set of employee roles. There is no role-mutation path
// anywhere in the API; records get their role at provisioning time.
type Role string

const (
	RoleStaff Role = "staff"
	RoleHR    Role = "hr"
	RoleCEO   Role = "ceo"
)

// NormalizeRole is the single place raw role strings are canonicalized.
// Unknown values normalize to staff, the least-privileged role.
func NormalizeRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleHR:
		return RoleHR
	case RoleCEO:
		return RoleCEO
	default:
		return RoleStaff
	}
}

// IsAdmin reports whether the role may operate the approval workflow.
func (r Role) IsAdmin() bool {
	return r == RoleHR || r == RoleCEO
}

func (r Role) String() string {
	return string(r)
}
