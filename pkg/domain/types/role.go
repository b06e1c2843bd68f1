package types

import "fmt"

// Role is the executive role chosen on the second questionnaire step
type Role string

const (
	RoleCRO     Role = "CRO"
	RoleCSO     Role = "CSO"
	RoleSVP     Role = "SVP"
	RoleVP      Role = "VP"
	RoleFounder Role = "Founder"
	RoleOther   Role = "Other"
)

// AllRoles returns all valid roles in display order
func AllRoles() []Role {
	return []Role{
		RoleCRO,
		RoleCSO,
		RoleSVP,
		RoleVP,
		RoleFounder,
		RoleOther,
	}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleCRO, RoleCSO, RoleSVP, RoleVP, RoleFounder, RoleOther:
		return true
	default:
		return false
	}
}

// Label returns the human readable label of the role
func (r Role) Label() string {
	switch r {
	case RoleCRO:
		return "Chief Revenue Officer (CRO)"
	case RoleCSO:
		return "Chief Sales Officer (CSO)"
	case RoleSVP:
		return "SVP of Sales"
	case RoleVP:
		return "VP of Sales"
	default:
		return string(r)
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}
