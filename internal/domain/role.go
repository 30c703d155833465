package domain

import "fmt"

// Role closed set; stored as string in DB
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

// Can reports whether a principal with this role may act as required.
// Admin covers user-level requirements.
func (r Role) Can(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}
