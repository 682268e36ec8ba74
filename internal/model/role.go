package model

import "fmt"

// Role is the closed set of back-office roles. Authorization is a total
// order: every permission granted to a rank is granted to all higher ranks.
type Role string

const (
	RoleUser      Role = "user"
	RoleEditor    Role = "editor"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

var roleRanks = map[Role]int{
	RoleUser:      1,
	RoleEditor:    2,
	RoleModerator: 3,
	RoleAdmin:     4,
}

// Rank returns the role's position in the hierarchy. Unrecognized roles
// rank 0 and therefore fail every requirement.
func (r Role) Rank() int {
	return roleRanks[r]
}

func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Satisfies reports whether a holder of r may act where required is
// demanded. An empty requirement means no restriction.
func (r Role) Satisfies(required Role) bool {
	if required == "" {
		return true
	}
	held := r.Rank()
	if held == 0 {
		return false
	}
	return held >= required.Rank()
}

// ParseRole rejects unknown role strings instead of defaulting them.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}
