package models

// Role is the privilege tier assigned to a user: user < admin < owner.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

var roleRank = map[Role]int{
	RoleUser:  0,
	RoleAdmin: 1,
	RoleOwner: 2,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether a caller with role r passes a gate requiring the
// given minimum role. Owner is a universal override: it passes every gate
// regardless of where the requirement sits in the ordering.
func (r Role) AtLeast(required Role) bool {
	if r == RoleOwner {
		return true
	}
	return roleRank[r] >= roleRank[required]
}
