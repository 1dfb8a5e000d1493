package user

// Role separates league administration from ordinary team managers.
type Role string

const (
	RoleTeam         Role = "team"
	RoleCommissioner Role = "commissioner"
)

// Principal is the verified session identity attached to a request.
type Principal struct {
	TeamID   string
	TeamName string
	Role     Role
}

func (p Principal) IsCommissioner() bool {
	return p.Role == RoleCommissioner
}
