package approval

import "go-leavedesk/internal/employee"

const (
	LevelManager    = "manager"
	LevelHR         = "hr"
	LevelSuperadmin = "superadmin"
)

// Policy maps a requester's role to the ordered approval levels the request
// must pass. It is a value handed in at wiring time, not baked into the
// state machine, so the routing can be changed without touching transition
// logic.
type Policy struct {
	routes map[string][]string
}

// NewPolicy builds a policy from an explicit role -> levels table.
func NewPolicy(routes map[string][]string) *Policy {
	copied := make(map[string][]string, len(routes))
	for role, levels := range routes {
		copied[role] = append([]string(nil), levels...)
	}
	return &Policy{routes: copied}
}

// DefaultPolicy is the routing in effect today. Confirmed behavior:
// a superadmin's own requests take effect without sign-off.
func DefaultPolicy() *Policy {
	return NewPolicy(map[string][]string{
		employee.RoleEmployee:   {LevelManager, LevelHR},
		employee.RoleManager:    {LevelHR, LevelSuperadmin},
		employee.RoleHR:         {LevelSuperadmin},
		employee.RoleSuperadmin: {},
	})
}

// LevelsFor returns a copy of the routing for the role. Auxiliary roles
// without an explicit route follow the employee routing.
func (p *Policy) LevelsFor(role string) []string {
	levels, ok := p.routes[role]
	if !ok && employee.IsEmployeeEquivalent(role) {
		levels = p.routes[employee.RoleEmployee]
	}
	return append([]string(nil), levels...)
}

// ValidLevel reports whether the string names a known approval level.
func ValidLevel(level string) bool {
	switch level {
	case LevelManager, LevelHR, LevelSuperadmin:
		return true
	}
	return false
}
