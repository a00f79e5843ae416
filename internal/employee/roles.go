package employee

const (
	RoleEmployee   = "employee"
	RoleManager    = "manager"
	RoleHR         = "hr"
	RoleSuperadmin = "superadmin"

	// Auxiliary roles the organization hands out; for scheduling purposes
	// they carry employee capabilities.
	RoleIntern    = "intern"
	RoleDI        = "di"
	RoleDM        = "dm"
	RoleAssociate = "associate"
)

// employeeEquivalentRoles is the explicit capability set for roles that
// behave like plain employees. Unknown role strings deliberately fall
// outside it so new roles surface as errors instead of being silently
// treated as staff.
var employeeEquivalentRoles = map[string]struct{}{
	RoleEmployee:  {},
	RoleIntern:    {},
	RoleDI:        {},
	RoleDM:        {},
	RoleAssociate: {},
}

var approverRoles = map[string]struct{}{
	RoleManager:    {},
	RoleHR:         {},
	RoleSuperadmin: {},
}

// IsEmployeeEquivalent reports whether the role carries plain-employee
// capabilities (needs a backup employee, routed employee-style).
func IsEmployeeEquivalent(role string) bool {
	_, ok := employeeEquivalentRoles[role]
	return ok
}

// IsApprover reports whether the role sits in the approval chain and is
// exempt from naming a backup employee.
func IsApprover(role string) bool {
	_, ok := approverRoles[role]
	return ok
}

// IsKnownRole reports whether the role string is recognized at all.
func IsKnownRole(role string) bool {
	return IsEmployeeEquivalent(role) || IsApprover(role)
}
