package rbac

// Role names mirror the employee roster. The aux roles inherit the employee
// permission set through grouping policies rather than duplicated rows.
const (
	roleEmployee   = "employee"
	roleManager    = "manager"
	roleHR         = "hr"
	roleSuperadmin = "superadmin"
)

var employeeEquivalentRoles = []string{"intern", "di", "dm", "associate"}

type permission struct {
	Role     string
	Resource string
	Action   string
}

// staticPolicy is the full permission matrix. Request submission is open to
// every role; acting on approvals and reading attendance rollups belong to
// the approver chain.
var staticPolicy = []permission{
	{roleEmployee, "request", "create"},
	{roleEmployee, "request", "read"},
	{roleEmployee, "employee", "read"},
	{roleEmployee, "holiday", "read"},
	{roleEmployee, "window", "read"},
	{roleEmployee, "notification", "read"},
	{roleEmployee, "notification", "update"},

	{roleManager, "approval", "act"},
	{roleManager, "attendance", "read"},

	{roleHR, "approval", "act"},
	{roleHR, "attendance", "read"},

	{roleSuperadmin, "approval", "act"},
	{roleSuperadmin, "attendance", "read"},
}

// roleInherits maps a role to the roles whose permissions it also holds.
var roleInherits = map[string][]string{
	roleManager:    {roleEmployee},
	roleHR:         {roleEmployee},
	roleSuperadmin: {roleEmployee},
}

func init() {
	for _, aux := range employeeEquivalentRoles {
		roleInherits[aux] = []string{roleEmployee}
	}
}
