package attendance

const (
	StatusPresent    = "present"
	StatusLeave      = "leave"
	StatusPermission = "permission"
)

type DailyQuery struct {
	Date string `form:"date" binding:"required"`
}

type EmployeeStatus struct {
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Status       string `json:"status"`
}

type DailyStatusResponse struct {
	Date      string           `json:"date"`
	Employees []EmployeeStatus `json:"employees"`
}

type DepartmentCounts struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Leave      int    `json:"leave"`
	Permission int    `json:"permission"`
}

type DepartmentRollupResponse struct {
	Date        string             `json:"date"`
	Departments []DepartmentCounts `json:"departments"`
}
