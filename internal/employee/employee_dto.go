package employee

type ListFilter struct {
	Department string `form:"department"`
	Role       string `form:"role"`
	Status     string `form:"status"`
}

type EmployeeResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Department  string  `json:"department"`
	Designation string  `json:"designation,omitempty"`
	ManagerCode *string `json:"manager_code,omitempty"`
	Status      string  `json:"status"`
}
