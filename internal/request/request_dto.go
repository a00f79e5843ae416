package request

type CreateRequestDraft struct {
	Type            string `json:"type" binding:"required,oneof=leave halfday permission od"`
	LeaveMode       string `json:"leave_mode" binding:"omitempty,oneof=casual unpaid"`
	HalfDaySession  string `json:"half_day_session" binding:"omitempty,oneof=morning afternoon"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Reason          string `json:"reason"`
	AlternativeCode string `json:"alternative_code"`
}

type ListFilter struct {
	EmployeeCode string `form:"employee_code"`
	Status       string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Granularity  string `form:"granularity" binding:"omitempty,oneof=day week month"`
	Date         string `form:"date"`
	Year         int    `form:"year"`
	Month        int    `form:"month"`
	Week         string `form:"week"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size" binding:"omitempty,max=100"`
}

type ApprovalResponse struct {
	Level           string  `json:"level"`
	Outcome         string  `json:"outcome"`
	ApproverCode    string  `json:"approver_code"`
	ApproverName    string  `json:"approver_name"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	Timestamp       string  `json:"timestamp"`
}

type RequestResponse struct {
	ID              string             `json:"id"`
	EmployeeCode    string             `json:"employee_code"`
	Type            string             `json:"type"`
	LeaveMode       *string            `json:"leave_mode,omitempty"`
	HalfDaySession  *string            `json:"half_day_session,omitempty"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	StartTime       *string            `json:"start_time,omitempty"`
	EndTime         *string            `json:"end_time,omitempty"`
	Reason          string             `json:"reason"`
	AlternativeCode *string            `json:"alternative_code,omitempty"`
	DayCount        float64            `json:"day_count"`
	Status          string             `json:"status"`
	RequiredLevels  []string           `json:"required_levels"`
	NextLevel       string             `json:"next_level,omitempty"`
	Approvals       []ApprovalResponse `json:"approvals"`
	CreatedAt       string             `json:"created_at"`
}
