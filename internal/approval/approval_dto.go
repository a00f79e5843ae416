package approval

type ApproveRequest struct {
	Level string `json:"level" binding:"required,oneof=manager hr superadmin"`
}

type RejectRequest struct {
	Level           string `json:"level" binding:"required,oneof=manager hr superadmin"`
	RejectionReason string `json:"rejection_reason" binding:"required"`
}
