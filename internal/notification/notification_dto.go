package notification

type MarkViewedRequest struct {
	Kind string `json:"kind" binding:"required,oneof=approvals requests"`
}

type StatusResponse struct {
	Kind       string  `json:"kind"`
	LastViewed *string `json:"last_viewed"`
	Pending    int64   `json:"pending"`
}
