package models

// ErrorResponse represents a standard API error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// EnrollRequest creates a new enrollment for a campaign
type EnrollRequest struct {
	CampaignID string `json:"campaign_id" validate:"required"`
}

// UploadRequest attaches an uploaded file descriptor to an enrollment
type UploadRequest struct {
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size" validate:"required,gt=0"`
}

// RejectRequest rejects an enrollment with an optional reason
type RejectRequest struct {
	Reason string `json:"reason"`
}
