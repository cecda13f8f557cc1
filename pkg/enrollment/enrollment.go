package enrollment

import (
	"time"

	"github.com/collabhq/collabhub/pkg/campaign"
)

// UploadedFile describes the video file attached to an enrollment
type UploadedFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Stats holds the performance numbers synthesized when an enrollment is
// approved. Present exactly when Status is approved.
type Stats struct {
	Clicks   int     `json:"clicks"`
	Orders   int     `json:"orders"`
	Earnings float64 `json:"earnings"`
}

// Enrollment is one collaborator's participation in one campaign
type Enrollment struct {
	ID              string            `json:"id"`
	Campaign        campaign.Campaign `json:"campaign"`
	Status          Status            `json:"status"`
	ReferralURL     string            `json:"referral_url,omitempty"`
	UploadedFile    *UploadedFile     `json:"uploaded_file,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	Stats           *Stats            `json:"stats,omitempty"`
	Clicks          int               `json:"clicks"`
	Orders          int               `json:"orders"`
	Earnings        float64           `json:"earnings"`
	EnrolledAt      time.Time         `json:"enrolled_at"`
}
