package leaderboard

import "github.com/collabhq/collabhub/pkg/tier"

// TopCampaign is one of a collaborator's best-earning campaigns
type TopCampaign struct {
	Merchant string  `json:"merchant"`
	Logo     string  `json:"logo"`
	Earnings float64 `json:"earnings"`
}

// CollaboratorProfile is a read-only ranking entity for the collaborator
// leaderboard. The tier is derived from ApprovedCount, never stored
// authoritatively.
type CollaboratorProfile struct {
	ID             string        `json:"id"`
	Handle         string        `json:"handle"`
	Avatar         string        `json:"avatar"`
	Tier           tier.Tier     `json:"tier"`
	ApprovedCount  int           `json:"approved_count"`
	TotalEarnings  float64       `json:"total_earnings"`
	Followers      int           `json:"followers,omitempty"`
	ConversionRate float64       `json:"conversion_rate,omitempty"`
	TopCampaigns   []TopCampaign `json:"top_campaigns"`
	JoinedDate     string        `json:"joined_date"`
}

// MerchantEntry is one row of the merchant leaderboard
type MerchantEntry struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Logo              string   `json:"logo"`
	CommissionsGiven  float64  `json:"commissions_given"`
	CollabsEnrolled   int      `json:"collabs_enrolled"`
	Tags              []string `json:"tags"`
}

// DailyWinner is a daily spotlight entry
type DailyWinner struct {
	CollaboratorID string  `json:"collaborator_id"`
	Handle         string  `json:"handle"`
	Campaign       string  `json:"campaign"`
	Merchant       string  `json:"merchant"`
	Earnings       float64 `json:"earnings"`
}
