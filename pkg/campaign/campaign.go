package campaign

// Campaign is a read-only descriptor of a merchant promotion. Campaigns are
// immutable once loaded; they come from a remote provider or the built-in
// fallback list.
type Campaign struct {
	ID            string   `json:"id"`
	Merchant      string   `json:"merchant"`
	Logo          string   `json:"logo"`
	Vertical      string   `json:"vertical"`
	Category      string   `json:"category"`
	Discount      string   `json:"discount"`
	Reward        string   `json:"reward"`
	RewardExample string   `json:"reward_example"`
	MinOrder      string   `json:"min_order"`
	VideoReq      string   `json:"video_req"`
	Requirements  []string `json:"requirements"`
	Budget        string   `json:"budget"`
	Timeline      string   `json:"timeline"`
	ReviewNotes   string   `json:"review_notes"`
	ProductImage  string   `json:"product_image,omitempty"`
	ProductName   string   `json:"product_name,omitempty"`
}
