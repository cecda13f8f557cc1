package campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Provider supplies the campaign catalog from an external read-only source.
// Implementations must treat failures as recoverable; the service falls back
// to the built-in list.
type Provider interface {
	FetchCampaigns(ctx context.Context) ([]Campaign, error)
}

// HTTPProvider reads campaigns from a PostgREST-style JSON endpoint. Rows come
// back snake_case and are mapped onto the Campaign type.
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTPProvider creates a provider for the given endpoint URL
func NewHTTPProvider(url string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type campaignRow struct {
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
	ProductImage  string   `json:"product_image"`
	ProductName   string   `json:"product_name"`
}

// FetchCampaigns performs a one-shot read against the remote endpoint
func (p *HTTPProvider) FetchCampaigns(ctx context.Context) ([]Campaign, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build campaigns request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("campaign source returned %d: %s", resp.StatusCode, string(body))
	}

	var rows []campaignRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}

	campaigns := make([]Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, Campaign{
			ID:            row.ID,
			Merchant:      row.Merchant,
			Logo:          row.Logo,
			Vertical:      row.Vertical,
			Category:      row.Category,
			Discount:      row.Discount,
			Reward:        row.Reward,
			RewardExample: row.RewardExample,
			MinOrder:      row.MinOrder,
			VideoReq:      row.VideoReq,
			Requirements:  row.Requirements,
			Budget:        row.Budget,
			Timeline:      row.Timeline,
			ReviewNotes:   row.ReviewNotes,
			ProductImage:  row.ProductImage,
			ProductName:   row.ProductName,
		})
	}

	return campaigns, nil
}
