package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/collabhq/collabhub/pkg/logger"
	"github.com/collabhq/collabhub/pkg/tier"
)

// ErrNotFound is returned when a collaborator doesn't exist
var ErrNotFound = errors.New("collaborator not found")

// Provider supplies ranking data from an external read-only source
type Provider interface {
	FetchCollaborators(ctx context.Context) ([]CollaboratorProfile, error)
	FetchMerchants(ctx context.Context) ([]MerchantEntry, error)
}

// HTTPProvider reads leaderboard rows from a PostgREST-style JSON endpoint
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider rooted at baseURL. Collaborators are
// read from {base}/collaborators, merchants from {base}/merchant_leaderboard.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

// FetchCollaborators reads the collaborator ranking
func (p *HTTPProvider) FetchCollaborators(ctx context.Context) ([]CollaboratorProfile, error) {
	var rows []CollaboratorProfile
	if err := p.getJSON(ctx, p.baseURL+"/collaborators", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchMerchants reads the merchant ranking
func (p *HTTPProvider) FetchMerchants(ctx context.Context) ([]MerchantEntry, error) {
	var rows []MerchantEntry
	if err := p.getJSON(ctx, p.baseURL+"/merchant_leaderboard", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (p *HTTPProvider) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build leaderboard request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("leaderboard source returned %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Service serves ranking data, seeded wholesale from the provider with the
// built-in mock lists as fallback. Tier fields are always recomputed from
// approved counts regardless of data origin.
type Service struct {
	provider Provider
	log      logger.Logger

	mu            sync.RWMutex
	collaborators []CollaboratorProfile
	merchants     []MerchantEntry
	winners       []DailyWinner
}

// NewService creates a leaderboard service pre-seeded with the fallback
// lists. provider may be nil.
func NewService(provider Provider, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	s := &Service{provider: provider, log: log}
	s.seed(fallbackCollaborators, fallbackMerchants, fallbackDailyWinners)
	return s
}

// Load replaces the seeds with provider data. Any failure or empty result
// keeps the current data and logs a warning.
func (s *Service) Load(ctx context.Context) {
	if s.provider == nil {
		return
	}

	collabs, err := s.provider.FetchCollaborators(ctx)
	if err != nil || len(collabs) == 0 {
		s.log.Warn("collaborator source unavailable, keeping current leaderboard", "error", err)
		return
	}
	merchants, err := s.provider.FetchMerchants(ctx)
	if err != nil || len(merchants) == 0 {
		s.log.Warn("merchant source unavailable, keeping current leaderboard", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collaborators = normalize(collabs)
	s.merchants = merchants
	s.log.Info("leaderboard data loaded", "collaborators", len(collabs), "merchants", len(merchants))
}

// Collaborators returns the collaborator ranking sorted by total earnings
func (s *Service) Collaborators() []CollaboratorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CollaboratorProfile, len(s.collaborators))
	copy(out, s.collaborators)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalEarnings > out[j].TotalEarnings
	})
	return out
}

// Collaborator returns one profile by id
func (s *Service) Collaborator(id string) (CollaboratorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.collaborators {
		if c.ID == id {
			return c, nil
		}
	}
	return CollaboratorProfile{}, ErrNotFound
}

// Merchants returns the merchant ranking sorted by commissions given
func (s *Service) Merchants() []MerchantEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MerchantEntry, len(s.merchants))
	copy(out, s.merchants)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CommissionsGiven > out[j].CommissionsGiven
	})
	return out
}

// DailyWinners returns today's spotlight entries
func (s *Service) DailyWinners() []DailyWinner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DailyWinner, len(s.winners))
	copy(out, s.winners)
	return out
}

// RotateDailyWinners re-draws the daily spotlight from the current
// collaborator ranking. Run by the midnight cron job.
func (s *Service) RotateDailyWinners() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.collaborators) == 0 {
		return
	}

	count := 3
	if len(s.collaborators) < count {
		count = len(s.collaborators)
	}

	idx := indexes(len(s.collaborators))
	gofakeit.ShuffleInts(idx)
	picked := idx[:count]
	winners := make([]DailyWinner, 0, count)
	for _, i := range picked {
		c := s.collaborators[i]
		merchant := "Snoonu"
		campaignName := "Daily Spotlight"
		if len(c.TopCampaigns) > 0 {
			top := c.TopCampaigns[gofakeit.Number(0, len(c.TopCampaigns)-1)]
			merchant = top.Merchant
		}
		winners = append(winners, DailyWinner{
			CollaboratorID: c.ID,
			Handle:         c.Handle,
			Campaign:       campaignName,
			Merchant:       merchant,
			Earnings:       float64(gofakeit.Number(4000, 9500)) / 100,
		})
	}

	sort.Slice(winners, func(i, j int) bool { return winners[i].Earnings > winners[j].Earnings })
	s.winners = winners
	s.log.Info("daily winners rotated", "count", len(winners))
}

func (s *Service) seed(collabs []CollaboratorProfile, merchants []MerchantEntry, winners []DailyWinner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collaborators = normalize(collabs)
	s.merchants = merchants
	s.winners = winners
}

// normalize recomputes derived tier fields from approved counts
func normalize(collabs []CollaboratorProfile) []CollaboratorProfile {
	out := make([]CollaboratorProfile, len(collabs))
	copy(out, collabs)
	for i := range out {
		out[i].Tier = tier.Compute(out[i].ApprovedCount)
	}
	return out
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
