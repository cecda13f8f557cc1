package campaign

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/collabhq/collabhub/pkg/cache"
	"github.com/collabhq/collabhub/pkg/logger"
	"github.com/collabhq/collabhub/pkg/metrics"
)

// ErrNotFound is returned when a campaign doesn't exist
var ErrNotFound = errors.New("campaign not found")

const (
	cacheKey = "campaigns:catalog"
	cacheTTL = 1 * time.Hour
)

// Service serves the campaign catalog. Lookups go cache → provider → built-in
// fallback; a provider failure or empty result is logged and absorbed, never
// surfaced to the consumer.
type Service struct {
	provider Provider
	cache    *cache.Client
	metrics  *metrics.Metrics
	log      logger.Logger
}

// NewService creates a new campaign service. provider, cache and m may be
// nil; without provider and cache the service always serves the fallback
// list.
func NewService(provider Provider, cacheClient *cache.Client, m *metrics.Metrics, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{provider: provider, cache: cacheClient, metrics: m, log: log}
}

// List returns the current campaign catalog
func (s *Service) List(ctx context.Context) []Campaign {
	if cached, ok := s.fromCache(ctx); ok {
		return cached
	}

	campaigns, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("campaign source unavailable, serving fallback catalog", "error", err)
		return FallbackCampaigns
	}
	if len(campaigns) == 0 {
		s.log.Warn("campaign source returned no rows, serving fallback catalog")
		return FallbackCampaigns
	}

	s.toCache(ctx, campaigns)
	return campaigns
}

// Get returns a single campaign by id
func (s *Service) Get(ctx context.Context, id string) (Campaign, error) {
	for _, c := range s.List(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return Campaign{}, ErrNotFound
}

// Refresh re-reads the catalog from the provider and repopulates the cache.
// Used by the hourly cron job.
func (s *Service) Refresh(ctx context.Context) error {
	campaigns, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	if len(campaigns) == 0 {
		return errors.New("campaign source returned no rows")
	}
	s.toCache(ctx, campaigns)
	s.log.Info("campaign catalog refreshed", "count", len(campaigns))
	return nil
}

func (s *Service) fetch(ctx context.Context) ([]Campaign, error) {
	if s.provider == nil {
		return nil, errors.New("no campaign provider configured")
	}
	return s.provider.FetchCampaigns(ctx)
}

func (s *Service) fromCache(ctx context.Context) ([]Campaign, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		s.recordCache(false)
		return nil, false
	}

	var campaigns []Campaign
	if err := json.Unmarshal([]byte(raw), &campaigns); err != nil {
		s.log.Warn("failed to decode cached campaigns", "error", err)
		s.recordCache(false)
		return nil, false
	}
	if len(campaigns) == 0 {
		s.recordCache(false)
		return nil, false
	}
	s.recordCache(true)
	return campaigns, true
}

func (s *Service) recordCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.RecordCacheHit("redis")
	} else {
		s.metrics.RecordCacheMiss("redis")
	}
}

func (s *Service) toCache(ctx context.Context, campaigns []Campaign) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(campaigns)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, cacheTTL); err != nil {
		s.log.Warn("failed to cache campaigns", "error", err)
	}
}
