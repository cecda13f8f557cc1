package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/collabhq/collabhub/pkg/logger"
)

// DateFilters are the quick filters exposed alongside the listings.
var DateFilters = []string{"Today", "Tomorrow", "This week", "This month"}

// Provider fetches the S City catalog from an upstream source.
type Provider interface {
	FetchEvents(ctx context.Context) ([]Event, error)
	FetchCategories(ctx context.Context) ([]Category, error)
}

// HTTPProvider reads events from a JSON REST endpoint.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) FetchEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	if err := p.getJSON(ctx, p.baseURL+"/events", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *HTTPProvider) FetchCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := p.getJSON(ctx, p.baseURL+"/event_categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *HTTPProvider) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Service serves the S City catalog, falling back to the built-in
// data when no upstream source is configured or reachable.
type Service struct {
	provider Provider
	log      logger.Logger

	mu         sync.RWMutex
	events     []Event
	categories []Category
}

func NewService(provider Provider, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		provider:   provider,
		log:        log,
		events:     fallbackEvents,
		categories: fallbackCategories,
	}
}

// Load refreshes the catalog from the provider. On any failure the
// previously loaded data is kept.
func (s *Service) Load(ctx context.Context) {
	if s.provider == nil {
		return
	}
	evs, err := s.provider.FetchEvents(ctx)
	if err != nil || len(evs) == 0 {
		s.log.Warn("events source unavailable, keeping current catalog", "error", err)
		return
	}
	cats, err := s.provider.FetchCategories(ctx)
	if err != nil {
		s.log.Warn("event categories source unavailable, keeping current categories", "error", err)
		cats = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(cats) > 0 {
		s.categories = cats
	}
	s.events = evs
}

func (s *Service) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// List returns events filtered by category and a free-text query.
// Empty category (or "all") matches every category.
func (s *Service) List(category, query string) []Event {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if category != "" && category != "all" && !strings.EqualFold(e.Category, category) {
			continue
		}
		if q != "" &&
			!strings.Contains(fold.String(e.Title), q) &&
			!strings.Contains(fold.String(e.Category), q) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
