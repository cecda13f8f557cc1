package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/collabhq/collabhub/pkg/enrollment"
	"github.com/collabhq/collabhub/pkg/logger"
	"github.com/collabhq/collabhub/pkg/metrics"
	"github.com/collabhq/collabhub/pkg/models"
)

// Service materializes the conversion pool from the enrollment store and
// answers analytics queries against it. The pool is rebuilt only when the
// store's revision changes, so search and paging operate on a stable list
// between enrollment mutations. Rebuilding redraws the synthetic values;
// that is inherent to the mock data and covered in the package tests.
type Service struct {
	store   *enrollment.Store
	metrics *metrics.Metrics
	log     logger.Logger

	mu       sync.Mutex
	pool     []ConversionRecord
	revision uint64
	built    bool
}

// NewService creates a new analytics service over the enrollment store.
// m may be nil.
func NewService(store *enrollment.Store, m *metrics.Metrics, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{store: store, metrics: m, log: log}
}

// Query holds the parameters of one analytics request
type Query struct {
	Range    TimeRange
	Merchant string
	Search   string
	Page     int
}

// Report is the full analytics response: summary data with one page of
// conversions, the page-control labels, and the merchant filter options
type Report struct {
	Data
	Pagination models.PaginationInfo `json:"pagination"`
	Pages      []string              `json:"pages"`
	Merchants  []string              `json:"merchants"`
}

// Pool returns the current materialized conversion pool, rebuilding it when
// the enrollment collection has changed since the last build
func (s *Service) Pool() []ConversionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rev := s.store.Revision()
	if s.built && rev == s.revision {
		return s.pool
	}

	s.pool = GenerateConversionPool(s.store.List(), time.Now())
	s.revision = rev
	s.built = true
	if s.metrics != nil {
		s.metrics.RecordPoolBuild()
	}
	s.log.Debug("conversion pool rebuilt", "revision", rev, "records", len(s.pool))
	return s.pool
}

// Run executes a query: aggregate, then search, then paginate
func (s *Service) Run(q Query) Report {
	if q.Page < 1 {
		q.Page = 1
	}

	data := Aggregate(s.Pool(), q.Merchant, q.Range, time.Now())

	matched := Search(data.RecentConversions, q.Search)
	page, totalPages := Paginate(matched, q.Page)
	data.RecentConversions = page

	return Report{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       q.Page,
			Limit:      PageSize,
			Total:      len(matched),
			TotalPages: totalPages,
			HasNext:    q.Page < totalPages,
			HasPrev:    q.Page > 1 && totalPages > 0,
		},
		Pages:     PageNumbers(totalPages, q.Page),
		Merchants: s.merchants(),
	}
}

// merchants lists the distinct campaign merchants across all enrollments
func (s *Service) merchants() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range s.store.List() {
		if _, ok := seen[e.Campaign.Merchant]; ok {
			continue
		}
		seen[e.Campaign.Merchant] = struct{}{}
		out = append(out, e.Campaign.Merchant)
	}
	sort.Strings(out)
	return out
}
