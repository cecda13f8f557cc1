package enrollment

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/collabhq/collabhub/pkg/campaign"
	"github.com/collabhq/collabhub/pkg/logger"
)

// DefaultRejectionReason is attached when a reject operation carries no reason
const DefaultRejectionReason = "Video did not meet the campaign guidelines. Please ensure you mention the discount code clearly."

// Config tunes the simulated review pipeline
type Config struct {
	// ReferralBaseURL is the prefix for generated referral links
	ReferralBaseURL string
	// ReviewDelay is how long a submission sits in processing before moving
	// to under-review
	ReviewDelay time.Duration
	// ApprovalDelay is how long under-review lasts before auto-approval
	ApprovalDelay time.Duration
}

// Service runs the enrollment lifecycle state machine over a Store.
//
// Operations never fail on invalid or terminal-state input: acting on a
// terminal enrollment returns the record unchanged, and acting on a missing
// id reports ok=false. The scheduled review transitions re-check the record's
// status at fire time, so a manual reject or advance issued while a timer is
// pending always wins; the stale timer becomes a no-op.
type Service struct {
	store *Store
	cfg   Config
	log   logger.Logger

	timerMu sync.Mutex
	timers  map[string][]*time.Timer
}

// NewService creates a new enrollment service
func NewService(store *Store, cfg Config, log logger.Logger) *Service {
	if cfg.ReferralBaseURL == "" {
		cfg.ReferralBaseURL = "https://snoonu.com/ref"
	}
	if cfg.ReviewDelay == 0 {
		cfg.ReviewDelay = 4 * time.Second
	}
	if cfg.ApprovalDelay == 0 {
		cfg.ApprovalDelay = 4 * time.Second
	}
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		store:  store,
		cfg:    cfg,
		log:    log,
		timers: make(map[string][]*time.Timer),
	}
}

// Store exposes the underlying collection for read-side consumers
func (s *Service) Store() *Store {
	return s.store
}

// Enroll creates a new enrollment for the campaign with zeroed stats
func (s *Service) Enroll(c campaign.Campaign) Enrollment {
	e := &Enrollment{
		ID:         uuid.NewString(),
		Campaign:   c,
		Status:     StatusEnrolled,
		EnrolledAt: time.Now(),
	}
	s.store.Add(e)
	s.log.Info("enrollment created", "enrollment_id", e.ID, "merchant", c.Merchant)
	return *e
}

// Upload attaches a file descriptor and moves the enrollment to uploaded.
// Re-uploading before submission replaces the file; any other state is a no-op.
func (s *Service) Upload(id string, file UploadedFile) (Enrollment, bool) {
	return s.store.Update(id, func(e *Enrollment) bool {
		if e.Status != StatusEnrolled && e.Status != StatusUploaded {
			return false
		}
		e.UploadedFile = &file
		e.Status = StatusUploaded
		return true
	})
}

// Submit moves an uploaded enrollment into processing and schedules the two
// deferred review transitions (processing → under-review → approved)
func (s *Service) Submit(id string) (Enrollment, bool) {
	e, ok := s.store.Update(id, func(e *Enrollment) bool {
		if e.Status != StatusUploaded {
			return false
		}
		e.Status = StatusProcessing
		return true
	})
	if !ok || e.Status != StatusProcessing {
		return e, ok
	}

	s.schedule(id, s.cfg.ReviewDelay, func() {
		s.applyScheduled(id, StatusProcessing, StatusUnderReview)
	})
	s.schedule(id, s.cfg.ReviewDelay+s.cfg.ApprovalDelay, func() {
		s.applyScheduledApproval(id)
	})

	return e, true
}

// Advance moves a non-terminal enrollment one step along the linear order.
// Reaching approved synthesizes stats and a referral link. Terminal states
// are returned unchanged.
func (s *Service) Advance(id string) (Enrollment, bool) {
	e, ok := s.store.Update(id, func(e *Enrollment) bool {
		if e.Status.IsTerminal() {
			return false
		}
		next, hasNext := e.Status.Next()
		if !hasNext {
			return false
		}
		e.Status = next
		if next == StatusApproved {
			s.approve(e, 400, 40, 150)
		}
		return true
	})
	if ok && e.Status.IsTerminal() {
		s.cancelTimers(id)
	}
	return e, ok
}

// AdvanceToApproved jumps a non-terminal enrollment straight to approved with
// synthesized stats
func (s *Service) AdvanceToApproved(id string) (Enrollment, bool) {
	e, ok := s.store.Update(id, func(e *Enrollment) bool {
		if e.Status.IsTerminal() {
			return false
		}
		e.Status = StatusApproved
		s.approve(e, 500, 50, 200)
		return true
	})
	if ok {
		s.cancelTimers(id)
	}
	return e, ok
}

// Reject moves any non-terminal enrollment to rejected with a non-empty
// reason. Pending scheduled transitions are cancelled; even without
// cancellation their fire-time status check makes them no-ops.
func (s *Service) Reject(id, reason string) (Enrollment, bool) {
	if reason == "" {
		reason = DefaultRejectionReason
	}
	e, ok := s.store.Update(id, func(e *Enrollment) bool {
		if e.Status.IsTerminal() {
			return false
		}
		e.Status = StatusRejected
		e.RejectionReason = reason
		return true
	})
	if ok {
		s.cancelTimers(id)
	}
	return e, ok
}

// Stop cancels all pending scheduled transitions
func (s *Service) Stop() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	for _, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}
	}
	s.timers = make(map[string][]*time.Timer)
}

// approve fills in the approval-only fields. Clicks, orders and earnings are
// drawn independently; orders ≤ clicks is deliberately not guaranteed, the
// numbers are display mock data.
func (s *Service) approve(e *Enrollment, clicksSpan, ordersSpan, earningsSpan int) {
	clicks := gofakeit.Number(100, 100+clicksSpan-1)
	orders := gofakeit.Number(10, 10+ordersSpan-1)
	earnings := float64(gofakeit.Number(50, 50+earningsSpan-1))

	e.ReferralURL = fmt.Sprintf("%s/%s?c=%s", s.cfg.ReferralBaseURL, e.Campaign.ID, referralCode())
	e.Clicks = clicks
	e.Orders = orders
	e.Earnings = earnings
	e.Stats = &Stats{Clicks: clicks, Orders: orders, Earnings: earnings}
}

// applyScheduled performs a deferred transition, but only when the enrollment
// still holds the status the timer was armed for. A record that was rejected,
// advanced manually, or removed in the meantime stays untouched.
func (s *Service) applyScheduled(id string, expected, next Status) {
	_, ok := s.store.Update(id, func(e *Enrollment) bool {
		if e.Status != expected {
			return false
		}
		e.Status = next
		return true
	})
	if !ok {
		s.log.Debug("scheduled transition skipped, enrollment gone", "enrollment_id", id)
	}
}

func (s *Service) applyScheduledApproval(id string) {
	s.store.Update(id, func(e *Enrollment) bool {
		if e.Status != StatusUnderReview {
			return false
		}
		e.Status = StatusApproved
		s.approve(e, 400, 40, 150)
		return true
	})
	s.cancelTimers(id)
}

func (s *Service) schedule(id string, delay time.Duration, fn func()) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	s.timers[id] = append(s.timers[id], time.AfterFunc(delay, fn))
}

func (s *Service) cancelTimers(id string) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	for _, t := range s.timers[id] {
		t.Stop()
	}
	delete(s.timers, id)
}

// referralCode generates a short random code for referral links
func referralCode() string {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(bytes)
}
