package enrollment

import "sync"

// Store is the in-memory enrollment collection. All mutation goes through the
// state-machine operations on Service; the store itself only guards access and
// tracks a revision counter so derived data (the analytics conversion pool)
// knows when to rematerialize.
type Store struct {
	mu       sync.RWMutex
	byID     map[string]*Enrollment
	order    []string
	revision uint64
}

// NewStore creates an empty enrollment store
func NewStore() *Store {
	return &Store{byID: make(map[string]*Enrollment)}
}

// Add inserts a new enrollment record
func (s *Store) Add(e *Enrollment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[e.ID] = e
	s.order = append(s.order, e.ID)
	s.revision++
}

// Get returns a copy of the enrollment with the given id
func (s *Store) Get(id string) (Enrollment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return Enrollment{}, false
	}
	return *e, true
}

// List returns copies of all enrollments in insertion order
func (s *Store) List() []Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Enrollment, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Update applies fn to the enrollment with the given id under the write lock.
// fn returns true when it mutated the record; the revision counter is only
// bumped then. A lookup miss is a silent no-op.
func (s *Store) Update(id string, fn func(*Enrollment) bool) (Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return Enrollment{}, false
	}
	if fn(e) {
		s.revision++
	}
	return *e, true
}

// Remove deletes an enrollment. Scheduled transitions that fire afterward
// become lookup-miss no-ops.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.revision++
	return true
}

// ApprovedCount returns the number of approved enrollments
func (s *Store) ApprovedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, e := range s.byID {
		if e.Status == StatusApproved {
			count++
		}
	}
	return count
}

// Revision returns the current mutation counter
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Len returns the number of enrollments
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
