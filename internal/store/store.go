package store

import (
	"errors"
	"sync"

	"redguard/internal/contract"
	"redguard/internal/models"
)

var ErrNotFound = errors.New("contract not found")

// Store holds every analyzed contract and its feedback for the lifetime of
// the process. It is explicitly not a database: no eviction, no capacity
// bound, no persistence. All operations are atomic with respect to each
// other.
type Store struct {
	mu       sync.RWMutex
	records  map[string]models.ContractAnalysis
	order    []string
	feedback map[string][]models.Feedback
}

func New() *Store {
	return &Store{
		records:  make(map[string]models.ContractAnalysis),
		feedback: make(map[string][]models.Feedback),
	}
}

// Insert stores a record under its own contract id. Ids are minted with
// uuid.NewString so collisions do not occur; if one did, the record is
// overwritten in place and keeps its listing position.
func (s *Store) Insert(rec models.ContractAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[rec.ContractID]; !exists {
		s.order = append(s.order, rec.ContractID)
	}
	s.records[rec.ContractID] = rec
}

func (s *Store) Get(id string) (models.ContractAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	return rec, ok
}

// List returns the projection of every record in insertion order.
func (s *Store) List() []models.ContractListItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.ContractListItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, contract.Project(s.records[id]))
	}
	return items
}

// AppendFeedback adds one feedback entry to an existing contract. Entries
// accumulate; nothing is overwritten or deduplicated, and the issue id is
// deliberately not checked against the record.
func (s *Store) AppendFeedback(id string, fb models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	s.feedback[id] = append(s.feedback[id], fb)
	return nil
}

// FeedbackFor returns a copy of the feedback recorded against a contract.
func (s *Store) FeedbackFor(id string) []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Feedback, len(s.feedback[id]))
	copy(out, s.feedback[id])
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
