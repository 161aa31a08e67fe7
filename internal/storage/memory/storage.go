package memory

import (
	"context"
	"sync"

	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	mastery  map[model.LearnerID]model.MasteryMap
	sessions map[model.LearnerID]*model.SessionSnapshot
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		mastery:  make(map[model.LearnerID]model.MasteryMap),
		sessions: make(map[model.LearnerID]*model.SessionSnapshot),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Mastery operations

func (s *Storage) SaveMastery(ctx context.Context, learner model.LearnerID, m model.MasteryMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(model.MasteryMap, len(m))
	for hash, rec := range m {
		r := *rec
		cp[hash] = &r
	}
	s.mastery[learner] = cp
	return nil
}

func (s *Storage) GetMastery(ctx context.Context, learner model.LearnerID) (model.MasteryMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mastery[learner]
	if !ok {
		return nil, model.ErrMasteryNotFound
	}
	cp := make(model.MasteryMap, len(m))
	for hash, rec := range m {
		r := *rec
		cp[hash] = &r
	}
	return cp, nil
}

func (s *Storage) DeleteMastery(ctx context.Context, learner model.LearnerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mastery, learner)
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, learner model.LearnerID, snap *model.SessionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *snap
	s.sessions[learner] = &cp
	return nil
}

func (s *Storage) GetSession(ctx context.Context, learner model.LearnerID) (*model.SessionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.sessions[learner]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	cp := *snap
	return &cp, nil
}

func (s *Storage) DeleteSession(ctx context.Context, learner model.LearnerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, learner)
	return nil
}
