package repository

import (
	"errors"
	"sync"

	"github.com/CoooPi/bucketlist-poc/internal/models"

	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

type sessionEntry struct {
	mu    sync.Mutex
	state *models.SessionState
}

// SessionStore keeps session state in memory. The map lock only guards
// membership; each session has its own lock for reads and updates.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	logger   *zap.Logger
}

func NewSessionStore(logger *zap.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		logger:   logger,
	}
}

func (s *SessionStore) Create(state *models.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := state.Session.ID
	if _, ok := s.sessions[id]; ok {
		return ErrSessionExists
	}
	s.sessions[id] = &sessionEntry{state: state.Clone()}
	s.logger.Debug("Session created", zap.String("session_id", id))
	return nil
}

// Get returns a copy of the session state.
func (s *SessionStore) Get(id string) (*models.SessionState, bool) {
	entry, ok := s.entry(id)
	if !ok {
		return nil, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.state.Clone(), true
}

// Update applies fn to a copy of the state and stores the result only when
// fn succeeds.
func (s *SessionStore) Update(id string, fn func(state *models.SessionState) error) error {
	entry, ok := s.entry(id)
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := entry.state.Clone()
	if err := fn(working); err != nil {
		return err
	}
	entry.state = working
	return nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) entry(id string) (*sessionEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	return entry, ok
}
