package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound indicates an unknown or malformed session ID.
var ErrSessionNotFound = errors.New("session: not found")

// Store holds live sessions keyed by UUID.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	cfg      Config
	metrics  *Metrics
}

// NewStore creates an empty Store. Zero Config fields take DefaultConfig values.
func NewStore(cfg Config) *Store {
	cfg = cfg.withDefaults()

	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		cfg:      cfg,
		metrics:  NewMetrics(cfg.Registerer),
	}
}

// Create starts a session with a width×height board. Zero dimensions take
// the Config defaults; negative ones fail with gridgraph.ErrInvalidArgument.
func (st *Store) Create(width, height int) (*Session, error) {
	if width == 0 {
		width = st.cfg.Width
	}
	if height == 0 {
		height = st.cfg.Height
	}
	s, err := newSession(width, height, st.cfg, st.metrics)
	if err != nil {
		return nil, fmt.Errorf("session: create: %w", err)
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	st.metrics.Sessions.Inc()
	st.cfg.Logger.Info("session_created",
		slog.String("session", s.ID.String()),
		slog.Int("width", width),
		slog.Int("height", height),
	)

	return s, nil
}

// Get returns the session with the given ID.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return s, nil
}

// Lookup parses id and returns the matching session.
func (st *Store) Lookup(id string) (*Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a session ID", ErrSessionNotFound, id)
	}

	return st.Get(parsed)
}

// Delete removes a session.
func (st *Store) Delete(id uuid.UUID) error {
	st.mu.Lock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	st.metrics.Sessions.Dec()
	st.cfg.Logger.Info("session_deleted", slog.String("session", id.String()))

	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}

// IDs returns the live session IDs in lexical order.
func (st *Store) IDs() []uuid.UUID {
	st.mu.RLock()
	ids := make([]uuid.UUID, 0, len(st.sessions))
	for id := range st.sessions {
		ids = append(ids, id)
	}
	st.mu.RUnlock()
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	return ids
}

// Metrics returns the Store's collectors.
func (st *Store) Metrics() *Metrics { return st.metrics }
