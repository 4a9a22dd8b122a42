package service

import (
	"sync"
	"time"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	// stateCleanupInterval is how often idle session state is swept.
	stateCleanupInterval = 5 * time.Minute
	// stateTTL is the time-to-live for inactive session state.
	stateTTL = 30 * time.Minute
)

// DashboardState tracks per-session dashboard bookkeeping: which tabs are
// marked stale and the latest load sequence per tab. Reload marking is the
// cross-tab consistency mechanism after a mutation; load sequences let the
// gateway discard responses that a newer request has superseded.
type DashboardState struct {
	sessions map[string]*sessionState
	mu       sync.Mutex
	stopCh   chan struct{}
}

type sessionState struct {
	reload   map[domain.Tab]bool
	seq      map[domain.Tab]uint64
	lastSeen time.Time
}

// NewDashboardState creates a DashboardState and starts its cleanup loop.
func NewDashboardState() *DashboardState {
	s := &DashboardState{
		sessions: make(map[string]*sessionState),
		stopCh:   make(chan struct{}),
	}
	go s.cleanup()
	return s
}

func (s *DashboardState) session(key string) *sessionState {
	st, ok := s.sessions[key]
	if !ok {
		st = &sessionState{
			reload: make(map[domain.Tab]bool),
			seq:    make(map[domain.Tab]uint64),
		}
		s.sessions[key] = st
	}
	st.lastSeen = time.Now()
	return st
}

// BeginLoad registers a new load for a tab and returns its sequence number.
func (s *DashboardState) BeginLoad(session string, tab domain.Tab) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(session)
	st.seq[tab]++
	return st.seq[tab]
}

// CommitLoad reports whether a finished load is still the latest for its tab.
// A false result means a newer load was begun while this one was in flight
// and its payload must be discarded.
func (s *DashboardState) CommitLoad(session string, tab domain.Tab, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session(session).seq[tab] == seq
}

// MarkForReload flags tabs as stale. Switching to a flagged tab forces a
// fresh upstream load instead of reusing cached data.
func (s *DashboardState) MarkForReload(session string, tabs ...domain.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(session)
	for _, tab := range tabs {
		st.reload[tab] = true
	}
}

// ConsumeReload clears and returns the stale flag for a tab.
func (s *DashboardState) ConsumeReload(session string, tab domain.Tab) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(session)
	marked := st.reload[tab]
	delete(st.reload, tab)
	return marked
}

// cleanup periodically removes idle session state to bound memory.
func (s *DashboardState) cleanup() {
	ticker := time.NewTicker(stateCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			for key, st := range s.sessions {
				if now.Sub(st.lastSeen) > stateTTL {
					delete(s.sessions, key)
					log.Debug().Msg("Cleaned up idle dashboard session state")
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

// Stop stops the cleanup goroutine.
func (s *DashboardState) Stop() {
	close(s.stopCh)
}
