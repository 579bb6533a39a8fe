package fishing

import (
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

type session struct {
	state     domain.SessionState
	startedAt time.Time
	biteAt    time.Time
	bitten    bool
}

// SessionManager tracks one fishing session per player:
// WaitingForBite -> Biting -> Resolving -> Done. A session is removed once Done.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionManager creates an empty session table
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*session)}
}

// Start opens a session in WaitingForBite. A cast while a previous catch is still
// resolving is rejected; any other leftover session is replaced.
func (m *SessionManager) Start(playerID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[playerID]; ok && s.state == domain.SessionResolving {
		return fmt.Errorf("%w: start while %s", domain.ErrInvalidTransition, s.state)
	}
	m.sessions[playerID] = &session{state: domain.SessionWaitingForBite, startedAt: now}
	return nil
}

// Bite records the bite time. The host may report a bite without a cast we saw,
// in which case a session is opened directly in Biting.
func (m *SessionManager) Bite(playerID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[playerID]
	if !ok {
		m.sessions[playerID] = &session{state: domain.SessionBiting, startedAt: now, biteAt: now, bitten: true}
		return nil
	}
	if s.state != domain.SessionWaitingForBite && s.state != domain.SessionBiting {
		return fmt.Errorf("%w: bite while %s", domain.ErrInvalidTransition, s.state)
	}
	s.state = domain.SessionBiting
	s.biteAt = now
	s.bitten = true
	return nil
}

// BeginResolve moves the session to Resolving and returns the recorded bite.
// A catch without a session resolves as a timing miss. A second catch for the
// same session is rejected so only one resolution runs.
func (m *SessionManager) BeginResolve(playerID string, now time.Time) (biteAt time.Time, bitten bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[playerID]
	if !ok {
		m.sessions[playerID] = &session{state: domain.SessionResolving, startedAt: now}
		return time.Time{}, false, nil
	}
	if s.state == domain.SessionResolving {
		return time.Time{}, false, fmt.Errorf("%w: catch while %s", domain.ErrInvalidTransition, s.state)
	}
	s.state = domain.SessionResolving
	return s.biteAt, s.bitten, nil
}

// Finish marks the session Done and forgets it
func (m *SessionManager) Finish(playerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[playerID]; ok {
		s.state = domain.SessionDone
		delete(m.sessions, playerID)
	}
}

// Cancel drops a session that ended without a catch (reeled in, line broke)
func (m *SessionManager) Cancel(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[playerID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, playerID)
	}
	if s.state == domain.SessionResolving {
		return fmt.Errorf("%w: cancel while %s", domain.ErrInvalidTransition, s.state)
	}
	delete(m.sessions, playerID)
	return nil
}

// State reports the player's current session state
func (m *SessionManager) State(playerID string) (domain.SessionState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[playerID]
	if !ok {
		return domain.SessionDone, false
	}
	return s.state, true
}

// Active returns the number of open sessions
func (m *SessionManager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
