package fishing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

func TestSessionManager_Lifecycle(t *testing.T) {
	m := NewSessionManager()
	t0 := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, m.Start("p1", t0))
	state, ok := m.State("p1")
	require.True(t, ok)
	assert.Equal(t, domain.SessionWaitingForBite, state)

	require.NoError(t, m.Bite("p1", t0.Add(2*time.Second)))
	state, _ = m.State("p1")
	assert.Equal(t, domain.SessionBiting, state)

	biteAt, bitten, err := m.BeginResolve("p1", t0.Add(3*time.Second))
	require.NoError(t, err)
	assert.True(t, bitten)
	assert.Equal(t, t0.Add(2*time.Second), biteAt)

	state, _ = m.State("p1")
	assert.Equal(t, domain.SessionResolving, state)

	m.Finish("p1")
	_, ok = m.State("p1")
	assert.False(t, ok, "finished sessions are forgotten")
	assert.Equal(t, 0, m.Active())
}

func TestSessionManager_Transitions(t *testing.T) {
	t0 := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(m *SessionManager)
		act     func(m *SessionManager) error
		wantErr error
	}{
		{
			name:  "bite without cast opens a biting session",
			setup: func(m *SessionManager) {},
			act:   func(m *SessionManager) error { return m.Bite("p1", t0) },
		},
		{
			name:  "second bite moves the bite time",
			setup: func(m *SessionManager) { _ = m.Start("p1", t0); _ = m.Bite("p1", t0) },
			act:   func(m *SessionManager) error { return m.Bite("p1", t0.Add(time.Second)) },
		},
		{
			name:  "recast replaces a waiting session",
			setup: func(m *SessionManager) { _ = m.Start("p1", t0) },
			act:   func(m *SessionManager) error { return m.Start("p1", t0.Add(time.Second)) },
		},
		{
			name: "second catch while resolving is rejected",
			setup: func(m *SessionManager) {
				_ = m.Start("p1", t0)
				_, _, _ = m.BeginResolve("p1", t0)
			},
			act: func(m *SessionManager) error {
				_, _, err := m.BeginResolve("p1", t0)
				return err
			},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name: "bite while resolving is rejected",
			setup: func(m *SessionManager) {
				_, _, _ = m.BeginResolve("p1", t0)
			},
			act:     func(m *SessionManager) error { return m.Bite("p1", t0) },
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name: "cast while resolving is rejected",
			setup: func(m *SessionManager) {
				_, _, _ = m.BeginResolve("p1", t0)
			},
			act:     func(m *SessionManager) error { return m.Start("p1", t0) },
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "cancel without session",
			setup:   func(m *SessionManager) {},
			act:     func(m *SessionManager) error { return m.Cancel("p1") },
			wantErr: domain.ErrSessionNotFound,
		},
		{
			name:  "cancel a waiting session",
			setup: func(m *SessionManager) { _ = m.Start("p1", t0) },
			act:   func(m *SessionManager) error { return m.Cancel("p1") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSessionManager()
			tt.setup(m)
			err := tt.act(m)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsRejected(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSessionManager_CatchWithoutBiteIsMiss(t *testing.T) {
	m := NewSessionManager()
	t0 := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, m.Start("p1", t0))
	_, bitten, err := m.BeginResolve("p1", t0.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, bitten)

	m.Finish("p1")
	_, bitten, err = m.BeginResolve("p2", t0)
	require.NoError(t, err, "a catch without any session still resolves")
	assert.False(t, bitten)
}
