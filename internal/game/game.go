package game

import (
	"sync"

	"escro/scoretable"

	"go.uber.org/zap"
)

// Session owns the one score table this server holds. Every action runs to
// completion under the lock, and the snapshot returned from Dispatch is taken
// before the lock is released.
type Session struct {
	mu     sync.Mutex
	state  scoretable.State
	logger *zap.Logger
}

// NewSession returns a session holding an empty table.
func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{state: scoretable.New(), logger: logger}
}

// Dispatch applies a and returns the resulting view.
func (s *Session) Dispatch(a scoretable.Action) scoretable.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := scoretable.Apply(s.state, a)
	changed := !next.Equal(s.state)
	s.state = next

	if changed {
		s.logger.Debug("action applied",
			zap.String("action", a.Kind()),
			zap.Int("players", len(next.Players)),
			zap.Int("rounds", next.RoundCount),
		)
	} else {
		s.logger.Debug("action ignored", zap.String("action", a.Kind()), zap.Any("request", a))
	}
	return scoretable.Snapshot(next)
}

// View returns the current read model.
func (s *Session) View() scoretable.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scoretable.Snapshot(s.state)
}

// State returns a copy of the stored table.
func (s *Session) State() scoretable.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
