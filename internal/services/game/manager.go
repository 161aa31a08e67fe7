package game

import (
	"log/slog"
	"sync"

	"github.com/mtrunkat/namedrill/internal/dependencies/clock"
	"github.com/mtrunkat/namedrill/internal/dependencies/random"
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/services/mastery"
	"github.com/mtrunkat/namedrill/internal/services/session"
)

// Manager hands out one live engine per learner. Engines hold the only
// full-fidelity copy of a running game, so they must be shared across
// requests rather than rebuilt per call.
type Manager struct {
	masteryService *mastery.Service
	sessionService *session.Service
	clock          clock.Clock
	random         random.Random
	cfg            Config
	logger         *slog.Logger

	mu      sync.Mutex
	engines map[model.LearnerID]*Engine
}

// NewManager creates a new engine manager
func NewManager(
	masteryService *mastery.Service,
	sessionService *session.Service,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		masteryService: masteryService,
		sessionService: sessionService,
		clock:          clk,
		random:         rnd,
		cfg:            cfg,
		logger:         logger,
		engines:        make(map[model.LearnerID]*Engine),
	}
}

// Engine returns the learner's engine, creating it on first use
func (m *Manager) Engine(learner model.LearnerID) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.engines[learner]; ok {
		return e
	}

	e := NewEngine(learner, m.masteryService, m.sessionService, m.clock, m.random, m.cfg, m.logger)
	m.engines[learner] = e
	m.logger.Info("engine created", slog.String("learner", string(learner)))
	return e
}

// Remove closes and discards a learner's engine. Pending card
// transitions are invalidated with it.
func (m *Manager) Remove(learner model.LearnerID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.engines[learner]; ok {
		e.Close()
		delete(m.engines, learner)
		m.logger.Info("engine removed", slog.String("learner", string(learner)))
	}
}

// Shutdown closes every live engine
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for learner, e := range m.engines {
		e.Close()
		delete(m.engines, learner)
	}
}
