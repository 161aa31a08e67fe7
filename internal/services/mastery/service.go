package mastery

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mtrunkat/namedrill/internal/dependencies/clock"
	"github.com/mtrunkat/namedrill/internal/identity"
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/storage"
)

// Config holds mastery heuristic settings
type Config struct {
	// Threshold is how many correct answers make a person "mastered"
	Threshold int

	// Window is how recent the last correct answer must be for mastery
	// to still count
	Window time.Duration
}

// DefaultConfig returns the default mastery heuristic
func DefaultConfig() Config {
	return Config{
		Threshold: 3,
		Window:    30 * 24 * time.Hour,
	}
}

// Service tracks long-term recall per person across sessions. Records
// are keyed by name hash so nothing personally identifiable persists.
//
// The failure policy favors a working game over strict durability:
// storage errors are logged and treated as "no data", never surfaced.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// New creates a new mastery service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultConfig().Threshold
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig().Window
	}
	return &Service{
		storage: storage,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
}

// RecordCorrect notes a correct answer for the named person and returns
// the updated count. The whole map is read, modified, and written back;
// on a write failure the would-be count is still returned so the game
// keeps moving.
func (s *Service) RecordCorrect(ctx context.Context, learner model.LearnerID, name string) int {
	m := s.load(ctx, learner)

	hash := identity.Hash(name)
	now := s.clock.Now().UnixMilli()

	rec, ok := m[hash]
	if !ok {
		rec = &model.MasteryRecord{FirstCorrectAt: now}
		m[hash] = rec
	}
	rec.CorrectCount++
	rec.LastCorrectAt = now

	if err := s.storage.SaveMastery(ctx, learner, m); err != nil {
		s.logger.Warn("failed to save mastery map",
			slog.String("learner", string(learner)),
			slog.String("error", err.Error()),
		)
	}

	return rec.CorrectCount
}

// IsMastered reports whether the named person counts as known: at least
// Threshold correct answers, the latest within the rolling Window.
// Unknown names, empty stores, and storage failures all report false.
func (s *Service) IsMastered(ctx context.Context, learner model.LearnerID, name string) bool {
	m := s.load(ctx, learner)

	rec, ok := m[identity.Hash(name)]
	if !ok {
		return false
	}

	cutoff := s.clock.Now().Add(-s.cfg.Window).UnixMilli()
	return rec.CorrectCount >= s.cfg.Threshold && rec.LastCorrectAt > cutoff
}

// MasteredCount returns how many of the given people are currently
// mastered, for flagging progress in the presentation layer
func (s *Service) MasteredCount(ctx context.Context, learner model.LearnerID, people []model.Person) int {
	m := s.load(ctx, learner)

	cutoff := s.clock.Now().Add(-s.cfg.Window).UnixMilli()
	count := 0
	for _, p := range people {
		if rec, ok := m[identity.Hash(p.Name)]; ok {
			if rec.CorrectCount >= s.cfg.Threshold && rec.LastCorrectAt > cutoff {
				count++
			}
		}
	}
	return count
}

// ClearAll deletes the learner's entire mastery history
func (s *Service) ClearAll(ctx context.Context, learner model.LearnerID) {
	if err := s.storage.DeleteMastery(ctx, learner); err != nil {
		s.logger.Warn("failed to clear mastery map",
			slog.String("learner", string(learner)),
			slog.String("error", err.Error()),
		)
	}
}

// load fetches the mastery map, degrading to an empty map on any
// storage or decode failure
func (s *Service) load(ctx context.Context, learner model.LearnerID) model.MasteryMap {
	m, err := s.storage.GetMastery(ctx, learner)
	if err != nil {
		if !errors.Is(err, model.ErrMasteryNotFound) {
			s.logger.Warn("failed to read mastery map",
				slog.String("learner", string(learner)),
				slog.String("error", err.Error()),
			)
		}
		return make(model.MasteryMap)
	}
	if m == nil {
		return make(model.MasteryMap)
	}
	return m
}
