package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mtrunkat/namedrill/internal/dependencies/clock"
	"github.com/mtrunkat/namedrill/internal/identity"
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/storage"
)

// Service persists and restores in-flight games. The persisted form is
// a hash-only projection: queue order, seen set, roster hashes, and
// counters — never a name, role, or photo URL.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new session service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Save projects the live session down to hashes and replaces any prior
// snapshot. Write failures are logged and swallowed; losing a snapshot
// costs a resume, not the running game.
func (s *Service) Save(ctx context.Context, learner model.LearnerID, sess *model.Session) {
	seen := make([]model.NameHash, 0, len(sess.Seen))
	for hash := range sess.Seen {
		seen = append(seen, hash)
	}

	snap := &model.SessionSnapshot{
		CorrectAnswers: sess.CorrectAnswers,
		IsGameOver:     sess.IsGameOver,
		SeenHashes:     seen,
		QueueHashes:    identity.HashAll(sess.Queue),
		RosterHashes:   identity.HashAll(sess.Roster),
		SavedAt:        s.clock.Now(),
	}

	if err := s.storage.SaveSession(ctx, learner, snap); err != nil {
		s.logger.Warn("failed to save session snapshot",
			slog.String("learner", string(learner)),
			slog.String("error", err.Error()),
		)
	}
}

// Load rebuilds a live session from the stored snapshot, resolving each
// hash against the freshly fetched directory. Hashes that no longer
// resolve (the person left or was renamed) are silently dropped. Returns
// nil when there is nothing usable to resume: no snapshot, a decode
// failure, or an empty current directory.
//
// The missed list always starts empty — only the work queue and score
// survive across sessions.
func (s *Service) Load(ctx context.Context, learner model.LearnerID, people []model.Person) *model.Session {
	if len(people) == 0 {
		return nil
	}

	snap, err := s.storage.GetSession(ctx, learner)
	if err != nil {
		if !errors.Is(err, model.ErrSessionNotFound) {
			s.logger.Warn("failed to read session snapshot",
				slog.String("learner", string(learner)),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}

	idx := identity.Index(people)

	resolve := func(hashes []model.NameHash) []model.Person {
		resolved := make([]model.Person, 0, len(hashes))
		for _, hash := range hashes {
			if p, ok := idx[hash]; ok {
				resolved = append(resolved, p)
			}
		}
		return resolved
	}

	seen := make(map[model.NameHash]struct{}, len(snap.SeenHashes))
	for _, hash := range snap.SeenHashes {
		seen[hash] = struct{}{}
	}

	now := s.clock.Now()
	return &model.Session{
		Roster:         resolve(snap.RosterHashes),
		Queue:          resolve(snap.QueueHashes),
		Seen:           seen,
		CorrectAnswers: snap.CorrectAnswers,
		Missed:         []model.Person{},
		IsGameOver:     snap.IsGameOver,
		StartedAt:      snap.SavedAt,
		UpdatedAt:      now,
	}
}

// Clear deletes the persisted snapshot unconditionally
func (s *Service) Clear(ctx context.Context, learner model.LearnerID) {
	if err := s.storage.DeleteSession(ctx, learner); err != nil {
		s.logger.Warn("failed to clear session snapshot",
			slog.String("learner", string(learner)),
			slog.String("error", err.Error()),
		)
	}
}
