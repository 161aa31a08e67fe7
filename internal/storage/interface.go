package storage

import (
	"context"

	"github.com/mtrunkat/namedrill/internal/model"
)

// Storage defines the interface for data persistence.
//
// Only hash-keyed progress data goes through here: the mastery map and
// the session snapshot. Person records never do — they are rebuilt from
// the directory on every pass.
type Storage interface {
	// Mastery operations. The mastery map is read and written whole;
	// there is exactly one writer so no finer granularity is needed.
	SaveMastery(ctx context.Context, learner model.LearnerID, m model.MasteryMap) error
	GetMastery(ctx context.Context, learner model.LearnerID) (model.MasteryMap, error)
	DeleteMastery(ctx context.Context, learner model.LearnerID) error

	// Session operations. A save replaces any prior snapshot.
	SaveSession(ctx context.Context, learner model.LearnerID, snap *model.SessionSnapshot) error
	GetSession(ctx context.Context, learner model.LearnerID) (*model.SessionSnapshot, error)
	DeleteSession(ctx context.Context, learner model.LearnerID) error
}
