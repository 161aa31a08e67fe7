package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mtrunkat/namedrill/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Mastery tests

func (s *StorageSuite) TestSaveAndGetMastery() {
	m := model.MasteryMap{
		"4mmf8u": {CorrectCount: 2, FirstCorrectAt: 1000, LastCorrectAt: 2000},
	}

	err := s.storage.SaveMastery(s.ctx, "local", m)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMastery(s.ctx, "local")
	s.Require().NoError(err)
	s.Require().Contains(retrieved, model.NameHash("4mmf8u"))
	s.Equal(2, retrieved["4mmf8u"].CorrectCount)
	s.Equal(int64(2000), retrieved["4mmf8u"].LastCorrectAt)
}

func (s *StorageSuite) TestGetMasteryNotFound() {
	_, err := s.storage.GetMastery(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMasteryNotFound)
}

func (s *StorageSuite) TestDeleteMastery() {
	m := model.MasteryMap{"4mmf8u": {CorrectCount: 1}}
	_ = s.storage.SaveMastery(s.ctx, "local", m)

	err := s.storage.DeleteMastery(s.ctx, "local")
	s.Require().NoError(err)

	_, err = s.storage.GetMastery(s.ctx, "local")
	s.ErrorIs(err, model.ErrMasteryNotFound)
}

func (s *StorageSuite) TestMasteryIsCopiedOnSaveAndGet() {
	m := model.MasteryMap{"4mmf8u": {CorrectCount: 1}}
	_ = s.storage.SaveMastery(s.ctx, "local", m)

	// Mutating the original must not leak into the store
	m["4mmf8u"].CorrectCount = 99

	retrieved, err := s.storage.GetMastery(s.ctx, "local")
	s.Require().NoError(err)
	s.Equal(1, retrieved["4mmf8u"].CorrectCount)

	// Mutating the retrieved copy must not leak either
	retrieved["4mmf8u"].CorrectCount = 50

	again, err := s.storage.GetMastery(s.ctx, "local")
	s.Require().NoError(err)
	s.Equal(1, again["4mmf8u"].CorrectCount)
}

func (s *StorageSuite) TestMasteryIsolatedPerLearner() {
	_ = s.storage.SaveMastery(s.ctx, "alice", model.MasteryMap{"aaa": {CorrectCount: 1}})
	_ = s.storage.SaveMastery(s.ctx, "bob", model.MasteryMap{"bbb": {CorrectCount: 5}})

	aliceMap, err := s.storage.GetMastery(s.ctx, "alice")
	s.Require().NoError(err)
	s.Contains(aliceMap, model.NameHash("aaa"))
	s.NotContains(aliceMap, model.NameHash("bbb"))
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	snap := &model.SessionSnapshot{
		CorrectAnswers: 3,
		QueueHashes:    []model.NameHash{"aaa", "bbb"},
		RosterHashes:   []model.NameHash{"aaa", "bbb", "ccc"},
		SeenHashes:     []model.NameHash{"ccc"},
		SavedAt:        time.Now(),
	}

	err := s.storage.SaveSession(s.ctx, "local", snap)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "local")
	s.Require().NoError(err)
	s.Equal(3, retrieved.CorrectAnswers)
	s.Equal(snap.QueueHashes, retrieved.QueueHashes)
	s.Equal(snap.RosterHashes, retrieved.RosterHashes)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, "local", &model.SessionSnapshot{CorrectAnswers: 1})

	err := s.storage.DeleteSession(s.ctx, "local")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "local")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveSessionReplacesPrior() {
	_ = s.storage.SaveSession(s.ctx, "local", &model.SessionSnapshot{CorrectAnswers: 1})
	_ = s.storage.SaveSession(s.ctx, "local", &model.SessionSnapshot{CorrectAnswers: 7})

	retrieved, err := s.storage.GetSession(s.ctx, "local")
	s.Require().NoError(err)
	s.Equal(7, retrieved.CorrectAnswers)
}
