package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mtrunkat/namedrill/internal/dependencies/mocks"
	"github.com/mtrunkat/namedrill/internal/identity"
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/storage/memory"
	"github.com/mtrunkat/namedrill/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context

	people []model.Person
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.people = []model.Person{
		{ID: "janedoe", Name: "Jane Doe", Role: "Engineer", PhotoURL: "https://example.com/jane.jpg"},
		{ID: "johnsmith", Name: "John Smith", Role: "Designer", PhotoURL: "https://example.com/john.jpg"},
		{ID: "adalovelace", Name: "Ada Lovelace", Role: "Engineer", PhotoURL: "https://example.com/ada.jpg"},
	}
}

func (s *ServiceSuite) liveSession() *model.Session {
	return &model.Session{
		Roster:         s.people,
		Queue:          []model.Person{s.people[2], s.people[0]},
		Seen:           map[model.NameHash]struct{}{identity.Hash("John Smith"): {}},
		CorrectAnswers: 1,
		Missed:         []model.Person{s.people[1]},
	}
}

// Save tests

func (s *ServiceSuite) TestSaveStoresOnlyHashes() {
	s.service.Save(s.ctx, "local", s.liveSession())

	snap, err := s.storage.GetSession(s.ctx, "local")
	s.Require().NoError(err)

	s.Equal(1, snap.CorrectAnswers)
	s.Equal(identity.HashAll(s.people), snap.RosterHashes)
	s.Equal([]model.NameHash{identity.Hash("Ada Lovelace"), identity.Hash("Jane Doe")}, snap.QueueHashes)
	s.Equal([]model.NameHash{identity.Hash("John Smith")}, snap.SeenHashes)
}

func (s *ServiceSuite) TestSaveRecordsTimestamp() {
	s.service.Save(s.ctx, "local", s.liveSession())

	snap, err := s.storage.GetSession(s.ctx, "local")
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), snap.SavedAt)
}

// Load tests

func (s *ServiceSuite) TestLoadRoundTripPreservesQueueOrder() {
	s.service.Save(s.ctx, "local", s.liveSession())

	loaded := s.service.Load(s.ctx, "local", s.people)
	s.Require().NotNil(loaded)

	s.Equal(1, loaded.CorrectAnswers)
	s.Require().Len(loaded.Queue, 2)
	s.Equal(model.PersonID("adalovelace"), loaded.Queue[0].ID)
	s.Equal(model.PersonID("janedoe"), loaded.Queue[1].ID)
	s.True(loaded.HasSeen(identity.Hash("John Smith")))
	s.False(loaded.HasSeen(identity.Hash("Jane Doe")))
}

func (s *ServiceSuite) TestLoadStartsWithEmptyMissedList() {
	s.service.Save(s.ctx, "local", s.liveSession())

	loaded := s.service.Load(s.ctx, "local", s.people)
	s.Require().NotNil(loaded)
	s.Empty(loaded.Missed)
}

func (s *ServiceSuite) TestLoadDropsDepartedPeople() {
	s.service.Save(s.ctx, "local", s.liveSession())

	// Ada has left the company since the snapshot was taken
	remaining := s.people[:2]
	loaded := s.service.Load(s.ctx, "local", remaining)
	s.Require().NotNil(loaded)

	s.Require().Len(loaded.Queue, 1)
	s.Equal(model.PersonID("janedoe"), loaded.Queue[0].ID)
	s.Len(loaded.Roster, 2)
}

func (s *ServiceSuite) TestLoadReturnsNilWithoutSnapshot() {
	s.Nil(s.service.Load(s.ctx, "local", s.people))
}

func (s *ServiceSuite) TestLoadReturnsNilForEmptyDirectory() {
	s.service.Save(s.ctx, "local", s.liveSession())
	s.Nil(s.service.Load(s.ctx, "local", nil))
}

func (s *ServiceSuite) TestLoadResolvesAgainstFreshRecords() {
	s.service.Save(s.ctx, "local", s.liveSession())

	// Same names, updated role and photo: live fields come from the
	// fresh directory, not the snapshot
	updated := make([]model.Person, len(s.people))
	copy(updated, s.people)
	updated[0].Role = "Staff Engineer"
	updated[0].PhotoURL = "https://example.com/jane-new.jpg"

	loaded := s.service.Load(s.ctx, "local", updated)
	s.Require().NotNil(loaded)
	s.Require().Len(loaded.Queue, 2)
	s.Equal("Staff Engineer", loaded.Queue[1].Role)
}

// Clear tests

func (s *ServiceSuite) TestClearDeletesSnapshot() {
	s.service.Save(s.ctx, "local", s.liveSession())
	s.service.Clear(s.ctx, "local")

	s.Nil(s.service.Load(s.ctx, "local", s.people))
}

func (s *ServiceSuite) TestClearWithoutSnapshotIsNoop() {
	s.service.Clear(s.ctx, "local")
	s.Nil(s.service.Load(s.ctx, "local", s.people))
}
