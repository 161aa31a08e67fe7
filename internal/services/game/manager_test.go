package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mtrunkat/namedrill/internal/dependencies/mocks"
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/services/mastery"
	"github.com/mtrunkat/namedrill/internal/services/session"
	"github.com/mtrunkat/namedrill/internal/storage/memory"
	"github.com/mtrunkat/namedrill/internal/testutil"
)

type ManagerSuite struct {
	suite.Suite
	manager *Manager
	ctx     context.Context
	people  []model.Person
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	logger := testutil.NopLogger()

	masteryService := mastery.New(store, clk, mastery.DefaultConfig(), logger)
	sessionService := session.New(store, clk, logger)
	s.manager = NewManager(masteryService, sessionService, clk, rnd, Config{OptionCount: 4}, logger)
	s.ctx = context.Background()

	s.people = []model.Person{
		{ID: "janedoe", Name: "Jane Doe"},
		{ID: "johnsmith", Name: "John Smith"},
	}
}

func (s *ManagerSuite) TearDownTest() {
	s.manager.Shutdown()
}

func (s *ManagerSuite) TestEngineIsReusedPerLearner() {
	e1 := s.manager.Engine("alice")
	e2 := s.manager.Engine("alice")
	s.Same(e1, e2)
}

func (s *ManagerSuite) TestEnginesAreIndependentAcrossLearners() {
	alice := s.manager.Engine("alice")
	bob := s.manager.Engine("bob")
	s.NotSame(alice, bob)

	_, err := alice.Start(s.ctx, s.people)
	s.Require().NoError(err)

	// Bob has no game yet
	_, err = bob.Stats()
	s.ErrorIs(err, model.ErrNoActiveGame)
}

func (s *ManagerSuite) TestRemoveClosesEngine() {
	e := s.manager.Engine("alice")
	_, err := e.Start(s.ctx, s.people)
	s.Require().NoError(err)

	s.manager.Remove("alice")

	_, err = e.Stats()
	s.ErrorIs(err, model.ErrNoActiveGame)

	// A fresh engine takes the learner's place
	replacement := s.manager.Engine("alice")
	s.NotSame(e, replacement)
}

func (s *ManagerSuite) TestShutdownClosesAllEngines() {
	alice := s.manager.Engine("alice")
	bob := s.manager.Engine("bob")

	s.manager.Shutdown()

	_, err := alice.Start(s.ctx, s.people)
	s.ErrorIs(err, model.ErrNoActiveGame)
	_, err = bob.Start(s.ctx, s.people)
	s.ErrorIs(err, model.ErrNoActiveGame)
}
