package factory

import (
	"time"

	"github.com/mtrunkat/namedrill/internal/dependencies/mocks"
	"github.com/mtrunkat/namedrill/internal/services/game"
	"github.com/mtrunkat/namedrill/internal/services/mastery"
	"github.com/mtrunkat/namedrill/internal/storage/memory"
	"github.com/mtrunkat/namedrill/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing: in-memory storage,
// mocked clock and randomness, and zero pacing delays so answers never
// lock across test steps.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	gameCfg := game.DefaultConfig()
	gameCfg.CorrectDelay = 0
	gameCfg.IncorrectDelay = 0

	app := newWithDependencies(store, mockClock, mockRandom, mastery.DefaultConfig(), gameCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
