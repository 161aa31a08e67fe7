package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrunkat/namedrill/internal/api"
	"github.com/mtrunkat/namedrill/internal/api/response"
	"github.com/mtrunkat/namedrill/internal/factory"
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/services/directory"
	"github.com/mtrunkat/namedrill/internal/services/game"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests: production factory with real
	// random/clock, but zero pacing delays so calls never lock
	app, err := factory.New(factory.Config{
		GameConfig: game.Config{OptionCount: 4},
	})
	require.NoError(t, err)

	adapter := directory.NewStaticAdapter([]model.Person{
		{Name: "Jane Doe", Role: "Engineer", PhotoURL: "https://example.com/jane.jpg"},
		{Name: "John Smith", Role: "Designer", PhotoURL: "https://example.com/john.jpg"},
		{Name: "Ada Lovelace", Role: "Engineer", PhotoURL: "https://example.com/ada.jpg"},
		{Name: "Grace Hopper", Role: "Manager", PhotoURL: "https://example.com/grace.jpg"},
		{Name: "Alan Turing", Role: "Researcher", PhotoURL: "https://example.com/alan.jpg"},
	})

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameManager:    app.GameManager,
		MasteryService: app.MasteryService,
		Directory:      adapter,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestStartGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.GameState
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.False(t, resp.Resumed)
	assert.Equal(t, 5, resp.Stats.Total)
	assert.Equal(t, 5, resp.Stats.Remaining)
	assert.Equal(t, "in_progress", resp.Stats.Phase)
}

func TestGetGameWithoutStarting(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/learners/local/game", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_ACTIVE_GAME")
}

func TestNextReturnsCardWithOptions(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/next", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.NextCard
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.False(t, resp.Complete)
	require.NotNil(t, resp.Card)
	assert.NotEmpty(t, resp.Card.PhotoURL)
	assert.Len(t, resp.Card.Options, 4)

	// Option names are the answers; the card itself must not leak one
	for _, opt := range resp.Card.Options {
		assert.NotEmpty(t, opt.ID)
		assert.NotEmpty(t, opt.Name)
	}
}

func TestAnswerRequiresSelectedID(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/next", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/answer", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestAnswerWithoutCard(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/answer", map[string]string{"selected_id": "janedoe"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_CURRENT_CARD")
}

func TestFullGameFlow(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	// The card never carries the person's name, but this fixture's photo
	// URLs identify people, so the right option is recoverable
	answered := 0
	for answered < 5 {
		rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/next", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var next response.NextCard
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &next))

		if next.Complete {
			break
		}
		require.NotNil(t, next.Card)

		// The photo URL encodes the person in this fixture, so the
		// matching option is recoverable
		var selected string
		for _, opt := range next.Card.Options {
			if photoFor(opt.ID) == next.Card.PhotoURL {
				selected = opt.ID
				break
			}
		}
		require.NotEmpty(t, selected, "no option matched photo %s", next.Card.PhotoURL)

		rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/answer", map[string]string{"selected_id": selected})
		require.Equal(t, http.StatusOK, rr.Code)

		var ans response.Answer
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ans))
		assert.True(t, ans.Correct)
		answered++
	}

	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/next", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var final response.NextCard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &final))
	assert.True(t, final.Complete)
	require.NotNil(t, final.Summary)
	assert.Equal(t, 5, final.Summary.TotalPeople)
	assert.Equal(t, 5, final.Summary.CorrectAnswers)
	assert.Equal(t, 100, final.Summary.Accuracy)
	assert.Empty(t, final.Summary.Missed)
}

// photoFor maps fixture person IDs back to their photo URLs
func photoFor(id string) string {
	photos := map[string]string{
		"janedoe":     "https://example.com/jane.jpg",
		"johnsmith":   "https://example.com/john.jpg",
		"adalovelace": "https://example.com/ada.jpg",
		"gracehopper": "https://example.com/grace.jpg",
		"alanturing":  "https://example.com/alan.jpg",
	}
	return photos[id]
}

func TestIncorrectAnswerRequeues(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/next", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var next response.NextCard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &next))
	require.NotNil(t, next.Card)

	// Pick a wrong option on purpose
	var wrong string
	for _, opt := range next.Card.Options {
		if photoFor(opt.ID) != next.Card.PhotoURL {
			wrong = opt.ID
			break
		}
	}
	require.NotEmpty(t, wrong)

	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/answer", map[string]string{"selected_id": wrong})
	require.Equal(t, http.StatusOK, rr.Code)

	var ans response.Answer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ans))
	assert.False(t, ans.Correct)
	assert.NotEmpty(t, ans.CorrectID)

	// The miss stays in the queue, so remaining is unchanged from start
	assert.Equal(t, 5, ans.Stats.Remaining)
	assert.Equal(t, 1, ans.Stats.Missed)
}

func TestRestartResetsProgress(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/next", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game/restart", nil)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Stats.Remaining)
	assert.Equal(t, 0, resp.Stats.Correct)
}

func TestStartResumesSavedGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	// Closing tears down the live engine but keeps the snapshot
	rr = ts.request(http.MethodDelete, "/api/v1/learners/local/game", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/learners/local/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Resumed)
}

func TestLearnersAreIsolated(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/learners/alice/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/learners/bob/game", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMasteryEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/learners/local/mastery", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Mastery
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.MasteredCount)
	assert.Equal(t, 5, resp.Total)
}

func TestMasteryClear(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodDelete, "/api/v1/learners/local/mastery", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
