package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mtrunkat/namedrill/internal/api/request"
	"github.com/mtrunkat/namedrill/internal/api/response"
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/services/directory"
	"github.com/mtrunkat/namedrill/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	manager *game.Manager
	adapter directory.Adapter
}

// NewGameHandler creates a new game handler
func NewGameHandler(manager *game.Manager, adapter directory.Adapter) *GameHandler {
	return &GameHandler{
		manager: manager,
		adapter: adapter,
	}
}

func learnerFromRequest(r *http.Request) model.LearnerID {
	if l := mux.Vars(r)["learner"]; l != "" {
		return model.LearnerID(l)
	}
	return model.DefaultLearner
}

// Start handles POST /api/v1/learners/{learner}/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	learner := learnerFromRequest(r)

	people, err := h.adapter.Fetch(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	engine := h.manager.Engine(learner)
	resumed, err := engine.Start(r.Context(), people)
	if err != nil {
		WriteError(w, err)
		return
	}

	stats, err := engine.Stats()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameState{
		Resumed: resumed,
		Stats:   response.StatsFromEngine(stats),
	})
}

// Get handles GET /api/v1/learners/{learner}/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	engine := h.manager.Engine(learnerFromRequest(r))

	stats, err := engine.Stats()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameState{Stats: response.StatsFromEngine(stats)})
}

// Next handles POST /api/v1/learners/{learner}/game/next
func (h *GameHandler) Next(w http.ResponseWriter, r *http.Request) {
	engine := h.manager.Engine(learnerFromRequest(r))

	next, err := engine.Next(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	stats, err := engine.Stats()
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.NextCard{Stats: response.StatsFromEngine(stats)}

	if next.Complete {
		resp.Complete = true
		summary := response.SummaryFromModel(*next.Summary)
		resp.Summary = &summary
		response.JSON(w, http.StatusOK, resp)
		return
	}

	options, err := engine.Options()
	if err != nil {
		WriteError(w, err)
		return
	}

	resp.Card = &response.Card{
		PhotoURL: next.Person.PhotoURL,
		IsRetry:  next.IsRetry,
		Options:  response.OptionsFromEngine(options),
	}
	response.JSON(w, http.StatusOK, resp)
}

// Answer handles POST /api/v1/learners/{learner}/game/answer
func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	engine := h.manager.Engine(learnerFromRequest(r))

	var req request.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.SelectedID == "" {
		WriteError(w, NewInvalidRequestError("selected_id is required"))
		return
	}

	result, err := engine.Answer(r.Context(), model.PersonID(req.SelectedID))
	if err != nil {
		WriteError(w, err)
		return
	}

	stats, err := engine.Stats()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Answer{
		Correct:      result.Correct,
		CorrectID:    string(result.CorrectID),
		MasteryCount: result.MasteryCount,
		DelayMs:      result.Delay.Milliseconds(),
		Stats:        response.StatsFromEngine(stats),
	})
}

// Restart handles POST /api/v1/learners/{learner}/game/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	learner := learnerFromRequest(r)

	people, err := h.adapter.Fetch(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	engine := h.manager.Engine(learner)
	if err := engine.Reset(r.Context(), people); err != nil {
		WriteError(w, err)
		return
	}

	stats, err := engine.Stats()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameState{Stats: response.StatsFromEngine(stats)})
}

// Close handles DELETE /api/v1/learners/{learner}/game
// The saved snapshot stays; only the live engine is torn down.
func (h *GameHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.manager.Remove(learnerFromRequest(r))
	response.NoContent(w)
}
