package handler

import (
	"net/http"

	"github.com/mtrunkat/namedrill/internal/api/response"
	"github.com/mtrunkat/namedrill/internal/services/directory"
	"github.com/mtrunkat/namedrill/internal/services/mastery"
)

// MasteryHandler handles long-term progress endpoints
type MasteryHandler struct {
	masteryService *mastery.Service
	adapter        directory.Adapter
}

// NewMasteryHandler creates a new mastery handler
func NewMasteryHandler(masteryService *mastery.Service, adapter directory.Adapter) *MasteryHandler {
	return &MasteryHandler{
		masteryService: masteryService,
		adapter:        adapter,
	}
}

// Get handles GET /api/v1/learners/{learner}/mastery
func (h *MasteryHandler) Get(w http.ResponseWriter, r *http.Request) {
	learner := learnerFromRequest(r)

	people, err := h.adapter.Fetch(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Mastery{
		MasteredCount: h.masteryService.MasteredCount(r.Context(), learner, people),
		Total:         len(people),
	})
}

// Clear handles DELETE /api/v1/learners/{learner}/mastery
// This is the "start completely fresh" path: long-term memory is wiped.
// The current session is untouched; pair with a game restart for a
// full reset.
func (h *MasteryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.masteryService.ClearAll(r.Context(), learnerFromRequest(r))
	response.NoContent(w)
}
