package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mtrunkat/namedrill/internal/api/handler"
	apimiddleware "github.com/mtrunkat/namedrill/internal/api/middleware"
	"github.com/mtrunkat/namedrill/internal/middleware"
	"github.com/mtrunkat/namedrill/internal/services/directory"
	"github.com/mtrunkat/namedrill/internal/services/game"
	"github.com/mtrunkat/namedrill/internal/services/mastery"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameManager    *game.Manager
	MasteryService *mastery.Service
	Directory      directory.Adapter
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameManager, cfg.Directory)
	masteryHandler := handler.NewMasteryHandler(cfg.MasteryService, cfg.Directory)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Game routes
	learners := api.PathPrefix("/learners/{learner}").Subrouter()
	learners.HandleFunc("/game", gameHandler.Start).Methods(http.MethodPost)
	learners.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	learners.HandleFunc("/game", gameHandler.Close).Methods(http.MethodDelete)
	learners.HandleFunc("/game/next", gameHandler.Next).Methods(http.MethodPost)
	learners.HandleFunc("/game/answer", gameHandler.Answer).Methods(http.MethodPost)
	learners.HandleFunc("/game/restart", gameHandler.Restart).Methods(http.MethodPost)

	// Mastery routes
	learners.HandleFunc("/mastery", masteryHandler.Get).Methods(http.MethodGet)
	learners.HandleFunc("/mastery", masteryHandler.Clear).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
