package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mtrunkat/namedrill/internal/dependencies/clock"
	"github.com/mtrunkat/namedrill/internal/dependencies/random"
	"github.com/mtrunkat/namedrill/internal/services/game"
	"github.com/mtrunkat/namedrill/internal/services/mastery"
	"github.com/mtrunkat/namedrill/internal/services/session"
	"github.com/mtrunkat/namedrill/internal/storage"
	"github.com/mtrunkat/namedrill/internal/storage/memory"
	redisstorage "github.com/mtrunkat/namedrill/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	MasteryService *mastery.Service
	SessionService *session.Service
	GameManager    *game.Manager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// MasteryConfig holds the mastery heuristic settings (optional)
	MasteryConfig mastery.Config
	// GameConfig holds the game engine settings (optional)
	GameConfig game.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	masteryCfg := cfg.MasteryConfig
	if masteryCfg.Threshold == 0 {
		masteryCfg = mastery.DefaultConfig()
	}

	gameCfg := cfg.GameConfig
	if gameCfg.OptionCount == 0 {
		gameCfg = game.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, masteryCfg, gameCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	masteryCfg mastery.Config,
	gameCfg game.Config,
	logger *slog.Logger,
) *App {
	masteryService := mastery.New(store, clk, masteryCfg, logger)
	sessionService := session.New(store, clk, logger)
	gameManager := game.NewManager(masteryService, sessionService, clk, rnd, gameCfg, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		MasteryService: masteryService,
		SessionService: sessionService,
		GameManager:    gameManager,
	}
}
