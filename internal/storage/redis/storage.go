package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Mastery operations

func (s *Storage) SaveMastery(ctx context.Context, learner model.LearnerID, m model.MasteryMap) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, masteryKey(learner), data, s.cfg.MasteryTTL).Err()
}

func (s *Storage) GetMastery(ctx context.Context, learner model.LearnerID) (model.MasteryMap, error) {
	data, err := s.client.Get(ctx, masteryKey(learner)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMasteryNotFound
		}
		return nil, err
	}

	var m model.MasteryMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Storage) DeleteMastery(ctx context.Context, learner model.LearnerID) error {
	return s.client.Del(ctx, masteryKey(learner)).Err()
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, learner model.LearnerID, snap *model.SessionSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(learner), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, learner model.LearnerID) (*model.SessionSnapshot, error) {
	data, err := s.client.Get(ctx, sessionKey(learner)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var snap model.SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Storage) DeleteSession(ctx context.Context, learner model.LearnerID) error {
	return s.client.Del(ctx, sessionKey(learner)).Err()
}
