package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blackoutbot/blackout/pkg/state"
	"github.com/blackoutbot/blackout/pkg/storage"
)

const (
	playerKeyPrefix = "player:"
	scoresKey       = "scores"
)

// RedisStorage implements the Storage interface using Redis for player
// state and a sorted set for the leaderboard
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisStorage{
		client: rdb,
		logger: logger,
	}
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Player state operations

func (r *RedisStorage) SavePlayerState(ctx context.Context, playerID string, ps *state.PlayerState) error {
	ps.UpdatedAt = time.Now()

	data, err := json.Marshal(ps)
	if err != nil {
		r.logger.Error("Failed to marshal player state", "player_id", playerID, "error", err)
		return fmt.Errorf("failed to marshal player state: %w", err)
	}

	key := playerKeyPrefix + playerID
	if err := r.client.Set(ctx, key, string(data), 0).Err(); err != nil {
		r.logger.Error("Failed to save player state", "player_id", playerID, "error", err)
		return fmt.Errorf("failed to save player state: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadPlayerState(ctx context.Context, playerID string) (*state.PlayerState, error) {
	key := playerKeyPrefix + playerID
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load player state", "player_id", playerID, "error", err)
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}

	var ps state.PlayerState
	if err := json.Unmarshal([]byte(data), &ps); err != nil {
		r.logger.Error("Failed to unmarshal player state", "player_id", playerID, "error", err)
		return nil, fmt.Errorf("failed to unmarshal player state: %w", err)
	}

	return &ps, nil
}

func (r *RedisStorage) DeletePlayerState(ctx context.Context, playerID string) error {
	key := playerKeyPrefix + playerID
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete player state", "player_id", playerID, "error", err)
		return fmt.Errorf("failed to delete player state: %w", err)
	}
	return nil
}

// Leaderboard operations
//
// Each score is a JSON member of one sorted set; the member carries its own
// UUID so identical results from the same player never collapse into one
// entry.

func (r *RedisStorage) AppendScore(ctx context.Context, s *state.Score) error {
	data, err := json.Marshal(s)
	if err != nil {
		r.logger.Error("Failed to marshal score", "score_id", s.ID, "error", err)
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	err = r.client.ZAdd(ctx, scoresKey, redis.Z{
		Score:  float64(s.Score),
		Member: string(data),
	}).Err()
	if err != nil {
		r.logger.Error("Failed to append score", "score_id", s.ID, "error", err)
		return fmt.Errorf("failed to append score: %w", err)
	}

	return nil
}

func (r *RedisStorage) TopScores(ctx context.Context, n int) ([]state.Score, error) {
	if n <= 0 {
		return nil, nil
	}

	members, err := r.client.ZRevRangeWithScores(ctx, scoresKey, 0, int64(n-1)).Result()
	if err != nil {
		r.logger.Error("Failed to query top scores", "error", err)
		return nil, fmt.Errorf("failed to query top scores: %w", err)
	}

	scores := make([]state.Score, 0, len(members))
	for _, m := range members {
		raw, ok := m.Member.(string)
		if !ok {
			continue
		}
		var s state.Score
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			r.logger.Warn("Skipping malformed score entry", "error", err)
			continue
		}
		scores = append(scores, s)
	}

	return scores, nil
}
