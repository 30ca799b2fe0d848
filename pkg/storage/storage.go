package storage

import (
	"context"

	"github.com/blackoutbot/blackout/pkg/state"
)

// Storage defines a unified interface for all persistence operations:
// player state by player ID and the global leaderboard.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Player state operations
	SavePlayerState(ctx context.Context, playerID string, ps *state.PlayerState) error
	// LoadPlayerState returns nil when no state exists for the player.
	LoadPlayerState(ctx context.Context, playerID string) (*state.PlayerState, error)
	DeletePlayerState(ctx context.Context, playerID string) error

	// Leaderboard operations
	AppendScore(ctx context.Context, s *state.Score) error
	// TopScores returns at most n scores, best first.
	TopScores(ctx context.Context, n int) ([]state.Score, error)
}
