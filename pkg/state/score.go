package state

import (
	"time"

	"github.com/google/uuid"
)

// ScoreTurnWeight is the per-turn component of the final score.
const ScoreTurnWeight = 50

// Score is the immutable leaderboard record created once, at the moment of
// winning.
type Score struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Turns     int       `json:"turns"`
	Money     int       `json:"money"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// NewScore computes the final score for a winning player.
func NewScore(name string, turns, money int) Score {
	return Score{
		ID:        uuid.New(),
		Name:      name,
		Turns:     turns,
		Money:     money,
		Score:     ScoreTurnWeight*turns + money,
		CreatedAt: time.Now(),
	}
}
