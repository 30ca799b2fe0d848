package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/blackoutbot/blackout/pkg/state"
	"github.com/blackoutbot/blackout/pkg/storage"
)

// HighscoresResponse is the leaderboard payload, best first.
type HighscoresResponse struct {
	Scores []state.Score `json:"scores"`
	Error  string        `json:"error,omitempty"`
}

// HighscoresHandler serves the leaderboard
type HighscoresHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewHighscoresHandler creates a new highscores handler
func NewHighscoresHandler(s storage.Storage, logger *slog.Logger) *HighscoresHandler {
	return &HighscoresHandler{
		storage: s,
		logger:  logger,
	}
}

// ServeHTTP handles HTTP requests for the leaderboard
func (h *HighscoresHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for highscores endpoint",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := HighscoresResponse{
			Error: "Method not allowed. Only GET is supported.",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Error encoding highscores error response", "error", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	scores, err := h.storage.TopScores(ctx, leaderboardSize)
	if err != nil {
		h.logger.Error("Error querying leaderboard", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		response := HighscoresResponse{
			Error: "Failed to load highscores. Please try again.",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Error encoding highscores error response", "error", err)
		}
		return
	}

	if scores == nil {
		scores = []state.Score{}
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(HighscoresResponse{Scores: scores}); err != nil {
		h.logger.Error("Error encoding highscores response", "error", err)
	}
}
