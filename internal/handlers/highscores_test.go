package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackoutbot/blackout/pkg/state"
	"github.com/blackoutbot/blackout/pkg/storage"
)

func TestHighscoresHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mock := storage.NewMockStorage()
	for _, s := range []state.Score{
		state.NewScore("Ann", 10, 40),
		state.NewScore("Bob", 20, 5),
	} {
		require.NoError(t, mock.AppendScore(t.Context(), &s))
	}

	handler := NewHighscoresHandler(mock, logger)
	req := httptest.NewRequest(http.MethodGet, "/v1/highscores", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp HighscoresResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Scores, 2)
	assert.Equal(t, "Bob", resp.Scores[0].Name, "best score first")
}

func TestHighscoresHandlerEmpty(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHighscoresHandler(storage.NewMockStorage(), logger)

	req := httptest.NewRequest(http.MethodGet, "/v1/highscores", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp HighscoresResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Empty(t, resp.Scores)
}

func TestHighscoresHandlerMethodNotAllowed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHighscoresHandler(storage.NewMockStorage(), logger)

	req := httptest.NewRequest(http.MethodPost, "/v1/highscores", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
