package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/blackoutbot/blackout/internal/content"
	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/engine"
	"github.com/blackoutbot/blackout/pkg/session"
	"github.com/blackoutbot/blackout/pkg/state"
	"github.com/blackoutbot/blackout/pkg/storage"
)

// leaderboardSize is how many entries the hall of fame shows.
const leaderboardSize = 10

// moneyCheatAmount is what /pleasegivememoney grants.
const moneyCheatAmount = 1000

// SessionHandler handles turn requests: onboarding, slash commands, win
// detection, and delegation to the turn engine. State is persisted once,
// after the whole turn has resolved.
type SessionHandler struct {
	storage storage.Storage
	content *content.Cache
	roller  dice.Roller
	logger  *slog.Logger
	titler  cases.Caser
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(s storage.Storage, c *content.Cache, roller dice.Roller, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		storage: s,
		content: c,
		roller:  roller,
		logger:  logger,
		titler:  cases.Title(language.English),
	}
}

// ServeHTTP handles HTTP requests for turns
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for turn endpoint",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)
		writeJSON(w, h.logger, http.StatusMethodNotAllowed, session.TurnResponse{
			Error: "Method not allowed. Only POST is supported.",
		})
		return
	}

	var req session.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		writeJSON(w, h.logger, http.StatusBadRequest, session.TurnResponse{
			Error: "Invalid request body. Expected JSON with 'player_id' and 'text' fields.",
		})
		return
	}
	if req.PlayerID == "" {
		writeJSON(w, h.logger, http.StatusBadRequest, session.TurnResponse{
			Error: "player_id cannot be empty.",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cat := h.content.Current()
	resp, err := h.resolve(ctx, cat, &req)
	if err != nil {
		h.logger.Error("Turn failed", "player_id", req.PlayerID, "error", err)
		writeJSON(w, h.logger, http.StatusInternalServerError, session.TurnResponse{
			Error: cat.Apology,
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, *resp)
}

// resolve runs the whole turn against loaded state and saves the result.
func (h *SessionHandler) resolve(ctx context.Context, cat *catalog.Catalog, req *session.TurnRequest) (*session.TurnResponse, error) {
	p, err := h.storage.LoadPlayerState(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}

	// First contact: create the player and send the intro.
	if p == nil {
		p = state.NewPlayerState(req.PlayerID)
		if err := h.storage.SavePlayerState(ctx, p.PlayerID, p); err != nil {
			return nil, err
		}
		return &session.TurnResponse{Text: cat.Intro, Menu: cat.IntroKeyboard}, nil
	}

	eng := engine.New(cat, h.roller)
	text := strings.TrimSpace(req.Text)

	if strings.HasPrefix(text, "/") {
		resp, handled, err := h.command(ctx, cat, eng, p, text)
		if err != nil {
			return nil, err
		}
		if handled {
			return resp, nil
		}
	}

	// A finished game ignores everything except commands.
	if p.Won {
		board, err := h.leaderboardText(ctx, cat)
		if err != nil {
			return nil, err
		}
		return &session.TurnResponse{Text: board}, nil
	}

	if p.InIntro {
		resp, err := h.resolveIntro(cat, eng, p, req, text)
		if err != nil {
			return nil, err
		}
		if err := h.storage.SavePlayerState(ctx, p.PlayerID, p); err != nil {
			return nil, err
		}
		return resp, nil
	}

	result, err := eng.Resolve(p, text)
	if err != nil {
		return nil, err
	}

	resp := &session.TurnResponse{Text: result.Text, Menu: result.Menu}
	if p.Won {
		// The winning turn records exactly one score; later requests are
		// stopped by the Won gate above and never reach this path.
		s := state.NewScore(p.Name, p.Turn, p.Money)
		if err := h.storage.AppendScore(ctx, &s); err != nil {
			return nil, err
		}
		board, err := h.leaderboardText(ctx, cat)
		if err != nil {
			return nil, err
		}
		resp.Text = result.Text + "\n\n" +
			fmt.Sprintf(cat.YouWon, s.Turns, s.Money, s.Score) + "\n\n" + board
		resp.Menu = nil
	}

	if err := h.storage.SavePlayerState(ctx, p.PlayerID, p); err != nil {
		return nil, err
	}
	return resp, nil
}

// resolveIntro walks the two onboarding steps: the intro button leads to the
// name prompt, and the next free-text message becomes the player's name.
func (h *SessionHandler) resolveIntro(cat *catalog.Catalog, eng *engine.Engine, p *state.PlayerState, req *session.TurnRequest, text string) (*session.TurnResponse, error) {
	for _, button := range cat.IntroKeyboard {
		if text != button {
			continue
		}
		var menu []string
		if req.DisplayName != "" {
			menu = []string{h.titler.String(req.DisplayName)}
		}
		return &session.TurnResponse{Text: cat.AskName, Menu: menu}, nil
	}

	if text == "" {
		return &session.TurnResponse{Text: cat.AskName}, nil
	}

	p.Name = text
	p.InIntro = false
	result, err := eng.Describe(p)
	if err != nil {
		return nil, err
	}
	return &session.TurnResponse{
		Text: cat.Story + "\n\n" + result.Text,
		Menu: result.Menu,
	}, nil
}

// command dispatches slash commands. handled is false when the text is not a
// recognized command and should resolve as a normal turn.
func (h *SessionHandler) command(ctx context.Context, cat *catalog.Catalog, eng *engine.Engine, p *state.PlayerState, text string) (*session.TurnResponse, bool, error) {
	fields := strings.Fields(text)
	cmd := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case session.CmdStart, session.CmdReset:
		p.Reset()
		if err := h.storage.SavePlayerState(ctx, p.PlayerID, p); err != nil {
			return nil, false, err
		}
		return &session.TurnResponse{Text: cat.Intro, Menu: cat.IntroKeyboard}, true, nil

	case session.CmdHelp:
		resp, err := h.currentView(cat, eng, p, cat.Help)
		return resp, true, err

	case session.CmdHighscores:
		board, err := h.leaderboardText(ctx, cat)
		if err != nil {
			return nil, false, err
		}
		resp, err := h.currentView(cat, eng, p, board)
		return resp, true, err

	case session.CmdGiveObject:
		if p.InIntro || p.Won || !cat.KnownObject(arg) {
			return nil, false, nil
		}
		p.AddItem(arg)
		if err := h.storage.SavePlayerState(ctx, p.PlayerID, p); err != nil {
			return nil, false, err
		}
		name, err := cat.ObjectName(arg)
		if err != nil {
			return nil, false, err
		}
		resp, err := h.currentView(cat, eng, p, fmt.Sprintf(cat.Took, name))
		return resp, true, err

	case session.CmdDropObject:
		if p.InIntro || p.Won || !p.RemoveOne(arg) {
			return nil, false, nil
		}
		if err := h.storage.SavePlayerState(ctx, p.PlayerID, p); err != nil {
			return nil, false, err
		}
		resp, err := h.currentView(cat, eng, p, "")
		return resp, true, err

	case session.CmdGiveMoney:
		if p.InIntro || p.Won {
			return nil, false, nil
		}
		p.Money += moneyCheatAmount
		if err := h.storage.SavePlayerState(ctx, p.PlayerID, p); err != nil {
			return nil, false, err
		}
		resp, err := h.currentView(cat, eng, p, "")
		return resp, true, err
	}

	return nil, false, nil
}

// currentView prefixes a message onto the player's current menu without
// consuming a turn. During onboarding there is no location to describe.
func (h *SessionHandler) currentView(cat *catalog.Catalog, eng *engine.Engine, p *state.PlayerState, message string) (*session.TurnResponse, error) {
	if p.InIntro || p.Won {
		menu := cat.IntroKeyboard
		if p.Won {
			menu = nil
		}
		return &session.TurnResponse{Text: message, Menu: menu}, nil
	}
	result, err := eng.Describe(p)
	if err != nil {
		return nil, err
	}
	text := result.Text
	if message != "" {
		text = message + "\n\n" + result.Text
	}
	return &session.TurnResponse{Text: text, Menu: result.Menu}, nil
}

// leaderboardText formats the hall of fame.
func (h *SessionHandler) leaderboardText(ctx context.Context, cat *catalog.Catalog) (string, error) {
	scores, err := h.storage.TopScores(ctx, leaderboardSize)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(scores))
	for i, s := range scores {
		lines = append(lines, fmt.Sprintf(cat.Highscore, i+1, s.Name, s.Turns, s.Money, s.Score))
	}
	return fmt.Sprintf(cat.Highscores, strings.Join(lines, "\n")), nil
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, resp session.TurnResponse) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("Error encoding response", "error", err)
	}
}
