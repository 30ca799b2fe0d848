package session

// TurnRequest is one message from a player: either a menu button press, a
// free-text reply (the name prompt), or a slash command.
type TurnRequest struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name,omitempty"`
	Text        string `json:"text"`
}

// TurnResponse carries the narrative reply and the buttons now on offer. An
// empty menu means the client should present a free-text prompt.
type TurnResponse struct {
	Text  string   `json:"text,omitempty"`
	Menu  []string `json:"menu,omitempty"`
	Error string   `json:"error,omitempty"`
}

// Slash commands accepted by the turn endpoint.
const (
	CmdStart      = "/start"
	CmdHelp       = "/help"
	CmdHighscores = "/highscores"
	CmdReset      = "/reset"

	// Debug cheats.
	CmdGiveObject = "/pleasegiveme"
	CmdDropObject = "/drop"
	CmdGiveMoney  = "/pleasegivememoney"
)
