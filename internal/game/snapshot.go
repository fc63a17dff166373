package game

import "github.com/vovakirdan/tui2048/internal/engine"

// StateType names the phase of a session.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateWon         StateType = "won"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Score   int
	Best    int
	Board   engine.Grid
	MaxTile int
	State   StateType
}

// Snapshot returns the current game snapshot.
// Game over takes precedence over won, since a won game can still run out of moves.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.over:
		state = StateGameOver
	case g.won:
		state = StateWon
	}

	return Snapshot{
		Score:   g.score,
		Best:    g.best,
		Board:   g.board,
		MaxTile: engine.MaxTile(g.board),
		State:   state,
	}
}
