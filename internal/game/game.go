// Package game implements a 2048 play session on top of the board engine.
//
// A Game owns the only mutable state of a session: the current grid, the
// score, the best score and the won/over flags. Every move follows the same
// cycle: engine.Move, then a spawn on the moved board, then flag updates.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/engine"
	"github.com/vovakirdan/tui2048/internal/feedback"
)

// ID identifies the game in score storage.
const ID = "2048"

// BestStore persists the best score. *storage.Store implements it.
type BestStore interface {
	BestScore(gameID string) (int, error)
	RecordBest(gameID string, score int) (bool, error)
	ClearBest(gameID string) error
}

// Options configures a Game.
type Options struct {
	WinTile  int     // Tile value that sets the won flag; 0 means engine.WinTile
	Spawn4   float64 // Probability that a spawned tile is a 4
	Emoji    bool    // Show emoji labels on tiles
	Store    BestStore
	Notifier feedback.Notifier
	Logger   *log.Logger
}

// DefaultOptions returns the classic rules without persistence or feedback.
func DefaultOptions() Options {
	return Options{
		WinTile:  engine.WinTile,
		Spawn4:   engine.DefaultFourProbability,
		Emoji:    true,
		Notifier: feedback.Nop{},
	}
}

// Game is a single-player 2048 session.
type Game struct {
	opts   Options
	rng    *rand.Rand
	logger *log.Logger

	board engine.Grid
	score int
	best  int

	bestLoaded bool
	won        bool // Win tile reached; play continues
	over       bool // No move left; only a new game leaves this state
	emoji      bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Call Reset before playing.
func New(opts Options) *Game {
	if opts.WinTile <= 0 {
		opts.WinTile = engine.WinTile
	}

	if opts.Notifier == nil {
		opts.Notifier = feedback.Nop{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		opts:   opts,
		logger: logger,
		emoji:  opts.Emoji,
		rng:    rand.New(rand.NewSource(0)),
	}
}

// ID returns the storage identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "2048" }

// Reset seeds the RNG from cfg and starts a new game.
// The best score is read from the store the first time only.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if !g.bestLoaded {
		g.loadBest()
	}

	g.NewGame()
}

// NewGame discards the current board and deals a fresh one.
// It is allowed in every state, including after a win or a game over.
func (g *Game) NewGame() {
	state := engine.NewGameWithOdds(g.rng, g.opts.Spawn4)
	g.board = state.Board
	g.score = state.Score
	g.won = engine.HasTile(g.board, g.opts.WinTile)
	g.over = false

	g.logger.Debug("new game", "board", g.board.String())
	feedback.Send(g.opts.Notifier, feedback.Light, g.logger)
}

// Resize records the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Apply performs one move. It reports whether the board changed.
// A move that changes nothing spawns nothing and leaves the score alone.
func (g *Game) Apply(d engine.Direction) bool {
	if g.over || !d.Valid() {
		return false
	}

	res := engine.Move(g.board, d)
	if !res.Moved {
		return false
	}

	g.board = engine.SpawnTile(res.Board, g.rng, g.opts.Spawn4)
	g.score += res.Gained

	if !g.won && engine.HasTile(g.board, g.opts.WinTile) {
		g.won = true
		g.logger.Info("win tile reached", "tile", g.opts.WinTile, "score", g.score)
		feedback.Send(g.opts.Notifier, feedback.Success, g.logger)
	}
	if !engine.CanMove(g.board) {
		g.over = true
		g.logger.Info("game over", "score", g.score, "max_tile", engine.MaxTile(g.board))
		feedback.Send(g.opts.Notifier, feedback.Error, g.logger)
	}

	g.raiseBest()

	impact := feedback.Light
	if res.Gained > 0 {
		impact = feedback.Medium
	}
	feedback.Send(g.opts.Notifier, impact, g.logger)

	return true
}

// ResetBest forgets the best score in memory and in the store.
func (g *Game) ResetBest() {
	g.best = 0
	if g.opts.Store == nil {
		return
	}
	if err := g.opts.Store.ClearBest(ID); err != nil {
		g.logger.Warn("could not clear best score", "error", err)
	}
}

// ToggleEmoji switches tile labels between numbers and emoji.
func (g *Game) ToggleEmoji() {
	g.emoji = !g.emoji
}

// Step processes one frame of input. At most one move is applied per frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.NewGame()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionResetBest) {
		g.ResetBest()
	}
	if in.Has(core.ActionToggleEmoji) {
		g.ToggleEmoji()
	}

	moved := false
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			moved = g.Apply(directionFor(a))
			break
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// ButtonAt returns the action of the on-screen button at (x, y).
// The action is not applied; callers queue it like any other input.
func (g *Game) ButtonAt(x, y int) (core.Action, bool) {
	if g.tooSmall {
		return core.ActionNone, false
	}

	for _, b := range g.layout().buttons {
		if b.rect.Contains(x, y) {
			return b.action, true
		}
	}
	return core.ActionNone, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		Won:      g.won,
		GameOver: g.over,
		Paused:   g.tooSmall,
	}
}

// Board returns a copy of the current grid.
func (g *Game) Board() engine.Grid { return g.board }

// Emoji reports whether tiles show emoji labels.
func (g *Game) Emoji() bool { return g.emoji }

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL or swipe: Move | N: New | E: Emoji | X: Reset best | Q: Quit"
}

func (g *Game) loadBest() {
	g.bestLoaded = true
	if g.opts.Store == nil {
		return
	}

	best, err := g.opts.Store.BestScore(ID)
	if err != nil {
		g.logger.Warn("could not read best score", "error", err)
		return
	}
	g.best = best
}

// raiseBest keeps best at the maximum score seen and writes it through.
func (g *Game) raiseBest() {
	if g.score <= g.best {
		return
	}
	g.best = g.score

	if g.opts.Store == nil {
		return
	}
	if _, err := g.opts.Store.RecordBest(ID, g.best); err != nil {
		g.logger.Warn("could not save best score", "error", err)
	}
}

func directionFor(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.Up
	case core.ActionDown:
		return engine.Down
	case core.ActionLeft:
		return engine.Left
	case core.ActionRight:
		return engine.Right
	default:
		return engine.Direction(-1)
	}
}
