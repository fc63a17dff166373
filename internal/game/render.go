package game

import (
	"fmt"

	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 3 // Height of each cell (including the top border)
	hudHeight  = 3
	padHeight  = 3 // On-screen control pad rows

	boardW = engine.Size*cellWidth + 1
	boardH = engine.Size*cellHeight + 1

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 1 + padHeight
)

// button is an on-screen control.
type button struct {
	label  string
	rect   core.Rect
	action core.Action
}

// frame holds screen positions derived from the current screen size.
type frame struct {
	board    core.Rect
	messageY int
	buttons  []button
}

// layout centers the board under the HUD and places the control pad below it:
//
//	  [ ↑ ]
//	[ ← ] [ New ] [ → ]
//	  [ ↓ ]
func (g *Game) layout() frame {
	board := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)
	messageY := board.Bottom()
	padY := messageY + 1
	centerX := board.X + boardW/2

	place := func(label string, x, y int, a core.Action) button {
		return button{label: label, rect: core.NewRect(x, y, core.TextWidth(label), 1), action: a}
	}
	centered := func(label string, y int, a core.Action) button {
		return place(label, centerX-core.TextWidth(label)/2, y, a)
	}

	newBtn := centered("[ New ]", padY+1, core.ActionRestart)
	left := "[ ← ]"
	leftBtn := place(left, newBtn.rect.X-1-core.TextWidth(left), padY+1, core.ActionLeft)
	rightBtn := place("[ → ]", newBtn.rect.Right()+1, padY+1, core.ActionRight)

	return frame{
		board:    board,
		messageY: messageY,
		buttons: []button{
			centered("[ ↑ ]", padY, core.ActionUp),
			leftBtn,
			newBtn,
			rightBtn,
			centered("[ ↓ ]", padY+2, core.ActionDown),
		},
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	f := g.layout()
	g.renderHUD(dst, f.board)
	g.renderBoard(dst, f.board)
	g.renderMessage(dst, f)
	g.renderPad(dst, f.buttons)

	if hintY := f.messageY + 1 + padHeight; hintY < g.screenH {
		hint := g.Controls()
		dst.DrawTextColor(max(0, (g.screenW-core.TextWidth(hint))/2), hintY, hint, core.ColorGray)
	}

	if g.over {
		cx, cy := f.board.Center()
		drawOverlay(dst, cx, cy,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", g.score, g.best),
			"Press N for a new game",
		)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := g.Title()
	dst.DrawTextColor(board.X+(board.W-core.TextWidth(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.score))

	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawTextColor(board.Right()-core.TextWidth(best), 1, best, core.ColorGold)

	info := fmt.Sprintf("Max tile: %d", engine.MaxTile(g.board))
	dst.DrawTextColor(board.X+(board.W-core.TextWidth(info))/2, 2, info, core.ColorGray)
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	for y := range engine.Size + 1 {
		for x := range engine.Size + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			dst.SetColor(px, py, corner(x, y), core.ColorGray)

			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	inner := cellWidth - 1
	for row := range engine.Size {
		for col := range engine.Size {
			val := g.board[row][col]
			if val == 0 {
				continue
			}

			style := StyleFor(val)
			cellX := board.X + col*cellWidth + 1
			cellY := board.Y + row*cellHeight + 1

			if g.emoji {
				e := TileEmoji(val)
				dst.DrawTextColor(cellX+(inner-core.TextWidth(e))/2, cellY, e, style.Color)
			}

			label := TileLabel(val)
			dst.DrawTextColor(cellX+max(0, (inner-len(label))/2), cellY+1, label, style.Color)
		}
	}
}

func corner(x, y int) rune {
	last := engine.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// renderMessage draws the status line between the board and the pad.
func (g *Game) renderMessage(dst *core.Screen, f frame) {
	var (
		msg   string
		color core.Color
	)
	switch {
	case g.over:
		msg, color = "No moves left", core.ColorRed
	case g.won:
		msg, color = fmt.Sprintf("YOU WIN! %d reached, keep going", g.opts.WinTile), core.ColorGold
	default:
		return
	}

	x := f.board.X + (f.board.W-core.TextWidth(msg))/2
	dst.DrawTextColor(max(0, x), f.messageY, msg, color)
}

func (g *Game) renderPad(dst *core.Screen, buttons []button) {
	for _, b := range buttons {
		color := core.ColorCyan
		if b.action.IsMove() && g.over {
			color = core.ColorGray
		}
		dst.DrawTextColor(b.rect.X, b.rect.Y, b.label, color)
	}
}

// drawOverlay draws a boxed message centered on (centerX, centerY).
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, core.TextWidth(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightRed)

	for i, line := range lines {
		dst.DrawText(centerX-core.TextWidth(line)/2, box.Y+1+i, line)
	}
}
