// Package engine implements the 2048 board rules: sliding and merging tiles,
// spawning new tiles and detecting terminal positions.
//
// Every function is pure. A Grid is an array, so passing it around copies it and
// callers can keep references to earlier boards without any aliasing.
package engine

import (
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// WinTile is the traditional win threshold.
const WinTile = 2048

// Grid is a Size x Size board. 0 is an empty cell.
type Grid [Size][Size]int

// Cell addresses a single grid position.
type Cell struct {
	Row, Col int
}

// GameState is a board together with the cumulative score of one game.
type GameState struct {
	Board Grid
	Score int
}

// CreateEmptyBoard returns a board with every cell empty.
func CreateEmptyBoard() Grid {
	return Grid{}
}

// EmptyCells returns the empty positions in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// CountTiles returns the number of non-empty cells.
func CountTiles(g Grid) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the largest tile value on the board.
func MaxTile(g Grid) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// String renders the grid as rows of right-aligned values.
func (g Grid) String() string {
	width := len(strconv.Itoa(MaxTile(g)))

	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := strconv.Itoa(g[r][c])
			sb.WriteString(strings.Repeat(" ", width-len(v)))
			sb.WriteString(v)
		}
	}
	return sb.String()
}
