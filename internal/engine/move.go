package engine

// MoveResult is the outcome of applying a direction to a grid.
type MoveResult struct {
	Board  Grid
	Moved  bool // false means Board equals the input grid
	Gained int  // sum of the tiles created by merges
}

// compressMerge slides a row to the left and merges equal neighbours.
// A tile produced by a merge is never merged again in the same pass.
func compressMerge(row [Size]int) (result [Size]int, gained int) {
	var tiles [Size]int
	n := 0
	for _, v := range row {
		if v != 0 {
			tiles[n] = v
			n++
		}
	}

	writePos := 0
	for i := 0; i < n; i++ {
		if i+1 < n && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			result[writePos] = merged
			gained += merged
			i++ // skip the consumed partner
		} else {
			result[writePos] = tiles[i]
		}
		writePos++
	}

	return result, gained
}

// reverseRows mirrors the grid horizontally.
func reverseRows(g Grid) Grid {
	var result Grid
	for r := range Size {
		for c := range Size {
			result[r][c] = g[r][Size-1-c]
		}
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(g Grid) Grid {
	var result Grid
	for r := range Size {
		for c := range Size {
			result[r][c] = g[c][r]
		}
	}
	return result
}

// moveLeft applies compressMerge to every row.
func moveLeft(g Grid) MoveResult {
	res := MoveResult{}
	for r := range Size {
		row, gained := compressMerge(g[r])
		res.Board[r] = row
		res.Gained += gained
		if row != g[r] {
			res.Moved = true
		}
	}
	return res
}

// Move slides every row or column toward d and merges equal tiles.
// All four directions are reduced to a left move by mirroring and transposing.
// An invalid direction is a no-op.
func Move(g Grid, d Direction) MoveResult {
	switch d {
	case Left:
		return moveLeft(g)
	case Right:
		res := moveLeft(reverseRows(g))
		res.Board = reverseRows(res.Board)
		return res
	case Up:
		res := moveLeft(transpose(g))
		res.Board = transpose(res.Board)
		return res
	case Down:
		res := moveLeft(reverseRows(transpose(g)))
		res.Board = transpose(reverseRows(res.Board))
		return res
	default:
		return MoveResult{Board: g}
	}
}

// CanMove reports whether at least one direction would change the grid.
func CanMove(g Grid) bool {
	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if v == 0 {
				return true
			}
			if c < Size-1 && g[r][c+1] == v {
				return true
			}
			if r < Size-1 && g[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// HasTile reports whether any cell is at least threshold.
func HasTile(g Grid, threshold int) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] >= threshold {
				return true
			}
		}
	}
	return false
}

// Has2048 reports whether the board has reached the win tile.
func Has2048(g Grid) bool {
	return HasTile(g, WinTile)
}
