package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values so spawn outcomes can be pinned.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// randomGrid builds a board with small tiles so merges are frequent.
func randomGrid(rng *rand.Rand) Grid {
	var g Grid
	for r := range Size {
		for c := range Size {
			if rng.Float64() < 0.3 {
				continue
			}
			g[r][c] = 1 << (1 + rng.Intn(4))
		}
	}
	return g
}

func TestCompressMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		gained   int
	}{
		{"simple merge", [Size]int{2, 2, 0, 0}, [Size]int{4, 0, 0, 0}, 4},
		{"leftmost pair wins", [Size]int{2, 2, 2, 0}, [Size]int{4, 2, 0, 0}, 4},
		{"two pairs", [Size]int{2, 2, 2, 2}, [Size]int{4, 4, 0, 0}, 8},
		{"merged tile is not re-merged", [Size]int{2, 2, 4, 0}, [Size]int{4, 4, 0, 0}, 4},
		{"gap then pair", [Size]int{2, 0, 2, 2}, [Size]int{4, 2, 0, 0}, 4},
		{"one merge per tile", [Size]int{4, 4, 4, 4}, [Size]int{8, 8, 0, 0}, 16},
		{"no merge possible", [Size]int{2, 4, 8, 16}, [Size]int{2, 4, 8, 16}, 0},
		{"slide with gap", [Size]int{0, 0, 2, 2}, [Size]int{4, 0, 0, 0}, 4},
		{"pair across gaps", [Size]int{2, 0, 0, 2}, [Size]int{4, 0, 0, 0}, 4},
		{"already packed", [Size]int{4, 2, 0, 0}, [Size]int{4, 2, 0, 0}, 0},
		{"empty row", [Size]int{0, 0, 0, 0}, [Size]int{0, 0, 0, 0}, 0},
		{"single tile", [Size]int{0, 4, 0, 0}, [Size]int{4, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, gained := compressMerge(tt.input)
			assert.Equal(t, tt.expected, row)
			assert.Equal(t, tt.gained, gained)
		})
	}
}

func TestMoveDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		board    Grid
		expected Grid
		gained   int
	}{
		{
			name: "left",
			dir:  Left,
			board: Grid{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Grid{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			gained: 20,
		},
		{
			name: "right",
			dir:  Right,
			board: Grid{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Grid{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			gained: 20,
		},
		{
			name: "up",
			dir:  Up,
			board: Grid{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: Grid{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			gained: 20,
		},
		{
			name: "down",
			dir:  Down,
			board: Grid{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: Grid{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			gained: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Move(tt.board, tt.dir)
			assert.Equal(t, tt.expected, res.Board, "got\n%v", res.Board)
			assert.True(t, res.Moved)
			assert.Equal(t, tt.gained, res.Gained)
		})
	}
}

func TestMoveScenarios(t *testing.T) {
	t.Run("pair merges to the left", func(t *testing.T) {
		res := Move(Grid{{2, 2, 0, 0}}, Left)
		assert.Equal(t, Grid{{4, 0, 0, 0}}, res.Board)
		assert.True(t, res.Moved)
		assert.Equal(t, 4, res.Gained)
	})

	t.Run("trailing tile cannot re-merge", func(t *testing.T) {
		res := Move(Grid{{2, 0, 2, 2}}, Left)
		assert.Equal(t, [Size]int{4, 2, 0, 0}, res.Board[0])
		assert.Equal(t, 4, res.Gained)
	})

	t.Run("shift without merge still moves", func(t *testing.T) {
		res := Move(Grid{{0, 2, 0, 4}}, Left)
		assert.Equal(t, [Size]int{2, 4, 0, 0}, res.Board[0])
		assert.True(t, res.Moved)
		assert.Zero(t, res.Gained)
	})
}

func TestMoveDirectionSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		g := randomGrid(rng)

		right := Move(g, Right)
		viaLeft := Move(reverseRows(g), Left)
		require.Equal(t, reverseRows(viaLeft.Board), right.Board, "right on\n%v", g)
		require.Equal(t, viaLeft.Gained, right.Gained)
		require.Equal(t, viaLeft.Moved, right.Moved)

		up := Move(g, Up)
		viaLeft = Move(transpose(g), Left)
		require.Equal(t, transpose(viaLeft.Board), up.Board, "up on\n%v", g)
		require.Equal(t, viaLeft.Gained, up.Gained)

		down := Move(g, Down)
		viaRight := Move(transpose(g), Right)
		require.Equal(t, transpose(viaRight.Board), down.Board, "down on\n%v", g)
		require.Equal(t, viaRight.Gained, down.Gained)
	}
}

func TestMoveNoOpIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	noOps := 0

	grids := []Grid{
		{},
		{{4, 2, 0, 0}},
		{
			{2, 4, 8, 16},
			{4, 8, 16, 32},
			{8, 16, 32, 64},
			{16, 32, 64, 128},
		},
	}
	for i := 0; i < 300; i++ {
		grids = append(grids, randomGrid(rng))
	}

	for _, g := range grids {
		for _, d := range Directions {
			res := Move(g, d)
			if res.Moved {
				continue
			}
			noOps++
			require.Equal(t, g, res.Board, "%s on\n%v", d, g)
			require.Zero(t, res.Gained)
		}
	}

	assert.Positive(t, noOps)
}

func TestMoveChangedMatchesMoved(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		g := randomGrid(rng)
		for _, d := range Directions {
			res := Move(g, d)
			assert.Equal(t, res.Board != g, res.Moved, "%s on\n%v", d, g)
		}
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	g := Grid{{2, 2, 0, 0}}

	for _, d := range []Direction{-1, 4, 42} {
		res := Move(g, d)
		assert.Equal(t, g, res.Board)
		assert.False(t, res.Moved)
		assert.Zero(t, res.Gained)
	}
}

func TestMoveDoesNotAliasInput(t *testing.T) {
	g := Grid{{2, 2, 0, 0}, {0, 4, 0, 4}}
	before := g

	res := Move(g, Left)
	res.Board[0][0] = 1024

	assert.Equal(t, before, g)
}

func TestCreateEmptyBoard(t *testing.T) {
	g := CreateEmptyBoard()
	assert.Zero(t, CountTiles(g))
	assert.Len(t, EmptyCells(g), Size*Size)
}

func TestAddRandomTileChangesOneEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 500; i++ {
		g := randomGrid(rng)
		if len(EmptyCells(g)) == 0 {
			continue
		}

		next := AddRandomTile(g, rng)

		changed := 0
		for r := range Size {
			for c := range Size {
				if next[r][c] == g[r][c] {
					continue
				}
				changed++
				require.Zero(t, g[r][c], "spawn overwrote a tile")
				require.Contains(t, []int{2, 4}, next[r][c])
			}
		}
		require.Equal(t, 1, changed)
		require.Equal(t, CountTiles(g)+1, CountTiles(next))
	}
}

func TestAddRandomTileFullGrid(t *testing.T) {
	full := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	// The source must not be consulted at all.
	next := AddRandomTile(full, &scriptedRand{})
	assert.Equal(t, full, next)
}

func TestAddRandomTilePinnedOutcome(t *testing.T) {
	g := Grid{{2, 0, 0, 0}}

	// Empty cells in row-major order: (0,1), (0,2), (0,3), (1,0), ...
	next := AddRandomTile(g, &scriptedRand{ints: []int{2}, floats: []float64{0.95}})
	assert.Equal(t, 2, next[0][3])

	next = AddRandomTile(g, &scriptedRand{ints: []int{3}, floats: []float64{0.05}})
	assert.Equal(t, 4, next[1][0])

	assert.Equal(t, Grid{{2, 0, 0, 0}}, g, "input grid must be untouched")
}

func TestAddRandomTileDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const trials = 1000

	fours := 0
	for i := 0; i < trials; i++ {
		g := AddRandomTile(CreateEmptyBoard(), rng)
		if MaxTile(g) == 4 {
			fours++
		}
	}

	ratio := float64(fours) / trials
	assert.InDelta(t, DefaultFourProbability, ratio, 0.04, "got %d fours out of %d", fours, trials)
}

func TestSpawnTileOdds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		assert.Equal(t, 2, MaxTile(SpawnTile(Grid{}, rng, 0)))
		assert.Equal(t, 4, MaxTile(SpawnTile(Grid{}, rng, 1)))
	}
}

func TestCanMove(t *testing.T) {
	stuck := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	assert.False(t, CanMove(stuck), "full board without pairs is game over")

	horizontal := stuck
	horizontal[0][1] = 2
	assert.True(t, CanMove(horizontal))

	vertical := stuck
	vertical[3][3] = 4096
	assert.True(t, CanMove(vertical))

	withEmpty := stuck
	withEmpty[2][2] = 0
	assert.True(t, CanMove(withEmpty))
}

func TestCanMoveAgreesWithMove(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 500; i++ {
		g := randomGrid(rng)
		anyMoved := false
		for _, d := range Directions {
			if Move(g, d).Moved {
				anyMoved = true
			}
		}
		require.Equal(t, anyMoved, CanMove(g), "board\n%v", g)
	}
}

func TestHas2048(t *testing.T) {
	g := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}
	assert.True(t, Has2048(g))

	g[2][2] = 0
	assert.False(t, Has2048(g))

	g[0][0] = 4096
	assert.True(t, Has2048(g), "values above the threshold also count")
}

func TestNewGame(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		state := NewGame(rand.New(rand.NewSource(seed)))
		require.Equal(t, 2, CountTiles(state.Board))
		require.Zero(t, state.Score)
		require.LessOrEqual(t, MaxTile(state.Board), 4)
	}
}

func TestNewGameDeterministic(t *testing.T) {
	a := NewGame(rand.New(rand.NewSource(12345)))
	b := NewGame(rand.New(rand.NewSource(12345)))
	assert.Equal(t, a, b)
}

func TestMaxTile(t *testing.T) {
	g := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}
	assert.Equal(t, 2048, MaxTile(g))
	assert.Zero(t, MaxTile(Grid{}))
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, ok := ParseDirection(d.String())
		require.True(t, ok)
		assert.Equal(t, d, parsed)
	}

	d, ok := ParseDirection(" Left ")
	assert.True(t, ok)
	assert.Equal(t, Left, d)

	_, ok = ParseDirection("north")
	assert.False(t, ok)
	assert.False(t, Direction(7).Valid())
	assert.Equal(t, "invalid", Direction(7).String())
}

func TestGridString(t *testing.T) {
	g := Grid{{2, 0, 0, 128}}
	assert.Equal(t, "  2   0   0 128\n  0   0   0   0\n  0   0   0   0\n  0   0   0   0", g.String())
}
