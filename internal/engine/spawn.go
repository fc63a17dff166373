package engine

// Rand is the randomness used to place new tiles. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// DefaultFourProbability is the chance that a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.1

// AddRandomTile places a 2 (90%) or a 4 (10%) on a uniformly chosen empty cell.
// A full grid is returned unchanged.
func AddRandomTile(g Grid, rng Rand) Grid {
	return SpawnTile(g, rng, DefaultFourProbability)
}

// SpawnTile is AddRandomTile with a configurable probability of spawning a 4.
func SpawnTile(g Grid, rng Rand, fourProb float64) Grid {
	empty := EmptyCells(g)
	if len(empty) == 0 {
		return g
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	g[cell.Row][cell.Col] = value
	return g
}

// NewGame returns an empty board with two spawned tiles and a zero score.
func NewGame(rng Rand) GameState {
	return NewGameWithOdds(rng, DefaultFourProbability)
}

// NewGameWithOdds is NewGame with a configurable probability of spawning a 4.
func NewGameWithOdds(rng Rand, fourProb float64) GameState {
	b := CreateEmptyBoard()
	b = SpawnTile(b, rng, fourProb)
	b = SpawnTile(b, rng, fourProb)
	return GameState{Board: b}
}
