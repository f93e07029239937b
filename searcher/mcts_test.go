package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nogo/game"
)

// fullBlackExcept fills the board with black stones, leaving the given
// points empty.
func fullBlackExcept(empties ...game.Position) game.Board {
	var grid [game.NumPoints]game.Color
	for i := range grid {
		grid[i] = game.Black
	}
	for _, p := range empties {
		grid[p] = game.Empty
	}
	return game.NewBoardFrom(grid, game.Black)
}

func TestFindMoveSingleLegalMove(t *testing.T) {
	// Only 40 is playable: 42 would capture the white stone at 43 and
	// every other point is occupied.
	b := fullBlackExcept(40, 42)
	b.Set(43, game.White)

	m := NewMCTS(1, WithSeed(1), WithPlayoutCap(20), WithBudget(10*time.Second))
	move, _ := m.FindMove(b, game.Black)
	require.Equal(t, game.Move{Pos: 40, Color: game.Black}, move)
}

func TestFindMoveNoLegalMove(t *testing.T) {
	b := fullBlackExcept(0, 80)
	m := NewMCTS(2, WithPlayoutCap(10))
	move, _ := m.FindMove(b, game.White)
	require.True(t, move.IsNoMove())
}

func TestFindMoveIsLegal(t *testing.T) {
	boards := []game.Board{
		game.NewBoard(),
		fullBlackExcept(40, 41, 42),
	}
	for _, b := range boards {
		m := NewMCTS(2, WithSeed(7), WithPlayoutCap(30), WithBudget(10*time.Second))
		move, _ := m.FindMove(b, game.Black)
		require.False(t, move.IsNoMove())
		require.True(t, b.Legal(move))
	}
}

func TestFindMoveDeterministicUnderSeed(t *testing.T) {
	b := game.NewBoard()
	run := func() game.Move {
		m := NewMCTS(1, WithSeed(1), WithPlayoutCap(50), WithBudget(time.Minute))
		move, _ := m.FindMove(b, game.Black)
		return move
	}
	first := run()
	require.False(t, first.IsNoMove())
	require.Equal(t, first, run(), "fixed seed and one worker replay the identical decision")
}

func TestWorkerDeterministicUnderSeed(t *testing.T) {
	b := game.NewBoard()
	run := func() []node {
		w := newWorker(game.Black, DefaultArenaCapacity, 3, NewDummyCollector())
		root := w.search(b, time.Minute, 40)
		require.NotEqual(t, nilRef, root)
		return w.arena.nodes[:w.arena.size()]
	}
	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i], second[i], "node %d diverged", i)
	}
}

func TestFindMoveDominantMoveRootParallel(t *testing.T) {
	// Three empty points in a row on an otherwise black board. Playing
	// the middle one leaves white with two isolated suicide points and
	// wins outright; either outer point hands white a reply that
	// leaves black stuck. Every playout is deterministic, so all four
	// workers must agree on the middle point.
	b := fullBlackExcept(40, 41, 42)
	m := NewMCTS(4, WithSeed(9), WithPlayoutCap(100), WithBudget(10*time.Second))
	move, _ := m.FindMove(b, game.Black)
	require.Equal(t, game.Move{Pos: 41, Color: game.Black}, move)
}

func TestFindMoveStarvedBudgetStillLegal(t *testing.T) {
	b := game.NewBoard()
	m := NewMCTS(1, WithBudget(time.Nanosecond))
	move, _ := m.FindMove(b, game.Black)
	require.False(t, move.IsNoMove())
	require.True(t, b.Legal(move))
}

func TestFindMoveMetrics(t *testing.T) {
	b := game.NewBoard()
	m := NewMCTS(1, WithSeed(1), WithPlayoutCap(25), WithBudget(time.Minute), WithMetrics())
	_, metrics := m.FindMove(b, game.Black)
	require.EqualValues(t, 25, metrics.Playouts)
	require.False(t, metrics.Exhausted)
	require.Positive(t, metrics.Duration)
}

func TestWorkerArenaExhaustionIsSoft(t *testing.T) {
	b := game.NewBoard()
	c := NewCollector()
	c.Start()
	w := newWorker(game.Black, 5, 1, c)
	root := w.search(b, time.Minute, 0)
	require.NotEqual(t, nilRef, root, "the root survives exhaustion")
	require.True(t, c.Complete().Exhausted)
	require.Equal(t, 5, w.arena.size())
	n := w.arena.at(root)
	require.Positive(t, n.count, "statistics gathered before exhaustion are kept")
}

func TestBeta(t *testing.T) {
	require.InDelta(t, 0.5, beta(1, 1), 0.01, "equal evidence splits the weight")
	require.Greater(t, beta(1, 100), 0.9, "rave-heavy evidence favors the rave estimate")
	require.Less(t, beta(10000, 10), 0.01, "visit-heavy evidence favors the primary estimate")
}
