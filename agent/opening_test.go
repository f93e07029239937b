package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nogo/game"
)

var openingCandidates = map[game.Position]bool{
	3: true, 5: true, 27: true, 45: true, 35: true, 53: true, 75: true, 77: true,
	1: true, 9: true, 7: true, 17: true, 63: true, 73: true, 71: true, 79: true,
}

func TestOpeningChoiceEmptyBoard(t *testing.T) {
	b := game.NewBoard()
	move, ok := openingChoice(&b, game.Black)
	require.True(t, ok)
	require.True(t, openingCandidates[move.Pos], "opening move %v outside the candidate tables", move.Pos)
	require.NotEqual(t, game.Position(40), move.Pos, "never the centre")
}

func TestOpeningChoiceFailsOnBlockedCandidates(t *testing.T) {
	var grid [game.NumPoints]game.Color
	for p := range openingCandidates {
		grid[p] = game.White
	}
	b := game.NewBoardFrom(grid, game.Black)
	_, ok := openingChoice(&b, game.Black)
	require.False(t, ok, "no playable candidate means the heuristic gives up")
}

func TestOpeningChoiceBreaksOpponentEye(t *testing.T) {
	// White threatens an eye at E5 (40): playing E6 (31) would leave
	// all four neighbors white. Black takes the eye point first.
	b := game.NewBoard()
	b.Set(39, game.White)
	b.Set(41, game.White)
	b.Set(49, game.White)

	move, ok := openingChoice(&b, game.Black)
	require.True(t, ok)
	require.Equal(t, game.Move{Pos: 40, Color: game.Black}, move)
}

func TestOpeningChoicePrefersOwnEye(t *testing.T) {
	// Black stones around 4 so that playing edge candidate 3 completes
	// an eye at 4 (its up neighbor is off-board and 13 is a hollow
	// centre).
	b := game.NewBoard()
	b.Set(5, game.Black)
	move, ok := openingChoice(&b, game.Black)
	require.True(t, ok)
	require.Equal(t, game.Position(3), move.Pos, "edge candidate completing the eye wins")
}

func TestIsEye(t *testing.T) {
	t.Run("full cross makes an eye", func(t *testing.T) {
		b := game.NewBoard()
		for _, n := range game.Neighbors(24) {
			b.Set(n, game.Black)
		}
		require.True(t, isEye(&b, 24, game.Black))
		require.False(t, isEye(&b, 24, game.White))
	})

	t.Run("one missing neighbor breaks the eye", func(t *testing.T) {
		b := game.NewBoard()
		b.Set(15, game.Black)
		b.Set(23, game.Black)
		b.Set(25, game.Black)
		require.False(t, isEye(&b, 24, game.Black), "33 is empty")
	})

	t.Run("symmetry away from the hollow centres", func(t *testing.T) {
		// The same isolated cross reflected and rotated across the
		// board; none of the neighbor sets meets a hollow centre.
		for _, centre := range []game.Position{20, 24, 56, 60} {
			b := game.NewBoard()
			for _, n := range game.Neighbors(centre) {
				b.Set(n, game.Black)
			}
			require.True(t, isEye(&b, centre, game.Black), "centre %v", centre)
		}
	})

	t.Run("off-board neighbors count as satisfied", func(t *testing.T) {
		b := game.NewBoard()
		b.Set(1, game.Black)
		b.Set(9, game.Black)
		require.True(t, isEye(&b, 0, game.Black), "corner eye needs only two stones")
	})

	t.Run("hollow centres count as satisfied", func(t *testing.T) {
		b := game.NewBoard()
		b.Set(3, game.Black)
		b.Set(5, game.Black)
		require.True(t, isEye(&b, 4, game.Black),
			"up is off-board, down is the hollow centre 13")
	})
}

func TestMakesEye(t *testing.T) {
	b := game.NewBoard()
	b.Set(5, game.Black)
	require.Equal(t, game.Position(4), makesEye(&b, 3, game.Black))
	require.Equal(t, game.Empty, b.Stone(3), "makesEye leaves the board untouched")

	empty := game.NewBoard()
	require.Equal(t, game.Position(-1), makesEye(&empty, 3, game.Black))
}

func TestOpeningMoveGating(t *testing.T) {
	t.Run("stops after the move limit", func(t *testing.T) {
		cfg, err := ParseConfig("name=p role=black search=MCTS seed=1 simulation=1")
		require.NoError(t, err)
		p := NewPlayer(cfg)
		b := game.NewBoard()
		for i := 0; i < openingMoveLimit; i++ {
			require.False(t, p.openingMove(&b).IsNoMove(), "move %d is within the opening", i+1)
		}
		require.True(t, p.openingMove(&b).IsNoMove(), "the ninth move is out of scope")
	})

	t.Run("first failure disables the heuristic for the episode", func(t *testing.T) {
		cfg, err := ParseConfig("name=p role=black search=MCTS seed=1 simulation=1")
		require.NoError(t, err)
		p := NewPlayer(cfg)

		var grid [game.NumPoints]game.Color
		for c := range openingCandidates {
			grid[c] = game.White
		}
		blocked := game.NewBoardFrom(grid, game.Black)
		require.True(t, p.openingMove(&blocked).IsNoMove())
		require.True(t, p.openingDisabled)

		open := game.NewBoard()
		require.True(t, p.openingMove(&open).IsNoMove(), "stays disabled even with candidates free")

		p.OpenEpisode("")
		require.False(t, p.openingMove(&open).IsNoMove(), "a new episode re-arms it")
	})
}
