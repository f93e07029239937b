package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"nogo/agent"
	"nogo/game"
)

func testSeries(t *testing.T, games int) Series {
	t.Helper()
	black, err := agent.ParseConfig("name=b role=black search=Random seed=1")
	require.NoError(t, err)
	white, err := agent.ParseConfig("name=w role=white search=Random seed=2")
	require.NoError(t, err)
	return Series{Games: games, Black: black, White: white}
}

func TestSeriesRun(t *testing.T) {
	games, moves := testSeries(t, 2).Run()
	require.Len(t, games, 2)
	for _, g := range games {
		require.NotEmpty(t, g.EpisodeID)
		require.Contains(t, []game.Color{game.Black, game.White}, g.Winner)
		require.Positive(t, g.Moves)
	}
	require.NotEmpty(t, moves)
	require.Equal(t, games[0].Moves+games[1].Moves, len(moves))
}

func TestWriter(t *testing.T) {
	games, moves := testSeries(t, 1).Run()

	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.WriteGames(games))
	require.NoError(t, w.WriteMoves(moves))

	for _, name := range []string{"games.csv", "moves.csv"} {
		data, err := os.ReadFile(filepath.Join(w.BaseDir(), name))
		require.NoError(t, err)
		require.NotEmpty(t, data)
	}
}
