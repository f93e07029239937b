package experiments

import (
	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/engine"
	"nogo/game"
)

// Series is a head-to-head run between two agent configurations.
type Series struct {
	Games int
	Black agent.Config
	White agent.Config
}

// GameRecord is one finished game of a series.
type GameRecord struct {
	EpisodeID string
	Winner    game.Color
	Moves     int
}

// Run plays the series and returns per-game and per-move records.
func (s Series) Run() ([]GameRecord, []MoveRecord) {
	games := make([]GameRecord, 0, s.Games)
	var moves []MoveRecord
	blackWins := 0
	for i := 0; i < s.Games; i++ {
		e := engine.NewLocal(agent.NewPlayer(s.Black), agent.NewPlayer(s.White))
		result := e.Run()

		games = append(games, GameRecord{
			EpisodeID: result.EpisodeID,
			Winner:    result.Winner,
			Moves:     len(result.Moves),
		})
		for _, m := range result.Moves {
			moves = append(moves, MoveRecord{
				EpisodeID: result.EpisodeID,
				Index:     m.Index,
				Mover:     m.Mover,
				Pos:       int(m.Move.Pos),
				Playouts:  m.Metrics.Playouts,
				Duration:  m.Metrics.Duration,
			})
		}
		if result.Winner == game.Black {
			blackWins++
		}
		log.Info().Msgf("game %d/%d done, black %d - %d white", i+1, s.Games, blackWins, i+1-blackWins)
	}
	return games, moves
}
