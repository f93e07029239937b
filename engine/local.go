package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/game"
	"nogo/searcher"
)

// MoveRecord is one ply of a finished episode.
type MoveRecord struct {
	Index   int
	Mover   game.Color
	Move    game.Move
	Metrics searcher.SearchMetrics
}

// Result is a finished episode.
type Result struct {
	EpisodeID string
	Winner    game.Color
	Moves     []MoveRecord
	Board     game.Board
}

// Local drives one NoGo episode between two agents on this process.
type Local struct {
	Black agent.Agent
	White agent.Agent
}

func NewLocal(black, white agent.Agent) *Local {
	if black.Role() != game.Black || white.Role() != game.White {
		panic("engine: agents bound to the wrong roles")
	}
	return &Local{Black: black, White: white}
}

// Run plays a full episode from the empty board. The side that cannot
// move loses; an agent that answers with an illegal move forfeits.
func (e *Local) Run() Result {
	id := uuid.NewString()
	e.Black.OpenEpisode(id)
	e.White.OpenEpisode(id)

	board := game.NewBoard()
	result := Result{EpisodeID: id}
	log.Info().Str("episode", id).Msgf("%s vs %s", e.Black.Name(), e.White.Name())

	for ply := 1; ; ply++ {
		mover := e.agentFor(board.CurrentPlayer())
		move := mover.TakeAction(&board)
		if move.IsNoMove() {
			result.Winner = game.Opposite(mover.Role())
			break
		}
		if !board.Play(move) {
			log.Error().Str("episode", id).Msgf("%s played illegal %s, forfeits", mover.Name(), move)
			result.Winner = game.Opposite(mover.Role())
			break
		}
		record := MoveRecord{Index: ply, Mover: mover.Role(), Move: move}
		if p, ok := mover.(*agent.Player); ok {
			record.Metrics = p.LastMetrics()
		}
		result.Moves = append(result.Moves, record)
	}

	e.Black.CloseEpisode(id)
	e.White.CloseEpisode(id)
	result.Board = board
	log.Info().Str("episode", id).Msgf("%s wins after %d moves", result.Winner, len(result.Moves))
	return result
}

func (e *Local) agentFor(c game.Color) agent.Agent {
	if c == game.Black {
		return e.Black
	}
	return e.White
}
