package agent

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"nogo/game"
)

// boardDTO is the wire form of a position.
type boardDTO struct {
	Stones []int `json:"stones"`
	Turn   int   `json:"turn"`
}

func (dto boardDTO) board() (game.Board, bool) {
	if len(dto.Stones) != game.NumPoints {
		return game.Board{}, false
	}
	if turn := game.Color(dto.Turn); turn != game.Black && turn != game.White {
		return game.Board{}, false
	}
	var grid [game.NumPoints]game.Color
	for i, s := range dto.Stones {
		if s < 0 || s > int(game.White) {
			return game.Board{}, false
		}
		grid[i] = game.Color(s)
	}
	return game.NewBoardFrom(grid, game.Color(dto.Turn)), true
}

type moveDTO struct {
	Pos   int    `json:"pos"`
	Color string `json:"color"`
}

// StartServer serves the agent's decisions over HTTP. POST /findmove
// takes a board and answers the chosen move; POST /open resets the
// episode state.
func StartServer(addr string, player *Player) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", func(w http.ResponseWriter, r *http.Request) {
		var dto boardDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		b, ok := dto.board()
		if !ok {
			http.Error(w, "malformed board", http.StatusBadRequest)
			return
		}
		move := player.TakeAction(&b)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(moveDTO{Pos: int(move.Pos), Color: move.Color.String()}); err != nil {
			http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
		}
	})
	mux.HandleFunc("/open", func(w http.ResponseWriter, r *http.Request) {
		player.OpenEpisode("")
		w.WriteHeader(http.StatusNoContent)
	})

	log.Info().Msgf("agent %s serving on %s", player.Name(), addr)
	return http.ListenAndServe(addr, mux)
}
