package searcher

import (
	"nogo/game"
)

// playout finishes the game from b with uniformly random legal moves.
// Each placement fills an empty point, so the loop ends within 81
// moves. In NoGo the side left without a legal move has lost, so the
// outcome is 1 exactly when the stuck player is not the searcher.
func (w *worker) playout(b *game.Board, toMove game.Color) int32 {
	for {
		w.shufflePerm()
		moved := false
		for _, p := range w.perm {
			if b.Legal(game.Move{Pos: p, Color: toMove}) {
				b.Set(p, toMove)
				moved = true
				break
			}
		}
		if !moved {
			break
		}
		toMove = game.Opposite(toMove)
		b.AdvanceTurn()
	}
	if toMove == w.color {
		return 0
	}
	return 1
}
