package searcher

import (
	"math"

	"nogo/game"
)

// selectNode descends one level below parent. It visits candidate
// positions in a freshly shuffled order, expands the first legal move
// with no child yet, and otherwise picks the child with the best
// UCB1+RAVE score: best-for-us at our own nodes, worst-for-us at
// opponent nodes. The chosen position is written to path[depth] and
// applied to b with the turn advanced. A true return means parent has
// no legal move at all, so the descent ended on a terminal position
// and b is left untouched.
func (w *worker) selectNode(parent *node, b *game.Board, depth int) (terminal bool) {
	w.shufflePerm()
	same := parent.color == w.color

	best := game.Position(-1)
	bestScore := -1.0
	if !same {
		bestScore = math.MaxFloat64
	}
	anyLegal := false
	for _, p := range w.perm {
		if !b.Legal(game.Move{Pos: p, Color: parent.color}) {
			continue
		}
		anyLegal = true
		cref := parent.child[p]
		if cref == nilRef {
			// Always expand an unseen legal child before re-selecting
			// an existing one.
			best = p
			break
		}
		c := w.arena.at(cref)
		explore := math.Sqrt(2 * math.Log10(float64(parent.count)) / float64(c.count))
		if same {
			if score := c.blended() + explore; score > bestScore {
				bestScore = score
				best = p
			}
		} else {
			if score := c.blended() - explore; score < bestScore {
				bestScore = score
				best = p
			}
		}
	}
	if !anyLegal {
		return true
	}

	w.path[depth] = best
	b.Set(best, parent.color)
	b.AdvanceTurn()
	return false
}
