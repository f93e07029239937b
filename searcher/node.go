package searcher

import (
	"nogo/game"
)

// raveBias is the b constant of the D. Silver beta schedule.
const raveBias = 0.025

// node is one state in a worker's search tree. child holds arena refs
// indexed by position; nilRef marks a move not yet expanded. color is
// the player choosing among the children. val and raveVal accumulate
// playout outcomes (0 or 1 each) for the primary and the
// all-moves-as-first statistics.
type node struct {
	child     [game.NumPoints]ref
	count     int32
	val       int32
	raveCount int32
	raveVal   int32
	color     game.Color
}

// beta weighs the RAVE estimate against the primary one. It starts
// near 1 while real visits are scarce and decays toward 0 as they
// accumulate.
func beta(count, raveCount int32) float64 {
	c, rc := float64(count), float64(raveCount)
	return rc / (rc + c + 4*rc*c*raveBias*raveBias)
}

// blended is (1-β)·q + β·q_rave, the move value used by both the tree
// policy and the root aggregation. Callers guarantee count and
// raveCount are at least 1.
func (n *node) blended() float64 {
	q := float64(n.val) / float64(n.count)
	qRave := float64(n.raveVal) / float64(n.raveCount)
	b := beta(n.count, n.raveCount)
	return (1-b)*q + b*qRave
}
