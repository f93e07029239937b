package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"nogo/game"
)

// worker runs one independent search tree. The arena, the PRNG and the
// permutation and path buffers are all private, so the hot loop takes
// no locks; the only cross-goroutine communication is the aggregator
// reading the finished root after the join.
type worker struct {
	arena     *arena
	rng       *rand.Rand
	color     game.Color
	perm      [game.NumPoints]game.Position
	path      [game.NumPoints + 1]game.Position
	collector Collector
}

func newWorker(color game.Color, capacity int, seed uint64, collector Collector) *worker {
	w := &worker{
		arena:     newArena(capacity),
		rng:       rand.New(rand.NewSource(seed)),
		color:     color,
		collector: collector,
	}
	for i := range w.perm {
		w.perm[i] = game.Position(i)
	}
	return w
}

// shufflePerm reshuffles the visit order in place. Equal-scored
// candidates are therefore tie-broken uniformly at random over many
// calls, without allocating inside the search loop.
func (w *worker) shufflePerm() {
	w.rng.Shuffle(len(w.perm), func(i, j int) {
		w.perm[i], w.perm[j] = w.perm[j], w.perm[i]
	})
}

// search builds the worker's tree from b until the wall-clock budget
// elapses, the optional playout cap is reached, or the arena fills up.
// It returns the root ref for aggregation, or nilRef if not even the
// root fit.
func (w *worker) search(b game.Board, budget time.Duration, maxPlayouts int) ref {
	root, err := w.arena.alloc()
	if err != nil {
		return nilRef
	}
	// The root starts as val = raveVal = 1 with count = raveCount = 0.
	// The counts stay out of every average until the first update, and
	// by the time a present child is scored the root has count >= 1,
	// keeping log10(count) finite.
	n := w.arena.at(root)
	n.color = w.color
	n.val, n.raveVal = 1, 1

	start := time.Now()
	playouts := 0
	for time.Since(start) < budget {
		if maxPlayouts > 0 && playouts >= maxPlayouts {
			break
		}
		if err := w.runOnce(root, b); err != nil {
			w.collector.SetExhausted()
			break
		}
		playouts++
		w.collector.AddPlayout()
	}
	return root
}

// runOnce performs one select-playout-update sequence: descend from
// the root on a fresh copy of b, score the reached position, and
// propagate the outcome. The only error is arena exhaustion.
func (w *worker) runOnce(root ref, b game.Board) error {
	depth := 0
	cur := root
	terminal := false
	for cur != nilRef && !terminal {
		n := w.arena.at(cur)
		terminal = w.selectNode(n, &b, depth)
		if !terminal {
			cur = n.child[w.path[depth]]
		}
		depth++
	}

	var outcome int32
	if terminal {
		// The player to move at the terminal position cannot play and
		// has lost; no playout needed.
		if b.CurrentPlayer() != w.color {
			outcome = 1
		}
	} else {
		outcome = w.playout(&b, b.CurrentPlayer())
		w.collector.AddFullPlayout()
	}
	return w.update(root, outcome, depth, terminal)
}
