package searcher

import (
	"nogo/game"
)

// update propagates outcome v along the descent path of the given
// length. Every visited node gains one visit and v reward on both the
// primary and the RAVE counters. On top of that, each visited node's
// children matching a move played two, four, ... plies later receive a
// RAVE-only update: those are the moves the same player went on to
// choose deeper in the path, the all-moves-as-first signal.
//
// A terminal descent recorded one entry for the selection that found
// no legal move; that entry is trimmed here. A non-terminal descent
// ends on an expansion, and the new leaf is allocated from the arena
// with the outcome as its first visit.
func (w *worker) update(root ref, v int32, length int, terminal bool) error {
	if terminal {
		length--
	}
	cur := root
	last := nilRef
	for i := 0; i < length; i++ {
		n := w.arena.at(cur)
		for j := i + 2; j < length; j += 2 {
			if r := n.child[w.path[j]]; r != nilRef {
				c := w.arena.at(r)
				c.raveVal += v
				c.raveCount++
			}
		}
		n.val += v
		n.count++
		n.raveVal += v
		n.raveCount++
		last = cur
		cur = n.child[w.path[i]]
	}

	if terminal || length == 0 {
		return nil
	}
	r, err := w.arena.alloc()
	if err != nil {
		return err
	}
	parent := w.arena.at(last)
	leaf := w.arena.at(r)
	leaf.color = game.Opposite(parent.color)
	leaf.val, leaf.raveVal = v, v
	leaf.count, leaf.raveCount = 1, 1
	parent.child[w.path[length-1]] = r
	return nil
}
