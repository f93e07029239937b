package agent

import (
	"nogo/game"
)

// Candidate tables in row-major point indices. Edge candidates sit on
// the edge line of each side, one point either side of its midpoint;
// corner candidates sit one step off each corner.
var (
	openingEdges   = []game.Position{3, 5, 27, 45, 35, 53, 75, 77}
	openingCorners = []game.Position{1, 9, 7, 17, 63, 73, 71, 79}
)

// hollowCenters marks the points on the centre row and the centre
// column that lie two and three steps from the board centre. The eye
// test treats these points as satisfied neighbors regardless of
// content.
var hollowCenters = [game.NumPoints]bool{
	13: true, 22: true, 37: true, 38: true,
	42: true, 43: true, 58: true, 67: true,
}

// isEye reports whether p is an eye for c on b: every orthogonal
// neighbor is off-board, a hollow centre, or a stone of c.
func isEye(b *game.Board, p game.Position, c game.Color) bool {
	row, col := p.Row(), p.Col()
	for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		r, cc := row+d[0], col+d[1]
		if r < 0 || r >= game.Size || cc < 0 || cc >= game.Size {
			continue
		}
		n := game.Pos(r, cc)
		if hollowCenters[n] {
			continue
		}
		if b.Stone(n) != c {
			return false
		}
	}
	return true
}

// makesEye tentatively places c at p and returns the first orthogonal
// neighbor that becomes an eye for c, or -1 if none does.
func makesEye(b *game.Board, p game.Position, c game.Color) game.Position {
	after := *b
	after.Set(p, c)
	for _, n := range game.Neighbors(p) {
		if isEye(&after, n, c) {
			return n
		}
	}
	return -1
}

// openingChoice runs the edge/corner opening heuristic for c. It
// prefers a candidate that makes an own eye, then the break of an
// opponent eye in the making, then the first legal candidate. The
// second return is false when no candidate is playable at all, which
// disables the heuristic for the rest of the episode.
func openingChoice(b *game.Board, c game.Color) (game.Move, bool) {
	eyePick := game.Position(-1)
	tentative := game.Position(-1)
	for _, e := range openingEdges {
		if !b.Legal(game.Move{Pos: e, Color: c}) {
			continue
		}
		if makesEye(b, e, c).Valid() && !eyePick.Valid() {
			eyePick = e
		} else if !tentative.Valid() {
			tentative = e
		}
	}
	for _, e := range openingCorners {
		if !b.Legal(game.Move{Pos: e, Color: c}) {
			continue
		}
		if makesEye(b, e, c).Valid() && !eyePick.Valid() {
			eyePick = e
		} else if !tentative.Valid() && !eyePick.Valid() {
			tentative = e
		}
	}
	if eyePick.Valid() {
		return game.Move{Pos: eyePick, Color: c}, true
	}
	if tentative.Valid() {
		// Before settling for the tentative pick, look for an opponent
		// move that would complete an opponent eye and take that eye
		// point preemptively.
		if breakPos := opponentEye(b, game.Opposite(c)); breakPos.Valid() {
			if m := (game.Move{Pos: breakPos, Color: c}); b.Legal(m) {
				return m, true
			}
		}
		return game.Move{Pos: tentative, Color: c}, true
	}
	return game.NoMove, false
}

// opponentEye scans every point for a legal opponent move that would
// complete an opponent eye and returns the eye position, or -1.
func opponentEye(b *game.Board, opp game.Color) game.Position {
	for p := game.Position(0); p < game.NumPoints; p++ {
		if !b.Legal(game.Move{Pos: p, Color: opp}) {
			continue
		}
		if eye := makesEye(b, p, opp); eye.Valid() {
			return eye
		}
	}
	return -1
}
