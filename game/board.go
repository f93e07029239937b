package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Board is a complete NoGo position: the stone grid plus the side to
// move. It is a plain value, so copying the struct copies the whole
// position; search workers rely on that for their per-descent copies.
type Board struct {
	grid [NumPoints]Color
	turn Color
}

// neighborTable[p] holds the on-board orthogonal neighbors of p.
var neighborTable [NumPoints][]Position

func init() {
	for p := Position(0); p < NumPoints; p++ {
		r, c := p.Row(), p.Col()
		adj := make([]Position, 0, 4)
		if r > 0 {
			adj = append(adj, p-Size)
		}
		if r < Size-1 {
			adj = append(adj, p+Size)
		}
		if c > 0 {
			adj = append(adj, p-1)
		}
		if c < Size-1 {
			adj = append(adj, p+1)
		}
		neighborTable[p] = adj
	}
}

// Neighbors returns the on-board orthogonal neighbors of p. The slice
// is shared; callers must not modify it.
func Neighbors(p Position) []Position { return neighborTable[p] }

// NewBoard returns an empty board with Black to move.
func NewBoard() Board { return Board{turn: Black} }

// NewBoardFrom builds a board from a full grid and a side to move.
func NewBoardFrom(grid [NumPoints]Color, turn Color) Board {
	return Board{grid: grid, turn: turn}
}

// CurrentPlayer is the side to move.
func (b *Board) CurrentPlayer() Color { return b.turn }

// Stone returns the content of point p.
func (b *Board) Stone(p Position) Color { return b.grid[p] }

// Stones returns a copy of the grid.
func (b *Board) Stones() [NumPoints]Color { return b.grid }

// Set writes a stone without any legality check.
func (b *Board) Set(p Position, c Color) { b.grid[p] = c }

// AdvanceTurn hands the move to the other player.
func (b *Board) AdvanceTurn() { b.turn = Opposite(b.turn) }

// Legal reports whether m may be played on b. NoGo forbids playing on
// an occupied point, capturing any opponent group, and suicide.
func (b *Board) Legal(m Move) bool {
	if !m.Pos.Valid() || m.Color == Empty || b.grid[m.Pos] != Empty {
		return false
	}
	after := *b
	after.grid[m.Pos] = m.Color
	opp := Opposite(m.Color)
	for _, n := range neighborTable[m.Pos] {
		if after.grid[n] == opp && !after.hasLiberty(n) {
			return false
		}
	}
	return after.hasLiberty(m.Pos)
}

// Play applies m when legal and advances the turn.
func (b *Board) Play(m Move) bool {
	if !b.Legal(m) {
		return false
	}
	b.grid[m.Pos] = m.Color
	b.AdvanceTurn()
	return true
}

// hasLiberty reports whether the group containing p touches any empty
// point. p must hold a stone.
func (b *Board) hasLiberty(p Position) bool {
	color := b.grid[p]
	var seen [NumPoints]bool
	var stack [NumPoints]Position
	top := 0
	stack[top] = p
	top++
	seen[p] = true
	for top > 0 {
		top--
		q := stack[top]
		for _, n := range neighborTable[q] {
			switch b.grid[n] {
			case Empty:
				return true
			case color:
				if !seen[n] {
					seen[n] = true
					stack[top] = n
					top++
				}
			}
		}
	}
	return false
}

// HasLegalMove reports whether c has any legal placement. The side to
// move with no legal placement has lost.
func (b *Board) HasLegalMove(c Color) bool {
	for p := Position(0); p < NumPoints; p++ {
		if b.Legal(Move{Pos: p, Color: c}) {
			return true
		}
	}
	return false
}

// LegalMoves lists every legal placement for c in position order.
func (b *Board) LegalMoves(c Color) []Move {
	var moves []Move
	for p := Position(0); p < NumPoints; p++ {
		if m := (Move{Pos: p, Color: c}); b.Legal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b.grid[Pos(r, c)] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from a 9-line diagram using '.', 'X' and
// 'O'. Whitespace between points and blank lines are ignored.
func ParseBoard(diagram string, turn Color) (Board, error) {
	b := Board{turn: turn}
	var points []Color
	for _, ch := range diagram {
		switch ch {
		case '.':
			points = append(points, Empty)
		case 'X', 'x':
			points = append(points, Black)
		case 'O', 'o':
			points = append(points, White)
		case ' ', '\t', '\n', '\r':
		default:
			return Board{}, errors.Errorf("unexpected character %q in board diagram", ch)
		}
	}
	if len(points) != NumPoints {
		return Board{}, errors.Errorf("board diagram has %d points, want %d", len(points), NumPoints)
	}
	copy(b.grid[:], points)
	return b, nil
}
