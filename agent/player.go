package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"nogo/game"
	"nogo/searcher"
)

// openingMoveLimit is how many of the agent's own moves the opening
// heuristic may influence per episode.
const openingMoveLimit = 8

// Player is the competition agent: a uniformly random mover or
// root-parallel MCTS behind the opening heuristic, selected by
// Config.Search. Any other search mode answers game.NoMove.
type Player struct {
	cfg             Config
	rng             *rand.Rand
	mcts            *searcher.MCTS
	moves           int
	openingDisabled bool
	lastMetrics     searcher.SearchMetrics
}

// NewPlayer builds a player from an already-validated Config.
func NewPlayer(cfg Config) *Player {
	seed := cfg.Seed
	if !cfg.Seeded {
		seed = uint64(time.Now().UnixNano())
	}
	p := &Player{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	if cfg.Search == SearchMCTS {
		options := []searcher.Option{
			searcher.WithBudget(cfg.Budget),
			searcher.WithMetrics(),
		}
		if cfg.Simulation > 0 {
			options = append(options, searcher.WithPlayoutCap(cfg.Simulation))
		}
		if cfg.Seeded {
			options = append(options, searcher.WithSeed(cfg.Seed))
		}
		p.mcts = searcher.NewMCTS(cfg.Threads, options...)
	}
	return p
}

func (p *Player) Name() string { return p.cfg.Name }

func (p *Player) Role() game.Color { return p.cfg.Role }

// OpenEpisode resets the move counter and re-arms the opening
// heuristic.
func (p *Player) OpenEpisode(string) {
	p.moves = 0
	p.openingDisabled = false
}

func (p *Player) CloseEpisode(string) {}

// LastMetrics reports the search metrics of the most recent MCTS
// decision.
func (p *Player) LastMetrics() searcher.SearchMetrics { return p.lastMetrics }

func (p *Player) TakeAction(b *game.Board) game.Move {
	switch p.cfg.Search {
	case SearchRandom:
		return p.randomMove(b)
	case SearchMCTS:
		if m := p.openingMove(b); !m.IsNoMove() {
			return m
		}
		move, metrics := p.mcts.FindMove(*b, p.cfg.Role)
		p.lastMetrics = metrics
		return move
	}
	return game.NoMove
}

// randomMove picks a uniformly random legal placement.
func (p *Player) randomMove(b *game.Board) game.Move {
	perm := p.rng.Perm(game.NumPoints)
	for _, i := range perm {
		if m := (game.Move{Pos: game.Position(i), Color: p.cfg.Role}); b.Legal(m) {
			return m
		}
	}
	return game.NoMove
}

// openingMove consults the opening heuristic during the agent's first
// moves of an episode. The first time the heuristic finds nothing it
// is disabled for the rest of the episode.
func (p *Player) openingMove(b *game.Board) game.Move {
	p.moves++
	if p.openingDisabled || p.moves > openingMoveLimit {
		return game.NoMove
	}
	move, ok := openingChoice(b, p.cfg.Role)
	if !ok {
		p.openingDisabled = true
		return game.NoMove
	}
	return move
}
