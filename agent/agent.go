package agent

import (
	"nogo/game"
)

// Agent chooses moves for one side of a NoGo game. The episode
// callbacks bracket a game. TakeAction answers game.NoMove when the
// agent has no legal placement and otherwise a legal move; a Player
// whose search mode is not recognised answers game.NoMove on any board.
type Agent interface {
	Name() string
	Role() game.Color
	TakeAction(b *game.Board) game.Move
	OpenEpisode(flag string)
	CloseEpisode(flag string)
}
