package agent

import (
	"duel/game"
)

// Agent chooses moves for one fixed seat of a game. Every entry point returns
// a move for state, which is the agent's own copy; game.Forfeit is always a
// valid answer. Expansions are charged to budget.
type Agent interface {
	Name() string
	PlayerID() game.PlayerID
	MinimaxMove(state game.State, budget game.Budget) (game.Move, error)
	AlphaBetaMove(state game.State, budget game.Budget) (game.Move, error)
	// TournamentMove is free to pick whichever strategy the agent plays best
	TournamentMove(state game.State, budget game.Budget) (game.Move, error)
}

// Factory builds an agent seated as id
type Factory func(name string, id game.PlayerID) Agent

type identity struct {
	name string
	id   game.PlayerID
}

func (i identity) Name() string            { return i.name }
func (i identity) PlayerID() game.PlayerID { return i.id }
