package agent

import (
	"duel/game"

	"golang.org/x/exp/rand"
)

type firstMoveAgent struct {
	identity
}

// NewFirstMove returns an agent that always plays the first generated move
// without looking ahead.
func NewFirstMove(name string, id game.PlayerID) Agent {
	return firstMoveAgent{identity{name: name, id: id}}
}

func (a firstMoveAgent) MinimaxMove(state game.State, budget game.Budget) (game.Move, error) {
	successors, err := game.Successors(state, budget)
	if err != nil {
		return nil, err
	}
	if len(successors) == 0 {
		return game.Forfeit(a.id), nil
	}
	return successors[0].Move, nil
}

func (a firstMoveAgent) AlphaBetaMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.MinimaxMove(state, budget)
}

func (a firstMoveAgent) TournamentMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.MinimaxMove(state, budget)
}

type randomAgent struct {
	identity
	rng *rand.Rand
}

// NewRandom returns an agent that plays a uniformly random legal move
func NewRandom(name string, id game.PlayerID, seed uint64) Agent {
	return &randomAgent{
		identity: identity{name: name, id: id},
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) MinimaxMove(state game.State, budget game.Budget) (game.Move, error) {
	moves, err := game.SuccessorMoves(state, budget)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return game.Forfeit(a.id), nil
	}
	return moves[a.rng.Intn(len(moves))], nil
}

func (a *randomAgent) AlphaBetaMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.MinimaxMove(state, budget)
}

func (a *randomAgent) TournamentMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.MinimaxMove(state, budget)
}
