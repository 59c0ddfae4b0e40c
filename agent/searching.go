package agent

import (
	"fmt"
	"math"

	"duel/game"
	"duel/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(a *searchingAgent)

// WithHorizonPolicy changes how the search depth is derived from the budget
func WithHorizonPolicy(policy searcher.HorizonPolicy) Option {
	return func(a *searchingAgent) {
		if policy != nil {
			a.horizon = policy
		}
	}
}

// WithMetrics logs search instrumentation at debug level after every move
func WithMetrics() Option {
	return func(a *searchingAgent) {
		a.metrics = true
	}
}

// WithTournamentMinimax makes TournamentMove run plain minimax instead of alpha-beta
func WithTournamentMinimax() Option {
	return func(a *searchingAgent) {
		a.tournamentMinimax = true
	}
}

type searchingAgent struct {
	identity
	evaluate          game.Evaluate
	horizon           searcher.HorizonPolicy
	metrics           bool
	tournamentMinimax bool
}

// NewSearcher returns an agent that searches as deep as the turn budget allows
// and scores the horizon with evaluate.
func NewSearcher(name string, id game.PlayerID, evaluate game.Evaluate, options ...Option) Agent {
	a := &searchingAgent{
		identity: identity{name: name, id: id},
		evaluate: evaluate,
		horizon:  searcher.FullWidthHorizon,
	}
	for _, option := range options {
		option(a)
	}
	if a.evaluate == nil {
		panic("Must specify an evaluation function")
	}
	return a
}

func (a *searchingAgent) MinimaxMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.findMove(state, budget, false)
}

func (a *searchingAgent) AlphaBetaMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.findMove(state, budget, true)
}

func (a *searchingAgent) TournamentMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.findMove(state, budget, !a.tournamentMinimax)
}

func (a *searchingAgent) findMove(state game.State, budget game.Budget, alphaBeta bool) (game.Move, error) {
	remaining := budget.Remaining()
	successors, err := game.Successors(state, budget)
	if err != nil {
		return nil, fmt.Errorf("planning search: %w", err)
	}
	if len(successors) == 0 {
		return game.Forfeit(a.id), nil
	}
	horizon := a.horizon(remaining, len(successors))

	var options []searcher.Option
	if a.metrics {
		options = append(options, searcher.WithMetrics())
	}
	s := searcher.New(a.evaluate, options...)

	var value float64
	var move game.Move
	if alphaBeta {
		value, move = s.AlphaBeta(state, horizon, math.Inf(-1), math.Inf(1), budget)
	} else {
		value, move = s.Minimax(state, horizon, budget)
	}

	if a.metrics {
		metric := s.Metrics()
		log.Debug().Msgf("%s searched %d plies: value=%v nodes=%d expansions=%d prunes=%d in %v",
			a.name, horizon, value, metric.Nodes, metric.Expansions, metric.Prunes, metric.Duration)
	}

	// A leaf root, or every line lost, leaves no preferred move
	if move == nil {
		move = successors[0].Move
	}
	return move, nil
}
