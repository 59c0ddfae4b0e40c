package searcher

import (
	"errors"
	"math"

	"duel/game"
)

var (
	Win  = math.Inf(1)  // Value of a position won by the maximizer
	Loss = math.Inf(-1) // Value of a position won by the minimizer
)

const Draw = 0.0

type Option func(s *Searcher)

// WithMetrics records per-call instrumentation, available from Metrics()
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

func WithCollector(c Collector) Option {
	return func(s *Searcher) {
		if c != nil {
			s.metrics = c
		}
	}
}

// Searcher runs depth-limited minimax and alpha-beta over any game.State.
// Successors are visited in generation order and every expansion is charged
// to the budget passed in; a spent budget makes the node a leaf.
type Searcher struct {
	evaluate game.Evaluate
	metrics  Collector
}

func New(evaluate game.Evaluate, options ...Option) *Searcher {
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	s := &Searcher{
		evaluate: evaluate,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Minimax returns the minimax value of state searched horizon plies deep and
// the move leading to it. The move is nil at leaves.
func (s *Searcher) Minimax(state game.State, horizon int, budget game.Budget) (float64, game.Move) {
	s.metrics.Start()
	defer s.metrics.Complete()
	return s.minimax(state, horizon, budget, 0)
}

// AlphaBeta returns the same value as Minimax for a full (-Inf, +Inf) window,
// skipping branches that can't change the result.
func (s *Searcher) AlphaBeta(state game.State, horizon int, alpha, beta float64, budget game.Budget) (float64, game.Move) {
	s.metrics.Start()
	defer s.metrics.Complete()
	return s.alphaBeta(state, horizon, alpha, beta, budget, 0)
}

func (s *Searcher) Metrics() SearchMetric {
	return s.metrics.Last()
}

func (s *Searcher) minimax(state game.State, horizon int, budget game.Budget, depth int) (float64, game.Move) {
	if value, ok := s.terminal(state, horizon, budget, depth); ok {
		return value, nil
	}

	successors, ok := s.expand(state, budget)
	if !ok {
		return s.leaf(state), nil
	}
	if len(successors) == 0 {
		return Draw, nil
	}

	maximizing := state.NextPlayer() == state.Players()[0]
	best := 0
	var bestValue float64
	for i, successor := range successors {
		value, _ := s.minimax(successor.State, horizon-1, budget, depth+1)
		if i == 0 || (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			best, bestValue = i, value
		}
	}
	return bestValue, successors[best].Move
}

func (s *Searcher) alphaBeta(state game.State, horizon int, alpha, beta float64, budget game.Budget, depth int) (float64, game.Move) {
	if value, ok := s.terminal(state, horizon, budget, depth); ok {
		return value, nil
	}

	successors, ok := s.expand(state, budget)
	if !ok {
		return s.leaf(state), nil
	}
	if len(successors) == 0 {
		return Draw, nil
	}

	maximizing := state.NextPlayer() == state.Players()[0]
	v := Loss
	if !maximizing {
		v = Win
	}
	var m game.Move

	for _, successor := range successors {
		value, _ := s.alphaBeta(successor.State, horizon-1, alpha, beta, budget, depth+1)
		if (maximizing && value > v) || (!maximizing && value < v) {
			v, m = value, successor.Move
		}
		if (maximizing && v >= beta) || (!maximizing && v <= alpha) {
			s.metrics.AddPrune()
			return v, m
		}
		if maximizing {
			alpha = math.Max(alpha, v)
		} else {
			beta = math.Min(beta, v)
		}
	}
	return v, m
}

// terminal resolves wins, the horizon and a spent budget without expanding
func (s *Searcher) terminal(state game.State, horizon int, budget game.Budget, depth int) (float64, bool) {
	s.metrics.AddNode(depth)

	players := state.Players()
	if state.IsWin(players[0]) {
		return Win, true
	}
	if state.IsWin(players[1]) {
		return Loss, true
	}
	if budget.Remaining() <= 0 || horizon <= 0 {
		return s.leaf(state), true
	}
	return 0, false
}

func (s *Searcher) expand(state game.State, budget game.Budget) ([]game.Successor, bool) {
	successors, err := game.Successors(state, budget)
	if errors.Is(err, game.ErrBudgetExhausted) {
		return nil, false
	}
	if err != nil {
		panic(err)
	}
	s.metrics.AddExpansion()
	return successors, true
}

func (s *Searcher) leaf(state game.State) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(state)
}

// Minimax searches with a throwaway Searcher
func Minimax(state game.State, horizon int, budget game.Budget, evaluate game.Evaluate) (float64, game.Move) {
	return New(evaluate).Minimax(state, horizon, budget)
}

// AlphaBeta searches with a throwaway Searcher
func AlphaBeta(state game.State, horizon int, alpha, beta float64, budget game.Budget, evaluate game.Evaluate) (float64, game.Move) {
	return New(evaluate).AlphaBeta(state, horizon, alpha, beta, budget)
}
