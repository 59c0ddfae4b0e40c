package agent

import (
	"math"

	"duel/game"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	identity
	evaluate    game.Evaluate
	temperature float64
	rng         *rand.Rand
}

// NewSampler returns an agent that scores each successor once and samples a
// move with probability proportional to exp(score / temperature). A low
// temperature plays almost greedily, a high one almost at random.
func NewSampler(name string, id game.PlayerID, evaluate game.Evaluate, temperature float64, seed uint64) Agent {
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	if temperature <= 0 {
		panic("Temperature must be positive")
	}
	return &samplingAgent{
		identity:    identity{name: name, id: id},
		evaluate:    evaluate,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) MinimaxMove(state game.State, budget game.Budget) (game.Move, error) {
	successors, err := game.Successors(state, budget)
	if err != nil {
		return nil, err
	}
	if len(successors) == 0 {
		return game.Forfeit(a.id), nil
	}

	sign := 1.0
	if state.Players()[1] == a.id {
		sign = -1.0
	}
	scores := make([]float64, len(successors))
	for i, s := range successors {
		if s.State.IsWin(a.id) {
			return s.Move, nil
		}
		scores[i] = sign * a.evaluate(s.State)
	}
	return successors[sample(a.rng, adjustTemperature(scores, a.temperature))].Move, nil
}

func (a *samplingAgent) AlphaBetaMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.MinimaxMove(state, budget)
}

func (a *samplingAgent) TournamentMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.MinimaxMove(state, budget)
}

// adjustTemperature turns scores into a probability distribution
func adjustTemperature(scores []float64, temperature float64) []float64 {
	best := math.Inf(-1)
	for _, score := range scores {
		best = max(best, score)
	}

	policy := make([]float64, len(scores))
	if math.IsInf(best, -1) {
		for i := range policy {
			policy[i] = 1.0 / float64(len(policy))
		}
		return policy
	}

	sum := 0.0
	for i, score := range scores {
		policy[i] = math.Exp((score - best) / temperature)
		sum += policy[i]
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(rng *rand.Rand, policy []float64) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Rounding errors
}
