// Package player registers the bundled games together with the agents that can
// play them. Importing it for its side effects is enough to make them
// available through the registry.
package player

import (
	"bufio"
	"os"
	"time"

	"duel/agent"
	"duel/game"
	"duel/game/oware"
	"duel/game/tictactoe"
	"duel/registry"
	"duel/searcher"
)

const (
	TicTacToe = "tictactoe"
	Oware     = "oware"
)

// Stdin is shared by every human player and by prompts of the front-end
var Stdin = bufio.NewReader(os.Stdin)

// Seed for the random agents. Zero seeds from the clock.
var Seed uint64

func init() {
	register(TicTacToe, registry.Game{
		New:       func() game.State { return tictactoe.New() },
		ParseMove: tictactoe.ParseMove,
	}, tictactoe.EvaluateOpenLines)

	register(Oware, registry.Game{
		New:       func() game.State { return oware.New() },
		ParseMove: oware.ParseMove,
	}, oware.EvaluateFeatures(oware.DefaultWeights))
	registry.RegisterAgent(Oware, "greedy", func(name string, id game.PlayerID) agent.Agent {
		return agent.NewSearcher(name, id, oware.EvaluateKeeps)
	})
}

func register(name string, g registry.Game, evaluate game.Evaluate) {
	registry.RegisterGame(name, g)

	registry.RegisterAgent(name, "simple", agent.NewFirstMove)
	registry.RegisterAgent(name, "random", func(name string, id game.PlayerID) agent.Agent {
		return agent.NewRandom(name, id, seed())
	})
	registry.RegisterAgent(name, "minimax", func(name string, id game.PlayerID) agent.Agent {
		return agent.NewSearcher(name, id, evaluate, agent.WithMetrics())
	})
	registry.RegisterAgent(name, "deep", func(name string, id game.PlayerID) agent.Agent {
		return agent.NewSearcher(name, id, evaluate, agent.WithHorizonPolicy(searcher.LogHorizon), agent.WithMetrics())
	})
	registry.RegisterAgent(name, "sampler", func(name string, id game.PlayerID) agent.Agent {
		return agent.NewSampler(name, id, evaluate, 1.0, seed())
	})
	registry.RegisterAgent(name, "human", func(name string, id game.PlayerID) agent.Agent {
		return agent.NewInteractive(name, id, g.ParseMove, Stdin, os.Stdout)
	})
}

func seed() uint64 {
	if Seed != 0 {
		return Seed
	}
	return uint64(time.Now().UnixNano())
}
