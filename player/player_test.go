package player

import (
	"testing"

	"duel/engine"
	"duel/registry"
	"duel/tournament"

	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	require.Subset(t, registry.Games(), []string{TicTacToe, Oware})

	names, err := registry.Agents(Oware)
	require.NoError(t, err)
	require.Equal(t, []string{"deep", "greedy", "human", "minimax", "random", "sampler", "simple"}, names)

	names, err = registry.Agents(TicTacToe)
	require.NoError(t, err)
	require.NotContains(t, names, "greedy")
}

func TestTournaments(t *testing.T) {
	Seed = 1
	for _, name := range []string{TicTacToe, Oware} {
		t.Run(name, func(t *testing.T) {
			result, err := tournament.Run(name, tournament.WithExclusions("human"))
			require.NoError(t, err)

			agents, err := registry.Agents(name)
			require.NoError(t, err)
			n := len(agents) - 1
			require.Len(t, result.Matches, n*(n-1))
		})
	}
}

func TestSearchBeatsSimple(t *testing.T) {
	state, err := registry.NewGame(TicTacToe)
	require.NoError(t, err)
	seats := state.Players()

	minimax, err := registry.NewAgent(TicTacToe, "minimax", seats[0])
	require.NoError(t, err)
	simple, err := registry.NewAgent(TicTacToe, "simple", seats[1])
	require.NoError(t, err)

	for _, strategy := range []engine.Strategy{engine.Minimax, engine.AlphaBeta} {
		c, err := engine.NewController(state, []engine.Assignment{
			{Agent: minimax, Strategy: strategy},
			{Agent: simple, Strategy: strategy},
		}, 15)
		require.NoError(t, err)
		c.Reset()

		winner, err := c.PlayMatch(true)

		require.NoError(t, err)
		require.Equal(t, seats[0], winner, "%v search should beat the first-move player", strategy)
	}
}
