package agent

import (
	"bufio"
	"bytes"
	"math"
	"strings"
	"testing"

	"duel/game"
	"duel/game/tictactoe"
	"duel/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func board(t *testing.T, squares ...int) *tictactoe.State {
	t.Helper()
	s := tictactoe.New()
	for _, square := range squares {
		_, err := s.Play(tictactoe.Move{Mover: s.NextPlayer(), Square: square})
		require.NoError(t, err)
	}
	return s
}

func drawnBoard(t *testing.T) *tictactoe.State {
	return board(t, 0, 1, 2, 4, 3, 5, 7, 6, 8)
}

func TestFirstMove(t *testing.T) {
	t.Run("playing the first generated move", func(t *testing.T) {
		a := NewFirstMove("simple", tictactoe.X)
		b := game.NewExpansions(15)

		move, err := a.MinimaxMove(tictactoe.New(), b)

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Mover: tictactoe.X, Square: 0}, move)
		require.Equal(t, 14, b.Remaining())
		require.Equal(t, "simple", a.Name())
		require.Equal(t, tictactoe.X, a.PlayerID())
	})

	t.Run("forfeiting without moves", func(t *testing.T) {
		a := NewFirstMove("simple", tictactoe.O)

		move, err := a.TournamentMove(drawnBoard(t), game.NewExpansions(1))

		require.NoError(t, err)
		require.True(t, move.IsForfeit())
		require.Equal(t, tictactoe.O, move.Player())
	})

	t.Run("spent budget is an error", func(t *testing.T) {
		a := NewFirstMove("simple", tictactoe.X)

		_, err := a.AlphaBetaMove(tictactoe.New(), game.NewExpansions(0))

		require.ErrorIs(t, err, game.ErrBudgetExhausted)
	})
}

func TestRandom(t *testing.T) {
	t.Run("same seed, same moves", func(t *testing.T) {
		a := NewRandom("random", tictactoe.X, 3)
		b := NewRandom("random", tictactoe.X, 3)

		for i := 0; i < 20; i++ {
			ma, err := a.MinimaxMove(tictactoe.New(), game.Unlimited())
			require.NoError(t, err)
			mb, err := b.MinimaxMove(tictactoe.New(), game.Unlimited())
			require.NoError(t, err)
			require.Equal(t, ma, mb)
		}
	})

	t.Run("only legal moves", func(t *testing.T) {
		a := NewRandom("random", tictactoe.O, 11)
		s := board(t, 4, 0, 8)

		for i := 0; i < 50; i++ {
			move, err := a.AlphaBetaMove(s, game.Unlimited())
			require.NoError(t, err)
			require.True(t, s.IsValidMove(move), "%v", move)
		}
	})
}

func TestSearcher(t *testing.T) {
	evaluate := tictactoe.EvaluateOpenLines

	t.Run("taking an immediate win", func(t *testing.T) {
		a := NewSearcher("minimax", tictactoe.X, evaluate)
		s := board(t, 0, 3, 1, 4)
		want := tictactoe.Move{Mover: tictactoe.X, Square: 2}

		move, err := a.MinimaxMove(s, game.NewExpansions(15))
		require.NoError(t, err)
		require.Equal(t, want, move)

		move, err = a.AlphaBetaMove(s, game.NewExpansions(15))
		require.NoError(t, err)
		require.Equal(t, want, move)
	})

	t.Run("blocking the opponent", func(t *testing.T) {
		a := NewSearcher("minimax", tictactoe.O, evaluate)
		s := board(t, 0, 4, 1)
		want := tictactoe.Move{Mover: tictactoe.O, Square: 2}

		move, err := a.MinimaxMove(s, game.NewExpansions(15))
		require.NoError(t, err)
		require.Equal(t, want, move)

		move, err = a.TournamentMove(s, game.NewExpansions(15))
		require.NoError(t, err)
		require.Equal(t, want, move)
	})

	t.Run("every line lost still plays a legal move", func(t *testing.T) {
		a := NewSearcher("minimax", tictactoe.O, evaluate)
		s := board(t, 0, 4, 1, 8, 3)

		move, err := a.AlphaBetaMove(s, game.NewExpansions(15))

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Mover: tictactoe.O, Square: 2}, move)
	})

	t.Run("zero horizon plays the first move", func(t *testing.T) {
		a := NewSearcher("minimax", tictactoe.X, evaluate, WithHorizonPolicy(func(int, int) int { return 0 }))

		move, err := a.MinimaxMove(tictactoe.New(), game.NewExpansions(15))

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Mover: tictactoe.X, Square: 0}, move)
	})

	t.Run("logarithmic horizon within budget", func(t *testing.T) {
		a := NewSearcher("deep", tictactoe.X, evaluate, WithHorizonPolicy(searcher.LogHorizon), WithMetrics(), WithTournamentMinimax())
		b := game.NewExpansions(15)

		move, err := a.TournamentMove(tictactoe.New(), b)

		require.NoError(t, err)
		require.True(t, tictactoe.New().IsValidMove(move))
		require.GreaterOrEqual(t, b.Remaining(), 0)
	})

	t.Run("forfeiting without moves", func(t *testing.T) {
		a := NewSearcher("minimax", tictactoe.X, evaluate)

		move, err := a.MinimaxMove(drawnBoard(t), game.NewExpansions(15))

		require.NoError(t, err)
		require.True(t, move.IsForfeit())
	})

	t.Run("spent budget is an error", func(t *testing.T) {
		a := NewSearcher("minimax", tictactoe.X, evaluate)

		_, err := a.MinimaxMove(tictactoe.New(), game.NewExpansions(0))

		require.ErrorIs(t, err, game.ErrBudgetExhausted)
	})

	t.Run("panics without an evaluation function", func(t *testing.T) {
		require.Panics(t, func() {
			NewSearcher("minimax", tictactoe.X, nil)
		})
	})
}

func TestSampler(t *testing.T) {
	t.Run("low temperature plays the best move", func(t *testing.T) {
		a := NewSampler("sampler", tictactoe.O, tictactoe.EvaluateOpenLines, 0.01, 5)

		move, err := a.MinimaxMove(board(t, 0), game.Unlimited())

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Mover: tictactoe.O, Square: 4}, move)
	})

	t.Run("taking an immediate win", func(t *testing.T) {
		a := NewSampler("sampler", tictactoe.X, tictactoe.EvaluateOpenLines, 100, 5)

		move, err := a.MinimaxMove(board(t, 0, 3, 1, 4), game.Unlimited())

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Mover: tictactoe.X, Square: 2}, move)
	})

	t.Run("adjusting temperature", func(t *testing.T) {
		policy := adjustTemperature([]float64{0, math.Ln2}, 1)

		require.InDelta(t, 1.0/3, policy[0], 1e-9)
		require.InDelta(t, 2.0/3, policy[1], 1e-9)
	})

	t.Run("all lost lines are uniform", func(t *testing.T) {
		policy := adjustTemperature([]float64{math.Inf(-1), math.Inf(-1)}, 1)

		require.Equal(t, []float64{0.5, 0.5}, policy)
	})

	t.Run("sampling follows the policy", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		require.Equal(t, 1, sample(rng, []float64{0, 1, 0}))
	})

	t.Run("panics with a non-positive temperature", func(t *testing.T) {
		require.Panics(t, func() {
			NewSampler("sampler", tictactoe.X, tictactoe.EvaluateOpenLines, 0, 1)
		})
	})
}

func TestInteractive(t *testing.T) {
	t.Run("asking again until the input is valid", func(t *testing.T) {
		var out bytes.Buffer
		a := NewInteractive("Ann", tictactoe.O, tictactoe.ParseMove, strings.NewReader("x\n5\n1\n"), &out)

		move, err := a.MinimaxMove(board(t, 4), game.NewExpansions(1))

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Mover: tictactoe.O, Square: 0}, move)
		require.Equal(t, 3, strings.Count(out.String(), "Ann, your move (q to quit)? "))
		require.Contains(t, out.String(), "please input a square 1-9")
		require.Contains(t, out.String(), "That is not a valid move.")
	})

	t.Run("quitting forfeits", func(t *testing.T) {
		a := NewInteractive("Ann", tictactoe.X, tictactoe.ParseMove, strings.NewReader(" q \n"), &bytes.Buffer{})

		move, err := a.AlphaBetaMove(tictactoe.New(), game.NewExpansions(1))

		require.NoError(t, err)
		require.True(t, move.IsForfeit())
		require.Equal(t, tictactoe.X, move.Player())
	})

	t.Run("end of input forfeits", func(t *testing.T) {
		a := NewInteractive("Ann", tictactoe.X, tictactoe.ParseMove, strings.NewReader(""), &bytes.Buffer{})

		move, err := a.TournamentMove(tictactoe.New(), game.NewExpansions(1))

		require.NoError(t, err)
		require.True(t, move.IsForfeit())
	})

	t.Run("last line without a newline", func(t *testing.T) {
		a := NewInteractive("Ann", tictactoe.X, tictactoe.ParseMove, strings.NewReader("3"), &bytes.Buffer{})

		move, err := a.MinimaxMove(tictactoe.New(), game.NewExpansions(1))

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Mover: tictactoe.X, Square: 2}, move)
	})

	t.Run("players sharing a reader", func(t *testing.T) {
		in := bufioReader("1\n2\n")
		x := NewInteractive("Ann", tictactoe.X, tictactoe.ParseMove, in, &bytes.Buffer{})
		o := NewInteractive("Bob", tictactoe.O, tictactoe.ParseMove, in, &bytes.Buffer{})
		s := tictactoe.New()

		move, err := x.MinimaxMove(s, game.NewExpansions(1))
		require.NoError(t, err)
		_, err = s.Play(move)
		require.NoError(t, err)

		move, err = o.MinimaxMove(s, game.NewExpansions(1))
		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Mover: tictactoe.O, Square: 1}, move)
	})
}

func bufioReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}
