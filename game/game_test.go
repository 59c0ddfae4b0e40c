package game_test

import (
	"math"
	"testing"

	"duel/game"
	"duel/game/oware"
	"duel/game/tictactoe"

	"github.com/stretchr/testify/require"
)

func TestExpansions(t *testing.T) {
	t.Run("consuming until spent", func(t *testing.T) {
		b := game.NewExpansions(2)

		require.True(t, b.Consume())
		require.Equal(t, 1, b.Remaining())
		require.True(t, b.Consume())
		require.Equal(t, 0, b.Remaining())
		require.False(t, b.Consume(), "Spent budget should deny expansions")
		require.Equal(t, 0, b.Remaining(), "Remaining should never go negative")
	})

	t.Run("reset clamps negative budgets", func(t *testing.T) {
		b := game.NewExpansions(5)
		b.Reset(-3)

		require.Equal(t, 0, b.Remaining())
		require.False(t, b.Consume())
	})

	t.Run("unlimited never runs out", func(t *testing.T) {
		b := game.Unlimited()
		for i := 0; i < 1000; i++ {
			require.True(t, b.Consume())
		}
		require.Equal(t, math.MaxInt, b.Remaining())
	})
}

func TestSuccessorMoves(t *testing.T) {
	t.Run("charging one expansion per call", func(t *testing.T) {
		b := game.NewExpansions(3)

		moves, err := game.SuccessorMoves(tictactoe.New(), b)

		require.NoError(t, err)
		require.Len(t, moves, 9)
		require.Equal(t, 2, b.Remaining())
	})

	t.Run("spent budget returns the sentinel", func(t *testing.T) {
		b := game.NewExpansions(0)

		moves, err := game.SuccessorMoves(tictactoe.New(), b)

		require.ErrorIs(t, err, game.ErrBudgetExhausted)
		require.Nil(t, moves)
	})

	t.Run("no legal move is an empty list, not an error", func(t *testing.T) {
		s := tictactoe.New()
		for _, square := range []int{0, 3, 1, 4, 2} { // X completes the top row
			_, err := s.Play(tictactoe.Move{Mover: s.NextPlayer(), Square: square})
			require.NoError(t, err)
		}
		b := game.NewExpansions(1)

		moves, err := game.SuccessorMoves(s, b)

		require.NoError(t, err)
		require.NotNil(t, moves)
		require.Empty(t, moves)
		require.Equal(t, 0, b.Remaining(), "Empty expansions are still charged")
	})
}

func TestSuccessors(t *testing.T) {
	t.Run("copies never alias the origin", func(t *testing.T) {
		s := oware.New()
		before := s.String()

		successors, err := game.Successors(s, game.Unlimited())

		require.NoError(t, err)
		require.Len(t, successors, oware.PitsPerSide)
		require.Equal(t, before, s.String(), "Origin should be untouched")
		for i, successor := range successors {
			require.Equal(t, oware.Move{Mover: oware.South, Pit: i}, successor.Move)
			require.Equal(t, oware.North, successor.Player)
			require.Equal(t, oware.North, successor.State.NextPlayer())
			require.NotSame(t, s, successor.State)
		}
		require.NotEqual(t, successors[0].State.String(), successors[1].State.String())
	})

	t.Run("destructive and copying application agree", func(t *testing.T) {
		s := tictactoe.New()
		move := tictactoe.Move{Mover: tictactoe.X, Square: 4}

		next, child, err := game.PlayCopy(s, move)
		require.NoError(t, err)

		live := s.Copy()
		liveNext, err := live.Play(move)
		require.NoError(t, err)

		require.Equal(t, liveNext, next)
		require.Equal(t, live.String(), child.String())
	})

	t.Run("invalid move is rejected before copying", func(t *testing.T) {
		s := tictactoe.New()

		_, child, err := game.PlayCopy(s, tictactoe.Move{Mover: tictactoe.O, Square: 0})

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Nil(t, child)
	})
}

func TestForfeit(t *testing.T) {
	move := game.Forfeit(2)

	require.True(t, move.IsForfeit())
	require.Equal(t, game.PlayerID(2), move.Player())
	require.Equal(t, "player 2 forfeits", move.String())
	require.False(t, tictactoe.New().IsValidMove(game.Forfeit(tictactoe.X)), "Forfeits are never played on a state")
}

func TestOpponentAndRepeats(t *testing.T) {
	s := tictactoe.New()

	require.Equal(t, tictactoe.O, game.Opponent(s, tictactoe.X))
	require.Equal(t, tictactoe.X, game.Opponent(s, tictactoe.O))
	require.False(t, game.Repeats(s))
	require.True(t, game.Repeats(oware.New()))
}
