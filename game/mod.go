package game

import (
	"errors"
	"fmt"
)

// PlayerID identifies one of the two seats of a game. Games number their
// players from 1; NoPlayer marks the absence of a winner.
type PlayerID int

const NoPlayer PlayerID = 0

// StateHash is a canonical fingerprint of a position, including whose turn it is
type StateHash uint64

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrBudgetExhausted = errors.New("no expansions left this turn")
)

// Move is an immutable value describing one ply by one player.
type Move interface {
	fmt.Stringer
	Player() PlayerID
	IsForfeit() bool
}

// State is a mutable game position. Implementations must be safe to Copy at
// any point: a copy shares nothing mutable with its origin.
type State interface {
	fmt.Stringer
	// Clear resets the state to the canonical starting position
	Clear()
	// Players returns the fixed seat order. The first player maximizes and the
	// second minimizes during search.
	Players() [2]PlayerID
	NextPlayer() PlayerID
	IsWin(player PlayerID) bool
	// IsValidMove checks the mover, the payload and any game specific rule
	IsValidMove(move Move) bool
	// Play applies move destructively and returns the next player. An invalid
	// move returns an error wrapping ErrInvalidMove and leaves the state untouched.
	Play(move Move) (PlayerID, error)
	// LegalMoves lists every valid move for the next player, in a stable order.
	// Callers outside this package should go through SuccessorMoves so that
	// expansions are budgeted.
	LegalMoves() []Move
	Copy() State
	// PlayerState returns the view of the game exposed to player's agent
	PlayerState(player PlayerID) State
}

// Repeater is implemented by games whose positions can recur.
type Repeater interface {
	Hash() StateHash
	// HandleCycle applies the game's draw resolution when a position repeats
	HandleCycle()
}

// Repeats reports whether s needs repeated-position detection
func Repeats(s State) bool {
	_, ok := s.(Repeater)
	return ok
}

// Evaluates a non-terminal state to a score where larger values favor the
// first listed player.
type Evaluate func(State) float64

// Opponent returns the player of s that is not player
func Opponent(s State, player PlayerID) PlayerID {
	players := s.Players()
	if players[0] == player {
		return players[1]
	}
	return players[0]
}
