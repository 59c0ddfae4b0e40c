package tictactoe

import (
	"fmt"
	"strings"

	"duel/game"
)

const (
	X game.PlayerID = 1
	O game.PlayerID = 2

	empty = game.NoPlayer
	cells = 9
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // Rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // Columns
	{0, 4, 8}, {2, 4, 6}, // Diagonals
}

// Move marks Square (0-8, row-major) for Mover.
type Move struct {
	Mover  game.PlayerID
	Square int
}

func (m Move) Player() game.PlayerID { return m.Mover }
func (m Move) IsForfeit() bool       { return false }

func (m Move) String() string {
	return fmt.Sprintf("player %s moves to square %d", symbol(m.Mover), m.Square+1)
}

// State is a 3x3 board; X moves first.
type State struct {
	board  [cells]game.PlayerID
	player game.PlayerID
}

func New() *State {
	s := &State{}
	s.Clear()
	return s
}

func (s *State) Clear() {
	s.board = [cells]game.PlayerID{}
	s.player = X
}

func (s *State) Players() [2]game.PlayerID {
	return [2]game.PlayerID{X, O}
}

func (s *State) NextPlayer() game.PlayerID {
	return s.player
}

// Cell returns the owner of square, or game.NoPlayer if it is empty
func (s *State) Cell(square int) game.PlayerID {
	return s.board[square]
}

func (s *State) IsWin(player game.PlayerID) bool {
	for _, line := range lines {
		if s.board[line[0]] == player && s.board[line[1]] == player && s.board[line[2]] == player {
			return true
		}
	}
	return false
}

func (s *State) IsValidMove(move game.Move) bool {
	m, ok := move.(Move)
	if !ok || m.Mover != s.player {
		return false
	}
	return m.Square >= 0 && m.Square < cells && s.board[m.Square] == empty
}

func (s *State) Play(move game.Move) (game.PlayerID, error) {
	if !s.IsValidMove(move) {
		return game.NoPlayer, fmt.Errorf("%v: %w", move, game.ErrInvalidMove)
	}
	m := move.(Move)
	s.board[m.Square] = m.Mover
	s.player = game.Opponent(s, s.player)
	return s.player, nil
}

func (s *State) LegalMoves() []game.Move {
	moves := []game.Move{}
	// A finished line ends the game even when squares remain
	if s.IsWin(X) || s.IsWin(O) {
		return moves
	}
	for square := 0; square < cells; square++ {
		if s.board[square] == empty {
			moves = append(moves, Move{Mover: s.player, Square: square})
		}
	}
	return moves
}

func (s *State) Copy() game.State {
	c := *s
	return &c
}

func (s *State) PlayerState(player game.PlayerID) game.State {
	return s.Copy()
}

func (s *State) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("---------\n")
		}
		fmt.Fprintf(&b, "%s | %s | %s\n",
			symbol(s.board[3*row]), symbol(s.board[3*row+1]), symbol(s.board[3*row+2]))
	}
	return b.String()
}

func symbol(player game.PlayerID) string {
	switch player {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}
