package game

import "fmt"

// Successor is one branch of a position: the move, the copy it produced and
// the player to move on that copy.
type Successor struct {
	Player PlayerID
	State  State
	Move   Move
}

// SuccessorMoves generates the legal moves of s, charging one expansion to b.
// It returns ErrBudgetExhausted without generating anything once b is spent.
// An empty list means the player to move has no legal move.
func SuccessorMoves(s State, b Budget) ([]Move, error) {
	if b.Remaining() <= 0 || !b.Consume() {
		return nil, ErrBudgetExhausted
	}
	moves := s.LegalMoves()
	if moves == nil {
		moves = []Move{}
	}
	return moves, nil
}

// Successors expands s by one ply. Every successor state is an independent copy.
func Successors(s State, b Budget) ([]Successor, error) {
	moves, err := SuccessorMoves(s, b)
	if err != nil {
		return nil, err
	}

	successors := make([]Successor, 0, len(moves))
	for _, move := range moves {
		next, child, err := PlayCopy(s, move)
		if err != nil {
			return nil, fmt.Errorf("generated move %v: %w", move, err)
		}
		successors = append(successors, Successor{Player: next, State: child, Move: move})
	}
	return successors, nil
}

// PlayCopy applies move to a copy of s, leaving s unchanged
func PlayCopy(s State, move Move) (PlayerID, State, error) {
	if !s.IsValidMove(move) {
		return NoPlayer, nil, fmt.Errorf("%v: %w", move, ErrInvalidMove)
	}
	child := s.Copy()
	next, err := child.Play(move)
	if err != nil {
		return NoPlayer, nil, err
	}
	return next, child, nil
}
