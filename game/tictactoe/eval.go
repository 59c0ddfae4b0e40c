package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"duel/game"
)

// EvaluateOpenLines scores a board by the lines each player can still
// complete, weighting lines by how many marks they already hold. Positive
// values favor X.
func EvaluateOpenLines(s game.State) float64 {
	ts, ok := s.(*State)
	if !ok {
		panic("unexpected state type")
	}

	score := 0.0
	for _, line := range lines {
		var xs, os int
		for _, square := range line {
			switch ts.board[square] {
			case X:
				xs++
			case O:
				os++
			}
		}
		switch {
		case xs > 0 && os == 0:
			score += float64(xs * xs)
		case os > 0 && xs == 0:
			score -= float64(os * os)
		}
	}
	return score
}

// ParseMove reads a square number 1-9 as typed by a person
func ParseMove(player game.PlayerID, input string) (game.Move, error) {
	square, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || square < 1 || square > cells {
		return nil, fmt.Errorf("please input a square 1-%d", cells)
	}
	return Move{Mover: player, Square: square - 1}, nil
}
