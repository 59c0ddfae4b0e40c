package oware

import (
	"fmt"
	"strconv"
	"strings"

	"duel/game"
)

// Weights scales the positional features compared by EvaluateFeatures
type Weights struct {
	Keep     float64 // Captured seeds
	Threat   float64 // Pits that end sowing on an opponent pit holding 1 or 2 seeds
	Reach    float64 // Pits with enough seeds to reach the opponent's side
	Empty    float64 // Empty pits on the opponent's side
	Hoarding float64 // Pits holding more than a full lap of seeds
}

var DefaultWeights = Weights{
	Keep:     1.0,
	Threat:   0.9,
	Reach:    0.6,
	Empty:    0.7,
	Hoarding: 0.2,
}

// EvaluateFeatures returns a State evaluator comparing South's features
// against North's. Positive values favor South.
func EvaluateFeatures(w Weights) game.Evaluate {
	return func(s game.State) float64 {
		os, ok := s.(*State)
		if !ok {
			panic("unexpected state type")
		}
		return os.score(South, w) - os.score(North, w)
	}
}

// EvaluateKeeps compares captured seeds only
func EvaluateKeeps(s game.State) float64 {
	os, ok := s.(*State)
	if !ok {
		panic("unexpected state type")
	}
	return os.keeps[0] - os.keeps[1]
}

func (s *State) score(player game.PlayerID, w Weights) float64 {
	opponent := game.Opponent(s, player)

	var threats, reach, empty, hoarding int
	for pit := 0; pit < PitsPerSide; pit++ {
		index := offset(player) + pit
		seeds := s.pits[index]
		if seeds > pits-1 {
			hoarding++
		}
		if seeds == 0 {
			continue
		}
		dest := (index + seeds) % pits
		if !onSide(player, dest) {
			reach++
			if s.pits[dest] == 1 || s.pits[dest] == 2 {
				threats++
			}
		}
	}
	for pit := 0; pit < PitsPerSide; pit++ {
		if s.pits[offset(opponent)+pit] == 0 {
			empty++
		}
	}

	return w.Keep*s.keeps[player-1] +
		w.Threat*float64(threats) +
		w.Reach*float64(reach) +
		w.Empty*float64(empty) +
		w.Hoarding*float64(hoarding)
}

// ParseMove reads a pit number 1-6 as typed by a person
func ParseMove(player game.PlayerID, input string) (game.Move, error) {
	pit, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || pit < 1 || pit > PitsPerSide {
		return nil, fmt.Errorf("please input a pit 1-%d", PitsPerSide)
	}
	return Move{Mover: player, Pit: pit - 1}, nil
}
