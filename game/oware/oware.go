package oware

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"duel/game"
)

const (
	South game.PlayerID = 1
	North game.PlayerID = 2

	PitsPerSide  = 6
	pits         = 2 * PitsPerSide
	InitialSeeds = 4
	TotalSeeds   = pits * InitialSeeds
)

// Move sows the seeds of Pit (0-5, counted from the mover's left).
type Move struct {
	Mover game.PlayerID
	Pit   int
}

func (m Move) Player() game.PlayerID { return m.Mover }
func (m Move) IsForfeit() bool       { return false }

func (m Move) String() string {
	return fmt.Sprintf("player %d moves pit %d", m.Mover, m.Pit+1)
}

// State is an oware board. Pits are indexed counterclockwise: 0-5 belong to
// South and 6-11 to North, so each side's last pit feeds the opponent's first.
//
//	K 5 4 3 2 1 0   (South)
//	  0 1 2 3 4 5 K (North)
type State struct {
	pits   [pits]int
	keeps  [2]float64
	player game.PlayerID
}

func New() *State {
	s := &State{}
	s.Clear()
	return s
}

// NewFromBoard builds a position from raw pit counts in board order, the two
// keeps and the player to move.
func NewFromBoard(board [pits]int, southKeep, northKeep float64, player game.PlayerID) *State {
	return &State{
		pits:   board,
		keeps:  [2]float64{southKeep, northKeep},
		player: player,
	}
}

func (s *State) Clear() {
	for i := range s.pits {
		s.pits[i] = InitialSeeds
	}
	s.keeps = [2]float64{}
	s.player = South
}

func (s *State) Players() [2]game.PlayerID {
	return [2]game.PlayerID{South, North}
}

func (s *State) NextPlayer() game.PlayerID {
	return s.player
}

// PitCount returns the seeds in one of player's pits
func (s *State) PitCount(player game.PlayerID, pit int) int {
	return s.pits[offset(player)+pit]
}

// KeepCount returns the seeds captured by player. Halves appear after a cycle
// splits an odd number of seeds.
func (s *State) KeepCount(player game.PlayerID) float64 {
	return s.keeps[player-1]
}

func (s *State) IsWin(player game.PlayerID) bool {
	if s.keeps[player-1] > TotalSeeds/2 {
		return true
	}
	if player != s.player || !s.isEmpty(player) {
		return false
	}
	return s.isEmpty(game.Opponent(s, player))
}

func (s *State) IsValidMove(move game.Move) bool {
	m, ok := move.(Move)
	if !ok || m.Mover != s.player {
		return false
	}
	if m.Pit < 0 || m.Pit >= PitsPerSide {
		return false
	}
	if s.pits[offset(m.Mover)+m.Pit] == 0 {
		return false
	}
	// Starving the opponent is only allowed when every alternative does too
	if s.starves(m) {
		for pit := 0; pit < PitsPerSide; pit++ {
			if pit == m.Pit || s.pits[offset(m.Mover)+pit] == 0 {
				continue
			}
			if !s.starves(Move{Mover: m.Mover, Pit: pit}) {
				return false
			}
		}
	}
	return true
}

func (s *State) Play(move game.Move) (game.PlayerID, error) {
	if !s.IsValidMove(move) {
		return game.NoPlayer, fmt.Errorf("%v: %w", move, game.ErrInvalidMove)
	}
	m := move.(Move)

	origin := offset(m.Mover) + m.Pit
	seeds := s.pits[origin]
	s.pits[origin] = 0

	last := origin
	for seeds > 0 {
		last = (last + 1) % pits
		if last == origin {
			continue
		}
		s.pits[last]++
		seeds--
	}

	for !onSide(m.Mover, last) && (s.pits[last] == 2 || s.pits[last] == 3) {
		s.keeps[m.Mover-1] += float64(s.pits[last])
		s.pits[last] = 0
		last = (last - 1 + pits) % pits
	}

	s.player = game.Opponent(s, m.Mover)
	return s.player, nil
}

func (s *State) LegalMoves() []game.Move {
	moves := []game.Move{}
	for pit := 0; pit < PitsPerSide; pit++ {
		move := Move{Mover: s.player, Pit: pit}
		if s.IsValidMove(move) {
			moves = append(moves, move)
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

// Hash fingerprints the pits and the player to move. Keeps are left out: seeds
// only leave the board, so a position can't recur across a capture anyway.
func (s *State) Hash() game.StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.player))
	for _, count := range s.pits {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}
	return game.StateHash(hasher.Sum64())
}

// HandleCycle ends a repeating game by splitting the seeds left on the board
// evenly between both keeps.
func (s *State) HandleCycle() {
	remaining := 0
	for i := range s.pits {
		remaining += s.pits[i]
		s.pits[i] = 0
	}
	s.keeps[0] += float64(remaining) / 2
	s.keeps[1] += float64(remaining) / 2
}

func (s *State) String() string {
	return fmt.Sprintf("%4.1f  %2d %2d %2d %2d %2d %2d\n      %2d %2d %2d %2d %2d %2d  %4.1f\n",
		s.keeps[0], s.pits[5], s.pits[4], s.pits[3], s.pits[2], s.pits[1], s.pits[0],
		s.pits[6], s.pits[7], s.pits[8], s.pits[9], s.pits[10], s.pits[11], s.keeps[1])
}

// starves reports whether m would leave the opponent without seeds
func (s *State) starves(m Move) bool {
	origin := offset(m.Mover) + m.Pit
	opponent := game.Opponent(s, m.Mover)
	low, high := offset(opponent), offset(opponent)+PitsPerSide

	seeds := s.pits[origin]
	// Sowing skips the origin pit, so a lap covers the other 11 pits
	laps := (seeds - 1) / (pits - 1)
	dest := (origin + (seeds-1)%(pits-1) + 1) % pits

	if dest < low || dest >= high {
		// Sowing ends on our side: the opponent only starves if we never reach them
		return seeds < offset(m.Mover)+PitsPerSide-origin && s.isEmpty(opponent)
	}

	destCount := s.pits[dest] + laps + 1
	if destCount != 2 && destCount != 3 {
		return false
	}
	// A lap drops a seed in every opponent pit after dest
	if laps > 0 && dest%PitsPerSide != PitsPerSide-1 {
		return false
	}
	for i := dest + 1; i < high; i++ {
		if s.pits[i] > 0 {
			return false
		}
	}
	for i := low; i < dest; i++ {
		count := s.pits[i] + laps + 1
		if count != 2 && count != 3 {
			return false
		}
	}
	return true
}

func (s *State) isEmpty(player game.PlayerID) bool {
	for pit := 0; pit < PitsPerSide; pit++ {
		if s.pits[offset(player)+pit] > 0 {
			return false
		}
	}
	return true
}

func offset(player game.PlayerID) int {
	return int(player-1) * PitsPerSide
}

func onSide(player game.PlayerID, index int) bool {
	return index >= offset(player) && index < offset(player)+PitsPerSide
}
