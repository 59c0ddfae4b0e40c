package engine

import (
	"errors"
	"fmt"
	"strings"

	"duel/agent"
	"duel/game"
)

var (
	ErrPlayerMismatch = errors.New("agents do not match the game's players")
	ErrNotStarted     = errors.New("match not started - call Reset first")
	ErrMatchOver      = errors.New("match is over - no moves allowed")
)

// Strategy selects which of an agent's move functions the controller calls
type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
	Tournament
)

func (s Strategy) String() string {
	switch s {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	case Tournament:
		return "tournament"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "minimax", "":
		return Minimax, nil
	case "alphabeta":
		return AlphaBeta, nil
	case "tournament":
		return Tournament, nil
	}
	return Minimax, fmt.Errorf("unknown strategy %q", name)
}

// Assignment seats an agent, playing with a strategy, as agent.PlayerID()
type Assignment struct {
	Agent    agent.Agent
	Strategy Strategy
}

// PlayerError reports a player seat with no agent, or an agent with no seat
type PlayerError struct {
	Player game.PlayerID
	Reason string
}

func (e *PlayerError) Error() string {
	return fmt.Sprintf("player %d: %s", e.Player, e.Reason)
}

func (e *PlayerError) Unwrap() error {
	return ErrPlayerMismatch
}

// Verdict is what the controller made of the mover's turn
type Verdict int

const (
	Accepted    Verdict = iota // Legal move applied
	Forfeited                  // Agent conceded
	Rejected                   // Agent returned an invalid move
	AgentFailed                // Agent returned an error, panicked or gave no move
	NoMoves                    // Mover had no legal move; nothing was asked
	TurnLimit                  // Match hit the ply cap
)

func (v Verdict) String() string {
	return [...]string{"accepted", "forfeited", "rejected", "agent failed", "no moves", "turn limit"}[v]
}

type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Drawn
)

func (o Outcome) String() string {
	return [...]string{"ongoing", "won", "drawn"}[o]
}

// Ply records one step of a match
type Ply struct {
	Player  game.PlayerID
	Move    game.Move // nil when no move was asked for or the agent failed
	Verdict Verdict
	Outcome Outcome
	Winner  game.PlayerID // game.NoPlayer unless Outcome is Won
	Cycled  bool          // The move repeated an earlier position
	Err     error         // Cause of an AgentFailed verdict
}
