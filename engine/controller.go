package engine

import (
	"errors"
	"fmt"

	"duel/game"
	"duel/meta"

	"github.com/rs/zerolog/log"
)

type phase int

const (
	idle phase = iota
	turnPending
	terminal
)

type Option func(c *Controller)

// WithMaxPlies declares a draw once a match reaches plies moves. Zero disables the cap.
func WithMaxPlies(plies int) Option {
	return func(c *Controller) {
		if plies >= 0 {
			c.maxPlies = plies
		}
	}
}

// Controller runs matches between two agents on a single game state.
// It owns the state, the seat assignments and the per-turn expansion budget.
type Controller struct {
	state         game.State
	players       map[game.PlayerID]Assignment
	next          game.PlayerID
	budget        *game.Expansions
	maxExpansions int
	maxPlies      int
	plies         int
	visited       map[game.StateHash]struct{} // Only for game.Repeater states
	phase         phase
	winner        game.PlayerID
}

// NewController seats assignments on state. Every player of the state needs
// exactly one agent, and every agent a player.
func NewController(state game.State, assignments []Assignment, maxExpansions int, options ...Option) (*Controller, error) {
	if maxExpansions < 1 {
		return nil, fmt.Errorf("max expansions must be positive, got %d", maxExpansions)
	}

	state.Clear()
	c := &Controller{
		state:         state,
		next:          state.NextPlayer(),
		budget:        game.NewExpansions(maxExpansions),
		maxExpansions: maxExpansions,
		maxPlies:      meta.MAX_PLIES,
		visited:       make(map[game.StateHash]struct{}),
	}
	for _, option := range options {
		option(c)
	}
	if err := c.SetPlayers(assignments...); err != nil {
		return nil, err
	}
	return c, nil
}

// SetPlayers replaces every seat assignment. The controller keeps its previous
// assignments when validation fails.
func (c *Controller) SetPlayers(assignments ...Assignment) error {
	seats := c.state.Players()
	players := make(map[game.PlayerID]Assignment, len(seats))

	for _, a := range assignments {
		if a.Agent == nil {
			return fmt.Errorf("nil agent: %w", ErrPlayerMismatch)
		}
		id := a.Agent.PlayerID()
		if id != seats[0] && id != seats[1] {
			return &PlayerError{Player: id, Reason: fmt.Sprintf("agent %s has no seat in this game", a.Agent.Name())}
		}
		if _, ok := players[id]; ok {
			return &PlayerError{Player: id, Reason: "more than one agent"}
		}
		players[id] = a
	}
	for _, id := range seats {
		if _, ok := players[id]; !ok {
			return &PlayerError{Player: id, Reason: "player not found"}
		}
	}

	c.players = players
	return nil
}

// Reset starts a new match from the game's starting position
func (c *Controller) Reset() {
	clear(c.visited)
	c.state.Clear()
	c.next = c.state.NextPlayer()
	c.plies = 0
	c.winner = game.NoPlayer
	c.phase = turnPending
}

// State returns the live game state, for display only
func (c *Controller) State() game.State {
	return c.state
}

func (c *Controller) NextPlayer() game.PlayerID {
	return c.next
}

// Over reports whether the current match has ended
func (c *Controller) Over() bool {
	return c.phase == terminal
}

// Winner returns the winner of a finished match, game.NoPlayer for a draw
func (c *Controller) Winner() game.PlayerID {
	return c.winner
}

// Plies returns the number of moves applied in the current match
func (c *Controller) Plies() int {
	return c.plies
}

func (c *Controller) Assignment(player game.PlayerID) (Assignment, bool) {
	a, ok := c.players[player]
	return a, ok
}

// Step plays one ply. Agent misbehaviour never surfaces as an error: it ends
// the match in the other player's favour.
func (c *Controller) Step() (Ply, error) {
	switch c.phase {
	case idle:
		return Ply{}, ErrNotStarted
	case terminal:
		return Ply{}, ErrMatchOver
	}

	mover := c.next
	other := game.Opponent(c.state, mover)
	ply := Ply{Player: mover}

	// One expansion is enough to learn whether the mover can move at all
	c.budget.Reset(1)
	moves, err := game.SuccessorMoves(c.state, c.budget)
	if err != nil {
		return Ply{}, fmt.Errorf("checking moves of player %d: %w", mover, err)
	}
	if len(moves) == 0 {
		ply.Verdict = NoMoves
		if c.state.IsWin(other) {
			return c.finish(ply, other), nil
		}
		return c.finish(ply, game.NoPlayer), nil
	}

	if c.maxPlies > 0 && c.plies >= c.maxPlies {
		log.Warn().Msgf("stopped after %d plies (no winner yet)", c.plies)
		ply.Verdict = TurnLimit
		return c.finish(ply, game.NoPlayer), nil
	}

	c.budget.Reset(c.maxExpansions)
	name := c.players[mover].Agent.Name()
	move, err := c.selectMove(mover)
	ply.Move = move

	if err != nil {
		log.Warn().Err(err).Msgf("player %d (%s) failed to move", mover, name)
		ply.Verdict = AgentFailed
		ply.Err = err
		return c.finish(ply, other), nil
	}
	if move.IsForfeit() {
		log.Info().Msgf("player %d (%s) forfeits", mover, name)
		ply.Verdict = Forfeited
		return c.finish(ply, other), nil
	}
	if !c.state.IsValidMove(move) {
		log.Warn().Msgf("illegal move returned by player %d (%s): %v", mover, name, move)
		ply.Verdict = Rejected
		return c.finish(ply, other), nil
	}

	next, err := c.state.Play(move)
	if err != nil {
		log.Warn().Err(err).Msgf("move of player %d (%s) could not be applied", mover, name)
		ply.Verdict = Rejected
		return c.finish(ply, other), nil
	}
	c.next = next
	c.plies++
	ply.Verdict = Accepted

	if r, ok := c.state.(game.Repeater); ok {
		hash := r.Hash()
		if _, seen := c.visited[hash]; seen {
			log.Info().Msgf("position repeated after %d plies", c.plies)
			r.HandleCycle()
			ply.Cycled = true
		} else {
			c.visited[hash] = struct{}{}
		}
	}

	if c.state.IsWin(mover) {
		return c.finish(ply, mover), nil
	}
	return ply, nil
}

// PlayMatch steps until the match ends and returns the winner, or
// game.NoPlayer for a draw. Unless quiet, every position and move is logged.
func (c *Controller) PlayMatch(quiet bool) (game.PlayerID, error) {
	for {
		if !quiet {
			log.Info().Msgf("\n%s", c.state)
		}
		ply, err := c.Step()
		if err != nil {
			return game.NoPlayer, err
		}
		if ply.Move != nil && !quiet {
			log.Info().Msgf("%s: %v", c.players[ply.Player].Agent.Name(), ply.Move)
		}
		if ply.Outcome != Ongoing {
			if !quiet {
				log.Info().Msgf("\n%s", c.state)
			}
			return ply.Winner, nil
		}
	}
}

// selectMove asks the mover's agent for a move on its own view of the game.
// Errors and panics are both reported as the agent's failure.
func (c *Controller) selectMove(player game.PlayerID) (move game.Move, err error) {
	assignment := c.players[player]
	defer func() {
		if r := recover(); r != nil {
			move, err = nil, fmt.Errorf("agent %s panicked: %v", assignment.Agent.Name(), r)
		}
	}()

	view := c.state.PlayerState(player)
	switch assignment.Strategy {
	case Minimax:
		move, err = assignment.Agent.MinimaxMove(view, c.budget)
	case AlphaBeta:
		move, err = assignment.Agent.AlphaBetaMove(view, c.budget)
	case Tournament:
		move, err = assignment.Agent.TournamentMove(view, c.budget)
	default:
		return nil, fmt.Errorf("unknown strategy %v", assignment.Strategy)
	}

	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", assignment.Agent.Name(), err)
	}
	if move == nil {
		return nil, errors.New("agent " + assignment.Agent.Name() + " returned no move")
	}
	return move, nil
}

func (c *Controller) finish(ply Ply, winner game.PlayerID) Ply {
	c.phase = terminal
	c.winner = winner
	ply.Winner = winner
	if winner == game.NoPlayer {
		ply.Outcome = Drawn
	} else {
		ply.Outcome = Won
	}
	return ply
}
