package tournament

import (
	"fmt"
	"slices"
	"time"

	"duel/engine"
	"duel/meta"
	"duel/registry"
	"duel/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MatchRecord describes one finished match of a tournament
type MatchRecord struct {
	ID        uuid.UUID
	Game      string
	Player1   string // Agent seated as the game's first player
	Player2   string
	Winner    string // Empty for a draw
	Plies     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Standing struct {
	Agent string
	Wins  int
}

type Result struct {
	Matches   []MatchRecord
	Standings []Standing // In agent name order
}

type Option func(t *tournament)

// WithExclusions leaves the named agents out, e.g. those that need a person
func WithExclusions(names ...string) Option {
	return func(t *tournament) {
		t.exclusions = append(t.exclusions, names...)
	}
}

func WithMaxExpansions(n int) Option {
	return func(t *tournament) {
		t.maxExpansions = n
	}
}

// WithMaxPlies draws matches that run longer than plies moves
func WithMaxPlies(plies int) Option {
	return func(t *tournament) {
		t.maxPlies = plies
	}
}

// WithVerbose logs every position of every match
func WithVerbose() Option {
	return func(t *tournament) {
		t.quiet = false
	}
}

type tournament struct {
	game          string
	exclusions    []string
	maxExpansions int
	maxPlies      int
	quiet         bool
}

// Run plays every registered agent of a game against every other agent, once
// as the first player and once as the second, using their tournament moves.
// A win scores one point for the winner; a draw scores nothing.
func Run(gameName string, options ...Option) (Result, error) {
	t := &tournament{
		game:          gameName,
		maxExpansions: meta.MAX_EXPANSIONS,
		maxPlies:      meta.MAX_PLIES,
		quiet:         true,
	}
	for _, option := range options {
		option(t)
	}

	names, err := registry.Agents(gameName)
	if err != nil {
		return Result{}, err
	}
	names = slices.DeleteFunc(names, func(name string) bool {
		return slices.Contains(t.exclusions, name)
	})
	if len(names) < 2 {
		return Result{}, fmt.Errorf("tournament of %s needs at least 2 agents, have %v", gameName, names)
	}

	state, err := registry.NewGame(gameName)
	if err != nil {
		return Result{}, err
	}
	seats := state.Players()

	// One instance of every agent per seat
	entrants := make([][2]engine.Assignment, len(names))
	for i, name := range names {
		for seat, id := range seats {
			a, err := registry.NewAgent(gameName, name, id)
			if err != nil {
				return Result{}, err
			}
			entrants[i][seat] = engine.Assignment{Agent: a, Strategy: engine.Tournament}
		}
	}

	c, err := engine.NewController(state, []engine.Assignment{entrants[0][0], entrants[1][1]}, t.maxExpansions, engine.WithMaxPlies(t.maxPlies))
	if err != nil {
		return Result{}, err
	}

	log.Info().Msgf("starting %s tournament between %v...", gameName, names)

	wins := make([]int, len(names))
	matches := make([]MatchRecord, 0, len(names)*(len(names)-1))
	for i := range entrants {
		for j := range entrants {
			if i == j {
				continue
			}
			if err := c.SetPlayers(entrants[i][0], entrants[j][1]); err != nil {
				return Result{}, err
			}
			c.Reset()

			start := time.Now()
			winner, err := c.PlayMatch(t.quiet)
			if err != nil {
				return Result{}, fmt.Errorf("%s vs. %s: %w", names[i], names[j], err)
			}
			end := time.Now()

			record := MatchRecord{
				ID:        uuid.New(),
				Game:      gameName,
				Player1:   names[i],
				Player2:   names[j],
				Plies:     c.Plies(),
				StartTime: start,
				EndTime:   end,
				Duration:  end.Sub(start),
			}
			switch utils.FindIndex(seats[:], winner) {
			case 0:
				wins[i]++
				record.Winner = names[i]
			case 1:
				wins[j]++
				record.Winner = names[j]
			default:
				log.Info().Msgf("%s vs. %s is a draw", names[i], names[j])
			}
			if record.Winner != "" {
				log.Info().Msgf("%s vs. %s won by %s", names[i], names[j], record.Winner)
			}
			matches = append(matches, record)
		}
	}

	standings := make([]Standing, len(names))
	for i, name := range names {
		standings[i] = Standing{Agent: name, Wins: wins[i]}
	}
	log.Info().Msgf("completed %s tournament of %d matches", gameName, len(matches))
	return Result{Matches: matches, Standings: standings}, nil
}
