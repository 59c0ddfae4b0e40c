// Package registry maps game and agent names to their constructors, so that
// front-ends can pick both by name. Games and agents register themselves,
// usually from an init function.
package registry

import (
	"maps"
	"slices"

	"duel/agent"
	"duel/game"

	"github.com/pkg/errors"
)

// Game is a registered game: how to build its starting state, and how to read
// moves typed by a person.
type Game struct {
	New       func() game.State
	ParseMove agent.ParseFunc
}

var (
	games  = make(map[string]Game)
	agents = make(map[string]map[string]agent.Factory) // game -> agent -> factory
)

// RegisterGame makes a game available under name. Registering a name twice
// replaces the earlier game.
func RegisterGame(name string, g Game) {
	if g.New == nil {
		panic("Must specify a state constructor for game " + name)
	}
	games[name] = g
}

// RegisterAgent makes an agent available for the named game
func RegisterAgent(gameName, name string, factory agent.Factory) {
	if factory == nil {
		panic("Must specify a factory for agent " + name)
	}
	if _, ok := agents[gameName]; !ok {
		agents[gameName] = make(map[string]agent.Factory)
	}
	agents[gameName][name] = factory
}

// Games lists the registered game names in order
func Games() []string {
	return slices.Sorted(maps.Keys(games))
}

func LookupGame(name string) (Game, error) {
	g, ok := games[name]
	if !ok {
		return Game{}, errors.Errorf("unknown game %q (have %v)", name, Games())
	}
	return g, nil
}

// NewGame returns a fresh starting state of the named game
func NewGame(name string) (game.State, error) {
	g, err := LookupGame(name)
	if err != nil {
		return nil, err
	}
	return g.New(), nil
}

// Agents lists the agents registered for a game in order
func Agents(gameName string) ([]string, error) {
	if _, err := LookupGame(gameName); err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(agents[gameName])), nil
}

// NewAgent builds the named agent of a game, seated as player id
func NewAgent(gameName, name string, id game.PlayerID) (agent.Agent, error) {
	names, err := Agents(gameName)
	if err != nil {
		return nil, errors.Wrapf(err, "creating agent %q", name)
	}
	factory, ok := agents[gameName][name]
	if !ok {
		return nil, errors.Errorf("unknown agent %q for game %q (have %v)", name, gameName, names)
	}
	return factory(name, id), nil
}
