package agent

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"duel/game"
)

// QuitToken typed at the prompt forfeits the game
const QuitToken = "q"

// ParseFunc turns a line typed by a person into a move for player
type ParseFunc func(player game.PlayerID, input string) (game.Move, error)

type interactiveAgent struct {
	identity
	parse ParseFunc
	in    *bufio.Reader
	out   io.Writer
}

// NewInteractive returns an agent that asks a person for every move. Input is
// checked against the legal moves and asked again until it is valid; the quit
// token or the end of input forfeits. Agents reading the same terminal should
// share one *bufio.Reader so that neither buffers the other's lines.
func NewInteractive(name string, id game.PlayerID, parse ParseFunc, in io.Reader, out io.Writer) Agent {
	r, ok := in.(*bufio.Reader)
	if !ok {
		r = bufio.NewReader(in)
	}
	return &interactiveAgent{
		identity: identity{name: name, id: id},
		parse:    parse,
		in:       r,
		out:      out,
	}
}

func (a *interactiveAgent) MinimaxMove(state game.State, budget game.Budget) (game.Move, error) {
	legal, err := game.SuccessorMoves(state, budget)
	if err != nil {
		return nil, err
	}

	for {
		fmt.Fprintf(a.out, "%s, your move (%s to quit)? ", a.name, QuitToken)
		line, err := a.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if err != nil && input == "" {
			return game.Forfeit(a.id), nil
		}
		if input == QuitToken {
			return game.Forfeit(a.id), nil
		}

		move, err := a.parse(a.id, input)
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if !slices.Contains(legal, move) {
			fmt.Fprintln(a.out, "That is not a valid move.")
			continue
		}
		return move, nil
	}
}

func (a *interactiveAgent) AlphaBetaMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.MinimaxMove(state, budget)
}

func (a *interactiveAgent) TournamentMove(state game.State, budget game.Budget) (game.Move, error) {
	return a.MinimaxMove(state, budget)
}
