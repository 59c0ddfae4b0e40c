package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"duel/config"
	"duel/engine"
	"duel/game"
	"duel/player"
	"duel/registry"
	"duel/tournament"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: duel [flags] GAME PLAYER1 PLAYER2
       duel -tournament [flags] GAME

Games and players are looked up by name, e.g. "duel tictactoe minimax human".
`

type exclusions []string

func (e *exclusions) String() string { return strings.Join(*e, ",") }

func (e *exclusions) Set(name string) error {
	*e = append(*e, name)
	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML file with default settings")
	minimax := flag.Bool("minimax", false, "Have players use minimax tree search (default)")
	alphaBeta := flag.Bool("alpha-beta", false, "Have players use alpha-beta tree search")
	tourn := flag.Bool("tournament", false, "Run a tournament with all registered players of GAME")
	maxExpand := flag.Int("max-expand", 0, "Maximum number of expansions per ply")
	maxPlies := flag.Int("max-plies", -1, "Declare a draw after this many plies (0 for no limit)")
	var excluded exclusions
	flag.Var(&excluded, "exclude", "Exclude a player from the tournament (repeatable)")
	verbose := flag.Bool("verbose", false, "Print every game state in tournament mode")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, ...)")
	outDir := flag.String("out", "", "Directory for tournament CSV records")
	seed := flag.Uint64("seed", 0, "Seed for random players (0 seeds from the clock)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fail(err)
		}
	}

	// Explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "minimax":
			cfg.Strategy = engine.Minimax.String()
		case "alpha-beta":
			cfg.Strategy = engine.AlphaBeta.String()
		case "tournament":
			cfg.Tournament = *tourn
		case "max-expand":
			cfg.MaxExpansions = *maxExpand
		case "max-plies":
			cfg.MaxPlies = *maxPlies
		case "exclude":
			cfg.Exclude = append(cfg.Exclude, excluded...)
		case "verbose":
			cfg.Verbose = *verbose
		case "log-level":
			cfg.LogLevel = *logLevel
		case "out":
			cfg.OutDir = *outDir
		case "seed":
			cfg.Seed = *seed
		}
	})

	if *minimax && *alphaBeta {
		fail(fmt.Errorf("-alpha-beta and -minimax are mutually exclusive"))
	}
	args := flag.Args()
	if cfg.Tournament {
		if *minimax || *alphaBeta {
			fail(fmt.Errorf("-minimax and -alpha-beta are only compatible with non-tournament play"))
		}
		if len(args) > 1 {
			fail(fmt.Errorf("tournament takes 1 argument, got %d", len(args)))
		}
		if len(args) == 1 {
			cfg.Game = args[0]
		}
	} else {
		switch len(args) {
		case 0:
		case 3:
			cfg.Game, cfg.Player1, cfg.Player2 = args[0], args[1], args[2]
		default:
			fail(fmt.Errorf("game takes 3 arguments, got %d", len(args)))
		}
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	player.Seed = cfg.Seed

	if cfg.Tournament {
		if err := runTournament(cfg); err != nil {
			fail(err)
		}
		return
	}
	if err := runGame(cfg, os.Stdout); err != nil {
		fail(err)
	}
}

func runGame(cfg config.Config, out io.Writer) error {
	if cfg.Player1 == "" || cfg.Player2 == "" {
		return fmt.Errorf("two players are needed, got %q and %q", cfg.Player1, cfg.Player2)
	}
	strategy, err := engine.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	state, err := registry.NewGame(cfg.Game)
	if err != nil {
		return err
	}
	seats := state.Players()

	p1, err := registry.NewAgent(cfg.Game, cfg.Player1, seats[0])
	if err != nil {
		return err
	}
	p2, err := registry.NewAgent(cfg.Game, cfg.Player2, seats[1])
	if err != nil {
		return err
	}
	c, err := engine.NewController(state, []engine.Assignment{
		{Agent: p1, Strategy: strategy},
		{Agent: p2, Strategy: strategy},
	}, cfg.MaxExpansions, engine.WithMaxPlies(cfg.MaxPlies))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nBeginning %s with players %s and %s using %v planning.\n\n", cfg.Game, p1.Name(), p2.Name(), strategy)
	for {
		c.Reset()
		winner, err := c.PlayMatch(false)
		if err != nil {
			return err
		}
		switch winner {
		case game.NoPlayer:
			fmt.Fprintln(out, "The game is a draw.")
		case seats[0]:
			fmt.Fprintf(out, "%s (player %d) wins!\n", p1.Name(), winner)
		default:
			fmt.Fprintf(out, "%s (player %d) wins!\n", p2.Name(), winner)
		}
		if !playAgain(out) {
			return nil
		}
	}
}

func playAgain(out io.Writer) bool {
	for {
		fmt.Fprint(out, "Play again (y/n)? ")
		line, err := player.Stdin.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true
		case "n":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(out, "Please input 'y' or 'n'")
	}
}

func runTournament(cfg config.Config) error {
	options := []tournament.Option{
		tournament.WithExclusions(cfg.Exclude...),
		tournament.WithMaxExpansions(cfg.MaxExpansions),
		tournament.WithMaxPlies(cfg.MaxPlies),
	}
	if cfg.Verbose {
		options = append(options, tournament.WithVerbose())
	}
	result, err := tournament.Run(cfg.Game, options...)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("-----------------------------------------")
	fmt.Println("Final scores:")
	for _, s := range result.Standings {
		fmt.Printf("Player %s: %d\n", s.Agent, s.Wins)
	}

	if cfg.OutDir == "" {
		return nil
	}
	writer, err := tournament.NewWriter(cfg.OutDir)
	if err != nil {
		return err
	}
	if err := writer.WriteMatchRecords(result.Matches); err != nil {
		return err
	}
	if err := writer.WriteStandings(result.Standings); err != nil {
		return err
	}
	log.Info().Msgf("stored tournament records in %s", writer.Dir())
	return nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintln(os.Stderr, "Use '-h' for more information.")
	os.Exit(1)
}
