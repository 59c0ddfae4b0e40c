// meta/meta.go
package meta

// MAX_EXPANSIONS defines the default number of successor expansions per turn.
const MAX_EXPANSIONS = 15

// MAX_PLIES defines the number of moves after which a match is declared drawn.
const MAX_PLIES = 1000

// GAME defines the game played when none is named.
const GAME = "tictactoe"
