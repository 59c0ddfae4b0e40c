package game

import "fmt"

type forfeit struct {
	player PlayerID
}

// Forfeit returns a payload-free move conceding the game for player. It is a
// legal response in every game.
func Forfeit(player PlayerID) Move {
	return forfeit{player: player}
}

func (f forfeit) Player() PlayerID { return f.player }
func (f forfeit) IsForfeit() bool  { return true }

func (f forfeit) String() string {
	return fmt.Sprintf("player %d forfeits", f.player)
}
