package engine

import "github.com/hailam/chessplay/internal/board"

// CounterMoveTable maps a (side to move, previous move) pair to the reply
// that refuted it last time, keyed on the previous move's from/to squares
// the way a counter is learned from what the opponent just played.
type CounterMoveTable struct {
	moves [2][64][64]board.Move
}

// NewCounterMoveTable creates an empty counter-move table.
func NewCounterMoveTable() *CounterMoveTable {
	return &CounterMoveTable{}
}

// Clear resets all counter-move entries.
func (c *CounterMoveTable) Clear() {
	for s := range c.moves {
		for f := range c.moves[s] {
			for t := range c.moves[s][f] {
				c.moves[s][f][t] = board.NoMove
			}
		}
	}
}

// Notify records reply as the counter to lastMove, played by sideToMove.
func (c *CounterMoveTable) Notify(sideToMove board.Color, lastMove, reply board.Move) {
	if lastMove == board.NoMove {
		return
	}
	c.moves[sideToMove][lastMove.From()][lastMove.To()] = reply
}

// GetCounterMove returns the recorded counter to lastMove for sideToMove,
// or NoMove if none has been recorded.
func (c *CounterMoveTable) GetCounterMove(sideToMove board.Color, lastMove board.Move) board.Move {
	if lastMove == board.NoMove {
		return board.NoMove
	}
	return c.moves[sideToMove][lastMove.From()][lastMove.To()]
}
