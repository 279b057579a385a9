package engine

import "github.com/hailam/chessplay/internal/board"

// killersPerPly is the number of killer slots kept at each ply.
const killersPerPly = 2

// KillerTable stores quiet moves that caused a beta cutoff at a given ply,
// so sibling nodes try them early. Notify keeps the most recent killer in
// slot 0; GetKillers also surfaces the killers from ply-2 and ply+2, since
// a move that refutes a sibling two plies away is often still good here.
type KillerTable struct {
	moves [MaxPly][killersPerPly]board.Move
}

// NewKillerTable creates an empty killer table.
func NewKillerTable() *KillerTable {
	return &KillerTable{}
}

// Clear resets all killer slots.
func (k *KillerTable) Clear() {
	for i := range k.moves {
		k.moves[i][0] = board.NoMove
		k.moves[i][1] = board.NoMove
	}
}

// Notify records m as a new killer at ply. A no-op if m is already the
// most recent killer at this ply.
func (k *KillerTable) Notify(ply int, m board.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k.moves[ply][0].Same(m) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// GetKillers appends this ply's killers, plus ply-2's and ply+2's when in
// range, to out and returns the extended slice.
func (k *KillerTable) GetKillers(ply int, out []board.Move) []board.Move {
	if ply < 0 || ply >= MaxPly {
		return out
	}
	out = appendKiller(out, k.moves[ply][0])
	out = appendKiller(out, k.moves[ply][1])
	if ply >= 2 {
		out = appendKiller(out, k.moves[ply-2][0])
		out = appendKiller(out, k.moves[ply-2][1])
	}
	if ply+2 < MaxPly {
		out = appendKiller(out, k.moves[ply+2][0])
		out = appendKiller(out, k.moves[ply+2][1])
	}
	return out
}

func appendKiller(out []board.Move, m board.Move) []board.Move {
	if m == board.NoMove {
		return out
	}
	return append(out, m)
}

// MoveMade shifts the whole table down by one ply after a move is played
// at the root, so what was ply 1's killer becomes ply 0's.
func (k *KillerTable) MoveMade() {
	for ply := 1; ply < MaxPly; ply++ {
		k.moves[ply-1] = k.moves[ply]
	}
	k.moves[MaxPly-1][0] = board.NoMove
	k.moves[MaxPly-1][1] = board.NoMove
}
