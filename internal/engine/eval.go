package engine

import "github.com/hailam/chessplay/internal/board"

// This file is the material/PSQT position evaluator. The search calls
// EvaluateForSideToMove directly; there is no hook for plugging in a
// different evaluation function.

// Centipawn material values, reusing board.PieceValue. Static exchange
// evaluation uses its own table (board.SeeValue), so the two can differ.
var pieceValues = board.PieceValue

// pawnPST/knightPST are coarse centre-control tables, indexed by square
// from White's perspective (mirrored for Black). Kept deliberately small:
// this evaluator exists to exercise the search, not to play well.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

func pstValue(table *[64]int, sq board.Square, c board.Color) int {
	if c == board.White {
		return table[sq]
	}
	return table[sq.Mirror()]
}

// EvaluateForSideToMove returns a centipawn score from the perspective of
// the side to move: positive means that side is better. The search in
// search.go calls it directly.
func EvaluateForSideToMove(pos *board.Position) int {
	score := evaluateWhitePerspective(pos)
	if pos.SideToMove == board.Black {
		return -score
	}
	return score
}

// Evaluate is an alias for EvaluateForSideToMove kept for call sites that
// pre-date the side-to-move-relative naming.
func Evaluate(pos *board.Position) int {
	return EvaluateForSideToMove(pos)
}

// EvaluateMaterial returns only the material balance, from White's
// perspective, ignoring positional terms.
func EvaluateMaterial(pos *board.Position) int {
	score := 0
	for pt := board.Queen; pt <= board.Pawn; pt++ {
		score += pos.Pieces[board.White][pt].PopCount() * pieceValues[pt]
		score -= pos.Pieces[board.Black][pt].PopCount() * pieceValues[pt]
	}
	return score
}

func evaluateWhitePerspective(pos *board.Position) int {
	score := 0

	for c := board.White; c <= board.Black; c++ {
		sign := 1
		if c == board.Black {
			sign = -1
		}
		for pt := board.Queen; pt <= board.Pawn; pt++ {
			bb := pos.Pieces[c][pt]
			count := bb.PopCount()
			score += sign * count * pieceValues[pt]

			if pt == board.Pawn {
				for b := bb; b != 0; {
					sq := b.PopLSB()
					score += sign * pstValue(&pawnPST, sq, c)
				}
			}
			if pt == board.Knight {
				for b := bb; b != 0; {
					sq := b.PopLSB()
					score += sign * pstValue(&knightPST, sq, c)
				}
			}
		}

		// Bishop pair.
		if pos.Pieces[c][board.Bishop].PopCount() >= 2 {
			score += sign * 30
		}
	}

	return score
}
