package board

// SeeValue is the material table used by static exchange evaluation,
// distinct from the reference evaluator's PieceValue: King, Queen, Knight
// and Bishop differ (e.g. Knight 325 here vs 320 for PieceValue), while
// Rook and Pawn are the same, matching the original engine's own SEE
// table rather than its positional one.
var SeeValue = [8]int{1500, 975, 500, 325, 325, 100, 0, 0}

// seeOccupancy is the dedicated occupancy state SEE mutates while walking
// an exchange sequence. It never touches Position's own bitboards or its
// Zobrist hash: each evaluation builds a fresh copy from the position and
// discards it afterwards, so it is never restored.
type seeOccupancy struct {
	pieces   [2][8]Bitboard // [Color][PieceType], NoPieceType slot unused
	occupied [2]Bitboard
	all      Bitboard
}

func newSeeOccupancy(p *Position) seeOccupancy {
	var s seeOccupancy
	for c := White; c <= Black; c++ {
		for pt := King; pt <= Pawn; pt++ {
			s.pieces[c][pt] = p.Pieces[c][pt]
		}
		s.occupied[c] = p.Occupied[c]
	}
	s.all = p.AllOccupied
	return s
}

// removePiece is the lean mutation the exchange walk uses: it only
// clears bits, it never touches hashing or king-square caches, since SEE
// never needs them.
func (s *seeOccupancy) removePiece(c Color, pt PieceType, sq Square) {
	bb := SquareBB(sq)
	s.pieces[c][pt] &^= bb
	s.occupied[c] &^= bb
	s.all &^= bb
}

func (s *seeOccupancy) addPiece(c Color, pt PieceType, sq Square) {
	bb := SquareBB(sq)
	s.pieces[c][pt] |= bb
	s.occupied[c] |= bb
	s.all |= bb
}

// attackersTo returns every piece of either color attacking sq given the
// current (possibly mid-exchange) occupancy.
func (s *seeOccupancy) attackersTo(sq Square) Bitboard {
	return (pawnAttacks[Black][sq] & s.pieces[White][Pawn]) |
		(pawnAttacks[White][sq] & s.pieces[Black][Pawn]) |
		(knightAttacks[sq] & (s.pieces[White][Knight] | s.pieces[Black][Knight])) |
		(kingAttacks[sq] & (s.pieces[White][King] | s.pieces[Black][King])) |
		(BishopAttacks(sq, s.all) & (s.pieces[White][Bishop] | s.pieces[Black][Bishop] | s.pieces[White][Queen] | s.pieces[Black][Queen])) |
		(RookAttacks(sq, s.all) & (s.pieces[White][Rook] | s.pieces[Black][Rook] | s.pieces[White][Queen] | s.pieces[Black][Queen]))
}

// leastValuableAttacker scans piece classes from Pawn up to King and
// returns the first class with an attacker on sq. Every call starts the
// scan again at Pawn; no per-side cursor is kept between calls. Returns
// NoPieceType, NoSquare if the side has no attacker left on sq.
func (s *seeOccupancy) leastValuableAttacker(sq Square, c Color) (PieceType, Square) {
	attackers := s.attackersTo(sq) & s.occupied[c]
	if attackers == 0 {
		return NoPieceType, NoSquare
	}
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		bb := attackers & s.pieces[c][pt]
		if bb != 0 {
			return pt, bb.LSB()
		}
	}
	return NoPieceType, NoSquare
}

// StaticExchangeEvaluation estimates the material result, from the
// perspective of the side making move m, of playing every recapture on
// m.To() in increasing value order until one side stops or runs out of
// attackers. Positive means the exchange wins material for the mover.
func StaticExchangeEvaluation(pos *Position, m Move) int {
	to := m.To()
	us := pos.SideToMove
	them := us.Other()

	var gains [32]int
	depth := 0

	var capturedType PieceType
	if m.IsEnPassant() {
		capturedType = Pawn
	} else {
		capturedType = pos.PieceAt(to).Type()
	}
	if capturedType == NoPieceType {
		gains[0] = 0
	} else {
		gains[0] = SeeValue[capturedType]
	}

	movingType := pos.PieceAt(m.From()).Type()
	occ := newSeeOccupancy(pos)
	occ.removePiece(us, movingType, m.From())
	if m.IsEnPassant() {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		occ.removePiece(them, Pawn, capSq)
	} else if capturedType != NoPieceType {
		occ.removePiece(them, capturedType, to)
	}
	occ.addPiece(us, movingType, to)

	side := them
	attackerType := movingType
	for {
		pt, sq := occ.leastValuableAttacker(to, side)
		if pt == NoPieceType {
			break
		}
		depth++
		gains[depth] = SeeValue[attackerType] - gains[depth-1]
		occ.removePiece(side, pt, sq)
		occ.addPiece(side, pt, to)
		attackerType = pt
		side = side.Other()
	}

	for depth > 0 {
		if -gains[depth] < gains[depth-1] {
			gains[depth-1] = -gains[depth]
		}
		depth--
	}
	return gains[0]
}

// SEEMap computes StaticExchangeEvaluation for every move in ml, keyed by
// the move's base identity (ordering score stripped), for move-picker
// stages that need to classify many captures at once.
func SEEMap(pos *Position, ml *MoveList) map[Move]int {
	out := make(map[Move]int, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i).WithoutScore()
		out[m] = StaticExchangeEvaluation(pos, m)
	}
	return out
}

// NMStaticExchangeEvaluation is a cheaper "no re-minimax" approximation:
// it only looks one ply deeper than the immediate capture, trading
// precision for speed when the full swap-off isn't worth computing (e.g.
// to cheaply flag an obviously-losing capture before it is fully scored).
func NMStaticExchangeEvaluation(pos *Position, m Move) int {
	to := m.To()
	us := pos.SideToMove
	them := us.Other()

	var capturedType PieceType
	if m.IsEnPassant() {
		capturedType = Pawn
	} else {
		capturedType = pos.PieceAt(to).Type()
	}
	if capturedType == NoPieceType {
		return 0
	}
	gain := SeeValue[capturedType]

	movingType := pos.PieceAt(m.From()).Type()
	occ := newSeeOccupancy(pos)
	occ.removePiece(us, movingType, m.From())
	occ.removePiece(them, capturedType, to)
	occ.addPiece(us, movingType, to)

	if pt, _ := occ.leastValuableAttacker(to, them); pt != NoPieceType {
		gain -= SeeValue[movingType]
	}
	return gain
}

// GlobalExchangeEvaluation evaluates the best sequence of captures either
// side can play on sq starting with toMove, independent of any single
// move: useful for judging how contested a square is rather than scoring
// one specific capture. lowerBound/upperBound bound the recursion the way
// alpha/beta bound a search; pass the zero value to use the default
// (+/- King's value) the original engine uses when none is supplied.
func GlobalExchangeEvaluation(pos *Position, sq Square, toMove Color, lowerBound, upperBound int) int {
	if lowerBound == 0 && upperBound == 0 {
		lowerBound, upperBound = -SeeValue[King], SeeValue[King]
	}
	occ := newSeeOccupancy(pos)
	return geeRecurse(&occ, sq, toMove, lowerBound, upperBound)
}

func geeRecurse(occ *seeOccupancy, sq Square, side Color, lowerBound, upperBound int) int {
	standPat := 0
	if standPat > upperBound {
		return upperBound
	}
	if standPat > lowerBound {
		lowerBound = standPat
	}

	pt, from := occ.leastValuableAttacker(sq, side)
	if pt == NoPieceType {
		return standPat
	}

	var capturedValue int
	for c := White; c <= Black; c++ {
		if c == side {
			continue
		}
		if occ.occupied[c]&SquareBB(sq) != 0 {
			for victimPt := King; victimPt <= Pawn; victimPt++ {
				if occ.pieces[c][victimPt]&SquareBB(sq) != 0 {
					capturedValue = SeeValue[victimPt]
					occ.removePiece(c, victimPt, sq)
					break
				}
			}
		}
	}

	occ.removePiece(side, pt, from)
	occ.addPiece(side, pt, sq)

	score := capturedValue - geeRecurse(occ, sq, side.Other(), -upperBound, -lowerBound)
	if score > standPat {
		return score
	}
	return standPat
}
