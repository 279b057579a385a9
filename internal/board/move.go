package board

import "fmt"

// Move encodes a chess move in 32 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
// bits 14-15: flags (0=normal, 1=promotion, 2=en passant, 3=castling)
// bits 16-31: an ordering score stamped on by the move picker. Two moves
// that differ only in this field still refer to the same board action;
// always compare with WithoutScore or Same, never with ==, once a score
// may have been stamped on.
type Move uint32

const scoreShift = 16
const baseMask Move = 0x0000FFFF

// Move flags
const (
	FlagNormal    uint32 = 0 << 14
	FlagPromotion uint32 = 1 << 14
	FlagEnPassant uint32 = 2 << 14
	FlagCastling  uint32 = 3 << 14
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// promoPieces maps the 2-bit promotion field to its piece type.
var promoPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	// promo: Knight=0, Bishop=1, Rook=2, Queen=3
	var promoIdx Move
	for i, pt := range promoPieces {
		if pt == promo {
			promoIdx = Move(i)
		}
	}
	return Move(from) | Move(to)<<6 | promoIdx<<12 | Move(FlagPromotion)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(FlagEnPassant)
}

// NewCastling creates a castling move (king's movement).
func NewCastling(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(FlagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Flag returns the move flag.
func (m Move) Flag() uint32 {
	return uint32(m) & 0xC000
}

// Promotion returns the promotion piece type (only valid if IsPromotion() is true).
func (m Move) Promotion() PieceType {
	return promoPieces[(m>>12)&3]
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Flag() == FlagPromotion
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastling
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture(pos *Position) bool {
	if m.IsEnPassant() {
		return true
	}
	return !pos.IsEmpty(m.To())
}

// IsQuiet returns true if this is not a capture or promotion.
func (m Move) IsQuiet(pos *Position) bool {
	return !m.IsCapture(pos) && !m.IsPromotion()
}

// IsViolent returns true if the move is a capture or a queen promotion —
// the set of moves a quiescence search must consider.
func (m Move) IsViolent(pos *Position) bool {
	if m.IsCapture(pos) {
		return true
	}
	return m.IsPromotion() && m.Promotion() == Queen
}

// Piece returns the type of the piece making the move, looked up against
// the position the move was generated from.
func (m Move) Piece(pos *Position) PieceType {
	return pos.PieceAt(m.From()).Type()
}

// WithScore returns a copy of the move with an ordering score stamped into
// its upper bits. The score never affects From/To/Flag/Promotion.
func (m Move) WithScore(score uint16) Move {
	return (m & baseMask) | Move(score)<<scoreShift
}

// Score returns the ordering score stamped onto the move, or 0 if none.
func (m Move) Score() uint16 {
	return uint16(m >> scoreShift)
}

// WithoutScore strips any ordering score, leaving only the move's identity.
func (m Move) WithoutScore() Move {
	return m & baseMask
}

// Same reports whether two moves refer to the same board action, ignoring
// any ordering score stamped onto either one.
func (m Move) Same(other Move) bool {
	return m.WithoutScore() == other.WithoutScore()
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m.WithoutScore() == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}

	return s
}

// ParseMove parses a UCI format move string.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	// Check for promotion
	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	// Detect special moves
	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}

	pt := piece.Type()

	// Castling
	if pt == King && abs(int(to)-int(from)) == 2 {
		return NewCastling(from, to), nil
	}

	// En passant
	if pt == Pawn && to == pos.EnPassant {
		return NewEnPassant(from, to), nil
	}

	return NewMove(from, to), nil
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move, ignoring any
// ordering score stamped onto either side of the comparison.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i].Same(m) {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// UndoInfo stores information needed to undo a move. This module keeps the
// teacher's full-snapshot undo shape rather than a tiny insertion-unique
// delta list: simpler to get right, and it satisfies the same round-trip
// and search-correctness invariants either way.
type UndoInfo struct {
	CapturedPiece  Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Hash           uint64
	PawnKey        uint64
	Checkers       Bitboard
	KingSquare     [2]Square      // King positions before move
	Pieces         [2][6]Bitboard // Full piece bitboards for reliable restoration
	Occupied       [2]Bitboard    // Occupancy bitboards
	AllOccupied    Bitboard       // All pieces
	Valid          bool           // True if move was actually applied
}
