package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType is the 3-bit role of a piece, independent of color: K=0, Q=1,
// R=2, N=3, B=4, P=5 (King first, not the teacher's original Pawn-first
// ordering). Move does not store the moving piece's type.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Knight
	Bishop
	Pawn
	NoPieceType PieceType = 7
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	switch pt {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Pawn:
		return 'p'
	default:
		return ' '
	}
}

// PieceValue is the material value of each piece type in centipawns,
// indexed by PieceType. Used by the reference evaluator, by quiescence's
// delta pruning, and by Material and Piece.Value; static exchange
// evaluation uses SeeValue instead.
var PieceValue = [8]int{20000, 900, 500, 320, 330, 100, 0, 0}

// colorBit is the bit distinguishing black pieces from white ones in the
// packed 4-bit piece tag.
const colorBit = 1 << 3

// Piece combines a PieceType with a Color into a single 4-bit tag: bits
// [2:0] are the role, bit 3 is the color (white=0, black=1). The sentinel
// EMPTY=7 has no valid color-bit interpretation; the color bit of any
// other value identifies its true owner.
type Piece uint8

const (
	WhiteKing   Piece = Piece(King)
	WhiteQueen  Piece = Piece(Queen)
	WhiteRook   Piece = Piece(Rook)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhitePawn   Piece = Piece(Pawn)
	BlackKing   Piece = Piece(King) | colorBit
	BlackQueen  Piece = Piece(Queen) | colorBit
	BlackRook   Piece = Piece(Rook) | colorBit
	BlackKnight Piece = Piece(Knight) | colorBit
	BlackBishop Piece = Piece(Bishop) | colorBit
	BlackPawn   Piece = Piece(Pawn) | colorBit
	NoPiece     Piece = Piece(NoPieceType)
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType || c >= NoColor {
		return NoPiece
	}
	if c == Black {
		return Piece(pt) | colorBit
	}
	return Piece(pt)
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p &^ colorBit)
}

// Color returns the Color of the piece. Only meaningful when p != NoPiece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	if p&colorBit != 0 {
		return Black
	}
	return White
}

// String returns the FEN character for the piece (uppercase=white).
func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	c := p.Type().Char()
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'K':
		return WhiteKing
	case 'Q':
		return WhiteQueen
	case 'R':
		return WhiteRook
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'P':
		return WhitePawn
	case 'k':
		return BlackKing
	case 'q':
		return BlackQueen
	case 'r':
		return BlackRook
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'p':
		return BlackPawn
	default:
		return NoPiece
	}
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type()]
}
