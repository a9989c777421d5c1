package board

// Piece packs color and kind into a single byte, per spec:
//   bit 4 (0x10) = white, bit 5 (0x20) = black (mutually exclusive
//   on playable squares), bit 6 (0x40) = FULL sentinel. The low 4
//   bits encode kind such that diagonal sliders (bishop, queen)
//   satisfy `piece & Diag == Diag` and straight sliders (rook,
//   queen) satisfy `piece & Strt == Strt`, independent of color.
type Piece uint8

// Color bits.
const (
	White Piece = 0x10
	Black Piece = 0x20
	Full  Piece = 0x40 // sentinel ring piece: non-empty, non-capturable

	colorMask = White | Black
	kindMask  = 0x0F
)

// Kind bits (low nibble). Bishop/Rook/Queen are built from the Diag
// and Strt flags so the family tests above hold for either color.
const (
	Diag PieceKind = 0x1 // set on bishop and queen
	Strt PieceKind = 0x2 // set on rook and queen

	Bishop PieceKind = Diag
	Rook   PieceKind = Strt
	Queen  PieceKind = Diag | Strt
	Pawn   PieceKind = 0x4
	Knight PieceKind = 0x8
	King   PieceKind = Pawn | Knight

	NoKind PieceKind = 0x0
)

// PieceKind is the low-nibble kind code shared by both colors.
type PieceKind uint8

// Empty is the piece code for an unoccupied playable square.
const Empty Piece = 0

// NoPiece is returned where no piece is meaningful.
const NoPiece Piece = 0

// Color returns the piece's color bits (White, Black, or 0).
func (p Piece) Color() Piece { return p & colorMask }

// Kind returns the low-nibble kind code, independent of color.
func (p Piece) Kind() PieceKind { return PieceKind(p & kindMask) }

// IsWhite reports whether p carries the white color bit.
func (p Piece) IsWhite() bool { return p&White != 0 }

// IsBlack reports whether p carries the black color bit.
func (p Piece) IsBlack() bool { return p&Black != 0 }

// IsFull reports whether p is the sentinel ring piece.
func (p Piece) IsFull() bool { return p&Full != 0 }

// IsEmpty reports whether the square holding p is empty.
func (p Piece) IsEmpty() bool { return p == Empty }

// IsDiagonalSlider reports whether p slides diagonally (bishop/queen).
func (p Piece) IsDiagonalSlider() bool { return PieceKind(p)&Diag == Diag && p.Kind() != NoKind }

// IsStraightSlider reports whether p slides straight (rook/queen).
func (p Piece) IsStraightSlider() bool { return PieceKind(p)&Strt == Strt && p.Kind() != NoKind }

// NewPiece builds a colored piece from a color and a kind.
func NewPiece(c Piece, k PieceKind) Piece { return c | Piece(k) }

// pieceValue is indexed by PieceKind; only the six real kinds matter.
var pieceValue = map[PieceKind]int{
	Pawn:   98,
	Knight: 300,
	Bishop: 301,
	Rook:   500,
	Queen:  900,
	King:   0,
}

// Value returns the kind's material value in centipawns (§4.5).
func (k PieceKind) Value() int { return pieceValue[k] }

// Value returns the piece's material value in centipawns.
func (p Piece) Value() int { return pieceValue[p.Kind()] }

// kindChar maps a kind to its lowercase FEN letter.
var kindChar = map[PieceKind]byte{
	Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k',
}

// String returns the FEN character for the piece (uppercase = white).
func (p Piece) String() string {
	if p.IsEmpty() || p.IsFull() {
		return "."
	}
	c, ok := kindChar[p.Kind()]
	if !ok {
		return "?"
	}
	if p.IsWhite() {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character into a Piece.
func PieceFromChar(c byte) Piece {
	var color Piece
	lower := c
	if c >= 'A' && c <= 'Z' {
		color = White
		lower = c + 'a' - 'A'
	} else {
		color = Black
	}
	for k, ch := range kindChar {
		if ch == lower {
			return NewPiece(color, k)
		}
	}
	return NoPiece
}
