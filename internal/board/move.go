package board

import "fmt"

// Move packs a move into 32 bits, per spec:
//   from            [0:8]
//   to               [8:16]
//   promotion piece [16:22]
//   check flag       [22]
//   captured piece  [24:30]
//   castle flag      [30]
//   en-passant flag  [31]
//
// Captured-piece and check-flag are left blank by the pseudo-legal
// generator and filled in by MakeFast inside GenerateLegalMoves, so
// Make and Unmake read the captured piece from the move itself.
type Move uint32

const (
	shiftFrom      = 0
	shiftTo        = 8
	shiftPromotion = 16
	shiftCheck     = 22
	shiftCaptured  = 24
	shiftCastle    = 30
	shiftEnPassant = 31

	maskSquare = 0xFF
	maskPiece  = 0x3F
)

// NoMove represents an absent move.
const NoMove Move = 0

// NewMove builds a plain move (no promotion, capture, castle or ep).
func NewMove(from, to Square) Move {
	return Move(uint32(from)<<shiftFrom) | Move(uint32(to)<<shiftTo)
}

// NewPromotion builds a (possibly capturing) promotion move.
func NewPromotion(from, to Square, promo Piece) Move {
	return NewMove(from, to) | Move(uint32(promo)<<shiftPromotion)
}

// NewEnPassant builds an en-passant capture move.
func NewEnPassant(from, to Square) Move {
	return NewMove(from, to) | 1<<shiftEnPassant
}

// NewCastle builds a castling move (the king's own from/to squares).
func NewCastle(from, to Square) Move {
	return NewMove(from, to) | 1<<shiftCastle
}

// From returns the origin square.
func (m Move) From() Square { return Square((m >> shiftFrom) & maskSquare) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> shiftTo) & maskSquare) }

// PromotionPiece returns the promotion piece code, or Empty if none.
func (m Move) PromotionPiece() Piece { return Piece((m >> shiftPromotion) & maskPiece) }

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != Empty }

// IsCastle reports whether this move castles.
func (m Move) IsCastle() bool { return m&(1<<shiftCastle) != 0 }

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m&(1<<shiftEnPassant) != 0 }

// IsCheck reports whether MakeFast determined this move gives check.
func (m Move) IsCheck() bool { return m&(1<<shiftCheck) != 0 }

// CapturedPiece returns the piece captured by this move, filled in by
// MakeFast; Empty means no capture (and is meaningless before MakeFast runs).
func (m Move) CapturedPiece() Piece { return Piece((m >> shiftCaptured) & maskPiece) }

// IsCapture reports whether this move captures (including en passant).
// Valid only after MakeFast has filled in the captured-piece field.
func (m Move) IsCapture() bool { return m.IsEnPassant() || m.CapturedPiece() != Empty }

// withCaptured returns m with its captured-piece field set.
func (m Move) withCaptured(p Piece) Move {
	return m&^(Move(maskPiece)<<shiftCaptured) | Move(uint32(p)<<shiftCaptured)
}

// withCheck returns m with its check-flag bit set to check.
func (m Move) withCheck(check bool) Move {
	if check {
		return m | 1<<shiftCheck
	}
	return m &^ (1 << shiftCheck)
}

// String renders the move in plain from-to form, e.g. "e2e4", "e7e8q".
// Used for debugging; cmd/corvid implements the spec's shorthand
// algebraic notation for protocol output.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionPiece().String()
	}
	return s
}

// ParseMove parses coordinate notation such as "e2e4" or "e7e8q" into
// a Move. Special-move flags (castle, en passant) are inferred from
// the board so the caller does not need to know them in advance.
func ParseMove(s string, b *Board) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("board: invalid move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	piece := b.PieceAt(from)
	if piece.IsEmpty() {
		return NoMove, fmt.Errorf("board: no piece on %s", from)
	}

	if len(s) >= 5 {
		promo := PieceFromChar(s[4])
		if promo == NoPiece {
			return NoMove, fmt.Errorf("board: invalid promotion %q", s[4:5])
		}
		return NewPromotion(from, to, NewPiece(piece.Color(), promo.Kind())), nil
	}

	if piece.Kind() == King && abs(int(to)-int(from)) == 2 {
		return NewCastle(from, to), nil
	}
	if piece.Kind() == Pawn && to == b.EnPassant && to != from {
		return NewEnPassant(from, to), nil
	}
	return NewMove(from, to), nil
}

// MoveList is a fixed-size, stack-local buffer of candidate moves.
type MoveList struct {
	moves [256]Move
	count int

	// Cursors into the ordered list, set by OrderMoves: moves[:LastCapture]
	// are promotions/captures, moves[:LastCheck] additionally include
	// check-giving quiets. Quiescence uses these to scan a prefix
	// instead of the whole list.
	LastCapture int
	LastCheck   int
}

// Len returns the number of moves held.
func (ml *MoveList) Len() int { return ml.count }

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move { return ml.moves[i] }

// Set overwrites the move at index i (used by move ordering).
func (ml *MoveList) Set(i int, m Move) { ml.moves[i] = m }

// Add appends a move.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Swap exchanges two entries.
func (ml *MoveList) Swap(i, j int) { ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i] }

// Clear empties the list for reuse.
func (ml *MoveList) Clear() {
	ml.count = 0
	ml.LastCapture = 0
	ml.LastCheck = 0
}

// Slice returns the populated portion of the backing array.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.count] }
