package board

// Attack probes (C4): five per-color tests answering "does some piece
// of this color attack square k", plus the in-check predicate used by
// move generation and search. The FULL sentinel ring guarantees every
// ray scan below terminates without a bounds check.

// pawnAttacksSquare reports whether a pawn of color attacks sq, i.e.
// whether one of the two squares diagonally behind sq (from that
// color's direction of advance) holds a pawn of that color.
func pawnAttacksSquare(b *Board, sq Square, color Piece) bool {
	var back int
	if color == White {
		back = dirSouth
	} else {
		back = dirNorth
	}
	for _, df := range [2]int{dirEast, dirWest} {
		from := Square(int(sq) + back + df)
		p := b.Squares[from]
		if p.Kind() == Pawn && p.Color() == color {
			return true
		}
	}
	return false
}

// knightAttacksSquare reports whether a knight of color attacks sq.
func knightAttacksSquare(b *Board, sq Square, color Piece) bool {
	for _, off := range knightOffsets {
		p := b.Squares[Square(int(sq)+off)]
		if p.Kind() == Knight && p.Color() == color {
			return true
		}
	}
	return false
}

// kingAttacksSquare reports whether a king of color attacks sq.
func kingAttacksSquare(b *Board, sq Square, color Piece) bool {
	for _, off := range kingOffsets {
		p := b.Squares[Square(int(sq)+off)]
		if p.Kind() == King && p.Color() == color {
			return true
		}
	}
	return false
}

// diagonalSliderAttacksSquare scans the four diagonal rays from sq,
// stopping at the first occupied cell (the sentinel ring guarantees
// this happens). A hit counts if the blocker is a diagonal slider of
// the given color.
func diagonalSliderAttacksSquare(b *Board, sq Square, color Piece) bool {
	for _, d := range bishopDirs {
		s := int(sq)
		for {
			s += d
			p := b.Squares[Square(s)]
			if p.IsEmpty() {
				continue
			}
			if p.IsFull() {
				break
			}
			if p.Color() == color && p.IsDiagonalSlider() {
				return true
			}
			break
		}
	}
	return false
}

// straightSliderAttacksSquare is diagonalSliderAttacksSquare's twin
// for rook/queen rays.
func straightSliderAttacksSquare(b *Board, sq Square, color Piece) bool {
	for _, d := range rookDirs {
		s := int(sq)
		for {
			s += d
			p := b.Squares[Square(s)]
			if p.IsEmpty() {
				continue
			}
			if p.IsFull() {
				break
			}
			if p.Color() == color && p.IsStraightSlider() {
				return true
			}
			break
		}
	}
	return false
}

// attackedBy reports whether sq is attacked by any piece of color.
func attackedBy(b *Board, sq Square, color Piece) bool {
	return pawnAttacksSquare(b, sq, color) ||
		knightAttacksSquare(b, sq, color) ||
		kingAttacksSquare(b, sq, color) ||
		diagonalSliderAttacksSquare(b, sq, color) ||
		straightSliderAttacksSquare(b, sq, color)
}

// opposite returns the other color bit.
func opposite(color Piece) Piece {
	if color == White {
		return Black
	}
	return White
}

// InCheck reports whether the side-to-move's king is attacked.
func (b *Board) InCheck() bool {
	king := b.KingSquare[colorIndex(b.SideToMove)]
	return attackedBy(b, king, opposite(b.SideToMove))
}

// KingInCheck reports whether color's king is currently attacked,
// regardless of whose turn it is. MakeFast uses this, after applying a
// move, to set the check flag from the mover's perspective.
func (b *Board) KingInCheck(color Piece) bool {
	king := b.KingSquare[colorIndex(color)]
	return attackedBy(b, king, opposite(color))
}

// SquareAttackedBy exposes attackedBy to callers outside the package.
func SquareAttackedBy(b *Board, sq Square, color Piece) bool {
	return attackedBy(b, sq, color)
}
