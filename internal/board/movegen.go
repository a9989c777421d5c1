package board

// Move generation (C6): pseudo-legal generation per piece kind,
// filtered to legal moves by a fast make/probe/unmake cycle per
// candidate (§4.3).

// promotionKinds lists the four pieces a pawn can promote to.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// pseudoGenerate appends every pseudo-legal move for color to out.
// Castling candidates are pre-filtered by their own rights/attack
// conditions here, but still pass through the universal legality
// filter in GenerateLegalMoves like everything else.
func pseudoGenerate(b *Board, color Piece, out *MoveList) {
	b.Pieces(color, func(from Square, p Piece) {
		switch p.Kind() {
		case Pawn:
			generatePawnMoves(b, from, color, out)
		case Knight:
			generateStepMoves(b, from, color, knightOffsets[:], out)
		case King:
			generateStepMoves(b, from, color, kingOffsets[:], out)
		default:
			if p.IsDiagonalSlider() {
				generateSliderMoves(b, from, color, bishopDirs[:], out)
			}
			if p.IsStraightSlider() {
				generateSliderMoves(b, from, color, rookDirs[:], out)
			}
		}
	})
	generateCastles(b, color, out)
}

func generateStepMoves(b *Board, from Square, color Piece, offsets []int, out *MoveList) {
	for _, off := range offsets {
		to := Square(int(from) + off)
		target := b.Squares[to]
		if target.IsFull() {
			continue
		}
		if target.IsEmpty() || target.Color() != color {
			out.Add(NewMove(from, to))
		}
	}
}

func generateSliderMoves(b *Board, from Square, color Piece, dirs []int, out *MoveList) {
	for _, d := range dirs {
		s := int(from)
		for {
			s += d
			to := Square(s)
			target := b.Squares[to]
			if target.IsFull() {
				break
			}
			if target.IsEmpty() {
				out.Add(NewMove(from, to))
				continue
			}
			if target.Color() != color {
				out.Add(NewMove(from, to))
			}
			break
		}
	}
}

func generatePawnMoves(b *Board, from Square, color Piece, out *MoveList) {
	var forward int
	var startRank, promoteRank int
	if color == White {
		forward = dirNorth
		startRank, promoteRank = 2, 8
	} else {
		forward = dirSouth
		startRank, promoteRank = 7, 1
	}

	addPawnMove := func(to Square) {
		if to.Rank() == promoteRank {
			for _, k := range promotionKinds {
				out.Add(NewPromotion(from, to, NewPiece(color, k)))
			}
			return
		}
		out.Add(NewMove(from, to))
	}

	one := Square(int(from) + forward)
	if b.Squares[one].IsEmpty() {
		addPawnMove(one)
		if from.Rank() == startRank {
			two := Square(int(one) + forward)
			if b.Squares[two].IsEmpty() {
				out.Add(NewMove(from, two))
			}
		}
	}

	for _, df := range [2]int{dirEast, dirWest} {
		to := Square(int(from) + forward + df)
		target := b.Squares[to]
		if target.IsFull() {
			continue
		}
		if !target.IsEmpty() && target.Color() != color {
			addPawnMove(to)
			continue
		}
		if to == b.EnPassant {
			out.Add(NewEnPassant(from, to))
		}
	}
}

func generateCastles(b *Board, color Piece, out *MoveList) {
	opp := opposite(color)
	var home Square
	var kingside, queenside CastleRights
	var rank int
	if color == White {
		home, kingside, queenside, rank = whiteKingHome, WhiteKingside, WhiteQueenside, 1
	} else {
		home, kingside, queenside, rank = blackKingHome, BlackKingside, BlackQueenside, 8
	}
	if b.KingSquare[colorIndex(color)] != home {
		return
	}

	f, g := NewSquare(5, rank), NewSquare(6, rank)
	d, c, bSq := NewSquare(3, rank), NewSquare(2, rank), NewSquare(1, rank)

	if b.Rights&kingside != 0 &&
		b.Squares[f].IsEmpty() && b.Squares[g].IsEmpty() &&
		!attackedBy(b, home, opp) && !attackedBy(b, f, opp) && !attackedBy(b, g, opp) {
		out.Add(NewCastle(home, g))
	}
	if b.Rights&queenside != 0 &&
		b.Squares[d].IsEmpty() && b.Squares[c].IsEmpty() && b.Squares[bSq].IsEmpty() &&
		!attackedBy(b, home, opp) && !attackedBy(b, d, opp) && !attackedBy(b, c, opp) {
		out.Add(NewCastle(home, c))
	}
}

// GenerateLegalMoves fills out with every legal move for the
// side to move. Each pseudo-legal candidate is tried with a fast
// make, probed for mover self-check, and fast-unmade; only survivors
// are kept, annotated with their captured piece and check flag as a
// byproduct of the fast-make probe (§4.3).
func GenerateLegalMoves(b *Board, out *MoveList) {
	out.Clear()
	var scratch MoveList
	pseudoGenerate(b, b.SideToMove, &scratch)

	mover := b.SideToMove
	for i := 0; i < scratch.Len(); i++ {
		m := scratch.Get(i)
		annotated, u := b.MakeFast(m)
		legal := !b.KingInCheck(mover)
		b.UnmakeFast(annotated, u)
		if legal {
			out.Add(annotated)
		}
	}
}
