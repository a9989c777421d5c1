package board

// Home squares and rook corners, used by castling legality, make/unmake,
// and castling-rights bookkeeping.
var (
	whiteKingHome, blackKingHome Square

	// castleRookFrom/To are keyed by the king's destination square.
	castleRookFrom = map[Square]Square{}
	castleRookTo   = map[Square]Square{}

	// rightForRookHome revokes the matching right when a rook moves
	// away from, or is captured on, its home square.
	rightForRookHome = map[Square]CastleRights{}

	// rightsForKingHome revokes both of a color's rights when its
	// king moves away from its home square.
	rightsForKingHome = map[Square]CastleRights{}
)

func init() {
	whiteKingHome = NewSquare(4, 1)
	blackKingHome = NewSquare(4, 8)

	wg, wc := NewSquare(6, 1), NewSquare(2, 1)
	bg, bc := NewSquare(6, 8), NewSquare(2, 8)
	wh, wf, wa, wd := NewSquare(7, 1), NewSquare(5, 1), NewSquare(0, 1), NewSquare(3, 1)
	bh, bf, ba, bd := NewSquare(7, 8), NewSquare(5, 8), NewSquare(0, 8), NewSquare(3, 8)

	castleRookFrom[wg] = wh
	castleRookTo[wg] = wf
	castleRookFrom[wc] = wa
	castleRookTo[wc] = wd
	castleRookFrom[bg] = bh
	castleRookTo[bg] = bf
	castleRookFrom[bc] = ba
	castleRookTo[bc] = bd

	rightForRookHome[wh] = WhiteKingside
	rightForRookHome[wa] = WhiteQueenside
	rightForRookHome[bh] = BlackKingside
	rightForRookHome[ba] = BlackQueenside

	rightsForKingHome[whiteKingHome] = WhiteKingside | WhiteQueenside
	rightsForKingHome[blackKingHome] = BlackKingside | BlackQueenside
}
