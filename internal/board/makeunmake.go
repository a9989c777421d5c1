package board

// Make/unmake (C5). Two entry points with different parameter sets,
// per the redesign notes, rather than one call with a boolean flag.
//
// MakeFast/UnmakeFast mutate only the board array and cached king
// squares. They are used exclusively by the generator's self-check
// filter, and as a side effect fill in the move's captured-piece and
// check-flag bits by probing the opponent king once the move is on
// the board — so the annotated move coming out of generation already
// carries both, and full-mode Make never has to recompute them.
//
// Make/Unmake additionally toggle Zobrist bits, update the sparse
// piece lists, castling rights, en-passant file, the fifty-move
// counter and the repetition ring.

type fastUndo struct {
	moved      Piece
	captured   Piece
	capturedSq Square
	promoted   bool
	isCastle   bool
	rookFrom   Square
	rookTo     Square
	rookPiece  Piece
	prevKing   Square
}

// MakeFast applies m to the board, updating only Squares and
// KingSquare, and returns the undo token plus m annotated with its
// captured piece and check flag.
func (b *Board) MakeFast(m Move) (Move, fastUndo) {
	from, to := m.From(), m.To()
	moved := b.Squares[from]
	mover := moved.Color()

	var u fastUndo
	u.moved = moved
	u.prevKing = NoSquare

	switch {
	case m.IsEnPassant():
		capSq := NewSquare(to.File(), from.Rank())
		u.capturedSq = capSq
		u.captured = b.Squares[capSq]
		b.Squares[capSq] = Empty
		m = m.withCaptured(u.captured)
	default:
		u.capturedSq = NoSquare
		u.captured = b.Squares[to]
		m = m.withCaptured(u.captured)
	}

	b.Squares[from] = Empty
	if m.IsPromotion() {
		b.Squares[to] = NewPiece(mover, m.PromotionPiece().Kind())
		u.promoted = true
	} else {
		b.Squares[to] = moved
	}

	if m.IsCastle() {
		u.isCastle = true
		u.rookFrom = castleRookFrom[to]
		u.rookTo = castleRookTo[to]
		u.rookPiece = b.Squares[u.rookFrom]
		b.Squares[u.rookTo] = u.rookPiece
		b.Squares[u.rookFrom] = Empty
	}

	if moved.Kind() == King {
		ci := colorIndex(mover)
		u.prevKing = b.KingSquare[ci]
		b.KingSquare[ci] = to
	}

	check := b.KingInCheck(opposite(mover))
	m = m.withCheck(check)
	return m, u
}

// UnmakeFast restores the board to its pre-MakeFast state.
func (b *Board) UnmakeFast(m Move, u fastUndo) {
	from, to := m.From(), m.To()
	mover := u.moved.Color()

	if u.isCastle {
		b.Squares[u.rookFrom] = u.rookPiece
		b.Squares[u.rookTo] = Empty
	}

	b.Squares[from] = u.moved
	b.Squares[to] = Empty
	if m.IsEnPassant() {
		b.Squares[u.capturedSq] = u.captured
	} else if u.captured != Empty {
		b.Squares[to] = u.captured
	}

	if u.moved.Kind() == King {
		b.KingSquare[colorIndex(mover)] = u.prevKing
	}
}

// Undo carries everything a full-mode Make mutates besides the board
// itself, so Unmake can restore it exactly (§4.2): the pre-move
// castling rights, en-passant file, fifty-move counter, ply and
// Zobrist key, plus the piece lists and the repetition-ring slot that
// Make overwrites.
type Undo struct {
	Rights        CastleRights
	EnPassant     Square
	HalfMoveClock int
	Ply           int
	Hash          uint64

	pieces      [2]pieceList
	historySlot uint64
}

// Snapshot captures the state Unmake will need to restore.
func (b *Board) Snapshot() Undo {
	u := Undo{Rights: b.Rights, EnPassant: b.EnPassant, HalfMoveClock: b.HalfMoveClock, Ply: b.Ply, Hash: b.Hash, pieces: b.pieces}
	if b.Ply+1 < repetitionRingSize {
		u.historySlot = b.history[b.Ply+1]
	}
	return u
}

// Make applies an already fast-made, fully annotated move (captured
// piece and check flag already set by MakeFast) in full mode: it
// updates piece lists, the Zobrist key, castling rights, the
// en-passant file, the fifty-move counter and the repetition ring.
func (b *Board) Make(m Move) {
	from, to := m.From(), m.To()
	moved := b.Squares[from]
	mover := moved.Color()
	captured := m.CapturedPiece()

	if m.IsEnPassant() {
		capSq := NewSquare(to.File(), from.Rank())
		b.Hash ^= zobristFor(capSq, captured)
		b.removePiece(capSq)
	} else if captured != Empty {
		b.Hash ^= zobristFor(to, captured)
		b.removePiece(to)
	}

	b.Hash ^= zobristFor(from, moved)
	b.relocatePiece(from, to)
	if m.IsPromotion() {
		promoted := NewPiece(mover, m.PromotionPiece().Kind())
		b.removePiece(to)
		b.setPiece(to, promoted)
		b.Hash ^= zobristFor(to, promoted)
	} else {
		b.Hash ^= zobristFor(to, moved)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookFrom[to], castleRookTo[to]
		rook := b.Squares[rookFrom]
		b.Hash ^= zobristFor(rookFrom, rook)
		b.relocatePiece(rookFrom, rookTo)
		b.Hash ^= zobristFor(rookTo, rook)
	}

	if r, ok := rightsForKingHome[from]; ok {
		b.Rights &^= r
	}
	if r, ok := rightForRookHome[from]; ok {
		b.Rights &^= r
	}
	if r, ok := rightForRookHome[to]; ok {
		b.Rights &^= r
	}

	b.EnPassant = NoSquare
	if moved.Kind() == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		b.EnPassant = NewSquare(from.File(), (from.Rank()+to.Rank())/2)
	}

	if moved.Kind() == Pawn || captured != Empty {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}
	if mover == Black {
		b.FullMoveNumber++
	}

	b.Hash ^= zobristSideToMove
	b.SideToMove = opposite(mover)
	b.recordRepetition()

	if debugAssertions {
		if b.Hash != b.computeHash() {
			panic("board: incremental Zobrist key diverged from recomputation")
		}
	}
}

// Unmake reverses a full-mode Make using the pre-move snapshot u.
func (b *Board) Unmake(m Move, u Undo) {
	from, to := m.From(), m.To()
	mover := opposite(b.SideToMove)
	captured := m.CapturedPiece()

	b.SideToMove = mover

	if m.IsCastle() {
		rookFrom, rookTo := castleRookFrom[to], castleRookTo[to]
		b.relocatePiece(rookTo, rookFrom)
	}

	if m.IsPromotion() {
		b.removePiece(to)
		b.setPiece(to, NewPiece(mover, Pawn))
		b.relocatePiece(to, from)
	} else {
		b.relocatePiece(to, from)
	}

	if m.IsEnPassant() {
		capSq := NewSquare(to.File(), from.Rank())
		b.setPiece(capSq, captured)
	} else if captured != Empty {
		b.setPiece(to, captured)
	}

	b.Rights = u.Rights
	b.EnPassant = u.EnPassant
	b.HalfMoveClock = u.HalfMoveClock
	b.Ply = u.Ply
	b.Hash = u.Hash
	if mover == Black {
		b.FullMoveNumber--
	}
	b.pieces = u.pieces
	if u.Ply+1 < repetitionRingSize {
		b.history[u.Ply+1] = u.historySlot
	}
}

// MakeNull passes the move without moving a piece, for null-move
// pruning: it clears the en-passant file, flips the side-to-move key
// and records the position in the repetition ring, same as Make.
func (b *Board) MakeNull() Undo {
	u := b.Snapshot()
	b.EnPassant = NoSquare
	b.Hash ^= zobristSideToMove
	b.SideToMove = opposite(b.SideToMove)
	b.recordRepetition()
	return u
}

// UnmakeNull reverses MakeNull.
func (b *Board) UnmakeNull(u Undo) {
	b.SideToMove = opposite(b.SideToMove)
	b.Rights = u.Rights
	b.EnPassant = u.EnPassant
	b.HalfMoveClock = u.HalfMoveClock
	b.Ply = u.Ply
	b.Hash = u.Hash
}
