package board

import "fmt"

// CastleRights packs the four castling-availability bits.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastleRights  CastleRights = 0
	AllCastleRights              = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// String renders castling rights in FEN form, e.g. "KQkq" or "-".
func (cr CastleRights) String() string {
	if cr == NoCastleRights {
		return "-"
	}
	s := ""
	if cr&WhiteKingside != 0 {
		s += "K"
	}
	if cr&WhiteQueenside != 0 {
		s += "Q"
	}
	if cr&BlackKingside != 0 {
		s += "k"
	}
	if cr&BlackQueenside != 0 {
		s += "q"
	}
	return s
}

// repetitionRingSize bounds the circular Zobrist-key history (§3).
const repetitionRingSize = 1024

// pieceList is a sparse per-color list of occupied squares with an
// O(1)-maintainable reverse index (C2). Removal swaps the last entry
// into the vacated slot and updates the reverse map.
type pieceList struct {
	squares [16]Square
	index   [mailboxSize]int8 // square -> list index, -1 if absent
	count   int
}

func newPieceList() pieceList {
	pl := pieceList{}
	for i := range pl.index {
		pl.index[i] = -1
	}
	return pl
}

func (pl *pieceList) add(sq Square) {
	pl.squares[pl.count] = sq
	pl.index[sq] = int8(pl.count)
	pl.count++
}

func (pl *pieceList) remove(sq Square) {
	i := pl.index[sq]
	last := pl.count - 1
	lastSq := pl.squares[last]
	pl.squares[i] = lastSq
	pl.index[lastSq] = i
	pl.index[sq] = -1
	pl.count--
}

func (pl *pieceList) move(from, to Square) {
	i := pl.index[from]
	pl.squares[i] = to
	pl.index[to] = i
	pl.index[from] = -1
}

// colorIndex maps a color bit to a 0/1 slot for per-color arrays.
func colorIndex(c Piece) int {
	if c == Black {
		return 1
	}
	return 0
}

// Board is the 10x12 mailbox board plus all derived search state:
// sparse piece lists, Zobrist key, ply/repetition history, the
// fifty-move counter and cached king squares (C1).
type Board struct {
	Squares [mailboxSize]Piece

	pieces [2]pieceList

	SideToMove     Piece // White or Black
	Rights         CastleRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int

	Hash uint64

	Ply     int
	history [repetitionRingSize]uint64

	KingSquare [2]Square
}

// NewBoard returns an empty board with the sentinel ring populated
// and no pieces placed.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.Squares {
		if squarePlayable[i] {
			b.Squares[i] = Empty
		} else {
			b.Squares[i] = Full
		}
	}
	b.pieces[0] = newPieceList()
	b.pieces[1] = newPieceList()
	b.SideToMove = White
	b.Rights = NoCastleRights
	b.EnPassant = NoSquare
	b.KingSquare[0] = NoSquare
	b.KingSquare[1] = NoSquare
	return b
}

// Copy returns a deep copy of the board (piece lists and history are
// arrays, so a plain struct copy suffices).
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// PieceAt returns the piece occupying sq (Empty if vacant).
func (b *Board) PieceAt(sq Square) Piece { return b.Squares[sq] }

// setPiece places a piece on an empty square, updating the piece
// list and cached king square. Does not touch the Zobrist key.
func (b *Board) setPiece(sq Square, p Piece) {
	b.Squares[sq] = p
	b.pieces[colorIndex(p.Color())].add(sq)
	if p.Kind() == King {
		b.KingSquare[colorIndex(p.Color())] = sq
	}
}

// removePiece clears an occupied square and returns what was there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.Squares[sq]
	b.Squares[sq] = Empty
	b.pieces[colorIndex(p.Color())].remove(sq)
	return p
}

// relocatePiece moves a piece between two empty/occupied squares
// without touching the destination's prior occupant (caller must
// have already removed any capture).
func (b *Board) relocatePiece(from, to Square) {
	p := b.Squares[from]
	b.Squares[to] = p
	b.Squares[from] = Empty
	b.pieces[colorIndex(p.Color())].move(from, to)
	if p.Kind() == King {
		b.KingSquare[colorIndex(p.Color())] = to
	}
}

// PieceCount returns the number of pieces of the given color bit.
func (b *Board) PieceCount(color Piece) int {
	return b.pieces[colorIndex(color)].count
}

// Pieces calls fn for every square occupied by a piece of color.
func (b *Board) Pieces(color Piece, fn func(sq Square, p Piece)) {
	list := &b.pieces[colorIndex(color)]
	for i := 0; i < list.count; i++ {
		sq := list.squares[i]
		fn(sq, b.Squares[sq])
	}
}

// recordRepetition advances Ply and appends the current hash to the
// bounded history ring, keyed by the post-increment ply so that
// RepetitionSloppy's same-side-to-move comparisons land on matching
// parity. Recording is skipped once the ring is full, per §4.2 — only
// relevant at absurd search depths, never at the engine's bounded
// MaxPly.
func (b *Board) recordRepetition() {
	b.Ply++
	if b.Ply < repetitionRingSize {
		b.history[b.Ply] = b.Hash
	}
}

// RepetitionSloppy reports a repeat as soon as the current key
// matches any key 2k plies back, k <= fiftyHalfmoves/2 (§4.6). This
// surfaces forcible repetitions earlier than strict threefold, by
// design — preserved as an intentional property of the benchmark.
func (b *Board) RepetitionSloppy() bool {
	limit := b.HalfMoveClock / 2
	for k := 1; k <= limit; k++ {
		idx := b.Ply - 2*k
		if idx < 0 || idx >= repetitionRingSize {
			break
		}
		if b.history[idx] == b.Hash {
			return true
		}
	}
	return false
}

// String renders the board for debugging.
func (b *Board) String() string {
	s := "\n"
	for sq := firstPlayable; sq <= lastPlayable; sq++ {
		if !squarePlayable[sq] {
			continue
		}
		s += b.Squares[sq].String() + " "
		if squareFile[sq] == 7 {
			s += fmt.Sprintf(" %d\n", squareRank[sq])
		}
	}
	s += "a b c d e f g h\n"
	s += fmt.Sprintf("side=%v rights=%v ep=%v hash=%016x\n", b.SideToMove, b.Rights, b.EnPassant, b.Hash)
	return s
}
