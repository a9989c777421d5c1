package board

// Zobrist hash keys, generated once from a fixed-seed PRNG so that
// search results are reproducible run to run (§5, §9). En-passant
// file and castling rights are deliberately excluded from the key —
// see the open question recorded in DESIGN.md.
var zobristPiece [mailboxSize][64]uint64 // indexed by [square][piece code]
var zobristSideToMove uint64

// prng is a small xorshift64* generator, seeded deterministically.
type prng struct{ state uint64 }

func newPRNG(seed uint64) *prng { return &prng{state: seed} }

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func init() {
	rng := newPRNG(1)
	for sq := firstPlayable; sq <= lastPlayable; sq++ {
		for code := 0; code < 64; code++ {
			zobristPiece[sq][code] = rng.next()
		}
	}
	zobristSideToMove = rng.next()
}

// zobristFor returns the key contribution for a piece on a square.
func zobristFor(sq Square, p Piece) uint64 {
	return zobristPiece[sq][p]
}

// computeHash recomputes the Zobrist key from scratch by scanning
// both piece lists. Used to build the initial key from a FEN and,
// in development builds, to cross-check incremental updates.
func (b *Board) computeHash() uint64 {
	var h uint64
	for c := 0; c < 2; c++ {
		list := &b.pieces[c]
		for i := 0; i < list.count; i++ {
			sq := list.squares[i]
			h ^= zobristFor(sq, b.Squares[sq])
		}
	}
	if b.SideToMove == Black {
		h ^= zobristSideToMove
	}
	return h
}
