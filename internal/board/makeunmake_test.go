package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestMakeUnmakeRoundTrip checks invariant 1: undo(apply(p, m)) == p
// byte-for-byte, for every legal move from a representative set of
// positions.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		var ml MoveList
		GenerateLegalMoves(b, &ml)
		for i := 0; i < ml.Len(); i++ {
			m := ml.Get(i)
			before := *b
			snap := b.Snapshot()
			b.Make(m)
			b.Unmake(m, snap)
			after := *b
			if diff := cmp.Diff(before, after, cmp.AllowUnexported(Board{}, pieceList{})); diff != "" {
				t.Fatalf("fen %q move %v: unmake mismatch (-before +after):\n%s", fen, m, diff)
			}
		}
	}
}

// TestIncrementalHashMatchesRecomputation checks invariant 2.
func TestIncrementalHashMatchesRecomputation(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var ml MoveList
	GenerateLegalMoves(b, &ml)
	m := ml.Get(0)
	b.Make(m)
	if b.Hash != b.computeHash() {
		t.Errorf("incremental hash %016x != recomputed %016x", b.Hash, b.computeHash())
	}
}

// TestPieceListInvariant checks invariant 3: list length equals
// on-board piece count per color, and the reverse index round-trips.
func TestPieceListInvariant(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var ml MoveList
	GenerateLegalMoves(b, &ml)
	for i := 0; i < ml.Len() && i < 10; i++ {
		snap := b.Snapshot()
		b.Make(ml.Get(i))
		for _, c := range [2]Piece{White, Black} {
			list := &b.pieces[colorIndex(c)]
			count := 0
			for sq := Square(firstPlayable); sq <= lastPlayable; sq++ {
				if !squarePlayable[sq] {
					continue
				}
				p := b.Squares[sq]
				if p.Color() == c && !p.IsEmpty() {
					count++
					if list.squares[list.index[sq]] != sq {
						t.Errorf("reverse index broken for %v", sq)
					}
				}
			}
			if list.count != count {
				t.Errorf("color %v: list count %d != board count %d", c, list.count, count)
			}
		}
		b.Unmake(ml.Get(i), snap)
	}
}
