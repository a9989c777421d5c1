package engine

import (
	"testing"

	"github.com/corvidbench/corvid/internal/board"
)

// TestOrderMovesPutsHashMoveFirst checks that a hash move present in
// the list is always placed at index 0, regardless of its own category.
func TestOrderMovesPutsHashMoveFirst(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var ml board.MoveList
	board.GenerateLegalMoves(b, &ml)
	if ml.Len() == 0 {
		t.Fatal("expected legal moves at the opening position")
	}

	hashMove := ml.Get(ml.Len() - 1)
	OrderMoves(b, &ml, hashMove, board.NoMove)

	got := ml.Get(0)
	if got.From() != hashMove.From() || got.To() != hashMove.To() {
		t.Errorf("hash move not ordered first: got %v, want %v", got, hashMove)
	}
}

// TestOrderMovesGroupsCapturesBeforeQuiets checks that LastCapture and
// LastCheck cursors bound a prefix containing every promotion/capture
// and check-giving move, with quiets strictly after.
func TestOrderMovesGroupsCapturesBeforeQuiets(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var ml board.MoveList
	board.GenerateLegalMoves(b, &ml)
	OrderMoves(b, &ml, board.NoMove, board.NoMove)

	for i := 0; i < ml.LastCapture; i++ {
		m := ml.Get(i)
		if !m.IsPromotion() && !m.IsCapture() {
			t.Errorf("move %v at index %d (< LastCapture=%d) is neither promotion nor capture", m, i, ml.LastCapture)
		}
	}
	for i := ml.LastCheck; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.IsPromotion() || m.IsCapture() || m.IsCheck() {
			t.Errorf("move %v at index %d (>= LastCheck=%d) should be a plain quiet", m, i, ml.LastCheck)
		}
	}
}

// TestSortCapturesMVVLVAOrdersByVictimValueDescending checks that
// among sorted captures, the higher-value victim comes first.
func TestSortCapturesMVVLVAOrdersByVictimValueDescending(t *testing.T) {
	fen := "4k3/8/3p4/1r1R4/2P5/8/8/4K3 w - - 0 1"
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var ml board.MoveList
	board.GenerateLegalMoves(b, &ml)

	var caps []Move
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.IsCapture() {
			caps = append(caps, m)
		}
	}
	if len(caps) < 2 {
		t.Fatalf("expected at least two captures, got %d", len(caps))
	}
	sortCapturesMVVLVA(b, caps)
	for i := 0; i+1 < len(caps) && i < 2; i++ {
		if caps[i].CapturedPiece().Value() < caps[i+1].CapturedPiece().Value() {
			t.Errorf("captures not sorted by victim value descending: %v (%d) before %v (%d)",
				caps[i], caps[i].CapturedPiece().Value(), caps[i+1], caps[i+1].CapturedPiece().Value())
		}
	}
}
