package board

import "testing"

func TestParseFENStartingPosition(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN(StartFEN) error: %v", err)
	}
	if b.SideToMove != White {
		t.Errorf("side to move = %v, want White", b.SideToMove)
	}
	if b.Rights != AllCastleRights {
		t.Errorf("rights = %v, want all four", b.Rights)
	}
	if b.EnPassant != NoSquare {
		t.Errorf("en passant = %v, want NoSquare", b.EnPassant)
	}
	if got := b.PieceCount(White); got != 16 {
		t.Errorf("white piece count = %d, want 16", got)
	}
	if got := b.PieceCount(Black); got != 16 {
		t.Errorf("black piece count = %d, want 16", got)
	}
	if b.Hash != b.computeHash() {
		t.Errorf("hash not consistent with from-scratch recomputation")
	}
}

func TestParseFENRoundTrip(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got := b.FEN(); got != StartFEN {
		t.Errorf("FEN() = %q, want %q", got, StartFEN)
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not a fen",
		"8/8/8/8/8/8/8/8 w KQkq - 0 1",       // no kings
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad color
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) succeeded, want error", fen)
		}
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for _, name := range []string{"a8", "h1", "e4", "d5"} {
		sq, err := ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", name, err)
		}
		if sq.String() != name {
			t.Errorf("ParseSquare(%q).String() = %q", name, sq.String())
		}
	}
}
