package engine

import (
	"testing"

	"github.com/corvidbench/corvid/internal/board"
)

func mustParseFEN(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

// S1: standard opening position at depth 1 finds a normal developing
// move with a roughly balanced score.
func TestScenarioOpeningPosition(t *testing.T) {
	b := mustParseFEN(t, board.StartFEN)
	e := NewEngine(b, 1)
	result := e.IterativeDeepen(1, nil)
	if result.Move == board.NoMove {
		t.Fatalf("expected a move at the opening position")
	}
	if result.Score < -80 || result.Score > 80 {
		t.Errorf("opening score = %d, want roughly 0", result.Score)
	}
}

// S2: mate in one. Ra1-a8 delivers back-rank mate.
func TestScenarioMateInOne(t *testing.T) {
	b := mustParseFEN(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	e := NewEngine(b, 1)
	result := e.IterativeDeepen(2, nil)

	a1 := board.NewSquare(0, 1)
	a8 := board.NewSquare(0, 8)
	if result.Move.From() != a1 || result.Move.To() != a8 {
		t.Errorf("best move = %v, want a1-a8", result.Move)
	}
	if result.Score < MateScore-2 {
		t.Errorf("mate score = %d, want >= %d", result.Score, MateScore-2)
	}
}

// S3: bare kings, drawn by the material rule.
func TestScenarioKingVsKingIsDrawn(t *testing.T) {
	b := mustParseFEN(t, "8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	e := NewEngine(b, 1)
	result := e.IterativeDeepen(4, nil)
	if result.Score != 0 {
		t.Errorf("KvK score = %d, want 0", result.Score)
	}
}

// S4: stalemate at the root is an empty legal-move list.
func TestScenarioStalemate(t *testing.T) {
	b := mustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	var ml board.MoveList
	board.GenerateLegalMoves(b, &ml)
	if ml.Len() != 0 {
		t.Fatalf("expected no legal moves, got %d", ml.Len())
	}
	if b.InCheck() {
		t.Errorf("stalemate position should not be in check")
	}
}

// S6: a lone extra pawn in an otherwise balanced endgame scores
// strictly positive for its side.
func TestScenarioKPKIsWinning(t *testing.T) {
	b := mustParseFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	e := NewEngine(b, 1)
	result := e.IterativeDeepen(6, nil)
	if result.Score <= 0 {
		t.Errorf("KPK score = %d, want strictly positive", result.Score)
	}
}

// TestSearchIsFailHard checks invariant 7: search results respect the
// caller's window via the public IterativeDeepen entry point (which
// always supplies the full [-Infinity, Infinity] window at the root,
// so any returned score must land inside it).
func TestSearchIsFailHard(t *testing.T) {
	b := mustParseFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	e := NewEngine(b, 1)
	result := e.IterativeDeepen(3, nil)
	if result.Score < -Infinity || result.Score > Infinity {
		t.Errorf("score %d outside [-Infinity, Infinity]", result.Score)
	}
}

// TestSearchIsReproducible checks invariant 8: identical FEN, depth
// and Zobrist seed (the seed is a package-level constant, so simply
// identical inputs) reproduce the same best move, score and node
// count.
func TestSearchIsReproducible(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"

	b1 := mustParseFEN(t, fen)
	e1 := NewEngine(b1, 1)
	r1 := e1.IterativeDeepen(3, nil)

	b2 := mustParseFEN(t, fen)
	e2 := NewEngine(b2, 1)
	r2 := e2.IterativeDeepen(3, nil)

	if r1.Move != r2.Move || r1.Score != r2.Score || r1.Nodes != r2.Nodes {
		t.Errorf("search not reproducible: %+v vs %+v", r1, r2)
	}
}
