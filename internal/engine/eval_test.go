package engine

import (
	"testing"

	"github.com/corvidbench/corvid/internal/board"
)

// TestEvaluationSymmetry checks invariant 6: swapping colors and
// mirroring the board negates the score. Both FENs below keep white
// to move, so Evaluate returns the raw white-perspective score
// directly in each case, with no side-to-move negation to account for.
func TestEvaluationSymmetry(t *testing.T) {
	b1, err := board.ParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	b2, err := board.ParseFEN("4k3/4p3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	e1 := NewEngine(b1, 1)
	e2 := NewEngine(b2, 1)
	s1 := e1.Evaluate(0)
	s2 := e2.Evaluate(0)

	if s1 != -s2 {
		t.Errorf("evaluation not symmetric: eval(pos1)=%d, eval(mirrored)=%d, want %d", s1, s2, -s2)
	}
}

func TestEvaluationStartingPositionIsBalanced(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	e := NewEngine(b, 1)
	score := e.Evaluate(0)
	if score < -5 || score > 5 {
		t.Errorf("starting position score = %d, want near 0", score)
	}
}
