package engine

import (
	"testing"

	"github.com/corvidbench/corvid/internal/board"
)

func TestTranspositionTableRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(0x1234567890abcdef)
	m := board.NewMove(board.NewSquare(4, 2), board.NewSquare(4, 4))

	tt.Insert(key, 0, 4, ttExact, 37, m)
	res := tt.Lookup(key, 0, 4, -Infinity, Infinity)
	if !res.usable {
		t.Fatalf("expected an exact entry at equal depth to be usable")
	}
	if res.score != 37 {
		t.Errorf("score = %d, want 37", res.score)
	}
	if res.best != m {
		t.Errorf("best move = %v, want %v", res.best, m)
	}
}

// TestTranspositionTableShallowerEntryUnusable checks that a stored
// entry with less depth-remaining than the current probe is rejected
// as a usable bound, even though its best move is still surfaced for
// ordering.
func TestTranspositionTableShallowerEntryUnusable(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(0xdeadbeefcafef00d)
	m := board.NewMove(board.NewSquare(3, 2), board.NewSquare(3, 4))

	tt.Insert(key, 2, 4, ttExact, 10, m) // depth-remaining = 2
	res := tt.Lookup(key, 0, 6, -Infinity, Infinity) // needs depth-remaining = 6
	if res.usable {
		t.Errorf("expected shallower entry to be unusable for a deeper probe")
	}
	if res.best != m {
		t.Errorf("expected best move to still be surfaced for ordering, got %v", res.best)
	}
}

// TestTranspositionTableAlphaBoundRespectsWindow checks that an ALPHA
// (upper-bound, fail-low) entry is only usable when it already falls
// at or below the caller's alpha.
func TestTranspositionTableAlphaBoundRespectsWindow(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(0x1)
	tt.Insert(key, 0, 4, ttAlpha, -50, board.NoMove)

	if res := tt.Lookup(key, 0, 4, -100, 100); res.usable {
		t.Errorf("alpha bound -50 should not be usable against alpha=-100")
	}
	if res := tt.Lookup(key, 0, 4, -40, 100); !res.usable || res.score != -40 {
		t.Errorf("alpha bound -50 should be usable and clamp to alpha=-40, got usable=%v score=%d", res.usable, res.score)
	}
}

// TestTranspositionTableBetaBoundRespectsWindow checks the symmetric
// case for a BETA (lower-bound, fail-high) entry.
func TestTranspositionTableBetaBoundRespectsWindow(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(0x2)
	tt.Insert(key, 0, 4, ttBeta, 50, board.NoMove)

	if res := tt.Lookup(key, 0, 4, -100, 60); res.usable {
		t.Errorf("beta bound 50 should not be usable against beta=60")
	}
	if res := tt.Lookup(key, 0, 4, -100, 40); !res.usable || res.score != 40 {
		t.Errorf("beta bound 50 should be usable and clamp to beta=40, got usable=%v score=%d", res.usable, res.score)
	}
}

// TestTranspositionTableKeyMismatchIsMiss checks that a different key
// hashing to the same slot is reported as a miss (this table has no
// chaining, only a single-slot "always replace" policy).
func TestTranspositionTableKeyMismatchIsMiss(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Insert(0x1, 0, 4, ttExact, 10, board.NoMove)

	res := tt.Lookup(0x1|1<<40, 0, 4, -Infinity, Infinity)
	if res.usable {
		t.Errorf("expected a miss for an unstored key")
	}
}

func TestClampMateScorePreservesMateBoundDirection(t *testing.T) {
	score, flag, depth := clampMateScore(MateScore-3, ttExact, 5)
	if flag != ttBeta {
		t.Errorf("exact mate score should clamp to a beta bound, got %v", flag)
	}
	if int(score) != MateScore-3 {
		t.Errorf("mate score value should be preserved, got %d", score)
	}
	if int(depth) != 5 {
		t.Errorf("mate entries should be stored at the full horizon depth, got %d", depth)
	}
}
