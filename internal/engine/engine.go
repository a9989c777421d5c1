// Package engine implements the search core: move ordering, the
// transposition table, static evaluation, quiescence and the negamax
// alpha-beta driver, all wrapped in an Engine value owned by the
// caller in place of the global mutable state the design notes call
// out for re-architecture.
package engine

import "github.com/corvidbench/corvid/internal/board"

// Move and Square are re-exported so callers of this package rarely
// need to import internal/board directly for plumbing.
type Move = board.Move
type Square = board.Square
type MoveList = board.MoveList

const (
	// MaxPly bounds recursion depth, protecting the call stack (§5).
	MaxPly = 128

	// Infinity is the root search window's initial bound.
	Infinity = 32767

	// MateScore is the score assigned to the side delivering mate on
	// the move that delivers it (adjusted by ply elsewhere).
	MateScore = 32500

	// mateThreshold marks scores that represent a forced mate rather
	// than a material evaluation, for TT clamping purposes (§4.4).
	mateThreshold = 32000
)

// Engine owns everything a search call mutates: the board, the
// transposition table, and the per-ply killer-move table. Search
// methods take an exclusive reference to it; there is no package-level
// mutable state.
type Engine struct {
	Board *board.Board
	TT    *TranspositionTable

	killer    [MaxPly]Move
	extBudget int

	Nodes    uint64
	SelDepth int
}

// NewEngine builds an engine around b with a transposition table sized
// to ttSizeMiB megabytes.
func NewEngine(b *board.Board, ttSizeMiB int) *Engine {
	return &Engine{
		Board: b,
		TT:    NewTranspositionTable(ttSizeMiB),
	}
}

// Reset clears node/seldepth counters and the killer table ahead of a
// fresh top-level search; the transposition table is left intact so
// later iterations of iterative deepening benefit from earlier ones.
func (e *Engine) Reset() {
	e.Nodes = 0
	e.SelDepth = 0
	for i := range e.killer {
		e.killer[i] = board.NoMove
	}
}

func (e *Engine) bumpSelDepth(ply int) {
	if ply > e.SelDepth {
		e.SelDepth = ply
	}
}
