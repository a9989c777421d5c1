package engine

import "github.com/corvidbench/corvid/internal/board"

// Move ordering (C7): bucket into [hash-best, promotion, capture,
// check-giving, quiet] and place them stably in that order. Captures
// are partially sorted by MVV/LVA over their first few entries; the
// hash move and killer move, when present anywhere in the list, are
// pulled to the head. LastCapture/LastCheck are left as cursors on ml
// so quiescence can scan a prefix instead of the whole list.

// coreEqual compares the squares/promotion/castle/ep identity of two
// moves, ignoring the captured-piece and check bits that MakeFast fills
// in during legal generation (those can differ bit-for-bit between a move
// stored in the TT and its freshly-generated twin even though they
// are the same move).
func coreEqual(a, b Move) bool {
	return a.From() == b.From() && a.To() == b.To() &&
		a.PromotionPiece() == b.PromotionPiece() &&
		a.IsCastle() == b.IsCastle() && a.IsEnPassant() == b.IsEnPassant()
}

func extract(list *[]Move, target Move) (Move, bool) {
	for i, m := range *list {
		if coreEqual(m, target) {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return m, true
		}
	}
	return board.NoMove, false
}

func capturesLess(b *board.Board, x, y Move) bool {
	vx, vy := x.CapturedPiece().Value(), y.CapturedPiece().Value()
	if vx != vy {
		return vx > vy
	}
	ax, ay := b.PieceAt(x.From()).Value(), b.PieceAt(y.From()).Value()
	return ax < ay
}

// sortCapturesMVVLVA partially selection-sorts the first few entries
// of caps by victim value descending, attacker value ascending — the
// only positions quiescence and the root ordering actually care about.
func sortCapturesMVVLVA(b *board.Board, caps []Move) {
	limit := len(caps)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		best := i
		for j := i + 1; j < len(caps); j++ {
			if capturesLess(b, caps[j], caps[best]) {
				best = j
			}
		}
		caps[i], caps[best] = caps[best], caps[i]
	}
}

// OrderMoves reorders ml in place for b, seeding the head with
// hashMove and killerMove when either appears in the list.
func OrderMoves(b *board.Board, ml *MoveList, hashMove, killerMove Move) {
	n := ml.Len()
	promos := make([]Move, 0, n)
	caps := make([]Move, 0, n)
	checks := make([]Move, 0, n)
	quiets := make([]Move, 0, n)

	for i := 0; i < n; i++ {
		m := ml.Get(i)
		switch {
		case m.IsPromotion():
			promos = append(promos, m)
		case m.IsCapture():
			caps = append(caps, m)
		case m.IsCheck():
			checks = append(checks, m)
		default:
			quiets = append(quiets, m)
		}
	}
	sortCapturesMVVLVA(b, caps)

	var head []Move
	if hashMove != board.NoMove {
		if m, ok := extractFromAny(hashMove, &promos, &caps, &checks, &quiets); ok {
			head = append(head, m)
		}
	}
	if killerMove != board.NoMove && !coreEqual(killerMove, hashMove) {
		if m, ok := extractFromAny(killerMove, &promos, &caps, &checks, &quiets); ok {
			head = append(head, m)
		}
	}

	idx := 0
	for _, m := range head {
		ml.Set(idx, m)
		idx++
	}
	for _, m := range promos {
		ml.Set(idx, m)
		idx++
	}
	for _, m := range caps {
		ml.Set(idx, m)
		idx++
	}
	ml.LastCapture = idx
	for _, m := range checks {
		ml.Set(idx, m)
		idx++
	}
	ml.LastCheck = idx
	for _, m := range quiets {
		ml.Set(idx, m)
		idx++
	}
}

func extractFromAny(target Move, lists ...*[]Move) (Move, bool) {
	for _, list := range lists {
		if m, ok := extract(list, target); ok {
			return m, true
		}
	}
	return board.NoMove, false
}
