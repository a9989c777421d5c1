package engine

import "github.com/corvidbench/corvid/internal/board"

const nullMoveReduction = 2

// quiescence (C10): at a leaf and not in check, stand-pat then widen
// with captures and promotions; a quiet check-giving move is only
// probed for an immediate mate (no legal replies scores MateScore-ply)
// and is otherwise not searched. In check, every legal reply is
// searched (a mated side's recursive call finds zero legal moves and
// returns the mate score, bounded as usual by the caller's window).
func (e *Engine) quiescence(alpha, beta, ply int) int {
	e.Nodes++
	b := e.Board

	if b.HalfMoveClock >= 100 || b.RepetitionSloppy() {
		return 0
	}
	if ply >= MaxPly {
		return e.Evaluate(ply)
	}

	inCheck := b.InCheck()
	if !inCheck {
		standPat := e.Evaluate(ply)
		if standPat >= beta {
			return beta
		}
		if standPat < alpha-900 {
			return alpha
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var ml MoveList
	board.GenerateLegalMoves(b, &ml)
	if ml.Len() == 0 {
		if inCheck {
			return -(MateScore - ply)
		}
		return 0
	}
	OrderMoves(b, &ml, board.NoMove, board.NoMove)

	end := ml.Len()
	if !inCheck {
		end = ml.LastCheck
	}

	for i := 0; i < end; i++ {
		m := ml.Get(i)
		snap := b.Snapshot()
		b.Make(m)
		var score int
		if !inCheck && i >= ml.LastCapture {
			var replies MoveList
			board.GenerateLegalMoves(b, &replies)
			b.Unmake(m, snap)
			if replies.Len() != 0 {
				continue
			}
			score = MateScore - ply
		} else {
			score = -e.quiescence(-beta, -alpha, ply+1)
			b.Unmake(m, snap)
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// placementValue is the positional (not material) score eval.go's
// center table assigns to a square, used by the forced-move extension
// heuristic in §4.6.
func placementValue(sq board.Square) int { return centerTable[squareIndex64(sq)] }

// search (C11) is the fail-hard negamax alpha-beta driver.
func (e *Engine) search(alpha, beta, ply, depthMax int, nullOK bool, inCheck bool, ext int) int {
	e.Nodes++
	b := e.Board

	if b.HalfMoveClock >= 100 || b.RepetitionSloppy() {
		return 0
	}
	if inCheck {
		depthMax++
	}

	ttRes := e.TT.Lookup(b.Hash, ply, depthMax, alpha, beta)
	if ttRes.usable {
		return ttRes.score
	}
	hashMove := ttRes.best
	if hashMove != board.NoMove {
		e.killer[ply] = hashMove
	}

	if ply >= depthMax {
		return e.quiescence(alpha, beta, ply)
	}
	if ply >= MaxPly {
		return e.Evaluate(ply)
	}

	var ml MoveList
	board.GenerateLegalMoves(b, &ml)
	if ml.Len() == 0 {
		if inCheck {
			return -(MateScore - ply)
		}
		return 0
	}

	if ml.Len() <= 2 && ply < e.extBudget {
		depthMax++
	} else if ml.Len() == 1 {
		m := ml.Get(0)
		if placementValue(m.From()) >= placementValue(m.To()) {
			depthMax++
		}
	}

	if !inCheck && nullOK && ml.Len() >= 4 {
		undo := b.MakeNull()
		score := -e.search(-beta, -beta+1, ply+1, depthMax-nullMoveReduction, false, false, ext)
		b.UnmakeNull(undo)
		if score >= beta {
			return beta
		}
	}

	OrderMoves(b, &ml, hashMove, e.killer[ply])

	var pvMove board.Move
	improvedAlpha := false

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		snap := b.Snapshot()
		b.Make(m)
		givesCheck := m.IsCheck()

		var score int
		if i == 0 {
			score = -e.search(-beta, -alpha, ply+1, depthMax, true, givesCheck, ext+1)
		} else {
			score = -e.search(-alpha-1, -alpha, ply+1, depthMax, true, givesCheck, ext+1)
			if score > alpha && score < beta {
				score = -e.search(-beta, -alpha, ply+1, depthMax, true, givesCheck, ext+1)
			}
		}
		b.Unmake(m, snap)

		if score >= beta {
			e.TT.Insert(b.Hash, ply, depthMax, ttBeta, beta, m)
			if !m.IsCapture() {
				e.killer[ply] = m
			}
			return beta
		}
		if score > alpha {
			alpha = score
			pvMove = m
			improvedAlpha = true
		}
	}

	if improvedAlpha {
		e.TT.Insert(b.Hash, ply, depthMax, ttExact, alpha, pvMove)
	} else {
		e.TT.Insert(b.Hash, ply, depthMax, ttAlpha, alpha, pvMove)
	}
	return alpha
}

// IterationResult reports one completed depth of iterative deepening.
type IterationResult struct {
	Depth         int
	Move          board.Move
	Score         int
	RootMoveCount int
	SelDepth      int
	Nodes         uint64
}

type rootMove struct {
	move  board.Move
	score int
}

// IterativeDeepen runs §4.8's driver for d=1..maxDepth, calling
// onIteration after each completed depth. It performs no wall-clock
// timing of its own — that, like nodes-per-second printing, is an
// external collaborator's job, which keeps the core reproducible.
func (e *Engine) IterativeDeepen(maxDepth int, onIteration func(IterationResult)) IterationResult {
	e.Reset()
	b := e.Board
	var roots []rootMove
	var ml MoveList
	board.GenerateLegalMoves(b, &ml)
	for i := 0; i < ml.Len(); i++ {
		roots = append(roots, rootMove{move: ml.Get(i)})
	}

	var last IterationResult
	if len(roots) == 0 {
		return last
	}

	for d := 1; d <= maxDepth; d++ {
		e.extBudget = 2*d + 2
		alpha, beta := -Infinity, Infinity
		bestScore := -Infinity

		for i := range roots {
			m := roots[i].move
			snap := b.Snapshot()
			b.Make(m)
			score := -e.search(-beta, -alpha, 1, d, false, m.IsCheck(), 0)
			b.Unmake(m, snap)

			roots[i].score = score
			if score > bestScore {
				bestScore = score
			}
		}

		bubbleSortRootMoves(roots)

		last = IterationResult{
			Depth:         d,
			Move:          roots[0].move,
			Score:         bestScore,
			RootMoveCount: len(roots),
			SelDepth:      e.SelDepth,
			Nodes:         e.Nodes,
		}
		if onIteration != nil {
			onIteration(last)
		}
	}
	return last
}

// bubbleSortRootMoves stably sorts roots by score descending, per the
// redesign notes' choice to keep the reference's bubble pass rather
// than swap in a different sort with different tie-breaking.
func bubbleSortRootMoves(roots []rootMove) {
	for i := 0; i < len(roots)-1; i++ {
		swapped := false
		for j := 0; j < len(roots)-1-i; j++ {
			if roots[j+1].score > roots[j].score {
				roots[j], roots[j+1] = roots[j+1], roots[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}
