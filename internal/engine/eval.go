package engine

import "github.com/corvidbench/corvid/internal/board"

// Evaluation (C9): a static score from white's perspective, negated on
// return when black is to move. Every sub-score below is computed
// from the real board/piece lists; only the pawn-structure term
// consults the precomputed 256-entry table (pawnhash.go).

// centerTable rewards central squares; indexed by (rank-1)*8+file.
var centerTable = [64]int{
	-4, -2, 0, 0, 0, 0, -2, -4,
	-2, 0, 2, 2, 2, 2, 0, -2,
	0, 2, 4, 4, 4, 4, 2, 0,
	0, 2, 4, 6, 6, 4, 2, 0,
	0, 2, 4, 6, 6, 4, 2, 0,
	0, 2, 4, 4, 4, 4, 2, 0,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-4, -2, 0, 0, 0, 0, -2, -4,
}

func squareIndex64(sq board.Square) int { return (sq.Rank()-1)*8 + sq.File() }

func chebyshev(a, b board.Square) int {
	df := a.File() - b.File()
	dr := a.Rank() - b.Rank()
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// relativeRank mirrors a rank so both colors share bonus tables keyed
// "toward the enemy": white rank 7 and black rank 2 both map to 7.
func relativeRank(color board.Piece, rank int) int {
	if color == board.White {
		return rank
	}
	return 9 - rank
}

func homeRank(color board.Piece) int {
	if color == board.White {
		return 1
	}
	return 8
}

func forwardStep(color board.Piece) int {
	if color == board.White {
		return 1
	}
	return -1
}

// Evaluate returns a fail-hard-independent static score for the
// current position from the side-to-move's perspective, bumping
// selective depth as a side effect (§4.5).
func (e *Engine) Evaluate(ply int) int {
	e.bumpSelDepth(ply)
	b := e.Board
	score := evaluateWhitePerspective(b)
	if b.SideToMove == board.Black {
		return -score
	}
	return score
}

func evaluateWhitePerspective(b *board.Board) int {
	whiteCount := b.PieceCount(board.White)
	blackCount := b.PieceCount(board.Black)
	n := whiteCount + blackCount

	if n <= 5 {
		if isDrawnMaterial(b) {
			return 0
		}
	}

	score := material(b, board.White) - material(b, board.Black)
	score += pawnStructureTable[pawnFileMask(b, board.White)] - pawnStructureTable[pawnFileMask(b, board.Black)]
	score += passedPawnScore(b, board.White) - passedPawnScore(b, board.Black)
	score += bishopScore(b, board.White) - bishopScore(b, board.Black)
	score += knightScore(b, board.White) - knightScore(b, board.Black)
	score += rookQueenScore(b, board.White) - rookQueenScore(b, board.Black)

	if n >= 6 && n <= 18 {
		score += developKingBonus(b, board.White) - developKingBonus(b, board.Black)
	}
	if n >= 24 {
		score += kingSafetyScore(b, board.White) - kingSafetyScore(b, board.Black)
	}
	return score
}

func material(b *board.Board, color board.Piece) int {
	total := 0
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		total += p.Value()
	})
	return total
}

func pawnFileMask(b *board.Board, color board.Piece) int {
	mask := 0
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		if p.Kind() == board.Pawn {
			mask |= 1 << sq.File()
		}
	})
	return mask
}

// pawnAheadOnFile reports whether an enemy pawn occupies file f on a
// rank strictly beyond rank (in own's forward direction), which blocks a passed-pawn
// claim for a pawn of color `own` standing at `rank`.
func pawnAheadOnFile(b *board.Board, own board.Piece, f, rank int) bool {
	enemy := board.White
	if own == board.White {
		enemy = board.Black
	}
	step := forwardStep(own)
	for r := rank + step; r >= 1 && r <= 8; r += step {
		p := b.PieceAt(board.NewSquare(f, r))
		if p.Kind() == board.Pawn && p.Color() == enemy {
			return true
		}
	}
	return false
}

// behindFileSupport scans directly behind a pawn for the first
// occupied square and reports a bonus if it is a friendly straight
// slider, a penalty if it is an enemy one, else zero.
func behindFileSupport(b *board.Board, sq board.Square, color board.Piece) int {
	step := -forwardStep(color)
	for r := sq.Rank() + step; r >= 1 && r <= 8; r += step {
		p := b.PieceAt(board.NewSquare(sq.File(), r))
		if p.IsEmpty() {
			continue
		}
		if !p.IsStraightSlider() {
			return 0
		}
		if p.Color() == color {
			return 10
		}
		return -10
	}
	return 0
}

var passedPawnBonusByRelRank = map[int]int{4: 10, 5: 24, 6: 46}

func passedPawnScore(b *board.Board, color board.Piece) int {
	total := 0
	var seventhFile [8]bool
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		if p.Kind() != board.Pawn {
			return
		}
		file := sq.File()
		passed := true
		for _, f := range [3]int{file - 1, file, file + 1} {
			if f < 0 || f > 7 {
				continue
			}
			if pawnAheadOnFile(b, color, f, sq.Rank()) {
				passed = false
				break
			}
		}
		if !passed {
			return
		}
		rel := relativeRank(color, sq.Rank())
		if bonus, ok := passedPawnBonusByRelRank[rel]; ok {
			total += bonus
		}
		total += behindFileSupport(b, sq, color)
		if rel == 7 {
			seventhFile[file] = true
		}
	})
	for f := 0; f < 7; f++ {
		if seventhFile[f] && seventhFile[f+1] {
			total += 28
		}
	}
	return total
}

func bishopScore(b *board.Board, color board.Piece) int {
	total := 0
	count := 0
	enemyKing := b.KingSquare[enemyIndex(color)]
	var lightPawns, darkPawns int
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		if p.Kind() == board.Pawn {
			if (sq.File()+sq.Rank())%2 == 0 {
				darkPawns++
			} else {
				lightPawns++
			}
		}
	})
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		if p.Kind() != board.Bishop {
			return
		}
		count++
		total += centerTable[squareIndex64(sq)]
		total += 8 - chebyshev(sq, enemyKing)
	})
	if count == 1 {
		var bishopSq board.Square
		b.Pieces(color, func(sq board.Square, p board.Piece) {
			if p.Kind() == board.Bishop {
				bishopSq = sq
			}
		})
		isLight := (bishopSq.File()+bishopSq.Rank())%2 != 0
		if isLight {
			total -= 2 * lightPawns
		} else {
			total -= 2 * darkPawns
		}
	}
	if count >= 2 {
		total += 6
	}
	return total
}

func knightScore(b *board.Board, color board.Piece) int {
	total := 0
	enemyKing := b.KingSquare[enemyIndex(color)]
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		if p.Kind() != board.Knight {
			return
		}
		total += centerTable[squareIndex64(sq)]
		total += 6 - chebyshev(sq, enemyKing)
		rel := relativeRank(color, sq.Rank())
		if rel == 1 {
			total -= 9
		}
		if rel == 5 || rel == 6 {
			step := -forwardStep(color)
			for _, df := range [2]int{-1, 1} {
				f := sq.File() + df
				if f < 0 || f > 7 {
					continue
				}
				support := b.PieceAt(board.NewSquare(f, sq.Rank()+step))
				if support.Kind() == board.Pawn && support.Color() == color {
					total += 8
					break
				}
			}
		}
	})
	return total
}

func rookQueenScore(b *board.Board, color board.Piece) int {
	total := 0
	enemyKingFile := b.KingSquare[enemyIndex(color)].File()
	var rookFiles [8]int
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		if p.Kind() != board.Rook && p.Kind() != board.Queen {
			return
		}
		open, semi := fileOpenness(b, sq.File(), color)
		switch {
		case open:
			total += 10
		case semi:
			total += 5
		}
		df := sq.File() - enemyKingFile
		if df < 0 {
			df = -df
		}
		if df <= 1 {
			total += 4
		}
		if p.Kind() == board.Rook {
			rookFiles[sq.File()]++
			if relativeRank(color, sq.Rank()) == 7 {
				total += 5
			}
		}
	})
	for _, c := range rookFiles {
		if c >= 2 {
			total += 4
		}
	}
	return total
}

// fileOpenness reports whether file f is open (no pawns of either
// color) or semi-open for color (no pawns of color's own, regardless
// of enemy pawns present).
func fileOpenness(b *board.Board, f int, color board.Piece) (open, semi bool) {
	var own, enemy bool
	for r := 1; r <= 8; r++ {
		p := b.PieceAt(board.NewSquare(f, r))
		if p.Kind() != board.Pawn {
			continue
		}
		if p.Color() == color {
			own = true
		} else {
			enemy = true
		}
	}
	if !own && !enemy {
		return true, false
	}
	return false, !own
}

func developKingBonus(b *board.Board, color board.Piece) int {
	if hasQueen(b, opponentOf(color)) {
		return 0
	}
	king := b.KingSquare[colorIdx(color)]
	home := board.NewSquare(4, homeRank(color))
	return 3 * chebyshev(home, king)
}

func kingSafetyScore(b *board.Board, color board.Piece) int {
	total := 0
	king := b.KingSquare[colorIdx(color)]
	home := homeRank(color)

	if king.File() == 6 || king.File() == 2 {
		total += 15
	}
	if king.Rank() == home {
		total += 5
	}

	step := forwardStep(color)
	for _, df := range [3]int{-1, 0, 1} {
		f := king.File() + df
		if f < 0 || f > 7 {
			continue
		}
		shield := b.PieceAt(board.NewSquare(f, king.Rank()+step))
		if shield.Kind() != board.Pawn || shield.Color() != color {
			total -= 8
		}
	}

	for _, cf := range [2]int{3, 4} {
		p := b.PieceAt(board.NewSquare(cf, homeRank(color)+2*forwardStep(color)))
		if p.Kind() == board.Pawn && p.Color() == color {
			total += 4
		}
	}

	b.Pieces(color, func(sq board.Square, p board.Piece) {
		if p.Kind() != board.Queen {
			return
		}
		if relativeRank(color, sq.Rank()) <= 3 {
			total += 5
		}
	})

	return total
}

func colorIdx(c board.Piece) int {
	if c == board.Black {
		return 1
	}
	return 0
}

func enemyIndex(c board.Piece) int { return colorIdx(opponentOf(c)) }

func opponentOf(c board.Piece) board.Piece {
	if c == board.White {
		return board.Black
	}
	return board.White
}

func hasQueen(b *board.Board, color board.Piece) bool {
	found := false
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		if p.Kind() == board.Queen {
			found = true
		}
	})
	return found
}

// pieceTally counts non-king pieces by kind for drawn-material checks.
type pieceTally struct {
	pawns, knights, bishops, rooks, queens int
}

func tally(b *board.Board, color board.Piece) pieceTally {
	var t pieceTally
	b.Pieces(color, func(sq board.Square, p board.Piece) {
		switch p.Kind() {
		case board.Pawn:
			t.pawns++
		case board.Knight:
			t.knights++
		case board.Bishop:
			t.bishops++
		case board.Rook:
			t.rooks++
		case board.Queen:
			t.queens++
		}
	})
	return t
}

func (t pieceTally) total() int {
	return t.pawns + t.knights + t.bishops + t.rooks + t.queens
}

func (t pieceTally) isLoneMinor() bool {
	return t.total() == 1 && (t.knights == 1 || t.bishops == 1)
}

// isRookOrMinorOnly reports whether this side holds exactly one rook,
// bishop or knight and nothing else besides the king — a bare king
// does not qualify, so a side with no pieces at all never matches the
// R/minor-vs-R/minor draw below.
func (t pieceTally) isRookOrMinorOnly() bool {
	return t.pawns == 0 && t.queens == 0 && t.total() == 1
}

// isDrawnMaterial recognizes the handful of known-drawn configurations
// listed in §4.5 for n<=5 total pieces (kings excluded from the count
// used here, matching the "minor"/"rook" shorthand of the spec text).
func isDrawnMaterial(b *board.Board) bool {
	w := tally(b, board.White)
	bl := tally(b, board.Black)

	if w.total() == 0 && bl.total() == 0 {
		return true
	}
	if (w.total() == 0 && bl.isLoneMinor()) || (bl.total() == 0 && w.isLoneMinor()) {
		return true
	}
	if w.queens == 1 && bl.queens == 1 && w.total() == 1 && bl.total() == 1 {
		return true
	}
	if w.isRookOrMinorOnly() && bl.isRookOrMinorOnly() && !(w.knights == 1 && bl.knights == 1) {
		return true
	}
	if w.total() == 1 && bl.total() == 1 && w.pawns == 1 && bl.pawns == 0 && bl.isLoneMinor() {
		return true
	}
	if bl.total() == 1 && w.total() == 1 && bl.pawns == 1 && w.pawns == 0 && w.isLoneMinor() {
		return true
	}
	return false
}
