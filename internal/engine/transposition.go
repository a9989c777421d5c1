package engine

// Transposition table (C8): a power-of-two array of plain entries,
// indexed by the low bits of the Zobrist key, with unconditional
// ("always replace") replacement on collision — no generation counter,
// no depth-preferred replacement. Preserving that policy, rather than
// improving on it, keeps node counts reproducible against the
// reference (§9).

// TTFlag records which side of the fail-hard window a stored score
// bounds.
type TTFlag uint8

const (
	ttNone TTFlag = iota
	ttAlpha
	ttBeta
	ttExact
)

// ttEntry is one slot of the table.
type ttEntry struct {
	key      uint64
	depth    int16 // depth-remaining at which this entry was stored
	flag     TTFlag
	score    int16
	best     Move
	occupied bool
}

// TranspositionTable is a fixed-size, process-wide store of previously
// searched positions. It is not safe for concurrent use; the search
// it backs is strictly single-threaded (§5).
type TranspositionTable struct {
	entries []ttEntry
	mask    uint64
}

// NewTranspositionTable allocates a table sized to the largest
// power-of-two entry count that fits in sizeMiB megabytes.
func NewTranspositionTable(sizeMiB int) *TranspositionTable {
	if sizeMiB < 1 {
		sizeMiB = 1
	}
	const entrySize = 32 // approximate entry footprint in bytes
	want := sizeMiB * 1024 * 1024 / entrySize
	count := 1
	for count*2 <= want {
		count *= 2
	}
	return &TranspositionTable{
		entries: make([]ttEntry, count),
		mask:    uint64(count - 1),
	}
}

func (tt *TranspositionTable) slot(key uint64) *ttEntry {
	return &tt.entries[key&tt.mask]
}

// clampMateScore turns a mate score (|score| >= mateThreshold) into a
// one-sided bound, an EXACT mate becoming the bound on the mate's
// side, so that a mate found near the leaf at one depth does not get
// reused as an EXACT score at a different depth (§4.4). The score
// value is kept and the given depth is returned unchanged; Insert
// passes the full horizon depthMax for mate scores and depth-remaining
// otherwise.
func clampMateScore(score int, flag TTFlag, depthMax int) (int16, TTFlag, int16) {
	if score >= mateThreshold {
		if flag == ttAlpha {
			return int16(score), ttAlpha, int16(depthMax)
		}
		return int16(score), ttBeta, int16(depthMax)
	}
	if score <= -mateThreshold {
		if flag == ttBeta {
			return int16(score), ttBeta, int16(depthMax)
		}
		return int16(score), ttAlpha, int16(depthMax)
	}
	return int16(score), flag, int16(depthMax)
}

// Insert stores a search result. depthMax is the horizon depth of the
// call that produced it; ply is the current ply, so depth-remaining
// is depthMax-ply; mate scores are stored at depthMax instead.
func (tt *TranspositionTable) Insert(key uint64, ply, depthMax int, flag TTFlag, score int, best Move) {
	depth := depthMax - ply
	if score >= mateThreshold || score <= -mateThreshold {
		depth = depthMax
	}
	sc, fl, dep := clampMateScore(score, flag, depth)
	e := tt.slot(key)
	e.key = key
	e.depth = dep
	e.flag = fl
	e.score = sc
	e.best = best
	e.occupied = true
}

// ttResult is the outcome of a Lookup.
type ttResult struct {
	usable bool
	score  int
	best   Move
}

// Lookup probes the table for key. If the stored entry is deep enough
// and its bound disposes of the [α,β] window, it returns a usable
// fail-hard score; otherwise usable is false, but the entry's best
// move (if any) is still returned so the caller can seed move
// ordering with it.
func (tt *TranspositionTable) Lookup(key uint64, ply, depthMax, alpha, beta int) ttResult {
	e := tt.slot(key)
	if !e.occupied || e.key != key {
		return ttResult{}
	}
	remaining := depthMax - ply
	res := ttResult{best: e.best}
	if int(e.depth) < remaining {
		return res
	}
	score := int(e.score)
	switch e.flag {
	case ttExact:
		res.usable = true
		res.score = score
	case ttAlpha:
		if score <= alpha {
			res.usable = true
			res.score = alpha
		}
	case ttBeta:
		if score >= beta {
			res.usable = true
			res.score = beta
		}
	}
	return res
}
