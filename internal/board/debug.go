package board

// debugAssertions gates expensive invariant checks (§4.2: incremental
// Zobrist key must equal a from-scratch recomputation after every
// full-mode apply). Release builds leave it false; flip it locally
// when chasing a make/unmake bug.
const debugAssertions = false
