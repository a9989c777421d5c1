// Package board implements the 10x12 mailbox board representation:
// a padded square-centric grid with sparse per-color piece lists,
// packed piece and move codes, and Zobrist hashing.
package board

import "fmt"

// Square indexes the 10x12 mailbox grid. Playable squares run 21..98
// inclusive, row-major, one file of padding either side. Index 21 is
// a8; index 98 is h1. Ranks 0, 1, 10, 11 and files 0, 9 form the FULL
// sentinel ring that lets ray scans terminate without bounds checks.
type Square int8

// NoSquare marks the absence of a square (e.g. no en-passant target).
const NoSquare Square = -1

// Mailbox geometry.
const (
	mailboxFiles = 10
	mailboxRanks = 12
	mailboxSize  = mailboxFiles * mailboxRanks

	firstPlayable = 21
	lastPlayable  = 98
)

// Ray/step directions on the 10-wide mailbox.
const (
	dirNorth     = -10
	dirSouth     = 10
	dirEast      = 1
	dirWest      = -1
	dirNorthEast = dirNorth + dirEast
	dirNorthWest = dirNorth + dirWest
	dirSouthEast = dirSouth + dirEast
	dirSouthWest = dirSouth + dirWest
)

var bishopDirs = [4]int{dirNorthEast, dirNorthWest, dirSouthEast, dirSouthWest}
var rookDirs = [4]int{dirNorth, dirSouth, dirEast, dirWest}
var queenDirs = [8]int{dirNorth, dirSouth, dirEast, dirWest, dirNorthEast, dirNorthWest, dirSouthEast, dirSouthWest}

var knightOffsets = [8]int{-21, -19, -12, -8, 8, 12, 19, 21}
var kingOffsets = queenDirs

var squareFile [mailboxSize]int8
var squareRank [mailboxSize]int8 // chess rank number, 1..8
var squarePlayable [mailboxSize]bool
var squareNames [mailboxSize]string

func init() {
	for idx := 0; idx < mailboxSize; idx++ {
		file := idx%mailboxFiles - 1
		rank := 10 - idx/mailboxFiles
		squareFile[idx] = int8(file)
		squareRank[idx] = int8(rank)
		squarePlayable[idx] = idx >= firstPlayable && idx <= lastPlayable && file >= 0 && file <= 7
		if squarePlayable[idx] {
			squareNames[idx] = fmt.Sprintf("%c%d", 'a'+file, rank)
		} else {
			squareNames[idx] = "-"
		}
	}
}

// File returns the 0-based file (a=0..h=7).
func (sq Square) File() int { return int(squareFile[sq]) }

// Rank returns the 1-based chess rank (1..8).
func (sq Square) Rank() int { return int(squareRank[sq]) }

// Valid reports whether sq names a playable (non-sentinel) square.
func (sq Square) Valid() bool {
	return sq >= 0 && int(sq) < mailboxSize && squarePlayable[sq]
}

// String renders the square in algebraic form, e.g. "e4".
func (sq Square) String() string {
	if sq == NoSquare || sq < 0 || int(sq) >= mailboxSize {
		return "-"
	}
	return squareNames[sq]
}

// NewSquare builds a Square from 0-based file and 1-based rank.
func NewSquare(file, rank int) Square {
	row := 10 - rank
	return Square(row*mailboxFiles + file + 1)
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '0')
	if file < 0 || file > 7 || rank < 1 || rank > 8 {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}
	return NewSquare(file, rank), nil
}

// abs returns the absolute value of an int.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
