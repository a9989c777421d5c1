// Command corvid runs the fixed-depth search core behind a line
// protocol external adapter: `go <depth>` followed by a FEN line,
// repeated until EOF or a non-"go" command (§6). Everything in this
// file is I/O plumbing; none of it participates in the deterministic
// search itself.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/corvidbench/corvid/internal/board"
	"github.com/corvidbench/corvid/internal/engine"
)

func main() {
	hashMiB := flag.Int("hash", 4, "transposition table size in MiB")
	flag.Parse()

	logger := log.New(os.Stderr, "", 0)
	errColor := color.New(color.FgRed, color.Bold)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if !scanner.Scan() {
			return
		}
		header := strings.Fields(scanner.Text())
		if len(header) < 2 || header[0] != "go" {
			return
		}
		depth, err := strconv.Atoi(header[1])
		if err != nil || depth < 1 {
			errColor.Fprintf(os.Stderr, "corvid: invalid depth %q\n", header[1])
			os.Exit(1)
		}

		if !scanner.Scan() {
			logger.Println("corvid: expected a FEN line after \"go\"")
			os.Exit(1)
		}
		b, err := board.ParseFEN(scanner.Text())
		if err != nil {
			errColor.Fprintf(os.Stderr, "corvid: %v\n", err)
			os.Exit(1)
		}

		runSearch(b, depth, *hashMiB)
	}
}

func runSearch(b *board.Board, depth, hashMiB int) {
	var ml board.MoveList
	board.GenerateLegalMoves(b, &ml)
	if ml.Len() == 0 {
		if b.InCheck() {
			fmt.Println("checkmate")
		} else {
			fmt.Println("stalemate")
		}
		return
	}
	if b.HalfMoveClock >= 100 {
		fmt.Println("draw (fifty-move rule)")
		return
	}

	e := engine.NewEngine(b, hashMiB)
	start := time.Now()

	result := e.IterativeDeepen(depth, func(r engine.IterationResult) {
		elapsed := time.Since(start)
		knps := 0
		if elapsed.Seconds() > 0 {
			knps = int(float64(r.Nodes) / 1000 / elapsed.Seconds())
		}
		fmt.Printf("%s  %+d  %d  %.2fs  %dkn  %dknps  %d/%d\n",
			formatMove(b, r.Move), r.Score, r.RootMoveCount,
			elapsed.Seconds(), r.Nodes/1000, knps, r.Depth, r.SelDepth)
	})

	fmt.Printf("best move %s  %.2fs\n", formatMove(b, result.Move), time.Since(start).Seconds())
}

// formatMove renders m in the shorthand algebraic notation of §6:
// piece letter, from-square, '-'/'x', to-square, promotion letter,
// '+' on check; castling is "0-0"/"0-0-0"; en passant appends "ep".
// b must be in the position m was generated from (the position is
// restored by the time the iteration callback fires).
func formatMove(b *board.Board, m board.Move) string {
	if m == board.NoMove {
		return "(none)"
	}
	if m.IsCastle() {
		s := "0-0"
		if m.To().File() == 2 {
			s = "0-0-0"
		}
		if m.IsCheck() {
			s += "+"
		}
		return s
	}

	mover := b.PieceAt(m.From())
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	s := strings.ToUpper(mover.String()) + m.From().String() + sep + m.To().String()
	if m.IsPromotion() {
		s += strings.ToUpper(m.PromotionPiece().String())
	}
	if m.IsEnPassant() {
		s += "ep"
	}
	if m.IsCheck() {
		s += "+"
	}
	return s
}
