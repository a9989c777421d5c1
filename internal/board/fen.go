package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a Forsyth-Edwards Notation string into a Board.
// This is the FEN tokenizer of §6 — a thin external adapter, not
// part of the search core, but the only fallible entry point in the
// module. A malformed FEN is the engine's one recoverable error.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: FEN needs at least 4 fields, got %d", len(fields))
	}

	b := NewBoard()

	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: invalid active color %q", fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	b.Rights = rights

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	b.EnPassant = ep

	b.HalfMoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("board: invalid halfmove clock %q", fields[4])
		}
		b.HalfMoveClock = n
	}

	b.FullMoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("board: invalid fullmove number %q", fields[5])
		}
		b.FullMoveNumber = n
	}

	if b.KingSquare[0] == NoSquare || b.KingSquare[1] == NoSquare {
		return nil, fmt.Errorf("board: FEN must place exactly one king per side")
	}

	b.Hash = b.computeHash()
	return b, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: FEN placement needs 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 8 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				if file > 7 {
					return fmt.Errorf("board: rank %d overflows", rank)
				}
				p := PieceFromChar(byte(ch))
				if p == NoPiece {
					return fmt.Errorf("board: invalid piece char %q", ch)
				}
				b.setPiece(NewSquare(file, rank), p)
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("board: rank %d has %d files, want 8", rank, file)
		}
	}
	return nil
}

func parseCastling(s string) (CastleRights, error) {
	if s == "-" {
		return NoCastleRights, nil
	}
	var cr CastleRights
	for _, ch := range s {
		switch ch {
		case 'K':
			cr |= WhiteKingside
		case 'Q':
			cr |= WhiteQueenside
		case 'k':
			cr |= BlackKingside
		case 'q':
			cr |= BlackQueenside
		default:
			return 0, fmt.Errorf("board: invalid castling rights %q", s)
		}
	}
	return cr, nil
}

func parseEnPassant(s string) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	return ParseSquare(s)
}

// FEN renders the board back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Rights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoveNumber))
	return sb.String()
}
