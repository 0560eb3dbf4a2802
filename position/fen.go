package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/georgib0y/chesscore/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	placementRe = regexp.MustCompile(`^[1-8pPnNbBrRqQkK/]+$`)
	sideRe      = regexp.MustCompile(`^[wb]$`)
	castlingRe  = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	epRe        = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// FromFEN parses either the literal string "startpos" or a FEN string with
// 4 to 6 space-separated fields (placement, side to move, castling rights,
// en-passant target, and optionally halfmove clock and fullmove number).
// Returns an error describing the first malformed field found.
func FromFEN(fen string) (Position, error) {
	if fen == "startpos" {
		fen = StartFEN
	}

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("fen: need at least 4 fields, got %d", len(fields))
	}

	if !placementRe.MatchString(fields[0]) {
		return Position{}, fmt.Errorf("fen: invalid placement characters: %q", fields[0])
	}
	p := New()
	file, rank := types.FileA, types.Rank8
	for _, c := range fields[0] {
		switch {
		case c == '/':
			rank--
			file = types.FileA
		case c >= '1' && c <= '8':
			file += types.File(c - '0')
		default:
			piece := types.PieceFromChar(byte(c))
			if piece == types.NoPiece {
				return Position{}, fmt.Errorf("fen: invalid piece character: %q", string(c))
			}
			sq := types.SquareOf(file, rank)
			if sq == types.SqNone {
				return Position{}, fmt.Errorf("fen: placement runs off the board: %q", fields[0])
			}
			p.Put(piece, sq)
			file++
		}
	}

	if !sideRe.MatchString(fields[1]) {
		return Position{}, fmt.Errorf("fen: invalid side to move: %q", fields[1])
	}
	if fields[1] == "b" {
		p.sideToMove = types.Black
	}

	if !castlingRe.MatchString(fields[2]) {
		return Position{}, fmt.Errorf("fen: invalid castling field: %q", fields[2])
	}
	if fields[2] != "-" {
		for _, c := range fields[2] {
			p.castling.Add(types.CastlingFromChar(byte(c)))
		}
	}

	if !epRe.MatchString(fields[3]) {
		return Position{}, fmt.Errorf("fen: invalid en-passant field: %q", fields[3])
	}
	p.ep = types.SqNone
	if fields[3] != "-" {
		p.ep = types.MakeSquare(fields[3])
	}

	if len(fields) >= 5 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil || hm < 0 {
			return Position{}, fmt.Errorf("fen: invalid halfmove clock: %q", fields[4])
		}
		p.halfmove = hm
	}
	// fields[5], the fullmove number, only affects UCI-facing move
	// numbering, which is outside the core's scope - parsed for strictness
	// but otherwise discarded.
	if len(fields) >= 6 {
		if _, err := strconv.Atoi(fields[5]); err != nil {
			return Position{}, fmt.Errorf("fen: invalid fullmove number: %q", fields[5])
		}
	}

	p.hash = hashPosition(&p)
	return p, nil
}

// FEN renders p as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := types.Rank8; ; r-- {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			sq := types.SquareOf(f, r)
			pc := p.board[sq]
			if pc == types.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == types.Rank1 {
			break
		}
		sb.WriteByte('/')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	if p.ep == types.SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.ep.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmove))
	sb.WriteString(" 1")
	return sb.String()
}

func (p *Position) String() string { return p.FEN() }
