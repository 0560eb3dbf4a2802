// Package position implements the bitboard-indexed chess position: its
// piece placement, derived occupancies, castling/en-passant/halfmove
// state, and the Zobrist hash and midgame/endgame evaluation accumulators
// kept incrementally in sync with every move applied to it.
package position

import (
	"github.com/georgib0y/chesscore/internal/assert"
	"github.com/georgib0y/chesscore/types"
)

const occAll = 2

// Position is the central value type of the engine: a full board snapshot
// plus the incidental state (side to move, castling, en-passant target,
// halfmove clock) and the cached hash/eval accumulators. Positions are
// immutable from the search's perspective - Apply returns a new Position,
// never mutates its receiver.
type Position struct {
	pieces [types.PieceLength]types.Bitboard
	// util[White] / util[Black] are the per-color occupancy, util[occAll]
	// is their union.
	util [3]types.Bitboard
	// board is a square -> piece mailbox, redundant with pieces[] but
	// avoids a 12-bitboard scan every time movegen needs to know what sits
	// on a square.
	board [types.SqLength]types.Piece

	sideToMove types.Color
	castling   types.CastlingRights
	ep         types.Square
	halfmove   int

	hash         uint64
	mgVal, egVal types.Value
}

// New returns an empty position (no pieces, white to move, no castling
// rights, no en-passant, halfmove 0). Callers assemble a real position via
// Put, or more commonly via FromFEN.
func New() Position {
	var p Position
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		p.board[sq] = types.NoPiece
	}
	p.ep = types.SqNone
	return p
}

// Pieces returns the bitboard of all pieces of kind p.
func (p *Position) Pieces(pc types.Piece) types.Bitboard { return p.pieces[pc] }

// PiecesOf returns the bitboard union of base across both colors, e.g.
// PiecesOf(RookBase) is all rooks.
func (p *Position) PiecesOf(base types.Piece) types.Bitboard {
	return p.pieces[base] | p.pieces[base+1]
}

// Occupied returns the occupancy bitboard for color c.
func (p *Position) Occupied(c types.Color) types.Bitboard { return p.util[c] }

// All returns the occupancy bitboard of every piece on the board.
func (p *Position) All() types.Bitboard { return p.util[occAll] }

// PieceAt returns the piece occupying sq, or NoPiece if empty.
func (p *Position) PieceAt(sq types.Square) types.Piece { return p.board[sq] }

// SideToMove returns the color to move.
func (p *Position) SideToMove() types.Color { return p.sideToMove }

// Castling returns the current castling rights.
func (p *Position) Castling() types.CastlingRights { return p.castling }

// EpSquare returns the en-passant target square, or SqNone if unavailable.
func (p *Position) EpSquare() types.Square { return p.ep }

// Halfmove returns the halfmove (ply) clock since the last pawn move or capture.
func (p *Position) Halfmove() int { return p.halfmove }

// Hash returns the position's Zobrist key.
func (p *Position) Hash() uint64 { return p.hash }

// MgVal returns the raw (white-positive) midgame accumulator.
func (p *Position) MgVal() types.Value { return p.mgVal }

// EgVal returns the raw (white-positive) endgame accumulator.
func (p *Position) EgVal() types.Value { return p.egVal }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.pieces[types.MakePiece(types.KingBase, c)].Lsb()
}

// Put places piece on sq, updating every mirrored structure (bitboards,
// occupancies, mailbox, hash, eval accumulators). sq must be empty.
func (p *Position) Put(piece types.Piece, sq types.Square) {
	assert.Assert(p.board[sq] == types.NoPiece, "Put: %s already occupied by %s", sq, p.board[sq])
	p.board[sq] = piece
	p.pieces[piece] = p.pieces[piece].Push(sq)
	p.util[piece.ColorOf()] = p.util[piece.ColorOf()].Push(sq)
	p.util[occAll] = p.util[occAll].Push(sq)
	p.hash ^= zobrist.pieces[piece][sq]
	p.mgVal += materialSigned(piece) + pstMid(piece, sq)
	p.egVal += materialSigned(piece) + pstEnd(piece, sq)
}

// Remove clears sq (which must be occupied) and returns the piece that was
// there, undoing every update Put made.
func (p *Position) Remove(sq types.Square) types.Piece {
	piece := p.board[sq]
	assert.Assert(piece != types.NoPiece, "Remove: %s already empty", sq)
	p.board[sq] = types.NoPiece
	p.pieces[piece] = p.pieces[piece].Pop(sq)
	p.util[piece.ColorOf()] = p.util[piece.ColorOf()].Pop(sq)
	p.util[occAll] = p.util[occAll].Pop(sq)
	p.hash ^= zobrist.pieces[piece][sq]
	p.mgVal -= materialSigned(piece) + pstMid(piece, sq)
	p.egVal -= materialSigned(piece) + pstEnd(piece, sq)
	return piece
}

// recomputeHash rebuilds the Zobrist key from scratch - used by the
// perft-with-recompute-assert correctness gate, never on the hot path.
func (p *Position) recomputeHash() uint64 { return hashPosition(p) }

// VerifyRecompute recomputes p's hash and midgame/endgame eval accumulators
// from scratch and reports whether each matches the value Apply maintained
// incrementally. This is the perft-with-recompute-assert correctness gate:
// a perft walk calls it at every node, mirroring val_perft/hash_perft in
// the original engine, which recompute and compare after every copy_make
// rather than trusting the incremental update on faith.
func (p *Position) VerifyRecompute() (hashOK, evalOK bool) {
	hashOK = p.hash == p.recomputeHash()
	mg, eg := recomputeEval(p)
	evalOK = p.mgVal == mg && p.egVal == eg
	return hashOK, evalOK
}

// epBehindSquare returns the square "behind" to from side's perspective:
// the ep target for a double push landing on to, or the square an
// en-passant capture's victim pawn occupies, given side is the color
// making the move in both cases.
func epBehindSquare(to types.Square, side types.Color) types.Square {
	return types.Square(int8(to) - 8 + int8(side)*16)
}

func updateCastlingRights(cr *types.CastlingRights, piece types.Piece, from, to types.Square) {
	if piece == types.WhiteKing || from == types.SqH1 || to == types.SqH1 {
		cr.Remove(types.CastlingWK)
	}
	if piece == types.WhiteKing || from == types.SqA1 || to == types.SqA1 {
		cr.Remove(types.CastlingWQ)
	}
	if piece == types.BlackKing || from == types.SqH8 || to == types.SqH8 {
		cr.Remove(types.CastlingBK)
	}
	if piece == types.BlackKing || from == types.SqA8 || to == types.SqA8 {
		cr.Remove(types.CastlingBQ)
	}
}

// Apply returns the successor position reached by playing m against p. m
// is assumed pseudo-legal (as produced by movegen); callers must still run
// the legality filter on the result before trusting it. Apply never
// mutates p.
func (p *Position) Apply(m types.Move) Position {
	dst := *p

	from := m.From()
	to := m.To()
	piece := m.Piece()
	side := piece.ColorOf()
	kind := m.Kind()

	dst.Remove(from)

	switch kind {
	case types.Cap, types.NPromoCap, types.RPromoCap, types.BPromoCap, types.QPromoCap:
		dst.Remove(to)
	case types.Ep:
		dst.Remove(epBehindSquare(to, side))
	}

	if kind.IsPromotion() {
		dst.Put(m.PromotionPiece(side), to)
	} else {
		dst.Put(piece, to)
	}

	switch kind {
	case types.WKingside:
		dst.Remove(types.SqH1)
		dst.Put(types.WhiteRook, types.SqF1)
	case types.WQueenside:
		dst.Remove(types.SqA1)
		dst.Put(types.WhiteRook, types.SqD1)
	case types.BKingside:
		dst.Remove(types.SqH8)
		dst.Put(types.BlackRook, types.SqF8)
	case types.BQueenside:
		dst.Remove(types.SqA8)
		dst.Put(types.BlackRook, types.SqD8)
	}

	oldCastling := dst.castling
	updateCastlingRights(&dst.castling, piece, from, to)

	oldEp := dst.ep
	dst.ep = types.SqNone
	dst.halfmove++

	switch kind {
	case types.Quiet:
		if piece.Base() == types.PawnBase {
			dst.halfmove = 0
		}
	case types.Double:
		dst.ep = epBehindSquare(to, side)
		dst.halfmove = 0
	case types.Cap, types.Promo, types.NPromoCap, types.RPromoCap, types.BPromoCap, types.QPromoCap, types.Ep:
		dst.halfmove = 0
	}

	dst.hash ^= zobrist.castling[oldCastling] ^ zobrist.castling[dst.castling]
	if oldEp != types.SqNone {
		dst.hash ^= zobrist.epFile[oldEp.FileOf()]
	}
	if dst.ep != types.SqNone {
		dst.hash ^= zobrist.epFile[dst.ep.FileOf()]
	}
	dst.hash ^= zobrist.sideToMove

	dst.sideToMove = side.Flip()

	return dst
}

// AttackersOf returns the set of attacker-color pieces attacking sq.
func (p *Position) AttackersOf(sq types.Square, attacker types.Color) types.Bitboard {
	occ := p.util[occAll]
	pawns := p.pieces[types.MakePiece(types.PawnBase, attacker)]
	knights := p.pieces[types.MakePiece(types.KnightBase, attacker)]
	king := p.pieces[types.MakePiece(types.KingBase, attacker)]
	rooksQueens := p.pieces[types.MakePiece(types.RookBase, attacker)] | p.pieces[types.MakePiece(types.QueenBase, attacker)]
	bishopsQueens := p.pieces[types.MakePiece(types.BishopBase, attacker)] | p.pieces[types.MakePiece(types.QueenBase, attacker)]

	return (types.PawnAttacks(attacker.Flip(), sq) & pawns) |
		(types.KnightAttacks(sq) & knights) |
		(types.KingAttacks(sq) & king) |
		(types.RookAttacks(occ, sq) & rooksQueens) |
		(types.BishopAttacks(occ, sq) & bishopsQueens)
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.AttackersOf(p.KingSquare(p.sideToMove), p.sideToMove.Flip()) != 0
}
