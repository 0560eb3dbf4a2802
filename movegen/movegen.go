// Package movegen generates moves for a position. Normal-mode generation
// (side to move not in check) produces every pseudo-legal move for every
// piece kind; evasion-mode generation (side to move in check) restricts
// every non-king piece to capturing the checker or interposing on the
// check ray, and gives the king a safety-aware target set of its own.
// Either way the caller still runs Legal on the resulting position before
// trusting a move - see movegen.go's Legal and position.Position.Apply.
package movegen

import (
	"github.com/georgib0y/chesscore/internal/assert"
	"github.com/georgib0y/chesscore/position"
	"github.com/georgib0y/chesscore/types"
)

const maxMoves = 200

// MoveList is a fixed-capacity move buffer holding at most maxMoves (200)
// moves; Add asserts when a move would overflow it.
type MoveList struct {
	moves [maxMoves]types.Move
	n     int
}

// Add appends m to the list.
func (l *MoveList) Add(m types.Move) {
	assert.Assert(l.n < maxMoves, "movegen: move list overflow")
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int { return l.n }

// Moves returns the moves collected so far.
func (l *MoveList) Moves() []types.Move { return l.moves[:l.n] }

// bbAll is every square, used as the normal-mode generator's target mask -
// no square is off limits and, per the resolved design discrepancy between
// spec.md's prose and the original source (see DESIGN.md), no piece is
// excluded on pin grounds in this mode either.
const bbAll = ^types.Bitboard(0)

// Generate returns every pseudo-legal move available to the side to move,
// dispatching to the evasion generator when that side's king is in check.
func Generate(pos *position.Position) MoveList {
	var list MoveList
	side := pos.SideToMove()
	if pos.InCheck() {
		genEvasions(pos, side, &list)
	} else {
		genNormal(pos, side, &list)
	}
	return list
}

// GenerateCaptures returns only capturing moves (including en-passant and
// capture-promotions), for quiescence search. Check status is ignored -
// quiescence never searches evasions, only the tactical surface.
func GenerateCaptures(pos *position.Position) MoveList {
	var list MoveList
	side := pos.SideToMove()
	enemyOcc := pos.Occupied(side.Flip())
	var exclude types.Bitboard

	genPawnCaptures(pos, types.MakePiece(types.PawnBase, side), side, pos.Pieces(types.MakePiece(types.PawnBase, side)), enemyOcc, &list)
	genKnights(pos, side, exclude, enemyOcc, &list)
	genBishops(pos, side, exclude, enemyOcc, &list)
	genRooks(pos, side, exclude, enemyOcc, &list)
	genQueens(pos, side, exclude, enemyOcc, &list)
	genKingCaptures(pos, side, &list)
	return list
}

func genNormal(pos *position.Position, side types.Color, list *MoveList) {
	var exclude types.Bitboard // pins not excluded in normal mode - see DESIGN.md

	genPawns(pos, side, exclude, bbAll, list)
	genKnights(pos, side, exclude, bbAll, list)
	genBishops(pos, side, exclude, bbAll, list)
	genRooks(pos, side, exclude, bbAll, list)
	genQueens(pos, side, exclude, bbAll, list)
	genKingNormal(pos, side, list)
	genCastling(pos, side, list)
}

func genEvasions(pos *position.Position, side types.Color, list *MoveList) {
	kingSq := pos.KingSquare(side)
	enemy := side.Flip()
	attackers := pos.AttackersOf(kingSq, enemy)

	genKingEvasion(pos, side, kingSq, list)

	if attackers.PopCount() > 1 {
		return // double check: only king moves are legal
	}

	attackerSq := attackers.Lsb()
	pin := pinned(pos, side)
	target := attackers // must capture the checker

	genPawns(pos, side, pin, target, list)
	genKnights(pos, side, pin, target, list)
	genBishops(pos, side, pin, target, list)
	genRooks(pos, side, pin, target, list)
	genQueens(pos, side, pin, target, list)

	if pos.PieceAt(attackerSq).IsSlider() {
		if interpose := between(kingSq, attackerSq); interpose != 0 {
			genPawns(pos, side, pin, interpose, list)
			genKnights(pos, side, pin, interpose, list)
			genBishops(pos, side, pin, interpose, list)
			genRooks(pos, side, pin, interpose, list)
			genQueens(pos, side, pin, interpose, list)
		}
	}
}

// addAttackMoves emits a capture or quiet move to every square in attacks
// that also lies in target, for the piece standing on from.
func addAttackMoves(pos *position.Position, piece types.Piece, from types.Square, attacks, target types.Bitboard, list *MoveList) {
	enemy := pos.Occupied(piece.ColorOf().Flip())
	empty := ^pos.All()

	caps := attacks & target & enemy
	for caps != 0 {
		to := caps.PopLsb()
		list.Add(types.NewMove(from, to, piece, pos.PieceAt(to), types.Cap))
	}
	quiets := attacks & target & empty
	for quiets != 0 {
		to := quiets.PopLsb()
		list.Add(types.NewMove(from, to, piece, types.NoPiece, types.Quiet))
	}
}

func genKnights(pos *position.Position, side types.Color, exclude, target types.Bitboard, list *MoveList) {
	piece := types.MakePiece(types.KnightBase, side)
	knights := pos.Pieces(piece) &^ exclude
	for knights != 0 {
		from := knights.PopLsb()
		addAttackMoves(pos, piece, from, types.KnightAttacks(from), target, list)
	}
}

func genBishops(pos *position.Position, side types.Color, exclude, target types.Bitboard, list *MoveList) {
	piece := types.MakePiece(types.BishopBase, side)
	occ := pos.All()
	bishops := pos.Pieces(piece) &^ exclude
	for bishops != 0 {
		from := bishops.PopLsb()
		addAttackMoves(pos, piece, from, types.BishopAttacks(occ, from), target, list)
	}
}

func genRooks(pos *position.Position, side types.Color, exclude, target types.Bitboard, list *MoveList) {
	piece := types.MakePiece(types.RookBase, side)
	occ := pos.All()
	rooks := pos.Pieces(piece) &^ exclude
	for rooks != 0 {
		from := rooks.PopLsb()
		addAttackMoves(pos, piece, from, types.RookAttacks(occ, from), target, list)
	}
}

func genQueens(pos *position.Position, side types.Color, exclude, target types.Bitboard, list *MoveList) {
	piece := types.MakePiece(types.QueenBase, side)
	occ := pos.All()
	queens := pos.Pieces(piece) &^ exclude
	for queens != 0 {
		from := queens.PopLsb()
		addAttackMoves(pos, piece, from, types.QueenAttacks(occ, from), target, list)
	}
}

func genKingNormal(pos *position.Position, side types.Color, list *MoveList) {
	piece := types.MakePiece(types.KingBase, side)
	from := pos.KingSquare(side)
	addAttackMoves(pos, piece, from, types.KingAttacks(from), bbAll, list)
}

func genKingCaptures(pos *position.Position, side types.Color, list *MoveList) {
	piece := types.MakePiece(types.KingBase, side)
	from := pos.KingSquare(side)
	enemy := pos.Occupied(side.Flip())
	caps := types.KingAttacks(from) & enemy
	for caps != 0 {
		to := caps.PopLsb()
		list.Add(types.NewMove(from, to, piece, pos.PieceAt(to), types.Cap))
	}
}

// genKingEvasion generates king moves using a king-excluded occupancy to
// test each candidate square, so a slider shielded only by the king's own
// square (which the king is about to vacate) is still seen as covering the
// square behind it. Without this, a king fleeing straight down the
// checking ray would read the square behind itself as safe.
func genKingEvasion(pos *position.Position, side types.Color, from types.Square, list *MoveList) {
	piece := types.MakePiece(types.KingBase, side)
	enemy := side.Flip()
	occWithoutKing := pos.All() &^ from.Bb()
	enemyOcc := pos.Occupied(enemy)

	candidates := types.KingAttacks(from) &^ pos.Occupied(side)
	for candidates != 0 {
		to := candidates.PopLsb()
		if attackersOfWithOcc(pos, to, enemy, occWithoutKing) != 0 {
			continue
		}
		if enemyOcc.Has(to) {
			list.Add(types.NewMove(from, to, piece, pos.PieceAt(to), types.Cap))
		} else {
			list.Add(types.NewMove(from, to, piece, types.NoPiece, types.Quiet))
		}
	}
}

func pawnRanks(side types.Color) (promo, start types.Rank) {
	if side == types.Black {
		return types.Rank1, types.Rank7
	}
	return types.Rank8, types.Rank2
}

// epVictim returns the square of the pawn captured by an en-passant move
// landing on ep, made by a pawn of side. The same formula, applied with
// the mover's own color, also derives the ep target created by that
// mover's double push - see position.epBehindSquare.
func epVictim(ep types.Square, side types.Color) types.Square {
	return types.Square(int8(ep) - 8 + int8(side)*16)
}

func genPawns(pos *position.Position, side types.Color, exclude, target types.Bitboard, list *MoveList) {
	piece := types.MakePiece(types.PawnBase, side)
	pawns := pos.Pieces(piece) &^ exclude
	genPawnPushes(pos, piece, side, pawns, target, list)
	genPawnCaptures(pos, piece, side, pawns, target, list)
}

func genPawnPushes(pos *position.Position, piece types.Piece, side types.Color, pawns, target types.Bitboard, list *MoveList) {
	empty := ^pos.All()
	push := side.PawnPushDirection()
	promoRank, startRank := pawnRanks(side)

	for pawns != 0 {
		from := pawns.PopLsb()
		to := from.To(push)
		if to == types.SqNone || !empty.Has(to) {
			continue
		}
		if target.Has(to) {
			addPawnAdvance(piece, from, to, promoRank, list)
		}
		if from.RankOf() == startRank {
			if to2 := to.To(push); to2 != types.SqNone && empty.Has(to2) && target.Has(to2) {
				list.Add(types.NewMove(from, to2, piece, types.NoPiece, types.Double))
			}
		}
	}
}

// genPawnCaptures emits diagonal captures, capture-promotions, and
// en-passant. target filters against the square a capture actually
// removes a piece from: the destination square for a plain capture, but
// the victim pawn's own square (not the landing square) for en-passant -
// grounded on the original source's wpawn_ep/bpawn_ep, which intersect the
// evasion target mask with the captured pawn's occupancy before aligning
// it to the ep square, not with the ep square itself. Tested the naive
// way (target against the landing square) an en-passant evasion capturing
// the checking pawn would be wrongly rejected, since the landing square
// never equals the checker's square.
func genPawnCaptures(pos *position.Position, piece types.Piece, side types.Color, pawns, target types.Bitboard, list *MoveList) {
	enemy := pos.Occupied(side.Flip())
	promoRank, _ := pawnRanks(side)
	ep := pos.EpSquare()

	for pawns != 0 {
		from := pawns.PopLsb()
		attacks := types.PawnAttacks(side, from)

		caps := attacks & enemy & target
		for caps != 0 {
			to := caps.PopLsb()
			addPawnCapture(piece, from, to, pos.PieceAt(to), promoRank, list)
		}

		if ep != types.SqNone && attacks.Has(ep) {
			if victim := epVictim(ep, side); target.Has(victim) {
				list.Add(types.NewMove(from, ep, piece, types.NoPiece, types.Ep))
			}
		}
	}
}

func addPawnAdvance(piece types.Piece, from, to types.Square, promoRank types.Rank, list *MoveList) {
	if to.RankOf() != promoRank {
		list.Add(types.NewMove(from, to, piece, types.NoPiece, types.Quiet))
		return
	}
	side := piece.ColorOf()
	for _, base := range [4]types.Piece{types.QueenBase, types.RookBase, types.BishopBase, types.KnightBase} {
		list.Add(types.NewMove(from, to, piece, types.MakePiece(base, side), types.Promo))
	}
}

func addPawnCapture(piece types.Piece, from, to types.Square, captured types.Piece, promoRank types.Rank, list *MoveList) {
	if to.RankOf() != promoRank {
		list.Add(types.NewMove(from, to, piece, captured, types.Cap))
		return
	}
	for _, kind := range [4]types.MoveKind{types.QPromoCap, types.RPromoCap, types.BPromoCap, types.NPromoCap} {
		list.Add(types.NewMove(from, to, piece, captured, kind))
	}
}

// genCastling emits the castling moves whose rights bit is set and whose
// between-squares are empty. It is only called from genNormal, so the king's
// origin square is known not to be attacked; whether its traversed and
// destination squares are attacked is left to Legal (§4.7-style layering:
// generation checks rights and occupancy, the legality filter checks safety).
func genCastling(pos *position.Position, side types.Color, list *MoveList) {
	cr := pos.Castling()
	occ := pos.All()

	if side == types.White {
		if cr.Has(types.CastlingWK) && occ&(types.SqF1.Bb()|types.SqG1.Bb()) == 0 {
			list.Add(types.NewMove(types.SqE1, types.SqG1, types.WhiteKing, types.NoPiece, types.WKingside))
		}
		if cr.Has(types.CastlingWQ) && occ&(types.SqB1.Bb()|types.SqC1.Bb()|types.SqD1.Bb()) == 0 {
			list.Add(types.NewMove(types.SqE1, types.SqC1, types.WhiteKing, types.NoPiece, types.WQueenside))
		}
		return
	}

	if cr.Has(types.CastlingBK) && occ&(types.SqF8.Bb()|types.SqG8.Bb()) == 0 {
		list.Add(types.NewMove(types.SqE8, types.SqG8, types.BlackKing, types.NoPiece, types.BKingside))
	}
	if cr.Has(types.CastlingBQ) && occ&(types.SqB8.Bb()|types.SqC8.Bb()|types.SqD8.Bb()) == 0 {
		list.Add(types.NewMove(types.SqE8, types.SqC8, types.BlackKing, types.NoPiece, types.BQueenside))
	}
}

func squaresAttacked(pos *position.Position, by types.Color, sqs ...types.Square) bool {
	for _, sq := range sqs {
		if pos.AttackersOf(sq, by) != 0 {
			return true
		}
	}
	return false
}

// Legal applies the legality filter to dst, the position reached by
// playing m. wasChecked records whether m came from the evasion generator;
// the original engine skips the "king not in check" re-test in that case
// since the evasion generator already guarantees it, but this one runs the
// test unconditionally - a cheap, always-correct superset of that
// shortcut, kept as a parameter only so the signature matches the rest of
// the engine's checked/unchecked move handling.
func Legal(dst *position.Position, m types.Move, wasChecked bool) bool {
	_ = wasChecked
	if dst.Halfmove() > 100 {
		return false
	}

	mover := m.Piece().ColorOf()
	if dst.AttackersOf(dst.KingSquare(mover), mover.Flip()) != 0 {
		return false
	}

	if !m.IsCastle() {
		return true
	}

	enemy := mover.Flip()
	switch m.Kind() {
	case types.WKingside:
		return !squaresAttacked(dst, enemy, types.SqF1, types.SqG1)
	case types.WQueenside:
		return !squaresAttacked(dst, enemy, types.SqD1, types.SqC1)
	case types.BKingside:
		return !squaresAttacked(dst, enemy, types.SqF8, types.SqG8)
	case types.BQueenside:
		return !squaresAttacked(dst, enemy, types.SqD8, types.SqC8)
	}
	return true
}
