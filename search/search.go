// Package search implements negamax alpha-beta over movegen's move lists,
// extended by a quiescence search at the search horizon. It is
// single-threaded and allocation-free after init: every recursion owns its
// own Position (copy-make) and move list. Callers must have run
// config.Setup() and let every package's init() complete before calling
// RootSearch - see the package-level state types/magic.go, position/zobrist.go
// and position/eval.go build at import time.
package search

import (
	"github.com/georgib0y/chesscore/config"
	"github.com/georgib0y/chesscore/logging"
	"github.com/georgib0y/chesscore/movegen"
	"github.com/georgib0y/chesscore/position"
	"github.com/georgib0y/chesscore/types"
)

// trace guards debug logging inside the recursion. Left off by default -
// even a single Debugf call per node would dominate runtime, so this
// mirrors the teacher's own search.go restraint of gating trace logging
// behind a compile-time constant rather than the configured log level.
const trace = false

var log = logging.GetLog("search")

// RootSearch enumerates pos's legal moves at the root, returning the best
// score (from pos's side to move's perspective) and the move that achieves
// it. Returns (ValueNone, MoveNone) if pos has no legal moves.
func RootSearch(pos *position.Position, depth int, alpha, beta types.Value) (types.Value, types.Move) {
	checked := pos.InCheck()
	list := movegen.Generate(pos)
	s := scoreMoves(&list)

	best := types.ValueNone
	bestMove := types.MoveNone

	for m, ok := s.nextMove(); ok; m, ok = s.nextMove() {
		child := pos.Apply(m)
		if !movegen.Legal(&child, m, checked) {
			continue
		}

		value := -alphaBeta(&child, -beta, -alpha, depth-1)
		if trace {
			log.Debugf("root %s depth %d -> %d", m, depth, value)
		}

		if best == types.ValueNone || value > best {
			best = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
	}

	return best, bestMove
}

// alphaBeta is the negamax recursion below the root. Mirrors spec.md's
// pseudocode literally, including its omission of a no-legal-moves
// (checkmate/stalemate) special case - see DESIGN.md.
func alphaBeta(pos *position.Position, alpha, beta types.Value, depth int) types.Value {
	if depth == 0 {
		return quiesce(pos, alpha, beta, 0)
	}

	checked := pos.InCheck()
	list := movegen.Generate(pos)
	s := scoreMoves(&list)

	for m, ok := s.nextMove(); ok; m, ok = s.nextMove() {
		child := pos.Apply(m)
		if !movegen.Legal(&child, m, checked) {
			continue
		}

		value := -alphaBeta(&child, -beta, -alpha, depth-1)
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}

// quiesce extends the search along captures only, past the nominal
// horizon, to avoid misjudging a position mid-exchange. It does not call
// movegen.Legal on the moves it tries - the king-capture sentinel below is
// a cheaper universal stand-in: any move that leaves its own king
// attacked is rejected a ply later, when the opponent's reply captures
// that king and this function unwinds with +infinity, which the caller
// then sees as an unbeatable reply and discards via the beta cutoff.
func quiesce(pos *position.Position, alpha, beta types.Value, qPly int) types.Value {
	if qPly > config.Settings.Search.QPlyMax {
		return alpha
	}

	eval := position.Evaluate(pos)
	if eval >= beta {
		return beta
	}
	if eval > alpha {
		alpha = eval
	}

	list := movegen.GenerateCaptures(pos)
	s := scoreMoves(&list)
	endgame := position.IsEndgame(pos)

	for m, ok := s.nextQMove(); ok; m, ok = s.nextQMove() {
		captured := capturedPiece(pos, m)
		if captured.Base() == types.KingBase {
			return types.ValueInf
		}

		if !m.IsPromotion() && !endgame {
			margin := eval + position.MaterialValue(captured) + types.Value(config.Settings.Search.DeltaMargin)
			if margin < alpha {
				continue
			}
		}

		child := pos.Apply(m)
		value := -quiesce(&child, -beta, -alpha, qPly+1)
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}

// capturedPiece returns the piece a capturing move removes. Every kind but
// Ep carries it directly in Move.Extra; an en-passant capture's victim is
// never the landing square's occupant (the landing square is empty), so
// it's reconstructed as the opponent's pawn.
func capturedPiece(pos *position.Position, m types.Move) types.Piece {
	if m.Kind() == types.Ep {
		return types.MakePiece(types.PawnBase, pos.SideToMove().Flip())
	}
	return m.Extra()
}
