package search

import (
	"github.com/georgib0y/chesscore/movegen"
	"github.com/georgib0y/chesscore/position"
	"github.com/georgib0y/chesscore/types"
)

// scoreNone marks a move a linear scan has already consumed.
const scoreNone = -(1 << 30)

// underPromoPenalty deprioritizes knight/rook/bishop promotion captures -
// almost always worse than the queen promotion, never worth searching
// first.
const underPromoPenalty = -10

// pawnPawnRatio is the MVV/LVA score for an en-passant capture: always a
// pawn taking a pawn, so the victim/attacker ratio is constant.
const pawnPawnRatio = 100

// scored pairs a generated move list with a parallel MVV/LVA score slice,
// drained by nextMove/nextQMove.
type scored struct {
	moves  []types.Move
	scores [200]int32
}

// scoreMoves scores every move in list per the MVV/LVA table: plain
// captures by (victim/attacker)*100, en-passant as a constant pawn/pawn
// ratio, queen-promo-captures by (victim/queen)*100, under-promotion
// captures penalized, and quiet moves by the moving piece's own value.
func scoreMoves(list *movegen.MoveList) scored {
	s := scored{moves: list.Moves()}
	for i, m := range s.moves {
		s.scores[i] = scoreMove(m)
	}
	return s
}

func scoreMove(m types.Move) int32 {
	if !m.IsCapture() {
		return int32(position.MaterialValue(m.Piece()))
	}
	switch m.Kind() {
	case types.Ep:
		return pawnPawnRatio
	case types.QPromoCap:
		return int32(position.MaterialValue(m.Extra())) * 100 / int32(position.MaterialValue(types.WhiteQueen))
	case types.NPromoCap, types.RPromoCap, types.BPromoCap:
		return underPromoPenalty
	default:
		victim := int32(position.MaterialValue(m.Extra()))
		attacker := int32(position.MaterialValue(m.Piece()))
		return victim * 100 / attacker
	}
}

// next returns the highest-scoring move still above minScore, marking it
// consumed (score = scoreNone) so a later call skips it. Returns
// (MoveNone, false) once nothing remains above minScore.
func (s *scored) next(minScore int32) (types.Move, bool) {
	best := -1
	bestScore := minScore
	for i, sc := range s.scores[:len(s.moves)] {
		if sc > bestScore {
			bestScore = sc
			best = i
		}
	}
	if best < 0 {
		return types.MoveNone, false
	}
	s.scores[best] = scoreNone
	return s.moves[best], true
}

// nextMove returns the best remaining move, in MVV/LVA order, or false
// once the list is exhausted.
func (s *scored) nextMove() (types.Move, bool) { return s.next(scoreNone) }

// nextQMove is the quiescence variant: it additionally requires score >
// 100, skipping neutral or losing exchanges without a full SEE.
func (s *scored) nextQMove() (types.Move, bool) { return s.next(100) }
