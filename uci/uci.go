// Package uci converts between types.Move and UCI long-algebraic move
// strings ("e2e4", "e7e8q").
package uci

import (
	"regexp"

	"github.com/georgib0y/chesscore/movegen"
	"github.com/georgib0y/chesscore/position"
	"github.com/georgib0y/chesscore/types"
)

var uciMoveRe = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)

// MoveToUCI renders m in UCI long-algebraic form.
func MoveToUCI(m types.Move) string { return m.UCI() }

// MoveFromUCI parses a 4- or 5-character UCI move string against pos by
// generating every legal move and matching its own UCI rendering against
// s - simpler, and safer, than reconstructing captured piece/move kind by
// hand from the bare squares, and it can never hand back a pseudo-legal-
// but-illegal move since it runs the same legality filter the search
// does. Returns MoveNone if s is malformed or matches no legal move.
func MoveFromUCI(pos *position.Position, s string) types.Move {
	if !uciMoveRe.MatchString(s) {
		return types.MoveNone
	}

	checked := pos.InCheck()
	list := movegen.Generate(pos)
	for _, m := range list.Moves() {
		if m.UCI() != s {
			continue
		}
		child := pos.Apply(m)
		if movegen.Legal(&child, m, checked) {
			return m
		}
	}
	return types.MoveNone
}
