package movegen

import "github.com/georgib0y/chesscore/position"

// Perft counts the leaf nodes reachable from pos at exactly depth plies,
// recursively generating, applying, and legality-filtering every move.
// The standard move-generator correctness exercise: compare against known
// node counts for the start position and a handful of tricky FENs.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	checked := pos.InCheck()
	list := Generate(pos)

	var nodes uint64
	for _, m := range list.Moves() {
		child := pos.Apply(m)
		if !Legal(&child, m, checked) {
			continue
		}
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// Divide is Perft with the node count broken out per legal root move,
// following the perftree "divide" protocol: per-move subtree counts plus
// the grand total.
func Divide(pos *position.Position, depth int) (counts map[string]uint64, total uint64) {
	counts = make(map[string]uint64)

	checked := pos.InCheck()
	list := Generate(pos)

	for _, m := range list.Moves() {
		child := pos.Apply(m)
		if !Legal(&child, m, checked) {
			continue
		}
		n := Perft(&child, depth-1)
		counts[m.UCI()] = n
		total += n
	}
	return counts, total
}
