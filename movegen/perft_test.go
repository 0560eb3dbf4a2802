package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgib0y/chesscore/position"
)

// startPosNodes is the standard perft node-count table for the initial
// position, depth 1 through 6.
var startPosNodes = map[int]uint64{
	1: 20,
	2: 400,
	3: 8902,
	4: 197281,
	5: 4865609,
	6: 119060324,
}

func TestPerftStartPosition(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)

	maxDepth := 5
	if testing.Short() {
		maxDepth = 3
	}
	for depth := 1; depth <= maxDepth; depth++ {
		assert.Equal(t, startPosNodes[depth], Perft(&pos, depth), "depth %d", depth)
	}
}

func TestPerftStartPositionDepth6(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-6 perft in short mode")
	}
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	assert.Equal(t, startPosNodes[6], Perft(&pos, 6))
}

// known-position perft table - the classic set of tricky FENs used to
// regression-test a move generator against pins, castling, promotions and
// en-passant edge cases, each checked to the depth it's conventionally
// quoted at.
var knownPositions = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
}{
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		depth: 5,
		nodes: 193690690,
	},
	{
		name:  "endgame-rook",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		depth: 7,
		nodes: 178633661,
	},
	{
		name:  "promotion-heavy",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		depth: 6,
		nodes: 706045033,
	},
	{
		name:  "talkchess-position5",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		depth: 5,
		nodes: 89941194,
	},
	{
		name:  "talkchess-position6",
		fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		depth: 5,
		nodes: 164075551,
	},
}

func TestPerftKnownPositions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft positions in short mode")
	}
	for _, tt := range knownPositions {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := position.FromFEN(tt.fen)
			require.NoError(t, err)
			assert.Equal(t, tt.nodes, Perft(&pos, tt.depth))
		})
	}
}

// TestPerftDivideSumsToTotal checks Divide's own internal consistency: the
// per-move subtree counts must sum to the same total Perft reports, and
// every root move that appears must be a legal move string.
func TestPerftDivideSumsToTotal(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)

	const depth = 3
	counts, total := Divide(&pos, depth)
	assert.Equal(t, Perft(&pos, depth), total)

	var sum uint64
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, total, sum)

	list := Generate(&pos)
	legalUCI := make(map[string]bool)
	checked := pos.InCheck()
	for _, m := range list.Moves() {
		child := pos.Apply(m)
		if Legal(&child, m, checked) {
			legalUCI[m.UCI()] = true
		}
	}
	for uci := range counts {
		assert.True(t, legalUCI[uci], "divide reported non-legal root move %s", uci)
	}
	assert.Equal(t, len(legalUCI), len(counts))
}

// TestPerftEvasionPathMatchesDispatch is the check-path-vs-normal-path
// regression from the known tricky endgame position: Generate always
// dispatches on InCheck, so a correct generator's perft count already
// reflects both paths at every node along the tree. A wrong dispatch
// (e.g. evasion-mode moves leaking into a non-check node, or vice versa)
// would desynchronize the node count from the known-good value.
func TestPerftEvasionPathMatchesDispatch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	pos, err := position.FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
	require.NoError(t, err)
	assert.Equal(t, uint64(43238), Perft(&pos, 4))
}

// recomputeWalk walks every position reachable within depth plies of pos
// (legal or not - the check runs on every child Apply produces, exactly
// like the original engine's val_perft/hash_perft do before filtering on
// legality) and asserts pos.VerifyRecompute() holds at each one: the
// hash and midgame/endgame eval accumulators Apply maintains incrementally
// must always match a from-scratch recomputation. Returns the total
// number of nodes visited at depth 0, same as Perft.
func recomputeWalk(t *testing.T, pos *position.Position, depth int) uint64 {
	t.Helper()
	if depth == 0 {
		return 1
	}

	checked := pos.InCheck()
	list := Generate(pos)

	var nodes uint64
	for _, m := range list.Moves() {
		child := pos.Apply(m)

		hashOK, evalOK := child.VerifyRecompute()
		require.True(t, hashOK, "hash mismatch after %s from %s", m, pos.FEN())
		require.True(t, evalOK, "eval mismatch after %s from %s", m, pos.FEN())

		if !Legal(&child, m, checked) {
			continue
		}
		nodes += recomputeWalk(t, &child, depth-1)
	}
	return nodes
}

// TestPerftRecomputeAssert is the eval/hash correctness gate required
// alongside plain node-counting perft: every node along the walk must
// recompute to the same hash and eval the incremental Apply produced.
func TestPerftRecomputeAssert(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	hashOK, evalOK := pos.VerifyRecompute()
	require.True(t, hashOK)
	require.True(t, evalOK)

	depth := 4
	if testing.Short() {
		depth = 2
	}
	assert.Equal(t, startPosNodes[depth], recomputeWalk(t, &pos, depth))
}

// TestPerftRecomputeAssertTacticalPosition repeats the walk on the
// kiwipete position, whose castling, en-passant and promotion-adjacent
// moves exercise every incremental hash/eval update path Apply has.
func TestPerftRecomputeAssertTacticalPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	pos, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, uint64(2039), recomputeWalk(t, &pos, 2))
}
