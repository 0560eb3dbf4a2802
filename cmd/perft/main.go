// Command perft is a CLI driver around the movegen package's node counter:
// plain perft (total leaf nodes at a depth) and perft-divide (per-root-move
// subtree counts, perftree protocol).
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/georgib0y/chesscore/config"
	"github.com/georgib0y/chesscore/logging"
	"github.com/georgib0y/chesscore/movegen"
	"github.com/georgib0y/chesscore/position"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog("perft")

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", "startpos", `FEN to run against, or "startpos"`)
	depth := flag.Int("perft", 0, "run perft to the given depth")
	divide := flag.Int("divide", 0, "run perft-divide (per-root-move subtree counts) to the given depth")
	doProfile := flag.Bool("profile", false, "enable CPU profiling for the duration of the run")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := position.FromFEN(*fen)
	if err != nil {
		log.Errorf("invalid fen %q: %v", *fen, err)
		os.Exit(1)
	}

	switch {
	case *divide > 0:
		runDivide(&pos, *divide)
	case *depth > 0:
		runPerft(&pos, *depth)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runPerft(pos *position.Position, depth int) {
	out.Printf("perft depth %d, fen %s\n", depth, pos.FEN())

	start := time.Now()
	nodes := movegen.Perft(pos, depth)
	elapsed := time.Since(start)

	out.Printf("nodes: %d\n", nodes)
	out.Printf("time : %s\n", elapsed)
	if elapsed > 0 {
		out.Printf("nps  : %d\n", nodes*uint64(time.Second)/uint64(elapsed))
	}
}

// runDivide prints one "move count" line per legal root move in
// alphabetical order, a blank line, then the total - the format the
// perftree tool expects on stdout.
func runDivide(pos *position.Position, depth int) {
	counts, total := movegen.Divide(pos, depth)

	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	for _, m := range moves {
		fmt.Printf("%s %d\n", m, counts[m])
	}
	fmt.Println()
	fmt.Printf("%d\n", total)
}
