// Command chessplay-core is a thin driver over internal/engine: it is not
// a protocol front-end. Given a FEN and a time budget it runs one search
// and prints the chosen move, for manual testing and profiling without a
// UCI client in the loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/engine"
	"github.com/hailam/chessplay/internal/tablebase"
)

var (
	fen          = flag.String("fen", board.StartFEN, "FEN of the position to search")
	moveTime     = flag.Duration("movetime", 2*time.Second, "time budget for the search")
	hashMB       = flag.Int("hash", 64, "transposition table size in megabytes")
	cpuprofile   = flag.String("cpuprofile", "", "write cpu profile to file")
	tbCacheDir   = flag.String("tbcache", "", "directory for the persistent tablebase probe cache (empty disables it)")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	tt := engine.NewTranspositionTable(*hashMB)
	searcher := engine.NewSearcher(tt)

	if *tbCacheDir != "" {
		cache, err := tablebase.NewCachingProber(tablebase.NoopProber{}, *tbCacheDir)
		if err != nil {
			log.Printf("tablebase cache disabled: %v", err)
		} else {
			defer cache.Close()
			searcher.SetTablebase(cache)
		}
	}

	root := engine.NewRoot(searcher)
	root.SetInfoSink(func(info engine.Info) {
		log.Printf("budget=%.0f score=%d nodes=%d elapsed=%s pv=%s",
			info.NodeBudget, info.Score, info.Nodes, info.Elapsed, formatPV(info.PV))
	})

	limits := engine.UCILimits{MoveTime: *moveTime}
	best := root.Think(pos, limits, 0)

	if best == board.NoMove {
		fmt.Println("(no legal move)")
		return
	}
	fmt.Println(best.String())
}

func formatPV(pv []board.Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
