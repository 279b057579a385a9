package engine

import (
	"time"

	"github.com/hailam/chessplay/internal/board"
)

// startBudget is the node budget handed to the first iteration. Each
// further iteration multiplies the previous budget by budgetGrowth, the
// geometric schedule standing in for integer depth increments.
const (
	startBudget  = 256.0
	budgetGrowth = 4.0

	aspirationWindow = 50
	aspirationGrowth = 4
)

// Info is one line of search progress, handed to the InfoSink after every
// completed iteration.
type Info struct {
	NodeBudget float64
	Score      int
	Nodes      uint64
	Elapsed    time.Duration
	PV         []board.Move
}

// InfoSink receives progress updates during a root search. A nil sink is
// fine; Root only calls it when non-nil.
type InfoSink func(Info)

// Root drives iterative deepening over node budgets, managing think time
// and aspiration windows around the Searcher's single-pass negamax. It is
// the one piece of the engine allowed to own a wall-clock deadline; the
// Searcher itself only ever looks at its stop flag.
type Root struct {
	searcher *Searcher
	tm       *TimeManager
	sink     InfoSink
}

// NewRoot creates a root controller around the given searcher.
func NewRoot(searcher *Searcher) *Root {
	return &Root{searcher: searcher, tm: NewTimeManager()}
}

// SetInfoSink installs a callback invoked after every completed iteration.
func (r *Root) SetInfoSink(sink InfoSink) {
	r.sink = sink
}

// Think searches pos under the given UCI time limits and returns the best
// move found, stopping early if the position has no legal moves.
func (r *Root) Think(pos *board.Position, limits UCILimits, ply int) board.Move {
	r.searcher.Reset()
	r.searcher.tt.NewSearch()
	r.tm.Init(limits, pos.SideToMove, ply)

	legal := pos.GenerateLegalMoves()
	if legal.Len() == 0 {
		return board.NoMove
	}
	if legal.Len() == 1 {
		return legal.Get(0).WithoutScore()
	}

	stopTimer := time.AfterFunc(r.tm.MaximumTime(), r.searcher.Stop)
	defer stopTimer.Stop()

	budget := startBudget
	var bestMove board.Move
	var bestScore int
	var lastScore int
	haveScore := false
	stability := 0
	changes := 0

	maxBudget := float64(limits.Nodes)
	if maxBudget == 0 {
		maxBudget = -1
	}

	for iter := 0; ; iter++ {
		if limits.Depth > 0 && iter >= limits.Depth {
			break
		}

		move, score := r.searchWithAspiration(pos, budget, lastScore, haveScore)

		if r.searcher.stopFlag.Load() {
			break
		}

		if move != board.NoMove {
			if haveScore && move.Same(bestMove) {
				stability++
				changes = 0
			} else if haveScore {
				changes++
				stability = 0
			}
			bestMove = move
			bestScore = score
			lastScore = score
			haveScore = true
		}

		if r.sink != nil {
			r.sink(Info{
				NodeBudget: budget,
				Score:      bestScore,
				Nodes:      r.searcher.Nodes(),
				Elapsed:    r.tm.Elapsed(),
				PV:         r.searcher.GetPV(),
			})
		}

		if stability > 0 {
			r.tm.AdjustForStability(stability)
		}
		if changes > 0 {
			r.tm.AdjustForInstability(changes)
		}

		if r.tm.PastOptimum() {
			break
		}
		if maxBudget > 0 && budget >= maxBudget {
			break
		}

		budget *= budgetGrowth
	}

	r.searcher.killers.MoveMade()
	r.searcher.history.NotifyMoveMade()

	return bestMove
}

// searchWithAspiration runs one iteration, narrowing the window around the
// previous iteration's score and re-searching with a wider window on a
// fail-high or fail-low, same as the teacher's depth-based loop did.
func (r *Root) searchWithAspiration(pos *board.Position, budget float64, prevScore int, havePrev bool) (board.Move, int) {
	if !havePrev {
		return r.searcher.Search(pos, budget)
	}

	window := aspirationWindow
	alpha := prevScore - window
	beta := prevScore + window

	for {
		move, score := r.searcher.searchRoot(pos, budget, alpha, beta)
		if r.searcher.stopFlag.Load() {
			return move, score
		}
		if score <= alpha {
			alpha -= window
			window *= aspirationGrowth
			continue
		}
		if score >= beta {
			beta += window
			window *= aspirationGrowth
			continue
		}
		return move, score
	}
}
