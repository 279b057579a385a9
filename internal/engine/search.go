package engine

import (
	"sync/atomic"

	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/tablebase"
)

// Search constants
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128

	// quiescenceBudget is the node-budget threshold below which the
	// kernel hands off to quiescence search instead of a further
	// full-width ply. A node still in check at or below this budget is
	// never handed to quiescence: it gets a one-ply check extension
	// instead (see the negamax/quiescence in-check handling below).
	quiescenceBudget = 1.0

	// nullMoveMinBudget is the smallest remaining budget at which null
	// move pruning is attempted at all; below it the reduced search
	// wouldn't save enough to be worth the risk of a zugzwang error.
	nullMoveMinBudget = 12.0

	// nullMoveReductionScale shrinks the child budget for the null-move
	// search itself.
	nullMoveReductionScale = 3e-4

	// iidMinBudget is the smallest remaining budget at which internal
	// iterative deepening is attempted, at PV nodes only, when the TT
	// has no best move.
	iidMinBudget = 1024.0
	iidFraction  = 0.1
)

// PVTable stores the principal variation.
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}

// Searcher performs the node-budget negamax/PVS search described by the
// root controller in root.go. A single Searcher is not safe for
// concurrent use; the core is intentionally single-threaded.
type Searcher struct {
	pos       *board.Position
	tt        *TranspositionTable
	killers   *KillerTable
	counters  *CounterMoveTable
	history   *HistoryTable
	evaluator MoveEvaluator
	tablebase tablebase.Prober

	nodes    uint64
	stopFlag *atomic.Bool

	pv        PVTable
	undoStack [MaxPly]board.UndoInfo
	prevMove  [MaxPly]board.Move
}

// NewSearcher creates a searcher sharing the given transposition table
// and heuristic tables, using the default allocation-ladder evaluator.
func NewSearcher(tt *TranspositionTable) *Searcher {
	killers := NewKillerTable()
	counters := NewCounterMoveTable()
	history := NewHistoryTable()
	return &Searcher{
		tt:        tt,
		killers:   killers,
		counters:  counters,
		history:   history,
		evaluator: NewStaticMoveEvaluator(killers, counters, history),
		tablebase: tablebase.NoopProber{},
		stopFlag:  &atomic.Bool{},
	}
}

// SetTablebase installs a probe collaborator; nil restores the no-op stub.
func (s *Searcher) SetTablebase(p tablebase.Prober) {
	if p == nil {
		p = tablebase.NoopProber{}
	}
	s.tablebase = p
}

// Stop signals the search to abort at the next node-counter check.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Reset clears per-search node/stop state but keeps the longer-lived
// killer/history/counter tables, which only decay via NotifyMoveMade.
func (s *Searcher) Reset() {
	s.stopFlag.Store(false)
	s.nodes = 0
}

// Nodes returns the number of nodes searched so far.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs one negamax pass over the given node budget and returns the
// best move found and its score. Call this once per iterative-deepening
// step from root.go; it does not itself iterate.
func (s *Searcher) Search(pos *board.Position, nodeBudget float64) (board.Move, int) {
	return s.searchRoot(pos, nodeBudget, -Infinity, Infinity)
}

// searchRoot is Search with an explicit aspiration window, letting the
// root controller in root.go narrow and widen alpha/beta across
// iterations without the kernel knowing anything about aspiration.
func (s *Searcher) searchRoot(pos *board.Position, nodeBudget float64, alpha, beta int) (board.Move, int) {
	s.pos = pos
	s.prevMove[0] = board.NoMove

	score := s.negamax(nodeBudget, 0, alpha, beta, true)

	var bestMove board.Move
	if s.pv.length[0] > 0 {
		bestMove = s.pv.moves[0][0]
	}
	return bestMove, score
}

// negamax searches a node with the given remaining node budget. It
// returns a score from the side-to-move's perspective. nullAllowed is
// false only immediately below a null-move search, so two null moves can
// never be made back to back.
func (s *Searcher) negamax(nodeBudget float64, ply int, alpha, beta int, nullAllowed bool) int {
	if s.nodes&4095 == 0 && s.stopFlag.Load() {
		return 0
	}
	s.nodes++
	s.pv.length[ply] = ply

	if ply > 0 {
		if s.pos.Is3Fold() || s.pos.Is50Moves() || s.pos.HasInsufficientMaterial(false) {
			return 0
		}
	}

	if probe := s.tablebase.Probe(s.pos); probe.Found {
		return tablebase.WDLToScore(probe.WDL, ply)
	}

	isPV := beta-alpha > 1
	origAlpha := alpha

	var ttMove board.Move
	if entry, found := s.tt.Probe(s.pos.Hash); found {
		ttMove = entry.BestMove
		// TT-based cutoffs are a non-PV optimization: at a PV node the
		// stored bound only ever feeds move ordering, never shortcuts
		// the search, so the true PV is always re-derived.
		if !isPV && entry.NodeBudget >= nodeBudget {
			score := AdjustScoreFromTT(int(entry.Score), ply)
			switch entry.Bound {
			case BoundExact:
				return score
			case BoundLower:
				if score > alpha {
					alpha = score
				}
			case BoundUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	inCheck := s.pos.InCheck()

	// A node still in check never drops into quiescence: captures alone
	// can't enumerate check evasions, so instead it gets one more full
	// ply (a check extension) at the smallest budget quiescence would
	// otherwise have used.
	if nodeBudget <= quiescenceBudget {
		if !inCheck {
			return s.quiescence(ply, 0, alpha, beta)
		}
		nodeBudget = quiescenceBudget
	}

	staticEval := EvaluateForSideToMove(s.pos)

	// Internal iterative deepening: at a PV node with no hash move to
	// try first and enough budget remains, spend a slice of it finding
	// one.
	if ttMove == board.NoMove && isPV && nodeBudget >= iidMinBudget && !inCheck {
		s.negamax(nodeBudget*iidFraction, ply, alpha, beta, nullAllowed)
		if entry, found := s.tt.Probe(s.pos.Hash); found {
			ttMove = entry.BestMove
		}
	}

	// Null move pruning: skip our move entirely and see if the opponent
	// is still in trouble even with a free tempo. Never tried in check,
	// at a PV node, in pure pawn endgames (zugzwang risk), near the
	// leaves, or when the static eval doesn't already look winning
	// enough to expect a cutoff.
	if nullAllowed && !isPV && !inCheck && staticEval >= beta &&
		nodeBudget >= nullMoveMinBudget && s.pos.HasNonPawnMaterial() {
		undo := s.pos.MakeNullMove()
		childBudget := nodeBudget * nullMoveReductionScale
		if childBudget < 1 {
			childBudget = 1
		}
		score := -s.negamax(childBudget, ply+1, -beta, -beta+1, false)
		s.pos.UnmakeNullMove(undo)
		if score >= beta {
			s.tt.Store(s.pos.Hash, nodeBudget, AdjustScoreToTT(beta, ply), BoundLower, board.NoMove)
			return beta
		}
	}

	infos := s.evaluator.GenerateAndEvaluateMoves(s.pos, ttMove, s.prevMove[ply], ply)
	if len(infos) == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}

	picker := NewMovePicker(infos, false)

	bestScore := -Infinity
	bestMove := board.NoMove
	bound := BoundUpper
	first := true

	for {
		info, ok := picker.Next()
		if !ok {
			break
		}
		move := info.Move
		childBudget := nodeBudget * info.NodeAllocation * 4
		if childBudget < 1 {
			childBudget = 1
		}

		s.undoStack[ply] = s.pos.MakeMove(move)
		if !s.undoStack[ply].Valid {
			continue
		}
		s.prevMove[ply+1] = move

		var score int
		if first {
			score = -s.negamax(childBudget, ply+1, -beta, -alpha, true)
		} else {
			score = -s.negamax(childBudget, ply+1, -alpha-1, -alpha, true)
			if score > alpha && score < beta {
				score = -s.negamax(childBudget, ply+1, -beta, -alpha, true)
			}
		}
		first = false

		s.pos.UnmakeMove(move, s.undoStack[ply])

		if s.stopFlag.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = move
			if score > alpha {
				alpha = score
				bound = BoundExact
				s.pv.moves[ply][ply] = move
				for j := ply + 1; j < s.pv.length[ply+1]; j++ {
					s.pv.moves[ply][j] = s.pv.moves[ply+1][j]
				}
				s.pv.length[ply] = s.pv.length[ply+1]
			}
		}

		if score >= beta {
			s.tt.Store(s.pos.Hash, nodeBudget, AdjustScoreToTT(score, ply), BoundLower, bestMove)
			if !move.IsCapture(s.pos) {
				s.killers.Notify(ply, move)
				s.history.NotifyCutoff(move, nodeBudget)
			}
			return score
		}
		if !move.IsCapture(s.pos) {
			s.history.NotifyNoCutoff(move, nodeBudget)
		}
	}

	_ = origAlpha
	_ = staticEval
	s.tt.Store(s.pos.Hash, nodeBudget, AdjustScoreToTT(bestScore, ply), bound, bestMove)
	return bestScore
}

// quiescence resolves captures (and queen promotions) until the position
// is quiet, to avoid the horizon effect at the end of a search line.
// qsDepth counts plies since quiescence was entered from negamax (0 at
// entry); a QS node other than the entry ply that finds itself in check
// (a discovered check from a capture, typically) re-enters the full
// search at a minimal budget instead of continuing to pick violent moves
// only, since a quiet check evasion can be the only legal reply.
func (s *Searcher) quiescence(ply, qsDepth int, alpha, beta int) int {
	const maxQuiescencePly = 32
	if ply >= MaxPly || qsDepth > maxQuiescencePly {
		return EvaluateForSideToMove(s.pos)
	}
	if s.stopFlag.Load() {
		return 0
	}
	s.nodes++

	if qsDepth > 0 && s.pos.InCheck() {
		return s.negamax(1, ply, alpha, beta, true)
	}

	origAlpha := alpha

	// TT cutoffs apply here the same as in negamax, just ignoring the
	// node-budget comparison: quiescence nodes are always stored and
	// probed at nodeBudget 0, so any stored entry for this hash is usable.
	if entry, found := s.tt.Probe(s.pos.Hash); found {
		score := AdjustScoreFromTT(int(entry.Score), ply)
		switch entry.Bound {
		case BoundExact:
			return score
		case BoundLower:
			if score > alpha {
				alpha = score
			}
		case BoundUpper:
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			return score
		}
	}

	standPat := EvaluateForSideToMove(s.pos)
	if standPat >= beta {
		s.tt.Store(s.pos.Hash, 0, AdjustScoreToTT(beta, ply), BoundLower, board.NoMove)
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	bigDelta := pieceValues[board.Queen]
	if standPat+bigDelta < alpha {
		return alpha
	}

	infos := s.evaluator.GenerateAndEvaluateMoves(s.pos, board.NoMove, s.prevMove[ply], ply)
	picker := NewMovePicker(infos, true)

	bestMove := board.NoMove
	for {
		info, ok := picker.Next()
		if !ok {
			break
		}
		move := info.Move

		if !s.pos.InCheck() {
			captureValue := info.SeeScore
			if standPat+captureValue+200 < alpha {
				continue
			}
		}

		undo := s.pos.MakeMove(move)
		if !undo.Valid {
			continue
		}
		score := -s.quiescence(ply+1, qsDepth+1, -beta, -alpha)
		s.pos.UnmakeMove(move, undo)

		if score >= beta {
			s.tt.Store(s.pos.Hash, 0, AdjustScoreToTT(score, ply), BoundLower, move)
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = move
		}
	}

	bound := BoundUpper
	if alpha > origAlpha {
		bound = BoundExact
	}
	s.tt.Store(s.pos.Hash, 0, AdjustScoreToTT(alpha, ply), bound, bestMove)
	return alpha
}

// GetPV returns the principal variation from the last Search call.
func (s *Searcher) GetPV() []board.Move {
	pv := make([]board.Move, s.pv.length[0])
	for i := 0; i < s.pv.length[0]; i++ {
		pv[i] = s.pv.moves[0][i]
	}
	return pv
}
