package engine

import "github.com/hailam/chessplay/internal/board"

// MoveInfo is what a MoveEvaluator hands back for one candidate move: the
// move itself, its share of the parent node's remaining budget, and the
// raw SEE scores the allocation was derived from (kept around so the
// search doesn't have to recompute them for pruning decisions).
type MoveInfo struct {
	Move           board.Move
	NodeAllocation float64
	SeeScore       int
	NmSeeScore     int
	Kind           MoveKind
}

// MoveKind classifies a candidate move the way the allocation ladder
// needs to: which stage of the move picker produced it.
type MoveKind uint8

const (
	KindHash MoveKind = iota
	KindQueenPromotion
	KindWinningOrEqualCapture
	KindKiller
	KindCounterMove
	KindOther
	KindLosingCapture
)

// MoveEvaluator assigns a node-budget share to every legal move at a
// position, so the search can divide its remaining work among children
// instead of decrementing an integer depth. EvaluateMoves scores an
// already-generated list; GenerateAndEvaluateMoves does both steps at
// once. NotifyBestMove lets a learned evaluator update itself once the
// search settles on a best move — the static evaluator below ignores it.
type MoveEvaluator interface {
	EvaluateMoves(pos *board.Position, moves *board.MoveList, ttMove, prevMove board.Move, ply int) []MoveInfo
	GenerateAndEvaluateMoves(pos *board.Position, ttMove, prevMove board.Move, ply int) []MoveInfo
	NotifyBestMove(pos *board.Position, best board.Move, nodeBudget float64)
}

// allocation ladder weights, matching the original engine's static
// evaluator: scores are normalized to sum to 1 across siblings before the
// search uses them, so these are relative weights, not probabilities.
const (
	allocHash             = 3.0
	allocQueenPromo       = 2.0008
	allocWinningCapture   = 2.0007
	allocKillerBase       = 1.1
	allocKillerStep       = 0.0001
	allocCounterMove      = 1.05
	allocOtherBase        = 1.0
	allocOtherHistScale   = 0.01
	allocLosingCapture    = 0.1
	allocLosingQuietUnder = 0.01
)

// StaticMoveEvaluator is the allocation-ladder policy: a fixed function of
// move kind, killer rank, and history score, with no learning. It is the
// module's only MoveEvaluator implementation — the search core treats
// MoveEvaluator as an external collaborator so a learned alternative could
// be swapped in without touching search.go.
type StaticMoveEvaluator struct {
	killers  *KillerTable
	counters *CounterMoveTable
	history  *HistoryTable
}

// NewStaticMoveEvaluator creates the default allocation-ladder evaluator.
func NewStaticMoveEvaluator(killers *KillerTable, counters *CounterMoveTable, history *HistoryTable) *StaticMoveEvaluator {
	return &StaticMoveEvaluator{killers: killers, counters: counters, history: history}
}

// GenerateAndEvaluateMoves generates legal moves then scores them.
func (e *StaticMoveEvaluator) GenerateAndEvaluateMoves(pos *board.Position, ttMove, prevMove board.Move, ply int) []MoveInfo {
	moves := pos.GenerateLegalMoves()
	return e.EvaluateMoves(pos, moves, ttMove, prevMove, ply)
}

// EvaluateMoves scores an already-generated move list.
func (e *StaticMoveEvaluator) EvaluateMoves(pos *board.Position, moves *board.MoveList, ttMove, prevMove board.Move, ply int) []MoveInfo {
	counterMove := e.counters.GetCounterMove(pos.SideToMove, prevMove)

	var killerBuf [8]board.Move
	killers := e.killers.GetKillers(ply, killerBuf[:0])

	out := make([]MoveInfo, 0, moves.Len())
	var total float64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i).WithoutScore()
		info := e.classify(pos, m, ttMove, killers, counterMove)
		out = append(out, info)
		total += info.NodeAllocation
	}
	if total > 0 {
		for i := range out {
			out[i].NodeAllocation /= total
		}
	}
	return out
}

func (e *StaticMoveEvaluator) classify(pos *board.Position, m, ttMove board.Move, killers []board.Move, counterMove board.Move) MoveInfo {
	if m.Same(ttMove) {
		return MoveInfo{Move: m, NodeAllocation: allocHash, Kind: KindHash}
	}

	if m.IsCapture(pos) {
		see := board.StaticExchangeEvaluation(pos, m)
		if m.IsPromotion() && m.Promotion() == board.Queen {
			return MoveInfo{Move: m, NodeAllocation: allocQueenPromo, SeeScore: see, Kind: KindQueenPromotion}
		}
		if see >= 0 {
			return MoveInfo{Move: m, NodeAllocation: allocWinningCapture, SeeScore: see, Kind: KindWinningOrEqualCapture}
		}
		return MoveInfo{Move: m, NodeAllocation: allocLosingCapture, SeeScore: see, Kind: KindLosingCapture}
	}

	if m.IsPromotion() && m.Promotion() == board.Queen {
		return MoveInfo{Move: m, NodeAllocation: allocQueenPromo, Kind: KindQueenPromotion}
	}

	for k, killer := range killers {
		if m.Same(killer) {
			return MoveInfo{Move: m, NodeAllocation: allocKillerBase - allocKillerStep*float64(k), Kind: KindKiller}
		}
	}

	if m.Same(counterMove) {
		return MoveInfo{Move: m, NodeAllocation: allocCounterMove, Kind: KindCounterMove}
	}

	if m.IsPromotion() {
		// Under-promotion, treated like a losing quiet move.
		return MoveInfo{Move: m, NodeAllocation: allocLosingQuietUnder, Kind: KindLosingCapture}
	}

	if see := board.StaticExchangeEvaluation(pos, m); see < 0 {
		// Quiet move onto a square where it loses material.
		return MoveInfo{Move: m, NodeAllocation: allocLosingQuietUnder, SeeScore: see, Kind: KindLosingCapture}
	}

	hist := e.history.Score(m)
	return MoveInfo{Move: m, NodeAllocation: allocOtherBase + allocOtherHistScale*hist, Kind: KindOther}
}

// NotifyBestMove is a no-op for the static evaluator: it has no learned
// state to update.
func (e *StaticMoveEvaluator) NotifyBestMove(pos *board.Position, best board.Move, nodeBudget float64) {}
