package engine

import (
	"math"

	"github.com/hailam/chessplay/internal/board"
)

// historyBonus is the weight added to the winning side of a from/to
// counter pair on a cutoff or non-cutoff. Named and surfaced as living
// code rather than a magic literal: ln(nodeBudget) squared, so a cutoff
// found deep into a large budget counts for much more than one found
// after a handful of nodes.
func historyBonus(nodeBudget float64) float64 {
	if nodeBudget < 1 {
		nodeBudget = 1
	}
	return math.Pow(math.Log(nodeBudget), 2)
}

// HistoryTable tracks, for every (from, to) pair, how often that move has
// caused a beta cutoff versus how often it was tried and didn't. The ratio
// is used as a move's quiet-move ordering score in [0, 1], defaulting to
// 0.5 for a pair with no data yet.
type HistoryTable struct {
	cutoff    [64][64]float64
	noCutoff  [64][64]float64
}

// NewHistoryTable creates an empty history table.
func NewHistoryTable() *HistoryTable {
	return &HistoryTable{}
}

// Clear resets all counters to zero.
func (h *HistoryTable) Clear() {
	h.cutoff = [64][64]float64{}
	h.noCutoff = [64][64]float64{}
}

// NotifyCutoff records that m caused a beta cutoff while nodeBudget
// remained for the search that found it.
func (h *HistoryTable) NotifyCutoff(m board.Move, nodeBudget float64) {
	h.cutoff[m.From()][m.To()] += historyBonus(nodeBudget)
}

// NotifyNoCutoff records that m was tried but did not cause a cutoff.
func (h *HistoryTable) NotifyNoCutoff(m board.Move, nodeBudget float64) {
	h.noCutoff[m.From()][m.To()] += historyBonus(nodeBudget)
}

// Score returns the cutoff ratio for m, defaulting to 0.5 when neither
// counter has any weight yet.
func (h *HistoryTable) Score(m board.Move) float64 {
	from, to := m.From(), m.To()
	pos, neg := h.cutoff[from][to], h.noCutoff[from][to]
	if pos+neg == 0 {
		return 0.5
	}
	return pos / (pos + neg)
}

// NotifyMoveMade halves every counter after a move is played at the root,
// so old evidence decays rather than accumulating without bound.
func (h *HistoryTable) NotifyMoveMade() {
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			h.cutoff[i][j] /= 2
			h.noCutoff[i][j] /= 2
		}
	}
}
