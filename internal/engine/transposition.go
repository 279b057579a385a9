package engine

import (
	"github.com/hailam/chessplay/internal/board"
)

// Bound indicates what kind of score a transposition table entry holds.
type Bound uint8

const (
	BoundExact Bound = iota // Exact score
	BoundLower               // Failed high (beta cutoff)
	BoundUpper               // Failed low
)

// TTEntry is one slot of the transposition table. Validity is decided by
// full 64-bit hash equality, never a truncated key plus a sanity check.
// Generation records the search that wrote the entry; it is read only by
// HashFull and plays no part in replacement or in deciding whether a
// probe hit.
type TTEntry struct {
	Hash       uint64
	BestMove   board.Move
	Score      int32
	NodeBudget float64
	Bound      Bound
	Generation uint8
	valid      bool
}

// TranspositionTable is a fixed-capacity, open-addressed, single-entry-
// per-slot hash table. A slot is replaced whenever its stored hash
// differs from the incoming one, or whenever the incoming node budget
// exceeds what's stored — so a shallow, stale entry never blocks a
// deeper result from the same search generation.
type TranspositionTable struct {
	entries    []TTEntry
	mask       uint64
	generation uint8

	hits   uint64
	probes uint64
}

// NewTranspositionTable creates a transposition table sized in megabytes.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := uint64(32)
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up hash. The second return is true only on exact hash
// equality; a differing hash at the same slot is a miss, not an error.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes++
	entry := tt.entries[hash&tt.mask]
	if entry.valid && entry.Hash == hash {
		tt.hits++
		return entry, true
	}
	return TTEntry{}, false
}

// Store records a search result, replacing the slot's current occupant
// when the hash differs (a genuine collision) or when this result used a
// node budget larger than what's stored (a result trusted more).
func (tt *TranspositionTable) Store(hash uint64, nodeBudget float64, score int, bound Bound, bestMove board.Move) {
	slot := &tt.entries[hash&tt.mask]
	if slot.valid && slot.Hash == hash && nodeBudget <= slot.NodeBudget {
		return
	}
	slot.Hash = hash
	slot.BestMove = bestMove
	slot.Score = int32(score)
	slot.NodeBudget = nodeBudget
	slot.Bound = bound
	slot.Generation = tt.generation
	slot.valid = true
}

// NewSearch bumps the generation counter for a new root search.
func (tt *TranspositionTable) NewSearch() {
	tt.generation++
}

// Clear empties every slot.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.generation = 0
	tt.hits = 0
	tt.probes = 0
}

// HashFull returns the permille of the table currently holding a valid
// entry from the current generation, sampled over the first 1000 slots.
func (tt *TranspositionTable) HashFull() int {
	used := 0
	sampleSize := 1000
	if uint64(sampleSize) > uint64(len(tt.entries)) {
		sampleSize = len(tt.entries)
	}
	for i := 0; i < sampleSize; i++ {
		if tt.entries[i].valid && tt.entries[i].Generation == tt.generation {
			used++
		}
	}
	if sampleSize == 0 {
		return 0
	}
	return (used * 1000) / sampleSize
}

// HitRate returns the cache hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// Size returns the number of slots in the table.
func (tt *TranspositionTable) Size() uint64 {
	return uint64(len(tt.entries))
}

// AdjustScoreFromTT converts a mate score stored relative to the TT entry's
// own search root back into one relative to the current ply.
func AdjustScoreFromTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT converts a mate score relative to the current ply into
// one relative to the position itself, so it stays valid regardless of
// how deep in the tree it's later retrieved from.
func AdjustScoreToTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
