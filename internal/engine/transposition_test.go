package engine

import (
	"testing"

	"github.com/hailam/chessplay/internal/board"
)

func TestTranspositionProbeMiss(t *testing.T) {
	tt := NewTranspositionTable(1)
	if _, found := tt.Probe(0x1234); found {
		t.Error("Probe on empty table should miss")
	}
}

func TestTranspositionStoreAndProbe(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0xdeadbeef)
	m := board.NewMove(board.E2, board.E4)

	tt.Store(hash, 100, 42, BoundExact, m)

	entry, found := tt.Probe(hash)
	if !found {
		t.Fatal("expected a hit after Store")
	}
	if entry.Score != 42 || entry.Bound != BoundExact || !entry.BestMove.Same(m) {
		t.Errorf("stored entry mismatch: %+v", entry)
	}
}

func TestTranspositionDoesNotDowngradeDeeperEntry(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0xabc)
	deep := board.NewMove(board.D2, board.D4)
	shallow := board.NewMove(board.G1, board.F3)

	tt.Store(hash, 1000, 10, BoundExact, deep)
	tt.Store(hash, 10, 99, BoundExact, shallow)

	entry, found := tt.Probe(hash)
	if !found {
		t.Fatal("expected a hit")
	}
	if !entry.BestMove.Same(deep) {
		t.Errorf("a shallower result overwrote a deeper one: got %v, want %v", entry.BestMove, deep)
	}
}

func TestTranspositionHashCollisionIsAMiss(t *testing.T) {
	// A 1MB table has plenty of slots; force a collision at slot 1 by
	// storing one hash and then probing a different hash that maps to the
	// same slot, and confirm the probe misses instead of returning the
	// stored entry's data.
	tt := NewTranspositionTable(1)
	slots := tt.Size()

	h1 := uint64(1)
	h2 := h1 + slots // same slot under the mask, different hash

	tt.Store(h1, 50, 1, BoundExact, board.NewMove(board.A2, board.A3))
	if _, found := tt.Probe(h2); found {
		t.Error("a colliding but distinct hash should not report a hit")
	}
}

func TestAdjustScoreRoundTrips(t *testing.T) {
	score := MateScore - 3
	toTT := AdjustScoreToTT(score, 5)
	back := AdjustScoreFromTT(toTT, 5)
	if back != score {
		t.Errorf("mate score did not round-trip: got %d, want %d", back, score)
	}
}
