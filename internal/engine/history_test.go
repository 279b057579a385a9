package engine

import (
	"testing"

	"github.com/hailam/chessplay/internal/board"
)

func TestHistoryScoreDefaultsToHalf(t *testing.T) {
	h := NewHistoryTable()
	m := board.NewMove(board.E2, board.E4)
	if got := h.Score(m); got != 0.5 {
		t.Errorf("Score with no data = %v, want 0.5", got)
	}
}

func TestHistoryScoreIncreasesOnCutoff(t *testing.T) {
	h := NewHistoryTable()
	m := board.NewMove(board.D2, board.D4)

	h.NotifyCutoff(m, 1000)
	if got := h.Score(m); got <= 0.5 {
		t.Errorf("Score after a cutoff = %v, want > 0.5", got)
	}
}

func TestHistoryScoreDecreasesOnNoCutoff(t *testing.T) {
	h := NewHistoryTable()
	m := board.NewMove(board.G1, board.F3)

	h.NotifyNoCutoff(m, 1000)
	if got := h.Score(m); got >= 0.5 {
		t.Errorf("Score after a non-cutoff = %v, want < 0.5", got)
	}
}

func TestHistoryNeverNegative(t *testing.T) {
	h := NewHistoryTable()
	m := board.NewMove(board.A2, board.A3)
	h.NotifyNoCutoff(m, 1)
	h.NotifyCutoff(m, 1)
	for i := 0; i < 20; i++ {
		h.NotifyMoveMade()
	}
	if got := h.Score(m); got < 0 {
		t.Errorf("Score went negative after decay: %v", got)
	}
}

func TestKillerTableNotifyAndGet(t *testing.T) {
	k := NewKillerTable()
	m1 := board.NewMove(board.E2, board.E4)
	m2 := board.NewMove(board.D2, board.D4)

	k.Notify(3, m1)
	k.Notify(3, m2)

	var buf [8]board.Move
	killers := k.GetKillers(3, buf[:0])
	if len(killers) < 2 {
		t.Fatalf("expected at least 2 killers at ply 3, got %d", len(killers))
	}
	if !killers[0].Same(m2) {
		t.Errorf("most recent killer should be in slot 0: got %v, want %v", killers[0], m2)
	}
}

func TestKillerTableMoveMadeShiftsDown(t *testing.T) {
	k := NewKillerTable()
	m := board.NewMove(board.E2, board.E4)
	k.Notify(1, m)

	k.MoveMade()

	var buf [8]board.Move
	killers := k.GetKillers(0, buf[:0])
	found := false
	for _, km := range killers {
		if km.Same(m) {
			found = true
		}
	}
	if !found {
		t.Error("killer at ply 1 should have shifted down to ply 0")
	}
}

func TestCounterMoveTableRoundTrip(t *testing.T) {
	c := NewCounterMoveTable()
	last := board.NewMove(board.E2, board.E4)
	reply := board.NewMove(board.E7, board.E5)

	c.Notify(board.Black, last, reply)

	got := c.GetCounterMove(board.Black, last)
	if !got.Same(reply) {
		t.Errorf("GetCounterMove = %v, want %v", got, reply)
	}
}
