package engine

import (
	"testing"

	"github.com/hailam/chessplay/internal/board"
)

func TestMovePickerOrdersByStage(t *testing.T) {
	hashMove := board.NewMove(board.E2, board.E4)
	capture := board.NewMove(board.D2, board.D4)
	quiet := board.NewMove(board.G1, board.F3)
	losing := board.NewMove(board.A2, board.A3)

	infos := []MoveInfo{
		{Move: losing, NodeAllocation: 0.1, Kind: KindLosingCapture},
		{Move: quiet, NodeAllocation: 1.0, Kind: KindOther},
		{Move: hashMove, NodeAllocation: 3.0, Kind: KindHash},
		{Move: capture, NodeAllocation: 2.0007, Kind: KindWinningOrEqualCapture},
	}

	picker := NewMovePicker(infos, false)

	order := make([]board.Move, 0, 4)
	for {
		info, ok := picker.Next()
		if !ok {
			break
		}
		order = append(order, info.Move)
	}

	if len(order) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(order))
	}
	if !order[0].Same(hashMove) {
		t.Errorf("hash move should come first, got %v", order[0])
	}
	if !order[1].Same(capture) {
		t.Errorf("winning capture should come second, got %v", order[1])
	}
	if !order[3].Same(losing) {
		t.Errorf("losing capture should come last, got %v", order[3])
	}
}

func TestMovePickerQuiescenceStopsAfterCaptures(t *testing.T) {
	hashMove := board.NewMove(board.E2, board.E4)
	capture := board.NewMove(board.D2, board.D4)
	quiet := board.NewMove(board.G1, board.F3)

	infos := []MoveInfo{
		{Move: quiet, NodeAllocation: 1.0, Kind: KindOther},
		{Move: capture, NodeAllocation: 2.0007, Kind: KindWinningOrEqualCapture},
		{Move: hashMove, NodeAllocation: 3.0, Kind: KindHash},
	}

	picker := NewMovePicker(infos, true)

	var seen int
	for {
		info, ok := picker.Next()
		if !ok {
			break
		}
		if info.Kind == KindOther {
			t.Error("quiescence mode should never yield a quiet move")
		}
		seen++
	}
	if seen != 2 {
		t.Errorf("expected 2 moves (hash + capture) in QS mode, got %d", seen)
	}
}
