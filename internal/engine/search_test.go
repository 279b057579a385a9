package engine

import (
	"testing"
	"time"

	"github.com/hailam/chessplay/internal/board"
)

func TestSearcherReturnsLegalMoveFromStartingPosition(t *testing.T) {
	tt := NewTranspositionTable(1)
	searcher := NewSearcher(tt)
	pos := board.NewPosition()

	move, _ := searcher.Search(pos, 2000)
	if move == board.NoMove {
		t.Fatal("search returned no move from the starting position")
	}

	legal := pos.GenerateLegalMoves()
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i).Same(move) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("search returned %v, which is not a legal move", move)
	}
}

func TestSearcherFindsMateInOne(t *testing.T) {
	// White to move, Rh1-h8 is a back-rank mate.
	pos, err := board.ParseFEN("5k2/4ppp1/8/8/8/8/8/4K2R w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	tt := NewTranspositionTable(1)
	searcher := NewSearcher(tt)

	move, score := searcher.Search(pos, 4000)
	if move == board.NoMove {
		t.Fatal("expected a move")
	}
	if score < MateScore-MaxPly {
		t.Errorf("expected a mate score, got %d (move %v)", score, move)
	}
	if move.From() != board.H1 || move.To() != board.H8 {
		t.Errorf("expected Rh1-h8#, got %v", move)
	}
}

func TestRootThinkRespectsMoveTime(t *testing.T) {
	tt := NewTranspositionTable(1)
	searcher := NewSearcher(tt)
	root := NewRoot(searcher)
	pos := board.NewPosition()

	start := time.Now()
	move := root.Think(pos, UCILimits{MoveTime: 100 * time.Millisecond}, 0)
	elapsed := time.Since(start)

	if move == board.NoMove {
		t.Error("Think returned no move")
	}
	if elapsed > 2*time.Second {
		t.Errorf("Think ran for %v, well past its 100ms budget", elapsed)
	}
}
