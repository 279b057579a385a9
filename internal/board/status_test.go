package board

import "testing"

func TestThreefoldRepetition(t *testing.T) {
	pos := NewPosition()

	// Shuffle knights back and forth three times to repeat the starting
	// position three times (including the initial occurrence).
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for rep := 0; rep < 2; rep++ {
		for _, s := range moves {
			m, err := ParseMove(s, pos)
			if err != nil {
				t.Fatalf("ParseMove(%s): %v", s, err)
			}
			pos.MakeMove(m)
		}
	}

	if !pos.Is3Fold() {
		t.Error("expected threefold repetition after shuffling back to the start position twice")
	}
}

func TestNoRepetitionInFreshGame(t *testing.T) {
	pos := NewPosition()
	m, err := ParseMove("e2e4", pos)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	pos.MakeMove(m)

	if pos.Is3Fold() {
		t.Error("a single move should never trigger threefold repetition")
	}
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.HasInsufficientMaterial(false) {
		t.Error("king vs king should be insufficient material")
	}
}

func TestSufficientMaterialWithRook(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.HasInsufficientMaterial(false) {
		t.Error("king+rook vs king should be sufficient material")
	}
}
