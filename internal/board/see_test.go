package board

import "testing"

func TestSEEWinningCapture(t *testing.T) {
	// White rook takes a loose black knight on d5, nothing recaptures.
	pos, err := ParseFEN("4k3/8/8/3n4/3R4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseMove("d4d5", pos)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	see := StaticExchangeEvaluation(pos, m)
	if see != SeeValue[Knight] {
		t.Errorf("SEE(RxN, undefended) = %d, want %d", see, SeeValue[Knight])
	}
}

func TestSEELosingCapture(t *testing.T) {
	// White queen takes a pawn on d5 defended by a knight: loses the queen
	// for a pawn.
	pos, err := ParseFEN("4k3/2n5/8/3p4/3Q4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseMove("d4d5", pos)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	see := StaticExchangeEvaluation(pos, m)
	if see >= 0 {
		t.Errorf("SEE(QxP, knight-defended) = %d, want negative", see)
	}
}

func TestSEEEqualTrade(t *testing.T) {
	// White rook takes a black rook on d5, defended by a black rook on d8:
	// a straight rook-for-rook trade, SEE should be exactly zero.
	pos, err := ParseFEN("3rk3/8/8/3r4/3R4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseMove("d4d5", pos)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	see := StaticExchangeEvaluation(pos, m)
	if see != 0 {
		t.Errorf("SEE(RxR, rook-defended) = %d, want 0 (even trade)", see)
	}
}

func TestGlobalExchangeEvaluationDefaultBounds(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3n4/3R4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// Zero bounds should default to +/- King value rather than clamp to 0,0.
	gee := GlobalExchangeEvaluation(pos, D5, White, 0, 0)
	if gee != SeeValue[Knight] {
		t.Errorf("GEE with default bounds = %d, want %d", gee, SeeValue[Knight])
	}
}
