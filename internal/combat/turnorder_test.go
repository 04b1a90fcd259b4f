package combat

import "testing"

func TestFirstShooterTieFavorsFirstArgument(t *testing.T) {
	a := Combatant{Name: "A", Speed: 12, Bravery: 50}
	b := Combatant{Name: "B", Speed: 12, Bravery: 50}
	if got := FirstShooter(a, b, DrawSituation{}); got != 0 {
		t.Errorf("FirstShooter tie = %d, want 0 (first argument)", got)
	}
	// Swapping the arguments must flip the answer in a dead tie.
	if got := FirstShooter(b, a, DrawSituation{}); got != 0 {
		t.Errorf("FirstShooter swapped tie = %d, want 0", got)
	}
}

func TestFirstShooterSpeedAndBravery(t *testing.T) {
	slow := Combatant{Name: "slow", Speed: 10, Bravery: 50}  // +1 speed mod
	fast := Combatant{Name: "fast", Speed: 12, Bravery: 5}   // -4 speed mod
	// 10+1 > 12-4, so the slower but braver shooter draws first.
	if got := FirstShooter(slow, fast, DrawSituation{}); got != 0 {
		t.Errorf("FirstShooter = %d, want 0", got)
	}
	if got := FirstShooter(fast, slow, DrawSituation{}); got != 1 {
		t.Errorf("FirstShooter = %d, want 1", got)
	}
}

func TestDrawScoreAdjustments(t *testing.T) {
	c := Combatant{Speed: 10, Bravery: 30} // bravery speed mod 0
	base := DrawScore(c, DrawState{})
	if base != 10 {
		t.Fatalf("base DrawScore = %d, want 10", base)
	}
	tests := []struct {
		name  string
		state DrawState
		want  int
	}{
		{"giving first move", DrawState{GivingFirstMove: true}, 9},
		{"partial surprise", DrawState{Surprised: SurprisePartial}, 5},
		{"complete surprise", DrawState{Surprised: SurpriseComplete}, 0},
		{"running", DrawState{Running: true}, -10},
		{"mounted", DrawState{Mounted: true}, 0},
		{"wounded", DrawState{Wounded: true}, 5},
		{"severely wounded", DrawState{SeverelyWounded: true}, -10},
		{"drawing two guns", DrawState{DrawingTwoGuns: true}, 7},
		{"hip shooting", DrawState{HipShooting: true}, 15},
		{"consecutive turns", DrawState{ConsecutiveTurns: true}, 20},
		{"consecutive aims", DrawState{ConsecutiveAims: true}, 15},
	}
	for _, tt := range tests {
		if got := DrawScore(c, tt.state); got != tt.want {
			t.Errorf("%s: DrawScore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFirstShooterSituationSwingsOrder(t *testing.T) {
	a := Combatant{Name: "A", Speed: 10, Bravery: 50}
	b := Combatant{Name: "B", Speed: 14, Bravery: 50}
	if got := FirstShooter(a, b, DrawSituation{}); got != 1 {
		t.Fatalf("faster shooter should win a clean draw, got %d", got)
	}
	sit := DrawSituation{Second: DrawState{Surprised: SurpriseComplete}}
	if got := FirstShooter(a, b, sit); got != 0 {
		t.Errorf("complete surprise should cost B the draw, got %d", got)
	}
}
