package combat

import (
	"testing"

	"github.com/marshalc/western-duel/internal/engine"
)

func TestBrawlingDamage(t *testing.T) {
	tests := []struct {
		baseRoll, strength, current int
		want                        int
	}{
		{0, 10, 10, 1},  // floor guarantee
		{10, 10, 10, 10},
		{5, 10, 10, 5},
		{3, 7, 7, 2},   // floor(21/10)
		{1, 2, 2, 1},   // floor(2/10) -> floored up to 1
		{4, 3, 2, 1},   // low current strength, same floor
		{0, 0, 0, 1},
	}
	for _, tt := range tests {
		if got := BrawlingDamage(tt.baseRoll, tt.strength, tt.current); got != tt.want {
			t.Errorf("BrawlingDamage(%d, %d, %d) = %d, want %d",
				tt.baseRoll, tt.strength, tt.current, got, tt.want)
		}
	}
}

func TestResolveBrawlRound(t *testing.T) {
	att := Combatant{Name: "att", Strength: 10}
	def := Combatant{Name: "def", Strength: 10}
	out := ResolveBrawlRound(rollSource(10), att, def)
	if out.BaseRoll != 10 || out.Damage != 10 {
		t.Errorf("base/damage = %d/%d, want 10/10", out.BaseRoll, out.Damage)
	}
	if !out.KnockedOut || out.RemainingStrength != 0 {
		t.Errorf("expected knockout at 0 strength, got %+v", out)
	}
}

func TestBrawlTerminatesInFiniteRounds(t *testing.T) {
	r := engine.NewSeeded(3)
	att := Combatant{Name: "att", Strength: 1}
	def := Combatant{Name: "def", Strength: 40}
	for round := 1; ; round++ {
		out := ResolveBrawlRound(r, att, def)
		def.Strength = out.RemainingStrength
		if out.KnockedOut {
			break
		}
		// Damage floor is 1, so 40 strength falls in at most 40 rounds.
		if round > 40 {
			t.Fatal("brawl did not terminate within the damage-floor bound")
		}
	}
}
