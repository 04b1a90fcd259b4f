package combat

import (
	"reflect"
	"testing"

	"github.com/marshalc/western-duel/internal/engine"
)

func TestTargetNumber(t *testing.T) {
	// 50 + 10 accuracy + 3 bravery (50) - 5 experience (2 fights) - 10 short range
	att := Combatant{GunAccuracy: 10, Bravery: 50, Experience: 2}
	sit := Situation{Range: RangeShort}
	want := 50 + 10 + 3 + (-5) + (-10)
	if got := TargetNumber(att, sit); got != want {
		t.Errorf("TargetNumber = %d, want %d", got, want)
	}
}

func TestResolveRoundHitBoundary(t *testing.T) {
	att := Combatant{Name: "att", GunAccuracy: 5, Bravery: 30, Experience: 3}
	def := Combatant{Name: "def"}
	sit := Situation{}
	target := TargetNumber(att, sit) // 50 + 5 + 0 + 0 = 55

	// Roll exactly the target number: hit. The next two draws feed the
	// wound table.
	res := ResolveRound(rollSource(target, 50, 50), att, def, sit)
	if !res.Hit {
		t.Fatalf("roll == target (%d) should hit", target)
	}
	if res.Roll != target || res.TargetNumber != target {
		t.Errorf("roll/target = %d/%d, want %d/%d", res.Roll, res.TargetNumber, target, target)
	}
	if res.Wound == nil {
		t.Fatal("hit must carry a wound")
	}

	// One over the target: miss, no wound.
	res = ResolveRound(rollSource(target+1), att, def, sit)
	if res.Hit {
		t.Fatalf("roll == target+1 (%d) should miss", target+1)
	}
	if res.Wound != nil {
		t.Error("miss must not carry a wound")
	}
	if len(res.Logs) == 0 {
		t.Error("result should carry a log trail")
	}
}

func TestResolveRoundDeterministic(t *testing.T) {
	att := Combatant{Name: "att", GunAccuracy: 12, Bravery: 85, Experience: 7}
	def := Combatant{Name: "def", Strength: 15}
	sit := Situation{Range: RangeLong, TargetMoving: true, TargetMovement: MoveRunning}

	first := ResolveRound(engine.NewSeeded(42), att, def, sit)
	second := ResolveRound(engine.NewSeeded(42), att, def, sit)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different results:\n%+v\n%+v", first, second)
	}
}

func TestResolveRoundDoesNotMutateInputs(t *testing.T) {
	att := Combatant{Name: "att", GunAccuracy: 12, Bravery: 85, Experience: 7, Strength: 14}
	def := Combatant{Name: "def", Strength: 15}
	attCopy, defCopy := att, def
	_ = ResolveRound(engine.NewSeeded(1), att, def, Situation{})
	if att != attCopy || def != defCopy {
		t.Error("ResolveRound mutated its inputs")
	}
}
