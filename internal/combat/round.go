package combat

import (
	"fmt"
	"math/rand"

	"github.com/marshalc/western-duel/internal/engine"
)

// baseChance is the percentile hit chance before any modifier applies.
const baseChance = 50

// TargetNumber computes the percentile threshold a hit roll must not
// exceed: base chance plus the attacker's accuracy, bravery accuracy
// modifier, experience modifier, and the situational sum.
func TargetNumber(attacker Combatant, sit Situation) int {
	return baseChance +
		attacker.GunAccuracy +
		BraveryModifiers(attacker.Bravery).Accuracy +
		ExperienceModifier(attacker.Experience) +
		HitModifiers(sit)
}

// ResolveRound resolves a single shot from attacker to defender. A roll
// at or under the target number hits and draws a fresh wound. Neither
// combatant is mutated; randomness comes only from r.
func ResolveRound(r *rand.Rand, attacker, defender Combatant, sit Situation) Result {
	bm := BraveryModifiers(attacker.Bravery)
	exp := ExperienceModifier(attacker.Experience)
	sm := HitModifiers(sit)
	target := baseChance + attacker.GunAccuracy + bm.Accuracy + exp + sm

	logs := []string{
		fmt.Sprintf("%s fires at %s", attacker.Name, defender.Name),
		fmt.Sprintf("Target number: 50 + accuracy %d + bravery %+d + experience %+d + situation %+d = %d",
			attacker.GunAccuracy, bm.Accuracy, exp, sm, target),
	}

	roll := engine.D100(r)
	res := Result{Roll: roll, TargetNumber: target}
	if roll <= target {
		res.Hit = true
		w := RollWound(r)
		res.Wound = &w
		logs = append(logs, fmt.Sprintf("Rolled %d -> HIT (needs %d or less)", roll, target))
		line := fmt.Sprintf("Wound: %s %s, strength -%d", w.Severity, w.Location, w.StrengthReduction)
		if w.SpecialEffects != "" {
			line += " (" + w.SpecialEffects + ")"
		}
		logs = append(logs, line)
	} else {
		logs = append(logs, fmt.Sprintf("Rolled %d -> MISS (needs %d or less)", roll, target))
	}
	res.Logs = logs
	return res
}
