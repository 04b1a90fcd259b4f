package combat

import (
	"fmt"
	"math/rand"

	"github.com/marshalc/western-duel/internal/engine"
)

// BrawlingDamage converts an unarmed attack roll into strength loss:
// floor(strength * baseRoll / 10), never below 1. The floor guarantees
// repeated attacks drive any defender to a knockout in finite rounds.
func BrawlingDamage(baseRoll, strength, currentStrength int) int {
	damage := strength * baseRoll / 10
	if damage < 1 {
		damage = 1
	}
	if currentStrength <= 3 {
		// Weakened brawlers get the same floor as everyone else today;
		// kept as its own branch in case they ever get a different one.
		if damage < 1 {
			damage = 1
		}
	}
	return damage
}

// BrawlOutcome is one resolved round of fisticuffs.
type BrawlOutcome struct {
	BaseRoll          int      `json:"base_roll"`
	Damage            int      `json:"damage"`
	RemainingStrength int      `json:"remaining_strength"`
	KnockedOut        bool     `json:"knocked_out"`
	Logs              []string `json:"logs"`
}

// ResolveBrawlRound rolls a d10 base roll for the attacker and applies
// brawling damage against the defender's current strength. Knockout is
// reported when remaining strength reaches zero.
func ResolveBrawlRound(r *rand.Rand, attacker, defender Combatant) BrawlOutcome {
	base := engine.RollExpr(r, "d10")
	dmg := BrawlingDamage(base, attacker.Strength, defender.Strength)
	remaining := defender.Strength - dmg
	if remaining < 0 {
		remaining = 0
	}
	out := BrawlOutcome{
		BaseRoll:          base,
		Damage:            dmg,
		RemainingStrength: remaining,
		KnockedOut:        remaining <= 0,
	}
	out.Logs = []string{
		fmt.Sprintf("%s swings at %s: base roll %d, damage %d", attacker.Name, defender.Name, base, dmg),
		fmt.Sprintf("%s strength: %d -> %d", defender.Name, defender.Strength, remaining),
	}
	if out.KnockedOut {
		out.Logs = append(out.Logs, fmt.Sprintf("%s is knocked out!", defender.Name))
	}
	return out
}
