package combat

import (
	"math/rand"

	"github.com/marshalc/western-duel/internal/engine"
)

// RollWound draws two independent percentile rolls, one for the body
// zone and one for severity, and looks up the cost of that combination.
func RollWound(r *rand.Rand) Wound {
	loc := locationFor(engine.D100(r))
	sev := severityFor(loc, engine.D100(r))
	return Wound{
		Location:          loc,
		Severity:          sev,
		StrengthReduction: strengthLossFor(loc, sev),
		SpecialEffects:    specialEffectFor(loc, sev),
	}
}

// locationFor maps a percentile roll onto a body zone. Legs and arms
// take 10% each, body and head 30% each.
func locationFor(roll int) Location {
	switch {
	case roll <= 10:
		return LocLeftLeg
	case roll <= 20:
		return LocRightLeg
	case roll <= 30:
		return LocLeftArm
	case roll <= 40:
		return LocRightArm
	case roll <= 70:
		return LocBody
	default:
		return LocHead
	}
}

// severityFor maps a percentile roll onto a severity. Thresholds depend
// on the zone: the head has the narrowest light band and the widest
// mortal band.
func severityFor(loc Location, roll int) Severity {
	light, serious := severityBands(loc)
	switch {
	case roll <= light:
		return SeverityLight
	case roll <= serious:
		return SeveritySerious
	default:
		return SeverityMortal
	}
}

func severityBands(loc Location) (light, serious int) {
	switch loc {
	case LocLeftLeg, LocRightLeg:
		return 40, 80
	case LocLeftArm, LocRightArm:
		return 30, 70
	case LocBody:
		return 20, 60
	default: // head
		return 10, 40
	}
}

func strengthLossFor(loc Location, sev Severity) int {
	switch loc {
	case LocLeftLeg, LocRightLeg:
		switch sev {
		case SeverityLight:
			return 3
		case SeveritySerious:
			return 7
		default:
			return 15
		}
	case LocLeftArm, LocRightArm:
		switch sev {
		case SeverityLight:
			return 2
		case SeveritySerious:
			return 5
		default:
			return 10
		}
	case LocBody:
		switch sev {
		case SeverityLight:
			return 4
		case SeveritySerious:
			return 8
		default:
			return 20
		}
	default: // head
		switch sev {
		case SeverityLight:
			return 5
		case SeveritySerious:
			return 10
		default:
			return 25
		}
	}
}

func specialEffectFor(loc Location, sev Severity) string {
	switch loc {
	case LocLeftLeg, LocRightLeg:
		return "Movement reduced"
	case LocLeftArm:
		return "Two-handed weapons unusable"
	case LocRightArm:
		return "Gun arm penalties apply"
	case LocHead:
		switch sev {
		case SeveritySerious:
			return "Stunned for 1d6 rounds"
		case SeverityMortal:
			return "Immediate death"
		}
	}
	return ""
}
