package combat

// BraveryModifiers maps a bravery score onto speed/accuracy adjustments.
// Bands are inclusive at the top; anything at or below 10 (including
// out-of-range values) lands in the lowest band, 99-100 is foolhardy.
func BraveryModifiers(bravery int) Modifiers {
	switch {
	case bravery <= 10:
		return Modifiers{Speed: -4, Accuracy: -6}
	case bravery <= 20:
		return Modifiers{Speed: -2, Accuracy: -3}
	case bravery <= 35:
		return Modifiers{Speed: 0, Accuracy: 0}
	case bravery <= 65:
		return Modifiers{Speed: 1, Accuracy: 3}
	case bravery <= 80:
		return Modifiers{Speed: 2, Accuracy: 6}
	case bravery <= 90:
		return Modifiers{Speed: 3, Accuracy: 10}
	case bravery <= 98:
		return Modifiers{Speed: 4, Accuracy: 15}
	default: // foolhardy
		return Modifiers{Speed: 5, Accuracy: 15}
	}
}

// ExperienceModifier maps the count of previous gunfights onto an
// accuracy adjustment. Greenhorns shoot worse, veterans better.
func ExperienceModifier(previousGunfights int) int {
	switch {
	case previousGunfights <= 0:
		return -10
	case previousGunfights <= 2:
		return -5
	case previousGunfights <= 4:
		return 0
	case previousGunfights <= 6:
		return 2
	case previousGunfights <= 8:
		return 6
	case previousGunfights <= 10:
		return 8
	default:
		return 10
	}
}
