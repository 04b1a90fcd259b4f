package combat

// HitModifiers sums every adjustment the shot's circumstances impose on
// the target number. All components are independent and cumulative; the
// sum is not capped. Medium range and a first shot contribute 0.
func HitModifiers(s Situation) int {
	mod := 0

	switch s.Range {
	case RangeShort:
		mod -= 10
	case RangeLong:
		mod += 15
	case RangeExtreme:
		mod += 25
	}

	if s.Moving {
		switch s.Movement {
		case MoveWalking:
			mod -= 5
		case MoveCrawling:
			mod -= 10
		case MoveRunning:
			mod -= 20
		case MoveDodging:
			mod -= 30
		case MoveTrotting:
			mod -= 15
		case MoveGalloping:
			mod -= 25
		}
	}

	if s.TargetMoving {
		switch s.TargetMovement {
		case MoveWalking, MoveCrawling:
			mod += 5
		case MoveRunning, MoveTrotting:
			mod += 10
		case MoveGalloping:
			mod += 15
		case MoveDodging:
			mod += 20
		}
	}

	if s.WeaponResting {
		mod += 10
	}
	switch s.ShotNumber {
	case 2:
		mod -= 10
	case 3:
		mod -= 20
	}
	switch s.Weapon {
	case WeaponScatter:
		mod -= 20
	case WeaponShotgun:
		mod -= 10
	}
	if s.WrongHand {
		mod -= 10
	}
	switch s.WoundedGunArm {
	case ArmWoundLight:
		mod -= 25
	case ArmWoundSerious:
		mod -= 50
	}
	if s.TwoGuns {
		mod -= 30
	}
	if s.HipShooting {
		mod -= 10
	}
	if s.TargetObscured {
		mod -= 10
	}

	return mod
}
