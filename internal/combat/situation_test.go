package combat

import "testing"

func TestHitModifiers(t *testing.T) {
	tests := []struct {
		name string
		sit  Situation
		want int
	}{
		{"empty", Situation{}, 0},
		{"medium range first shot", Situation{Range: RangeMedium, ShotNumber: 1}, 0},
		{"short range", Situation{Range: RangeShort}, -10},
		{"long range", Situation{Range: RangeLong}, 15},
		{"extreme range", Situation{Range: RangeExtreme}, 25},
		{"long range while running", Situation{Range: RangeLong, Moving: true, Movement: MoveRunning}, -5},
		{"movement flag off ignores movement", Situation{Movement: MoveDodging}, 0},
		{"attacker dodging", Situation{Moving: true, Movement: MoveDodging}, -30},
		{"attacker galloping", Situation{Moving: true, Movement: MoveGalloping}, -25},
		{"target walking", Situation{TargetMoving: true, TargetMovement: MoveWalking}, 5},
		{"target crawling", Situation{TargetMoving: true, TargetMovement: MoveCrawling}, 5},
		{"target trotting", Situation{TargetMoving: true, TargetMovement: MoveTrotting}, 10},
		{"target galloping", Situation{TargetMoving: true, TargetMovement: MoveGalloping}, 15},
		{"target dodging", Situation{TargetMoving: true, TargetMovement: MoveDodging}, 20},
		{"weapon resting", Situation{WeaponResting: true}, 10},
		{"second shot", Situation{ShotNumber: 2}, -10},
		{"third shot", Situation{ShotNumber: 3}, -20},
		{"scatter weapon", Situation{Weapon: WeaponScatter}, -20},
		{"shotgun", Situation{Weapon: WeaponShotgun}, -10},
		{"wrong hand", Situation{WrongHand: true}, -10},
		{"light wounded gun arm", Situation{WoundedGunArm: ArmWoundLight}, -25},
		{"serious wounded gun arm", Situation{WoundedGunArm: ArmWoundSerious}, -50},
		{"two guns", Situation{TwoGuns: true}, -30},
		{"hip shooting", Situation{HipShooting: true}, -10},
		{"target obscured", Situation{TargetObscured: true}, -10},
		{
			"everything stacks",
			Situation{
				Range:          RangeExtreme,
				Moving:         true,
				Movement:       MoveWalking,
				TargetMoving:   true,
				TargetMovement: MoveDodging,
				WeaponResting:  true,
				ShotNumber:     3,
				Weapon:         WeaponShotgun,
				WrongHand:      true,
				WoundedGunArm:  ArmWoundSerious,
				TwoGuns:        true,
				HipShooting:    true,
				TargetObscured: true,
			},
			// 25 - 5 + 20 + 10 - 20 - 10 - 10 - 50 - 30 - 10 - 10
			-90,
		},
	}
	for _, tt := range tests {
		if got := HitModifiers(tt.sit); got != tt.want {
			t.Errorf("%s: HitModifiers = %d, want %d", tt.name, got, tt.want)
		}
	}
}
