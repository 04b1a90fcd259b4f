package combat

// Combatant captures the minimal attribute snapshot the rules engine reads.
// It is never mutated here; callers own the character records and apply
// wound effects themselves.
type Combatant struct {
	Name         string `json:"name"`
	Speed        int    `json:"speed"`
	GunAccuracy  int    `json:"gun_accuracy"`
	Strength     int    `json:"strength"`
	BaseStrength int    `json:"base_strength"`
	Bravery      int    `json:"bravery"`
	Experience   int    `json:"experience"` // previous gunfights
}

// Modifiers is the speed/accuracy pair derived from bravery.
type Modifiers struct {
	Speed    int `json:"speed"`
	Accuracy int `json:"accuracy"`
}

// Range between shooter and target.
type Range string

const (
	RangeShort   Range = "short"
	RangeMedium  Range = "medium"
	RangeLong    Range = "long"
	RangeExtreme Range = "extreme"
)

// Movement describes how a combatant is moving during the shot.
type Movement string

const (
	MoveWalking   Movement = "walking"
	MoveCrawling  Movement = "crawling"
	MoveRunning   Movement = "running"
	MoveDodging   Movement = "dodging"
	MoveTrotting  Movement = "trotting"
	MoveGalloping Movement = "galloping"
)

// WeaponClass distinguishes the handling penalties of the firearm in use.
type WeaponClass string

const (
	WeaponNormal  WeaponClass = "normal"
	WeaponShotgun WeaponClass = "shotgun"
	WeaponScatter WeaponClass = "scatter"
)

// ArmWound marks how badly the gun arm is hurt.
type ArmWound string

const (
	ArmWoundLight   ArmWound = "light"
	ArmWoundSerious ArmWound = "serious"
)

// Situation describes the circumstances of a single shot. Built fresh by
// the caller each time; never persisted.
type Situation struct {
	Range          Range       `json:"range,omitempty"`
	Moving         bool        `json:"moving,omitempty"`
	Movement       Movement    `json:"movement,omitempty"`
	TargetMoving   bool        `json:"target_moving,omitempty"`
	TargetMovement Movement    `json:"target_movement,omitempty"`
	WeaponResting  bool        `json:"weapon_resting,omitempty"`
	ShotNumber     int         `json:"shot_number,omitempty"` // 1-3; rapid repeat shots are penalized
	Weapon         WeaponClass `json:"weapon,omitempty"`
	WrongHand      bool        `json:"wrong_hand,omitempty"`
	WoundedGunArm  ArmWound    `json:"wounded_gun_arm,omitempty"`
	TwoGuns        bool        `json:"two_guns,omitempty"`
	HipShooting    bool        `json:"hip_shooting,omitempty"`
	TargetObscured bool        `json:"target_obscured,omitempty"`
}

// Location is the body zone a wound lands in.
type Location string

const (
	LocLeftLeg  Location = "left_leg"
	LocRightLeg Location = "right_leg"
	LocLeftArm  Location = "left_arm"
	LocRightArm Location = "right_arm"
	LocBody     Location = "body"
	LocHead     Location = "head"
)

// Severity of a wound.
type Severity string

const (
	SeverityLight   Severity = "light"
	SeveritySerious Severity = "serious"
	SeverityMortal  Severity = "mortal"
)

// Wound is the outcome of a successful hit: where it landed, how bad it
// is, and what it costs the defender.
type Wound struct {
	Location          Location `json:"location"`
	Severity          Severity `json:"severity"`
	StrengthReduction int      `json:"strength_reduction"`
	SpecialEffects    string   `json:"special_effects,omitempty"`
}

// Fatal reports whether the wound kills outright (mortal head wound).
// Applying the death is the caller's job.
func (w Wound) Fatal() bool {
	return w.Location == LocHead && w.Severity == SeverityMortal
}

// Result captures one resolved shot and a step-by-step log for display.
type Result struct {
	Hit          bool     `json:"hit"`
	Roll         int      `json:"roll"`
	TargetNumber int      `json:"target_number"`
	Wound        *Wound   `json:"wound,omitempty"`
	Logs         []string `json:"logs"`
}
