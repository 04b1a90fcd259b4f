package combat

// Surprise marks how badly a combatant was caught off guard at the draw.
type Surprise string

const (
	SurprisePartial  Surprise = "partial"
	SurpriseComplete Surprise = "complete"
)

// DrawState describes one side's circumstances going into the draw.
type DrawState struct {
	GivingFirstMove  bool     `json:"giving_first_move,omitempty"`
	Surprised        Surprise `json:"surprised,omitempty"`
	Running          bool     `json:"running,omitempty"`
	Mounted          bool     `json:"mounted,omitempty"`
	Wounded          bool     `json:"wounded,omitempty"`
	SeverelyWounded  bool     `json:"severely_wounded,omitempty"`
	DrawingTwoGuns   bool     `json:"drawing_two_guns,omitempty"`
	HipShooting      bool     `json:"hip_shooting,omitempty"`
	ConsecutiveTurns bool     `json:"consecutive_turns,omitempty"`
	ConsecutiveAims  bool     `json:"consecutive_aims,omitempty"`
}

// DrawSituation carries the draw state of both sides, first argument
// first. The zero value is a fair, standing showdown.
type DrawSituation struct {
	First  DrawState `json:"first"`
	Second DrawState `json:"second"`
}

// DrawScore is the first-shot score for one combatant: speed plus the
// bravery speed modifier plus situational adjustments.
func DrawScore(c Combatant, s DrawState) int {
	score := c.Speed + BraveryModifiers(c.Bravery).Speed
	if s.GivingFirstMove {
		score--
	}
	switch s.Surprised {
	case SurprisePartial:
		score -= 5
	case SurpriseComplete:
		score -= 10
	}
	if s.Running {
		score -= 20
	}
	if s.Mounted {
		score -= 10
	}
	if s.Wounded {
		score -= 5
	}
	if s.SeverelyWounded {
		score -= 20
	}
	if s.DrawingTwoGuns {
		score -= 3
	}
	if s.HipShooting {
		score += 5
	}
	if s.ConsecutiveTurns {
		score += 10
	}
	if s.ConsecutiveAims {
		score += 5
	}
	return score
}

// FirstShooter returns 0 if c1 gets the first shot, 1 if c2 does.
// Ties go to the first argument; downstream callers rely on that being
// deterministic in symmetric matchups.
func FirstShooter(c1, c2 Combatant, sit DrawSituation) int {
	if DrawScore(c1, sit.First) >= DrawScore(c2, sit.Second) {
		return 0
	}
	return 1
}
