package sim

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/marshalc/western-duel/internal/combat"
)

// maxRounds caps a single duel so a pathological matchup (two shooters
// who can barely hit) still terminates.
const maxRounds = 500

// Report summarizes a batch of simulated duels.
type Report struct {
	Duels       int `json:"duels"`
	FirstWins   int `json:"first_wins"`
	SecondWins  int `json:"second_wins"`
	Unresolved  int `json:"unresolved"`
	Rounds68th  int `json:"rounds_68th"`
	Rounds95th  int `json:"rounds_95th"`
	MeanRounds  int `json:"mean_rounds"`
}

// DuelOnce plays a full gunfight between a and b: the combat engine
// picks who draws first, then the two trade single shots until a mortal
// head wound or zero strength ends it. Returns the winner index (0, 1,
// or -1 when the round cap is hit) and the number of shots resolved.
func DuelOnce(r *rand.Rand, a, b combat.Combatant, logger *zap.Logger) (winner, rounds int) {
	fighters := [2]combat.Combatant{a, b}
	shooter := combat.FirstShooter(a, b, combat.DrawSituation{})
	if logger != nil {
		logger.Info("draw",
			zap.String("first", fighters[shooter].Name),
			zap.Int("score_a", combat.DrawScore(a, combat.DrawState{})),
			zap.Int("score_b", combat.DrawScore(b, combat.DrawState{})),
		)
	}
	sit := combat.Situation{Range: combat.RangeMedium, ShotNumber: 1}
	for rounds = 1; rounds <= maxRounds; rounds++ {
		att := fighters[shooter]
		def := fighters[1-shooter]
		res := combat.ResolveRound(r, att, def, sit)
		if logger != nil {
			logger.Info("shot",
				zap.Int("round", rounds),
				zap.String("attacker", att.Name),
				zap.Int("roll", res.Roll),
				zap.Int("target", res.TargetNumber),
				zap.Bool("hit", res.Hit),
			)
		}
		if res.Hit {
			def.Strength -= res.Wound.StrengthReduction
			fighters[1-shooter] = def
			if logger != nil {
				logger.Info("wound",
					zap.String("location", string(res.Wound.Location)),
					zap.String("severity", string(res.Wound.Severity)),
					zap.Int("strength_left", def.Strength),
				)
			}
			if res.Wound.Fatal() || def.Strength <= 0 {
				return shooter, rounds
			}
		}
		shooter = 1 - shooter
	}
	return -1, maxRounds
}

// RunDuels plays n duels and reports percentile rounds-to-finish.
// The logger, when non-nil, traces only the first duel; the rest run
// silent to keep large batches cheap.
func RunDuels(r *rand.Rand, a, b combat.Combatant, n int, logger *zap.Logger) Report {
	if n <= 0 {
		n = 1
	}
	rep := Report{Duels: n}
	var rounds []int
	total := 0
	for i := 0; i < n; i++ {
		var l *zap.Logger
		if i == 0 {
			l = logger
		}
		winner, rc := DuelOnce(r, a, b, l)
		switch winner {
		case 0:
			rep.FirstWins++
		case 1:
			rep.SecondWins++
		default:
			rep.Unresolved++
		}
		rounds = append(rounds, rc)
		total += rc
	}
	sort.Ints(rounds)
	rep.Rounds68th = rounds[int(0.68*float64(len(rounds)-1))]
	rep.Rounds95th = rounds[int(0.95*float64(len(rounds)-1))]
	rep.MeanRounds = total / len(rounds)
	return rep
}
