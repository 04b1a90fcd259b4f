package stats

import "testing"

func TestUserStatsRoundTrip(t *testing.T) {
	SaveUserStats("doc", map[string]interface{}{"duels": 3})
	s := GetUserStats("doc")
	if s["duels"] != 3 {
		t.Errorf("duels = %v, want 3", s["duels"])
	}
	if got := GetUserStats("nobody"); len(got) != 0 {
		t.Errorf("unknown user stats = %v, want empty", got)
	}
}

func TestDeadliestWoundKeepsHardestHit(t *testing.T) {
	ResetDaily()
	MaybeDeadliestWound(DeadliestWound{Shooter: "a", Target: "b", Damage: 8})
	MaybeDeadliestWound(DeadliestWound{Shooter: "c", Target: "d", Damage: 5})
	MaybeDeadliestWound(DeadliestWound{Damage: 0}) // ignored
	rec := GetDailyRecords()
	if rec.DeadliestWound.Shooter != "a" || rec.DeadliestWound.Damage != 8 {
		t.Errorf("deadliest wound = %+v", rec.DeadliestWound)
	}
}

func TestQuickestKillKeepsFewestRounds(t *testing.T) {
	ResetDaily()
	MaybeQuickestKill(QuickestKill{Winner: "a", Loser: "b", Rounds: 6})
	MaybeQuickestKill(QuickestKill{Winner: "c", Loser: "d", Rounds: 2})
	MaybeQuickestKill(QuickestKill{Winner: "e", Loser: "f", Rounds: 4})
	rec := GetDailyRecords()
	if rec.QuickestKill.Winner != "c" || rec.QuickestKill.Rounds != 2 {
		t.Errorf("quickest kill = %+v", rec.QuickestKill)
	}
}
