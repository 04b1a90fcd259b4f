package stats

import (
	"sync"
	"time"
)

// Per-user stat blobs and the global daily records (in-memory for demo)
var (
	statsMu   sync.Mutex
	userStats = make(map[string]map[string]interface{})
	// Global daily records keyed by date string YYYY-MM-DD UTC
	dailyWounds = make(map[string]DeadliestWound)
	dailyKills  = make(map[string]QuickestKill)
)

// DeadliestWound is the hardest-hitting wound landed today.
type DeadliestWound struct {
	Shooter  string `json:"shooter"`
	Target   string `json:"target"`
	Location string `json:"location"`
	Severity string `json:"severity"`
	Damage   int    `json:"damage"`
	Time     int64  `json:"time"`
}

// QuickestKill is the shortest finished duel today, in rounds.
type QuickestKill struct {
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
	Rounds int    `json:"rounds"`
	Time   int64  `json:"time"`
}

func SaveUserStats(username string, stats map[string]interface{}) {
	statsMu.Lock()
	defer statsMu.Unlock()
	userStats[username] = stats
}

func GetUserStats(username string) map[string]interface{} {
	statsMu.Lock()
	defer statsMu.Unlock()
	if s, ok := userStats[username]; ok {
		return s
	}
	return map[string]interface{}{}
}

func dateKey() string { return time.Now().UTC().Format("2006-01-02") }

// MaybeDeadliestWound replaces today's record if this wound hit harder.
func MaybeDeadliestWound(w DeadliestWound) {
	if w.Damage <= 0 {
		return
	}
	if w.Time == 0 {
		w.Time = time.Now().Unix()
	}
	statsMu.Lock()
	defer statsMu.Unlock()
	key := dateKey()
	if cur, ok := dailyWounds[key]; !ok || w.Damage > cur.Damage {
		dailyWounds[key] = w
	}
}

// MaybeQuickestKill replaces today's record if this duel finished faster.
func MaybeQuickestKill(k QuickestKill) {
	if k.Rounds <= 0 {
		return
	}
	if k.Time == 0 {
		k.Time = time.Now().Unix()
	}
	statsMu.Lock()
	defer statsMu.Unlock()
	key := dateKey()
	if cur, ok := dailyKills[key]; !ok || k.Rounds < cur.Rounds {
		dailyKills[key] = k
	}
}

// DailyRecords is the snapshot returned to clients.
type DailyRecords struct {
	Date           string         `json:"date"`
	DeadliestWound DeadliestWound `json:"deadliest_wound"`
	QuickestKill   QuickestKill   `json:"quickest_kill"`
}

func GetDailyRecords() DailyRecords {
	statsMu.Lock()
	defer statsMu.Unlock()
	key := dateKey()
	return DailyRecords{
		Date:           key,
		DeadliestWound: dailyWounds[key],
		QuickestKill:   dailyKills[key],
	}
}
