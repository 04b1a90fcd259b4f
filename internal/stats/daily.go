package stats

// This file contains helpers around daily records. It complements stats.go.

// ResetDaily clears the in-memory daily record maps.
// Intended for tests and dev convenience.
func ResetDaily() {
	statsMu.Lock()
	defer statsMu.Unlock()
	for k := range dailyWounds {
		delete(dailyWounds, k)
	}
	for k := range dailyKills {
		delete(dailyKills, k)
	}
}
