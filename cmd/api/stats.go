package main

import (
	"encoding/json"
	"net/http"

	"github.com/marshalc/western-duel/internal/stats"
)

// POST /api/stats/save
func SaveStatsHandler(w http.ResponseWriter, r *http.Request) {
	type SaveReq struct {
		Username string                 `json:"username"`
		Stats    map[string]interface{} `json:"stats"`
	}
	var req SaveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", 400)
		return
	}
	if req.Username == "" {
		http.Error(w, "missing username", 400)
		return
	}
	// Merge with existing stats and keep the hardest bestWound
	existing := stats.GetUserStats(req.Username)
	merged := map[string]interface{}{}
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range req.Stats {
		if k == "bestWound" {
			continue
		}
		merged[k] = v
	}
	if v, ok := req.Stats["bestWound"]; ok && v != nil {
		newBW, _ := v.(map[string]interface{})
		if newBW != nil {
			getInt := func(m map[string]interface{}, key string) int {
				if vv, ok := m[key]; ok {
					switch t := vv.(type) {
					case float64:
						return int(t)
					case int:
						return t
					case int64:
						return int(t)
					case json.Number:
						if n, err := t.Int64(); err == nil {
							return int(n)
						}
					}
				}
				return 0
			}
			if bestMap, ok := merged["bestWound"].(map[string]interface{}); ok && bestMap != nil {
				if getInt(newBW, "damage") > getInt(bestMap, "damage") {
					merged["bestWound"] = newBW
				} // else keep existing
			} else {
				merged["bestWound"] = newBW
			}
		}
	}
	stats.SaveUserStats(req.Username, merged)
	w.WriteHeader(204)
}

// GET /api/stats/get?username=...
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "missing username", 400)
		return
	}
	s := stats.GetUserStats(username)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

// GET /api/stats/daily
func GetDailyRecordsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats.GetDailyRecords())
}

// POST /api/stats/daily/wound
// Body: { wound: { shooter, target, location, severity, damage } }
func PostDeadliestWoundHandler(w http.ResponseWriter, r *http.Request) {
	type Req struct {
		Wound stats.DeadliestWound `json:"wound"`
	}
	var req Req
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", 400)
		return
	}
	stats.MaybeDeadliestWound(req.Wound)
	w.WriteHeader(204)
}
