package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/marshalc/western-duel/internal/combat"
	"github.com/marshalc/western-duel/internal/config"
	"github.com/marshalc/western-duel/internal/engine"
	"github.com/marshalc/western-duel/internal/models"
	"github.com/marshalc/western-duel/internal/sim"
)

// Build metadata injected via -ldflags at build time
var (
	buildVersion = "dev"
	buildTime    = ""
)

type server struct {
	mu     sync.RWMutex
	roster []*models.Gunslinger
	byName map[string]*models.Gunslinger
	dir    string
}

func newServer(dir string) (*server, error) {
	s := &server{dir: dir}
	return s, s.reload()
}

func (s *server) reload() error {
	roster, err := models.LoadRoster(s.dir)
	if err != nil {
		return err
	}
	byName := make(map[string]*models.Gunslinger, len(roster))
	for _, g := range roster {
		byName[strings.ToLower(g.Name)] = g
	}
	s.mu.Lock()
	s.roster, s.byName = roster, byName
	s.mu.Unlock()
	return nil
}

func (s *server) find(name string) *models.Gunslinger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byName[strings.ToLower(name)]
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// GET /api/gunslingers
func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	roster := s.roster
	s.mu.RUnlock()
	writeJSON(w, roster)
}

// GET /api/gunslingers/{name}
func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	g := s.find(name)
	if g == nil {
		http.Error(w, "unknown gunslinger", http.StatusNotFound)
		return
	}
	writeJSON(w, g)
}

// POST /api/sim/shot
// Body: attacker/defender snapshots plus the shot's situation. A seed
// makes the outcome reproducible for debugging.
func (s *server) handleSimShot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Attacker  combat.Combatant `json:"attacker"`
		Defender  combat.Combatant `json:"defender"`
		Situation combat.Situation `json:"situation"`
		Seed      *int64           `json:"seed,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	rng := engine.New()
	if req.Seed != nil {
		rng = engine.NewSeeded(*req.Seed)
	}
	writeJSON(w, combat.ResolveRound(rng, req.Attacker, req.Defender, req.Situation))
}

// POST /api/sim/duel
// Body: two roster names and a duel count; returns percentile rounds.
func (s *server) handleSimDuel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		First  string `json:"first"`
		Second string `json:"second"`
		Duels  int    `json:"duels"`
		Seed   *int64 `json:"seed,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	g1, g2 := s.find(req.First), s.find(req.Second)
	if g1 == nil || g2 == nil {
		http.Error(w, "unknown gunslinger", http.StatusNotFound)
		return
	}
	if req.Duels <= 0 || req.Duels > 10000 {
		req.Duels = 1000
	}
	rng := engine.New()
	if req.Seed != nil {
		rng = engine.NewSeeded(*req.Seed)
	}
	writeJSON(w, sim.RunDuels(rng, g1.Snapshot(), g2.Snapshot(), req.Duels, nil))
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()

	srv, err := newServer(cfg.RosterDir)
	if err != nil {
		log.Fatalf("load roster from %s: %v", cfg.RosterDir, err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/gunslingers", srv.handleList).Methods(http.MethodGet)
	r.HandleFunc("/api/gunslingers/{name}", srv.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/api/sim/shot", srv.handleSimShot).Methods(http.MethodPost)
	r.HandleFunc("/api/sim/duel", srv.handleSimDuel).Methods(http.MethodPost)

	r.HandleFunc("/api/stats/save", SaveStatsHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/stats/get", GetStatsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/stats/daily", GetDailyRecordsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/stats/daily/wound", PostDeadliestWoundHandler).Methods(http.MethodPost)

	r.HandleFunc("/api/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok", "version": buildVersion, "time": buildTime})
	})

	log.Printf("western-duel data api listening on %s (roster=%s, %d gunslingers)",
		cfg.APIListenAddr, cfg.RosterDir, len(srv.roster))
	log.Fatal(http.ListenAndServe(cfg.APIListenAddr, withCORS(r)))
}
