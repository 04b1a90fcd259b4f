package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/marshalc/western-duel/internal/api"
	"github.com/marshalc/western-duel/internal/combat"
	"github.com/marshalc/western-duel/internal/config"
	"github.com/marshalc/western-duel/internal/engine"
	"github.com/marshalc/western-duel/internal/models"
	"github.com/marshalc/western-duel/internal/stats"
)

var (
	cfg       *config.Config
	apiClient *api.Client
)

// Build metadata injected via -ldflags at build time
var (
	buildVersion = "dev"
	buildTime    = ""
)

// maxShotsPerTurn is how many shots a shooter may squeeze off before
// the turn flips; the second and third carry the rapid-fire penalty.
const maxShotsPerTurn = 3

// ========================= Players & Rooms =========================

type Player struct {
	ID      string
	Conn    *websocket.Conn
	Name    string
	IsAI    bool // true only for bot players we create server-side
	WantsAI bool // true if this human asked to duel the house
	Ready   bool

	Slinger  *models.Gunslinger
	Strength int
	Wounds   []combat.Wound
	GunArm   combat.ArmWound // worst gun-arm wound taken so far
}

// snapshot builds the combat engine's view of this player right now.
func (p *Player) snapshot() combat.Combatant {
	c := p.Slinger.Snapshot()
	c.Strength = p.Strength
	return c
}

type Room struct {
	ID       string
	P1, P2   *Player
	Turn     string
	Finished bool
	Winner   string
	Mu       sync.Mutex

	RNG           *rand.Rand
	ShotsThisTurn int
	RoundCount    int
}

var (
	matchQueue   = make(chan *Player, 32)
	roomsMu      sync.Mutex
	rooms        = map[string]*Room{}
	playersIndex sync.Map // player id -> room id
	// Lobby of waiting players (not yet matched). Entries removed on match or disconnect.
	lobbyMu sync.Mutex
	lobby   = map[string]LobbyEntry{}
)

// Lightweight lobby entry exposed via /lobby
type LobbyEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Gunslinger string `json:"gunslinger"`
	Locked     bool   `json:"locked"`
	WantsAI    bool   `json:"wantsAI"`
	Queued     bool   `json:"queued"`
	Since      int64  `json:"since"` // unix seconds
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ========================= Matchmaking =========================

func matchmaker() {
	for {
		p1 := <-matchQueue
		log.Printf("matchmaker: got p1 id=%s name=%q wantsAI=%v", p1.ID, p1.Name, p1.WantsAI)
		select {
		case p2 := <-matchQueue:
			createRoom(p1, p2)
		case <-time.After(1200 * time.Millisecond):
			if p1.WantsAI {
				createRoom(p1, makeAIPlayer())
			} else {
				p2 := <-matchQueue
				createRoom(p1, p2)
			}
		}
	}
}

func createRoom(p1, p2 *Player) {
	room := &Room{ID: uuid.NewString(), P1: p1, P2: p2, RNG: engine.New()}
	roomsMu.Lock()
	rooms[room.ID] = room
	roomsMu.Unlock()
	playersIndex.Store(p1.ID, room.ID)
	playersIndex.Store(p2.ID, room.ID)
	log.Printf("room: created id=%s p1=%s(%s, ai=%v) p2=%s(%s, ai=%v)",
		room.ID, p1.ID, p1.Name, p1.IsAI, p2.ID, p2.Name, p2.IsAI)
	lobbyDelete(p1.ID)
	lobbyDelete(p2.ID)
	go roomLoop(room)
}

// makeAIPlayer picks a random gunslinger off the roster, falling back
// to a stock drifter when the data API is unreachable.
func makeAIPlayer() *Player {
	ai := &Player{ID: uuid.NewString(), Name: "The Stranger", IsAI: true}
	roster, err := apiClient.Gunslingers()
	if err == nil && len(roster) > 0 {
		ai.Slinger = roster[rand.Intn(len(roster))]
	} else {
		ai.Slinger = &models.Gunslinger{
			Name: "Drifter",
			Attributes: models.Attributes{
				Speed: 10, GunAccuracy: 5, Strength: 12, BaseStrength: 12,
				Bravery: 50, Experience: 3,
			},
			Sidearm: models.Sidearm{Name: "Worn Revolver", Class: combat.WeaponNormal},
		}
	}
	ai.Strength = ai.Slinger.Attributes.Strength
	ai.Ready = true
	return ai
}

// ========================= Room Loop =========================

type wsMsg struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func roomLoop(r *Room) {
	broadcast := func(m wsMsg) { sendTo(r.P1, m); sendTo(r.P2, m) }
	broadcast(wsMsg{Type: "status", Data: map[string]any{"room": r.ID, "message": "Match found. Pick your gunslinger."}})

	// Wait for both players ready
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()
	for {
		time.Sleep(50 * time.Millisecond)
		if r.P1.Ready && r.P2.Ready {
			break
		}
		select {
		case <-tick.C:
			broadcastGameState(r)
		default:
		}
	}

	r.Mu.Lock()
	for _, p := range []*Player{r.P1, r.P2} {
		if p.Slinger == nil {
			p.Slinger = makeAIPlayer().Slinger
		}
		if p.Strength == 0 {
			p.Strength = p.Slinger.Attributes.Strength
		}
	}

	// The draw: the rules engine decides who clears leather first.
	first := r.P1
	if combat.FirstShooter(r.P1.snapshot(), r.P2.snapshot(), combat.DrawSituation{}) == 1 {
		first = r.P2
	}
	r.Turn = first.ID
	r.ShotsThisTurn = 0
	r.Mu.Unlock()

	broadcast(wsMsg{Type: "log", Data: fmt.Sprintf("The draw: %s clears leather first", first.Name)})
	broadcastGameState(r)
	scheduleAIAttack(r, 1500)
}

func getRoom(id string) *Room { roomsMu.Lock(); defer roomsMu.Unlock(); return rooms[id] }

func sendTo(p *Player, m wsMsg) {
	if p != nil && p.Conn != nil {
		if err := p.Conn.WriteJSON(m); err != nil {
			log.Printf("ws: write error to %s: %v", p.ID, err)
		}
	}
}

func broadcastGameState(r *Room) {
	state := map[string]any{
		"room":   r.ID,
		"turn":   r.Turn,
		"round":  r.RoundCount,
		"p1":     summarizePlayer(r.P1),
		"p2":     summarizePlayer(r.P2),
		"winner": r.Winner,
	}
	sendTo(r.P1, wsMsg{Type: "state", Data: state})
	sendTo(r.P2, wsMsg{Type: "state", Data: state})
}

func summarizePlayer(p *Player) map[string]any {
	out := map[string]any{
		"id":       p.ID,
		"name":     p.Name,
		"ai":       p.IsAI,
		"ready":    p.Ready,
		"strength": p.Strength,
		"wounds":   p.Wounds,
		"gun_arm":  p.GunArm,
	}
	if p.Slinger != nil {
		out["gunslinger"] = p.Slinger
	}
	return out
}

// ========================= Combat handling =========================

func opponent(r *Room, p *Player) *Player {
	if r.P1.ID == p.ID {
		return r.P2
	}
	return r.P1
}

// handleShot resolves one shot for p using the submitted situation.
// The server owns the shot counter and the shooter's gun-arm state;
// everything else about the situation is the client's claim.
func handleShot(r *Room, p *Player, sit combat.Situation) {
	r.Mu.Lock()
	if r.Finished || r.Turn != p.ID || p.Slinger == nil {
		r.Mu.Unlock()
		return
	}
	def := opponent(r, p)

	r.ShotsThisTurn++
	r.RoundCount++
	sit.ShotNumber = r.ShotsThisTurn
	sit.WoundedGunArm = p.GunArm
	if p.Slinger.Sidearm.Class != "" {
		sit.Weapon = p.Slinger.Sidearm.Class
	}

	res := combat.ResolveRound(r.RNG, p.snapshot(), def.snapshot(), sit)
	logs := res.Logs

	if res.Hit {
		w := *res.Wound
		def.Wounds = append(def.Wounds, w)
		def.Strength -= w.StrengthReduction
		if def.Strength < 0 {
			def.Strength = 0
		}
		if w.Location == combat.LocRightArm {
			switch w.Severity {
			case combat.SeverityLight:
				if def.GunArm == "" {
					def.GunArm = combat.ArmWoundLight
				}
			default:
				def.GunArm = combat.ArmWoundSerious
			}
		}
		stats.MaybeDeadliestWound(stats.DeadliestWound{
			Shooter:  p.Name,
			Target:   def.Name,
			Location: string(w.Location),
			Severity: string(w.Severity),
			Damage:   w.StrengthReduction,
		})
		if w.Fatal() || def.Strength <= 0 {
			r.Finished = true
			r.Winner = p.ID
			logs = append(logs, fmt.Sprintf("%s is down. %s takes the street.", def.Name, p.Name))
			stats.MaybeQuickestKill(stats.QuickestKill{Winner: p.Name, Loser: def.Name, Rounds: r.RoundCount})
		}
	}

	turnOver := !r.Finished && r.ShotsThisTurn >= maxShotsPerTurn
	if turnOver {
		r.Turn = def.ID
		r.ShotsThisTurn = 0
		logs = append(logs, fmt.Sprintf("%s's turn", def.Name))
	}
	r.Mu.Unlock()

	sendTo(r.P1, wsMsg{Type: "log_multi", Data: logs})
	sendTo(r.P2, wsMsg{Type: "log_multi", Data: logs})
	broadcastGameState(r)
	if turnOver {
		scheduleAIAttack(r, 1500)
	}
}

// handleBrawl resolves one round of fisticuffs instead of a shot, and
// always ends the turn.
func handleBrawl(r *Room, p *Player) {
	r.Mu.Lock()
	if r.Finished || r.Turn != p.ID || p.Slinger == nil {
		r.Mu.Unlock()
		return
	}
	def := opponent(r, p)
	r.RoundCount++

	out := combat.ResolveBrawlRound(r.RNG, p.snapshot(), def.snapshot())
	def.Strength = out.RemainingStrength
	logs := out.Logs
	if out.KnockedOut {
		r.Finished = true
		r.Winner = p.ID
		stats.MaybeQuickestKill(stats.QuickestKill{Winner: p.Name, Loser: def.Name, Rounds: r.RoundCount})
	} else {
		r.Turn = def.ID
		r.ShotsThisTurn = 0
		logs = append(logs, fmt.Sprintf("%s's turn", def.Name))
	}
	r.Mu.Unlock()

	sendTo(r.P1, wsMsg{Type: "log_multi", Data: logs})
	sendTo(r.P2, wsMsg{Type: "log_multi", Data: logs})
	broadcastGameState(r)
	if !out.KnockedOut {
		scheduleAIAttack(r, 1500)
	}
}

// handlePass flips the turn without firing (holding aim, taking cover).
func handlePass(r *Room, p *Player) {
	r.Mu.Lock()
	if r.Finished || r.Turn != p.ID {
		r.Mu.Unlock()
		return
	}
	def := opponent(r, p)
	r.Turn = def.ID
	r.ShotsThisTurn = 0
	r.Mu.Unlock()

	msg := wsMsg{Type: "log", Data: fmt.Sprintf("%s holds fire. %s's turn", p.Name, def.Name)}
	sendTo(r.P1, msg)
	sendTo(r.P2, msg)
	broadcastGameState(r)
	scheduleAIAttack(r, 1500)
}

// scheduleAIAttack lets the house take its turn after a short beat.
// The AI fires once at medium range (hip shooting when it feels lucky),
// then hands the turn back.
func scheduleAIAttack(r *Room, delayMS int) {
	r.Mu.Lock()
	turnID := r.Turn
	finished := r.Finished
	r.Mu.Unlock()
	if finished {
		return
	}
	var ai *Player
	if r.P1.IsAI && r.P1.ID == turnID {
		ai = r.P1
	} else if r.P2.IsAI && r.P2.ID == turnID {
		ai = r.P2
	}
	if ai == nil {
		return
	}
	time.AfterFunc(time.Duration(delayMS)*time.Millisecond, func() {
		sit := combat.Situation{Range: combat.RangeMedium}
		if rand.Intn(100) < 20 {
			sit.HipShooting = true
		}
		handleShot(r, ai, sit)
		handlePass(r, ai)
	})
}

// ========================= WebSocket plumbing =========================

type clientIn struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func handleWS(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = randomWesternName()
	}
	wantAI := r.URL.Query().Get("ai") == "1"
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	player := &Player{ID: uuid.NewString(), Conn: conn, Name: name, WantsAI: wantAI}
	log.Printf("ws: connect id=%s name=%q ai=%v from=%s", player.ID, name, wantAI, r.RemoteAddr)
	_ = player.Conn.WriteJSON(wsMsg{Type: "you", Data: map[string]string{"id": player.ID}})
	lobbySet(player, false)
	go wsReader(player)
}

func wsReader(p *Player) {
	defer func() {
		if p.Conn != nil {
			_ = p.Conn.Close()
			p.Conn = nil
		}
		log.Printf("ws: closed id=%s name=%q", p.ID, p.Name)
		lobbyMarkQueued(p.ID, false)
		lobbyDelete(p.ID)
	}()
	for {
		var in clientIn
		if err := p.Conn.ReadJSON(&in); err != nil {
			log.Printf("ws: read error id=%s: %v", p.ID, err)
			return
		}
		roomIDAny, ok := playersIndex.Load(p.ID)
		r := (*Room)(nil)
		if ok {
			r = getRoom(roomIDAny.(string))
		}
		switch in.Type {
		case "choose":
			var body struct {
				Gunslinger string `json:"gunslinger"`
			}
			_ = json.Unmarshal(in.Data, &body)
			g, err := apiClient.Gunslinger(body.Gunslinger)
			if err != nil {
				sendTo(p, wsMsg{Type: "log", Data: fmt.Sprintf("No such gunslinger: %s", body.Gunslinger)})
				break
			}
			p.Slinger = g
			p.Strength = g.Attributes.Strength
			p.Wounds = nil
			p.GunArm = ""
			lobbySet(p, p.Ready)
			sendTo(p, wsMsg{Type: "log", Data: fmt.Sprintf("Riding as %s (%s)", g.Name, g.Sidearm.Name)})
			if r != nil {
				broadcastGameState(r)
			}
		case "ready":
			p.Ready = true
			lobbySet(p, true)
			sendTo(p, wsMsg{Type: "log", Data: "Ready! Waiting for opponent..."})
		case "queue":
			var body struct {
				AI bool `json:"ai"`
			}
			_ = json.Unmarshal(in.Data, &body)
			p.WantsAI = body.AI
			lobbySet(p, p.Ready)
			lobbyMarkQueued(p.ID, true)
			matchQueue <- p
			log.Printf("ws: enqueued player id=%s (queueLen=%d)", p.ID, len(matchQueue))
		case "shot":
			if r == nil {
				break
			}
			var sit combat.Situation
			_ = json.Unmarshal(in.Data, &sit)
			handleShot(r, p, sit)
		case "brawl":
			if r == nil {
				break
			}
			handleBrawl(r, p)
		case "pass":
			if r == nil {
				break
			}
			handlePass(r, p)
		}
	}
}

// ========================= Lobby =========================

func lobbySet(p *Player, locked bool) {
	lobbyMu.Lock()
	defer lobbyMu.Unlock()
	e, ok := lobby[p.ID]
	if !ok {
		e = LobbyEntry{ID: p.ID, Since: time.Now().Unix()}
	}
	e.Name = p.Name
	if p.Slinger != nil {
		e.Gunslinger = p.Slinger.Name
	}
	e.Locked = locked
	e.WantsAI = p.WantsAI
	lobby[p.ID] = e
}

func lobbyMarkQueued(playerID string, queued bool) {
	lobbyMu.Lock()
	defer lobbyMu.Unlock()
	if e, ok := lobby[playerID]; ok {
		e.Queued = queued
		lobby[playerID] = e
	}
}

func lobbyDelete(playerID string) {
	lobbyMu.Lock()
	defer lobbyMu.Unlock()
	delete(lobby, playerID)
}

func handleLobby(w http.ResponseWriter, r *http.Request) {
	lobbyMu.Lock()
	entries := make([]LobbyEntry, 0, len(lobby))
	for _, e := range lobby {
		entries = append(entries, e)
	}
	lobbyMu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

// randomWesternName builds a nickname from a frontier epithet and surname.
func randomWesternName() string {
	adjs := []string{
		"Dusty", "Lucky", "Unlucky", "Crooked", "One-Eyed", "Quickdraw", "Slow-Hand", "Mad", "Gentle", "Sour", "Wily", "Rattlesnake", "Preacher", "Doc", "Tumbleweed",
	}
	surnames := []string{
		"Holliday", "Earp", "Ringo", "Cassidy", "Garrett", "Hickok", "Starr", "James", "Dalton", "McCall", "Slade", "Vance", "Harlan", "Mott",
	}
	a := adjs[rand.Intn(len(adjs))]
	s := surnames[rand.Intn(len(surnames))]
	return a + " " + s
}

// ========================= Main =========================

func main() {
	cfg = config.Load()
	apiClient = api.NewClient(cfg.DataAPIBase)

	http.HandleFunc("/ws", handleWS)
	http.HandleFunc("/lobby", handleLobby)
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	http.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"version": buildVersion,
			"time":    buildTime,
		})
	})

	go matchmaker()

	log.Printf("western-duel game listening on %s (DATA_API_BASE=%s)", cfg.GameListenAddr, cfg.DataAPIBase)
	log.Fatal(http.ListenAndServe(cfg.GameListenAddr, nil))
}
