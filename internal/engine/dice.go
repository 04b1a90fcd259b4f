package engine

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var diceRe = regexp.MustCompile(`(?i)^\s*(\d+)?\s*d\s*(\d+)(\s*([+\-x*])\s*(\d+))?\s*$`)

// RollExpr supports: N, NdM, NdM+K, NdM-K, NdM xK (multiply) / * K
func RollExpr(r *rand.Rand, expr string) int {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0
	}
	// raw int
	if n, err := strconv.Atoi(expr); err == nil {
		return n
	}
	m := diceRe.FindStringSubmatch(expr)
	if m == nil {
		return 0
	}
	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	sides, _ := strconv.Atoi(m[2])
	total := 0
	for i := 0; i < count; i++ {
		total += 1 + r.Intn(sides)
	}
	if m[3] != "" {
		op := m[4]
		k, _ := strconv.Atoi(m[5])
		switch op {
		case "+":
			total += k
		case "-":
			total -= k
		case "x", "*":
			total *= k
		}
	}
	if total < 0 {
		total = 0
	}
	return total
}

// D100 rolls a uniform percentile in [1,100].
func D100(r *rand.Rand) int { return 1 + r.Intn(100) }

// New returns an RNG seeded from the wall clock, for normal play.
func New() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) }

// NewSeeded returns a deterministic RNG for tests and repeatable simulations.
func NewSeeded(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }
