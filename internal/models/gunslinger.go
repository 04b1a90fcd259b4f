package models

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marshalc/western-duel/internal/combat"
)

// Attributes is the full attribute record a gunslinger carries. The
// combat engine reads a subset of these; bounds are the application's
// business, not enforced here.
type Attributes struct {
	Speed            int `yaml:"speed" json:"speed"`
	GunAccuracy      int `yaml:"gun_accuracy" json:"gun_accuracy"`
	ThrowingAccuracy int `yaml:"throwing_accuracy" json:"throwing_accuracy"`
	Strength         int `yaml:"strength" json:"strength"`
	BaseStrength     int `yaml:"base_strength" json:"base_strength"`
	Bravery          int `yaml:"bravery" json:"bravery"`
	Experience       int `yaml:"experience" json:"experience"`
}

// Sidearm is the weapon a gunslinger carries into a duel.
type Sidearm struct {
	Name  string             `yaml:"name" json:"name"`
	Class combat.WeaponClass `yaml:"class,omitempty" json:"class,omitempty"`
}

// Gunslinger is one roster entry, loaded from a YAML file in the
// roster library directory.
type Gunslinger struct {
	Name       string     `yaml:"name" json:"name"`
	Nickname   string     `yaml:"nickname,omitempty" json:"nickname,omitempty"`
	Attributes Attributes `yaml:"attributes" json:"attributes"`
	Sidearm    Sidearm    `yaml:"sidearm" json:"sidearm"`

	Source string `yaml:"-" json:"-"`
}

// Snapshot bridges a roster record into the combat engine's view.
func (g *Gunslinger) Snapshot() combat.Combatant {
	return combat.Combatant{
		Name:         g.Name,
		Speed:        g.Attributes.Speed,
		GunAccuracy:  g.Attributes.GunAccuracy,
		Strength:     g.Attributes.Strength,
		BaseStrength: g.Attributes.BaseStrength,
		Bravery:      g.Attributes.Bravery,
		Experience:   g.Attributes.Experience,
	}
}

// Load reads a single gunslinger file.
func Load(path string) (*Gunslinger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g Gunslinger
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if g.Name == "" {
		return nil, fmt.Errorf("parse %s: gunslinger has no name", path)
	}
	if g.Attributes.Strength == 0 && g.Attributes.BaseStrength > 0 {
		g.Attributes.Strength = g.Attributes.BaseStrength
	}
	if g.Sidearm.Class == "" {
		g.Sidearm.Class = combat.WeaponNormal
	}
	g.Source = path
	return &g, nil
}

// LoadRoster reads every .yaml/.yml file in dir, sorted by name.
func LoadRoster(dir string) ([]*Gunslinger, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var roster []*Gunslinger
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		g, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		roster = append(roster, g)
	}
	sort.Slice(roster, func(i, j int) bool {
		return strings.ToLower(roster[i].Name) < strings.ToLower(roster[j].Name)
	})
	return roster, nil
}
