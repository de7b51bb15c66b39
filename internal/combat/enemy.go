// Package combat resolves ship-to-ship encounters turn by turn. The enemy
// runs a reactive policy tuned from config; the player picks an action per
// turn and crew skills shade the outcomes.
package combat

import (
	"github.com/solfarer/last-voyage/internal/config"
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

// EnemyType names an enemy template.
type EnemyType string

const (
	PirateScout     EnemyType = "PIRATE_SCOUT"
	PirateRaider    EnemyType = "PIRATE_RAIDER"
	AlienPatrol     EnemyType = "ALIEN_PATROL"
	AlienWarship    EnemyType = "ALIEN_WARSHIP"
	ScavengerDrone  EnemyType = "SCAVENGER_DRONE"
	AncientGuardian EnemyType = "ANCIENT_GUARDIAN"
)

// LootRange is a half-open reward band rolled on victory.
type LootRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Template holds an enemy archetype's base stats.
type Template struct {
	Name        string
	Description string
	Hull        int
	Shields     int
	Weapons     int
	Evasion     float64
	Loot        map[resource.Kind]LootRange
}

var Templates = map[EnemyType]Template{
	PirateScout: {
		Name: "Pirate Scout", Description: "A small, fast pirate vessel",
		Hull: 30, Shields: 10, Weapons: 15, Evasion: 0.3,
		Loot: map[resource.Kind]LootRange{
			resource.Materials: {5, 15}, resource.Fuel: {0, 5},
		},
	},
	PirateRaider: {
		Name: "Pirate Raider", Description: "A heavily armed pirate ship",
		Hull: 50, Shields: 25, Weapons: 25, Evasion: 0.2,
		Loot: map[resource.Kind]LootRange{
			resource.Materials: {15, 30}, resource.Fuel: {5, 15}, resource.Technology: {0, 5},
		},
	},
	AlienPatrol: {
		Name: "Alien Patrol Craft", Description: "An alien military patrol",
		Hull: 40, Shields: 30, Weapons: 20, Evasion: 0.25,
		Loot: map[resource.Kind]LootRange{
			resource.Technology: {10, 20}, resource.Materials: {5, 10},
		},
	},
	AlienWarship: {
		Name: "Alien Warship", Description: "A powerful alien battleship",
		Hull: 80, Shields: 50, Weapons: 40, Evasion: 0.15,
		Loot: map[resource.Kind]LootRange{
			resource.Technology: {20, 40}, resource.Materials: {20, 40}, resource.Fuel: {10, 20},
		},
	},
	ScavengerDrone: {
		Name: "Scavenger Drone", Description: "An automated mining drone turned hostile",
		Hull: 20, Shields: 5, Weapons: 10, Evasion: 0.4,
		Loot: map[resource.Kind]LootRange{resource.Materials: {5, 10}},
	},
	AncientGuardian: {
		Name: "Ancient Guardian", Description: "A mysterious ancient defense system",
		Hull: 100, Shields: 70, Weapons: 50, Evasion: 0.1,
		Loot: map[resource.Kind]LootRange{
			resource.Technology: {50, 100}, resource.Materials: {30, 50},
		},
	},
}

// lootOrder keeps victory salvage deterministic under a seeded source.
var lootOrder = []resource.Kind{resource.Materials, resource.Fuel, resource.Technology}

// Enemy is a live opponent instantiated from a template.
type Enemy struct {
	Type       EnemyType `json:"type"`
	Name       string    `json:"name"`
	Hull       int       `json:"hull"`
	MaxHull    int       `json:"max_hull"`
	Shields    int       `json:"shields"`
	MaxShields int       `json:"max_shields"`
	Weapons    int       `json:"weapons"`
	Evasion    float64   `json:"evasion"`
}

func NewEnemy(t EnemyType) (*Enemy, bool) {
	tpl, ok := Templates[t]
	if !ok {
		return nil, false
	}
	return &Enemy{
		Type: t, Name: tpl.Name,
		Hull: tpl.Hull, MaxHull: tpl.Hull,
		Shields: tpl.Shields, MaxShields: tpl.Shields,
		Weapons: tpl.Weapons, Evasion: tpl.Evasion,
	}, true
}

// TakeDamage routes damage through shields into hull and reports
// destruction.
func (e *Enemy) TakeDamage(amount int) bool {
	if e.Shields > 0 {
		absorbed := min(e.Shields, amount)
		e.Shields -= absorbed
		amount -= absorbed
	}
	if amount > 0 {
		e.Hull -= amount
	}
	return e.Hull <= 0
}

func (e *Enemy) Destroyed() bool { return e.Hull <= 0 }

func (e *Enemy) RegenerateShields(amount int) {
	e.Shields = min(e.MaxShields, e.Shields+amount)
}

// ChooseAction runs the reactive policy: protect low shields, turtle on low
// hull, otherwise stay aggressive.
func (e *Enemy) ChooseAction(cfg config.CombatTuning, src rng.Source) Action {
	roll := src.Float64()

	if float64(e.Shields) < cfg.LowShieldFloor && float64(e.MaxShields) > cfg.LowShieldMinMax {
		if roll < cfg.LowShieldDefend {
			return Defend
		}
		return Attack
	}

	if float64(e.Hull) < float64(e.MaxHull)*cfg.LowHullRatio {
		if roll < cfg.LowHullEvade {
			return Evade
		}
		return Defend
	}

	if roll < cfg.AggressiveAttack {
		return Attack
	}
	if roll < cfg.AggressiveAttack+cfg.AggressiveDefend {
		return Defend
	}
	return Evade
}

// RandomEnemy draws from the threat-level pool. Unknown levels fall back to
// the lowest tier.
func RandomEnemy(threatLevel int, src rng.Source) EnemyType {
	pools := map[int][]EnemyType{
		1: {PirateScout, ScavengerDrone},
		2: {PirateRaider, AlienPatrol},
		3: {AlienWarship, AncientGuardian},
	}
	pool, ok := pools[threatLevel]
	if !ok {
		pool = pools[1]
	}
	return pool[src.IntN(len(pool))]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
