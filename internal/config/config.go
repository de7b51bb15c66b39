// Package config holds the simulation tuning knobs. Balance-sensitive
// constants such as enemy AI thresholds and turn pacing live here rather
// than as literals inside the systems so they can be adjusted from a YAML
// file without touching code.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the full set of adjustable simulation constants.
type Tuning struct {
	Combat CombatTuning `yaml:"combat"`
	Turn   TurnTuning   `yaml:"turn"`
}

// CombatTuning drives the combat resolver and the enemy reactive policy.
type CombatTuning struct {
	// Enemy AI: shields below LowShieldFloor (when the enemy has meaningful
	// shields at all) biases toward defending.
	LowShieldFloor  float64 `yaml:"low_shield_floor"`
	LowShieldMinMax float64 `yaml:"low_shield_min_max"`
	LowShieldDefend float64 `yaml:"low_shield_defend"`
	// Enemy AI: hull below LowHullRatio of max biases toward evading.
	LowHullRatio float64 `yaml:"low_hull_ratio"`
	LowHullEvade float64 `yaml:"low_hull_evade"`
	// Enemy AI: default aggressive mix.
	AggressiveAttack float64 `yaml:"aggressive_attack"`
	AggressiveDefend float64 `yaml:"aggressive_defend"`

	PlayerEvadeChance  float64 `yaml:"player_evade_chance"`
	PlayerDefendRegen  float64 `yaml:"player_defend_regen"`
	EnemyDefendRegen   float64 `yaml:"enemy_defend_regen"`
	SpecialFuelCost    float64 `yaml:"special_fuel_cost"`
	FleeBaseChance     float64 `yaml:"flee_base_chance"`
	FleeFuelCost       float64 `yaml:"flee_fuel_cost"`
	DefeatInjuryChance float64 `yaml:"defeat_injury_chance"`
}

// TurnTuning paces the passage of time.
type TurnTuning struct {
	// Days advanced per turn are rolled uniformly in [MinDays, MaxDays].
	MinDays int `yaml:"min_days"`
	MaxDays int `yaml:"max_days"`
}

// Default returns the shipped balance values.
func Default() Tuning {
	return Tuning{
		Combat: CombatTuning{
			LowShieldFloor:     10,
			LowShieldMinMax:    20,
			LowShieldDefend:    0.6,
			LowHullRatio:       0.3,
			LowHullEvade:       0.5,
			AggressiveAttack:   0.6,
			AggressiveDefend:   0.25,
			PlayerEvadeChance:  0.4,
			PlayerDefendRegen:  15,
			EnemyDefendRegen:   10,
			SpecialFuelCost:    5,
			FleeBaseChance:     0.5,
			FleeFuelCost:       10,
			DefeatInjuryChance: 0.3,
		},
		Turn: TurnTuning{MinDays: 1, MaxDays: 5},
	}
}

// Load reads a YAML tuning file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Tuning, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning: %w", err)
	}
	return t, nil
}
