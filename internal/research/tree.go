// Package research implements the technology tree. Spending banked
// technology points unlocks passive bonuses, per-turn yields, and
// capability flags consumed by the other ship systems.
package research

// Category groups technologies into tree branches.
type Category string

const (
	Propulsion  Category = "propulsion"
	Weapons     Category = "weapons"
	Shields     Category = "shields"
	LifeSupport Category = "life_support"
	Sensors     Category = "sensors"
	Engineering Category = "engineering"
)

// EffectKind identifies a numeric research bonus. Each kind has a fixed
// combination rule when multiple technologies contribute to it.
type EffectKind string

const (
	// Additive, identity 0.
	FuelConsumption    EffectKind = "fuel_consumption"
	ShieldRegen        EffectKind = "shield_regen"
	HullRegen          EffectKind = "hull_regen"
	FoodGeneration     EffectKind = "food_generation"
	MaterialGeneration EffectKind = "material_generation"
	MoraleGeneration   EffectKind = "morale_generation"

	// Multiplicative, identity 1.
	WeaponDamage     EffectKind = "weapon_damage"
	ShieldCapacity   EffectKind = "shield_capacity"
	HullCapacity     EffectKind = "hull_capacity"
	EventRewardBonus EffectKind = "event_reward_bonus"

	// Overwrite, later research replaces earlier.
	HitChance   EffectKind = "hit_chance"
	DodgeChance EffectKind = "dodge_chance"
	ScanRange   EffectKind = "scan_range"
)

// Multiplicative reports whether a kind combines by multiplication and so
// defaults to 1 rather than 0.
func (k EffectKind) Multiplicative() bool {
	switch k {
	case WeaponDamage, ShieldCapacity, HullCapacity, EventRewardBonus:
		return true
	}
	return false
}

// Additive reports whether a kind accumulates by summation.
func (k EffectKind) Additive() bool {
	switch k {
	case FuelConsumption, ShieldRegen, HullRegen,
		FoodGeneration, MaterialGeneration, MoraleGeneration:
		return true
	}
	return false
}

// Flag is a boolean capability unlocked by research.
type Flag string

const (
	JumpDrive       Flag = "jump_drive"
	SuperWeapon     Flag = "super_weapon"
	ThreatDetection Flag = "threat_detection"
	AutoRepair      Flag = "auto_repair"
	CriticalImmune  Flag = "critical_immune"
)

// TechID names a technology.
type TechID string

// Technology is one node of the tree.
type Technology struct {
	ID          TechID
	Name        string
	Description string
	Category    Category
	Cost        int
	Requires    []TechID
	Effects     map[EffectKind]float64
	Flags       []Flag
}

// Tree is the full technology table, three tiers per branch.
var Tree = []Technology{
	{
		ID: "efficient_engines", Name: "Efficient Engines",
		Description: "Reduce fuel consumption by 20%",
		Category:    Propulsion, Cost: 50,
		Effects: map[EffectKind]float64{FuelConsumption: -0.2},
	},
	{
		ID: "warp_drive_i", Name: "Warp Drive I",
		Description: "Travel costs 30% less fuel",
		Category:    Propulsion, Cost: 100, Requires: []TechID{"efficient_engines"},
		Effects: map[EffectKind]float64{FuelConsumption: -0.3},
	},
	{
		ID: "quantum_drive", Name: "Quantum Drive",
		Description: "Travel costs 50% less fuel. Unlock long-range jumps",
		Category:    Propulsion, Cost: 200, Requires: []TechID{"warp_drive_i"},
		Effects: map[EffectKind]float64{FuelConsumption: -0.5},
		Flags:   []Flag{JumpDrive},
	},

	{
		ID: "plasma_weapons", Name: "Plasma Weapons",
		Description: "+25% combat damage",
		Category:    Weapons, Cost: 60,
		Effects: map[EffectKind]float64{WeaponDamage: 1.25},
	},
	{
		ID: "guided_missiles", Name: "Guided Missiles",
		Description: "+50% combat damage, +15% hit chance",
		Category:    Weapons, Cost: 120, Requires: []TechID{"plasma_weapons"},
		Effects: map[EffectKind]float64{WeaponDamage: 1.5, HitChance: 0.15},
	},
	{
		ID: "antimatter_cannon", Name: "Antimatter Cannon",
		Description: "+100% combat damage. Devastating special attack",
		Category:    Weapons, Cost: 250, Requires: []TechID{"guided_missiles"},
		Effects: map[EffectKind]float64{WeaponDamage: 2.0},
		Flags:   []Flag{SuperWeapon},
	},

	{
		ID: "reinforced_shields", Name: "Reinforced Shields",
		Description: "+30% shield capacity",
		Category:    Shields, Cost: 50,
		Effects: map[EffectKind]float64{ShieldCapacity: 1.3},
	},
	{
		ID: "regenerative_shields", Name: "Regenerative Shields",
		Description: "Shields regenerate 10 points per turn in combat",
		Category:    Shields, Cost: 100, Requires: []TechID{"reinforced_shields"},
		Effects: map[EffectKind]float64{ShieldRegen: 10},
	},
	{
		ID: "phase_shields", Name: "Phase Shields",
		Description: "+80% shield capacity, 20% chance to avoid damage entirely",
		Category:    Shields, Cost: 200, Requires: []TechID{"regenerative_shields"},
		Effects: map[EffectKind]float64{ShieldCapacity: 1.8, DodgeChance: 0.2},
	},

	{
		ID: "hydroponics", Name: "Hydroponics Bay",
		Description: "Generate +5 food per turn",
		Category:    LifeSupport, Cost: 80,
		Effects: map[EffectKind]float64{FoodGeneration: 5},
	},
	{
		ID: "advanced_recycling", Name: "Advanced Recycling",
		Description: "Generate +10 food per turn, +5 materials per turn",
		Category:    LifeSupport, Cost: 150, Requires: []TechID{"hydroponics"},
		Effects: map[EffectKind]float64{FoodGeneration: 10, MaterialGeneration: 5},
	},
	{
		ID: "closed_ecosystem", Name: "Closed Ecosystem",
		Description: "Generate +20 food, +10 materials, +10 morale per turn",
		Category:    LifeSupport, Cost: 250, Requires: []TechID{"advanced_recycling"},
		Effects: map[EffectKind]float64{
			FoodGeneration: 20, MaterialGeneration: 10, MoraleGeneration: 10,
		},
	},

	{
		ID: "long_range_sensors", Name: "Long-Range Sensors",
		Description: "Discover nearby systems automatically",
		Category:    Sensors, Cost: 60,
		Effects: map[EffectKind]float64{ScanRange: 2},
	},
	{
		ID: "deep_scan", Name: "Deep Scan Arrays",
		Description: "Reveal system contents before visiting. +20% event rewards",
		Category:    Sensors, Cost: 120, Requires: []TechID{"long_range_sensors"},
		Effects: map[EffectKind]float64{ScanRange: 3, EventRewardBonus: 1.2},
	},
	{
		ID: "quantum_sensors", Name: "Quantum Sensors",
		Description: "See all systems. +50% event rewards. Detect threats early",
		Category:    Sensors, Cost: 200, Requires: []TechID{"deep_scan"},
		Effects: map[EffectKind]float64{ScanRange: 999, EventRewardBonus: 1.5},
		Flags:   []Flag{ThreatDetection},
	},

	{
		ID: "nanobots", Name: "Nanobots",
		Description: "Repair 5 hull per turn automatically",
		Category:    Engineering, Cost: 70,
		Effects: map[EffectKind]float64{HullRegen: 5},
	},
	{
		ID: "self_repair", Name: "Self-Repair Systems",
		Description: "Repair 15 hull per turn, repair modules automatically",
		Category:    Engineering, Cost: 140, Requires: []TechID{"nanobots"},
		Effects: map[EffectKind]float64{HullRegen: 15},
		Flags:   []Flag{AutoRepair},
	},
	{
		ID: "adaptive_hull", Name: "Adaptive Hull",
		Description: "+50% hull capacity, 30 hull regen per turn, immune to critical hits",
		Category:    Engineering, Cost: 220, Requires: []TechID{"self_repair"},
		Effects: map[EffectKind]float64{HullCapacity: 1.5, HullRegen: 30},
		Flags:   []Flag{CriticalImmune},
	},
}

// TechByID looks up a tree node.
func TechByID(id TechID) (*Technology, bool) {
	for i := range Tree {
		if Tree[i].ID == id {
			return &Tree[i], true
		}
	}
	return nil, false
}
