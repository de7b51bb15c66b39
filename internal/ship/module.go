// Package ship provides the ship module bank: seven damageable, upgradeable
// modules whose efficiency feeds the rest of the simulation.
package ship

// ModuleID names one of the seven fixed ship modules.
type ModuleID string

const (
	Hull        ModuleID = "hull"
	Engines     ModuleID = "engines"
	LifeSupport ModuleID = "life_support"
	Shields     ModuleID = "shields"
	Weapons     ModuleID = "weapons"
	Sensors     ModuleID = "sensors"
	Cargo       ModuleID = "cargo"
)

// ModuleIDs lists the modules in declaration order. Damage distribution and
// auto-repair iterate in this order.
var ModuleIDs = []ModuleID{Hull, Engines, LifeSupport, Shields, Weapons, Sensors, Cargo}

// MaxTier is the highest upgrade tier a module can reach.
const MaxTier = 5

const baseMaxHealth = 100

// Module is one ship system. A module below half health is damaged (halved
// efficiency); at zero health it goes offline until repaired above zero.
type Module struct {
	ID        ModuleID `json:"id"`
	Name      string   `json:"name"`
	Critical  bool     `json:"critical"` // loss contributes to ship-level failure
	Health    int      `json:"health"`
	MaxHealth int      `json:"max_health"`
	Tier      int      `json:"tier"` // 1-5, monotonically non-decreasing
	Damaged   bool     `json:"damaged"`
	Offline   bool     `json:"offline"`
}

func newModule(id ModuleID, name string, critical bool) *Module {
	return &Module{
		ID:        id,
		Name:      name,
		Critical:  critical,
		Health:    baseMaxHealth,
		MaxHealth: baseMaxHealth,
		Tier:      1,
	}
}

// DamageResult describes the effect of a hit on one module.
type DamageResult struct {
	Module    ModuleID
	Destroyed bool // went offline on this hit
	Damaged   bool
	Critical  bool // a critical module went offline
}

// TakeDamage applies damage to the module, updating the damaged and offline
// flags.
func (m *Module) TakeDamage(amount int) DamageResult {
	m.Health -= amount
	if m.Health < 0 {
		m.Health = 0
	}

	if m.Health < m.MaxHealth/2 {
		m.Damaged = true
	}

	if m.Health <= 0 && !m.Offline {
		m.Offline = true
		return DamageResult{Module: m.ID, Destroyed: true, Critical: m.Critical}
	}
	return DamageResult{Module: m.ID, Damaged: m.Damaged}
}

// RepairResult describes the effect of a repair on one module.
type RepairResult struct {
	Module        ModuleID
	Repaired      int
	FullyRepaired bool
	Restored      bool // neither damaged nor offline afterward
}

// Repair restores health up to MaxHealth, clearing the damaged flag at half
// health and bringing an offline module back once health is above zero.
func (m *Module) Repair(amount int) RepairResult {
	old := m.Health
	m.Health += amount
	if m.Health > m.MaxHealth {
		m.Health = m.MaxHealth
	}

	if m.Health >= m.MaxHealth/2 {
		m.Damaged = false
	}
	if m.Health > 0 {
		m.Offline = false
	}

	return RepairResult{
		Module:        m.ID,
		Repaired:      m.Health - old,
		FullyRepaired: m.Health == m.MaxHealth,
		Restored:      !m.Damaged && !m.Offline,
	}
}

// Upgrade raises the tier by one, adding 20 to max and current health.
// Returns false at the tier cap.
func (m *Module) Upgrade() bool {
	if m.Tier >= MaxTier {
		return false
	}
	m.Tier++
	m.MaxHealth += 20
	m.Health += 20
	return true
}

// Efficiency returns the module's output factor: 0 offline, a flat 0.5 while
// damaged, otherwise health ratio scaled up 10% per tier.
func (m *Module) Efficiency() float64 {
	if m.Offline {
		return 0
	}
	if m.Damaged {
		return 0.5
	}
	return float64(m.Health) / float64(m.MaxHealth) * (1 + float64(m.Tier)*0.1)
}
