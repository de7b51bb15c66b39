package ship

import (
	"math"

	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

// Bank owns the seven ship modules and the ship-level failure state.
type Bank struct {
	modules   map[ModuleID]*Module
	Integrity int  // 0-100 aggregate across modules
	Failed    bool // critical failure reached; consumed by the game-over check
}

// NewBank returns a bank with all modules at full health, tier 1.
func NewBank() *Bank {
	b := &Bank{modules: make(map[ModuleID]*Module, len(ModuleIDs)), Integrity: 100}
	b.modules[Hull] = newModule(Hull, "Hull Integrity", true)
	b.modules[Engines] = newModule(Engines, "Engine Systems", true)
	b.modules[LifeSupport] = newModule(LifeSupport, "Life Support", true)
	b.modules[Shields] = newModule(Shields, "Shield Generators", false)
	b.modules[Weapons] = newModule(Weapons, "Weapon Systems", false)
	b.modules[Sensors] = newModule(Sensors, "Sensor Array", false)
	b.modules[Cargo] = newModule(Cargo, "Cargo Bay", false)
	return b
}

// Module returns the named module, or nil for an unknown ID.
func (b *Bank) Module(id ModuleID) *Module { return b.modules[id] }

// All returns the modules in declaration order.
func (b *Bank) All() []*Module {
	out := make([]*Module, 0, len(ModuleIDs))
	for _, id := range ModuleIDs {
		out = append(out, b.modules[id])
	}
	return out
}

// DamagedModules returns modules currently damaged or offline, in
// declaration order.
func (b *Bank) DamagedModules() []*Module {
	var out []*Module
	for _, m := range b.All() {
		if m.Damaged || m.Offline {
			out = append(out, m)
		}
	}
	return out
}

// TakeDamage applies damage to the ship. A targeted hit lands entirely on
// one module. Untargeted damage spreads stochastically: every online module
// has a 40% chance to absorb its share, and the hull always takes 30% of the
// total on top.
func (b *Bank) TakeDamage(amount int, target ModuleID, src rng.Source) []DamageResult {
	var results []DamageResult

	if target != "" {
		if m := b.Module(target); m != nil {
			results = append(results, m.TakeDamage(amount))
		}
	} else {
		var online []*Module
		for _, m := range b.All() {
			if !m.Offline {
				online = append(online, m)
			}
		}
		share := int(math.Ceil(float64(amount) / math.Max(1, float64(len(online)))))
		for _, m := range online {
			if src.Float64() < 0.4 {
				res := m.TakeDamage(share)
				if res.Destroyed || res.Damaged {
					results = append(results, res)
				}
			}
		}
		results = append(results, b.modules[Hull].TakeDamage(int(float64(amount)*0.3)))
	}

	b.CheckCriticalFailure()
	b.updateIntegrity()
	return results
}

// CheckCriticalFailure reports whether the ship has reached its fatal
// condition: hull offline, or engines and life support both offline. Once
// set, Failed stays set.
func (b *Bank) CheckCriticalFailure() bool {
	if b.modules[Hull].Offline ||
		(b.modules[Engines].Offline && b.modules[LifeSupport].Offline) {
		b.Failed = true
	}
	return b.Failed
}

// RepairOutcome is the structured result of a repair or upgrade request.
type RepairOutcome struct {
	OK            bool
	Reason        string
	Results       []RepairResult
	MaterialsUsed int
}

// RepairModule restores amount health to one module, spending
// ceil(amount/2) materials from the ledger. Fails without mutating anything
// if materials are short or the module is unknown.
func (b *Bank) RepairModule(id ModuleID, amount int, ledger *resource.Ledger) RepairOutcome {
	m := b.Module(id)
	if m == nil {
		return RepairOutcome{Reason: "module not found"}
	}

	cost := (amount + 1) / 2
	if ledger.Get(resource.Materials) < float64(cost) {
		return RepairOutcome{Reason: "not enough materials"}
	}

	res := m.Repair(amount)
	ledger.Modify(resource.Materials, -float64(cost))
	b.updateIntegrity()

	return RepairOutcome{OK: true, Results: []RepairResult{res}, MaterialsUsed: cost}
}

// AutoRepairAll walks the damaged modules in declaration order, repairing up
// to 50 points each while the running material cost stays within the ledger
// balance. No priority is given to critical modules.
func (b *Bank) AutoRepairAll(ledger *resource.Ledger) RepairOutcome {
	damaged := b.DamagedModules()
	if len(damaged) == 0 {
		return RepairOutcome{Reason: "no damage to repair"}
	}

	budget := int(ledger.Get(resource.Materials))
	var results []RepairResult
	used := 0

	for _, m := range damaged {
		amount := 50
		if missing := m.MaxHealth - m.Health; missing < amount {
			amount = missing
		}
		cost := (amount + 1) / 2
		if used+cost > budget {
			continue
		}
		results = append(results, m.Repair(amount))
		used += cost
	}

	if len(results) == 0 {
		return RepairOutcome{Reason: "not enough materials"}
	}

	ledger.Modify(resource.Materials, -float64(used))
	b.updateIntegrity()
	return RepairOutcome{OK: true, Results: results, MaterialsUsed: used}
}

// UpgradeOutcome is the structured result of an upgrade request.
type UpgradeOutcome struct {
	OK            bool
	Reason        string
	Module        ModuleID
	NewTier       int
	TechCost      int
	MaterialsCost int
}

// UpgradeModule raises a module one tier, costing tier x 10 technology and
// tier x 20 materials at the current tier. Validates everything before
// spending.
func (b *Bank) UpgradeModule(id ModuleID, ledger *resource.Ledger) UpgradeOutcome {
	m := b.Module(id)
	if m == nil {
		return UpgradeOutcome{Reason: "module not found"}
	}
	if m.Tier >= MaxTier {
		return UpgradeOutcome{Reason: "module already at max tier"}
	}

	techCost := m.Tier * 10
	matCost := m.Tier * 20
	if ledger.Get(resource.Technology) < float64(techCost) {
		return UpgradeOutcome{Reason: "not enough technology"}
	}
	if ledger.Get(resource.Materials) < float64(matCost) {
		return UpgradeOutcome{Reason: "not enough materials"}
	}

	m.Upgrade()
	ledger.Modify(resource.Technology, -float64(techCost))
	ledger.Modify(resource.Materials, -float64(matCost))

	return UpgradeOutcome{
		OK: true, Module: id, NewTier: m.Tier,
		TechCost: techCost, MaterialsCost: matCost,
	}
}

// Efficiency returns the named module's efficiency, 0 for an unknown ID.
func (b *Bank) Efficiency(id ModuleID) float64 {
	if m := b.Module(id); m != nil {
		return m.Efficiency()
	}
	return 0
}

// Effects bundles the module-efficiency multipliers the other systems
// consume.
type Effects struct {
	FuelMultiplier       float64 // engines; >1 when engines degrade
	CrewHealthMultiplier float64 // life support
	DefenseBonus         float64 // shields
	AttackBonus          float64 // weapons
	ScanRange            int     // sensors
	StorageMultiplier    float64 // cargo bay
}

// CurrentEffects derives the gameplay multipliers from module efficiencies.
func (b *Bank) CurrentEffects() Effects {
	return Effects{
		FuelMultiplier:       1 / math.Max(0.5, b.Efficiency(Engines)),
		CrewHealthMultiplier: b.Efficiency(LifeSupport),
		DefenseBonus:         b.Efficiency(Shields) * 50,
		AttackBonus:          b.Efficiency(Weapons) * 30,
		ScanRange:            int(b.Efficiency(Sensors) * 10),
		StorageMultiplier:    b.Efficiency(Cargo),
	}
}

// RandomFailure damages one random operational module by 20-49 points.
// Returns nil when everything is already offline.
func (b *Bank) RandomFailure(src rng.Source) *DamageResult {
	var operational []*Module
	for _, m := range b.All() {
		if !m.Offline {
			operational = append(operational, m)
		}
	}
	if len(operational) == 0 {
		return nil
	}

	m := operational[src.IntN(len(operational))]
	res := m.TakeDamage(20 + src.IntN(30))
	b.CheckCriticalFailure()
	b.updateIntegrity()
	return &res
}

func (b *Bank) updateIntegrity() {
	sum := 0.0
	for _, m := range b.All() {
		sum += float64(m.Health) / float64(m.MaxHealth) * 100
	}
	b.Integrity = int(sum / float64(len(ModuleIDs)))
}

// Snapshot captures the bank for saving.
type Snapshot struct {
	Modules   []Module `json:"modules"`
	Integrity int      `json:"integrity"`
	Failed    bool     `json:"failed"`
}

// Snapshot returns a plain copy of the bank state.
func (b *Bank) Snapshot() Snapshot {
	snap := Snapshot{Integrity: b.Integrity, Failed: b.Failed}
	for _, m := range b.All() {
		snap.Modules = append(snap.Modules, *m)
	}
	return snap
}

// Restore replaces the bank state from a snapshot. Modules absent from the
// snapshot keep their fresh defaults.
func (b *Bank) Restore(snap Snapshot) {
	for _, m := range snap.Modules {
		if cur := b.modules[m.ID]; cur != nil {
			c := m
			c.Name = cur.Name
			c.Critical = cur.Critical
			*cur = c
		}
	}
	b.Integrity = snap.Integrity
	b.Failed = snap.Failed
}
