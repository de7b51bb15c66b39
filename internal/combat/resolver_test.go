package combat

import (
	"testing"

	"github.com/solfarer/last-voyage/internal/config"
	"github.com/solfarer/last-voyage/internal/crew"
	"github.com/solfarer/last-voyage/internal/research"
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

func newFight(t *testing.T, enemy EnemyType) (*Resolver, *resource.Ledger, *crew.Roster) {
	t.Helper()
	r := NewResolver(config.Default().Combat)
	if s := r.Start(enemy, research.NewLab()); s == nil {
		t.Fatalf("Expected session against %s", enemy)
	}
	return r, resource.NewLedger(), crew.NewRoster()
}

func TestStartAppliesResearchMultipliers(t *testing.T) {
	lab := research.NewLab()
	res := resource.NewLedger()
	res.Modify(resource.Technology, 1000)
	lab.Start("plasma_weapons", res)
	lab.Start("reinforced_shields", res)

	r := NewResolver(config.Default().Combat)
	s := r.Start(PirateScout, lab)
	if s.PlayerWeapons != 25 {
		t.Errorf("Expected weapons 25 with plasma weapons, got %d", s.PlayerWeapons)
	}
	if s.PlayerShields != 65 {
		t.Errorf("Expected shields 65 with reinforced shields, got %d", s.PlayerShields)
	}
	if s.PlayerHull != 100 {
		t.Errorf("Expected base hull 100, got %d", s.PlayerHull)
	}
}

func TestAttackAgainstEvadingEnemy(t *testing.T) {
	r, res, roster := newFight(t, PirateScout)

	// Rolls: 0.9 sends the scout evading, 0.5 is the damage die (+5),
	// 0.5 misses the 0.3 evasion check so the hit lands.
	result := r.ExecuteTurn(Attack, res, roster, rng.Fixed(0.9, 0.5, 0.5))
	if !result.Ongoing {
		t.Fatalf("Expected fight ongoing, got %+v", result)
	}
	if result.EnemyAction != Evade {
		t.Errorf("Expected enemy evade on high roll, got %s", result.EnemyAction)
	}
	// 20 weapons + 5 roll, boosted 15% by the security chief: floor(28.75).
	if result.DamageDealt != 28 {
		t.Errorf("Expected 28 damage dealt, got %d", result.DamageDealt)
	}
	// Shields absorb 10, the rest hits hull.
	if got := r.Session().Enemy.Hull; got != 12 {
		t.Errorf("Expected enemy hull 12, got %d", got)
	}
}

func TestDefendBlocksEnemyAttack(t *testing.T) {
	r, res, roster := newFight(t, PirateScout)
	r.Session().PlayerShields = 20

	// Roll 0 puts the scout on the attack; defending skips it entirely.
	result := r.ExecuteTurn(Defend, res, roster, rng.Fixed(0))
	if result.DamageTaken != 0 {
		t.Errorf("Expected no damage while defending, got %d", result.DamageTaken)
	}
	if got := r.Session().PlayerShields; got != 35 {
		t.Errorf("Expected shields regenerated to 35, got %d", got)
	}
}

func TestEvadeRoll(t *testing.T) {
	// Evade succeeds under the 40% chance: no damage.
	r, res, roster := newFight(t, PirateScout)
	result := r.ExecuteTurn(Evade, res, roster, rng.Fixed(0, 0.3))
	if result.DamageTaken != 0 {
		t.Errorf("Expected successful evade, took %d damage", result.DamageTaken)
	}

	// Evade fails: the hit lands on shields, softened by the engineer.
	r, res, roster = newFight(t, PirateScout)
	r.ExecuteTurn(Evade, res, roster, rng.Fixed(0, 0.5, 0.5))
	// 15 weapons + 5 roll, reduced 20%: int(16) absorbed by shields.
	if got := r.Session().PlayerShields; got != 34 {
		t.Errorf("Expected shields at 34 after absorbed hit, got %d", got)
	}
	if got := r.Session().PlayerHull; got != 100 {
		t.Errorf("Expected hull untouched behind shields, got %d", got)
	}
}

func TestSpecialAttackSpendsFuel(t *testing.T) {
	r, res, roster := newFight(t, PirateScout)

	// Doubled weapons one-shot the scout through its 10 shields.
	result := r.ExecuteTurn(Special, res, roster, rng.Fixed(0.9))
	if result.Outcome == nil || !result.Outcome.Victory {
		t.Fatalf("Expected victory from special attack, got %+v", result)
	}
	if r.InCombat() {
		t.Errorf("Expected session closed after victory")
	}
	// 5 fuel spent on the overcharge; loot may add some back.
	if got := res.Get(resource.Fuel); got != 99 {
		t.Errorf("Expected fuel 99 after cost and salvage, got %v", got)
	}
}

func TestVictoryLootDeterministic(t *testing.T) {
	r, res, roster := newFight(t, PirateScout)

	out := r.End(true, res, roster, rng.Fixed(0))
	if !out.Victory {
		t.Fatalf("Expected victory outcome")
	}
	// Minimum rolls: 5 materials, 0 fuel (dropped from the loot table).
	if got := out.Loot[resource.Materials]; got != 5 {
		t.Errorf("Expected 5 materials salvaged, got %d", got)
	}
	if _, ok := out.Loot[resource.Fuel]; ok {
		t.Errorf("Expected zero-quantity loot omitted")
	}
	if got := res.Get(resource.Materials); got != resource.StartingMaterials+5 {
		t.Errorf("Expected salvage credited to ledger, got %v", got)
	}
}

func TestDefeatPenaltiesAndInjury(t *testing.T) {
	r, res, roster := newFight(t, PirateScout)

	// Roll 0 guarantees the injury and picks the first living member.
	out := r.End(false, res, roster, rng.Fixed(0))
	if out.Victory {
		t.Fatalf("Expected defeat outcome")
	}
	if got := res.Get(resource.Materials); got != 80 {
		t.Errorf("Expected 20 materials lost, got %v", got)
	}
	if got := res.Get(resource.Fuel); got != 90 {
		t.Errorf("Expected 10 fuel lost, got %v", got)
	}
	if out.InjuredCrew != "Commander Sarah Chen" {
		t.Errorf("Expected the commander injured on a zero roll, got %q", out.InjuredCrew)
	}
	if got := roster.Get("chen").Health; got != 70 {
		t.Errorf("Expected injured member at 70 health, got %d", got)
	}
}

func TestAttemptFlee(t *testing.T) {
	// Success: 0.5 base + 0.15 pilot bonus beats a low roll.
	r, res, roster := newFight(t, PirateScout)
	result := r.AttemptFlee(res, roster, rng.Fixed(0))
	if !result.Fled || r.InCombat() {
		t.Fatalf("Expected successful flee, got %+v", result)
	}
	if got := res.Get(resource.Fuel); got != 90 {
		t.Errorf("Expected 10 fuel burned fleeing, got %v", got)
	}

	// Failure: the enemy lands a free hit straight to the hull.
	r, res, roster = newFight(t, PirateScout)
	result = r.AttemptFlee(res, roster, rng.Fixed(0.99))
	if result.Fled || !result.Ongoing {
		t.Fatalf("Expected failed flee with combat ongoing, got %+v", result)
	}
	if got := r.Session().PlayerHull; got != 85 {
		t.Errorf("Expected hull 85 after blocked escape, got %d", got)
	}

	// A failed flee that guts the hull ends the fight in defeat.
	r, res, roster = newFight(t, PirateScout)
	r.Session().PlayerHull = 10
	result = r.AttemptFlee(res, roster, rng.Fixed(0.99))
	if result.Ongoing || result.Outcome == nil || result.Outcome.Victory {
		t.Errorf("Expected defeat when the free hit destroys the ship, got %+v", result)
	}
	if r.InCombat() {
		t.Errorf("Expected session closed after defeat")
	}
}

func TestEnemyPolicyThresholds(t *testing.T) {
	cfg := config.Default().Combat

	// Low shields on a shielded enemy: defend under the 0.6 threshold.
	warship, _ := NewEnemy(AlienWarship)
	warship.Shields = 5
	if got := warship.ChooseAction(cfg, rng.Fixed(0.5)); got != Defend {
		t.Errorf("Expected defend on low shields, got %s", got)
	}

	// Low hull: evade under the 0.5 threshold.
	scout, _ := NewEnemy(PirateScout)
	scout.Hull = 5
	scout.Shields = 0
	if got := scout.ChooseAction(cfg, rng.Fixed(0.4)); got != Evade {
		t.Errorf("Expected evade on low hull, got %s", got)
	}

	// Healthy: attack under the 0.6 aggression threshold.
	if got := warshipHealthy(cfg, 0.3); got != Attack {
		t.Errorf("Expected attack from a healthy enemy, got %s", got)
	}
	if got := warshipHealthy(cfg, 0.7); got != Defend {
		t.Errorf("Expected defend in the 0.6-0.85 band, got %s", got)
	}
	if got := warshipHealthy(cfg, 0.9); got != Evade {
		t.Errorf("Expected evade above 0.85, got %s", got)
	}
}

func warshipHealthy(cfg config.CombatTuning, roll float64) Action {
	e, _ := NewEnemy(AlienWarship)
	return e.ChooseAction(cfg, rng.Fixed(roll))
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	r, res, roster := newFight(t, PirateRaider)
	r.ExecuteTurn(Attack, res, roster, rng.Fixed(0.9, 0.5, 0.5))

	snap := r.Snapshot()

	restored := NewResolver(config.Default().Combat)
	restored.Restore(snap)
	if !restored.InCombat() {
		t.Fatalf("Expected restored session live")
	}
	got, want := restored.Session(), r.Session()
	if got.Enemy.Hull != want.Enemy.Hull || got.PlayerHull != want.PlayerHull || got.Turn != want.Turn {
		t.Errorf("Restored session mismatch: got %+v want %+v", got, want)
	}

	// The copies are independent.
	restored.Session().Enemy.Hull = 1
	if want.Enemy.Hull == 1 {
		t.Errorf("Expected restore to deep-copy the enemy")
	}
}

func TestRandomEnemyPools(t *testing.T) {
	if got := RandomEnemy(1, rng.Fixed(0)); got != PirateScout {
		t.Errorf("Expected pirate scout from tier 1, got %s", got)
	}
	if got := RandomEnemy(3, rng.Fixed(0.9)); got != AncientGuardian {
		t.Errorf("Expected ancient guardian from tier 3, got %s", got)
	}
	// Unknown tiers fall back to the lowest pool.
	if got := RandomEnemy(42, rng.Fixed(0)); got != PirateScout {
		t.Errorf("Expected tier fallback, got %s", got)
	}
}
