package crew

import "testing"

func TestSkillBonusBestMemberOnly(t *testing.T) {
	r := NewRoster()

	// Webb is the level-4 engineer on the founding crew.
	if got := r.SkillBonus(Engineer); got != 0.20 {
		t.Errorf("Expected engineer bonus 0.20, got %v", got)
	}

	// A second, weaker engineer does not stack.
	r.Add(Member{Name: "Apprentice", Skill: Engineer, SkillLevel: 2})
	if got := r.SkillBonus(Engineer); got != 0.20 {
		t.Errorf("Expected bonus unchanged by weaker engineer, got %v", got)
	}

	// Dead members contribute nothing.
	webb := r.Get("webb")
	webb.ModifyHealth(-200, "test")
	if got := r.SkillBonus(Engineer); got != 0.10 {
		t.Errorf("Expected apprentice bonus 0.10 after Webb's death, got %v", got)
	}
}

func TestApplyEffects(t *testing.T) {
	r := NewRoster()

	cases := []struct {
		action ActionKind
		amount int
		want   int
	}{
		// Tanaka pilot level 3: 100 * (1 - 0.15).
		{FuelConsumption, 100, 85},
		// Webb engineer level 4: 100 * (1 - 0.20).
		{ShipDamage, 100, 80},
		// Volkov scientist level 4: 100 * (1 + 0.20).
		{TechGain, 100, 120},
		// Okafor medic level 3: 100 * (1 - 0.15).
		{HealthLoss, 100, 85},
	}
	for _, c := range cases {
		if got := r.ApplyEffects(c.action, c.amount); got != c.want {
			t.Errorf("%s(%d): expected %d, got %d", c.action, c.amount, c.want, got)
		}
	}
}

func TestDeathIsPermanent(t *testing.T) {
	r := NewRoster()
	m := r.Get("riley")

	res := m.ModifyHealth(-100, "hull breach")
	if !res.Died {
		t.Fatalf("Expected death at zero health")
	}
	if m.Alive {
		t.Errorf("Expected Alive false after death")
	}

	// Healing a dead member is a no-op.
	heal := m.ModifyHealth(50, "medbay")
	if heal.NewHealth != 0 || m.Alive {
		t.Errorf("Expected dead member untouched, got health %d alive %v", m.Health, m.Alive)
	}

	// Dead members stay on the roster but out of Living.
	if r.Get("riley") == nil {
		t.Errorf("Expected dead member to remain on the roster")
	}
	for _, lm := range r.Living() {
		if lm.ID == "riley" {
			t.Errorf("Expected dead member excluded from Living")
		}
	}
}

func TestTraitMoraleSkew(t *testing.T) {
	r := NewRoster()

	// Tanaka is an optimist: +10 becomes +15.
	tanaka := r.Get("tanaka")
	tanaka.Morale = 50
	res := tanaka.ModifyMorale(10, "good news")
	if res.NewMorale != 65 {
		t.Errorf("Expected optimist morale 65, got %d", res.NewMorale)
	}

	// Riley is a pessimist: -10 becomes -15.
	riley := r.Get("riley")
	riley.Morale = 50
	res = riley.ModifyMorale(-10, "bad news")
	if res.NewMorale != 35 {
		t.Errorf("Expected pessimist morale 35, got %d", res.NewMorale)
	}
}

func TestCheckEventsMutiny(t *testing.T) {
	r := NewRoster()

	// Two members below the mutiny threshold is not yet a mutiny risk.
	r.Get("chen").Morale = 10
	r.Get("webb").Morale = 15
	for _, e := range r.CheckEvents() {
		if e.Kind == MutinyRisk {
			t.Fatalf("Expected no mutiny risk with two unhappy members")
		}
	}

	// Three is.
	r.Get("volkov").Morale = 5
	found := false
	for _, e := range r.CheckEvents() {
		if e.Kind == MutinyRisk {
			found = true
			if len(e.Members) != 3 {
				t.Errorf("Expected 3 mutinous members, got %d", len(e.Members))
			}
		}
	}
	if !found {
		t.Errorf("Expected mutiny risk with three unhappy members")
	}
}

func TestRosterSnapshotRoundTrip(t *testing.T) {
	r := NewRoster()
	r.Get("chen").ModifyMorale(-20, "setback")
	r.Get("webb").ModifyHealth(-40, "burns")

	snap := r.Snapshot()

	restored := NewRoster()
	restored.Restore(snap)
	if len(restored.Members) != len(r.Members) {
		t.Fatalf("Expected %d members after restore, got %d", len(r.Members), len(restored.Members))
	}
	for i, m := range r.Members {
		got := restored.Members[i]
		if got.ID != m.ID || got.Morale != m.Morale || got.Health != m.Health || got.Alive != m.Alive {
			t.Errorf("Member %s: restore mismatch", m.ID)
		}
	}
}
