package resource

import "testing"

func TestLedgerClamps(t *testing.T) {
	l := NewLedger()

	// Spending more than is held clamps at zero, never negative.
	if ok := l.Modify(Fuel, -500); !ok {
		t.Fatalf("Modify on known kind returned false")
	}
	if got := l.Get(Fuel); got != 0 {
		t.Errorf("Expected fuel clamped to 0, got %v", got)
	}

	// Morale caps at 100.
	l.Modify(Morale, 1000)
	if got := l.Get(Morale); got != 100 {
		t.Errorf("Expected morale capped at 100, got %v", got)
	}

	// Other resources have no upper cap.
	l.Modify(Materials, 1000)
	if got := l.Get(Materials); got != StartingMaterials+1000 {
		t.Errorf("Expected materials %v, got %v", StartingMaterials+1000, got)
	}
}

func TestLedgerUnknownKind(t *testing.T) {
	l := NewLedger()
	if ok := l.Modify(Kind("antimatter"), 10); ok {
		t.Errorf("Expected Modify on unknown kind to return false")
	}
	if got := l.Get(Kind("antimatter")); got != 0 {
		t.Errorf("Expected unknown kind to read as 0, got %v", got)
	}
}

func TestLedgerSnapshotRoundTrip(t *testing.T) {
	l := NewLedger()
	l.Modify(Fuel, -30)
	l.Modify(Technology, 42)

	snap := l.Snapshot()

	restored := NewLedger()
	restored.Restore(snap)
	for _, k := range Kinds {
		if restored.Get(k) != l.Get(k) {
			t.Errorf("Kind %s: expected %v after restore, got %v", k, l.Get(k), restored.Get(k))
		}
	}
}

func TestCargoRemove(t *testing.T) {
	c := Cargo{}
	c.Add("alien_artifacts", 3)

	if ok := c.Remove("alien_artifacts", 5); ok {
		t.Errorf("Expected remove beyond held quantity to fail")
	}
	if got := c.Count("alien_artifacts"); got != 3 {
		t.Errorf("Failed remove should not change quantity, got %d", got)
	}

	if ok := c.Remove("alien_artifacts", 3); !ok {
		t.Errorf("Expected full remove to succeed")
	}
	if got := c.Count("alien_artifacts"); got != 0 {
		t.Errorf("Expected empty hold, got %d", got)
	}
}
