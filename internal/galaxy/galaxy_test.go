package galaxy

import "testing"

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(42).Generate()
	b := NewGenerator(42).Generate()

	if len(a) != len(b) {
		t.Fatalf("Expected identical system counts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Name != b[i].Name ||
			a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].Type != b[i].Type {
			t.Errorf("System %d differs between identical seeds: %+v vs %+v", i, a[i], b[i])
		}
		if a[i].Richness != b[i].Richness || a[i].Hazard != b[i].Hazard {
			t.Errorf("System %d noise fields differ between identical seeds", i)
		}
	}

	// A different seed produces a different scatter.
	c := NewGenerator(43).Generate()
	same := true
	for i := range a {
		if a[i].X != c[i].X || a[i].Y != c[i].Y {
			same = false
			break
		}
	}
	if same {
		t.Errorf("Expected different seeds to produce different maps")
	}
}

func TestGenerateLayout(t *testing.T) {
	systems := NewGenerator(7).Generate()

	// Sol plus 35 generated plus the two story systems.
	if len(systems) != 38 {
		t.Fatalf("Expected 38 systems, got %d", len(systems))
	}

	byID := make(map[string]*System)
	for _, s := range systems {
		byID[s.ID] = s
	}

	sol := byID["sol"]
	if sol == nil || !sol.Visited || !sol.Discovered || sol.Type != Start {
		t.Errorf("Expected Sol visited and discovered at the start, got %+v", sol)
	}

	haven := byID["new_earth"]
	if haven == nil || haven.Type != Haven || !haven.Special {
		t.Errorf("Expected Kepler Haven as the special haven system, got %+v", haven)
	}
	core := byID["ancient_core"]
	if core == nil || core.Type != Ruins || !core.Special {
		t.Errorf("Expected the Architect Core as special ruins, got %+v", core)
	}

	for _, s := range systems {
		if len(s.Connections) != 5 {
			t.Errorf("System %s: expected 5 connections, got %d", s.ID, len(s.Connections))
		}
		if s.X < 0 || s.X > 1100 || s.Y < 0 || s.Y > 600 {
			t.Errorf("System %s out of bounds at (%v, %v)", s.ID, s.X, s.Y)
		}
		if s.Richness < 0 || s.Richness > 1 || s.Hazard < 0 || s.Hazard > 1 {
			t.Errorf("System %s: noise fields out of [0,1]: %v %v", s.ID, s.Richness, s.Hazard)
		}
	}
}

func TestConnectionsAreNearest(t *testing.T) {
	systems := NewGenerator(11).Generate()
	s := systems[0]

	// Every non-connected system must be at least as far as the farthest
	// connection.
	connected := make(map[string]bool)
	var maxConn float64
	byID := make(map[string]*System)
	for _, o := range systems {
		byID[o.ID] = o
	}
	for _, id := range s.Connections {
		connected[id] = true
		if d := Distance(s, byID[id]); d > maxConn {
			maxConn = d
		}
	}
	for _, o := range systems {
		if o.ID == s.ID || connected[o.ID] {
			continue
		}
		if Distance(s, o) < maxConn {
			t.Errorf("System %s is closer than a listed connection", o.ID)
		}
	}
}

func TestFuelCost(t *testing.T) {
	a := &System{ID: "a", X: 0, Y: 0}
	b := &System{ID: "b", X: 30, Y: 40} // distance 50

	if got := FuelCost(a, b); got != 5 {
		t.Errorf("Expected floor cost 5 for a short hop, got %d", got)
	}

	c := &System{ID: "c", X: 300, Y: 400} // distance 500
	if got := FuelCost(a, c); got != 25 {
		t.Errorf("Expected cost 25 for a 500-unit jump, got %d", got)
	}
}

func TestInRange(t *testing.T) {
	a := &System{ID: "a", X: 0, Y: 0}
	near := &System{ID: "near", X: 30, Y: 40}
	far := &System{ID: "far", X: 300, Y: 400}
	systems := []*System{a, near, far}

	out := InRange(a, systems, 10)
	if len(out) != 1 || out[0].ID != "near" {
		t.Errorf("Expected only the near system in range, got %+v", out)
	}

	out = InRange(a, systems, 25)
	if len(out) != 2 {
		t.Errorf("Expected both systems reachable with 25 fuel, got %d", len(out))
	}
}
