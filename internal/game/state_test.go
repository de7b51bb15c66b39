package game

import (
	"encoding/json"
	"testing"

	"github.com/solfarer/last-voyage/internal/combat"
	"github.com/solfarer/last-voyage/internal/config"
	"github.com/solfarer/last-voyage/internal/resource"
)

func newGame(t *testing.T) *State {
	t.Helper()
	return New(42, config.Default())
}

func drain(s *State, kind resource.Kind) {
	s.Resources.Modify(kind, -s.Resources.Get(kind))
}

func TestTravelValidation(t *testing.T) {
	s := newGame(t)

	if r := s.Travel("atlantis"); r.Success {
		t.Errorf("Expected jump to unknown system refused")
	}

	// Find a system with no route from Sol.
	connected := make(map[string]bool)
	for _, id := range s.Here().Connections {
		connected[id] = true
	}
	for _, sys := range s.Systems {
		if sys.ID == "sol" || connected[sys.ID] {
			continue
		}
		if r := s.Travel(sys.ID); r.Success {
			t.Errorf("Expected jump without a route refused, reached %s", sys.ID)
		}
		break
	}

	// Jump along a real connection.
	dest := s.Here().Connections[0]
	fuelBefore := s.Resources.Get(resource.Fuel)
	r := s.Travel(dest)
	if !r.Success {
		t.Fatalf("Expected jump to %s, got %+v", dest, r)
	}
	if s.CurrentSystem != dest {
		t.Errorf("Expected arrival at %s, got %s", dest, s.CurrentSystem)
	}
	if got := s.Resources.Get(resource.Fuel); got != fuelBefore-float64(r.FuelCost) {
		t.Errorf("Expected %d fuel spent, ledger moved %v", r.FuelCost, fuelBefore-got)
	}
	if s.Turn != 1 {
		t.Errorf("Expected turn advanced to 1, got %d", s.Turn)
	}

	// Arrival discovers the destination and its neighbors.
	here := s.Here()
	if !here.Visited || !here.Discovered {
		t.Errorf("Expected destination visited and discovered")
	}
	for _, id := range here.Connections {
		if !s.System(id).Discovered {
			t.Errorf("Expected neighbor %s discovered on arrival", id)
		}
	}
}

func TestTravelInsufficientFuel(t *testing.T) {
	s := newGame(t)
	drain(s, resource.Fuel)
	s.Resources.Modify(resource.Fuel, 1)

	dest := s.Here().Connections[0]
	r := s.Travel(dest)
	if r.Success {
		t.Fatalf("Expected jump refused on fumes, got %+v", r)
	}
	if s.CurrentSystem != "sol" || s.Turn != 0 {
		t.Errorf("Failed jump must not move the ship or advance time")
	}
}

func TestTravelBlockedInCombatAndAfterGameOver(t *testing.T) {
	s := newGame(t)
	s.Combat.Start(combat.PirateScout, s.Lab)
	if r := s.Travel(s.Here().Connections[0]); r.Success {
		t.Errorf("Expected jump refused mid-combat")
	}

	s = newGame(t)
	s.TriggerVictory("")
	if r := s.Travel(s.Here().Connections[0]); r.Success {
		t.Errorf("Expected jump refused after the voyage ended")
	}
}

func TestTravelToNewEarthWins(t *testing.T) {
	s := newGame(t)
	sol := s.Here()
	sol.Connections = append(sol.Connections, "new_earth")
	s.Resources.Modify(resource.Fuel, 1000)

	turnBefore := s.Turn
	r := s.Travel("new_earth")
	if !r.Success || !r.Victory {
		t.Fatalf("Expected victorious arrival, got %+v", r)
	}
	if !s.Victory || s.Ending != EndingNewHome {
		t.Errorf("Expected new-home ending, got %q", s.Ending)
	}
	if !s.HasFlag("reached_new_earth") {
		t.Errorf("Expected arrival flag set")
	}
	// The voyage ends on arrival; no further turn is taken.
	if s.Turn != turnBefore {
		t.Errorf("Expected no turn advance on the final jump")
	}
}

func TestAdvanceTurn(t *testing.T) {
	s := newGame(t)

	for i := 1; i <= 10; i++ {
		report := s.AdvanceTurn()
		if report.Turn != i {
			t.Fatalf("Expected turn %d, got %d", i, report.Turn)
		}
		if report.Days < 1 || report.Days > 5 {
			t.Errorf("Expected 1-5 days per turn, got %d", report.Days)
		}
	}
	if s.DaysPassed < 10 || s.DaysPassed > 50 {
		t.Errorf("Expected 10-50 days after 10 turns, got %d", s.DaysPassed)
	}
}

func TestCheckGameOverPriorityAndStickiness(t *testing.T) {
	s := newGame(t)

	// Population loss outranks starvation when both trip.
	drain(s, resource.Population)
	drain(s, resource.Food)
	if got := s.CheckGameOver(); got != EndingExtinction {
		t.Errorf("Expected extinction first, got %q", got)
	}

	// The first ending sticks even if conditions change.
	s.Resources.Modify(resource.Population, 100)
	if got := s.CheckGameOver(); got != EndingExtinction {
		t.Errorf("Expected ending to stick, got %q", got)
	}
}

func TestEmptyTanksDoNotStrandMidCombat(t *testing.T) {
	s := newGame(t)
	drain(s, resource.Fuel)

	s.Combat.Start(combat.PirateScout, s.Lab)
	if got := s.CheckGameOver(); got != "" {
		t.Errorf("Expected no stranding mid-combat, got %q", got)
	}

	s.Combat.Restore(nil)
	if got := s.CheckGameOver(); got != EndingStranded {
		t.Errorf("Expected stranding once combat ends, got %q", got)
	}
}

func TestShipFailureEndsVoyage(t *testing.T) {
	s := newGame(t)
	s.Ship.Module("hull").TakeDamage(500)
	s.Ship.CheckCriticalFailure()
	if got := s.CheckGameOver(); got != EndingShipDestroyed {
		t.Errorf("Expected ship-destroyed ending, got %q", got)
	}
}

func TestWorldBridge(t *testing.T) {
	s := newGame(t)

	// Ledger keys route through the clamping ledger.
	s.ModifyResource("morale", 500)
	if got := s.Resource("morale"); got != 100 {
		t.Errorf("Expected morale clamped via bridge, got %v", got)
	}

	// Unknown keys live in the sparse value map.
	s.ModifyResource("karma", 3)
	if got := s.Resource("karma"); got != 3 {
		t.Errorf("Expected sparse value 3, got %v", got)
	}

	// Flags are idempotent.
	s.AddFlag("met_architects")
	s.AddFlag("met_architects")
	if got := len(s.Flags()); got != 1 {
		t.Errorf("Expected one flag, got %d", got)
	}
	s.RemoveFlag("met_architects")
	if s.HasFlag("met_architects") {
		t.Errorf("Expected flag cleared")
	}

	// Opinions clamp.
	s.ModifyOpinion("chen", -500)
	if got := s.Characters["chen"].Opinion; got != -100 {
		t.Errorf("Expected opinion clamped at -100, got %d", got)
	}
}

func TestThreatLevel(t *testing.T) {
	s := newGame(t)

	here := s.Here()
	here.Type = "hostile"
	if got := s.ThreatLevel(); got != 3 {
		t.Errorf("Expected threat 3 in hostile space, got %d", got)
	}
	here.Type = "ruins"
	here.Hazard = 0.2
	if got := s.ThreatLevel(); got != 2 {
		t.Errorf("Expected threat 2 in ruins, got %d", got)
	}
	here.Type = "barren"
	if got := s.ThreatLevel(); got != 1 {
		t.Errorf("Expected threat 1 in quiet space, got %d", got)
	}
	here.Hazard = 0.9
	if got := s.ThreatLevel(); got != 3 {
		t.Errorf("Expected hazard to raise the threat to 3, got %d", got)
	}
}

func TestSnapshotRoundTripThroughJSON(t *testing.T) {
	s := newGame(t)

	// Touch every subsystem so the snapshot is non-trivial.
	s.Travel(s.Here().Connections[0])
	s.AddFlag("architect_contact")
	s.Cargo.Add("alien_artifacts", 2)
	s.Crew.Get("webb").ModifyHealth(-25, "burns")
	s.Resources.Modify(resource.Technology, 60)
	s.StartResearch("plasma_weapons")
	s.ModifyOpinion("park", 15)
	s.Combat.Start(combat.PirateRaider, s.Lab)

	snap := s.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	restored := New(1, config.Default())
	restored.Restore(decoded)

	if restored.CurrentSystem != s.CurrentSystem || restored.Turn != s.Turn {
		t.Errorf("Position mismatch after restore")
	}
	if got := restored.Resources.Get(resource.Technology); got != s.Resources.Get(resource.Technology) {
		t.Errorf("Resource mismatch after restore: %v", got)
	}
	if restored.Cargo.Count("alien_artifacts") != 2 {
		t.Errorf("Cargo lost in restore")
	}
	if !restored.HasFlag("architect_contact") {
		t.Errorf("Flags lost in restore")
	}
	if got := restored.Crew.Get("webb").Health; got != 75 {
		t.Errorf("Crew health lost in restore, got %d", got)
	}
	if !restored.Lab.Researched("plasma_weapons") {
		t.Errorf("Research lost in restore")
	}
	if got := restored.Characters["park"].Opinion; got != 15 {
		t.Errorf("Character opinion lost in restore, got %d", got)
	}
	if !restored.Combat.InCombat() {
		t.Fatalf("Mid-combat session lost in restore")
	}
	if got := restored.Combat.Session().Enemy.Type; got != combat.PirateRaider {
		t.Errorf("Wrong enemy after restore: %s", got)
	}
	if len(restored.Systems) != len(s.Systems) {
		t.Fatalf("System count mismatch after restore")
	}
	for i := range s.Systems {
		if restored.Systems[i].ID != s.Systems[i].ID ||
			restored.Systems[i].Visited != s.Systems[i].Visited {
			t.Errorf("System %d mismatch after restore", i)
		}
	}
}

func TestSummary(t *testing.T) {
	s := newGame(t)
	sum := s.Summary()
	if sum.Population != 1000 || sum.Visited != 1 || sum.Location != "sol" {
		t.Errorf("Unexpected fresh summary: %+v", sum)
	}
}
