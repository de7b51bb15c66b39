package game

import (
	"log/slog"
	"math"

	"github.com/solfarer/last-voyage/internal/crew"
	"github.com/solfarer/last-voyage/internal/galaxy"
	"github.com/solfarer/last-voyage/internal/mission"
	"github.com/solfarer/last-voyage/internal/research"
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/ship"
)

// TravelResult reports a jump attempt.
type TravelResult struct {
	Success  bool   `json:"success"`
	Reason   string `json:"reason,omitempty"`
	FuelCost int    `json:"fuel_cost,omitempty"`
	Arrived  string `json:"arrived,omitempty"`
	Victory  bool   `json:"victory,omitempty"`
}

// Travel jumps to a connected system. The fuel cost scales with the
// engines' condition and shrinks with propulsion research and the pilot's
// skill. Arrival discovers the destination's neighbors and advances the
// turn.
func (s *State) Travel(systemID string) TravelResult {
	if s.GameOver {
		return TravelResult{Reason: "the voyage is over"}
	}
	if s.Combat.InCombat() {
		return TravelResult{Reason: "cannot jump mid-combat"}
	}

	here := s.Here()
	dest := s.System(systemID)
	if dest == nil {
		return TravelResult{Reason: "unknown system"}
	}
	if !connected(here, systemID) {
		return TravelResult{Reason: "no jump route to that system"}
	}

	cost := float64(galaxy.FuelCost(here, dest))
	cost *= s.Ship.CurrentEffects().FuelMultiplier
	cost *= 1 + s.Lab.Bonus(research.FuelConsumption)
	fuelCost := s.Crew.ApplyEffects(crew.FuelConsumption, int(math.Ceil(cost)))
	if fuelCost < 1 {
		fuelCost = 1
	}

	if s.Resources.Get(resource.Fuel) < float64(fuelCost) {
		return TravelResult{Reason: "insufficient fuel", FuelCost: fuelCost}
	}

	s.Resources.Modify(resource.Fuel, -float64(fuelCost))
	s.CurrentSystem = dest.ID
	dest.Visited = true
	dest.Discovered = true
	for _, id := range dest.Connections {
		if neighbor := s.System(id); neighbor != nil {
			neighbor.Discovered = true
		}
	}

	result := TravelResult{Success: true, FuelCost: fuelCost, Arrived: dest.ID}
	slog.Info("jump complete", "from", here.ID, "to", dest.ID, "fuel", fuelCost)

	if dest.ID == "new_earth" {
		s.AddFlag("reached_new_earth")
		s.TriggerVictory(EndingNewHome)
		result.Victory = true
		return result
	}

	s.AdvanceTurn()
	return result
}

func connected(from *galaxy.System, toID string) bool {
	for _, id := range from.Connections {
		if id == toID {
			return true
		}
	}
	return false
}

// TurnReport collects everything that happened during a turn advance.
type TurnReport struct {
	Turn           int                `json:"turn"`
	Days           int                `json:"days"`
	ResearchYield  map[string]int     `json:"research_yield,omitempty"`
	MissionUpdates []mission.Update   `json:"mission_updates,omitempty"`
	ModuleFailure  *ship.DamageResult `json:"module_failure,omitempty"`
	Ending         string             `json:"ending,omitempty"`
}

// AdvanceTurn moves time forward: the turn counter, a rolled number of
// days, research yields, hull regeneration, mission progression, and the
// slow drift of galactic politics. Game-over conditions are rechecked at
// the end.
func (s *State) AdvanceTurn() *TurnReport {
	s.Turn++
	span := s.Tuning.Turn.MaxDays - s.Tuning.Turn.MinDays + 1
	days := s.Tuning.Turn.MinDays + s.Rand.IntN(span)
	s.DaysPassed += days

	report := &TurnReport{Turn: s.Turn, Days: days}

	yield := s.Lab.TurnEffects(s.Resources)
	if yield.Hull > 0 {
		if hull := s.Ship.Module(ship.Hull); hull != nil {
			hull.Repair(yield.Hull)
		}
	}
	if yield.Food > 0 || yield.Materials > 0 || yield.Morale > 0 || yield.Hull > 0 {
		report.ResearchYield = map[string]int{
			"food": yield.Food, "materials": yield.Materials,
			"morale": yield.Morale, "hull": yield.Hull,
		}
	}

	report.MissionUpdates = s.Missions.Progress(
		s.Resources, s.Cargo, s.Crew, s.Factions, s.Turn, s.Rand)

	// Hazardous systems wear on the ship.
	if here := s.Here(); here != nil && here.Hazard > 0.6 {
		if s.Rand.Float64() < (here.Hazard-0.6)*0.5 {
			report.ModuleFailure = s.Ship.RandomFailure(s.Rand)
		}
	}

	s.Factions.UpdatePolitics(s.Turn, s.Rand)

	report.Ending = s.CheckGameOver()
	return report
}
