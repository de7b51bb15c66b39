package mission

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/solfarer/last-voyage/internal/crew"
	"github.com/solfarer/last-voyage/internal/faction"
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

// Status tracks a mission's lifecycle.
type Status string

const (
	InProgress Status = "in_progress"
	Completed  Status = "completed"
	Aborted    Status = "aborted"
)

// LogEntry records a resolved field event.
type LogEntry struct {
	Event  string `json:"event"`
	Choice string `json:"choice"`
	Result string `json:"result"`
}

// Mission is one away mission in flight. All fields serialize, so missions
// survive save/load mid-expedition.
type Mission struct {
	ID             string     `json:"id"`
	Type           TypeID     `json:"type"`
	Crew           []string   `json:"crew"`
	Planet         string     `json:"planet"`
	StartTurn      int        `json:"start_turn"`
	TurnsRemaining int        `json:"turns_remaining"`
	Status         Status     `json:"status"`
	Events         []LogEntry `json:"events,omitempty"`
	Efficiency     float64    `json:"efficiency"`
}

// Board tracks available, active, and completed missions.
type Board struct {
	Active         []*Mission
	CompletedCount int
	Available      []TypeID
}

func NewBoard() *Board { return &Board{} }

// Generate rolls 1-2 mission offers for the system type. Unknown types
// fall back to a lone resource survey.
func (b *Board) Generate(systemType string, src rng.Source) []TypeID {
	pool, ok := missionPools[systemType]
	if !ok {
		pool = []TypeID{ResourceSurvey}
	}
	count := 1 + src.IntN(2)
	b.Available = b.Available[:0]
	for i := 0; i < count; i++ {
		b.Available = append(b.Available, pool[src.IntN(len(pool))])
	}
	return b.Available
}

// OnMission reports whether a crew member is away.
func (b *Board) OnMission(crewID string) bool {
	for _, m := range b.Active {
		for _, id := range m.Crew {
			if id == crewID {
				return true
			}
		}
	}
	return false
}

// AvailableCrew lists living crew healthy enough to leave the ship and not
// already deployed.
func (b *Board) AvailableCrew(roster *crew.Roster) []*crew.Member {
	var out []*crew.Member
	for _, m := range roster.Living() {
		if m.Health > 30 && !b.OnMission(m.ID) {
			out = append(out, m)
		}
	}
	return out
}

// StartResult reports a launch attempt.
type StartResult struct {
	Success bool     `json:"success"`
	Reason  string   `json:"reason,omitempty"`
	Mission *Mission `json:"mission,omitempty"`
}

// Start launches a mission with the selected crew.
func (b *Board) Start(typeID TypeID, crewIDs []string, planet string, turn int, roster *crew.Roster) StartResult {
	t, ok := Types[typeID]
	if !ok {
		return StartResult{Reason: "unknown mission type"}
	}
	if len(crewIDs) < t.RequiredCrew {
		return StartResult{Reason: fmt.Sprintf("requires %d crew members", t.RequiredCrew)}
	}
	for _, id := range crewIDs {
		m := roster.Get(id)
		if m == nil || !m.Alive || b.OnMission(id) {
			return StartResult{Reason: "some selected crew are unavailable"}
		}
	}

	mission := &Mission{
		ID:             uuid.NewString(),
		Type:           typeID,
		Crew:           append([]string(nil), crewIDs...),
		Planet:         planet,
		StartTurn:      turn,
		TurnsRemaining: t.Duration,
		Status:         InProgress,
		Efficiency:     1.0,
	}
	b.Active = append(b.Active, mission)
	slog.Info("mission launched", "mission", typeID, "crew", len(crewIDs), "planet", planet)
	return StartResult{Success: true, Mission: mission}
}

// Update is one per-turn mission change.
type Update struct {
	Kind    string             `json:"kind"`
	Mission *Mission           `json:"mission"`
	Event   *FieldEvent        `json:"event,omitempty"`
	Rewards map[RewardKey]int  `json:"rewards,omitempty"`
	Injured []string           `json:"injured,omitempty"`
	RepGain *faction.RepChange `json:"-"`
}

// Progress advances every active mission one turn. Each turn carries a 30%
// chance of a field event, reported for the caller to resolve via
// HandleEventChoice. Missions that run out of turns complete and pay out.
func (b *Board) Progress(res *resource.Ledger, cargo resource.Cargo, roster *crew.Roster, factions *faction.Ledger, turn int, src rng.Source) []Update {
	var updates []Update
	for _, m := range b.Active {
		if m.Status != InProgress {
			continue
		}
		m.TurnsRemaining--

		if src.Float64() < 0.3 {
			ev := &FieldEvents[src.IntN(len(FieldEvents))]
			updates = append(updates, Update{Kind: "event", Mission: m, Event: ev})
			continue
		}

		if m.TurnsRemaining <= 0 {
			m.Status = Completed
			u := b.complete(m, res, cargo, roster, factions, turn, src)
			updates = append(updates, u)
		}
	}
	b.prune()
	return updates
}

// HandleEventChoice applies one field-event outcome to a mission. Crew
// health and morale effects hit the whole team; resource effects go to the
// ledger.
func (b *Board) HandleEventChoice(m *Mission, ev *FieldEvent, choiceIndex int, res *resource.Ledger, roster *crew.Roster) (FieldOutcome, bool) {
	if choiceIndex < 0 || choiceIndex >= len(ev.Outcomes) {
		return FieldOutcome{}, false
	}
	out := ev.Outcomes[choiceIndex]
	m.Events = append(m.Events, LogEntry{Event: ev.ID, Choice: out.Choice, Result: out.Result})

	eff := out.Effects
	if eff.Aborts {
		m.Status = Aborted
	}
	if eff.TimeLoss != 0 {
		m.TurnsRemaining += eff.TimeLoss
	}
	if eff.Efficiency != 0 {
		m.Efficiency *= eff.Efficiency
	}
	if eff.RewardBonus != 0 {
		m.Efficiency *= eff.RewardBonus
	}
	if eff.Materials != 0 {
		res.Modify(resource.Materials, float64(eff.Materials))
	}
	if eff.Technology != 0 {
		res.Modify(resource.Technology, float64(eff.Technology))
	}
	if eff.Fuel != 0 {
		res.Modify(resource.Fuel, float64(eff.Fuel))
	}
	for _, id := range m.Crew {
		member := roster.Get(id)
		if member == nil {
			continue
		}
		if eff.CrewHealth != 0 {
			member.ModifyHealth(eff.CrewHealth, ev.Description)
		}
		if eff.CrewMorale != 0 {
			member.ModifyMorale(eff.CrewMorale, ev.Description)
		}
	}

	if m.Status == Aborted {
		b.prune()
	}
	return out, true
}

// complete rolls rewards, scales them by efficiency and crew skills, pays
// them out, and applies return morale and injury risk.
func (b *Board) complete(m *Mission, res *resource.Ledger, cargo resource.Cargo, roster *crew.Roster, factions *faction.Ledger, turn int, src rng.Source) Update {
	t := Types[m.Type]
	rewards := make(map[RewardKey]int)
	for _, key := range rewardOrder {
		band, ok := t.Rewards[key]
		if !ok {
			continue
		}
		base := band.Min
		if band.Max > band.Min {
			base += src.IntN(band.Max - band.Min)
		}
		rewards[key] = int(math.Floor(float64(base) * m.Efficiency))
	}

	for _, id := range m.Crew {
		member := roster.Get(id)
		if member == nil {
			continue
		}
		bonus := member.SkillBonus()
		if member.Skill == crew.Scientist {
			if v, ok := rewards[RewardTechnology]; ok {
				rewards[RewardTechnology] = int(math.Floor(float64(v) * (1 + bonus)))
			}
		}
		if member.Skill == crew.Engineer {
			if v, ok := rewards[RewardMaterials]; ok {
				rewards[RewardMaterials] = int(math.Floor(float64(v) * (1 + bonus)))
			}
		}
		if member.Skill == crew.Security && t.Risk == RiskHigh {
			for _, key := range rewardOrder {
				if v, ok := rewards[key]; ok {
					rewards[key] = v * 11 / 10
				}
			}
		}
	}

	u := Update{Kind: "completed", Mission: m, Rewards: rewards}
	for _, key := range rewardOrder {
		amount, ok := rewards[key]
		if !ok || amount == 0 {
			continue
		}
		switch key {
		case RewardMaterials:
			res.Modify(resource.Materials, float64(amount))
		case RewardFuel:
			res.Modify(resource.Fuel, float64(amount))
		case RewardTechnology:
			res.Modify(resource.Technology, float64(amount))
		case RewardPopulation:
			res.Modify(resource.Population, float64(amount))
		case RewardMorale:
			res.Modify(resource.Morale, float64(amount))
		case RewardFactionRep:
			f := &faction.Factions[src.IntN(len(faction.Factions))]
			u.RepGain = factions.Modify(f.ID, amount, turn, "Away mission success")
		case RewardArtifacts:
			cargo.Add("alien_artifacts", amount)
		case RewardWeapons:
			cargo.Add("weapons", amount)
		case RewardShipParts:
			cargo.Add("ship_parts", amount)
		}
	}

	injuryChance := t.Risk.InjuryChance()
	for _, id := range m.Crew {
		member := roster.Get(id)
		if member == nil {
			continue
		}
		member.ModifyMorale(10, "Successful away mission")
		if src.Float64() < injuryChance {
			injury := 10 + src.IntN(20)
			member.ModifyHealth(-injury, "Away mission injury")
			u.Injured = append(u.Injured, member.Name)
		}
	}

	b.CompletedCount++
	slog.Info("mission complete", "mission", m.Type, "rewards", rewards)
	return u
}

// Abort recalls a mission early at a morale cost to its crew.
func (b *Board) Abort(missionID string, roster *crew.Roster) bool {
	for _, m := range b.Active {
		if m.ID != missionID {
			continue
		}
		m.Status = Aborted
		for _, id := range m.Crew {
			if member := roster.Get(id); member != nil {
				member.ModifyMorale(-15, "Mission aborted")
			}
		}
		b.prune()
		return true
	}
	return false
}

// prune drops finished missions from the active list.
func (b *Board) prune() {
	kept := b.Active[:0]
	for _, m := range b.Active {
		if m.Status == InProgress {
			kept = append(kept, m)
		}
	}
	b.Active = kept
}

// Snapshot captures the board for saving.
type Snapshot struct {
	Active         []Mission `json:"active,omitempty"`
	CompletedCount int       `json:"completed_count"`
	Available      []TypeID  `json:"available,omitempty"`
}

func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{CompletedCount: b.CompletedCount}
	for _, m := range b.Active {
		cp := *m
		cp.Crew = append([]string(nil), m.Crew...)
		cp.Events = append([]LogEntry(nil), m.Events...)
		snap.Active = append(snap.Active, cp)
	}
	snap.Available = append(snap.Available, b.Available...)
	return snap
}

func (b *Board) Restore(snap Snapshot) {
	b.Active = nil
	for i := range snap.Active {
		cp := snap.Active[i]
		cp.Crew = append([]string(nil), snap.Active[i].Crew...)
		cp.Events = append([]LogEntry(nil), snap.Active[i].Events...)
		if cp.Efficiency == 0 {
			cp.Efficiency = 1.0
		}
		b.Active = append(b.Active, &cp)
	}
	b.CompletedCount = snap.CompletedCount
	b.Available = append([]TypeID(nil), snap.Available...)
}
