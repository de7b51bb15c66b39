package faction

import (
	"log/slog"
	"math"

	"github.com/solfarer/last-voyage/internal/rng"
)

// DiplomaticEvent records a reputation tier crossing.
type DiplomaticEvent struct {
	Turn    int    `json:"turn"`
	Faction ID     `json:"faction"`
	OldTier Tier   `json:"old_tier"`
	NewTier Tier   `json:"new_tier"`
	Reason  string `json:"reason"`
}

// Pact records a war or alliance between two factions.
type Pact struct {
	Factions  [2]ID  `json:"factions"`
	StartTurn int    `json:"start_turn"`
	Reason    string `json:"reason,omitempty"`
}

// Ledger holds per-faction reputation and the session's diplomatic history.
type Ledger struct {
	reputations map[ID]int
	Events      []DiplomaticEvent
	Wars        []Pact
	Alliances   []Pact
}

// NewLedger returns a ledger at the factions' initial reputations, with the
// opening Kryll-Zenari war underway.
func NewLedger() *Ledger {
	l := &Ledger{reputations: make(map[ID]int, len(Factions))}
	for _, f := range Factions {
		l.reputations[f.ID] = f.InitialRep
	}
	l.Wars = append(l.Wars, Pact{
		Factions: [2]ID{KryllEmpire, ZenariCollective},
		Reason:   "Territorial expansion",
	})
	return l
}

// Reputation returns the current standing with a faction, 0 if unknown.
func (l *Ledger) Reputation(id ID) int { return l.reputations[id] }

// TierOf returns the current reputation band for a faction.
func (l *Ledger) TierOf(id ID) Tier { return TierFor(l.reputations[id]) }

// RepChange describes the result of a reputation shift.
type RepChange struct {
	Faction     ID
	OldRep      int
	NewRep      int
	Delta       int
	OldTier     Tier
	NewTier     Tier
	TierChanged bool
}

// Modify shifts reputation with a faction, clamped to [-100, 100]. A tier
// crossing is recorded as a diplomatic event. Unknown factions are logged
// and ignored.
func (l *Ledger) Modify(id ID, amount, turn int, reason string) *RepChange {
	old, ok := l.reputations[id]
	if !ok {
		slog.Warn("unknown faction", "faction", id)
		return nil
	}

	newRep := old + amount
	if newRep < -100 {
		newRep = -100
	}
	if newRep > 100 {
		newRep = 100
	}
	l.reputations[id] = newRep

	oldTier, newTier := TierFor(old), TierFor(newRep)
	if oldTier != newTier {
		l.Events = append(l.Events, DiplomaticEvent{
			Turn: turn, Faction: id,
			OldTier: oldTier, NewTier: newTier, Reason: reason,
		})
	}

	return &RepChange{
		Faction: id, OldRep: old, NewRep: newRep, Delta: amount,
		OldTier: oldTier, NewTier: newTier, TierChanged: oldTier != newTier,
	}
}

// IsHostile reports whether a faction's reputation is below -20.
func (l *Ledger) IsHostile(id ID) bool { return l.reputations[id] < -20 }

// IsFriendly reports whether a faction's reputation is above 20.
func (l *Ledger) IsFriendly(id ID) bool { return l.reputations[id] > 20 }

// Dominant picks the faction encountered in a system of the given type.
// Candidates are factions whose territory includes the tag; the draw is
// weighted by max(0, 50+reputation), so better standing means more frequent
// contact. Returns nil when no faction claims the territory.
func (l *Ledger) Dominant(systemType string, src rng.Source) *Faction {
	var candidates []*Faction
	for i := range Factions {
		for _, t := range Factions[i].Territory {
			if t == systemType {
				candidates = append(candidates, &Factions[i])
				break
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	total := 0.0
	weights := make([]float64, len(candidates))
	for i, f := range candidates {
		weights[i] = math.Max(0, float64(50+l.reputations[f.ID]))
		total += weights[i]
	}

	roll := src.Float64() * total
	for i, f := range candidates {
		roll -= weights[i]
		if roll <= 0 {
			return f
		}
	}
	return candidates[0]
}

// UpdatePolitics rolls the every-tenth-turn chance of a new war or alliance
// between two random factions.
func (l *Ledger) UpdatePolitics(turn int, src rng.Source) {
	if turn%10 != 0 || src.Float64() >= 0.3 {
		return
	}

	a := Factions[src.IntN(len(Factions))].ID
	b := Factions[src.IntN(len(Factions))].ID
	if a == b {
		return
	}

	if src.Float64() < 0.5 {
		l.Wars = append(l.Wars, Pact{Factions: [2]ID{a, b}, StartTurn: turn, Reason: "Territory dispute"})
	} else {
		l.Alliances = append(l.Alliances, Pact{Factions: [2]ID{a, b}, StartTurn: turn})
	}
}

// Snapshot captures the ledger for saving.
type Snapshot struct {
	Reputations map[ID]int        `json:"reputations"`
	Events      []DiplomaticEvent `json:"events,omitempty"`
	Wars        []Pact            `json:"wars,omitempty"`
	Alliances   []Pact            `json:"alliances,omitempty"`
}

// Snapshot returns a plain copy of the ledger state.
func (l *Ledger) Snapshot() Snapshot {
	snap := Snapshot{Reputations: make(map[ID]int, len(l.reputations))}
	for k, v := range l.reputations {
		snap.Reputations[k] = v
	}
	snap.Events = append(snap.Events, l.Events...)
	snap.Wars = append(snap.Wars, l.Wars...)
	snap.Alliances = append(snap.Alliances, l.Alliances...)
	return snap
}

// Restore replaces the ledger state from a snapshot. Factions missing from
// the snapshot fall back to their initial reputation.
func (l *Ledger) Restore(snap Snapshot) {
	l.reputations = make(map[ID]int, len(Factions))
	for _, f := range Factions {
		if rep, ok := snap.Reputations[f.ID]; ok {
			l.reputations[f.ID] = rep
		} else {
			l.reputations[f.ID] = f.InitialRep
		}
	}
	l.Events = append([]DiplomaticEvent(nil), snap.Events...)
	l.Wars = append([]Pact(nil), snap.Wars...)
	l.Alliances = append([]Pact(nil), snap.Alliances...)
}
